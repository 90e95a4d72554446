package handler

import (
	"podartshop/internal/usecase"
	"podartshop/pkg/config"
)

var (
	catalogHandler  *CatalogHandler
	wishlistHandler *WishlistHandler
	checkoutHandler *CheckoutHandler
	webhookHandler  *WebhookHandler
)

func Setup(
	syncUseCase *usecase.SyncUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
	fulfillmentUseCase *usecase.FulfillmentUseCase,
	cfg *config.Config,
) {
	catalogHandler = NewCatalogHandler(syncUseCase, catalogUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
	webhookHandler = NewWebhookHandler(fulfillmentUseCase, cfg.StripeWebhookSecret)
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}

func GetWebhookHandler() *WebhookHandler {
	return webhookHandler
}
