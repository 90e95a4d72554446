package usecase

import (
	"context"

	"podartshop/internal/domain/entity"
	"podartshop/internal/domain/repository"
	"podartshop/internal/infrastructure/printify"
	"podartshop/pkg/errors"
	"podartshop/pkg/logger"
)

const fulfillmentOrderLabel = "POD Art Shop Order"

type FulfillmentUseCase struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	printifyClient PrintifyClient
}

func NewFulfillmentUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	printifyClient PrintifyClient,
) *FulfillmentUseCase {
	return &FulfillmentUseCase{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		printifyClient: printifyClient,
	}
}

type WebhookEvent struct {
	ID   string
	Type string
	Data map[string]interface{}
}

// HandleEvent reconciles a payment-completed event into a fulfillment order.
// Everything except checkout.session.completed is acknowledged and ignored.
// An event with no matching order is also acknowledged silently, so duplicate
// or unrelated deliveries never fail the endpoint. A fulfillment placement
// failure marks the order failed and is swallowed for the same reason.
func (u *FulfillmentUseCase) HandleEvent(ctx context.Context, event WebhookEvent) error {
	if event.Type != "checkout.session.completed" {
		return nil
	}

	sessionID := sessionIDFromEvent(event.Data)
	if sessionID == "" {
		return nil
	}

	order, err := u.orderRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			logger.Warn("No order matches session %s, acknowledging", sessionID)
			return nil
		}
		return err
	}

	if err := u.placeProviderOrder(ctx, order); err != nil {
		logger.Error("Fulfillment placement failed for order %s: %v", order.ID, err)
		if updateErr := u.orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusFailed); updateErr != nil {
			logger.Error("Failed to mark order %s as failed: %v", order.ID, updateErr)
		}
		return nil
	}

	return nil
}

func (u *FulfillmentUseCase) placeProviderOrder(ctx context.Context, order *entity.Order) error {
	lineItems := make([]printify.OrderLineItem, 0, len(order.Items))
	for _, item := range order.Items {
		variantID := item.VariantID
		if variantID == 0 {
			product, err := u.productRepo.GetByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			variantID = product.DefaultVariantID
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		lineItems = append(lineItems, printify.OrderLineItem{
			ProductID: item.ProductID,
			VariantID: variantID,
			Quantity:  quantity,
		})
	}

	payload := printify.OrderPayload{
		LineItems:                lineItems,
		ExternalID:               order.ID,
		Label:                    fulfillmentOrderLabel,
		ShippingMethod:           1,
		SendShippingNotification: false,
		AddressTo: printify.OrderAddress{
			FirstName: "Customer",
			LastName:  "",
			Country:   "US",
		},
	}

	resp, err := u.printifyClient.CreateOrder(ctx, payload)
	if err != nil {
		return err
	}

	if providerOrderID := stringValue(resp["id"]); providerOrderID != "" {
		if err := u.orderRepo.SetProviderOrderID(ctx, order.ID, providerOrderID); err != nil {
			return err
		}
	}

	return u.orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusPaid)
}

func sessionIDFromEvent(data map[string]interface{}) string {
	object, _ := data["object"].(map[string]interface{})
	return stringValue(object["id"])
}
