package usecase

import (
	"context"
	"math"
	"strings"

	"podartshop/internal/domain/entity"
	"podartshop/internal/domain/repository"
	"podartshop/internal/domain/service"
	"podartshop/pkg/logger"
)

type CheckoutUseCase struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	checkout    service.CheckoutSessionService
	frontendURL string
}

func NewCheckoutUseCase(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	checkout service.CheckoutSessionService,
	frontendURL string,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		checkout:    checkout,
		frontendURL: frontendURL,
	}
}

type CheckoutItemInput struct {
	ProductID  string
	VariantID  int64
	Quantity   int
	UnitAmount float64
}

type CreateSessionInput struct {
	UserID   string
	Items    []CheckoutItemInput
	Currency string
}

type CheckoutSessionResult struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateSession prices the requested items from the store, creates a hosted
// payment session and persists an Order in created status. An unknown product
// id aborts before any session or order is created. A caller-supplied
// unit_amount overrides the stored price and is trusted as-is.
func (u *CheckoutUseCase) CreateSession(ctx context.Context, input CreateSessionInput) (*CheckoutSessionResult, error) {
	currency := input.Currency
	if currency == "" {
		currency = "usd"
	}

	var lineItems []service.CheckoutLineItem
	var orderItems []entity.OrderItem
	amountTotal := 0.0

	for _, item := range input.Items {
		product, err := u.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		price := item.UnitAmount
		if price == 0 {
			price = product.Price
		}
		amountTotal += price * float64(quantity)

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}

		lineItems = append(lineItems, service.CheckoutLineItem{
			Name:       product.Title,
			ImageURL:   image,
			UnitAmount: int64(math.Round(price * 100)),
			Currency:   currency,
			Quantity:   quantity,
		})
		orderItems = append(orderItems, entity.OrderItem{
			ProductID:  item.ProductID,
			VariantID:  item.VariantID,
			Quantity:   quantity,
			UnitAmount: item.UnitAmount,
		})
	}

	session, err := u.checkout.CreateCheckoutSession(
		ctx,
		lineItems,
		u.frontendURL+"?success=true",
		u.frontendURL+"?canceled=true",
	)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:          input.UserID,
		Items:           orderItems,
		AmountTotal:     math.Round(amountTotal*100) / 100,
		Currency:        strings.ToUpper(currency),
		Status:          entity.OrderStatusCreated,
		StripeSessionID: session.ID,
	}
	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Created checkout session %s for order %s", session.ID, order.ID)
	return &CheckoutSessionResult{ID: session.ID, URL: session.URL}, nil
}
