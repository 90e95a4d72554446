package service

import (
	"context"
)

// CheckoutLineItem is one hosted-checkout line. UnitAmount is in minor units
// (cents).
type CheckoutLineItem struct {
	Name       string
	ImageURL   string
	UnitAmount int64
	Currency   string
	Quantity   int
}

type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutSessionService creates hosted payment sessions.
type CheckoutSessionService interface {
	CreateCheckoutSession(ctx context.Context, lineItems []CheckoutLineItem, successURL, cancelURL string) (*CheckoutSession, error)
}
