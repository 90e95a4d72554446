package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
	// OrderStatusFulfilled is reserved for a provider completion callback that
	// is not consumed yet.
	OrderStatusFulfilled OrderStatus = "fulfilled"
)

type OrderItem struct {
	ProductID  string  `json:"product_id" firestore:"productId"`
	VariantID  int64   `json:"variant_id,omitempty" firestore:"variantId"`
	Quantity   int     `json:"quantity" firestore:"quantity"`
	UnitAmount float64 `json:"unit_amount,omitempty" firestore:"unitAmount"`
}

// Order is created by checkout-session creation and mutated exactly once by
// the fulfillment reconciler. StripeSessionID is the reconciliation join key.
type Order struct {
	ID              string      `json:"id" firestore:"id"`
	UserID          string      `json:"user_id,omitempty" firestore:"userId"`
	Items           []OrderItem `json:"items" firestore:"items"`
	AmountTotal     float64     `json:"amount_total" firestore:"amountTotal"`
	Currency        string      `json:"currency" firestore:"currency"`
	Status          OrderStatus `json:"status" firestore:"status"`
	StripeSessionID string      `json:"stripe_session_id" firestore:"stripeSessionId"`
	PrintifyOrderID string      `json:"printify_order_id,omitempty" firestore:"printifyOrderId"`
	CreatedAt       time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time   `json:"updated_at" firestore:"updatedAt"`
}
