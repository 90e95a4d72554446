package usecase

import (
	"context"

	"podartshop/internal/infrastructure/printify"
)

type PrintifyClient interface {
	ListProducts(ctx context.Context) ([]map[string]interface{}, error)
	CreateOrder(ctx context.Context, payload printify.OrderPayload) (map[string]interface{}, error)
}
