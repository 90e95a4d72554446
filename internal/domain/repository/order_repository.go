package repository

import (
	"context"

	"podartshop/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
	SetProviderOrderID(ctx context.Context, id string, providerOrderID string) error
}
