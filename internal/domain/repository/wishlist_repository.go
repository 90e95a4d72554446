package repository

import (
	"context"

	"podartshop/internal/domain/entity"
)

type WishlistRepository interface {
	Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error)
}
