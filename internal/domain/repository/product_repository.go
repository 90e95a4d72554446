package repository

import (
	"context"

	"podartshop/internal/domain/entity"
)

// CatalogFilter narrows the catalog listing. Availability is always enforced
// by the repository itself.
type CatalogFilter struct {
	Category string
	Text     string
}

type ProductRepository interface {
	Upsert(ctx context.Context, product *entity.StoreProduct) error
	GetByID(ctx context.Context, id string) (*entity.StoreProduct, error)
	List(ctx context.Context, filter CatalogFilter, limit int) ([]*entity.StoreProduct, error)
}
