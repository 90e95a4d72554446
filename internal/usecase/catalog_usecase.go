package usecase

import (
	"context"

	"podartshop/internal/domain/entity"
	"podartshop/internal/domain/repository"
)

type CatalogUseCase struct {
	productRepo repository.ProductRepository
}

func NewCatalogUseCase(productRepo repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
	}
}

// ListCatalog returns available products, optionally narrowed by category and
// a case-insensitive title substring. Both filters combine with AND.
func (u *CatalogUseCase) ListCatalog(ctx context.Context, category, text string, limit int) ([]*entity.StoreProduct, error) {
	products, err := u.productRepo.List(ctx, repository.CatalogFilter{
		Category: category,
		Text:     text,
	}, limit)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []*entity.StoreProduct{}
	}
	return products, nil
}
