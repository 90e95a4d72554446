package usecase

import (
	"context"

	"podartshop/internal/domain/entity"
	"podartshop/internal/domain/repository"
	"podartshop/pkg/logger"
)

type SyncUseCase struct {
	printifyClient PrintifyClient
	productRepo    repository.ProductRepository
}

func NewSyncUseCase(printifyClient PrintifyClient, productRepo repository.ProductRepository) *SyncUseCase {
	return &SyncUseCase{
		printifyClient: printifyClient,
		productRepo:    productRepo,
	}
}

type SyncResult struct {
	Synced   int                    `json:"synced"`
	Products []*entity.StoreProduct `json:"products"`
}

// SyncProducts pulls the full product list from the provider, normalizes each
// record and upserts it by id. A provider error aborts the whole sync;
// individual upserts are independent, so no rollback is attempted.
func (u *SyncUseCase) SyncProducts(ctx context.Context) (*SyncResult, error) {
	records, err := u.printifyClient.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{Products: []*entity.StoreProduct{}}
	for _, record := range records {
		product, ok := NormalizeProduct(record)
		if !ok {
			logger.Warn("Skipping product record without id")
			continue
		}

		if err := u.productRepo.Upsert(ctx, product); err != nil {
			return nil, err
		}

		result.Synced++
		result.Products = append(result.Products, product)
	}

	logger.Info("Synced %d products from Printify", result.Synced)
	return result, nil
}
