package usecase

import (
	"context"

	"podartshop/internal/domain/entity"
	"podartshop/internal/domain/repository"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
	}
}

// Add bookmarks a product for a user. Neither id is checked for existence and
// duplicates are permitted; the wishlist is append-only.
func (u *WishlistUseCase) Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	return u.wishlistRepo.Add(ctx, userID, productID)
}

func (u *WishlistUseCase) ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	items, err := u.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []*entity.WishlistItem{}
	}
	return items, nil
}
