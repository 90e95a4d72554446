package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"podartshop/internal/domain/entity"
	"podartshop/internal/domain/repository"
	"podartshop/pkg/errors"
	"podartshop/pkg/logger"
)

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{client: client}
}

// Add writes a fresh document on every call. Duplicate user/product pairs are
// permitted, so there is no existence check.
func (r *firestoreWishlistRepository) Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	doc := r.client.Collection("wishlists").NewDoc()

	item := entity.WishlistItem{
		ID:        doc.ID,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	if _, err := doc.Set(ctx, item); err != nil {
		return nil, errors.Internal("Failed to add to wishlist", err)
	}

	logger.Info("Added product %s to wishlist for user %s", productID, userID)
	return &item, nil
}

func (r *firestoreWishlistRepository) ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	docs, err := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to get wishlist", err)
	}

	var items []*entity.WishlistItem
	for _, doc := range docs {
		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			logger.Warn("Error parsing wishlist item %s: %v", doc.Ref.ID, err)
			continue
		}
		items = append(items, &item)
	}

	return items, nil
}
