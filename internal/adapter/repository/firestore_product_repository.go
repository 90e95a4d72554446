package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"podartshop/internal/domain/entity"
	"podartshop/internal/domain/repository"
	"podartshop/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

// Upsert overwrites the whole document keyed by the provider product id.
// Fields missing from the new record are lost, which is the intended
// full-replace semantics of a sync cycle.
func (r *firestoreProductRepository) Upsert(ctx context.Context, product *entity.StoreProduct) error {
	product.SyncedAt = time.Now()

	_, err := r.client.Collection("storeproducts").Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to upsert product", err)
	}

	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.StoreProduct, error) {
	doc, err := r.client.Collection("storeproducts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.StoreProduct
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}

	return &product, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, filter repository.CatalogFilter, limit int) ([]*entity.StoreProduct, error) {
	query := r.client.Collection("storeproducts").Query.Where("available", "==", true)

	if filter.Category != "" {
		query = query.Where("categories", "array-contains", filter.Category)
	}

	// Firestore has no substring operator, so the title filter runs in
	// memory; the server-side limit only applies when it is not needed.
	if filter.Text == "" && limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	needle := strings.ToLower(filter.Text)
	var products []*entity.StoreProduct

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate products", err)
		}

		var product entity.StoreProduct
		if err := doc.DataTo(&product); err != nil {
			return nil, errors.Internal("Failed to parse product data", err)
		}

		if needle != "" && !strings.Contains(strings.ToLower(product.Title), needle) {
			continue
		}

		products = append(products, &product)
		if limit > 0 && len(products) >= limit {
			break
		}
	}

	return products, nil
}
