package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podartshop/pkg/errors"
)

func TestSyncProductsSkipsRecordsWithoutID(t *testing.T) {
	client := &fakePrintifyClient{records: []map[string]interface{}{
		{"id": "p1", "title": "Cat"},
		{"title": "orphan record"},
	}}
	repo := newFakeProductRepo()
	uc := NewSyncUseCase(client, repo)

	result, err := uc.SyncProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Synced)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "p1", result.Products[0].ID)
	assert.Equal(t, 1, repo.upserts)
}

func TestSyncProductsIsIdempotent(t *testing.T) {
	client := &fakePrintifyClient{records: []map[string]interface{}{
		{"id": "p1", "title": "Cat", "variants": []interface{}{
			map[string]interface{}{"id": 101, "is_default": true, "price": 1500},
		}},
	}}
	repo := newFakeProductRepo()
	uc := NewSyncUseCase(client, repo)

	first, err := uc.SyncProducts(context.Background())
	require.NoError(t, err)
	second, err := uc.SyncProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Synced, second.Synced)
	assert.Len(t, repo.products, 1)

	stored := repo.products["p1"]
	assert.Equal(t, "Cat", stored.Title)
	assert.InDelta(t, 15.0, stored.Price, 0.001)
	assert.Equal(t, int64(101), stored.DefaultVariantID)
}

func TestSyncProductsPropagatesProviderError(t *testing.T) {
	client := &fakePrintifyClient{listErr: errors.Upstream(502, "bad gateway")}
	repo := newFakeProductRepo()
	uc := NewSyncUseCase(client, repo)

	_, err := uc.SyncProducts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UPSTREAM_ERROR"))
	assert.Equal(t, 0, repo.upserts)
}

func TestListCatalogOmitsUnavailableProducts(t *testing.T) {
	repo := newFakeProductRepo()
	client := &fakePrintifyClient{records: []map[string]interface{}{
		{"id": "p1", "title": "Visible cat"},
		{"id": "p2", "title": "Hidden cat", "visible": false},
	}}
	_, err := NewSyncUseCase(client, repo).SyncProducts(context.Background())
	require.NoError(t, err)

	products, err := NewCatalogUseCase(repo).ListCatalog(context.Background(), "", "", 100)
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestListCatalogFiltersByCategoryAndText(t *testing.T) {
	repo := newFakeProductRepo()
	client := &fakePrintifyClient{records: []map[string]interface{}{
		{"id": "p1", "title": "Cat print", "categories": []interface{}{"art"}},
		{"id": "p2", "title": "Dog print", "categories": []interface{}{"art"}},
		{"id": "p3", "title": "Cat mug", "categories": []interface{}{"kitchen"}},
	}}
	_, err := NewSyncUseCase(client, repo).SyncProducts(context.Background())
	require.NoError(t, err)

	products, err := NewCatalogUseCase(repo).ListCatalog(context.Background(), "art", "cat", 100)
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}
