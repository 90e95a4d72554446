package usecase

import (
	"context"
	"fmt"
	"strings"

	"podartshop/internal/domain/entity"
	"podartshop/internal/domain/repository"
	"podartshop/internal/domain/service"
	"podartshop/internal/infrastructure/printify"
	"podartshop/pkg/errors"
)

type fakeProductRepo struct {
	products map[string]*entity.StoreProduct
	upserts  int
}

func newFakeProductRepo(products ...*entity.StoreProduct) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[string]*entity.StoreProduct{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) Upsert(ctx context.Context, product *entity.StoreProduct) error {
	stored := *product
	f.products[product.ID] = &stored
	f.upserts++
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.StoreProduct, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (f *fakeProductRepo) List(ctx context.Context, filter repository.CatalogFilter, limit int) ([]*entity.StoreProduct, error) {
	var result []*entity.StoreProduct
	for _, p := range f.products {
		if !p.Available {
			continue
		}
		if filter.Category != "" && !containsString(p.Categories, filter.Category) {
			continue
		}
		if filter.Text != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Text)) {
			continue
		}
		result = append(result, p)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

func containsString(values []string, needle string) bool {
	for _, v := range values {
		if v == needle {
			return true
		}
	}
	return false
}

type fakeOrderRepo struct {
	created     []*entity.Order
	bySession   map[string]*entity.Order
	statuses    map[string]entity.OrderStatus
	providerIDs map[string]string
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{
		bySession:   map[string]*entity.Order{},
		statuses:    map[string]entity.OrderStatus{},
		providerIDs: map[string]string{},
	}
	for _, o := range orders {
		repo.bySession[o.StripeSessionID] = o
	}
	return repo
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", len(f.created)+1)
	}
	f.created = append(f.created, order)
	f.bySession[order.StripeSessionID] = order
	return nil
}

func (f *fakeOrderRepo) GetBySessionID(ctx context.Context, sessionID string) (*entity.Order, error) {
	order, ok := f.bySession[sessionID]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeOrderRepo) SetProviderOrderID(ctx context.Context, id string, providerOrderID string) error {
	f.providerIDs[id] = providerOrderID
	return nil
}

type fakePrintifyClient struct {
	records   []map[string]interface{}
	listErr   error
	orderResp map[string]interface{}
	orderErr  error
	placed    []printify.OrderPayload
}

func (f *fakePrintifyClient) ListProducts(ctx context.Context) ([]map[string]interface{}, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakePrintifyClient) CreateOrder(ctx context.Context, payload printify.OrderPayload) (map[string]interface{}, error) {
	f.placed = append(f.placed, payload)
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return f.orderResp, nil
}

type fakeCheckoutService struct {
	session    *service.CheckoutSession
	err        error
	calls      int
	lineItems  []service.CheckoutLineItem
	successURL string
	cancelURL  string
}

func (f *fakeCheckoutService) CreateCheckoutSession(ctx context.Context, lineItems []service.CheckoutLineItem, successURL, cancelURL string) (*service.CheckoutSession, error) {
	f.calls++
	f.lineItems = lineItems
	f.successURL = successURL
	f.cancelURL = cancelURL
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}
