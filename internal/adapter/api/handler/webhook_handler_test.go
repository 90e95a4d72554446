package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podartshop/internal/domain/entity"
	"podartshop/internal/domain/repository"
	"podartshop/internal/infrastructure/printify"
	"podartshop/internal/usecase"
	"podartshop/pkg/errors"
)

type stubProductRepo struct{}

func (stubProductRepo) Upsert(ctx context.Context, product *entity.StoreProduct) error {
	return nil
}

func (stubProductRepo) GetByID(ctx context.Context, id string) (*entity.StoreProduct, error) {
	return nil, errors.NotFound("Product", nil)
}

func (stubProductRepo) List(ctx context.Context, filter repository.CatalogFilter, limit int) ([]*entity.StoreProduct, error) {
	return nil, nil
}

type stubOrderRepo struct {
	statuses map[string]entity.OrderStatus
}

func (s *stubOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return nil
}

func (s *stubOrderRepo) GetBySessionID(ctx context.Context, sessionID string) (*entity.Order, error) {
	return nil, errors.NotFound("Order", nil)
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	if s.statuses == nil {
		s.statuses = map[string]entity.OrderStatus{}
	}
	s.statuses[id] = status
	return nil
}

func (s *stubOrderRepo) SetProviderOrderID(ctx context.Context, id string, providerOrderID string) error {
	return nil
}

type stubPrintifyClient struct{}

func (stubPrintifyClient) ListProducts(ctx context.Context) ([]map[string]interface{}, error) {
	return nil, nil
}

func (stubPrintifyClient) CreateOrder(ctx context.Context, payload printify.OrderPayload) (map[string]interface{}, error) {
	return map[string]interface{}{"id": "printify-1"}, nil
}

func newWebhookTestHandler(secret string) *WebhookHandler {
	uc := usecase.NewFulfillmentUseCase(&stubOrderRepo{}, stubProductRepo{}, stubPrintifyClient{})
	return NewWebhookHandler(uc, secret)
}

func postWebhook(h *WebhookHandler, body, signature string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.HandleStripeWebhook(c)
}

func TestWebhookAcknowledgesUnmatchedSession(t *testing.T) {
	h := newWebhookTestHandler("")
	body := `{"id": "evt_1", "type": "checkout.session.completed", "data": {"object": {"id": "cs_unknown"}}}`

	rec, err := postWebhook(h, body, "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)
}

func TestWebhookAcknowledgesUnhandledEventType(t *testing.T) {
	h := newWebhookTestHandler("")

	rec, err := postWebhook(h, `{"id": "evt_1", "type": "invoice.paid", "data": {}}`, "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)
}

func TestWebhookRejectsInvalidSignature(t *testing.T) {
	h := newWebhookTestHandler("whsec_test")
	body := `{"id": "evt_1", "type": "checkout.session.completed", "data": {}}`

	rec, err := postWebhook(h, body, "t=123,v1=deadbeef")
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
}

func TestWebhookAcceptsValidSignature(t *testing.T) {
	h := newWebhookTestHandler("whsec_test")
	body := `{"id": "evt_1", "type": "checkout.session.completed", "data": {"object": {"id": "cs_unknown"}}}`

	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte("whsec_test"))
	fmt.Fprintf(mac, "%d.%s", ts, body)
	signature := fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))

	rec, err := postWebhook(h, body, signature)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)
}
