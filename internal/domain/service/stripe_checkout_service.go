package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"podartshop/pkg/errors"
	"podartshop/pkg/logger"
)

// StripeCheckoutService creates hosted checkout sessions via the Stripe v1
// HTTP API (form-encoded).
type StripeCheckoutService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewStripeCheckoutService(apiKey, baseURL string) *StripeCheckoutService {
	return &StripeCheckoutService{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *StripeCheckoutService) CreateCheckoutSession(ctx context.Context, lineItems []CheckoutLineItem, successURL, cancelURL string) (*CheckoutSession, error) {
	if s.apiKey == "" {
		return nil, errors.Internal("Stripe not configured", nil)
	}

	logger.Info("Creating Stripe checkout session with %d line items", len(lineItems))

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", successURL)
	form.Set("cancel_url", cancelURL)

	for i, item := range lineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", item.Currency)
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.ImageURL != "" {
			form.Set(prefix+"[price_data][product_data][images][0]", item.ImageURL)
		}
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Internal("Failed to create Stripe request", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Internal("Failed to reach Stripe", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Internal("Failed to read Stripe response", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("Stripe session creation failed: status=%d body=%s", resp.StatusCode, string(body))
		return nil, errors.Upstream(resp.StatusCode, string(body))
	}

	var session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, errors.Internal("Failed to parse Stripe response", err)
	}

	logger.Info("Stripe checkout session created: %s", session.ID)
	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}
