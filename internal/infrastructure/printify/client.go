package printify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"podartshop/pkg/errors"
	"podartshop/pkg/logger"
)

// Client talks to the Printify v1 API for one shop.
type Client struct {
	baseURL    string
	token      string
	shopID     string
	httpClient *http.Client
}

func NewClient(baseURL, token, shopID string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		shopID:     shopID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type OrderLineItem struct {
	ProductID string `json:"product_id"`
	VariantID int64  `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

type OrderAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Country   string `json:"country"`
}

type OrderPayload struct {
	LineItems                []OrderLineItem `json:"line_items"`
	ExternalID               string          `json:"external_id"`
	Label                    string          `json:"label"`
	ShippingMethod           int             `json:"shipping_method"`
	SendShippingNotification bool            `json:"send_shipping_notification"`
	AddressTo                OrderAddress    `json:"address_to"`
}

// ListProducts fetches the full product list for the shop. Depending on the
// API version the response is either {"data": [...]} or a bare list; both are
// accepted.
func (c *Client) ListProducts(ctx context.Context) ([]map[string]interface{}, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/shops/%s/products.json", c.baseURL, c.shopID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Internal("Failed to create Printify request", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Internal("Failed to reach Printify", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Internal("Failed to read Printify response", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("Printify product list failed: status=%d body=%s", resp.StatusCode, string(body))
		return nil, errors.Upstream(resp.StatusCode, string(body))
	}

	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Internal("Failed to parse Printify response", err)
	}

	return records, nil
}

// CreateOrder places a fulfillment order with the shop.
func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) (map[string]interface{}, error) {
	if err := c.checkConfig(); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Internal("Failed to marshal order payload", err)
	}

	url := fmt.Sprintf("%s/shops/%s/orders.json", c.baseURL, c.shopID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, errors.Internal("Failed to create Printify request", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Internal("Failed to reach Printify", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Internal("Failed to read Printify response", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logger.Error("Printify order creation failed: status=%d body=%s", resp.StatusCode, string(body))
		return nil, errors.Upstream(resp.StatusCode, string(body))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Internal("Failed to parse Printify response", err)
	}

	logger.Info("Printify order created for external id %s", payload.ExternalID)
	return result, nil
}

func (c *Client) checkConfig() error {
	if c.token == "" {
		return errors.Internal("PRINTIFY_API_TOKEN not set", nil)
	}
	if c.shopID == "" {
		return errors.Internal("PRINTIFY_SHOP_ID not set", nil)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
}
