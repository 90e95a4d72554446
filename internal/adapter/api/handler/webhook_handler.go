package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"podartshop/internal/domain/service"
	"podartshop/internal/usecase"
	"podartshop/pkg/errors"
	"podartshop/pkg/response"
)

const signatureTolerance = 5 * time.Minute

type WebhookHandler struct {
	fulfillmentUseCase *usecase.FulfillmentUseCase
	webhookSecret      string
}

func NewWebhookHandler(fulfillmentUseCase *usecase.FulfillmentUseCase, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{
		fulfillmentUseCase: fulfillmentUseCase,
		webhookSecret:      webhookSecret,
	}
}

type stripeEventRequest struct {
	ID   string                 `json:"id"`
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// HandleStripeWebhook acknowledges every well-formed event with
// {"received": true}, even when fulfillment fails, so the event source does
// not retry indefinitely. When a webhook secret is configured the signature
// header must verify before anything is processed.
func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read request body", err))
	}

	if h.webhookSecret != "" {
		signature := c.Request().Header.Get("Stripe-Signature")
		if err := service.VerifyWebhookSignature(body, signature, h.webhookSecret, signatureTolerance); err != nil {
			return response.Error(c, errors.BadRequest("Invalid webhook signature", err))
		}
	}

	var event stripeEventRequest
	if err := json.Unmarshal(body, &event); err != nil {
		return response.Error(c, errors.BadRequest("Invalid webhook payload", err))
	}

	if err := h.fulfillmentUseCase.HandleEvent(c.Request().Context(), usecase.WebhookEvent{
		ID:   event.ID,
		Type: event.Type,
		Data: event.Data,
	}); err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
