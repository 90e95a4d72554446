package router

import (
	"podartshop/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWebhookRouter(e *echo.Echo) {
	webhookHandler := handler.GetWebhookHandler()
	e.POST("/api/stripe/webhook", webhookHandler.HandleStripeWebhook)
}
