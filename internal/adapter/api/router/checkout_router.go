package router

import (
	"podartshop/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCheckoutRouter(e *echo.Echo) {
	checkoutHandler := handler.GetCheckoutHandler()
	e.POST("/api/checkout/create-session", checkoutHandler.CreateSession)
}
