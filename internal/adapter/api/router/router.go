package router

import (
	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo) {
	SetupHealthRouter(e)
	SetupCatalogRouter(e)
	SetupWishlistRouter(e)
	SetupCheckoutRouter(e)
	SetupWebhookRouter(e)
}
