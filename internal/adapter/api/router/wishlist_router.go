package router

import (
	"podartshop/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWishlistRouter(e *echo.Echo) {
	wishlistHandler := handler.GetWishlistHandler()
	e.POST("/api/wishlist", wishlistHandler.AddToWishlist)
	e.GET("/api/wishlist/:userId", wishlistHandler.GetUserWishlist)
}
