package router

import (
	"podartshop/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()
	e.POST("/api/printify/sync", catalogHandler.SyncProducts)
	e.GET("/api/catalog", catalogHandler.GetCatalog)
}
