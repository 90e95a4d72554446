package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"podartshop/internal/usecase"
	"podartshop/pkg/response"
	"podartshop/pkg/utils"
)

type CatalogHandler struct {
	syncUseCase    *usecase.SyncUseCase
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(syncUseCase *usecase.SyncUseCase, catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		syncUseCase:    syncUseCase,
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) SyncProducts(c echo.Context) error {
	result, err := h.syncUseCase.SyncProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	products, err := h.catalogUseCase.ListCatalog(
		c.Request().Context(),
		c.QueryParam("category"),
		c.QueryParam("q"),
		utils.GetLimitParam(c),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, products)
}
