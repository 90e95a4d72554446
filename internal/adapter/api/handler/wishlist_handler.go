package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"podartshop/internal/usecase"
	"podartshop/pkg/errors"
	"podartshop/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

type addWishlistRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
}

func (h *WishlistHandler) AddToWishlist(c echo.Context) error {
	var req addWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if _, err := h.wishlistUseCase.Add(c.Request().Context(), req.UserID, req.ProductID); err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *WishlistHandler) GetUserWishlist(c echo.Context) error {
	items, err := h.wishlistUseCase.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, items)
}
