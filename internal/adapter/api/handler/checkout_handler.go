package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"podartshop/internal/usecase"
	"podartshop/pkg/errors"
	"podartshop/pkg/response"
)

type CheckoutHandler struct {
	checkoutUseCase *usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type checkoutItemRequest struct {
	ProductID  string  `json:"product_id" validate:"required"`
	VariantID  int64   `json:"variant_id"`
	Quantity   int     `json:"quantity" validate:"omitempty,min=1"`
	UnitAmount float64 `json:"unit_amount"`
}

type createSessionRequest struct {
	UserID   string                `json:"user_id"`
	Items    []checkoutItemRequest `json:"items" validate:"required,min=1,dive"`
	Currency string                `json:"currency"`
}

func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	items := make([]usecase.CheckoutItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.CheckoutItemInput{
			ProductID:  item.ProductID,
			VariantID:  item.VariantID,
			Quantity:   item.Quantity,
			UnitAmount: item.UnitAmount,
		}
	}

	result, err := h.checkoutUseCase.CreateSession(c.Request().Context(), usecase.CreateSessionInput{
		UserID:   req.UserID,
		Items:    items,
		Currency: req.Currency,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
