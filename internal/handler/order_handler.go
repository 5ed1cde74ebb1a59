package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Qty        int64  `json:"qty"`
}

type OrderCreateRequest struct {
	Items []CartItemRequest `json:"items"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/order", h.create)
	e.GET("/order/:id", h.detail)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	cart := make([]usecase.CartLine, 0, len(req.Items))
	for _, it := range req.Items {
		cart = append(cart, usecase.CartLine{
			MenuItemID: it.MenuItemID,
			Qty:        it.Qty,
		})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), cart)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	out, err := h.uc.GetOrderDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
