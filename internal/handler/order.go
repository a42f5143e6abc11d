package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eststy/eststy/internal/domain"
)

type placeOrderRequest struct {
	ShippingAddress domain.Address       `json:"shipping_address" validate:"required"`
	PaymentMethod   domain.PaymentMethod `json:"payment_method" validate:"required"`
}

// PlaceOrder checks out the current cart.
func (h *Handler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	order, err := h.store.PlaceOrder(c.Request().Context(), req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// ListOrders returns all orders, most recent first.
func (h *Handler) ListOrders(c echo.Context) error {
	orders := h.store.Orders()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder returns an order by id.
func (h *Handler) GetOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.store.GetOrder(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle.
func (h *Handler) UpdateOrderStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req orderStatusRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	order, err := h.store.UpdateOrderStatus(id, domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// CancelOrder cancels a still-cancellable order.
func (h *Handler) CancelOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.store.CancelOrder(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
