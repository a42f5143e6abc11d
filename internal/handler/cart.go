package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eststy/eststy/internal/domain"
)

type addToCartRequest struct {
	ProductID      uuid.UUID                       `json:"product_id" validate:"required"`
	Quantity       int                             `json:"quantity" validate:"required,gt=0"`
	Customizations map[string]domain.Customization `json:"customizations"`
	GiftWrap       bool                            `json:"gift_wrap"`
}

// AddToCart adds a product to the cart.
func (h *Handler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	item, err := h.store.AddToCart(req.ProductID, req.Quantity, req.Customizations, req.GiftWrap)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// UpdateCartItem sets a cart line's quantity. Zero removes the line.
func (h *Handler) UpdateCartItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req updateQuantityRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	if err := h.store.UpdateCartItemQuantity(id, req.Quantity); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveCartItem removes a cart line.
func (h *Handler) RemoveCartItem(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	h.store.RemoveFromCart(id)
	return c.NoContent(http.StatusNoContent)
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c echo.Context) error {
	h.store.ClearCart()
	return c.NoContent(http.StatusNoContent)
}

// GetCart returns the cart with derived totals.
func (h *Handler) GetCart(c echo.Context) error {
	summary, err := h.store.CartSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
