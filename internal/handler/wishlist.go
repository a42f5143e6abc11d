package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eststy/eststy/internal/domain"
)

// ToggleWishlist flips a product's wishlist membership.
func (h *Handler) ToggleWishlist(c echo.Context) error {
	id, err := parseID(c, "productID")
	if err != nil {
		return err
	}

	added, err := h.store.ToggleWishlist(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"product_id":  id,
		"in_wishlist": added,
	})
}

// GetWishlist returns the wishlist in add order.
func (h *Handler) GetWishlist(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": h.store.Wishlist(),
	})
}

type wishlistPriorityRequest struct {
	Priority string `json:"priority" validate:"required"`
}

// SetWishlistPriority changes a wishlist entry's priority.
func (h *Handler) SetWishlistPriority(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req wishlistPriorityRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	if err := h.store.SetWishlistPriority(id, domain.WishlistPriority(req.Priority)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
