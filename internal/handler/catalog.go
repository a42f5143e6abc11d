package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/store"
)

type listProductsRequest struct {
	Search        string  `query:"search"`
	Category      string  `query:"category"`
	MinPriceCents int64   `query:"min_price_cents" validate:"gte=0"`
	MaxPriceCents int64   `query:"max_price_cents" validate:"gte=0"`
	MinRating     float64 `query:"min_rating" validate:"gte=0,lte=5"`
	InStockOnly   bool    `query:"in_stock"`
	OnSaleOnly    bool    `query:"on_sale"`
	Sort          string  `query:"sort"`
}

// ListProducts returns the catalog filtered by query parameters.
func (h *Handler) ListProducts(c echo.Context) error {
	var req listProductsRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	filter := store.ProductFilter{
		Search:        req.Search,
		MinPriceCents: req.MinPriceCents,
		MaxPriceCents: req.MaxPriceCents,
		MinRating:     req.MinRating,
		InStockOnly:   req.InStockOnly,
		OnSaleOnly:    req.OnSaleOnly,
	}

	if req.Category != "" {
		category := domain.Category(req.Category)
		if !category.Valid() {
			return domain.Invalid("catalog.list", "Unknown category "+req.Category)
		}
		filter.Category = &category
	}

	if req.Sort != "" {
		sort := store.SortOption(req.Sort)
		if !sort.Valid() {
			return domain.Invalid("catalog.list", "Unknown sort option "+req.Sort)
		}
		filter.Sort = sort
	}

	products := h.store.FilterProducts(filter)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns a single product by id.
func (h *Handler) GetProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.store.GetProduct(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// GetSeller returns a seller profile.
func (h *Handler) GetSeller(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	seller, err := h.store.GetSeller(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seller)
}

// ListSellerProducts returns the seller's catalog listings.
func (h *Handler) ListSellerProducts(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.store.GetSeller(id); err != nil {
		return err
	}

	products := h.store.ProductsBySeller(id)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

// SearchHistory returns recorded searches, most recent first.
func (h *Handler) SearchHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"history": h.store.SearchHistory(),
	})
}

// ClearSearchHistory empties the search history.
func (h *Handler) ClearSearchHistory(c echo.Context) error {
	h.store.ClearSearchHistory()
	return c.NoContent(http.StatusNoContent)
}

type recommendationsRequest struct {
	Reason string `query:"reason" validate:"required"`
	Limit  int    `query:"limit" validate:"gte=0"`
}

// Recommendations returns a recommendation shelf.
func (h *Handler) Recommendations(c echo.Context) error {
	var req recommendationsRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	products, err := h.store.Recommendations(store.Reason(req.Reason), req.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"reason":   req.Reason,
		"products": products,
	})
}

func parseID(c echo.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, domain.Invalid("request.id", "Invalid id "+c.Param(param))
	}
	return id, nil
}
