package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Category classifies a product within the catalog.
type Category string

const (
	CategoryJewelry   Category = "jewelry"
	CategoryHomeDecor Category = "home_decor"
	CategoryClothing  Category = "clothing"
	CategoryArt       Category = "art"
	CategoryCeramics  Category = "ceramics"
	CategoryBags      Category = "bags"
	CategoryToys      Category = "toys"
	CategoryVintage   Category = "vintage"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryJewelry, CategoryHomeDecor, CategoryClothing, CategoryArt,
		CategoryCeramics, CategoryBags, CategoryToys, CategoryVintage:
		return true
	}
	return false
}

// Inventory tracks stock for a product.
type Inventory struct {
	StockQuantity    int  `json:"stock_quantity"`
	InStock          bool `json:"in_stock"`
	MaxOrderQuantity int  `json:"max_order_quantity"`
}

// Discount is a time-windowed percentage reduction on the list price.
type Discount struct {
	Percentage float64   `json:"percentage"` // e.g. 20 for 20% off
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
	Active     bool      `json:"active"`
}

// AppliesAt reports whether the discount is in effect at t.
// A discount applies only when it is marked active and t falls inside
// the [StartsAt, EndsAt] window.
func (d *Discount) AppliesAt(t time.Time) bool {
	if d == nil || !d.Active {
		return false
	}
	return !t.Before(d.StartsAt) && !t.After(d.EndsAt)
}

// Product is a catalog listing from a seller.
// Products are seeded once at store construction and immutable thereafter.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Category    Category  `json:"category"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Tags        []string  `json:"tags,omitempty"`
	Materials   []string  `json:"materials,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Inventory   Inventory `json:"inventory"`
	Discount    *Discount `json:"discount,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	SellerID    uuid.UUID `json:"seller_id"`
}

// EffectivePriceCents returns the price after any discount in effect at now.
// Without an applicable discount this is the list price.
func (p Product) EffectivePriceCents(now time.Time) int64 {
	if !p.Discount.AppliesAt(now) {
		return p.PriceCents
	}
	return int64(math.Round(float64(p.PriceCents) * (1 - p.Discount.Percentage/100)))
}

// OnSale reports whether a discount is in effect at now.
func (p Product) OnSale(now time.Time) bool {
	return p.Discount.AppliesAt(now)
}

// Product-specific errors.
var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
	ErrSellerNotFound  = &Error{Code: ENOTFOUND, Message: "Seller not found"}
)
