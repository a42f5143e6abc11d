package domain

import "github.com/google/uuid"

// Seller is a shop owner referenced by products.
// Products hold a weak reference (SellerID); sellers are looked up by id.
type Seller struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ShopName   string    `json:"shop_name"`
	Rating     float64   `json:"rating"`
	TotalSales int       `json:"total_sales"`
	Verified   bool      `json:"verified"`
}
