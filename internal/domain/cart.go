package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cart domain errors.
var (
	ErrCartItemNotFound = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrInvalidQuantity  = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
	ErrOutOfStock       = &Error{Code: ECONFLICT, Message: "Product is out of stock"}
	ErrEmptyCart        = &Error{Code: EINVALID, Message: "Cart is empty"}
)

// Customization is a named option selected for a cart line
// (e.g. "engraving" -> "M+J"), with its per-unit surcharge.
type Customization struct {
	Value      string `json:"value"`
	PriceCents int64  `json:"price_cents"`
}

// CartItem is a line in the cart. It carries a value copy of the product
// and a unit price snapshotted at add time: a discount expiring after the
// item was added never changes the line price.
type CartItem struct {
	ID                uuid.UUID                `json:"id"`
	Product           Product                  `json:"product"`
	Quantity          int                      `json:"quantity"`
	UnitPriceCents    int64                    `json:"unit_price_cents"`
	Customizations    map[string]Customization `json:"customizations,omitempty"`
	GiftWrap          bool                     `json:"gift_wrap"`
	GiftWrapFeeCents  int64                    `json:"gift_wrap_fee_cents,omitempty"`
	AddedAt           time.Time                `json:"added_at"`
	EstimatedDelivery time.Time                `json:"estimated_delivery"`
}

// UnitTotalCents is the per-unit charge: snapshot price plus customization
// surcharges plus the gift wrap fee when selected.
func (i CartItem) UnitTotalCents() int64 {
	total := i.UnitPriceCents
	for _, c := range i.Customizations {
		total += c.PriceCents
	}
	if i.GiftWrap {
		total += i.GiftWrapFeeCents
	}
	return total
}

// TotalPriceCents is the line total.
func (i CartItem) TotalPriceCents() int64 {
	return i.UnitTotalCents() * int64(i.Quantity)
}

// SameSelection reports whether the line refers to the same product with an
// identical customization map. Lines matching by SameSelection are merged on
// add rather than duplicated.
func (i CartItem) SameSelection(productID uuid.UUID, customizations map[string]Customization) bool {
	if i.Product.ID != productID {
		return false
	}
	if len(i.Customizations) != len(customizations) {
		return false
	}
	for name, c := range customizations {
		have, ok := i.Customizations[name]
		if !ok || have != c {
			return false
		}
	}
	return true
}

// CartSummary aggregates cart lines with calculated totals.
type CartSummary struct {
	Items         []CartItem `json:"items"`
	ItemCount     int        `json:"item_count"`
	SubtotalCents int64      `json:"subtotal_cents"`
	ShippingCents int64      `json:"shipping_cents"`
	TaxCents      int64      `json:"tax_cents"`
	TotalCents    int64      `json:"total_cents"`
}
