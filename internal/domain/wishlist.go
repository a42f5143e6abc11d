package domain

import (
	"time"

	"github.com/google/uuid"
)

// WishlistPriority orders wishlist entries by how badly the user wants them.
type WishlistPriority string

const (
	WishlistPriorityLow    WishlistPriority = "low"
	WishlistPriorityMedium WishlistPriority = "medium"
	WishlistPriorityHigh   WishlistPriority = "high"
)

// Valid reports whether p is a known priority.
func (p WishlistPriority) Valid() bool {
	switch p {
	case WishlistPriorityLow, WishlistPriorityMedium, WishlistPriorityHigh:
		return true
	}
	return false
}

// WishlistItem links the user to a liked product. A product's "favorited"
// status is derived as membership in the wishlist set keyed by ProductID.
type WishlistItem struct {
	ID        uuid.UUID        `json:"id"`
	ProductID uuid.UUID        `json:"product_id"`
	AddedAt   time.Time        `json:"added_at"`
	Priority  WishlistPriority `json:"priority"`
}

var ErrWishlistItemNotFound = &Error{Code: ENOTFOUND, Message: "Wishlist item not found"}
