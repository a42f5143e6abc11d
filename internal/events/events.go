// Package events defines the store's change events and the synchronous bus
// that delivers them to observers. Every store mutation publishes exactly
// one event covering the fields it touched.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies what kind of mutation an event describes.
type Type string

const (
	TypeCartUpdated       Type = "cart.updated"
	TypeCartCleared       Type = "cart.cleared"
	TypeWishlistToggled   Type = "wishlist.toggled"
	TypeWishlistPriority  Type = "wishlist.priority_changed"
	TypeOrderPlaced       Type = "order.placed"
	TypeOrderStatus       Type = "order.status_changed"
	TypeNotificationAdded Type = "notification.added"
	TypeNotificationsRead Type = "notifications.read"
	TypeSearchRecorded    Type = "search.recorded"
	TypeSearchCleared     Type = "search.cleared"
	TypeUserRegistered    Type = "user.registered"
	TypeUserSignedIn      Type = "user.signed_in"
	TypeUserSignedOut     Type = "user.signed_out"
	TypeProfileUpdated    Type = "profile.updated"
)

// Event is one store change notification. Payload is one of the
// JSON-serializable payload types below.
type Event struct {
	Type    Type        `json:"type"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

// Event payloads (JSON-serializable).

// CartUpdatedPayload describes the cart after an add/update/remove.
type CartUpdatedPayload struct {
	ItemCount     int   `json:"item_count"`
	SubtotalCents int64 `json:"subtotal_cents"`
}

// WishlistToggledPayload describes a wishlist membership change.
type WishlistToggledPayload struct {
	ProductID uuid.UUID `json:"product_id"`
	Added     bool      `json:"added"`
	Size      int       `json:"size"`
}

// WishlistPriorityPayload describes a priority change on an existing entry.
type WishlistPriorityPayload struct {
	ProductID uuid.UUID `json:"product_id"`
	Priority  string    `json:"priority"`
}

// OrderPlacedPayload describes a successful checkout.
type OrderPlacedPayload struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	TotalCents  int64     `json:"total_cents"`
	ItemCount   int       `json:"item_count"`
}

// OrderStatusPayload describes an order status transition.
type OrderStatusPayload struct {
	OrderID uuid.UUID `json:"order_id"`
	From    string    `json:"from"`
	To      string    `json:"to"`
}

// NotificationAddedPayload describes a new notification feed entry.
type NotificationAddedPayload struct {
	NotificationID uuid.UUID `json:"notification_id"`
	Kind           string    `json:"kind"`
	Unread         int       `json:"unread"`
}

// NotificationsReadPayload describes read-state changes.
type NotificationsReadPayload struct {
	Unread int `json:"unread"`
}

// SearchRecordedPayload describes a search-history append.
type SearchRecordedPayload struct {
	Query       string `json:"query"`
	HistorySize int    `json:"history_size"`
}

// UserPayload describes account events.
type UserPayload struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}
