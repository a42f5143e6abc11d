package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies entries in the notification feed.
type NotificationType string

const (
	NotificationTypeOrder     NotificationType = "order"
	NotificationTypePromotion NotificationType = "promotion"
	NotificationTypeWishlist  NotificationType = "wishlist"
	NotificationTypeSystem    NotificationType = "system"
)

// Notification is one entry in the user's notification feed.
// The unread count is always derived from the feed, never stored.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
}

var ErrNotificationNotFound = &Error{Code: ENOTFOUND, Message: "Notification not found"}
