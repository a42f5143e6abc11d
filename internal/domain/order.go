package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order domain errors.
var (
	ErrOrderNotFound           = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrIllegalStatusTransition = &Error{Code: ECONFLICT, Message: "Order status transition not allowed"}
	ErrOrderNotCancellable     = &Error{Code: ECONFLICT, Message: "Order can no longer be cancelled"}
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
	OrderStatusRefunded       OrderStatus = "refunded"
	OrderStatusReturned       OrderStatus = "returned"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// orderTransitions is the legal state machine: forward transitions only,
// plus the cancelled/refunded/returned exits.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:      {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing:     {OrderStatusShipped},
	OrderStatusShipped:        {OrderStatusOutForDelivery, OrderStatusReturned},
	OrderStatusOutForDelivery: {OrderStatusDelivered, OrderStatusReturned},
	OrderStatusDelivered:      {OrderStatusReturned, OrderStatusRefunded},
	OrderStatusCancelled:      {OrderStatusRefunded},
	OrderStatusReturned:       {OrderStatusRefunded},
	OrderStatusRefunded:       {},
}

// CanTransitionTo reports whether the state machine permits moving from s
// to next. Self-transitions are not permitted.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StatusChange is one entry in an order's append-only status history.
type StatusChange struct {
	Status OrderStatus `json:"status"`
	At     time.Time   `json:"at"`
	Note   string      `json:"note,omitempty"`
}

// Order is an immutable snapshot of a checked-out cart, mutable only in
// Status and its appended History entries.
type Order struct {
	ID              uuid.UUID      `json:"id"`
	Number          string         `json:"number"`
	Items           []CartItem     `json:"items"`
	SubtotalCents   int64          `json:"subtotal_cents"`
	ShippingCents   int64          `json:"shipping_cents"`
	TaxCents        int64          `json:"tax_cents"`
	TotalCents      int64          `json:"total_cents"`
	Status          OrderStatus    `json:"status"`
	History         []StatusChange `json:"history"`
	TrackingNumber  string         `json:"tracking_number,omitempty"`
	Carrier         string         `json:"carrier,omitempty"`
	ShippingAddress Address        `json:"shipping_address"`
	PaymentMethod   PaymentMethod  `json:"payment_method"`
	PlacedAt        time.Time      `json:"placed_at"`
}

// CanCancel reports whether the order is still cancellable by the buyer.
func (o Order) CanCancel() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// CanTrack reports whether tracking information is available.
func (o Order) CanTrack() bool {
	if o.TrackingNumber == "" {
		return false
	}
	return o.Status == OrderStatusShipped || o.Status == OrderStatusOutForDelivery
}
