package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
)

var carriers = []string{"USPS", "UPS", "FedEx"}

// PlaceOrder checks out the current cart: it snapshots the cart lines and
// derived totals into a new order, marks it confirmed with pending and
// confirmed history entries, clears the cart, and emits an order
// confirmation notification. Fails with ErrEmptyCart when there is nothing
// to check out. The call simulates network latency and honors ctx
// cancellation during the wait.
func (s *Store) PlaceOrder(ctx context.Context, shippingAddress domain.Address, paymentMethod domain.PaymentMethod) (*domain.Order, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()

	if len(s.cart) == 0 {
		s.mu.Unlock()
		return nil, domain.ErrEmptyCart
	}

	summary, err := s.buildSummaryLocked(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	now := s.opts.Now()
	order := domain.Order{
		ID:            uuid.New(),
		Number:        s.orderNumberLocked(now),
		Items:         summary.Items,
		SubtotalCents: summary.SubtotalCents,
		ShippingCents: summary.ShippingCents,
		TaxCents:      summary.TaxCents,
		TotalCents:    summary.TotalCents,
		Status:        domain.OrderStatusConfirmed,
		History: []domain.StatusChange{
			{Status: domain.OrderStatusPending, At: now, Note: "Order received"},
			{Status: domain.OrderStatusConfirmed, At: now, Note: "Payment accepted, order confirmed"},
		},
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		PlacedAt:        now,
	}

	s.orders = append(s.orders, order)
	s.cart = nil

	payload := events.OrderPlacedPayload{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		TotalCents:  order.TotalCents,
		ItemCount:   summary.ItemCount,
	}
	s.mu.Unlock()

	s.publish(events.TypeOrderPlaced, payload)
	s.AddNotification(
		"Order confirmed",
		fmt.Sprintf("Order %s has been confirmed. Thank you for supporting independent makers!", order.Number),
		domain.NotificationTypeOrder,
	)

	s.opts.Logger.Info().
		Str("order_number", order.Number).
		Int64("total_cents", order.TotalCents).
		Int("items", summary.ItemCount).
		Msg("order placed")

	return &order, nil
}

// UpdateOrderStatus moves an order through its lifecycle. Transitions
// outside the legal state machine are rejected with
// ErrIllegalStatusTransition. Moving to shipped assigns a tracking number
// and carrier. A notification describes the change.
func (s *Store) UpdateOrderStatus(orderID uuid.UUID, next domain.OrderStatus) (*domain.Order, error) {
	if !next.Valid() {
		return nil, domain.Invalid("order.status", fmt.Sprintf("unknown order status %q", next))
	}

	s.mu.Lock()

	idx := s.orderIndexLocked(orderID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, domain.ErrOrderNotFound
	}

	current := s.orders[idx].Status
	if !current.CanTransitionTo(next) {
		s.mu.Unlock()
		return nil, domain.ErrIllegalStatusTransition
	}

	now := s.opts.Now()
	if next == domain.OrderStatusShipped {
		s.orders[idx].TrackingNumber = s.trackingNumberLocked()
		s.orders[idx].Carrier = carriers[s.opts.Rand.Intn(len(carriers))]
	}
	s.orders[idx].Status = next
	s.orders[idx].History = append(s.orders[idx].History, domain.StatusChange{
		Status: next,
		At:     now,
		Note:   statusNote(next, s.orders[idx]),
	})

	updated := cloneOrder(s.orders[idx])
	payload := events.OrderStatusPayload{
		OrderID: orderID,
		From:    string(current),
		To:      string(next),
	}
	s.mu.Unlock()

	s.publish(events.TypeOrderStatus, payload)
	s.AddNotification(
		"Order update",
		fmt.Sprintf("Order %s: %s", updated.Number, statusNote(next, updated)),
		domain.NotificationTypeOrder,
	)

	return &updated, nil
}

// CancelOrder cancels an order that is still cancellable (pending or
// confirmed).
func (s *Store) CancelOrder(orderID uuid.UUID) (*domain.Order, error) {
	s.mu.Lock()
	idx := s.orderIndexLocked(orderID)
	if idx < 0 {
		s.mu.Unlock()
		return nil, domain.ErrOrderNotFound
	}
	if !s.orders[idx].CanCancel() {
		s.mu.Unlock()
		return nil, domain.ErrOrderNotCancellable
	}
	s.mu.Unlock()

	return s.UpdateOrderStatus(orderID, domain.OrderStatusCancelled)
}

// GetOrder looks up an order by id.
func (s *Store) GetOrder(orderID uuid.UUID) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.orderIndexLocked(orderID)
	if idx < 0 {
		return nil, domain.ErrOrderNotFound
	}
	order := cloneOrder(s.orders[idx])
	return &order, nil
}

// Orders returns all orders, most recent first.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.orders))
	for i := range s.orders {
		out[len(s.orders)-1-i] = cloneOrder(s.orders[i])
	}
	return out
}

func (s *Store) orderIndexLocked(orderID uuid.UUID) int {
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

// orderNumberLocked generates an order number like EST-20260301-K4PQ.
// Callers hold s.mu (the random source is not goroutine-safe).
func (s *Store) orderNumberLocked(now time.Time) string {
	const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = alphabet[s.opts.Rand.Intn(len(alphabet))]
	}
	return fmt.Sprintf("EST-%s-%s", now.Format("20060102"), suffix)
}

func (s *Store) trackingNumberLocked() string {
	return fmt.Sprintf("EST%010d", s.opts.Rand.Int63n(1e10))
}

func statusNote(status domain.OrderStatus, order domain.Order) string {
	switch status {
	case domain.OrderStatusPending:
		return "Order received"
	case domain.OrderStatusConfirmed:
		return "Payment accepted, order confirmed"
	case domain.OrderStatusProcessing:
		return "The seller is preparing your order"
	case domain.OrderStatusShipped:
		return fmt.Sprintf("Shipped via %s, tracking %s", order.Carrier, order.TrackingNumber)
	case domain.OrderStatusOutForDelivery:
		return "Out for delivery"
	case domain.OrderStatusDelivered:
		return "Delivered"
	case domain.OrderStatusCancelled:
		return "Order cancelled"
	case domain.OrderStatusRefunded:
		return "Refund issued"
	case domain.OrderStatusReturned:
		return "Return received"
	default:
		return string(status)
	}
}

func cloneOrder(order domain.Order) domain.Order {
	out := order
	out.Items = cloneCartItems(order.Items)
	out.History = append([]domain.StatusChange(nil), order.History...)
	return out
}
