package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/eststy/eststy/internal/events"
)

// BusinessMetrics holds Prometheus metrics for business-level observability.
type BusinessMetrics struct {
	// Catalog engagement
	Searches        prometheus.Counter
	SearchesCleared prometheus.Counter

	// Cart
	CartUpdates prometheus.Counter
	CartClears  prometheus.Counter
	CartValue   prometheus.Histogram

	// Orders
	OrdersPlaced   prometheus.Counter
	OrderValue     prometheus.Histogram
	OrderItemCount prometheus.Histogram
	OrderStatus    *prometheus.CounterVec

	// Wishlist
	WishlistToggles *prometheus.CounterVec

	// Notifications
	NotificationsAdded *prometheus.CounterVec

	// Accounts
	Signups  prometheus.Counter
	SignIns  prometheus.Counter
	SignOuts prometheus.Counter
}

// NewBusinessMetrics creates and registers all business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "eststy"
	}

	subsystem := "business"

	return &BusinessMetrics{
		Searches: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "searches_total",
				Help:      "Total catalog searches recorded",
			},
		),
		SearchesCleared: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "search_history_cleared_total",
				Help:      "Total search history clears",
			},
		),
		CartUpdates: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_updates_total",
				Help:      "Total cart add/update/remove operations",
			},
		),
		CartClears: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_cleared_total",
				Help:      "Total carts cleared",
			},
		),
		CartValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_value_cents",
				Help:      "Cart subtotal after each update",
				Buckets:   []float64{1000, 2500, 5000, 7500, 10000, 15000, 25000, 50000},
			},
		),
		OrdersPlaced: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "orders_placed_total",
				Help:      "Total orders placed",
			},
		),
		OrderValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_value_cents",
				Help:      "Order value distribution in cents",
				Buckets:   []float64{1000, 2500, 5000, 7500, 10000, 15000, 25000, 50000, 100000},
			},
		),
		OrderItemCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_item_count",
				Help:      "Number of items per order",
				Buckets:   []float64{1, 2, 3, 5, 10, 15, 20},
			},
		),
		OrderStatus: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "order_status_changes_total",
				Help:      "Total order status transitions",
			},
			[]string{"to"},
		),
		WishlistToggles: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "wishlist_toggles_total",
				Help:      "Total wishlist additions and removals",
			},
			[]string{"action"}, // action: add, remove
		),
		NotificationsAdded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "notifications_added_total",
				Help:      "Total notification feed entries by kind",
			},
			[]string{"kind"},
		),
		Signups: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "signups_total",
				Help:      "Total successful account registrations",
			},
		),
		SignIns: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sign_ins_total",
				Help:      "Total successful sign-ins",
			},
		),
		SignOuts: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sign_outs_total",
				Help:      "Total sign-outs",
			},
		),
	}
}

// Observe updates metrics from one store event. Wire it to the store with
// store.Subscribe(metrics.Observe).
func (m *BusinessMetrics) Observe(e events.Event) {
	switch e.Type {
	case events.TypeSearchRecorded:
		m.Searches.Inc()
	case events.TypeSearchCleared:
		m.SearchesCleared.Inc()
	case events.TypeCartUpdated:
		m.CartUpdates.Inc()
		if p, ok := e.Payload.(events.CartUpdatedPayload); ok {
			m.CartValue.Observe(float64(p.SubtotalCents))
		}
	case events.TypeCartCleared:
		m.CartClears.Inc()
	case events.TypeOrderPlaced:
		m.OrdersPlaced.Inc()
		if p, ok := e.Payload.(events.OrderPlacedPayload); ok {
			m.OrderValue.Observe(float64(p.TotalCents))
			m.OrderItemCount.Observe(float64(p.ItemCount))
		}
	case events.TypeOrderStatus:
		if p, ok := e.Payload.(events.OrderStatusPayload); ok {
			m.OrderStatus.WithLabelValues(p.To).Inc()
		}
	case events.TypeWishlistToggled:
		if p, ok := e.Payload.(events.WishlistToggledPayload); ok {
			action := "remove"
			if p.Added {
				action = "add"
			}
			m.WishlistToggles.WithLabelValues(action).Inc()
		}
	case events.TypeNotificationAdded:
		if p, ok := e.Payload.(events.NotificationAddedPayload); ok {
			m.NotificationsAdded.WithLabelValues(p.Kind).Inc()
		}
	case events.TypeUserRegistered:
		m.Signups.Inc()
	case events.TypeUserSignedIn:
		m.SignIns.Inc()
	case events.TypeUserSignedOut:
		m.SignOuts.Inc()
	}
}
