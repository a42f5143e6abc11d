// Package worker runs the background order progression loop. The demo has
// no real fulfillment pipeline, so a ticker advances every in-flight order
// one step toward delivery, driving the same status transitions, events,
// and notifications a real pipeline would.
package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/store"
)

// Config holds progression worker configuration.
type Config struct {
	// Interval is how often to advance in-flight orders.
	Interval time.Duration
}

// nextStep maps each in-flight status to its happy-path successor.
var nextStep = map[domain.OrderStatus]domain.OrderStatus{
	domain.OrderStatusConfirmed:      domain.OrderStatusProcessing,
	domain.OrderStatusProcessing:     domain.OrderStatusShipped,
	domain.OrderStatusShipped:        domain.OrderStatusOutForDelivery,
	domain.OrderStatusOutForDelivery: domain.OrderStatusDelivered,
}

// Worker advances orders through their lifecycle on a fixed interval.
type Worker struct {
	config Config
	store  *store.Store
	logger zerolog.Logger
}

// NewWorker creates an order progression worker.
func NewWorker(s *store.Store, config Config, logger zerolog.Logger) *Worker {
	if config.Interval == 0 {
		config.Interval = 30 * time.Second
	}
	return &Worker{config: config, store: s, logger: logger}
}

// Start runs the progression loop until the context is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.config.Interval).Msg("order progression worker starting")

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("order progression worker stopping")
			return ctx.Err()
		case <-ticker.C:
			w.advanceOrders()
		}
	}
}

// advanceOrders moves every in-flight order one step forward.
func (w *Worker) advanceOrders() {
	for _, order := range w.store.Orders() {
		next, ok := nextStep[order.Status]
		if !ok {
			continue
		}

		if _, err := w.store.UpdateOrderStatus(order.ID, next); err != nil {
			w.logger.Error().Err(err).
				Str("order_number", order.Number).
				Str("to", string(next)).
				Msg("failed to advance order")
			continue
		}

		w.logger.Debug().
			Str("order_number", order.Number).
			Str("to", string(next)).
			Msg("order advanced")
	}
}
