// Package store holds the application state for the Eststy storefront: the
// product catalog, cart, wishlist, orders, notification feed, and account.
// All collections live behind one mutex (single-owner mutable state); every
// mutation publishes exactly one synchronous change event on the bus, plus
// any notification-feed entries the mutation produces.
package store

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
	"github.com/eststy/eststy/internal/pricing"
	"github.com/eststy/eststy/internal/shipping"
)

// Defaults applied by New when an option is zero.
const (
	DefaultTaxRate               = 0.08875
	DefaultFlatShippingFeeCents  = 899
	DefaultFreeShippingThreshold = 7500
	DefaultGiftWrapFeeCents      = 499
	DefaultSearchHistoryLimit    = 50
	DefaultDeliveryMinDays       = 3
	DefaultDeliveryMaxDays       = 10
)

// Scorer assigns a recommendation score to a product. Scores are assigned
// once at store construction, not recomputed per request.
type Scorer func(rnd *rand.Rand, p domain.Product) float64

// Options configures a Store. Zero values fall back to defaults.
type Options struct {
	Tax                pricing.Calculator
	Shipping           shipping.Provider
	Estimator          *shipping.Estimator
	Scorer             Scorer
	GiftWrapFeeCents   int64
	SimulatedLatency   time.Duration
	SearchHistoryLimit int
	Now                func() time.Time
	Rand               *rand.Rand
	Logger             zerolog.Logger
	Bus                *events.Bus
}

// Store is the observable application state container.
type Store struct {
	mu   sync.Mutex
	opts Options

	products      []domain.Product
	sellers       map[uuid.UUID]domain.Seller
	cart          []domain.CartItem
	wishlist      []domain.WishlistItem
	orders        []domain.Order
	notifications []domain.Notification
	users         map[string]*domain.User // keyed by normalized email
	currentUser   *domain.User
	searchHistory []string
	recScores     map[Reason]map[uuid.UUID]float64
}

// New creates a store seeded with an immutable catalog. Products and sellers
// cannot be added, updated, or removed after construction.
func New(products []domain.Product, sellers []domain.Seller, opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Bus == nil {
		opts.Bus = events.NewBus()
	}
	if opts.Tax == nil {
		calc, err := pricing.NewPercentageCalculator(DefaultTaxRate)
		if err != nil {
			panic(err) // the default rate is a constant inside [0, 1]
		}
		opts.Tax = calc
	}
	if opts.Shipping == nil {
		opts.Shipping = shipping.NewThresholdProvider(DefaultFlatShippingFeeCents, DefaultFreeShippingThreshold)
	}
	if opts.Estimator == nil {
		opts.Estimator = shipping.NewEstimator(DefaultDeliveryMinDays, DefaultDeliveryMaxDays, opts.Rand, opts.Now)
	}
	if opts.Scorer == nil {
		opts.Scorer = func(rnd *rand.Rand, _ domain.Product) float64 { return rnd.Float64() }
	}
	if opts.GiftWrapFeeCents == 0 {
		opts.GiftWrapFeeCents = DefaultGiftWrapFeeCents
	}
	if opts.SearchHistoryLimit == 0 {
		opts.SearchHistoryLimit = DefaultSearchHistoryLimit
	}

	s := &Store{
		opts:     opts,
		products: append([]domain.Product(nil), products...),
		sellers:  make(map[uuid.UUID]domain.Seller, len(sellers)),
		users:    make(map[string]*domain.User),
	}
	for _, seller := range sellers {
		s.sellers[seller.ID] = seller
	}
	s.assignRecommendationScores()

	return s
}

// Subscribe registers an observer for store change events.
// Delivery is synchronous: the handler runs before the mutating call returns.
func (s *Store) Subscribe(h events.Handler) (unsubscribe func()) {
	return s.opts.Bus.Subscribe(h)
}

// Bus exposes the underlying event bus for bridges (NATS, metrics).
func (s *Store) Bus() *events.Bus {
	return s.opts.Bus
}

// publish emits one change event. Callers must not hold s.mu.
func (s *Store) publish(t events.Type, payload interface{}) {
	s.opts.Bus.Publish(events.Event{Type: t, At: s.opts.Now(), Payload: payload})
}

// simulateLatency models the artificial delay the UI prototype used for
// network-bound operations. Unlike the prototype it is cancellable.
func (s *Store) simulateLatency(ctx context.Context) error {
	d := s.opts.SimulatedLatency
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
