package store_test

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
	"github.com/eststy/eststy/internal/store"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// Fixture catalog ids, stable across all store tests.
var (
	sellerCeramics = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	sellerJewelry  = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	productMug      = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	productNecklace = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002")
	productHanging  = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003")
	productCamera   = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000004")
	productVase     = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000005")
)

func fixtureSellers() []domain.Seller {
	return []domain.Seller{
		{ID: sellerCeramics, Name: "Maya Torres", ShopName: "Willow & Clay", Rating: 4.9, TotalSales: 1200, Verified: true},
		{ID: sellerJewelry, Name: "June Park", ShopName: "Silverline Studio", Rating: 4.7, TotalSales: 860},
	}
}

func fixtureProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          productMug,
			Name:        "Hand-thrown stoneware mug",
			Description: "A 12oz mug glazed in speckled cream.",
			PriceCents:  2500,
			Category:    domain.CategoryCeramics,
			Rating:      4.8,
			ReviewCount: 120,
			Tags:        []string{"mug", "kitchen"},
			Materials:   []string{"stoneware"},
			Inventory:   domain.Inventory{StockQuantity: 14, InStock: true, MaxOrderQuantity: 10},
			CreatedAt:   fixedNow.AddDate(0, -3, 0),
			SellerID:    sellerCeramics,
		},
		{
			ID:          productNecklace,
			Name:        "Silver leaf necklace",
			Description: "Sterling silver pendant on an 18in chain.",
			PriceCents:  12400,
			Category:    domain.CategoryJewelry,
			Rating:      4.9,
			ReviewCount: 310,
			Tags:        []string{"necklace", "gift"},
			Materials:   []string{"sterling silver"},
			Inventory:   domain.Inventory{StockQuantity: 6, InStock: true, MaxOrderQuantity: 5},
			CreatedAt:   fixedNow.AddDate(0, -1, 0),
			SellerID:    sellerJewelry,
		},
		{
			ID:          productHanging,
			Name:        "Woven wall hanging",
			Description: "Hand-woven cotton and wool wall art.",
			PriceCents:  4800,
			Category:    domain.CategoryHomeDecor,
			Rating:      4.2,
			ReviewCount: 45,
			Tags:        []string{"weaving", "wall art"},
			Materials:   []string{"cotton", "wool"},
			Inventory:   domain.Inventory{StockQuantity: 3, InStock: true, MaxOrderQuantity: 3},
			Discount: &domain.Discount{
				Percentage: 15,
				StartsAt:   fixedNow.AddDate(0, 0, -7),
				EndsAt:     fixedNow.AddDate(0, 0, 7),
				Active:     true,
			},
			CreatedAt: fixedNow.AddDate(0, -6, 0),
			SellerID:  sellerCeramics,
		},
		{
			ID:          productCamera,
			Name:        "Vintage rangefinder camera",
			Description: "1962 rangefinder, serviced and film-tested.",
			PriceCents:  9900,
			Category:    domain.CategoryVintage,
			Rating:      4.6,
			ReviewCount: 18,
			Tags:        []string{"camera", "film"},
			Inventory:   domain.Inventory{StockQuantity: 0, InStock: false, MaxOrderQuantity: 1},
			CreatedAt:   fixedNow.AddDate(-1, 0, 0),
			SellerID:    sellerJewelry,
		},
		{
			ID:          productVase,
			Name:        "Ceramic bud vase",
			Description: "Small wheel-thrown vase in matte white.",
			PriceCents:  3200,
			Category:    domain.CategoryCeramics,
			Rating:      3.9,
			ReviewCount: 22,
			Tags:        []string{"vase"},
			Materials:   []string{"porcelain"},
			Inventory:   domain.Inventory{StockQuantity: 9, InStock: true, MaxOrderQuantity: 4},
			CreatedAt:   fixedNow.AddDate(0, 0, -10),
			SellerID:    sellerCeramics,
		},
	}
}

// newTestStore builds a store over the fixture catalog with a fixed clock
// and seeded randomness so tests are deterministic.
func newTestStore(opts store.Options) *store.Store {
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	return store.New(fixtureProducts(), fixtureSellers(), opts)
}

// eventRecorder collects every event published by the store under test.
type eventRecorder struct {
	events []events.Event
}

func (r *eventRecorder) handle(e events.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) types() []events.Type {
	out := make([]events.Type, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func (r *eventRecorder) count(t events.Type) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func recordEvents(s *store.Store) *eventRecorder {
	rec := &eventRecorder{}
	s.Subscribe(rec.handle)
	return rec
}
