package store_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
	"github.com/eststy/eststy/internal/store"
)

func TestFilterProducts(t *testing.T) {
	ceramics := domain.CategoryCeramics

	tests := []struct {
		name        string
		filter      store.ProductFilter
		wantIDs     []uuid.UUID
		explanation string
	}{
		{
			name:        "no constraints returns full catalog",
			filter:      store.ProductFilter{},
			wantIDs:     []uuid.UUID{productNecklace, productMug, productHanging, productVase, productCamera},
			explanation: "featured sort orders by rating weighted by review count",
		},
		{
			name:        "category",
			filter:      store.ProductFilter{Category: &ceramics},
			wantIDs:     []uuid.UUID{productMug, productVase},
			explanation: "only ceramics match",
		},
		{
			name:        "in stock only drops the camera",
			filter:      store.ProductFilter{InStockOnly: true, Sort: store.SortPriceLowToHigh},
			wantIDs:     []uuid.UUID{productMug, productVase, productHanging, productNecklace},
			explanation: "hanging sorts at its discounted 4080, below the necklace",
		},
		{
			name:        "on sale only",
			filter:      store.ProductFilter{OnSaleOnly: true},
			wantIDs:     []uuid.UUID{productHanging},
			explanation: "only the wall hanging has an active discount window",
		},
		{
			name:        "price range uses effective price",
			filter:      store.ProductFilter{MinPriceCents: 4000, MaxPriceCents: 4100},
			wantIDs:     []uuid.UUID{productHanging},
			explanation: "list price 4800 is outside the range but 15% off lands at 4080",
		},
		{
			name:        "rating floor",
			filter:      store.ProductFilter{MinRating: 4.5, Sort: store.SortRating},
			wantIDs:     []uuid.UUID{productNecklace, productMug, productCamera},
			explanation: "hanging (4.2) and vase (3.9) fall below the floor",
		},
		{
			name:        "search matches materials",
			filter:      store.ProductFilter{Search: "Sterling"},
			wantIDs:     []uuid.UUID{productNecklace},
			explanation: "search is case-insensitive and covers materials",
		},
		{
			name:        "search with no hits",
			filter:      store.ProductFilter{Search: "typewriter"},
			wantIDs:     nil,
			explanation: "no product mentions a typewriter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(store.Options{})
			got := s.FilterProducts(tt.filter)

			gotIDs := make([]uuid.UUID, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			if len(tt.wantIDs) == 0 {
				assert.Empty(t, gotIDs, tt.explanation)
			} else {
				assert.Equal(t, tt.wantIDs, gotIDs, tt.explanation)
			}
		})
	}
}

func TestFilterProductsIsSubsetOfCatalog(t *testing.T) {
	s := newTestStore(store.Options{})
	catalog := make(map[uuid.UUID]bool)
	for _, p := range s.Products() {
		catalog[p.ID] = true
	}

	got := s.FilterProducts(store.ProductFilter{MinRating: 4.0, InStockOnly: true})
	for _, p := range got {
		assert.True(t, catalog[p.ID], "filtered result %s must come from the catalog", p.Name)
	}
}

func TestFilterProductsSortOrdering(t *testing.T) {
	s := newTestStore(store.Options{})

	lowToHigh := s.FilterProducts(store.ProductFilter{Sort: store.SortPriceLowToHigh})
	for i := 1; i < len(lowToHigh); i++ {
		assert.LessOrEqual(t,
			lowToHigh[i-1].EffectivePriceCents(fixedNow),
			lowToHigh[i].EffectivePriceCents(fixedNow))
	}

	newest := s.FilterProducts(store.ProductFilter{Sort: store.SortNewest})
	for i := 1; i < len(newest); i++ {
		assert.False(t, newest[i-1].CreatedAt.Before(newest[i].CreatedAt))
	}
}

func TestSearchHistory(t *testing.T) {
	s := newTestStore(store.Options{SearchHistoryLimit: 3})
	rec := recordEvents(s)

	s.FilterProducts(store.ProductFilter{Search: "mug"})
	s.FilterProducts(store.ProductFilter{Search: "vase"})
	s.FilterProducts(store.ProductFilter{Search: "MUG"}) // dedupes case-insensitively
	require.Equal(t, []string{"MUG", "vase"}, s.SearchHistory())

	s.FilterProducts(store.ProductFilter{Search: "camera"})
	s.FilterProducts(store.ProductFilter{Search: "necklace"})
	assert.Equal(t, []string{"necklace", "camera", "MUG"}, s.SearchHistory(),
		"history is bounded and keeps the most recent entries")

	assert.Equal(t, 5, rec.count(events.TypeSearchRecorded))

	// Browsing without a search text records nothing.
	s.FilterProducts(store.ProductFilter{InStockOnly: true})
	assert.Len(t, s.SearchHistory(), 3)
	assert.Equal(t, 5, rec.count(events.TypeSearchRecorded))

	s.ClearSearchHistory()
	assert.Empty(t, s.SearchHistory())
	assert.Equal(t, 1, rec.count(events.TypeSearchCleared))
}

func TestGetProduct(t *testing.T) {
	s := newTestStore(store.Options{})

	p, err := s.GetProduct(productMug)
	require.NoError(t, err)
	assert.Equal(t, "Hand-thrown stoneware mug", p.Name)

	_, err = s.GetProduct(uuid.New())
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestGetSeller(t *testing.T) {
	s := newTestStore(store.Options{})

	seller, err := s.GetSeller(sellerCeramics)
	require.NoError(t, err)
	assert.Equal(t, "Willow & Clay", seller.ShopName)

	_, err = s.GetSeller(uuid.New())
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
}

func TestProductsBySeller(t *testing.T) {
	s := newTestStore(store.Options{})

	got := s.ProductsBySeller(sellerCeramics)
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Equal(t, sellerCeramics, p.SellerID)
	}
}
