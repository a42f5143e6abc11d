package store

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
)

// SortOption selects the comparator for filtered product listings.
type SortOption string

const (
	SortFeatured       SortOption = "featured"
	SortPriceLowToHigh SortOption = "price_low_to_high"
	SortPriceHighToLow SortOption = "price_high_to_low"
	SortRating         SortOption = "rating"
	SortNewest         SortOption = "newest"
	SortBestSelling    SortOption = "best_selling"
)

// Valid reports whether o is a known sort option.
func (o SortOption) Valid() bool {
	switch o {
	case SortFeatured, SortPriceLowToHigh, SortPriceHighToLow, SortRating, SortNewest, SortBestSelling:
		return true
	}
	return false
}

// ProductFilter contains the predicates and ordering for a catalog listing.
// Zero values mean "no constraint"; MaxPriceCents <= 0 means no upper bound.
type ProductFilter struct {
	Search        string
	Category      *domain.Category
	MinPriceCents int64
	MaxPriceCents int64
	MinRating     float64
	InStockOnly   bool
	OnSaleOnly    bool
	Sort          SortOption
}

// FilterProducts returns the catalog filtered and ordered per filter.
// Price predicates use the effective (discounted) price. The sort is stable,
// so results are deterministic for equal keys. A non-empty search text is
// recorded into the bounded search history as a side effect.
func (s *Store) FilterProducts(filter ProductFilter) []domain.Product {
	s.mu.Lock()
	now := s.opts.Now()

	var recorded *events.SearchRecordedPayload
	if q := strings.TrimSpace(filter.Search); q != "" {
		s.recordSearchLocked(q)
		recorded = &events.SearchRecordedPayload{Query: q, HistorySize: len(s.searchHistory)}
	}

	matched := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if matchesFilter(p, filter, now) {
			matched = append(matched, p)
		}
	}
	s.mu.Unlock()

	if recorded != nil {
		s.publish(events.TypeSearchRecorded, *recorded)
	}

	sortProducts(matched, filter.Sort, now)
	return matched
}

// matchesFilter applies the predicate chain: search text, category, price
// range, rating floor, stock, and sale status.
func matchesFilter(p domain.Product, filter ProductFilter, now time.Time) bool {
	if q := strings.TrimSpace(filter.Search); q != "" && !matchesSearch(p, q) {
		return false
	}
	if filter.Category != nil && p.Category != *filter.Category {
		return false
	}

	price := p.EffectivePriceCents(now)
	if price < filter.MinPriceCents {
		return false
	}
	if filter.MaxPriceCents > 0 && price > filter.MaxPriceCents {
		return false
	}

	if p.Rating < filter.MinRating {
		return false
	}
	if filter.InStockOnly && !p.Inventory.InStock {
		return false
	}
	if filter.OnSaleOnly && !p.OnSale(now) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against the
// product's name, description, tags, and materials.
func matchesSearch(p domain.Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, material := range p.Materials {
		if strings.Contains(strings.ToLower(material), q) {
			return true
		}
	}
	return false
}

func sortProducts(products []domain.Product, option SortOption, now time.Time) {
	switch option {
	case SortPriceLowToHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePriceCents(now) < products[j].EffectivePriceCents(now)
		})
	case SortPriceHighToLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePriceCents(now) > products[j].EffectivePriceCents(now)
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortBestSelling:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReviewCount > products[j].ReviewCount
		})
	default: // featured
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating*float64(products[i].ReviewCount) > products[j].Rating*float64(products[j].ReviewCount)
		})
	}
}

// recordSearchLocked prepends query to the history, de-duplicating
// case-insensitively and keeping the list bounded. Callers hold s.mu.
func (s *Store) recordSearchLocked(query string) {
	for i, prev := range s.searchHistory {
		if strings.EqualFold(prev, query) {
			s.searchHistory = append(s.searchHistory[:i], s.searchHistory[i+1:]...)
			break
		}
	}

	s.searchHistory = append([]string{query}, s.searchHistory...)
	if len(s.searchHistory) > s.opts.SearchHistoryLimit {
		s.searchHistory = s.searchHistory[:s.opts.SearchHistoryLimit]
	}
}

// SearchHistory returns recorded searches, most recent first.
func (s *Store) SearchHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.searchHistory...)
}

// ClearSearchHistory empties the search history.
func (s *Store) ClearSearchHistory() {
	s.mu.Lock()
	s.searchHistory = nil
	s.mu.Unlock()

	s.publish(events.TypeSearchCleared, nil)
}

// Products returns the full catalog in seed order.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

// GetProduct looks up a product by id.
func (s *Store) GetProduct(id uuid.UUID) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// GetSeller looks up a seller by id.
func (s *Store) GetSeller(id uuid.UUID) (*domain.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seller, ok := s.sellers[id]
	if !ok {
		return nil, domain.ErrSellerNotFound
	}
	return &seller, nil
}

// ProductsBySeller returns the seller's listings in seed order.
func (s *Store) ProductsBySeller(sellerID uuid.UUID) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Product
	for _, p := range s.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}
