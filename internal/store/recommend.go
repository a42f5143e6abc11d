package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/eststy/eststy/internal/domain"
)

// Reason identifies a recommendation shelf.
type Reason string

const (
	ReasonTrending         Reason = "trending"
	ReasonViewedSimilar    Reason = "viewed_similar"
	ReasonBasedOnPurchases Reason = "based_on_purchases"
	ReasonBasedOnWishlist  Reason = "based_on_wishlist"
)

var scoredReasons = []Reason{ReasonTrending, ReasonViewedSimilar, ReasonBasedOnPurchases}

func (r Reason) Valid() bool {
	switch r {
	case ReasonTrending, ReasonViewedSimilar, ReasonBasedOnPurchases, ReasonBasedOnWishlist:
		return true
	}
	return false
}

// assignRecommendationScores draws one score per product per shelf at
// construction time, so shelves stay stable for the lifetime of the store.
// The wishlist shelf is not scored; it is derived from wishlist contents on
// every call.
func (s *Store) assignRecommendationScores() {
	s.recScores = make(map[Reason]map[uuid.UUID]float64, len(scoredReasons))
	for _, reason := range scoredReasons {
		scores := make(map[uuid.UUID]float64, len(s.products))
		for _, p := range s.products {
			scores[p.ID] = s.opts.Scorer(s.opts.Rand, p)
		}
		s.recScores[reason] = scores
	}
}

// Recommendations returns up to limit products for a shelf. Scored shelves
// order by descending stored score. The wishlist shelf returns products
// sharing a category with a wishlisted product, excluding the wishlisted
// products themselves. limit <= 0 means no limit.
func (s *Store) Recommendations(reason Reason, limit int) ([]domain.Product, error) {
	if !reason.Valid() {
		return nil, domain.Invalid("recommendations", fmt.Sprintf("unknown recommendation reason %q", reason))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Product
	if reason == ReasonBasedOnWishlist {
		out = s.wishlistRecommendationsLocked()
	} else {
		scores := s.recScores[reason]
		out = append([]domain.Product(nil), s.products...)
		sort.SliceStable(out, func(i, j int) bool {
			return scores[out[i].ID] > scores[out[j].ID]
		})
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) wishlistRecommendationsLocked() []domain.Product {
	wishlisted := make(map[uuid.UUID]bool, len(s.wishlist))
	categories := make(map[domain.Category]bool)
	for _, item := range s.wishlist {
		wishlisted[item.ProductID] = true
		if p, ok := s.productByIDLocked(item.ProductID); ok {
			categories[p.Category] = true
		}
	}

	var out []domain.Product
	for _, p := range s.products {
		if wishlisted[p.ID] || !categories[p.Category] {
			continue
		}
		out = append(out, p)
	}
	return out
}
