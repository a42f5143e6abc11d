package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
)

// ToggleWishlist flips a product's wishlist membership. Added entries get
// medium priority. A notification is emitted on addition only, never on
// removal. Returns whether the product is now in the wishlist.
func (s *Store) ToggleWishlist(productID uuid.UUID) (added bool, err error) {
	s.mu.Lock()

	product, ok := s.productByIDLocked(productID)
	if !ok {
		s.mu.Unlock()
		return false, domain.ErrProductNotFound
	}

	idx := -1
	for i := range s.wishlist {
		if s.wishlist[i].ProductID == productID {
			idx = i
			break
		}
	}

	if idx >= 0 {
		s.wishlist = append(s.wishlist[:idx], s.wishlist[idx+1:]...)
		added = false
	} else {
		s.wishlist = append(s.wishlist, domain.WishlistItem{
			ID:        uuid.New(),
			ProductID: productID,
			AddedAt:   s.opts.Now(),
			Priority:  domain.WishlistPriorityMedium,
		})
		added = true
	}

	payload := events.WishlistToggledPayload{
		ProductID: productID,
		Added:     added,
		Size:      len(s.wishlist),
	}
	s.mu.Unlock()

	s.publish(events.TypeWishlistToggled, payload)

	if added {
		s.AddNotification(
			"Added to wishlist",
			fmt.Sprintf("%s is now on your wishlist.", product.Name),
			domain.NotificationTypeWishlist,
		)
	}

	return added, nil
}

// IsInWishlist is a pure membership test keyed by product id.
func (s *Store) IsInWishlist(productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.wishlist {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Wishlist returns a copy of the wishlist in add order.
func (s *Store) Wishlist() []domain.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WishlistItem(nil), s.wishlist...)
}

// SetWishlistPriority changes an entry's priority.
func (s *Store) SetWishlistPriority(itemID uuid.UUID, priority domain.WishlistPriority) error {
	if !priority.Valid() {
		return domain.Invalid("wishlist.priority", fmt.Sprintf("unknown priority %q", priority))
	}

	s.mu.Lock()

	idx := -1
	for i := range s.wishlist {
		if s.wishlist[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrWishlistItemNotFound
	}

	s.wishlist[idx].Priority = priority
	payload := events.WishlistPriorityPayload{
		ProductID: s.wishlist[idx].ProductID,
		Priority:  string(priority),
	}
	s.mu.Unlock()

	s.publish(events.TypeWishlistPriority, payload)
	return nil
}
