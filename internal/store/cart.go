package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
	"github.com/eststy/eststy/internal/pricing"
)

// AddToCart adds quantity units of a product to the cart. A line with the
// same product and identical customizations is merged rather than
// duplicated. The unit price is snapshotted from the product's effective
// price at add time; later discount changes do not reprice the line.
// Quantities are clamped to the product's max order quantity.
func (s *Store) AddToCart(productID uuid.UUID, quantity int, customizations map[string]domain.Customization, giftWrap bool) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	s.mu.Lock()

	product, ok := s.productByIDLocked(productID)
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrProductNotFound
	}
	if !product.Inventory.InStock {
		s.mu.Unlock()
		return nil, domain.ErrOutOfStock
	}

	var item domain.CartItem
	merged := false
	for i := range s.cart {
		if s.cart[i].SameSelection(productID, customizations) {
			s.cart[i].Quantity = clampQuantity(s.cart[i].Quantity+quantity, product.Inventory.MaxOrderQuantity)
			item = cloneCartItem(s.cart[i])
			merged = true
			break
		}
	}

	if !merged {
		now := s.opts.Now()
		line := domain.CartItem{
			ID:                uuid.New(),
			Product:           product,
			Quantity:          clampQuantity(quantity, product.Inventory.MaxOrderQuantity),
			UnitPriceCents:    product.EffectivePriceCents(now),
			Customizations:    cloneCustomizations(customizations),
			GiftWrap:          giftWrap,
			AddedAt:           now,
			EstimatedDelivery: s.opts.Estimator.Estimate(),
		}
		if giftWrap {
			line.GiftWrapFeeCents = s.opts.GiftWrapFeeCents
		}
		s.cart = append(s.cart, line)
		item = cloneCartItem(line)
	}

	payload := s.cartPayloadLocked()
	s.mu.Unlock()

	s.publish(events.TypeCartUpdated, payload)
	return &item, nil
}

// UpdateCartItemQuantity sets a line's quantity. A quantity of zero or less
// removes the line; anything above the product's max order quantity is
// clamped to it.
func (s *Store) UpdateCartItemQuantity(itemID uuid.UUID, quantity int) error {
	s.mu.Lock()

	idx := -1
	for i := range s.cart {
		if s.cart[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrCartItemNotFound
	}

	if quantity <= 0 {
		s.cart = append(s.cart[:idx], s.cart[idx+1:]...)
	} else {
		s.cart[idx].Quantity = clampQuantity(quantity, s.cart[idx].Product.Inventory.MaxOrderQuantity)
	}

	payload := s.cartPayloadLocked()
	s.mu.Unlock()

	s.publish(events.TypeCartUpdated, payload)
	return nil
}

// RemoveFromCart removes a line by id. Removing an absent id is a no-op and
// emits no event, since nothing changed.
func (s *Store) RemoveFromCart(itemID uuid.UUID) {
	s.mu.Lock()

	idx := -1
	for i := range s.cart {
		if s.cart[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	s.cart = append(s.cart[:idx], s.cart[idx+1:]...)
	payload := s.cartPayloadLocked()
	s.mu.Unlock()

	s.publish(events.TypeCartUpdated, payload)
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()

	s.publish(events.TypeCartCleared, nil)
}

// CartItems returns a copy of the cart lines in add order.
func (s *Store) CartItems() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCartItems(s.cart)
}

// CartItemCount is the total unit count across all lines.
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartItemCount(s.cart)
}

// CartSummary returns the cart with derived totals: subtotal, shipping from
// the configured provider, and tax from the configured calculator.
func (s *Store) CartSummary(ctx context.Context) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildSummaryLocked(ctx)
}

// buildSummaryLocked computes derived cart totals. Callers hold s.mu.
func (s *Store) buildSummaryLocked(ctx context.Context) (*domain.CartSummary, error) {
	items := cloneCartItems(s.cart)

	var subtotal int64
	for _, item := range items {
		subtotal += item.TotalPriceCents()
	}

	quote, err := s.opts.Shipping.Quote(ctx, subtotal)
	if err != nil {
		return nil, domain.Internal(err, "cart.summary", "failed to quote shipping")
	}

	tax, err := s.opts.Tax.CalculateTax(ctx, pricing.TaxParams{
		SubtotalCents: subtotal,
		ShippingCents: quote.CostCents,
	})
	if err != nil {
		return nil, domain.Internal(err, "cart.summary", "failed to calculate tax")
	}

	return &domain.CartSummary{
		Items:         items,
		ItemCount:     cartItemCount(items),
		SubtotalCents: subtotal,
		ShippingCents: quote.CostCents,
		TaxCents:      tax.TaxCents,
		TotalCents:    subtotal + quote.CostCents + tax.TaxCents,
	}, nil
}

func (s *Store) cartPayloadLocked() events.CartUpdatedPayload {
	var subtotal int64
	for _, item := range s.cart {
		subtotal += item.TotalPriceCents()
	}
	return events.CartUpdatedPayload{
		ItemCount:     cartItemCount(s.cart),
		SubtotalCents: subtotal,
	}
}

func (s *Store) productByIDLocked(id uuid.UUID) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func cartItemCount(items []domain.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func clampQuantity(quantity, max int) int {
	if max > 0 && quantity > max {
		return max
	}
	return quantity
}

func cloneCartItem(item domain.CartItem) domain.CartItem {
	out := item
	out.Customizations = cloneCustomizations(item.Customizations)
	return out
}

func cloneCartItems(items []domain.CartItem) []domain.CartItem {
	out := make([]domain.CartItem, len(items))
	for i, item := range items {
		out[i] = cloneCartItem(item)
	}
	return out
}

func cloneCustomizations(in map[string]domain.Customization) map[string]domain.Customization {
	if in == nil {
		return nil
	}
	out := make(map[string]domain.Customization, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
