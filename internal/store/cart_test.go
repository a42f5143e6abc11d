package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eststy/eststy/internal/domain"
	"github.com/eststy/eststy/internal/events"
	"github.com/eststy/eststy/internal/store"
)

func TestAddToCart(t *testing.T) {
	s := newTestStore(store.Options{})
	rec := recordEvents(s)

	item, err := s.AddToCart(productMug, 2, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, int64(2500), item.UnitPriceCents)
	assert.Equal(t, 2, s.CartItemCount())
	assert.Equal(t, 1, rec.count(events.TypeCartUpdated))
}

func TestAddToCartErrors(t *testing.T) {
	s := newTestStore(store.Options{})

	_, err := s.AddToCart(productMug, 0, nil, false)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = s.AddToCart(productCamera, 1, nil, false)
	assert.ErrorIs(t, err, domain.ErrOutOfStock)

	_, err = s.AddToCart(productNecklace, -3, nil, false)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	assert.Zero(t, s.CartItemCount(), "failed adds must not touch the cart")
}

func TestAddToCartMergesSameSelection(t *testing.T) {
	s := newTestStore(store.Options{})
	engraved := map[string]domain.Customization{
		"engraving": {Value: "M+J", PriceCents: 500},
	}

	first, err := s.AddToCart(productMug, 1, engraved, false)
	require.NoError(t, err)

	merged, err := s.AddToCart(productMug, 2, engraved, false)
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID, "identical selections merge into one line")
	assert.Equal(t, 3, merged.Quantity)

	// A different customization value is a separate line.
	other, err := s.AddToCart(productMug, 1, map[string]domain.Customization{
		"engraving": {Value: "R+K", PriceCents: 500},
	}, false)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Len(t, s.CartItems(), 2)
}

func TestAddToCartClampsToMaxOrderQuantity(t *testing.T) {
	s := newTestStore(store.Options{})

	item, err := s.AddToCart(productHanging, 2, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	// Max order quantity for the hanging is 3; 2+2 clamps to 3.
	item, err = s.AddToCart(productHanging, 2, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
}

func TestAddToCartSnapshotsDiscountedPrice(t *testing.T) {
	now := fixedNow
	s := newTestStore(store.Options{Now: func() time.Time { return now }})

	item, err := s.AddToCart(productHanging, 1, nil, false)
	require.NoError(t, err)
	assert.Equal(t, int64(4080), item.UnitPriceCents, "4800 at 15% off")

	// The discount window closes; the line keeps its snapshot price.
	now = fixedNow.AddDate(0, 1, 0)
	items := s.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, int64(4080), items[0].UnitPriceCents)
	assert.Equal(t, int64(4800), items[0].Product.EffectivePriceCents(now))
}

func TestCartLineTotalWithExtras(t *testing.T) {
	s := newTestStore(store.Options{})

	item, err := s.AddToCart(productMug, 3, map[string]domain.Customization{
		"engraving": {Value: "M+J", PriceCents: 500},
	}, true)
	require.NoError(t, err)

	// (2500 + 500 + 499) * 3
	assert.Equal(t, int64(499), item.GiftWrapFeeCents)
	assert.Equal(t, int64(3499), item.UnitTotalCents())
	assert.Equal(t, int64(10497), item.TotalPriceCents())
}

func TestCartSummary(t *testing.T) {
	tests := []struct {
		name         string
		fill         func(t *testing.T, s *store.Store)
		wantSubtotal int64
		wantShipping int64
		wantTax      int64
		wantTotal    int64
		explanation  string
	}{
		{
			name: "above free shipping threshold",
			fill: func(t *testing.T, s *store.Store) {
				_, err := s.AddToCart(productNecklace, 1, nil, false)
				require.NoError(t, err)
			},
			wantSubtotal: 12400,
			wantShipping: 0,
			wantTax:      1101,
			wantTotal:    13501,
			explanation:  "12400 >= 7500 ships free; 12400 * 0.08875 = 1100.5 rounds to 1101",
		},
		{
			name: "below threshold pays flat shipping",
			fill: func(t *testing.T, s *store.Store) {
				_, err := s.AddToCart(productMug, 1, nil, false)
				require.NoError(t, err)
			},
			wantSubtotal: 2500,
			wantShipping: 899,
			wantTax:      302,
			wantTotal:    3701,
			explanation:  "tax applies to subtotal plus shipping: 3399 * 0.08875 rounds to 302",
		},
		{
			name:         "empty cart is all zeros",
			fill:         func(t *testing.T, s *store.Store) {},
			wantSubtotal: 0,
			wantShipping: 899,
			wantTax:      80,
			wantTotal:    979,
			explanation:  "an empty cart still quotes flat shipping; 899 * 0.08875 rounds to 80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(store.Options{})
			tt.fill(t, s)

			summary, err := s.CartSummary(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubtotal, summary.SubtotalCents, tt.explanation)
			assert.Equal(t, tt.wantShipping, summary.ShippingCents, tt.explanation)
			assert.Equal(t, tt.wantTax, summary.TaxCents, tt.explanation)
			assert.Equal(t, tt.wantTotal, summary.TotalCents, tt.explanation)
			assert.Equal(t, summary.SubtotalCents+summary.ShippingCents+summary.TaxCents, summary.TotalCents)
		})
	}
}

func TestCartSummaryIsAdditive(t *testing.T) {
	s := newTestStore(store.Options{})

	_, err := s.AddToCart(productMug, 2, nil, false)
	require.NoError(t, err)
	_, err = s.AddToCart(productVase, 1, nil, true)
	require.NoError(t, err)

	summary, err := s.CartSummary(context.Background())
	require.NoError(t, err)

	var subtotal int64
	for _, item := range summary.Items {
		subtotal += item.TotalPriceCents()
	}
	assert.Equal(t, subtotal, summary.SubtotalCents, "subtotal is the sum of line totals")
	assert.Equal(t, 3, summary.ItemCount)
}

func TestUpdateCartItemQuantity(t *testing.T) {
	s := newTestStore(store.Options{})

	item, err := s.AddToCart(productMug, 2, nil, false)
	require.NoError(t, err)

	require.NoError(t, s.UpdateCartItemQuantity(item.ID, 5))
	assert.Equal(t, 5, s.CartItemCount())

	// Above the product max of 10 clamps.
	require.NoError(t, s.UpdateCartItemQuantity(item.ID, 25))
	assert.Equal(t, 10, s.CartItemCount())

	// Zero removes the line.
	require.NoError(t, s.UpdateCartItemQuantity(item.ID, 0))
	assert.Empty(t, s.CartItems())

	err = s.UpdateCartItemQuantity(item.ID, 1)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	s := newTestStore(store.Options{})
	item, err := s.AddToCart(productMug, 1, nil, false)
	require.NoError(t, err)

	rec := recordEvents(s)

	s.RemoveFromCart(item.ID)
	assert.Empty(t, s.CartItems())
	assert.Equal(t, 1, rec.count(events.TypeCartUpdated))

	// Removing an id that is not there changes nothing and stays silent.
	s.RemoveFromCart(item.ID)
	assert.Equal(t, 1, rec.count(events.TypeCartUpdated))
}

func TestClearCart(t *testing.T) {
	s := newTestStore(store.Options{})
	_, err := s.AddToCart(productMug, 2, nil, false)
	require.NoError(t, err)

	rec := recordEvents(s)
	s.ClearCart()
	assert.Empty(t, s.CartItems())
	assert.Equal(t, []events.Type{events.TypeCartCleared}, rec.types())
}
