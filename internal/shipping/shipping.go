// Package shipping quotes shipping charges and estimates delivery dates.
package shipping

import (
	"context"
	"errors"
)

var (
	// ErrInvalidSubtotal is returned for negative subtotals.
	ErrInvalidSubtotal = errors.New("subtotal must not be negative")
)

// Provider defines the interface for quoting shipping on a cart.
// Implementations can integrate with real carriers; the store ships with a
// threshold flat-rate provider.
type Provider interface {
	// Quote returns the shipping charge for a cart subtotal.
	Quote(ctx context.Context, subtotalCents int64) (*Quote, error)
}

// Quote is a shipping charge for a cart.
type Quote struct {
	CostCents int64
	Free      bool
}
