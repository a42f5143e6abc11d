// Package pricing computes order taxes. Implementations are pluggable so a
// real jurisdiction-aware provider can replace the flat percentage rate
// behind the same interface.
package pricing

import "context"

// Calculator defines the interface for tax calculation.
// Implementations: PercentageCalculator, NoTaxCalculator.
type Calculator interface {
	// CalculateTax computes tax for a cart subtotal and shipping charge.
	// Returns the tax amount in cents.
	CalculateTax(ctx context.Context, params TaxParams) (*TaxResult, error)
}

// TaxParams contains all information needed for tax calculation.
type TaxParams struct {
	SubtotalCents int64
	ShippingCents int64
}

// TaxResult contains the calculated tax amount.
type TaxResult struct {
	TaxCents int64
	Rate     float64
}
