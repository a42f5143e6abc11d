package pricing

import (
	"context"
	"math"
)

// PercentageCalculator calculates tax using a single percentage rate
// applied to subtotal plus shipping.
type PercentageCalculator struct {
	rate float64 // e.g. 0.08875 for 8.875%
}

// NewPercentageCalculator creates a percentage-based tax calculator.
// The rate must be in [0, 1].
func NewPercentageCalculator(rate float64) (Calculator, error) {
	if rate < 0 || rate > 1 {
		return nil, ErrInvalidRate
	}
	return &PercentageCalculator{rate: rate}, nil
}

// CalculateTax computes tax on subtotal + shipping using the configured
// rate, rounded to the nearest cent.
func (c *PercentageCalculator) CalculateTax(_ context.Context, params TaxParams) (*TaxResult, error) {
	taxable := params.SubtotalCents + params.ShippingCents
	return &TaxResult{
		TaxCents: int64(math.Round(float64(taxable) * c.rate)),
		Rate:     c.rate,
	}, nil
}
