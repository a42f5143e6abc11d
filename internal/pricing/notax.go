package pricing

import "context"

// NoTaxCalculator always returns zero tax. Useful in tests and for
// jurisdictions with no sales tax.
type NoTaxCalculator struct{}

// NewNoTaxCalculator creates a calculator that charges no tax.
func NewNoTaxCalculator() Calculator {
	return &NoTaxCalculator{}
}

// CalculateTax returns zero tax for any input.
func (c *NoTaxCalculator) CalculateTax(_ context.Context, _ TaxParams) (*TaxResult, error) {
	return &TaxResult{TaxCents: 0, Rate: 0}, nil
}
