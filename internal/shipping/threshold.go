package shipping

import "context"

// ThresholdProvider charges a flat fee below a free-shipping threshold and
// nothing at or above it. The boundary is inclusive: a subtotal exactly at
// the threshold ships free.
type ThresholdProvider struct {
	flatFeeCents       int64
	freeThresholdCents int64
}

// NewThresholdProvider creates a flat-rate provider with a free-shipping
// threshold.
func NewThresholdProvider(flatFeeCents, freeThresholdCents int64) Provider {
	return &ThresholdProvider{
		flatFeeCents:       flatFeeCents,
		freeThresholdCents: freeThresholdCents,
	}
}

// Quote returns the flat fee, or a free quote once the subtotal reaches the
// threshold.
func (p *ThresholdProvider) Quote(_ context.Context, subtotalCents int64) (*Quote, error) {
	if subtotalCents < 0 {
		return nil, ErrInvalidSubtotal
	}
	if subtotalCents >= p.freeThresholdCents {
		return &Quote{CostCents: 0, Free: true}, nil
	}
	return &Quote{CostCents: p.flatFeeCents, Free: false}, nil
}
