package shipping

import (
	"math/rand"
	"time"
)

// Estimator produces estimated delivery dates a configurable number of days
// out. The random source is injected so estimates are deterministic in tests.
type Estimator struct {
	minDays int
	maxDays int
	rnd     *rand.Rand
	now     func() time.Time
}

// NewEstimator creates a delivery estimator picking uniformly from
// [minDays, maxDays] days after now. A nil rnd falls back to a time-seeded
// source; a nil now falls back to time.Now.
func NewEstimator(minDays, maxDays int, rnd *rand.Rand, now func() time.Time) *Estimator {
	if minDays < 0 {
		minDays = 0
	}
	if maxDays < minDays {
		maxDays = minDays
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Estimator{minDays: minDays, maxDays: maxDays, rnd: rnd, now: now}
}

// Estimate returns the estimated delivery date for an item added now.
func (e *Estimator) Estimate() time.Time {
	days := e.minDays
	if spread := e.maxDays - e.minDays; spread > 0 {
		days += e.rnd.Intn(spread + 1)
	}
	return e.now().AddDate(0, 0, days)
}
