// Package metrics fabricates plausible performance numbers for campaigns
// that have never run on a real ad network.
package metrics

import (
	"math"
	"math/rand/v2"
	"sync"

	"adcraft/internal/core/domain"
)

// Synthesizer produces simulated Metrics from a campaign's budget, platform
// and objective. It is safe for concurrent use.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthesizer returns a Synthesizer drawing from rng. A nil rng uses a
// randomly seeded source.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Synthesizer{rng: rng}
}

// Synthesize returns simulated metrics for c. All values are non-negative.
func (s *Synthesizer) Synthesize(c domain.Campaign) domain.Metrics {
	budget := float64(max(c.Budget, 0))

	s.mu.Lock()
	spendFactor := uniform(s.rng, 0.2, 1.0)
	revenueFactor := uniform(s.rng, 1, 4)
	s.mu.Unlock()

	spend := math.Round(budget * spendFactor)
	impressions := math.Round(spend / CPM(c.Platform) * 1000)
	clicks := math.Round(impressions * CTR(c.Platform))
	conversions := math.Round(clicks * ConversionRate(c.Objective))
	revenue := math.Round(spend * revenueFactor)

	return domain.Metrics{
		Impressions: count(impressions),
		Clicks:      count(clicks),
		Conversions: count(conversions),
		Spend:       count(spend),
		Revenue:     count(revenue),
	}
}

// count converts f to an int64 clamped to [0, math.MaxInt64].
func count(f float64) int64 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(f)
}

// CPM is the simulated cost per thousand impressions on a platform.
func CPM(p domain.Platform) float64 {
	switch p {
	case domain.PlatformLinkedIn:
		return 35
	case domain.PlatformTikTok:
		return 5
	case domain.PlatformGoogle:
		return 15
	default:
		return 10
	}
}

// CTR is the simulated click-through rate on a platform, as a fraction.
func CTR(p domain.Platform) float64 {
	switch p {
	case domain.PlatformMeta:
		return 0.02
	case domain.PlatformGoogle:
		return 0.035
	default:
		return 0.015
	}
}

// ConversionRate is the simulated click to conversion rate for an
// objective, as a fraction.
func ConversionRate(o domain.Objective) float64 {
	switch o {
	case domain.ObjectiveLeads:
		return 0.05
	case domain.ObjectiveAwareness:
		return 0.001
	default:
		return 0.02
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
