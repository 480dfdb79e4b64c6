// Package dist provides the statistical primitives behind the data
// generators: truncated-normal draws, weighted categorical choice, and
// log-normal cycle times. All sampling goes through an explicit Sampler so
// a run can be seeded deterministically.
package dist

import (
	"math"
	"math/rand"
)

// Weighted pairs a categorical value with its relative weight. Weights need
// not sum to 1.
type Weighted struct {
	Value  string
	Weight float64
}

// Sampler wraps a private random source. Generators receive a *Sampler
// rather than sharing package-level randomness.
type Sampler struct {
	rng *rand.Rand
}

func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform draw from [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Chance reports true with probability p.
func (s *Sampler) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// IntRange returns a uniform int in [lo, hi] inclusive. Degenerate ranges
// collapse to lo.
func (s *Sampler) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Pick returns a uniformly chosen element of pool.
func (s *Sampler) Pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

// SampleWithout returns n distinct elements of pool, chosen without
// replacement. When n >= len(pool) a shuffled copy of the whole pool is
// returned.
func (s *Sampler) SampleWithout(pool []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(pool) {
		n = len(pool)
	}
	perm := s.rng.Perm(len(pool))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}

// Indices returns k distinct indices in [0, n), chosen without
// replacement. When k >= n every index is returned, in random order.
func (s *Sampler) Indices(n, k int) []int {
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}
	return s.rng.Perm(n)[:k]
}

// TruncatedNormal draws from N(mean, std) and clamps the result into
// [min, max]. Clamping piles probability mass onto the boundaries; callers
// needing an unbiased truncated distribution must not use this.
func (s *Sampler) TruncatedNormal(mean, std, min, max float64) float64 {
	v := s.rng.NormFloat64()*std + mean
	return math.Max(min, math.Min(max, v))
}

// WeightedChoice picks a value with probability proportional to its weight.
func (s *Sampler) WeightedChoice(items []Weighted) string {
	var total float64
	for _, it := range items {
		total += it.Weight
	}
	if total <= 0 {
		return items[0].Value
	}
	r := s.rng.Float64() * total
	for _, it := range items {
		r -= it.Weight
		if r < 0 {
			return it.Value
		}
	}
	return items[len(items)-1].Value
}

// LogNormal draws X ~ LogNormal(meanLog, stdLog).
func (s *Sampler) LogNormal(meanLog, stdLog float64) float64 {
	return math.Exp(s.rng.NormFloat64()*stdLog + meanLog)
}

// LogNormalCycleTime draws a completion cycle time in whole days: a
// log-normal draw floored to an integer and clamped to at least minDays.
func (s *Sampler) LogNormalCycleTime(meanLog, stdLog float64, minDays int) int {
	days := int(s.LogNormal(meanLog, stdLog))
	if days < minDays {
		days = minDays
	}
	return days
}

// TeamSize draws a team size from a truncated normal distribution,
// reflecting industry benchmarks (mean ~8, std ~4).
func (s *Sampler) TeamSize(mean, std float64, min, max int) int {
	size := int(s.TruncatedNormal(mean, std, float64(min), float64(max)))
	if size < min {
		size = min
	}
	if size > max {
		size = max
	}
	return size
}
