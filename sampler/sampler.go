package sampler

import (
	"errors"
	"math/rand"
	"sort"
)

// Sentinel errors returned by the sampler.
var (
	// ErrUndefinedHoldingTime indicates a holding-time draw was requested for
	// a state whose leaving rate is zero (or negative). The exponential
	// distribution is undefined there; the failure must not be coerced into
	// an arbitrary duration.
	ErrUndefinedHoldingTime = errors.New("sampler: holding time undefined for non-positive leaving rate")
)

// binarySearchThreshold is the row length above which Index switches from a
// linear scan to sort.Search. The crossover is approximate; both paths are
// behaviorally identical.
const binarySearchThreshold = 64

// panicNilRand is the stable message for constructing a Sampler without a
// generator (programmer error).
const panicNilRand = "sampler: New: rng must be non-nil"

// Sampler draws successor states and holding times from an injected
// random generator. It is deliberately stateless beyond the generator:
// every call is an independent draw.
//
// A Sampler is NOT safe for concurrent use; *rand.Rand is not either.
type Sampler struct {
	rng *rand.Rand
}

// New wraps an explicit random generator. Panics if rng is nil: the
// generator handle is the caller's seeding point and must be provided.
func New(rng *rand.Rand) *Sampler {
	if rng == nil {
		panic(panicNilRand)
	}

	return &Sampler{rng: rng}
}

// NewSeeded is shorthand for New(rand.New(rand.NewSource(seed))).
func NewSeeded(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Index draws a fresh uniform u in [0,1) and returns the smallest index j
// with u < cum[j] — standard inverse-CDF sampling against a non-decreasing
// cumulative row ending at 1.
//
// cum must be non-empty; an empty row is a programmer error and panics via
// the slice access. The row is read-only and never retained.
func (s *Sampler) Index(cum []float64) int {
	return IndexAt(cum, s.rng.Float64())
}

// IndexAt is the deterministic kernel of Index: for a fixed u it returns
// the smallest j with u < cum[j].
//
// Edge handling:
//   - u = 0 selects index 0 whenever cum[0] > 0.
//   - If floating-point rounding leaves the final cumulative entry below u
//     (the last entry summing to 0.999...), the last index is selected.
//     This is a degenerate-rounding case, not an error.
func IndexAt(cum []float64, u float64) int {
	last := len(cum) - 1

	if len(cum) > binarySearchThreshold {
		j := sort.Search(len(cum), func(i int) bool { return u < cum[i] })
		if j > last {
			return last
		}

		return j
	}

	for j, c := range cum {
		if u < c {
			return j
		}
	}

	return last
}

// ExpTime draws one exponentially distributed holding time with the given
// leaving rate (mean 1/rate).
//
// Returns ErrUndefinedHoldingTime when rate <= 0 (or NaN): the draw is
// undefined and must surface as a failure rather than a silent duration.
func (s *Sampler) ExpTime(rate float64) (float64, error) {
	if !(rate > 0) {
		return 0, ErrUndefinedHoldingTime
	}

	return s.rng.ExpFloat64() / rate, nil
}
