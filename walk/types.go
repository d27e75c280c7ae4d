// Package walk defines the engine's result types, sentinel errors and
// configuration options.
//
// Options:
//
//	– From / FromDistribution: starting-state specification (exactly one
//	  interpretation applies; FromDistribution wins when set).
//	– Terminal:                the set of absorbing state indices.
//	– WithSteps / WithWalks:   driving mode and budget (set exactly one).
//	– WithHoldingTimes:        attach exponential holding times per walk.
//	– WithRand / WithSeed:     the injected random generator.
//
// Errors (sentinel):
//
//	– ErrNilChain    if the provided chain pointer is nil.
//	– ErrBadBudget   if neither or both driving modes are configured, or a
//	                 budget is non-positive.
//	– ErrBadStart    if the starting state or distribution is invalid.
//	– ErrBadTerminal if a terminal state index is out of range.
//	– ErrNoTerminal  if walk-budgeted mode is requested with no terminals.
package walk

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by the walk engine.
var (
	// ErrNilChain indicates that a nil *chain.Chain was passed to Run.
	ErrNilChain = errors.New("walk: chain is nil")

	// ErrBadBudget indicates that the driving mode is misconfigured:
	// neither WithSteps nor WithWalks was set, both were set, or a budget
	// is not a positive integer.
	ErrBadBudget = errors.New("walk: exactly one positive budget (WithSteps or WithWalks) required")

	// ErrBadStart indicates an invalid starting-state specification: a fixed
	// index outside [0, N), or a distribution whose length differs from N.
	// Distributions that fail normalization wrap chain.ErrMalformedDistribution.
	ErrBadStart = errors.New("walk: invalid starting-state specification")

	// ErrBadTerminal indicates a terminal state index outside [0, N).
	ErrBadTerminal = errors.New("walk: terminal state out of range")

	// ErrNoTerminal indicates walk-budgeted mode with an empty terminal set,
	// which could never terminate. Reachability of the terminal set is NOT
	// checked; see the package documentation.
	ErrNoTerminal = errors.New("walk: walk-budgeted mode requires a non-empty terminal set")
)

// Walk is one completed trajectory: the ordered states visited, from the
// initial state to the first terminal state reached (inclusive). Immutable
// once recorded.
type Walk []int

// Last returns the final (terminal) state of the walk.
func (w Walk) Last() int { return w[len(w)-1] }

// Transitions returns the number of transitions taken, i.e. len(w)-1.
// A walk that started on a terminal state took zero transitions.
func (w Walk) Transitions() int { return len(w) - 1 }

// HoldTimes is the per-state holding-time companion of a Walk: one
// exponential draw per visited state, same length as the walk.
type HoldTimes []float64

// Total returns the walk's total duration: the sum of its holding times
// excluding the final entry, since time notionally spent in the terminal
// state does not count toward the absorption time.
func (h HoldTimes) Total() float64 {
	var sum float64
	for i := 0; i < len(h)-1; i++ {
		sum += h[i]
	}

	return sum
}

// Result is the aggregate of one engine run: every completed walk, in
// completion order, plus parallel holding-time sequences when requested.
//
// Times is nil unless WithHoldingTimes was set; when present it matches
// Walks index for index. (The sole exception is an aborted run: on a
// holding-time failure Run returns the partial Result alongside the error,
// and Walks may then be one entry longer than Times.)
type Result struct {
	Walks []Walk
	Times []HoldTimes
}

// Len returns the number of completed walks.
func (r *Result) Len() int { return len(r.Walks) }

// Finals returns the final state of every completed walk, in order.
func (r *Result) Finals() []int {
	out := make([]int, len(r.Walks))
	for i, w := range r.Walks {
		out[i] = w.Last()
	}

	return out
}

// Options configures a single engine run.
//
//	– Start:        fixed starting state index (used when StartDist is nil).
//	– StartDist:    starting-state distribution over all states; takes
//	                precedence over Start when non-nil. Unnormalized weights
//	                are accepted and rescaled like any matrix row.
//	– Terminals:    absorbing state indices; duplicates are harmless.
//	– Steps:        step-budgeted mode total budget (> 0 enables the mode).
//	– Walks:        walk-budgeted mode walk count (> 0 enables the mode).
//	– HoldingTimes: attach exponential holding times per completed walk.
//	– Rand:         injected random generator; nil means time-seeded.
type Options struct {
	Start        int
	StartDist    []float64
	Terminals    []int
	Steps        int
	Walks        int
	HoldingTimes bool
	Rand         *rand.Rand
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// From fixes the starting state to the given index.
// Range validation happens in Run (ErrBadStart).
func From(state int) Option {
	return func(o *Options) {
		o.Start = state
		o.StartDist = nil
	}
}

// FromDistribution draws each walk's starting state from the given
// distribution over all states. The slice is copied; unnormalized weights
// are rescaled exactly like a transition-matrix row.
func FromDistribution(dist []float64) Option {
	return func(o *Options) {
		o.StartDist = append([]float64(nil), dist...)
	}
}

// Terminal sets the absorbing state indices.
func Terminal(states ...int) Option {
	return func(o *Options) {
		o.Terminals = append([]int(nil), states...)
	}
}

// WithSteps enables step-budgeted mode with the given total step budget.
func WithSteps(n int) Option {
	return func(o *Options) { o.Steps = n }
}

// WithWalks enables walk-budgeted mode with the given number of walks.
func WithWalks(n int) Option {
	return func(o *Options) { o.Walks = n }
}

// WithHoldingTimes attaches one exponential holding time per visited state
// to every completed walk, parameterized by each state's leaving rate.
func WithHoldingTimes() Option {
	return func(o *Options) { o.HoldingTimes = true }
}

// WithRand injects an explicit random generator, making the run fully
// reproducible and the engine testable against a swapped-in source.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

// DefaultOptions returns an Options struct with the documented defaults:
// fixed start at state 0, no terminals, no driving mode selected (Run will
// reject the configuration until WithSteps or WithWalks is chosen), no
// holding times, and a time-seeded generator allocated at Run time.
func DefaultOptions() Options {
	return Options{}
}
