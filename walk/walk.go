// Package walk: the engine itself. See doc.go for mode semantics.
package walk

import (
	"fmt"
	"math/rand"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/mchain/chain"
	"github.com/katalvlaran/mchain/sampler"
)

// Run simulates random walks over the chain c until the configured budget
// is exhausted, returning every completed walk (and, when requested, the
// parallel holding-time sequences).
//
// Preconditions and validation (in order):
//  1. c must be non-nil (ErrNilChain).
//  2. Exactly one of WithSteps/WithWalks must be set, positive (ErrBadBudget).
//  3. Every terminal index must lie in [0, N) (ErrBadTerminal);
//     walk-budgeted mode additionally requires at least one (ErrNoTerminal).
//  4. The starting specification must be valid: a fixed index in [0, N),
//     or a distribution of length N that normalizes cleanly (ErrBadStart,
//     wrapping the chain sentinel where normalization itself failed).
//
// All validation happens before the first random draw (fail fast). An
// exhausted step budget with zero completed walks yields an empty Result,
// not an error.
//
// Complexity: O(budget) time in step-budgeted mode; unbounded in
// walk-budgeted mode (expected hitting time of the terminal set per walk).
func Run(c *chain.Chain, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate chain.
	if c == nil {
		return nil, ErrNilChain
	}
	n := c.N()

	// 3) Validate driving mode: exactly one positive budget.
	if (cfg.Steps > 0) == (cfg.Walks > 0) {
		return nil, ErrBadBudget
	}
	if cfg.Steps < 0 || cfg.Walks < 0 {
		return nil, ErrBadBudget
	}

	// 4) Validate terminal set.
	for _, t := range cfg.Terminals {
		if t < 0 || t >= n {
			return nil, fmt.Errorf("state %d: %w", t, ErrBadTerminal)
		}
	}
	if cfg.Walks > 0 && len(cfg.Terminals) == 0 {
		return nil, ErrNoTerminal
	}

	// 5) Resolve the starting specification. A distribution is normalized
	//    once, up front, through the same machinery as a matrix row; its
	//    cumulative form is then sampled per walk.
	var startCum []float64
	if cfg.StartDist != nil {
		if len(cfg.StartDist) != n {
			return nil, fmt.Errorf("distribution has %d entries, want %d: %w", len(cfg.StartDist), n, ErrBadStart)
		}
		p, _, err := chain.NormalizeRow(cfg.StartDist, chain.WithEpsilon(c.Epsilon()))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadStart, err)
		}
		startCum = chain.CumulativeRow(p)
	} else if cfg.Start < 0 || cfg.Start >= n {
		return nil, fmt.Errorf("state %d: %w", cfg.Start, ErrBadStart)
	}

	// 6) Resolve the generator: injected, or time-seeded as a last resort.
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 7) Assemble the runner and dispatch on mode.
	r := &runner{
		c:         c,
		s:         sampler.New(rng),
		start:     cfg.Start,
		startCum:  startCum,
		terminal:  mapset.NewThreadUnsafeSet(cfg.Terminals...),
		withTimes: cfg.HoldingTimes,
		res:       &Result{},
	}

	var err error
	if cfg.Steps > 0 {
		err = r.runSteps(cfg.Steps)
	} else {
		err = r.runWalks(cfg.Walks)
	}
	if err != nil {
		// Walks completed before the failure remain valid artifacts and are
		// returned alongside the error.
		return r.res, err
	}

	return r.res, nil
}

// runner holds the mutable state of a single engine run. The chain and the
// terminal set are read-only throughout; the only mutation is appending to
// the result.
type runner struct {
	c         *chain.Chain
	s         *sampler.Sampler
	start     int             // fixed starting state (startCum == nil)
	startCum  []float64       // cumulative starting distribution, or nil
	terminal  mapset.Set[int] // absorbing states
	withTimes bool
	res       *Result
}

// startState fixes or samples the first state of a new walk. This is the
// walk's transition into Running.
func (r *runner) startState() int {
	if r.startCum == nil {
		return r.start
	}

	return r.s.Index(r.startCum)
}

// runSteps drives one continuous stream of steps for a fixed total budget.
// Every loop iteration consumes one budget unit: either a single transition
// of the running walk, or the close-out of a terminated walk and the start
// of the next one. The in-progress walk at budget exhaustion is discarded.
func (r *runner) runSteps(budget int) error {
	cur := r.startState()
	path := Walk{cur}

	for used := 0; used < budget; used++ {
		if r.terminal.Contains(cur) {
			// Terminated is absorbing: record and restart. A terminal
			// starting state closes here immediately as a length-1 walk.
			if err := r.record(path); err != nil {
				return err
			}
			cur = r.startState()
			path = Walk{cur}

			continue
		}

		cur = r.s.Index(r.c.CumRow(cur))
		path = append(path, cur)
	}

	return nil
}

// runWalks drives a fixed number of independent walks, each stepping until
// absorption. Callers must ensure the terminal set is reachable; there is
// no per-walk step bound.
func (r *runner) runWalks(count int) error {
	for w := 0; w < count; w++ {
		cur := r.startState()
		path := Walk{cur}
		for !r.terminal.Contains(cur) {
			cur = r.s.Index(r.c.CumRow(cur))
			path = append(path, cur)
		}
		if err := r.record(path); err != nil {
			return err
		}
	}

	return nil
}

// record appends a completed walk to the result and, when requested, draws
// its holding-time sequence: one independent exponential per visited state,
// terminal state included, parameterized by that state's leaving rate.
//
// The walk is appended before the time pass runs, so a failed draw leaves
// the state walk in the result while the error aborts the run: the walk
// and its times are separate artifacts.
func (r *runner) record(path Walk) error {
	r.res.Walks = append(r.res.Walks, path)

	if !r.withTimes {
		return nil
	}

	times := make(HoldTimes, len(path))
	for i, st := range path {
		rate, _ := r.c.Rate(st) // st came from sampling; always in range
		d, err := r.s.ExpTime(rate)
		if err != nil {
			return fmt.Errorf("holding time for state %d: %w", st, err)
		}
		times[i] = d
	}
	r.res.Times = append(r.res.Times, times)

	return nil
}
