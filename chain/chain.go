// SPDX-License-Identifier: MIT

// Package chain: Chain construction and read-only accessors.
//
// A Chain bundles the three derived artifacts of a weight matrix:
//   - the row-stochastic transition matrix (each row sums to 1 within eps),
//   - its row-wise cumulative form (the inverse-CDF lookup table),
//   - the leaving-rate vector (pre-normalization row sums).
//
// The cumulative table is recomputed from the normalized matrix at
// construction and never mutated independently. All accessors are
// read-only; a built Chain is immutable and safe to share by reference.
package chain

import (
	"fmt"
	"math"
)

// Chain is an immutable, simulation-ready Markov chain over states 0..N-1.
type Chain struct {
	n     int
	p     [][]float64 // normalized transition rows
	cum   [][]float64 // prefix sums of p, last entry ≈ 1
	rates []float64   // pre-normalization row sums (leaving rates)
	eps   float64     // tolerance used at build time
}

// New validates and normalizes a square matrix of non-negative transition
// weights and returns the simulation-ready Chain.
//
// Validation order (fail fast, before any normalization):
//  1. matrix non-empty (ErrEmptyMatrix),
//  2. matrix square (ErrNonSquare),
//  3. every weight finite (ErrNaNInf) and non-negative (ErrNegativeWeight).
//
// Normalization then rescales each row by its sum; an all-zero row, or a
// row whose rescaled sum deviates from 1 by more than eps, is rejected with
// ErrMalformedDistribution — never silently turned into NaNs.
//
// The input is deep-copied; callers may reuse or mutate weights afterwards.
//
// Complexity: O(n²) time, O(n²) space.
func New(weights [][]float64, opts ...Option) (*Chain, error) {
	cfg := gatherOptions(opts...)

	n := len(weights)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	for i, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	c := &Chain{
		n:     n,
		p:     make([][]float64, n),
		cum:   make([][]float64, n),
		rates: make([]float64, n),
		eps:   cfg.eps,
	}

	for i, row := range weights {
		p, rate, err := NormalizeRow(row, opts...)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		c.p[i] = p
		c.cum[i] = CumulativeRow(p)
		c.rates[i] = rate
	}

	return c, nil
}

// N returns the number of states.
func (c *Chain) N() int { return c.n }

// Epsilon returns the tolerance the chain was built with.
func (c *Chain) Epsilon() float64 { return c.eps }

// Prob returns the normalized transition probability from state i to state j.
// Returns ErrOutOfRange for indices outside [0, N).
func (c *Chain) Prob(i, j int) (float64, error) {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return 0, ErrOutOfRange
	}

	return c.p[i][j], nil
}

// Row returns a copy of the normalized transition row for state i.
// Returns ErrOutOfRange for an index outside [0, N).
func (c *Chain) Row(i int) ([]float64, error) {
	if i < 0 || i >= c.n {
		return nil, ErrOutOfRange
	}
	row := make([]float64, c.n)
	copy(row, c.p[i])

	return row, nil
}

// CumRow returns the cumulative distribution row for state i, or nil when i
// is outside [0, N).
//
// The returned slice is the chain's internal table, shared to keep the
// per-step sampling path allocation-free. Callers MUST treat it as
// read-only.
func (c *Chain) CumRow(i int) []float64 {
	if i < 0 || i >= c.n {
		return nil
	}

	return c.cum[i]
}

// Rate returns the leaving rate of state i (the pre-normalization row sum).
// Returns ErrOutOfRange for an index outside [0, N).
//
// A chain built by New never carries a zero rate: an all-zero row is
// rejected as ErrMalformedDistribution before rates are recorded.
func (c *Chain) Rate(i int) (float64, error) {
	if i < 0 || i >= c.n {
		return 0, ErrOutOfRange
	}

	return c.rates[i], nil
}

// Rates returns a copy of the full leaving-rate vector.
func (c *Chain) Rates() []float64 {
	out := make([]float64, c.n)
	copy(out, c.rates)

	return out
}

// NormalizeRow rescales a row of non-negative weights into a probability
// distribution and reports the row's pre-normalization sum (its leaving
// rate in the continuous-time reading).
//
// Errors:
//   - ErrNaNInf / ErrNegativeWeight on invalid entries,
//   - ErrMalformedDistribution when the weights sum to zero, or when the
//     rescaled row misses the sum-to-1 tolerance (guards against degenerate
//     inputs that would otherwise surface as NaNs mid-simulation).
//
// Invoked by New on every matrix row and directly by callers holding a
// "1-row matrix" such as a starting-state distribution.
//
// Complexity: O(len(w)) time, O(len(w)) space.
func NormalizeRow(w []float64, opts ...Option) ([]float64, float64, error) {
	cfg := gatherOptions(opts...)

	if len(w) == 0 {
		return nil, 0, ErrEmptyMatrix
	}

	var sum float64
	for j, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, 0, fmt.Errorf("entry %d: %w", j, ErrNaNInf)
		}
		if v < 0 {
			return nil, 0, fmt.Errorf("entry %d: %w", j, ErrNegativeWeight)
		}
		sum += v
	}
	if sum <= 0 {
		return nil, 0, fmt.Errorf("weights sum to zero: %w", ErrMalformedDistribution)
	}

	p := make([]float64, len(w))
	var check float64
	for j, v := range w {
		p[j] = v / sum
		check += p[j]
	}
	if math.Abs(check-1) > cfg.eps {
		return nil, 0, fmt.Errorf("normalized sum %v deviates from 1 beyond eps=%v: %w", check, cfg.eps, ErrMalformedDistribution)
	}

	return p, sum, nil
}

// CumulativeRow computes the prefix-sum sequence of a probability row:
// out[j] = p[0] + ... + p[j]. The result is non-decreasing and its last
// entry equals 1 within the tolerance the row was normalized under.
//
// This is the inverse-CDF lookup table consumed by sampler.Index.
//
// Complexity: O(len(p)) time, O(len(p)) space.
func CumulativeRow(p []float64) []float64 {
	cum := make([]float64, len(p))
	var acc float64
	for j, v := range p {
		acc += v
		cum[j] = acc
	}

	return cum
}
