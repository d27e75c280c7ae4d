// SPDX-License-Identifier: MIT

// Package chain: functional configuration for chain construction and
// numeric policy. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package chain

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used when checking that a
	// normalized row sums to 1. Larger values relax the check; the default
	// matches the precision loss expected from summing a few hundred
	// float64 weights.
	DefaultEpsilon = 1e-5
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "chain: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept ...Option and resolve them via gatherOptions.
type options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the numeric tolerance eps used by the sum-to-1 check.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity: O(1).
//
// AI-Hints:
//   - Keep eps small (1e-5..1e-9) for clean data; raise it only for weight
//     matrices assembled from noisy measurements.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
func gatherOptions(user ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
