// SPDX-License-Identifier: MIT
// Package chain: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the chain
// package. All constructors MUST return these sentinels and tests MUST check
// them via errors.Is. No constructor panics on user-triggered error
// conditions; panics are reserved for programmer errors in option setters.

package chain

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "chain: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// empty -> non-square -> NaN/Inf -> negative weight -> malformed distribution.

var (
	// ErrEmptyMatrix is returned when the weight matrix has no rows.
	ErrEmptyMatrix = errors.New("chain: empty weight matrix")

	// ErrNonSquare signals that the weight matrix rows and columns differ.
	ErrNonSquare = errors.New("chain: weight matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf weight where finite values are required.
	ErrNaNInf = errors.New("chain: NaN or Inf weight encountered")

	// ErrNegativeWeight signals a negative transition weight at ingestion.
	ErrNegativeWeight = errors.New("chain: negative transition weight")

	// ErrMalformedDistribution is returned when a row's weights sum to zero
	// (normalization would divide by zero) or when the normalized row fails
	// the sum-to-1 tolerance check. Fatal: simulation must not start.
	ErrMalformedDistribution = errors.New("chain: malformed distribution row")

	// ErrOutOfRange indicates a state index outside [0, N).
	ErrOutOfRange = errors.New("chain: state index out of range")
)
