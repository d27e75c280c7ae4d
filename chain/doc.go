// Package chain turns raw transition weights into simulation-ready chains.
//
// The chain package provides:
//
//   - New: validate a square non-negative weight matrix, normalize every row
//     into a probability distribution, and derive the row-wise cumulative
//     table used for inverse-CDF sampling.
//   - Leaving rates: per-state pre-normalization row sums, the rate
//     parameters of exponential holding times in the continuous-time
//     reading of the chain.
//   - NormalizeRow / CumulativeRow: the same machinery on a single row,
//     used for starting-state distributions ("1-row matrices").
//
// All transformations are pure: inputs are copied, outputs are immutable
// once built, and no global state is touched. A Chain is therefore safe to
// share by reference between independent walk runs.
//
// See the examples in this package and walk for usage patterns.
package chain
