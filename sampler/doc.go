// Package sampler implements the two random draws the walk engine needs:
// inverse-CDF discrete sampling of successor states, and exponentially
// distributed holding times for the continuous-time reading of a chain.
//
// Randomness is injected: a Sampler wraps a caller-supplied *rand.Rand, so
// simulations are reproducible under a fixed seed and the Sampler is
// independently testable against a swapped-in generator. Each draw is
// independent; the Sampler keeps no memory of prior draws.
//
// Complexity:
//
//	– Index: O(n) linear scan for short rows, O(log n) binary search above
//	  binarySearchThreshold states. Both variants return the identical
//	  index for every draw; only the lookup cost differs.
//	– ExpTime: O(1).
package sampler
