// Package aggregate computes empirical statistics over completed walks.
//
// Every function here is a pure consumer of *walk.Result: nothing is
// persisted, nothing is mutated, and the same result can be fed to any
// number of aggregations in any order.
//
// Division by the number of completed walks is the common failure surface:
// a result with zero walks (a step budget too small to reach any terminal
// state) is a legitimate outcome of the engine, so every aggregation
// reports ErrEmptyAggregate instead of dividing by zero or yielding NaNs.
package aggregate
