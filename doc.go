// Package mchain is your in-memory playground for simulating absorbing
// Markov chains — from raw transition weights to empirical absorption
// statistics.
//
// 🚀 What is mchain?
//
//	A small, deterministic-by-injection simulation library that brings together:
//		• Chain building: normalize raw weight matrices into row-stochastic form
//		• Cumulative tables: prefix-sum rows ready for inverse-CDF sampling
//		• Leaving rates: per-state exponential holding-time parameters
//		• Walk engine: step-budgeted and walk-budgeted random walks to absorption
//		• Aggregation: absorption proportions, hitting times, occupancy fractions
//
// ✨ Why choose mchain?
//
//   - Explicit randomness – every sampler takes a seedable *rand.Rand handle
//   - Fail-fast validation – malformed distributions are rejected before any draw
//   - Pure Go core – simulation state is plain slices, nothing hidden
//   - Composable – aggregation is pure functions over the walk results
//
// Everything is organized under four subpackages:
//
//	chain/     — transition-matrix normalization, cumulative rows, leaving rates
//	sampler/   — inverse-CDF discrete sampling and exponential holding times
//	walk/      — the walk engine: budgets, terminal sets, holding times
//	aggregate/ — statistics over completed walks
//
// Quick example:
//
//	c, err := chain.New([][]float64{
//	    {0, 0.5, 0.5},
//	    {0, 1, 0},
//	    {0, 0, 1},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := walk.Run(c,
//	    walk.From(0),
//	    walk.Terminal(1, 2),
//	    walk.WithWalks(10_000),
//	    walk.WithSeed(42),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	props, _ := aggregate.AbsorptionProportions(res, []int{1, 2})
//	fmt.Println(props) // ≈ map[1:0.5 2:0.5]
//
// See each subpackage's doc.go and example_test.go for details.
package mchain
