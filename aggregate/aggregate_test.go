// Package aggregate_test verifies the statistics over completed walks,
// including the empty-aggregate and missing-times failure modes.
package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mchain/aggregate"
	"github.com/katalvlaran/mchain/chain"
	"github.com/katalvlaran/mchain/walk"
)

// fixed builds a hand-assembled result, bypassing the engine, for exact
// expectations.
func fixed() *walk.Result {
	return &walk.Result{
		Walks: []walk.Walk{
			{0, 1, 2},    // 2 transitions, absorbed at 2
			{0, 2},       // 1 transition, absorbed at 2
			{0, 1, 1, 3}, // 3 transitions, absorbed at 3
			{3},          // length-1 walk, absorbed at 3
		},
		Times: []walk.HoldTimes{
			{1, 2, 9},
			{3, 9},
			{1, 1, 2, 9},
			{9},
		},
	}
}

// ------------------------------------------------------------------------
// 1. Empty aggregates: every function must report, never NaN.
// ------------------------------------------------------------------------

func TestEmptyAggregate(t *testing.T) {
	empty := &walk.Result{}

	_, err := aggregate.AbsorptionProportions(empty, []int{1})
	assert.ErrorIs(t, err, aggregate.ErrEmptyAggregate)
	_, err = aggregate.AbsorptionProportions(nil, []int{1})
	assert.ErrorIs(t, err, aggregate.ErrEmptyAggregate)

	_, err = aggregate.MeanLength(empty)
	assert.ErrorIs(t, err, aggregate.ErrEmptyAggregate)
	_, err = aggregate.MeanDuration(empty)
	assert.ErrorIs(t, err, aggregate.ErrEmptyAggregate)
	_, err = aggregate.TimeInState(empty)
	assert.ErrorIs(t, err, aggregate.ErrEmptyAggregate)
	_, err = aggregate.OccupancyDuration(empty)
	assert.ErrorIs(t, err, aggregate.ErrEmptyAggregate)
	_, err = aggregate.MaxStateDistribution(empty)
	assert.ErrorIs(t, err, aggregate.ErrEmptyAggregate)
	_, err = aggregate.LengthSummary(empty)
	assert.ErrorIs(t, err, aggregate.ErrEmptyAggregate)
}

func TestDurations_RequireTimes(t *testing.T) {
	res := &walk.Result{Walks: []walk.Walk{{0, 1}}}

	_, err := aggregate.MeanDuration(res)
	assert.ErrorIs(t, err, aggregate.ErrNoTimes)
	_, err = aggregate.OccupancyDuration(res)
	assert.ErrorIs(t, err, aggregate.ErrNoTimes)
}

// ------------------------------------------------------------------------
// 2. Exact expectations on a hand-assembled result.
// ------------------------------------------------------------------------

func TestAbsorptionProportions_Exact(t *testing.T) {
	props, err := aggregate.AbsorptionProportions(fixed(), []int{2, 3, 4})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, props[2], 1e-12)
	assert.InDelta(t, 0.5, props[3], 1e-12)
	assert.Zero(t, props[4], "terminal that absorbed nothing appears with 0")

	var sum float64
	for _, p := range props {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9, "proportions must sum to 1")
}

func TestMeanLength_Exact(t *testing.T) {
	// Transitions: 2, 1, 3, 0 → mean 1.5.
	mean, err := aggregate.MeanLength(fixed())
	require.NoError(t, err)
	assert.InDelta(t, 1.5, mean, 1e-12)
}

func TestMeanDuration_Exact(t *testing.T) {
	// Totals exclude the final entry: 3, 3, 4, 0 → mean 2.5.
	mean, err := aggregate.MeanDuration(fixed())
	require.NoError(t, err)
	assert.InDelta(t, 2.5, mean, 1e-12)
}

func TestTimeInState_Exact(t *testing.T) {
	// Flattened visits: 0×3, 1×3, 2×2, 3×2 — total 10.
	dist, err := aggregate.TimeInState(fixed())
	require.NoError(t, err)

	assert.InDelta(t, 0.3, dist[0], 1e-12)
	assert.InDelta(t, 0.3, dist[1], 1e-12)
	assert.InDelta(t, 0.2, dist[2], 1e-12)
	assert.InDelta(t, 0.2, dist[3], 1e-12)

	var sum float64
	for _, p := range dist {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestOccupancyDuration_Exact(t *testing.T) {
	// Non-terminal (state, duration) pairs:
	//   walk 0: (0,1) (1,2); walk 1: (0,3); walk 2: (0,1) (1,1) (1,2);
	//   walk 3: none (length-1).
	// Per state: 0→5, 1→5; total 10.
	occ, err := aggregate.OccupancyDuration(fixed())
	require.NoError(t, err)

	assert.InDelta(t, 0.5, occ[0], 1e-12)
	assert.InDelta(t, 0.5, occ[1], 1e-12)
	assert.NotContains(t, occ, 2, "terminal-only states accrue no duration")
}

func TestOccupancyDuration_OnlyLengthOneWalks(t *testing.T) {
	res := &walk.Result{
		Walks: []walk.Walk{{1}, {1}},
		Times: []walk.HoldTimes{{5}, {7}},
	}
	_, err := aggregate.OccupancyDuration(res)
	assert.ErrorIs(t, err, aggregate.ErrEmptyAggregate, "no measurable duration to distribute")
}

func TestMaxStateDistribution_Exact(t *testing.T) {
	// Maxima per walk: 2, 2, 3, 3.
	dist, err := aggregate.MaxStateDistribution(fixed())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, dist[2], 1e-12)
	assert.InDelta(t, 0.5, dist[3], 1e-12)
}

func TestLengthSummary_Exact(t *testing.T) {
	// Transition counts: 2, 1, 3, 0.
	s, err := aggregate.LengthSummary(fixed())
	require.NoError(t, err)
	assert.InDelta(t, 1.5, s.Mean, 1e-12)
	assert.InDelta(t, 1.5, s.Median, 1e-12)
	assert.InDelta(t, 0.0, s.Min, 1e-12)
	assert.InDelta(t, 3.0, s.Max, 1e-12)
	assert.Greater(t, s.StdDev, 0.0)
	assert.GreaterOrEqual(t, s.P90, s.Median)
}

// ------------------------------------------------------------------------
// 3. End-to-end: engine output feeding the aggregations.
// ------------------------------------------------------------------------

func TestAggregate_EndToEnd(t *testing.T) {
	// Gambler-style chain: from state 1, move to 0 or 2 with equal
	// probability; both ends absorb. Absorption should split ~50/50.
	c, err := chain.New([][]float64{
		{1, 0, 0},
		{0.5, 0, 0.5},
		{0, 0, 1},
	})
	require.NoError(t, err)

	res, err := walk.Run(c,
		walk.From(1),
		walk.Terminal(0, 2),
		walk.WithWalks(10_000),
		walk.WithHoldingTimes(),
		walk.WithSeed(123),
	)
	require.NoError(t, err)

	props, err := aggregate.AbsorptionProportions(res, []int{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, props[0], 0.02)
	assert.InDelta(t, 0.5, props[2], 0.02)
	assert.InDelta(t, 1.0, props[0]+props[2], 1e-9)

	// Every walk is exactly [1, end]: one transition each.
	mean, err := aggregate.MeanLength(res)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mean, 1e-12)

	// Duration: each walk spends one exponential(rate=1) holding time in
	// state 1 (row sum of the unnormalized row {0.5,0,0.5} is 1).
	dur, err := aggregate.MeanDuration(res)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dur, 0.05)

	// Occupancy concentrates entirely on state 1.
	occ, err := aggregate.OccupancyDuration(res)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, occ[1], 1e-12)
}
