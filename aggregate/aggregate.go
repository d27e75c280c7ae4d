package aggregate

import (
	"errors"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/mchain/walk"
)

// Sentinel errors returned by the aggregation functions.
var (
	// ErrEmptyAggregate indicates the result holds zero completed walks, so
	// the requested statistic would divide by zero. This is a reportable
	// condition, not a crash: an empty aggregate is a valid engine outcome.
	ErrEmptyAggregate = errors.New("aggregate: no completed walks")

	// ErrNoTimes indicates a duration statistic was requested on a result
	// generated without holding times.
	ErrNoTimes = errors.New("aggregate: result carries no holding times")
)

// AbsorptionProportions returns, for each of the given terminal states, the
// fraction of completed walks absorbed there. Terminals that absorbed no
// walk appear with proportion 0, so the proportions always sum to 1 across
// the terminal set (every walk ends in exactly one of them).
//
// Returns ErrEmptyAggregate when no walk completed.
func AbsorptionProportions(res *walk.Result, terminals []int) (map[int]float64, error) {
	if res == nil || res.Len() == 0 {
		return nil, ErrEmptyAggregate
	}

	counts := make(map[int]int, len(terminals))
	for _, t := range terminals {
		counts[t] = 0
	}
	for _, final := range res.Finals() {
		counts[final]++
	}

	total := float64(res.Len())
	out := make(map[int]float64, len(counts))
	for t, c := range counts {
		out[t] = float64(c) / total
	}

	return out, nil
}

// MeanLength returns the mean number of transitions per completed walk
// (state count minus one). Returns ErrEmptyAggregate when no walk completed.
func MeanLength(res *walk.Result) (float64, error) {
	if res == nil || res.Len() == 0 {
		return 0, ErrEmptyAggregate
	}

	lengths := make([]float64, res.Len())
	for i, w := range res.Walks {
		lengths[i] = float64(w.Transitions())
	}

	return stats.Mean(lengths)
}

// MeanDuration returns the mean total duration per walk: the sum of each
// walk's holding times excluding the final (terminal-state) entry.
//
// Returns ErrEmptyAggregate when no walk completed and ErrNoTimes when the
// result was generated without holding times.
func MeanDuration(res *walk.Result) (float64, error) {
	if res == nil || res.Len() == 0 {
		return 0, ErrEmptyAggregate
	}
	if res.Times == nil {
		return 0, ErrNoTimes
	}

	totals := make([]float64, len(res.Times))
	for i, times := range res.Times {
		totals[i] = times.Total()
	}

	return stats.Mean(totals)
}

// TimeInState returns the empirical time-in-state distribution: for every
// state, its share of the flattened multiset of all visited states over all
// walks. Shares sum to 1. Returns ErrEmptyAggregate when no walk completed.
func TimeInState(res *walk.Result) (map[int]float64, error) {
	if res == nil || res.Len() == 0 {
		return nil, ErrEmptyAggregate
	}

	counts := make(map[int]int)
	var total int
	for _, w := range res.Walks {
		for _, s := range w {
			counts[s]++
			total++
		}
	}

	out := make(map[int]float64, len(counts))
	for s, c := range counts {
		out[s] = float64(c) / float64(total)
	}

	return out, nil
}

// OccupancyDuration returns the holding-time-weighted occupancy fraction
// per state: the share of total simulated duration spent in each state,
// for the continuous-time reading of the chain. Terminal entries are
// excluded, consistent with HoldTimes.Total.
//
// Returns ErrEmptyAggregate when no walk completed, ErrNoTimes when the
// result carries no holding times. A result consisting solely of length-1
// walks has no measurable duration and also reports ErrEmptyAggregate.
func OccupancyDuration(res *walk.Result) (map[int]float64, error) {
	if res == nil || res.Len() == 0 {
		return nil, ErrEmptyAggregate
	}
	if res.Times == nil {
		return nil, ErrNoTimes
	}

	durations := make(map[int]float64)
	var total float64
	for i, times := range res.Times {
		w := res.Walks[i]
		for j := 0; j < len(times)-1; j++ {
			durations[w[j]] += times[j]
			total += times[j]
		}
	}
	if total == 0 {
		return nil, ErrEmptyAggregate
	}

	out := make(map[int]float64, len(durations))
	for s, d := range durations {
		out[s] = d / total
	}

	return out, nil
}

// MaxStateDistribution returns the distribution of the maximum state index
// reached per walk: for each observed maximum, the fraction of walks whose
// highest visited state was that index.
//
// Returns ErrEmptyAggregate when no walk completed.
func MaxStateDistribution(res *walk.Result) (map[int]float64, error) {
	if res == nil || res.Len() == 0 {
		return nil, ErrEmptyAggregate
	}

	counts := make(map[int]int)
	for _, w := range res.Walks {
		maxState := w[0]
		for _, s := range w[1:] {
			if s > maxState {
				maxState = s
			}
		}
		counts[maxState]++
	}

	total := float64(res.Len())
	out := make(map[int]float64, len(counts))
	for s, c := range counts {
		out[s] = float64(c) / total
	}

	return out, nil
}

// Summary bundles descriptive statistics of per-walk transition counts.
type Summary struct {
	Mean   float64
	StdDev float64
	Median float64
	P90    float64
	Min    float64
	Max    float64
}

// LengthSummary returns descriptive statistics over the per-walk transition
// counts. Returns ErrEmptyAggregate when no walk completed.
func LengthSummary(res *walk.Result) (Summary, error) {
	if res == nil || res.Len() == 0 {
		return Summary{}, ErrEmptyAggregate
	}

	lengths := make([]float64, res.Len())
	for i, w := range res.Walks {
		lengths[i] = float64(w.Transitions())
	}

	var (
		s   Summary
		err error
	)
	if s.Mean, err = stats.Mean(lengths); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(lengths); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(lengths); err != nil {
		return Summary{}, err
	}
	if s.P90, err = stats.Percentile(lengths, 90); err != nil {
		return Summary{}, err
	}
	if s.Min, err = stats.Min(lengths); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(lengths); err != nil {
		return Summary{}, err
	}

	return s, nil
}
