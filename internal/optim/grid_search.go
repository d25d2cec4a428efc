// Package optim narrows the teacher's named-float-parameter GridSearch
// (internal/optim/grid_search.go) to the single axis this domain
// actually exposes for tuning: step count. Where the teacher recursed
// over an arbitrary list of parameter names, StepCountSearch walks one
// ascending list of candidate step counts and returns the smallest one
// clearing a caller-supplied error tolerance.
package optim

import (
	"fmt"
	"sort"
)

// StepCountSearch holds the candidate step counts to try, smallest
// first.
type StepCountSearch struct {
	candidates []int
}

// NewStepCountSearch returns a search over the given candidates,
// sorted ascending (duplicates removed is not required; ascending
// order is what lets Search return on the first hit).
func NewStepCountSearch(candidates []int) *StepCountSearch {
	sorted := make([]int, len(candidates))
	copy(sorted, candidates)
	sort.Ints(sorted)
	return &StepCountSearch{candidates: sorted}
}

// Geometric builds a StepCountSearch over a doubling sequence from min
// to max inclusive, the default candidate set `cmd rkapp bench` uses.
func Geometric(min, max int) *StepCountSearch {
	var candidates []int
	for n := min; n <= max; n *= 2 {
		candidates = append(candidates, n)
	}
	return NewStepCountSearch(candidates)
}

// Search calls run(steps) for each candidate in ascending order and
// returns the first step count whose reported error is at or below
// tolerance. run typically drives a method/problem pair via
// internal/driver and measures the final-value error against a
// closed-form reference.
func (g *StepCountSearch) Search(run func(steps int) (float64, error), tolerance float64) (int, float64, error) {
	var lastErr float64
	for _, steps := range g.candidates {
		measured, err := run(steps)
		if err != nil {
			return 0, 0, err
		}
		lastErr = measured
		if measured <= tolerance {
			return steps, measured, nil
		}
	}
	return 0, lastErr, fmt.Errorf("optim: no candidate step count (largest tried %d, error %.3g) reached tolerance %.3g",
		g.candidates[len(g.candidates)-1], lastErr, tolerance)
}
