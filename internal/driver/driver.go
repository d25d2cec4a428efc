// Package driver implements the trajectory orchestration layer
// (spec.md §4.7): a fixed-step loop over an [ivp.Method] that produces
// a sequence of state vectors, with an optional variant that samples
// intra-step interpolation points on methods that support it.
//
// Grounded on the teacher's internal/sim.Simulator.Run: a fixed-step
// loop that clones state into the result slice, checks validity, and
// labels a failing step by index. This package drops the controller,
// metrics, and adaptive-step-size machinery Simulator.Run carried,
// since none of that belongs to the plain IVP contract in spec.md §4.1.
package driver

import (
	"github.com/arletty-bit/rkapp/internal/ivp"
)

// errorReporter is satisfied by steppers (such as everhart.Everhart)
// that can explain *why* their last Step call failed, beyond the bare
// bool the ivp.Method contract carries.
type errorReporter interface {
	LastError() error
}

func failureCause(method ivp.Method) error {
	if r, ok := method.(errorReporter); ok {
		if err := r.LastError(); err != nil {
			return err
		}
	}
	return ivp.ErrRHSFailure
}

// Solve implements spec.md §4.7's solve operation: initializes method,
// emits a fresh copy of y0, then advances by h for steps iterations. The
// returned slice has length steps+1. y0 is copied, never retained or
// mutated by the caller's reference.
func Solve(method ivp.Method, t0 float64, y0 ivp.State, h float64, steps int, parm any) ([]ivp.State, error) {
	if steps < 0 {
		return nil, ivp.ErrInvalidConfig
	}

	method.Initialize()

	out := make([]ivp.State, 0, steps+1)
	y := y0.Clone()
	out = append(out, y.Clone())

	t := t0
	next := make(ivp.State, len(y0))
	for i := 0; i < steps; i++ {
		if !method.Step(t, y, h, next, parm) {
			return out, &ivp.StepError{Step: i, Time: t, Err: failureCause(method)}
		}
		y = next.Clone()
		t += h
		out = append(out, y.Clone())
	}
	return out, nil
}

// SolveWithInterpolation implements spec.md §4.7's
// solve_with_interpolation operation: identical per-step behavior to
// Solve, but between each successful step and the appending of its
// end-state, it samples k interior points at
// t + j*h/(k+1) for j = 1..k. A method that does not support
// interpolation (SupportsInterpolation() == false) silently contributes
// no interior samples, matching the plain Solve length for that method.
func SolveWithInterpolation(method ivp.Method, t0 float64, y0 ivp.State, h float64, steps, k int, parm any) ([]ivp.State, error) {
	if steps < 0 || k < 0 {
		return nil, ivp.ErrInvalidConfig
	}

	method.Initialize()
	interpolates := method.SupportsInterpolation()

	out := make([]ivp.State, 0, steps*(k+1)+1)
	y := y0.Clone()
	out = append(out, y.Clone())

	t := t0
	next := make(ivp.State, len(y0))
	sample := make(ivp.State, len(y0))
	for i := 0; i < steps; i++ {
		if !method.Step(t, y, h, next, parm) {
			return out, &ivp.StepError{Step: i, Time: t, Err: failureCause(method)}
		}

		if interpolates {
			for j := 1; j <= k; j++ {
				tStar := t + float64(j)*h/float64(k+1)
				if method.Interpolate(tStar, sample) {
					out = append(out, sample.Clone())
				}
			}
		}

		y = next.Clone()
		t += h
		out = append(out, y.Clone())
	}
	return out, nil
}
