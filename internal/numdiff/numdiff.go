// Package numdiff provides a central-difference derivative estimate used
// by the test-function catalog (internal/testfn) for display and
// verification. It is deliberately not used inside any integrator: it
// carries no error estimate and exists for visualization/cross-checking
// only.
package numdiff

import "math"

// Central returns (g(x+h) - g(x-h)) / (2h) with an adaptively scaled h
// that stays above the rounding floor while controlling truncation
// error, per spec.md §4.2.
func Central(g func(float64) float64, x float64) float64 {
	h := (math.Abs(x) + 1) * 1e-8
	return (g(x+h) - g(x-h)) / (2 * h)
}
