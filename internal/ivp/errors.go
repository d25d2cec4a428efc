package ivp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy in spec.md §7. Configuration and
// dimension errors are reported at the construction/configuration call
// site; RHS failure and non-convergence are reported at step time,
// wrapped in a StepError that carries the failing step's index and time.
var (
	// ErrRHSFailure indicates the right-hand side signaled an
	// out-of-domain point.
	ErrRHSFailure = errors.New("ivp: right-hand side returned false")

	// ErrNonConvergence indicates an implicit corrector (Everhart) did
	// not reach its tolerance within the configured iteration cap.
	ErrNonConvergence = errors.New("ivp: correction iteration failed to converge")

	// ErrDimensionMismatch indicates a state/output vector length
	// mismatch, or a tableau whose arrays violate the triangular size
	// invariant.
	ErrDimensionMismatch = errors.New("ivp: dimension mismatch")

	// ErrInvalidOrder indicates a requested Everhart order outside 2..32.
	ErrInvalidOrder = errors.New("ivp: order out of range [2, 32]")

	// ErrInvalidConfig indicates a negative step count, negative
	// iteration cap, or other malformed configuration value.
	ErrInvalidConfig = errors.New("ivp: invalid configuration")
)

// StepError labels a trajectory failure with the step at which it
// occurred, mirroring the driver's obligation (spec.md §4.7) to report a
// failing step index rather than a bare error.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.6g): %s", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
