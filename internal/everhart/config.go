package everhart

import "github.com/arletty-bit/rkapp/internal/ivp"

// Config holds the tunables recognized by Everhart (spec.md §6's
// configuration table).
type Config struct {
	// Order selects the scheme: odd orders are Gauss-Radau, even orders
	// Gauss-Lobatto. Must lie in [2, 32].
	Order int

	// LocalError is the correction-loop convergence tolerance, internally
	// lower-bounded at 1e-15. Zero selects the default, 1e-11.
	LocalError float64

	// MaxIterations bounds the correction sweep count, lower-bounded at 1.
	// Zero selects the default, 100; New rejects a negative value with
	// ivp.ErrInvalidConfig.
	MaxIterations int

	// VerifyConvergence, when true, fails a step that does not converge
	// within MaxIterations sweeps; when false, the last iterate is
	// accepted regardless.
	VerifyConvergence bool
}

const (
	defaultLocalError    = 1e-11
	defaultMaxIterations = 100
	minLocalError        = 1e-15
)

// normalize applies defaults and internal lower bounds, returning a
// config ready to drive construction. Order is validated separately by
// the caller since it is a hard construction error, not a clamp.
func (c Config) normalize() Config {
	if c.LocalError <= 0 {
		c.LocalError = defaultLocalError
	}
	if c.LocalError < minLocalError {
		c.LocalError = minLocalError
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = defaultMaxIterations
	}
	return c
}

func validateOrder(order int) error {
	if order < 2 || order > 32 {
		return ivp.ErrInvalidOrder
	}
	return nil
}
