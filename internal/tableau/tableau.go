// Package tableau implements the generic explicit Runge-Kutta executor
// (spec.md §4.3) driven by a Butcher tableau (c, A, b), plus the catalog
// of classical schemes built on top of it (spec.md §4.4).
//
// A [Tableau] is an immutable coefficient set; a [Stepper] wraps one with
// per-instance scratch storage and implements [ivp.Method], the way
// internal/integrators/rk4.go in the teacher owned its k1..k4 scratch
// buffers and reused them across steps.
package tableau

import "github.com/arletty-bit/rkapp/internal/ivp"

// Tableau holds the (c, A, b) triple for an s-stage explicit RK scheme.
// A is the strictly lower-triangular coefficient matrix flattened in
// row-major order: row i (0-indexed, i>=1) occupies
// A[i*(i-1)/2 : i*(i-1)/2+i].
type Tableau struct {
	Stages int
	C      []float64 // length Stages-1: abscissae for stages 2..s
	A      []float64 // length Stages*(Stages-1)/2
	B      []float64 // length Stages: weights
	Order  int        // consistency order, informational only
	Name   string
}

// New validates the triangular size invariant (spec.md §3) and returns
// a Tableau. It is a construction-time (programmer) error to violate it.
func New(name string, order int, c, a, b []float64) (*Tableau, error) {
	s := len(b)
	if len(c) != s-1 {
		return nil, ivp.ErrDimensionMismatch
	}
	if len(a) != s*(s-1)/2 {
		return nil, ivp.ErrDimensionMismatch
	}
	return &Tableau{Stages: s, C: c, A: a, B: b, Order: order, Name: name}, nil
}

// rowOffset returns the flat-array offset of row i (i>=1) in A.
func rowOffset(i int) int { return i * (i - 1) / 2 }

// Stepper executes a Tableau against a bound RHS, reusing per-instance
// stage-derivative scratch across calls (never reallocating mid-step).
type Stepper struct {
	tab     *Tableau
	rhs     ivp.RHSFunc
	k       [][]float64 // Stages x n scratch
	yi      []float64   // n scratch for the stage state
	n       int
}

// NewStepper binds rhs to tab, producing a ready-to-step [ivp.Method].
// This is the factory C8 calls for every classical scheme in the catalog.
func NewStepper(tab *Tableau, rhs ivp.RHSFunc) *Stepper {
	return &Stepper{tab: tab, rhs: rhs}
}

func (s *Stepper) ensure(n int) {
	if s.n == n {
		return
	}
	s.n = n
	s.k = make([][]float64, s.tab.Stages)
	for i := range s.k {
		s.k[i] = make([]float64, n)
	}
	s.yi = make([]float64, n)
}

// Step implements ivp.Method. See spec.md §4.3 for the algorithm.
func (s *Stepper) Step(t float64, y ivp.State, h float64, yOut ivp.State, parm any) bool {
	n := len(y)
	s.ensure(n)
	tab := s.tab

	if !s.rhs(t, y, s.k[0], parm) {
		return false
	}

	for i := 1; i < tab.Stages; i++ {
		off := rowOffset(i)
		for c := 0; c < n; c++ {
			acc := y[c]
			for j := 0; j < i; j++ {
				coef := tab.A[off+j]
				if coef == 0 {
					continue
				}
				acc += h * coef * s.k[j][c]
			}
			s.yi[c] = acc
		}
		if !s.rhs(t+tab.C[i-1]*h, s.yi, s.k[i], parm) {
			return false
		}
	}

	for c := 0; c < n; c++ {
		acc := y[c]
		for j := 0; j < tab.Stages; j++ {
			if tab.B[j] == 0 {
				continue
			}
			acc += h * tab.B[j] * s.k[j][c]
		}
		yOut[c] = acc
	}
	return true
}

// Interpolate is unsupported: classical fixed-tableau explicit schemes
// carry no dense-output coefficients in this catalog.
func (s *Stepper) Interpolate(tStar float64, yOut ivp.State) bool { return false }

// SupportsInterpolation always reports false for a plain tableau Stepper.
func (s *Stepper) SupportsInterpolation() bool { return false }

// Initialize is a no-op: a Stepper holds no warm-start state between
// steps (each step is independent, unlike DOPRI8's FSAL cache).
func (s *Stepper) Initialize() {}
