// Package everhart implements the implicit Gauss-Radau (odd order) /
// Gauss-Lobatto (even order) integrator (spec.md §4.6): an iterative
// correction of stage-wise coefficients supporting orders 2 through 32
// at arbitrary state dimension, with dense intra-step interpolation.
//
// The node positions for each order (internal/everhart/nodes.go) are a
// literal transcribed table; the C/D/E/Δτ transformation matrices
// (internal/everhart/matrices.go) are derived from those nodes at
// construction time. See DESIGN.md.
package everhart

import (
	"math"

	"github.com/arletty-bit/rkapp/internal/ivp"
)

// Everhart implements ivp.Method. An instance owns its scratch buffers
// and its a/b/Δτ tables (spec.md §5); it is not safe to share between
// concurrent callers.
type Everhart struct {
	rhs ivp.RHSFunc

	order int
	m     int
	radau bool

	tau      []float64
	c, d, e  [][]float64
	deltaTau [][]float64

	localError        float64
	maxIterations     int
	verifyConvergence bool

	n int

	y0, f0, lastF []float64
	a, b, bPrev   [][]float64 // m x n
	savedLast     [][]float64 // m x n

	yi, gi, prevLast []float64 // n scratch

	hPrev      float64
	stepBegin  float64
	stepH      float64
	firstStep  bool
	haveLastF  bool
	lastErr    error

	lastIterations int
}

// New validates cfg and binds rhs, producing a ready-to-step [ivp.Method].
func New(cfg Config, rhs ivp.RHSFunc) (*Everhart, error) {
	if err := validateOrder(cfg.Order); err != nil {
		return nil, err
	}
	if cfg.MaxIterations < 0 {
		return nil, ivp.ErrInvalidConfig
	}
	cfg = cfg.normalize()

	m := cfg.Order / 2
	tau := nodesForOrder(cfg.Order)
	c, d, e, deltaTau := buildTransforms(tau)

	ev := &Everhart{
		rhs:               rhs,
		order:             cfg.Order,
		m:                 m,
		radau:             cfg.Order%2 == 1,
		tau:               tau,
		c:                 c,
		d:                 d,
		e:                 e,
		deltaTau:          deltaTau,
		localError:        cfg.LocalError,
		maxIterations:     cfg.MaxIterations,
		verifyConvergence: cfg.VerifyConvergence,
		firstStep:         true,
	}
	return ev, nil
}

func makeMatrix(rows, cols int) [][]float64 {
	mat := make([][]float64, rows)
	for i := range mat {
		mat[i] = make([]float64, cols)
	}
	return mat
}

func (s *Everhart) ensure(n int) {
	if s.n == n {
		return
	}
	s.n = n
	s.y0 = make([]float64, n)
	s.f0 = make([]float64, n)
	s.lastF = make([]float64, n)
	s.a = makeMatrix(s.m, n)
	s.b = makeMatrix(s.m, n)
	s.bPrev = makeMatrix(s.m, n)
	s.savedLast = makeMatrix(s.m, n)
	s.yi = make([]float64, n)
	s.gi = make([]float64, n)
	s.prevLast = make([]float64, n)
	s.firstStep = true
	s.haveLastF = false
}

// hornerAt evaluates Σ_{j=0}^{m-1} coeffs[j][comp]·τ^j at component comp
// via Horner's method, nested from the top stage down.
func hornerAt(coeffs [][]float64, comp int, tau float64) float64 {
	m := len(coeffs)
	acc := coeffs[m-1][comp]
	for j := m - 2; j >= 0; j-- {
		acc = acc*tau + coeffs[j][comp]
	}
	return acc
}

// predict applies the power-series warm start of spec.md §4.6 step 1,
// scaling the previous step's b-coefficients by r = h/h_prev. A no-op
// on the first step of a trajectory (b and b_prev start at zero).
func (s *Everhart) predict(h float64) {
	if s.firstStep {
		return
	}
	r := h / s.hPrev
	for k := 0; k < s.m; k++ {
		copy(s.bPrev[k], s.b[k])
	}
	q := 1.0
	for stage := 0; stage < s.m; stage++ {
		q *= r
		for comp := 0; comp < s.n; comp++ {
			p := 0.0
			for k := stage; k < s.m; k++ {
				p += s.e[k+1][stage+1] * s.bPrev[k][comp]
			}
			term := q * p / float64(stage+2)
			s.b[stage][comp] = s.b[stage][comp] - s.savedLast[stage][comp] + term
			s.savedLast[stage][comp] = term
		}
	}
}

// convertBToA implements spec.md §4.6 step 2: a[s] = Σ_{k>=s} D[k+1][s+1]·b[k].
func (s *Everhart) convertBToA() {
	for stage := 0; stage < s.m; stage++ {
		for comp := 0; comp < s.n; comp++ {
			acc := 0.0
			for k := stage; k < s.m; k++ {
				acc += s.d[k+1][stage+1] * s.b[k][comp]
			}
			s.a[stage][comp] = acc
		}
	}
}

// Step implements ivp.Method. See spec.md §4.6 for the full procedure.
func (s *Everhart) Step(t float64, y ivp.State, h float64, yOut ivp.State, parm any) bool {
	n := len(y)
	s.ensure(n)
	s.lastErr = nil

	s.predict(h)
	s.convertBToA()

	if s.radau || s.firstStep || !s.haveLastF {
		if !s.rhs(t, y, s.f0, parm) {
			s.lastErr = ivp.ErrRHSFailure
			return false
		}
	} else {
		copy(s.f0, s.lastF)
	}

	converged := false
	for iter := 0; iter < s.maxIterations; iter++ {
		for i := 0; i < s.m; i++ {
			ti := s.tau[i]
			for comp := 0; comp < n; comp++ {
				poly := hornerAt(s.b, comp, ti)
				s.yi[comp] = y[comp] + ti*h*s.f0[comp] + ti*h*poly
			}
			if !s.rhs(t+ti*h, s.yi, s.gi, parm) {
				s.lastErr = ivp.ErrRHSFailure
				return false
			}
			if i == s.m-1 && !s.radau {
				copy(s.lastF, s.gi)
				s.haveLastF = true
			}

			for comp := 0; comp < n; comp++ {
				p := (s.gi[comp] - s.f0[comp]) / ti
				for j := 0; j < i; j++ {
					p = s.deltaTau[i][j] * (p - s.a[j][comp])
				}
				delta := p - s.a[i][comp]
				for j := 0; j <= i; j++ {
					s.b[j][comp] += s.c[i+1][j+1] * delta
				}
				s.a[i][comp] = p
			}

			if i == s.m-1 {
				if iter > 0 {
					converged = true
					for comp := 0; comp < n; comp++ {
						diff := math.Abs(s.yi[comp] - s.prevLast[comp])
						if diff > s.localError*(math.Abs(s.yi[comp])+1e-15) {
							converged = false
							break
						}
					}
				}
				copy(s.prevLast, s.yi)
			}
		}
		s.lastIterations = iter + 1
		if converged {
			break
		}
	}

	if !converged && s.verifyConvergence {
		s.lastErr = ivp.ErrNonConvergence
		return false
	}

	if s.radau {
		for comp := 0; comp < n; comp++ {
			poly := hornerAt(s.b, comp, 1)
			yOut[comp] = y[comp] + h*s.f0[comp] + h*poly
		}
	} else {
		copy(yOut, s.yi)
	}

	copy(s.y0, y)
	s.hPrev = h
	s.stepBegin = t
	s.stepH = h
	s.firstStep = false
	return true
}

// Interpolate implements dense output per spec.md §4.6: evaluating the
// same Horner polynomial used by the owning step's Radau assembly, at
// τ = (tStar - stepBegin) / h. Returns false outside the interval
// covered by the most recently completed step.
func (s *Everhart) Interpolate(tStar float64, yOut ivp.State) bool {
	if s.n == 0 || s.firstStep {
		return false
	}
	lo, hi := s.stepBegin, s.stepBegin+s.stepH
	if s.stepH < 0 {
		lo, hi = hi, lo
	}
	if tStar < lo || tStar > hi {
		return false
	}
	if len(yOut) != s.n {
		return false
	}
	tau := (tStar - s.stepBegin) / s.stepH
	for comp := 0; comp < s.n; comp++ {
		poly := hornerAt(s.b, comp, tau)
		yOut[comp] = s.y0[comp] + tau*s.stepH*s.f0[comp] + tau*s.stepH*poly
	}
	return true
}

// SupportsInterpolation always reports true: Everhart always carries
// dense-output coefficients from its most recent step.
func (s *Everhart) SupportsInterpolation() bool { return true }

// Initialize implements the { uninitialized <-> warm } reset of
// spec.md §4.6, zeroing a, b, b_prev, f0, y0, lastF and setting the
// first-step flag.
func (s *Everhart) Initialize() {
	for k := range s.a {
		zero(s.a[k])
		zero(s.b[k])
		zero(s.bPrev[k])
		zero(s.savedLast[k])
	}
	zero(s.f0)
	zero(s.y0)
	zero(s.lastF)
	s.haveLastF = false
	s.firstStep = true
	s.hPrev = 0
	s.lastErr = nil
	s.lastIterations = 0
}

// LastError reports why the most recent Step call returned false:
// [ivp.ErrRHSFailure], [ivp.ErrNonConvergence], or nil after success.
// The driver may inspect this to label a trajectory failure more
// precisely than the plain bool the [ivp.Method] contract carries.
func (s *Everhart) LastError() error { return s.lastErr }

// Order reports the configured Everhart order.
func (s *Everhart) Order() int { return s.order }

// Iterations reports the number of correction sweeps the most recent
// Step call ran before converging (or exhausting MaxIterations).
func (s *Everhart) Iterations() int { return s.lastIterations }

func zero(v []float64) {
	for i := range v {
		v[i] = 0
	}
}
