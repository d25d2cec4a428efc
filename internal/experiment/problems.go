package experiment

import (
	"github.com/arletty-bit/rkapp/internal/ivp"
	"github.com/arletty-bit/rkapp/internal/testfn"
)

// driven builds an RHS for a non-autonomous scalar problem dy/dt = g(t),
// the shape every internal/testfn entry drives: the derivative depends
// only on t, never on the current y.
func driven(g testfn.Function) ivp.RHSFunc {
	return func(t float64, y, fOut ivp.State, parm any) bool {
		fOut[0] = g.Derivative(t)
		return true
	}
}

// exponentialGrowth is the autonomous dy/dt = y problem used by
// scenarios 2 and 4 (spec.md §8): its derivative is the state itself,
// not a function of t, so it cannot be expressed via internal/testfn.
func exponentialGrowth(t float64, y, fOut ivp.State, parm any) bool {
	fOut[0] = y[0]
	return true
}
