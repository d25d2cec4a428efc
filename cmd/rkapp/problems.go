package main

import (
	"fmt"
	"math"

	"github.com/arletty-bit/rkapp/internal/ivp"
	"github.com/arletty-bit/rkapp/internal/spacecraft"
	"github.com/arletty-bit/rkapp/internal/testfn"
)

// problem bundles everything one CLI run needs to drive an IVP: the
// RHS itself, an initial condition and start time, and (where a
// closed-form solution exists) a reference for error reporting.
// Mirrors the teacher's per-model initial-state switch in
// runSimulation/runLive, narrowed to this domain's scalar test
// functions plus the spacecraft companion RHS.
type problem struct {
	Dim       int
	T0        float64
	Y0        ivp.State
	RHS       ivp.RHSFunc
	Reference func(t float64) float64 // nil when no closed form exists
}

// resolveProblem looks up a named problem for `rkapp run`/`bench`/`live`.
func resolveProblem(name string) (problem, error) {
	switch name {
	case "sin":
		// dy/dt = sin(t); antiderivative 1 - cos(t).
		return problem{
			Dim: 1, T0: 0, Y0: ivp.State{0},
			RHS:       func(t float64, y, fOut ivp.State, parm any) bool { fOut[0] = math.Sin(t); return true },
			Reference: func(t float64) float64 { return 1 - math.Cos(t) },
		}, nil
	case "cos":
		// dy/dt = cos(t) (spec.md §8 scenario 1), built as testfn.Sin's
		// derivative since the catalog only carries (value, derivative)
		// pairs: Sin.Derivative is cos, Sin.Value is the reference sin.
		return problem{
			Dim: 1, T0: 0, Y0: ivp.State{0},
			RHS:       driven(testfn.Sin),
			Reference: testfn.Sin.Value,
		}, nil
	case "exp":
		return problem{
			Dim: 1, T0: 0, Y0: ivp.State{1},
			RHS:       exponentialGrowth,
			Reference: math.Exp,
		}, nil
	case "x^2":
		// dy/dt = t^2; antiderivative t^3/3.
		return problem{
			Dim: 1, T0: 0, Y0: ivp.State{0},
			RHS:       func(t float64, y, fOut ivp.State, parm any) bool { fOut[0] = t * t; return true },
			Reference: func(t float64) float64 { return t * t * t / 3 },
		}, nil
	case "sin(x)*cos(10x)":
		return problem{
			Dim: 1, T0: 0, Y0: ivp.State{0},
			RHS:       driven(testfn.SinCosProduct),
			Reference: testfn.SinCosProduct.Value,
		}, nil
	case "log":
		return problem{
			Dim: 1, T0: 1, Y0: ivp.State{0},
			RHS:       driven(testfn.Log),
			Reference: math.Log,
		}, nil
	case "spacecraft":
		return spacecraftLEO(), nil
	}
	return problem{}, fmt.Errorf("rkapp: unknown problem %q", name)
}

// driven builds an RHS for the non-autonomous dy/dt = g(t) shape every
// internal/testfn entry drives: the derivative depends only on t.
func driven(g testfn.Function) ivp.RHSFunc {
	return func(t float64, y, fOut ivp.State, parm any) bool {
		fOut[0] = g.Derivative(t)
		return true
	}
}

// exponentialGrowth is the autonomous dy/dt = y problem: its derivative
// is the current state, not a function of t.
func exponentialGrowth(t float64, y, fOut ivp.State, parm any) bool {
	fOut[0] = y[0]
	return true
}

// spacecraftLEO seeds a circular low-Earth orbit at 500km altitude with
// zero inclination, the "spacecraft_leo" preset's companion problem.
func spacecraftLEO() problem {
	const altitude = 500.0
	const earthRadius = 6378.137
	const muEarth = 398600.4418

	r := earthRadius + altitude
	v := math.Sqrt(muEarth / r)

	rhs := spacecraft.NewRHS(spacecraft.Config{
		GeopotentialDegree:   2,
		EnableDrag:           true,
		BallisticCoefficient: 0.01,
		EnableRotation:       false,
		MinAltitude:          100,
	})

	return problem{
		Dim: 6,
		T0:  0,
		Y0:  ivp.State{r, 0, 0, 0, v, 0},
		RHS: rhs,
		// No closed-form reference under drag + J2, so the CLI reports
		// no pointwise error for this problem.
		Reference: nil,
	}
}
