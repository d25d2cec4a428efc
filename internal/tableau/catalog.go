package tableau

import "math"

// The concrete (c, A, b) triples of spec.md §4.4, the literal
// coefficients cited in the standard literature for each scheme.

func must(t *Tableau, err error) *Tableau {
	if err != nil {
		panic(err)
	}
	return t
}

// Euler is the explicit (forward) Euler method: 1 stage, order 1.
var Euler = must(New("euler", 1, []float64{}, []float64{}, []float64{1}))

// Heun is Heun's trapezoid method: 2 stages, order 2.
var Heun = must(New("heun2", 2, []float64{1}, []float64{1}, []float64{0.5, 0.5}))

// Midpoint is the explicit midpoint method: 2 stages, order 2.
var Midpoint = must(New("midpoint", 2, []float64{0.5}, []float64{0.5}, []float64{0, 1}))

// RK3Classical is Kutta's classical third-order method: 3 stages, order 3.
var RK3Classical = must(New("rk3_classical", 3,
	[]float64{0.5, 1},
	[]float64{0.5, -1, 2},
	[]float64{1.0 / 6, 2.0 / 3, 1.0 / 6}))

// RK3Heun is Heun's third-order method: 3 stages, order 3.
var RK3Heun = must(New("rk3_heun", 3,
	[]float64{1.0 / 3, 2.0 / 3},
	[]float64{1.0 / 3, 0, 2.0 / 3},
	[]float64{0.25, 0, 0.75}))

// RK3SSP is the strong-stability-preserving third-order method: 3 stages, order 3.
var RK3SSP = must(New("rk3_ssp", 3,
	[]float64{1, 0.5},
	[]float64{1, 0.25, 0.25},
	[]float64{1.0 / 6, 1.0 / 6, 2.0 / 3}))

// RK4Classical is the classical fourth-order method: 4 stages, order 4.
var RK4Classical = must(New("rk4_classical", 4,
	[]float64{0.5, 0.5, 1},
	[]float64{0.5, 0, 0.5, 0, 0, 1},
	[]float64{1.0 / 6, 1.0 / 3, 1.0 / 3, 1.0 / 6}))

// RK4ThreeEighths is Kutta's 3/8-rule fourth-order method: 4 stages, order 4.
var RK4ThreeEighths = must(New("rk4_3_8", 4,
	[]float64{1.0 / 3, 2.0 / 3, 1},
	[]float64{1.0 / 3, -1.0 / 3, 1, 1, -1, 1},
	[]float64{0.125, 0.375, 0.375, 0.125}))

// RK4Gill is Gill's fourth-order method, the sqrt(2)-coefficient variant
// that trims round-off accumulation: 4 stages, order 4.
var RK4Gill = func() *Tableau {
	sqrt2 := math.Sqrt2
	a21 := 0.5
	a31 := (sqrt2 - 1) / 2
	a32 := (2 - sqrt2) / 2
	a41 := 0.0
	a42 := -sqrt2 / 2
	a43 := (2 + sqrt2) / 2
	return must(New("rk4_gill", 4,
		[]float64{0.5, 0.5, 1},
		[]float64{a21, a31, a32, a41, a42, a43},
		[]float64{1.0 / 6, (2 - sqrt2) / 6, (2 + sqrt2) / 6, 1.0 / 6}))
}()

// RK5KuttaNystrom is the classical six-stage fifth-order method: 6 stages, order 5.
var RK5KuttaNystrom = must(New("rk5_kutta_nystrom", 5,
	[]float64{1.0 / 3, 2.0 / 5, 1, 2.0 / 3, 4.0 / 5},
	[]float64{
		1.0 / 3,
		4.0 / 25, 6.0 / 25,
		0.25, -3, 3.75,
		2.0 / 27, 10.0 / 9, -50.0 / 81, 8.0 / 81,
		2.0 / 25, 12.0 / 25, 2.0 / 15, 8.0 / 75, 0,
	},
	[]float64{23.0 / 192, 0, 125.0 / 192, 0, -27.0 / 64, 125.0 / 192}))

// RK6GoldenRatio is Butcher's seven-stage sixth-order method (spec.md
// §4.4), named for the sqrt(5) terms its nodes and weights share with
// the golden ratio. Transcribed digit-for-digit from the pack's CRK6x
// (Butcher, "On Runge-Kutta Processes of High Order", J. Austral. Math.
// Soc. 4 (1964): 179-194); an earlier pass through this file used a
// made-up equal-row-sum A matrix under equally spaced nodes, which is
// not this method at all. See DESIGN.md.
var RK6GoldenRatio = func() *Tableau {
	sqrt5 := math.Sqrt(5.0)
	c := []float64{
		0.5 - sqrt5/10,
		0.5 + sqrt5/10,
		0.5 - sqrt5/10,
		0.5 + sqrt5/10,
		0.5 - sqrt5/10,
		1.0,
	}
	b := []float64{1.0 / 12, 0, 0, 0, 5.0 / 12, 5.0 / 12, 1.0 / 12}
	a := []float64{
		// stage 2
		0.5 - sqrt5/10,
		// stage 3
		-sqrt5 / 10, 0.5 + sqrt5/5,
		// stage 4
		-0.75 + 7.0/20*sqrt5, -0.25 + 0.25*sqrt5, 1.5 - 7.0/10*sqrt5,
		// stage 5
		(5.0 - sqrt5) / 60, 0.0, 1.0 / 6, (15.0 + 7.0*sqrt5) / 60,
		// stage 6
		(5.0 + sqrt5) / 60, 0.0, (9.0 - 5.0*sqrt5) / 12, 1.0 / 6, (-5.0 + 3.0*sqrt5) / 10,
		// stage 7
		1.0 / 6, 0.0, (25.0*sqrt5 - 55.0) / 12, -(25.0 + 7.0*sqrt5) / 12, 5.0 - 2.0*sqrt5, 2.5 + sqrt5/2.0,
	}
	return must(New("rk6_golden_ratio", 6, c, a, b))
}()

// dopriC/dopriA are the shared 7-stage Dormand-Prince c/A pair reused by
// both weight choices below (DOPRI5(4) and DOPRI5(5)).
var (
	dopriC = []float64{1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}
	dopriA = []float64{
		1.0 / 5,
		3.0 / 40, 9.0 / 40,
		44.0 / 45, -56.0 / 15, 32.0 / 9,
		19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729,
		9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656,
		35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84,
	}
	dopriB5 = []float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0}
	dopriB4 = []float64{
		5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640,
		-92097.0 / 339200, 187.0 / 2100, 1.0 / 40,
	}
)

// DOPRI5Order5 is the Dormand-Prince 7-stage tableau evaluated at its
// 5th-order weights: 7 stages, order 5.
var DOPRI5Order5 = must(New("dopri5_5", 5, dopriC, dopriA, dopriB5))

// DOPRI5Order4 is the same 7-stage tableau evaluated at its embedded
// 4th-order weights, used for local error estimation: 7 stages, order 4.
var DOPRI5Order4 = must(New("dopri5_4", 4, dopriC, dopriA, dopriB4))

// Catalog lists every classical scheme, in the order spec.md §4.4 names them.
func Catalog() []*Tableau {
	return []*Tableau{
		Euler, Heun, Midpoint,
		RK3Classical, RK3Heun, RK3SSP,
		RK4Classical, RK4ThreeEighths, RK4Gill,
		RK5KuttaNystrom, RK6GoldenRatio,
		DOPRI5Order4, DOPRI5Order5,
	}
}
