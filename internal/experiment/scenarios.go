package experiment

import (
	"fmt"
	"math"

	"github.com/arletty-bit/rkapp/internal/driver"
	"github.com/arletty-bit/rkapp/internal/ivp"
	"github.com/arletty-bit/rkapp/internal/methods"
	"github.com/arletty-bit/rkapp/internal/testfn"
)

// Scenario is one of the six named end-to-end checks of spec.md §8: a
// method/problem pair, a closed-form reference, and the tolerance the
// measured error must clear.
type Scenario struct {
	Name      string
	Method    string
	run       func(h methods.Handle) (maxError float64, err error)
	Tolerance float64
}

// Result reports one scenario's outcome.
type Result struct {
	Name      string
	MaxError  float64
	Tolerance float64
	Pass      bool
	Err       error
}

func maxAbsError(states []ivp.State, t0, h float64, reference func(float64) float64) float64 {
	worst := 0.0
	for i, s := range states {
		diff := math.Abs(s[0] - reference(t0+float64(i)*h))
		if diff > worst {
			worst = diff
		}
	}
	return worst
}

// Scenarios lists the six named checks from spec.md §8, in order.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:      "scenario1_rk4_cosine",
			Method:    "rk4_classical",
			Tolerance: 1e-5,
			run: func(h methods.Handle) (float64, error) {
				rhs := driven(testfn.Sin)
				method := h.New(rhs)
				states, err := driver.Solve(method, 0, ivp.State{0}, 2*math.Pi/180, 180, nil)
				if err != nil {
					return 0, err
				}
				final := states[len(states)-1][0]
				if math.Abs(final-math.Sin(2*math.Pi)) > 1e-6 {
					return 0, fmt.Errorf("experiment: scenario1 final value off by %.3g", final-math.Sin(2*math.Pi))
				}
				return maxAbsError(states, 0, 2*math.Pi/180, testfn.Sin.Value), nil
			},
		},
		{
			Name:      "scenario2_euler_exp",
			Method:    "euler",
			Tolerance: 0.02,
			run: func(h methods.Handle) (float64, error) {
				method := h.New(exponentialGrowth)
				states, err := driver.Solve(method, 0, ivp.State{1}, 0.01, 100, nil)
				if err != nil {
					return 0, err
				}
				return math.Abs(states[len(states)-1][0] - math.E), nil
			},
		},
		{
			Name:      "scenario2_rk4_exp",
			Method:    "rk4_classical",
			Tolerance: 1e-9,
			run: func(h methods.Handle) (float64, error) {
				method := h.New(exponentialGrowth)
				states, err := driver.Solve(method, 0, ivp.State{1}, 0.01, 100, nil)
				if err != nil {
					return 0, err
				}
				return math.Abs(states[len(states)-1][0] - math.E), nil
			},
		},
		{
			Name:      "scenario3_dopri8",
			Method:    "dopri8",
			Tolerance: 1e-10,
			run: func(h methods.Handle) (float64, error) {
				rhs := driven(testfn.SinCosProduct)
				method := h.New(rhs)
				states, err := driver.Solve(method, 0, ivp.State{0}, 2*math.Pi/180, 180, nil)
				if err != nil {
					return 0, err
				}
				return maxAbsError(states, 0, 2*math.Pi/180, testfn.SinCosProduct.Value), nil
			},
		},
		{
			Name:      "scenario4_everhart15_exp",
			Method:    "everhart_15",
			Tolerance: 1e-12,
			run: func(h methods.Handle) (float64, error) {
				method := h.New(exponentialGrowth)
				states, err := driver.Solve(method, 0, ivp.State{1}, 1, 1, nil)
				if err != nil {
					return 0, err
				}
				worst := math.Abs(states[len(states)-1][0] - math.E)

				sample := ivp.State{0}
				if method.SupportsInterpolation() && method.Interpolate(0.5, sample) {
					if d := math.Abs(sample[0] - math.Sqrt(math.E)); d > worst {
						worst = d
					}
				}
				return worst, nil
			},
		},
		{
			Name:      "scenario5_everhart_interpolation_length",
			Method:    "everhart_9",
			Tolerance: 0,
			run: func(h methods.Handle) (float64, error) {
				method := h.New(exponentialGrowth)
				states, err := driver.SolveWithInterpolation(method, 0, ivp.State{1}, 0.1, 10, 3, nil)
				if err != nil {
					return 0, err
				}
				want := 10*(3+1) + 1
				if len(states) != want {
					return 0, fmt.Errorf("experiment: scenario5 length = %d, want %d", len(states), want)
				}
				return 0, nil
			},
		},
	}
}

// RunScenario looks up the named scenario, constructs its method
// handle, and runs it, returning the measured error against the stated
// tolerance.
func RunScenario(name string) (Result, error) {
	for _, sc := range Scenarios() {
		if sc.Name != name {
			continue
		}
		handle, err := methods.Lookup(sc.Method)
		if err != nil {
			return Result{}, err
		}
		maxErr, runErr := sc.run(handle)
		if runErr != nil {
			return Result{Name: sc.Name, Err: runErr}, nil
		}
		return Result{
			Name:      sc.Name,
			MaxError:  maxErr,
			Tolerance: sc.Tolerance,
			Pass:      maxErr <= sc.Tolerance,
		}, nil
	}
	return Result{}, fmt.Errorf("experiment: unknown scenario %q", name)
}

// RunAll runs every scenario in spec.md §8's order and reports each
// one's pass/fail verdict.
func RunAll() []Result {
	scenarios := Scenarios()
	results := make([]Result, len(scenarios))
	for i, sc := range scenarios {
		res, err := RunScenario(sc.Name)
		if err != nil {
			res = Result{Name: sc.Name, Err: err}
		}
		results[i] = res
	}
	return results
}
