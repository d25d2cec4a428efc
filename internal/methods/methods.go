// Package methods implements the method façade (spec.md §4.8): a
// named handle over every scheme in the library, carrying a
// human-readable label, a factory that binds an RHS to produce a
// ready-to-step [ivp.Method], and a flag telling the driver whether the
// interpolation variant is worth choosing.
//
// Grounded on the teacher's internal/experiment.Registry
// (name -> factory map), trimmed to the three fields spec.md §4.8 calls
// for: no model/controller dimension beyond the scheme itself belongs
// here.
package methods

import (
	"fmt"

	"github.com/arletty-bit/rkapp/internal/dopri8"
	"github.com/arletty-bit/rkapp/internal/everhart"
	"github.com/arletty-bit/rkapp/internal/ivp"
	"github.com/arletty-bit/rkapp/internal/tableau"
)

// Handle is a named constructor for an ivp.Method. No behavioral logic
// beyond dispatch lives here.
type Handle struct {
	Name                  string
	Label                 string
	New                   func(rhs ivp.RHSFunc) ivp.Method
	SupportsInterpolation bool
}

func tableauHandle(tab *tableau.Tableau, label string) Handle {
	return Handle{
		Name:  tab.Name,
		Label: label,
		New: func(rhs ivp.RHSFunc) ivp.Method {
			return tableau.NewStepper(tab, rhs)
		},
		SupportsInterpolation: false,
	}
}

// Catalog lists every handle the library exposes: the classical
// tableau catalog, DOPRI8(5,3), and Everhart at its most common
// pre-set orders. EverhartOrder constructs a handle for any order in
// [2, 32] on demand; this catalog exists for UI listing, not as the
// only way to reach Everhart.
func Catalog() []Handle {
	handles := []Handle{
		{
			Name:  "dopri8",
			Label: "Dormand-Prince 8(5,3)",
			New: func(rhs ivp.RHSFunc) ivp.Method {
				return dopri8.New(rhs)
			},
			SupportsInterpolation: false,
		},
	}
	for _, tab := range tableau.Catalog() {
		handles = append(handles, tableauHandle(tab, tab.Name))
	}
	for _, order := range []int{2, 7, 9, 11, 15, 19, 25, 32} {
		if h, err := EverhartOrder(order); err == nil {
			handles = append(handles, h)
		}
	}
	return handles
}

// EverhartOrder builds a Handle for the Everhart scheme at the given
// order (spec.md §4.6), using the library defaults for local_error,
// max_iterations, and verify_convergence.
func EverhartOrder(order int) (Handle, error) {
	cfg := everhart.Config{Order: order, VerifyConvergence: true}
	if _, err := everhart.New(cfg, func(t float64, y, fOut ivp.State, parm any) bool { return true }); err != nil {
		return Handle{}, err
	}
	family := "radau"
	if order%2 == 0 {
		family = "lobatto"
	}
	return Handle{
		Name:  fmt.Sprintf("everhart_%d", order),
		Label: fmt.Sprintf("Everhart order %d (%s)", order, family),
		New: func(rhs ivp.RHSFunc) ivp.Method {
			ev, err := everhart.New(cfg, rhs)
			if err != nil {
				panic(err) // order already validated above
			}
			return ev
		},
		SupportsInterpolation: true,
	}, nil
}

// Lookup finds a handle by name, constructing an Everhart handle on the
// fly for names of the form "everhart_<order>" that aren't in Catalog's
// fixed pre-set list.
func Lookup(name string) (Handle, error) {
	for _, h := range Catalog() {
		if h.Name == name {
			return h, nil
		}
	}
	var order int
	if n, err := fmt.Sscanf(name, "everhart_%d", &order); err == nil && n == 1 {
		return EverhartOrder(order)
	}
	return Handle{}, fmt.Errorf("methods: unknown method %q", name)
}
