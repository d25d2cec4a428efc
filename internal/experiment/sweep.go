package experiment

import (
	"sync"

	"github.com/arletty-bit/rkapp/internal/driver"
	"github.com/arletty-bit/rkapp/internal/ivp"
	"github.com/arletty-bit/rkapp/internal/methods"
)

// SweepResult reports one scheme's outcome within a sweep.
type SweepResult struct {
	Method string
	States []ivp.State
	Err    error
}

// RunSweep runs the same IVP (rhs, y0, h, steps) against every handle
// in handles, one goroutine per handle, and returns one SweepResult per
// handle in the same order handles was given. Grounded on the teacher's
// internal/dynamo/parallel.go Ensemble.Run: each goroutine owns its own
// method instance and scratch buffers, matching spec.md §5's
// concurrency model of independent per-instance state.
func RunSweep(handles []methods.Handle, rhs ivp.RHSFunc, t0 float64, y0 ivp.State, h float64, steps int, parm any) []SweepResult {
	results := make([]SweepResult, len(handles))

	var wg sync.WaitGroup
	wg.Add(len(handles))
	for i, handle := range handles {
		go func(idx int, h2 methods.Handle) {
			defer wg.Done()
			method := h2.New(rhs)
			states, err := driver.Solve(method, t0, y0, h, steps, parm)
			results[idx] = SweepResult{Method: h2.Name, States: states, Err: err}
		}(i, handle)
	}
	wg.Wait()

	return results
}
