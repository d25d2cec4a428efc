package experiment

import (
	"testing"

	"github.com/arletty-bit/rkapp/internal/ivp"
	"github.com/arletty-bit/rkapp/internal/methods"
)

func TestRunScenarioAllPass(t *testing.T) {
	for _, sc := range Scenarios() {
		res, err := RunScenario(sc.Name)
		if err != nil {
			t.Fatalf("RunScenario(%q): %v", sc.Name, err)
		}
		if res.Err != nil {
			t.Fatalf("scenario %q failed: %v", sc.Name, res.Err)
		}
		if !res.Pass {
			t.Errorf("scenario %q: maxError %.3g exceeds tolerance %.3g", sc.Name, res.MaxError, res.Tolerance)
		}
	}
}

func TestRunAllReturnsOneResultPerScenario(t *testing.T) {
	results := RunAll()
	if len(results) != len(Scenarios()) {
		t.Fatalf("got %d results, want %d", len(results), len(Scenarios()))
	}
}

func TestRunScenarioUnknownNameFails(t *testing.T) {
	if _, err := RunScenario("nonexistent"); err == nil {
		t.Fatal("expected an error for an unknown scenario name")
	}
}

func TestRunSweepCoversEveryHandle(t *testing.T) {
	handles := []methods.Handle{}
	for _, name := range []string{"euler", "rk4_classical", "dopri8"} {
		h, err := methods.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		handles = append(handles, h)
	}

	results := RunSweep(handles, exponentialGrowth, 0, ivp.State{1}, 0.01, 50, nil)
	if len(results) != len(handles) {
		t.Fatalf("got %d results, want %d", len(results), len(handles))
	}
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("handle %q: %v", handles[i].Name, res.Err)
		}
		if res.Method != handles[i].Name {
			t.Errorf("results[%d].Method = %q, want %q", i, res.Method, handles[i].Name)
		}
		if len(res.States) != 51 {
			t.Errorf("handle %q: got %d states, want 51", res.Method, len(res.States))
		}
	}
}
