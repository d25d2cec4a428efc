package dopri8

import (
	"math"
	"testing"

	"github.com/arletty-bit/rkapp/internal/ivp"
)

func expRHS(t float64, y ivp.State, fOut ivp.State, parm any) bool {
	fOut[0] = y[0]
	return true
}

func TestStepAdvancesExponential(t *testing.T) {
	s := New(expRHS)
	y := ivp.State{1}
	out := ivp.State{0}
	h := 1.0 / 100
	for i := 0; i < 100; i++ {
		if !s.Step(float64(i)*h, y, h, out, nil) {
			t.Fatalf("step %d failed", i)
		}
		y[0] = out[0]
	}
	if math.Abs(y[0]-math.E) > 1e-4 {
		t.Errorf("got %v, want ~%v", y[0], math.E)
	}
}

func TestResetInvalidatesFSAL(t *testing.T) {
	s := New(expRHS)
	y := ivp.State{1}
	out := ivp.State{0}
	s.Step(0, y, 0.1, out, nil)
	s.Initialize()
	if s.warm {
		t.Fatal("Initialize should clear warm state")
	}
}

func TestRHSFailureAborts(t *testing.T) {
	failing := func(t float64, y, fOut ivp.State, parm any) bool { return false }
	s := New(failing)
	y := ivp.State{1}
	out := ivp.State{0}
	if s.Step(0, y, 0.1, out, nil) {
		t.Fatal("expected failure")
	}
}
