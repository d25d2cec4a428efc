package tableau

import (
	"math"
	"testing"

	"github.com/arletty-bit/rkapp/internal/ivp"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	if _, err := New("bad", 1, []float64{1, 2}, []float64{1}, []float64{1, 1}); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}

// cosRHS is dy/dt = cos(t); the analytic solution is y = sin(t).
func cosRHS(t float64, y ivp.State, fOut ivp.State, parm any) bool {
	fOut[0] = math.Cos(t)
	return true
}

func TestEulerSingleStage(t *testing.T) {
	s := NewStepper(Euler, cosRHS)
	y := ivp.State{0}
	out := ivp.State{0}
	if !s.Step(0, y, 0.1, out, nil) {
		t.Fatal("step failed")
	}
	want := 0 + 0.1*math.Cos(0)
	if math.Abs(out[0]-want) > 1e-12 {
		t.Errorf("got %v want %v", out[0], want)
	}
}

func TestZeroStepCopiesState(t *testing.T) {
	s := NewStepper(RK4Classical, cosRHS)
	y := ivp.State{1.5}
	out := ivp.State{0}
	if !s.Step(1.0, y, 0, out, nil) {
		t.Fatal("step failed")
	}
	if out[0] != y[0] {
		t.Errorf("zero step should copy state, got %v want %v", out[0], y[0])
	}
}

func TestRHSFailurePropagates(t *testing.T) {
	failing := func(t float64, y, fOut ivp.State, parm any) bool { return false }
	s := NewStepper(RK4Classical, failing)
	y := ivp.State{0}
	out := ivp.State{0}
	if s.Step(0, y, 0.1, out, nil) {
		t.Fatal("expected step to fail")
	}
}

func TestRK4AccuracyAgainstSine(t *testing.T) {
	s := NewStepper(RK4Classical, cosRHS)
	y := ivp.State{0}
	out := ivp.State{0}
	h := (2 * math.Pi) / 180
	tt := 0.0
	for i := 0; i < 180; i++ {
		if !s.Step(tt, y, h, out, nil) {
			t.Fatalf("step %d failed", i)
		}
		y[0] = out[0]
		tt += h
	}
	if math.Abs(y[0]-math.Sin(2*math.Pi)) > 1e-6 {
		t.Errorf("final y = %v, want ~0", y[0])
	}
}
