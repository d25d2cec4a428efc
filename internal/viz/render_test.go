package viz

import (
	"testing"

	"github.com/arletty-bit/rkapp/internal/ivp"
)

func TestComponentExtractsColumn(t *testing.T) {
	states := []ivp.State{{1, 10}, {2, 20}, {3, 30}}
	got := Component(states, 1)
	want := []float64{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Component()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestErrorSeriesComputesAbsoluteDifference(t *testing.T) {
	states := []ivp.State{{1}, {2}}
	times := []float64{0, 1}
	got := ErrorSeries(states, times, 0, func(t float64) float64 { return t })
	if got[0] != 1 || got[1] != 1 {
		t.Fatalf("got %v, want [1 1]", got)
	}
}

func TestCurveProducesNonEmptyCanvas(t *testing.T) {
	data := []float64{0, 1, 0, -1, 0}
	c := Curve(data, 20, 5)
	if c.Width != 20 || c.Height != 5 {
		t.Fatalf("got %dx%d, want 20x5", c.Width, c.Height)
	}
}
