package optim

import (
	"testing"
)

// errorAt models an error curve that halves every time steps doubles,
// the behavior an order-1 method's global error shows.
func errorAt(steps int) (float64, error) {
	return 1.0 / float64(steps), nil
}

func TestSearchReturnsSmallestPassingStepCount(t *testing.T) {
	g := Geometric(10, 10000)
	steps, measured, err := g.Search(errorAt, 1e-3)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if steps != 1280 {
		t.Errorf("steps = %d, want 1280 (first power-of-two-from-10 multiple clearing 1e-3)", steps)
	}
	if measured > 1e-3 {
		t.Errorf("measured error %.3g exceeds tolerance", measured)
	}
}

func TestSearchFailsWhenNoCandidateClearsTolerance(t *testing.T) {
	g := NewStepCountSearch([]int{10, 20, 40})
	_, _, err := g.Search(errorAt, 1e-9)
	if err == nil {
		t.Fatal("expected an error when no candidate clears the tolerance")
	}
}

func TestSearchPropagatesRunError(t *testing.T) {
	g := NewStepCountSearch([]int{10})
	_, _, err := g.Search(func(steps int) (float64, error) {
		return 0, errBoom
	}, 1e-3)
	if err != errBoom {
		t.Fatalf("got %v, want errBoom", err)
	}
}

var errBoom = testErr("boom")

type testErr string

func (e testErr) Error() string { return string(e) }

func TestGeometricProducesDoublingSequence(t *testing.T) {
	g := Geometric(4, 32)
	want := []int{4, 8, 16, 32}
	if len(g.candidates) != len(want) {
		t.Fatalf("got %v, want %v", g.candidates, want)
	}
	for i, v := range want {
		if g.candidates[i] != v {
			t.Errorf("candidates[%d] = %d, want %d", i, g.candidates[i], v)
		}
	}
}
