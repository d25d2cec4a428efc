package metrics

import (
	"math"
	"testing"
)

type fakeIterative struct{ iterations int }

func (f fakeIterative) Iterations() int { return f.iterations }

type fakeEstimator struct{ estimate float64 }

func (f fakeEstimator) ErrorEstimate(h float64) float64 { return f.estimate }

func TestIterationCountAveragesObservedSweeps(t *testing.T) {
	m := NewIterationCount()
	m.Observe(0, 0.1, fakeIterative{iterations: 2})
	m.Observe(0.1, 0.1, fakeIterative{iterations: 4})

	if got := m.Value(); math.Abs(got-3) > 1e-12 {
		t.Fatalf("Value() = %v, want 3", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %v", m.Value())
	}
}

func TestIterationCountIgnoresNonReportingMethods(t *testing.T) {
	m := NewIterationCount()
	m.Observe(0, 0.1, struct{}{})
	if got := m.Value(); got != 0 {
		t.Errorf("Value() = %v, want 0 for an unobserved metric", got)
	}
}

func TestStepErrorEstimateComputesRMS(t *testing.T) {
	m := NewStepErrorEstimate()
	m.Observe(0, 0.1, fakeEstimator{estimate: 3})
	m.Observe(0.1, 0.1, fakeEstimator{estimate: 4})

	want := math.Sqrt((9.0 + 16.0) / 2)
	if got := m.Value(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("Value() = %v, want %v", got, want)
	}
}

func TestStepErrorEstimateIgnoresNonReportingMethods(t *testing.T) {
	m := NewStepErrorEstimate()
	m.Observe(0, 0.1, struct{}{})
	if got := m.Value(); got != 0 {
		t.Errorf("Value() = %v, want 0 for an unobserved metric", got)
	}
}
