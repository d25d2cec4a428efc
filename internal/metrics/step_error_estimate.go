package metrics

import "math"

// StepErrorEstimate tracks the RMS of a method's own embedded local-error
// estimate across a run, e.g. DOPRI8's order-(5,3) estimator (spec.md
// §4.1). Observe is a no-op for methods that don't expose
// [errorEstimator], mirroring [IterationCount]'s capability-probe
// approach so the same trajectory loop can collect either metric
// without knowing which method is driving it.
type StepErrorEstimate struct {
	name    string
	sumSq   float64
	samples int
}

// NewStepErrorEstimate returns a ready-to-use StepErrorEstimate accumulator.
func NewStepErrorEstimate() *StepErrorEstimate {
	return &StepErrorEstimate{name: "step_error_estimate"}
}

func (m *StepErrorEstimate) Name() string { return m.name }

func (m *StepErrorEstimate) Observe(t, h float64, method any) {
	estimator, ok := method.(errorEstimator)
	if !ok {
		return
	}
	e := estimator.ErrorEstimate(h)
	m.sumSq += e * e
	m.samples++
}

// Value returns the RMS error estimate across all observed steps, or 0
// if the method never exposed [errorEstimator].
func (m *StepErrorEstimate) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return math.Sqrt(m.sumSq / float64(m.samples))
}

func (m *StepErrorEstimate) Reset() {
	m.sumSq = 0
	m.samples = 0
}
