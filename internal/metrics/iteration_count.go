package metrics

// IterationCount tracks the mean number of Everhart correction sweeps
// run per step (spec.md §4.6's iterate-to-convergence loop). Observe
// is a no-op for methods that don't expose [iterationReporter], e.g.
// explicit Runge-Kutta steppers, so the same trajectory loop can
// collect this metric regardless of which method is driving it.
type IterationCount struct {
	name    string
	sum     int
	samples int
}

// NewIterationCount returns a ready-to-use IterationCount accumulator.
func NewIterationCount() *IterationCount {
	return &IterationCount{name: "iteration_count"}
}

func (m *IterationCount) Name() string { return m.name }

func (m *IterationCount) Observe(t, h float64, method any) {
	reporter, ok := method.(iterationReporter)
	if !ok {
		return
	}
	m.sum += reporter.Iterations()
	m.samples++
}

// Value returns the mean sweep count across all observed steps, or 0
// if the method never exposed [iterationReporter].
func (m *IterationCount) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.sum) / float64(m.samples)
}

func (m *IterationCount) Reset() {
	m.sum = 0
	m.samples = 0
}
