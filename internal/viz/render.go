package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/arletty-bit/rkapp/internal/ivp"
)

// Component extracts the values of one state component across a
// trajectory, for plotting against the step grid.
func Component(states []ivp.State, index int) []float64 {
	data := make([]float64, len(states))
	for i, s := range states {
		if index < len(s) {
			data[i] = s[index]
		}
	}
	return data
}

// ErrorSeries computes |states[i][index] - reference(times[i])| for
// each step, the scalar error curve used to visualize an integrator's
// accuracy against a closed-form reference.
func ErrorSeries(states []ivp.State, times []float64, index int, reference func(float64) float64) []float64 {
	data := make([]float64, len(states))
	for i, s := range states {
		if index < len(s) {
			data[i] = absFloat(s[index] - reference(times[i]))
		}
	}
	return data
}

// Sparkline renders a quick terminal plot of data using asciigraph,
// the way cmd/dynsim's plot subcommand rendered each state component.
func Sparkline(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// Curve renders data as a braille line plot on a Canvas sized w x h
// (in canvas cells; the sub-pixel resolution is w*2 x h*4).
func Curve(data []float64, w, h int) *Canvas {
	c := NewCanvas(w, h)
	if len(data) < 2 {
		return c
	}

	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	subW, subH := w*2, h*4
	toSubX := func(i int) int { return i * (subW - 1) / (len(data) - 1) }
	toSubY := func(v float64) int {
		norm := (v - min) / rng
		return subH - 1 - int(norm*float64(subH-1))
	}

	prevX, prevY := toSubX(0), toSubY(data[0])
	c.Set(prevX, prevY)
	for i := 1; i < len(data); i++ {
		x, y := toSubX(i), toSubY(data[i])
		c.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
	return c
}

// Summary formats a one-line caption for a run: method, problem, final
// error (if known).
func Summary(method, problem string, finalError float64) string {
	if finalError == 0 {
		return fmt.Sprintf("%s / %s", method, problem)
	}
	return fmt.Sprintf("%s / %s  final error %.3e", method, problem, finalError)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
