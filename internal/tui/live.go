// Package tui implements the live-stepping terminal view (spec.md D4):
// a frame-rate-throttled ASCII trace of up to four state components
// against elapsed simulated time, drawn by calling OnStep from the loop
// that drives a trajectory.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/arletty-bit/rkapp/internal/ivp"
)

const (
	width       = 70
	height      = 20
	maxTraces   = 4
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer draws a generic multi-component trace of an
// ivp.State sequence as the driver advances it, throttled to
// frameRate frames per second (teacher's frame-rate logic, unchanged).
type LiveRenderer struct {
	label     string
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
	trails    [maxTraces][]point
}

type point struct{ x, y int }

// NewLiveRenderer returns a renderer labeled with the method/problem
// pair being run, throttled to frameRate frames per second.
func NewLiveRenderer(label string, frameRate int) *LiveRenderer {
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{label: label, frameRate: frameRate, canvas: canvas}
}

// OnStep renders one frame if enough wall-clock time has passed since
// the last one. y is the current state, t the simulated time.
func (r *LiveRenderer) OnStep(y ivp.State, t float64) {
	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	r.clear()
	r.drawTrace(y)
	r.render(y, t)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

func (r *LiveRenderer) line(x1, y1, x2, y2 int, c rune) {
	dx := absInt(x2 - x1)
	dy := absInt(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		r.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawTrace draws one trailing point-trace per state component (up to
// maxTraces), each riding its own horizontal lane, and a live bar for
// its current value relative to the largest magnitude among the drawn
// components of y (never less than 1).
func (r *LiveRenderer) drawTrace(y ivp.State) {
	n := len(y)
	if n > maxTraces {
		n = maxTraces
	}
	if n == 0 {
		return
	}

	laneHeight := height / n
	maxVal := 1.0
	for _, v := range y[:n] {
		if math.Abs(v) > maxVal {
			maxVal = math.Abs(v)
		}
	}

	for i := 0; i < n; i++ {
		laneY := i*laneHeight + laneHeight/2
		for x := 5; x < width-5; x++ {
			r.set(x, laneY, '-')
		}

		bx := width - 8
		by := laneY - int((y[i]/maxVal)*float64(laneHeight/2-1))

		r.trails[i] = append(r.trails[i], point{bx, by})
		if len(r.trails[i]) > width-13 {
			r.trails[i] = r.trails[i][1:]
		}
		for j, pt := range r.trails[i] {
			px := 8 + j
			if px >= bx {
				break
			}
			r.set(px, pt.y, '.')
		}

		r.line(bx, laneY, bx, by, '|')
		r.set(bx, by, 'o')
	}
}

func (r *LiveRenderer) render(y ivp.State, t float64) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  t=%.4fs\n", r.label, t))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	stateStr := "  "
	for i, v := range y {
		if i >= maxTraces {
			break
		}
		stateStr += fmt.Sprintf("y%d=%.6g ", i, v)
	}
	b.WriteString(stateStr + "\n")

	fmt.Print(b.String())
}

// Start hides the cursor for the duration of a live run.
func (r *LiveRenderer) Start() { fmt.Print(hideCursor) }

// Stop restores the cursor.
func (r *LiveRenderer) Stop() { fmt.Print(showCursor) }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
