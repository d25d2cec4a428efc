package numdiff

import (
	"math"
	"testing"
)

func TestCentral(t *testing.T) {
	tests := []struct {
		name string
		g    func(float64) float64
		x    float64
		want float64
	}{
		{"sin at 0", math.Sin, 0, 1},
		{"sin at pi/2", math.Sin, math.Pi / 2, 0},
		{"square at 3", func(x float64) float64 { return x * x }, 3, 6},
		{"exp at 1", math.Exp, 1, math.E},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Central(tt.g, tt.x)
			if math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("Central(%s, %v) = %v, want %v", tt.name, tt.x, got, tt.want)
			}
		})
	}
}
