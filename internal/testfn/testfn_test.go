package testfn

import (
	"math"
	"testing"
)

func TestAnalyticDerivativesMatchNumerical(t *testing.T) {
	cases := []struct {
		name string
		fn   Function
		x    float64
	}{
		{"sin", Sin, 0.7},
		{"cos", Cos, 0.7},
		{"exp", Exp, 0.7},
		{"x^2", Square, 0.7},
		{"sin(x)*cos(10x)", SinCosProduct, 0.7},
		{"log", Log, 2.3},
	}
	for _, c := range cases {
		got := c.fn.NumericalDerivative(c.x)
		want := c.fn.Derivative(c.x)
		if diff := math.Abs(got - want); diff > 1e-5 {
			t.Errorf("%s: numerical deriv = %v, analytic = %v (diff %v)", c.name, got, want, diff)
		}
	}
}

func TestCatalogExpressionsAreNonEmpty(t *testing.T) {
	for name, fn := range Catalog() {
		if fn.Expression() == "" {
			t.Errorf("%s: empty Expression()", name)
		}
	}
}

func TestSpacecraftMotionMarkerIsTrivial(t *testing.T) {
	if SpacecraftMotion.Value(42) != 0 {
		t.Error("SpacecraftMotion marker should have a trivial value")
	}
}
