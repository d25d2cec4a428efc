// Package testfn implements the test-function interface (spec.md §4.9):
// a small catalog of analytic scalar functions used to drive scalar
// ODEs of the form dy/dx = g(x), each able to report its own value,
// its analytic derivative, a numerically-estimated derivative routed
// through internal/numdiff, and a display expression.
package testfn

import (
	"math"

	"github.com/arletty-bit/rkapp/internal/numdiff"
)

// Function is the polymorphic test-function trait of spec.md §4.9.
type Function interface {
	Value(x float64) float64
	Derivative(x float64) float64
	NumericalDerivative(x float64) float64
	Expression() string
}

// analytic wraps a value/derivative pair with a display expression,
// implementing Function's NumericalDerivative via internal/numdiff for
// every catalog entry uniformly.
type analytic struct {
	value      func(float64) float64
	derivative func(float64) float64
	expression string
}

func (a analytic) Value(x float64) float64      { return a.value(x) }
func (a analytic) Derivative(x float64) float64 { return a.derivative(x) }
func (a analytic) Expression() string           { return a.expression }
func (a analytic) NumericalDerivative(x float64) float64 {
	return numdiff.Central(a.value, x)
}

// Sin is g(x) = sin(x), g'(x) = cos(x).
var Sin Function = analytic{math.Sin, math.Cos, "sin(x)"}

// Cos is g(x) = cos(x), g'(x) = -sin(x).
var Cos Function = analytic{math.Cos, func(x float64) float64 { return -math.Sin(x) }, "cos(x)"}

// Exp is g(x) = e^x, g'(x) = e^x.
var Exp Function = analytic{math.Exp, math.Exp, "exp(x)"}

// Square is g(x) = x^2, g'(x) = 2x.
var Square Function = analytic{
	func(x float64) float64 { return x * x },
	func(x float64) float64 { return 2 * x },
	"x^2",
}

// SinCosProduct is g(x) = sin(x)*cos(10x), the scenario-3 (spec.md §8)
// reference function; its derivative is
// cos(x)*cos(10x) - 10*sin(x)*sin(10x).
var SinCosProduct Function = analytic{
	func(x float64) float64 { return math.Sin(x) * math.Cos(10*x) },
	func(x float64) float64 {
		return math.Cos(x)*math.Cos(10*x) - 10*math.Sin(x)*math.Sin(10*x)
	},
	"sin(x)*cos(10x)",
}

// Log is g(x) = ln(x), g'(x) = 1/x, defined for x > 0.
var Log Function = analytic{math.Log, func(x float64) float64 { return 1 / x }, "log(x)"}

// spacecraftMotion is a marker entry: its value/derivative are trivial
// placeholders since real spacecraft dynamics come from
// internal/spacecraft, a separate six-dimensional RHS rather than a
// scalar test function (spec.md §4.9's "out of scope" note).
var spacecraftMotion Function = analytic{
	func(x float64) float64 { return 0 },
	func(x float64) float64 { return 0 },
	"spacecraft motion (see internal/spacecraft)",
}

// SpacecraftMotion is the catalog marker for the spacecraft companion
// problem; it carries no analytic content of its own.
var SpacecraftMotion = spacecraftMotion

// Catalog returns the built-in functions keyed by name; as a map it
// carries no order.
func Catalog() map[string]Function {
	return map[string]Function{
		"sin":             Sin,
		"cos":             Cos,
		"exp":             Exp,
		"x^2":             Square,
		"sin(x)*cos(10x)": SinCosProduct,
		"log":             Log,
		"spacecraft":      SpacecraftMotion,
	}
}
