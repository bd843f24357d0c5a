package source

import (
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/interp/math/interpolate"
)

// Variable is the name of the free variable in Function expressions.
const Variable = "x"

var mathFuncs = map[string]interface{}{
	"sin": math.Sin, "cos": math.Cos, "tan": math.Tan,
	"asin": math.Asin, "acos": math.Acos, "atan": math.Atan,
	"sinh": math.Sinh, "cosh": math.Cosh, "tanh": math.Tanh,
	"exp": math.Exp, "log": math.Log, "ln": math.Log,
	"log10": math.Log10, "sqrt": math.Sqrt, "pow": math.Pow,
	"pi": math.Pi, "e": math.E,
}

// Expr is a compiled real function of Variable.
type Expr struct {
	src     string
	program *vm.Program
}

// Compile compiles src, an expression in x such as "x**2 + sin(x)". The
// expression is test-evaluated at x = 1 so that expressions which cannot
// produce a number are rejected here.
func Compile(src string) (*Expr, error) {
	program, err := expr.Compile(src, expr.Env(env(0)), expr.AsFloat64())
	if err != nil {
		return nil, errors.Wrapf(err, "invalid function '%s'", src)
	}
	e := &Expr{src, program}
	if _, err := e.Eval(1); err != nil {
		return nil, err
	}
	return e, nil
}

func env(x float64) map[string]interface{} {
	m := make(map[string]interface{}, len(mathFuncs)+1)
	for k, v := range mathFuncs {
		m[k] = v
	}
	m[Variable] = x
	return m
}

// String returns the source of the expression.
func (e *Expr) String() string { return e.src }

// Eval evaluates the expression at x.
func (e *Expr) Eval(x float64) (float64, error) {
	out, err := expr.Run(e.program, env(x))
	if err != nil {
		return 0, errors.Wrapf(err, "could not evaluate '%s' at %g", e.src, x)
	}
	switch v := out.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, errors.Errorf(
		"'%s' evaluated to %v at %g, which isn't a number", e.src, out, x,
	)
}

// Func returns the expression as a plain function. Evaluation errors are
// reported as NaN.
func (e *Expr) Func() func(float64) float64 {
	return func(x float64) float64 {
		y, err := e.Eval(x)
		if err != nil {
			return math.NaN()
		}
		return y
	}
}

// Function samples an expression at Nodes equally spaced nodes spanning
// [Low, High].
type Function struct {
	Expr      *Expr
	Nodes     int
	Low, High float64
}

func (f *Function) Points() ([]interpolate.Point, error) {
	if f.Nodes < 2 {
		return nil, errors.Errorf(
			"at least 2 nodes are needed, but %d were requested", f.Nodes,
		)
	}
	low, high := f.Low, f.High
	if low > high {
		low, high = high, low
	}

	xs := floats.Span(make([]float64, f.Nodes), low, high)
	pts := make([]interpolate.Point, len(xs))
	for i, x := range xs {
		y, err := f.Expr.Eval(x)
		if err != nil {
			return nil, err
		}
		pts[i] = interpolate.Point{X: x, Y: y}
	}
	return pts, nil
}
