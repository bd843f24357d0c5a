// Package interpolate estimates function values from a finite table of
// samples using global interpolating polynomials.
package interpolate

import "fmt"

// Interpolator is a one dimensional interpolating function.
type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Lagrange{}
	_ Interpolator = &Gauss{}
)

// evalAll evaluates f at all the given x values. If an output array is given,
// the output is written to that array (the array is still returned as a
// convenience).
//
// If more than one output array is provided, only the first is used. The
// output array must be at least as long as xs.
func evalAll(f func(float64) float64, xs []float64, out [][]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	} else if len(out[0]) < len(xs) {
		panic(fmt.Sprintf(
			"len(out) = %d, but len(xs) = %d", len(out[0]), len(xs),
		))
	}
	for i, x := range xs {
		out[0][i] = f(x)
	}
	return out[0]
}
