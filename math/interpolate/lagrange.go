package interpolate

// Lagrange evaluates the Lagrange form of the interpolating polynomial of a
// PointSet. It places no requirements on node spacing or order.
type Lagrange struct {
	ps *PointSet
}

// NewLagrange creates a Lagrange interpolator for the given nodes.
func NewLagrange(ps *PointSet) *Lagrange {
	return &Lagrange{ps}
}

// Eval returns the value of the interpolating polynomial at x. Each call
// costs O(n^2) in the number of nodes.
func (lg *Lagrange) Eval(x float64) float64 {
	xs, ys := lg.ps.xs, lg.ps.ys
	sum := 0.0
	for i := range xs {
		// Numerator and denominator of the i-th basis polynomial. The
		// denominator is nonzero because PointSet abscissae are distinct.
		upper, lower := 1.0, 1.0
		for j := range xs {
			if i == j {
				continue
			}
			upper *= x - xs[j]
			lower *= xs[i] - xs[j]
		}
		sum += ys[i] * upper / lower
	}
	return sum
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience). The output array must be at least as long as
// xs.
func (lg *Lagrange) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(lg.Eval, xs, out)
}
