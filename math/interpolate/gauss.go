package interpolate

// Gauss evaluates the interpolating polynomial of a uniformly spaced
// PointSet with Gauss's central difference formulas. The pivot is the middle
// node. Points at or above the pivot use the forward formula,
//
//	y0 + t Δy0 + t(t-1)/2! Δ²y-1 + (t+1)t(t-1)/3! Δ³y-1 + ...
//
// and points below it use the backward formula,
//
//	y0 + t Δy-1 + (t+1)t/2! Δ²y-1 + (t+1)t(t-1)/3! Δ³y-2 + ...
//
// where t = (x - x0) / h and subscripts are node offsets from the pivot.
//
// Central formulas need a unique middle node, so when the node count is even
// the last node is left out.
type Gauss struct {
	table  *DifferenceTable
	n      int
	middle int
	x0, h  float64
}

// NewGauss creates a central difference interpolator from a difference table.
func NewGauss(table *DifferenceTable) *Gauss {
	n := table.Len()
	if n%2 == 0 {
		n--
	}
	middle := n / 2
	return &Gauss{
		table:  table,
		n:      n,
		middle: middle,
		x0:     table.ps.xs[middle],
		h:      table.h,
	}
}

// Nodes returns the number of nodes used by the formula. This is one less
// than the size of the PointSet when that size is even.
func (g *Gauss) Nodes() int { return g.n }

// Pivot returns the x value of the central node.
func (g *Gauss) Pivot() float64 { return g.x0 }

// Eval returns the value of the interpolating polynomial at x.
func (g *Gauss) Eval(x float64) float64 {
	t := (x - g.x0) / g.h
	forward := x >= g.x0

	sum := 0.0
	for i := 0; i < g.n; i++ {
		i1 := i / 2

		// Term i has i factors, (t - k) or (t + k) for k in [lo, i1].
		lo := -i1 + 1
		if i%2 == 1 {
			lo = -i1
		}

		s, m := 1.0, 1.0
		for k := lo; k <= i1; k++ {
			if forward {
				s *= (t - float64(k)) / m
			} else {
				s *= (t + float64(k)) / m
			}
			m++
		}

		row := g.middle - i1
		if !forward {
			// Backward odd terms step one more node below the pivot.
			row -= i % 2
		}
		sum += s * g.table.rows[row][i]
	}
	return sum
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience). The output array must be at least as long as
// xs.
func (g *Gauss) EvalAll(xs []float64, out ...[]float64) []float64 {
	return evalAll(g.Eval, xs, out)
}

// Estimate is an interpolated value which might not be available. When
// Available is false, Value is meaningless and Reason explains why.
type Estimate struct {
	Value     float64
	Available bool
	Reason    error
}

// GaussCentral evaluates the central difference interpolating polynomial of
// ps at x. If ps is not uniformly spaced, the returned Estimate is marked as
// unavailable and its Reason is a *SpacingError.
func GaussCentral(ps *PointSet, x float64) Estimate {
	table, err := NewDifferenceTable(ps)
	if err != nil {
		return Estimate{Reason: err}
	}
	return Estimate{Value: NewGauss(table).Eval(x), Available: true}
}
