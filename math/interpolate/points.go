package interpolate

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultDelta is the default tolerance used to compare abscissae and node
// gaps.
const DefaultDelta = 1e-6

// Point is a single interpolation node.
type Point struct {
	X, Y float64
}

// PointSet is an immutable, validated sequence of interpolation nodes. All x
// values are pairwise distinct.
type PointSet struct {
	xs, ys []float64
	delta  float64
}

// Option configures a PointSet.
type Option func(*PointSet)

// WithDelta sets the tolerance used when comparing x values and node gaps.
// Non-positive values are ignored.
func WithDelta(delta float64) Option {
	return func(ps *PointSet) {
		if delta > 0 {
			ps.delta = delta
		}
	}
}

// NewPointSet validates points and returns them as a PointSet. It returns an
// *InsufficientPointsError if fewer than two points are given and a
// *DuplicateAbscissaError if any two points share an x value.
//
// points is copied and may be modified afterwards.
func NewPointSet(points []Point, opts ...Option) (*PointSet, error) {
	xs, ys := make([]float64, len(points)), make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return newPointSet(xs, ys, opts)
}

// NewPointSetXY is identical to NewPointSet, but takes the node coordinates
// as two parallel slices.
func NewPointSetXY(xs, ys []float64, opts ...Option) (*PointSet, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"len(xs) = %d, but len(ys) = %d", len(xs), len(ys),
		)
	}
	return newPointSet(
		append([]float64(nil), xs...), append([]float64(nil), ys...), opts,
	)
}

func newPointSet(xs, ys []float64, opts []Option) (*PointSet, error) {
	ps := &PointSet{xs: xs, ys: ys, delta: DefaultDelta}
	for _, opt := range opts {
		opt(ps)
	}

	if len(xs) < 2 {
		return nil, &InsufficientPointsError{N: len(xs)}
	}

	// Any pair within delta of each other is also adjacent after sorting.
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return xs[order[i]] < xs[order[j]]
	})
	for k := 0; k < len(order)-1; k++ {
		i, j := order[k], order[k+1]
		if scalar.EqualWithinAbs(xs[i], xs[j], ps.delta) {
			if i > j {
				i, j = j, i
			}
			return nil, &DuplicateAbscissaError{I: i, J: j, X: xs[i]}
		}
	}

	return ps, nil
}

// Len returns the number of nodes.
func (ps *PointSet) Len() int { return len(ps.xs) }

// At returns the i-th node.
func (ps *PointSet) At(i int) Point { return Point{ps.xs[i], ps.ys[i]} }

// X returns the x value of the i-th node.
func (ps *PointSet) X(i int) float64 { return ps.xs[i] }

// Y returns the y value of the i-th node.
func (ps *PointSet) Y(i int) float64 { return ps.ys[i] }

// Xs returns a copy of the node x values.
func (ps *PointSet) Xs() []float64 { return append([]float64(nil), ps.xs...) }

// Ys returns a copy of the node y values.
func (ps *PointSet) Ys() []float64 { return append([]float64(nil), ps.ys...) }

// Points returns a copy of the nodes.
func (ps *PointSet) Points() []Point {
	out := make([]Point, len(ps.xs))
	for i := range out {
		out[i] = ps.At(i)
	}
	return out
}

// Delta returns the tolerance used by the PointSet.
func (ps *PointSet) Delta() float64 { return ps.delta }

// Range returns the smallest and largest node x values.
func (ps *PointSet) Range() (low, high float64) {
	return floats.Min(ps.xs), floats.Max(ps.xs)
}

// Spacing returns the node step h if the nodes are in ascending order and
// every gap is within Delta() of the first one. Otherwise a *SpacingError
// describing the first offending gap is returned.
func (ps *PointSet) Spacing() (float64, error) {
	h := ps.xs[1] - ps.xs[0]
	if h <= 0 {
		return 0, &SpacingError{Index: 0, Step: h, Gap: h}
	}
	for i := 1; i < len(ps.xs)-1; i++ {
		gap := ps.xs[i+1] - ps.xs[i]
		if !scalar.EqualWithinAbs(gap, h, ps.delta) {
			return 0, &SpacingError{Index: i, Step: h, Gap: gap}
		}
	}
	return h, nil
}

// IsUniformlySpaced reports whether the nodes can be used with the central
// difference formulas. Non-uniform sets are still valid for Lagrange
// interpolation.
func (ps *PointSet) IsUniformlySpaced() bool {
	_, err := ps.Spacing()
	return err == nil
}
