package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func square(x float64) float64 { return x * x }

func cubic(x float64) float64 { return x*x*x - 2*x + 1 }

// uniform samples f at n nodes starting at x0 and separated by h.
func uniform(f func(float64) float64, x0, h float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		x := x0 + float64(i)*h
		pts[i] = Point{x, f(x)}
	}
	return pts
}

func mustPointSet(t *testing.T, pts []Point, opts ...Option) *PointSet {
	t.Helper()
	ps, err := NewPointSet(pts, opts...)
	require.NoError(t, err)
	return ps
}

func TestPointSetValidation(t *testing.T) {
	table := []struct {
		name string
		pts  []Point
		err  interface{}
	}{
		{"empty", nil, &InsufficientPointsError{}},
		{"single", []Point{{1, 1}}, &InsufficientPointsError{}},
		{"duplicate", []Point{{5, 7}, {5, 9}}, &DuplicateAbscissaError{}},
		{"near duplicate", []Point{{0, 1}, {1, 2}, {1 + 1e-8, 3}},
			&DuplicateAbscissaError{}},
		{"unsorted duplicate", []Point{{3, 1}, {0, 2}, {3, 3}},
			&DuplicateAbscissaError{}},
	}

	for _, test := range table {
		_, err := NewPointSet(test.pts)
		require.Error(t, err, test.name)
		assert.IsType(t, test.err, err, test.name)
	}

	ps, err := NewPointSet([]Point{{0, 0}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, ps.Len())
}

func TestPointSetErrorDetails(t *testing.T) {
	_, err := NewPointSet([]Point{{1, 1}})
	var ipe *InsufficientPointsError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, 1, ipe.N)

	_, err = NewPointSet([]Point{{3, 1}, {0, 2}, {3, 3}})
	var dae *DuplicateAbscissaError
	require.ErrorAs(t, err, &dae)
	assert.Equal(t, 0, dae.I)
	assert.Equal(t, 2, dae.J)
	assert.Equal(t, 3.0, dae.X)
}

func TestPointSetDelta(t *testing.T) {
	pts := []Point{{0, 0}, {1e-4, 1}}

	_, err := NewPointSet(pts)
	assert.NoError(t, err)

	_, err = NewPointSet(pts, WithDelta(1e-3))
	assert.IsType(t, &DuplicateAbscissaError{}, err)

	ps := mustPointSet(t, pts, WithDelta(-1))
	assert.Equal(t, DefaultDelta, ps.Delta())
}

func TestPointSetXY(t *testing.T) {
	_, err := NewPointSetXY([]float64{0, 1}, []float64{0})
	assert.Error(t, err)

	xs, ys := []float64{0, 1, 2}, []float64{3, 4, 5}
	ps, err := NewPointSetXY(xs, ys)
	require.NoError(t, err)

	xs[0], ys[0] = 100, 100
	assert.Equal(t, Point{0, 3}, ps.At(0))
	assert.Equal(t, []float64{0, 1, 2}, ps.Xs())
	assert.Equal(t, []float64{3, 4, 5}, ps.Ys())
}

func TestPointSetImmutable(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {2, 4}}
	ps := mustPointSet(t, pts)

	pts[1] = Point{10, 10}
	ps.Points()[2] = Point{20, 20}
	ps.Xs()[0] = 30

	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 4}}, ps.Points())

	low, high := ps.Range()
	assert.Equal(t, 0.0, low)
	assert.Equal(t, 2.0, high)
}

func TestSpacing(t *testing.T) {
	table := []struct {
		name    string
		pts     []Point
		uniform bool
		h       float64
	}{
		{"two points", []Point{{0, 0}, {2, 1}}, true, 2},
		{"unit", uniform(square, 0, 1, 4), true, 1},
		{"fractional", uniform(square, -1, 0.1, 21), true, 0.1},
		{"within delta", []Point{{0, 0}, {1, 1}, {2 + 5e-7, 4}}, true, 1},
		{"irregular", []Point{{0, 0}, {1, 1}, {3, 9}}, false, 0},
		{"descending", []Point{{2, 4}, {1, 1}, {0, 0}}, false, 0},
		{"unordered", []Point{{0, 0}, {2, 4}, {1, 1}}, false, 0},
	}

	for _, test := range table {
		ps := mustPointSet(t, test.pts)
		h, err := ps.Spacing()
		assert.Equal(t, test.uniform, ps.IsUniformlySpaced(), test.name)
		if test.uniform {
			assert.NoError(t, err, test.name)
			assert.InDelta(t, test.h, h, 1e-12, test.name)
		} else {
			assert.IsType(t, &SpacingError{}, err, test.name)
		}
	}
}

func TestLagrangeScenarios(t *testing.T) {
	table := []struct {
		pts    []Point
		x, val float64
	}{
		{[]Point{{0, 0}, {1, 1}, {2, 4}, {3, 9}}, 1.5, 2.25},
		{[]Point{{0, 0}, {2, 4}, {4, 16}, {6, 36}}, 3, 9},
		{[]Point{{0, 1}, {1, 3}}, 0.25, 1.5},
		{[]Point{{3, 27}, {-1, -1}, {0, 0}, {2, 8}}, 1, 1},
	}

	for i, test := range table {
		lg := NewLagrange(mustPointSet(t, test.pts))
		assert.InDelta(t, test.val, lg.Eval(test.x), eps, "case %d", i+1)
	}
}

func TestLagrangeReproducesNodes(t *testing.T) {
	sets := [][]Point{
		{{0, 0}, {1, 1}, {3, 9}},
		{{-2, 0.5}, {0.3, -1}, {0.7, 4}, {5, 2}, {6, -3}},
		uniform(math.Sin, 0, 0.25, 9),
		uniform(math.Exp, -1, 0.2, 10),
	}

	for k, pts := range sets {
		lg := NewLagrange(mustPointSet(t, pts))
		for i, p := range pts {
			assert.InDelta(t, p.Y, lg.Eval(p.X), eps, "set %d node %d", k, i)
		}
	}
}

func TestLagrangeEvalAll(t *testing.T) {
	lg := NewLagrange(mustPointSet(t, uniform(square, 0, 1, 3)))
	xs := []float64{0.5, 1.5, 2.5}

	ys := lg.EvalAll(xs)
	assert.InDeltaSlice(t, []float64{0.25, 2.25, 6.25}, ys, eps)

	out := make([]float64, 3)
	ys = lg.EvalAll(xs, out)
	assert.InDeltaSlice(t, []float64{0.25, 2.25, 6.25}, out, eps)
	assert.Same(t, &out[0], &ys[0])

	assert.Panics(t, func() { lg.EvalAll(xs, make([]float64, 2)) })
	assert.NotPanics(t, func() { lg.EvalAll(xs[:1], make([]float64, 2)) })
}

func TestDifferenceTable(t *testing.T) {
	ps := mustPointSet(t, []Point{{0, 0}, {1, 1}, {2, 4}, {3, 9}})
	dt, err := NewDifferenceTable(ps)
	require.NoError(t, err)

	assert.Equal(t, 4, dt.Len())
	assert.Equal(t, 1.0, dt.Step())
	assert.Equal(t, ps, dt.Points())
	assert.Equal(t, []float64{0, 1, 2, 0}, dt.Row(0))
	assert.Equal(t, []float64{1, 3, 2}, dt.Row(1))
	assert.Equal(t, []float64{4, 5}, dt.Row(2))
	assert.Equal(t, []float64{9}, dt.Row(3))
	assert.Equal(t, 2.0, dt.At(1, 2))

	assert.Panics(t, func() { dt.At(3, 1) })
	assert.Panics(t, func() { dt.At(-1, 0) })
	assert.Panics(t, func() { dt.At(0, 4) })

	dt.Row(0)[0] = 100
	assert.Equal(t, 0.0, dt.At(0, 0))
}

func TestDifferenceTableSpacing(t *testing.T) {
	ps := mustPointSet(t, []Point{{0, 0}, {1, 1}, {3, 9}})
	dt, err := NewDifferenceTable(ps)
	assert.Nil(t, dt)

	var se *SpacingError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Index)
	assert.Equal(t, 1.0, se.Step)
	assert.Equal(t, 2.0, se.Gap)
}

func mustGauss(t *testing.T, pts []Point) *Gauss {
	t.Helper()
	dt, err := NewDifferenceTable(mustPointSet(t, pts))
	require.NoError(t, err)
	return NewGauss(dt)
}

func TestGaussScenarios(t *testing.T) {
	table := []struct {
		pts    []Point
		x, val float64
	}{
		{[]Point{{0, 0}, {1, 1}, {2, 4}, {3, 9}}, 1.5, 2.25},
		{[]Point{{0, 0}, {1, 1}, {2, 4}, {3, 9}}, 0.5, 0.25},
		{[]Point{{0, 0}, {2, 4}, {4, 16}, {6, 36}}, 3, 9},
		{[]Point{{0, 0}, {2, 4}, {4, 16}, {6, 36}}, 1, 1},
		{uniform(cubic, -2, 0.5, 7), 0.3, cubic(0.3)},
		{uniform(cubic, -2, 0.5, 7), -1.3, cubic(-1.3)},
	}

	for i, test := range table {
		g := mustGauss(t, test.pts)
		assert.InDelta(t, test.val, g.Eval(test.x), eps, "case %d", i+1)
	}
}

func TestGaussPivot(t *testing.T) {
	g := mustGauss(t, uniform(square, 0, 1, 4))
	assert.Equal(t, 3, g.Nodes())
	assert.Equal(t, 1.0, g.Pivot())

	g = mustGauss(t, uniform(square, 0, 1, 5))
	assert.Equal(t, 5, g.Nodes())
	assert.Equal(t, 2.0, g.Pivot())

	// Two nodes leave only the pivot.
	g = mustGauss(t, []Point{{0, 3}, {1, 5}})
	assert.Equal(t, 1, g.Nodes())
	assert.Equal(t, 3.0, g.Eval(0.5))
}

func TestGaussReproducesNodes(t *testing.T) {
	sets := [][]Point{
		uniform(math.Sin, 0, 0.25, 9),
		uniform(math.Exp, -1, 0.2, 11),
		uniform(square, 0, 2, 4),
		uniform(cubic, -3, 1, 6),
		{{-1, 4}, {0, -2}, {1, 7}},
	}

	for k, pts := range sets {
		g := mustGauss(t, pts)
		for i := 0; i < g.Nodes(); i++ {
			assert.InDelta(t, pts[i].Y, g.Eval(pts[i].X), eps,
				"set %d node %d", k, i)
		}
	}
}

func TestGaussMatchesLagrange(t *testing.T) {
	// With an odd number of nodes both formulas describe the same
	// polynomial, so they must agree everywhere, not just on nodes.
	pts := uniform(math.Cos, -1, 0.25, 9)
	ps := mustPointSet(t, pts)
	lg := NewLagrange(ps)
	g := mustGauss(t, pts)

	for x := -1.2; x <= 1.2; x += 0.01 {
		assert.InDelta(t, lg.Eval(x), g.Eval(x), 1e-8, "x = %g", x)
	}
	for i, p := range pts {
		assert.InDelta(t, lg.Eval(p.X), g.Eval(p.X), eps, "node %d", i)
	}
}

func TestGaussCentral(t *testing.T) {
	ps := mustPointSet(t, []Point{{0, 0}, {1, 1}, {2, 4}, {3, 9}})
	est := GaussCentral(ps, 1.5)
	assert.True(t, est.Available)
	assert.NoError(t, est.Reason)
	assert.InDelta(t, 2.25, est.Value, eps)

	ps = mustPointSet(t, []Point{{0, 0}, {1, 1}, {3, 9}})
	est = GaussCentral(ps, 2)
	assert.False(t, est.Available)
	assert.IsType(t, &SpacingError{}, est.Reason)

	lg := NewLagrange(ps).Eval(2)
	assert.False(t, math.IsNaN(lg) || math.IsInf(lg, 0))
}

func TestDeterministic(t *testing.T) {
	pts := uniform(math.Sin, 0, 0.3, 11)
	ps := mustPointSet(t, pts)
	lg, g := NewLagrange(ps), mustGauss(t, pts)

	for _, x := range []float64{0.1, 1.234, 2.9} {
		assert.Equal(t, lg.Eval(x), lg.Eval(x))
		assert.Equal(t, g.Eval(x), g.Eval(x))
		assert.Equal(t, GaussCentral(ps, x), GaussCentral(ps, x))
	}
}

func TestFinite(t *testing.T) {
	runge := func(x float64) float64 { return 1 / (1 + 25*x*x) }
	for n := 2; n <= 21; n++ {
		h := 2 / float64(n-1)
		pts := uniform(runge, -1, h, n)
		lg := NewLagrange(mustPointSet(t, pts))
		g := mustGauss(t, pts)
		for x := -1.0; x <= 1.0; x += 0.05 {
			for _, y := range []float64{lg.Eval(x), g.Eval(x)} {
				assert.False(t, math.IsNaN(y) || math.IsInf(y, 0),
					"n = %d, x = %g", n, x)
			}
		}
	}
}

func BenchmarkLagrange16(b *testing.B) {
	ps, _ := NewPointSet(uniform(math.Sin, 0, 0.1, 16))
	lg := NewLagrange(ps)
	for i := 0; i < b.N; i++ {
		lg.Eval(0.77)
	}
}

func BenchmarkGauss17(b *testing.B) {
	ps, _ := NewPointSet(uniform(math.Sin, 0, 0.1, 17))
	dt, _ := NewDifferenceTable(ps)
	g := NewGauss(dt)
	for i := 0; i < b.N; i++ {
		g.Eval(0.77)
	}
}
