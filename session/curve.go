package session

// Sample is a single point on a Curve. Gauss is only meaningful if HasGauss
// is true.
type Sample struct {
	X, Lagrange, Gauss float64
	HasGauss           bool
}

// Curve is a finite sequence of interpolator samples. Samples are computed
// when they are requested and nothing is cached, so a Curve can be walked any
// number of times.
type Curve struct {
	s         *Session
	low, high float64
	n         int
}

// Len returns the number of samples.
func (c *Curve) Len() int { return c.n }

// Bounds returns the x range covered by the curve.
func (c *Curve) Bounds() (low, high float64) { return c.low, c.high }

// HasGauss reports whether the samples carry Gauss values.
func (c *Curve) HasGauss() bool { return c.s.gauss != nil }

// X returns the i-th sample location. The last location is exactly high.
func (c *Curve) X(i int) float64 {
	if i == c.n-1 {
		return c.high
	}
	dx := (c.high - c.low) / float64(c.n-1)
	return c.low + dx*float64(i)
}

// At returns the i-th sample.
func (c *Curve) At(i int) Sample {
	x := c.X(i)
	est := c.s.gaussAt(x)
	return Sample{
		X:        x,
		Lagrange: c.s.lagrange.Eval(x),
		Gauss:    est.Value,
		HasGauss: est.Available,
	}
}

// Iter returns an iterator positioned before the first sample.
func (c *Curve) Iter() *Iterator { return &Iterator{c: c, i: -1} }

// Lagrange returns the Lagrange samples as a sequence of (x, y) pairs.
func (c *Curve) Lagrange() XYs { return lagrangeXYs{c} }

// Gauss returns the Gauss samples as a sequence of (x, y) pairs, or nil if
// the curve has no Gauss values.
func (c *Curve) Gauss() XYs {
	if !c.HasGauss() {
		return nil
	}
	return gaussXYs{c}
}

// Iterator walks over the samples of a Curve:
//
//	for it := c.Iter(); it.Next(); {
//		s := it.Sample()
//		...
//	}
type Iterator struct {
	c *Curve
	i int
}

// Next advances to the next sample and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.i < it.c.n {
		it.i++
	}
	return it.i < it.c.n
}

// Sample returns the current sample.
func (it *Iterator) Sample() Sample { return it.c.At(it.i) }

// Reset moves the iterator back before the first sample.
func (it *Iterator) Reset() { it.i = -1 }

// XYs is an indexed sequence of (x, y) pairs. It has the same method set as
// gonum's plotter.XYer.
type XYs interface {
	Len() int
	XY(i int) (x, y float64)
}

type lagrangeXYs struct{ c *Curve }

func (xys lagrangeXYs) Len() int { return xys.c.n }
func (xys lagrangeXYs) XY(i int) (float64, float64) {
	x := xys.c.X(i)
	return x, xys.c.s.lagrange.Eval(x)
}

type gaussXYs struct{ c *Curve }

func (xys gaussXYs) Len() int { return xys.c.n }
func (xys gaussXYs) XY(i int) (float64, float64) {
	x := xys.c.X(i)
	return x, xys.c.s.gauss.Eval(x)
}

// Columns copies the sequence into two slices.
func Columns(xys XYs) (xs, ys []float64) {
	xs, ys = make([]float64, xys.Len()), make([]float64, xys.Len())
	for i := range xs {
		xs[i], ys[i] = xys.XY(i)
	}
	return xs, ys
}
