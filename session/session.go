// Package session drives a single interpolation run: it evaluates the
// Lagrange polynomial for every query, adds the Gauss central difference
// estimate when the nodes allow it and produces curves for plotting.
package session

import (
	"github.com/phil-mansfield/interp/math/interpolate"
)

// Session holds the interpolators built from a single PointSet. It is
// immutable and safe for concurrent use.
type Session struct {
	ps       *interpolate.PointSet
	lagrange *interpolate.Lagrange
	// gauss is nil when the nodes are not uniformly spaced.
	gauss    *interpolate.Gauss
	gaussErr error
}

// Result is the outcome of interpolating at a single point.
type Result struct {
	X        float64
	Lagrange float64
	Gauss    interpolate.Estimate
}

// New creates a Session for ps. The difference table is built here, once. If
// the nodes are not uniformly spaced, the Session still works, but all Gauss
// estimates are reported as unavailable.
func New(ps *interpolate.PointSet) *Session {
	s := &Session{ps: ps, lagrange: interpolate.NewLagrange(ps)}
	table, err := interpolate.NewDifferenceTable(ps)
	if err != nil {
		s.gaussErr = err
	} else {
		s.gauss = interpolate.NewGauss(table)
	}
	return s
}

// Points returns the nodes the Session was built from.
func (s *Session) Points() *interpolate.PointSet { return s.ps }

// GaussAvailable reports whether Gauss estimates can be made. If they can't,
// the returned error (a *interpolate.SpacingError) says why.
func (s *Session) GaussAvailable() (bool, error) {
	return s.gauss != nil, s.gaussErr
}

// Interpolate evaluates both interpolators at x.
func (s *Session) Interpolate(x float64) *Result {
	return &Result{X: x, Lagrange: s.lagrange.Eval(x), Gauss: s.gaussAt(x)}
}

func (s *Session) gaussAt(x float64) interpolate.Estimate {
	if s.gauss == nil {
		return interpolate.Estimate{Reason: s.gaussErr}
	}
	return interpolate.Estimate{Value: s.gauss.Eval(x), Available: true}
}

// Curve returns n samples of both interpolators spread uniformly over
// [low, high]. The bounds are swapped if low > high and n is raised to 2 if
// it is smaller.
func (s *Session) Curve(low, high float64, n int) *Curve {
	if low > high {
		low, high = high, low
	}
	if n < 2 {
		n = 2
	}
	return &Curve{s: s, low: low, high: high, n: n}
}

// DefaultCurve returns n samples spanning the nodes.
func (s *Session) DefaultCurve(n int) *Curve {
	low, high := s.ps.Range()
	return s.Curve(low, high, n)
}
