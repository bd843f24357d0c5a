// Package render prints and plots the results of an interpolation session.
package render

import (
	"fmt"
	"io"

	"github.com/phil-mansfield/interp/math/interpolate"
	"github.com/phil-mansfield/interp/session"
)

// Figure is everything that goes into a plot of a single session.
type Figure struct {
	Title  string
	Nodes  *interpolate.PointSet
	Curve  *session.Curve
	Result *session.Result
	// Reference is the function the nodes were sampled from, if there is one.
	Reference func(float64) float64
}

// NewFigure creates a Figure for the query r. The curves span the nodes and
// are sampled at n points.
func NewFigure(s *session.Session, r *session.Result, n int) *Figure {
	return &Figure{
		Nodes:  s.Points(),
		Curve:  s.DefaultCurve(n),
		Result: r,
	}
}

// referenceXYs samples the reference function at the curve's x values.
type referenceXYs struct {
	c *session.Curve
	f func(float64) float64
}

func (xys referenceXYs) Len() int { return xys.c.Len() }
func (xys referenceXYs) XY(i int) (float64, float64) {
	x := xys.c.X(i)
	return x, xys.f(x)
}

type nodeXYs struct{ ps *interpolate.PointSet }

func (xys nodeXYs) Len() int { return xys.ps.Len() }
func (xys nodeXYs) XY(i int) (float64, float64) {
	return xys.ps.X(i), xys.ps.Y(i)
}

// Text writes a human readable summary of r to w.
func Text(w io.Writer, r *session.Result) error {
	_, err := fmt.Fprintf(w, "Lagrange interpolation at x = %g: %g\n",
		r.X, r.Lagrange)
	if err != nil {
		return err
	}

	if r.Gauss.Available {
		_, err = fmt.Fprintf(w, "Gauss interpolation at x = %g: %g\n",
			r.X, r.Gauss.Value)
	} else {
		_, err = fmt.Fprintf(w, "Gauss interpolation unavailable: node "+
			"spacing is not uniform (%s)\n", r.Gauss.Reason)
	}
	return err
}
