package interpolate

import (
	"fmt"
)

// InsufficientPointsError is returned when a PointSet is constructed from
// fewer than two points.
type InsufficientPointsError struct {
	N int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf(
		"interpolation needs at least 2 points, but %d were given", e.N,
	)
}

// DuplicateAbscissaError is returned when two nodes share an x value (within
// the PointSet's tolerance). I and J are the indices of the offending nodes
// in the input order.
type DuplicateAbscissaError struct {
	I, J int
	X    float64
}

func (e *DuplicateAbscissaError) Error() string {
	return fmt.Sprintf(
		"points %d and %d share the x value %g", e.I, e.J, e.X,
	)
}

// SpacingError reports that a PointSet is not uniformly spaced in ascending
// order. It only rules out the central difference formulas: a PointSet which
// produces a SpacingError is still valid for Lagrange interpolation.
type SpacingError struct {
	// Index of the first node of the offending gap.
	Index int
	// Step is the step implied by the first gap and Gap is the offending gap.
	Step, Gap float64
}

func (e *SpacingError) Error() string {
	if e.Step <= 0 {
		return fmt.Sprintf(
			"nodes are not in ascending order (first gap is %g)", e.Step,
		)
	}
	return fmt.Sprintf(
		"gap between nodes %d and %d is %g, but the step is %g",
		e.Index, e.Index+1, e.Gap, e.Step,
	)
}
