package interpolate

import (
	"fmt"
)

// DifferenceTable is the triangular table of forward differences of a
// uniformly spaced PointSet:
//
//	D[i][0] = y_i
//	D[i][j] = D[i+1][j-1] - D[i][j-1]
//
// for 0 <= j < n and 0 <= i < n - j.
type DifferenceTable struct {
	ps *PointSet
	h  float64
	// rows[i] holds D[i][0], ..., D[i][n-i-1].
	rows [][]float64
}

// NewDifferenceTable builds the forward difference table for ps. If ps is not
// uniformly spaced, a *SpacingError is returned instead.
func NewDifferenceTable(ps *PointSet) (*DifferenceTable, error) {
	h, err := ps.Spacing()
	if err != nil {
		return nil, err
	}

	n := ps.Len()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n-i)
		rows[i][0] = ps.ys[i]
	}
	for j := 1; j < n; j++ {
		for i := 0; i < n-j; i++ {
			rows[i][j] = rows[i+1][j-1] - rows[i][j-1]
		}
	}

	return &DifferenceTable{ps: ps, h: h, rows: rows}, nil
}

// Len returns the number of nodes the table was built from.
func (dt *DifferenceTable) Len() int { return len(dt.rows) }

// Step returns the node spacing.
func (dt *DifferenceTable) Step() float64 { return dt.h }

// Points returns the PointSet the table was built from.
func (dt *DifferenceTable) Points() *PointSet { return dt.ps }

// At returns D[i][j]. At panics if (i, j) is outside of the table.
func (dt *DifferenceTable) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= len(dt.rows) || j >= len(dt.rows[i]) {
		panic(fmt.Sprintf(
			"(%d, %d) is outside of a difference table with %d nodes.",
			i, j, len(dt.rows),
		))
	}
	return dt.rows[i][j]
}

// Row returns a copy of D[i][0], ..., D[i][n-i-1].
func (dt *DifferenceTable) Row(i int) []float64 {
	return append([]float64(nil), dt.rows[i]...)
}
