// Package source supplies interpolation nodes: typed in by hand, read from
// a file, or sampled from an expression.
package source

import (
	"path/filepath"
	"strings"

	"github.com/phil-mansfield/interp/math/interpolate"
)

// Source produces an ordered sequence of nodes. Sources do not validate the
// nodes beyond parsing them; that is left to interpolate.NewPointSet.
type Source interface {
	Points() ([]interpolate.Point, error)
}

var (
	_ Source = &Manual{}
	_ Source = &CSVFile{}
	_ Source = &TableFile{}
	_ Source = &Function{}
)

// Open returns a CSVFile for files ending in .csv and a TableFile reading the
// first two columns otherwise.
func Open(path string) Source {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return &CSVFile{Path: path}
	}
	return &TableFile{Path: path, XCol: 0, YCol: 1}
}
