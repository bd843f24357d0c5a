package source

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/phil-mansfield/table"
	"github.com/pkg/errors"

	"github.com/phil-mansfield/interp/math/interpolate"
)

var (
	ErrCSVHeader = errors.New("CSV file must start with the header 'x,y'")
	ErrCSVValue  = errors.New("x and y values must be numbers")
)

// CSVFile reads nodes from a CSV file with the header "x,y".
type CSVFile struct {
	Path string
}

func (f *CSVFile) Points() ([]interpolate.Point, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open point file")
	}
	defer file.Close()

	pts, err := ReadCSV(file)
	if err != nil {
		return nil, errors.Wrapf(err, "'%s'", f.Path)
	}
	return pts, nil
}

// ReadCSV reads "x,y" CSV data from r. The header must be exactly "x,y" and
// every row must hold two numbers. Whitespace around the numbers is ignored.
func ReadCSV(r io.Reader) ([]interpolate.Point, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = 2

	header, err := rd.Read()
	if err == io.EOF {
		return nil, ErrCSVHeader
	} else if err != nil {
		return nil, errors.Wrap(ErrCSVHeader, err.Error())
	}
	if header[0] != "x" || header[1] != "y" {
		return nil, errors.Wrapf(
			ErrCSVHeader, "found '%s'", strings.Join(header, ","),
		)
	}

	pts := []interpolate.Point{}
	for row := 1; ; row++ {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrapf(err, "row %d", row)
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			return nil, errors.Wrapf(
				ErrCSVValue, "row %d is '%s'", row, strings.Join(rec, ","),
			)
		}
		pts = append(pts, interpolate.Point{X: x, Y: y})
	}

	return pts, nil
}

// TableFile reads nodes from two columns of a whitespace separated text
// table. Lines starting with '#' are comments.
type TableFile struct {
	Path       string
	XCol, YCol int
}

func (f *TableFile) Points() ([]interpolate.Point, error) {
	cols, err := table.ReadTable(f.Path, []int{f.XCol, f.YCol}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read table '%s'", f.Path)
	}

	xs, ys := cols[0], cols[1]
	pts := make([]interpolate.Point, len(xs))
	for i := range pts {
		pts[i] = interpolate.Point{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}
