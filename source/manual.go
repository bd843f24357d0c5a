package source

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/phil-mansfield/interp/math/interpolate"
)

// StopWord ends manual point entry.
const StopWord = "stop"

// Manual reads nodes typed by a user, one "x y" pair per line, until a line
// containing only StopWord or the end of input. Malformed lines are reported
// and skipped. StopWord is refused until at least two points have been
// entered.
type Manual struct {
	In io.Reader
	// Lines is used instead of In if it is set. This allows the rest of the
	// input to be read after Points returns.
	Lines *bufio.Scanner
	// Prompt receives the prompts shown before each line. May be nil.
	Prompt io.Writer
	// Log receives complaints about rejected lines. May be nil.
	Log *zap.SugaredLogger
}

func (m *Manual) Points() ([]interpolate.Point, error) {
	log := m.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	m.prompt(fmt.Sprintf(
		"Enter (x, y) pairs separated by a space. Enter '%s' to finish.\n",
		StopWord,
	))

	pts := []interpolate.Point{}
	sc := m.Lines
	if sc == nil {
		sc = bufio.NewScanner(m.In)
	}
	for m.prompt("> "); sc.Scan(); m.prompt("> ") {
		line := strings.TrimSpace(sc.Text())
		if line == StopWord {
			if len(pts) < 2 {
				log.Warnf("At least 2 points are needed, but only %d "+
					"have been entered.", len(pts))
				continue
			}
			return pts, nil
		}

		p, err := parsePoint(line)
		if err != nil {
			log.Warnf("Invalid point '%s': %s", line, err.Error())
			continue
		}
		pts = append(pts, p)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read points")
	}
	return pts, nil
}

func (m *Manual) prompt(s string) {
	if m.Prompt != nil {
		fmt.Fprint(m.Prompt, s)
	}
}

func parsePoint(line string) (interpolate.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return interpolate.Point{}, errors.Errorf(
			"expected 2 values, got %d", len(fields),
		)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return interpolate.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return interpolate.Point{}, errors.Wrap(err, "y")
	}
	return interpolate.Point{X: x, Y: y}, nil
}
