// Package io contains the configuration files read by the interp command.
package io

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/interp/math/interpolate"
)

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Optional Parameters #
#######################

# Two x values closer than Delta are treated as the same node, and nodes
# count as uniformly spaced (which is required for Gauss interpolation) if
# every gap is within Delta of the first one. Default is 1e-6.
# Delta = 1e-6

# Number of points used to sample the interpolating polynomials when they
# are plotted. Default is 50.
# Samples = 50

# How plots are drawn. Must be one of [ pyplot | gonum | none ]. pyplot
# writes a matplotlib script and runs it with python, gonum draws the plot
# natively. Default is none.
# PlotBackend = gonum

# File which the plot is written to. pyplot will open an interactive window
# instead if this isn't set. The gonum backend requires it.
# PlotFile = interp.png

# Log output is written here in addition to stderr.
# LogFile = log.out

# Defaults for the -Function mode: the number of nodes and the range they
# are spread over.
# Nodes = 5
# Low = 0
# High = 1`
)

// PlotBackend names for the PlotBackend field.
const (
	PyplotBackend = "pyplot"
	GonumBackend  = "gonum"
	NoBackend     = "none"
)

type InterpolateConfig struct {
	// Optional
	Delta             float64
	Samples, Nodes    int
	Low, High         float64
	PlotBackend       string
	PlotFile, LogFile string
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

func DefaultInterpolateWrapper() *InterpolateWrapper {
	con := InterpolateConfig{}
	con.Delta = interpolate.DefaultDelta
	con.Samples = 50
	con.Nodes = 5
	con.Low, con.High = 0, 1
	con.PlotBackend = NoBackend
	return &InterpolateWrapper{con}
}

// ReadInterpolateConfig reads the config file at fname on top of the default
// values. An empty fname returns the defaults.
func ReadInterpolateConfig(fname string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if fname == "" {
		return &wrap.Interpolate, nil
	}
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, errors.Wrapf(err, "could not read config file '%s'", fname)
	}
	return &wrap.Interpolate, nil
}

// ParseInterpolateConfig is identical to ReadInterpolateConfig, but reads the
// config from a string.
func ParseInterpolateConfig(text string) (*InterpolateConfig, error) {
	wrap := DefaultInterpolateWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}
	return &wrap.Interpolate, nil
}

func (con *InterpolateConfig) ValidDelta() bool {
	return con.Delta > 0
}
func (con *InterpolateConfig) ValidSamples() bool {
	return con.Samples >= 2
}
func (con *InterpolateConfig) ValidNodes() bool {
	return con.Nodes >= 2
}
func (con *InterpolateConfig) ValidPlotBackend() bool {
	switch strings.ToLower(con.PlotBackend) {
	case PyplotBackend, GonumBackend, NoBackend:
		return true
	}
	return false
}
func (con *InterpolateConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *InterpolateConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// Backend returns the normalized name of the plotting backend.
func (con *InterpolateConfig) Backend() string {
	return strings.ToLower(con.PlotBackend)
}

// Check returns an error describing the first invalid field, if any.
func (con *InterpolateConfig) Check() error {
	switch {
	case !con.ValidDelta():
		return errors.Errorf("'Delta' must be positive, but is %g.", con.Delta)
	case !con.ValidSamples():
		return errors.Errorf(
			"'Samples' must be at least 2, but is %d.", con.Samples,
		)
	case !con.ValidNodes():
		return errors.Errorf("'Nodes' must be at least 2, but is %d.", con.Nodes)
	case !con.ValidPlotBackend():
		return errors.Errorf(
			"'PlotBackend' must be one of [ pyplot | gonum | none ], "+
				"but is '%s'.", con.PlotBackend,
		)
	case con.Backend() == GonumBackend && !con.ValidPlotFile():
		return errors.New("The gonum backend needs a 'PlotFile'.")
	}
	return nil
}
