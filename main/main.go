package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/phil-mansfield/interp/io"
	"github.com/phil-mansfield/interp/math/interpolate"
	"github.com/phil-mansfield/interp/render"
	"github.com/phil-mansfield/interp/session"
	"github.com/phil-mansfield/interp/source"
)

func main() {
	var (
		points, exampleConfig bool
		file, function        string
		configFile            string
		x, low, high          float64
		nodes                 int
	)

	flag.BoolVar(
		&points, "Points", false,
		"Read (x, y) pairs from stdin, one pair per line, until 'stop'.",
	)
	flag.StringVar(
		&file, "File", "",
		"Read points from a file. Files ending in .csv must have the "+
			"header 'x,y'; anything else is read as a whitespace separated "+
			"table whose first two columns are x and y.",
	)
	flag.StringVar(
		&function, "Function", "",
		"Sample the given function of x (e.g. 'sin(x) + x**2') at "+
			"equally spaced nodes.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)
	flag.StringVar(
		&configFile, "Config", "", "Configuration file for [Interpolate].",
	)
	flag.Float64Var(
		&x, "X", 0,
		"Point to interpolate at. Read from stdin if not given.",
	)
	flag.IntVar(&nodes, "Nodes", 0, "Number of nodes used by -Function.")
	flag.Float64Var(&low, "Low", 0, "Lower bound of the -Function nodes.")
	flag.Float64Var(&high, "High", 0, "Upper bound of the -Function nodes.")

	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	modeName, err := getModeName(map[string]bool{
		"Points":        points,
		"File":          file != "",
		"Function":      function != "",
		"ExampleConfig": exampleConfig,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if modeName == "ExampleConfig" {
		fmt.Println(io.ExampleInterpolateFile)
		return
	}

	con, err := io.ReadInterpolateConfig(configFile)
	if err == nil {
		err = con.Check()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	log, err := newLogger(con)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer log.Sync()

	stdin := bufio.NewScanner(os.Stdin)

	var (
		src source.Source
		ref *source.Expr
	)
	switch modeName {
	case "Points":
		src = &source.Manual{Lines: stdin, Prompt: os.Stdout, Log: log}
	case "File":
		src = source.Open(file)
	case "Function":
		ref, err = source.Compile(function)
		if err != nil {
			log.Fatal(err.Error())
		}
		fn := &source.Function{
			Expr: ref, Nodes: con.Nodes, Low: con.Low, High: con.High,
		}
		if set["Nodes"] {
			fn.Nodes = nodes
		}
		if set["Low"] {
			fn.Low = low
		}
		if set["High"] {
			fn.High = high
		}
		src = fn
	default:
		panic("Impossible")
	}

	pts, err := src.Points()
	if err != nil {
		log.Fatal(err.Error())
	}
	ps, err := interpolate.NewPointSet(pts, interpolate.WithDelta(con.Delta))
	if err != nil {
		log.Fatalf("Invalid points: %s", err.Error())
	}
	log.Infof("Read %d points.", ps.Len())

	if !set["X"] {
		x, err = readQuery(stdin, log)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	s := session.New(ps)
	if ok, err := s.GaussAvailable(); !ok {
		log.Infof("Gauss interpolation disabled: %s", err.Error())
	}

	r := s.Interpolate(x)
	if err := render.Text(os.Stdout, r); err != nil {
		log.Fatal(err.Error())
	}

	fig := render.NewFigure(s, r, con.Samples)
	if ref != nil {
		fig.Reference = ref.Func()
		fig.Title = ref.String()
	}

	switch con.Backend() {
	case io.PyplotBackend:
		render.Pyplot(fig, con.PlotFile)
	case io.GonumBackend:
		if err := render.PNG(fig, con.PlotFile); err != nil {
			log.Fatal(err.Error())
		}
		log.Infof("Plot written to %s.", con.PlotFile)
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(modes map[string]bool) (string, error) {
	setNames := []string{}
	for name, isSet := range modes {
		if isSet {
			setNames = append(setNames, name)
		}
	}
	sort.Strings(setNames)

	if len(setNames) == 0 {
		return "", fmt.Errorf(
			"One of -Points, -File, -Function, or -ExampleConfig must be set.",
		)
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but interp only accepts "+
				"one of them at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// newLogger creates a logger writing to stderr and, if one is configured, to
// the log file.
func newLogger(con *io.InterpolateConfig) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if con.ValidLogFile() {
		cfg.OutputPaths = append(cfg.OutputPaths, con.LogFile)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "could not create logger")
	}
	return logger.Sugar(), nil
}

// readQuery reads the interpolation point from sc, asking again until a
// number is entered.
func readQuery(sc *bufio.Scanner, log *zap.SugaredLogger) (float64, error) {
	fmt.Println("Enter the x value to interpolate at:")
	for fmt.Print("> "); sc.Scan(); fmt.Print("> ") {
		line := strings.TrimSpace(sc.Text())
		x, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return x, nil
		}
		log.Warnf("'%s' is not a number.", line)
	}
	if err := sc.Err(); err != nil {
		return 0, errors.Wrap(err, "could not read x")
	}
	return 0, errors.New("no x value was given")
}
