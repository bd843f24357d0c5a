package render

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/interp/session"
)

const (
	lagrangeColor  = "g"
	gaussColor     = "r"
	referenceColor = "b"
)

// series is a single plt.Plot call.
type series struct {
	xs, ys []float64
	style  string
	label  string
	lw     float64
}

// pyplotSeries lists the lines and markers of fig in drawing order. Markers
// have lw == 0.
func pyplotSeries(fig *Figure) []series {
	out := []series{}

	xs, ys := session.Columns(fig.Curve.Lagrange())
	out = append(out, series{xs, ys, lagrangeColor, "Lagrange polynomial", 2})

	if fig.Reference != nil {
		xs, ys = session.Columns(referenceXYs{fig.Curve, fig.Reference})
		out = append(out,
			series{xs, ys, referenceColor, "Sampled function", 2})
	}

	if gauss := fig.Curve.Gauss(); gauss != nil {
		xs, ys = session.Columns(gauss)
		out = append(out,
			series{xs, ys, gaussColor + "--", "Gauss polynomial", 2})
	}

	xs, ys = session.Columns(nodeXYs{fig.Nodes})
	out = append(out, series{xs, ys, "o" + referenceColor, "Nodes", 0})

	if r := fig.Result; r != nil {
		out = append(out, series{
			[]float64{r.X}, []float64{r.Lagrange},
			"s" + lagrangeColor, "Lagrange estimate", 0,
		})
		if r.Gauss.Available {
			out = append(out, series{
				[]float64{r.X}, []float64{r.Gauss.Value},
				"x" + gaussColor, "Gauss estimate", 0,
			})
		}
	}

	return out
}

// drawPyplot resets the pyplot script and adds the commands for fig to it.
// Nothing is run.
func drawPyplot(fig *Figure) {
	plt.Reset()
	plt.Figure(plt.FigSize(8, 6))

	for _, s := range pyplotSeries(fig) {
		if s.lw > 0 {
			plt.Plot(s.xs, s.ys, s.style, plt.Label(s.label), plt.LW(s.lw))
		} else {
			plt.Plot(s.xs, s.ys, s.style, plt.Label(s.label))
		}
	}

	title := fig.Title
	if title == "" {
		title = fmt.Sprintf("%d nodes", fig.Nodes.Len())
	}
	plt.Title(title)
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.Legend(plt.Loc("upper left"))
}

// Pyplot draws fig with matplotlib. If fname is empty, the plot is shown in
// an interactive window, otherwise it is saved to fname.
func Pyplot(fig *Figure, fname string) {
	drawPyplot(fig)

	if fname == "" {
		plt.Show()
		return
	}
	plt.SaveFig(fname)
	plt.Execute()
}
