package render

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	green = color.RGBA{G: 128, A: 255}
	red   = color.RGBA{R: 220, A: 255}
	blue  = color.RGBA{B: 220, A: 255}
)

// PNG draws fig with gonum/plot and saves it to fname. The image format is
// chosen from the extension of fname.
func PNG(fig *Figure, fname string) error {
	p, err := newPlot(fig)
	if err != nil {
		return err
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, fname); err != nil {
		return errors.Wrapf(err, "could not save plot to '%s'", fname)
	}
	return nil
}

func newPlot(fig *Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("%d nodes", fig.Nodes.Len())
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	lagrange, err := plotter.NewLine(fig.Curve.Lagrange())
	if err != nil {
		return nil, errors.Wrap(err, "Lagrange curve")
	}
	lagrange.Color = green
	lagrange.Width = vg.Points(2)
	p.Add(lagrange)
	p.Legend.Add("Lagrange polynomial", lagrange)

	if fig.Reference != nil {
		ref, err := plotter.NewLine(referenceXYs{fig.Curve, fig.Reference})
		if err != nil {
			return nil, errors.Wrap(err, "sampled function")
		}
		ref.Color = blue
		p.Add(ref)
		p.Legend.Add("Sampled function", ref)
	}

	if xys := fig.Curve.Gauss(); xys != nil {
		gauss, err := plotter.NewLine(xys)
		if err != nil {
			return nil, errors.Wrap(err, "Gauss curve")
		}
		gauss.Color = red
		gauss.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(gauss)
		p.Legend.Add("Gauss polynomial", gauss)
	}

	nodes, err := plotter.NewScatter(nodeXYs{fig.Nodes})
	if err != nil {
		return nil, errors.Wrap(err, "nodes")
	}
	nodes.GlyphStyle.Color = blue
	nodes.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(nodes)
	p.Legend.Add("Nodes", nodes)

	if r := fig.Result; r != nil {
		est, err := plotter.NewScatter(plotter.XYs{{X: r.X, Y: r.Lagrange}})
		if err != nil {
			return nil, errors.Wrap(err, "Lagrange estimate")
		}
		est.GlyphStyle.Color = green
		est.GlyphStyle.Shape = draw.BoxGlyph{}
		p.Add(est)
		p.Legend.Add("Lagrange estimate", est)

		if r.Gauss.Available {
			est, err := plotter.NewScatter(
				plotter.XYs{{X: r.X, Y: r.Gauss.Value}},
			)
			if err != nil {
				return nil, errors.Wrap(err, "Gauss estimate")
			}
			est.GlyphStyle.Color = red
			est.GlyphStyle.Shape = draw.CrossGlyph{}
			p.Add(est)
			p.Legend.Add("Gauss estimate", est)
		}
	}

	return p, nil
}
