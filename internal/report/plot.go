package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// curvePalette cycles through line colours for overlaid curves.
var curvePalette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
}

// SavePlot renders all curves of a run into a single PNG at path. qs is
// the shared q grid; every curve must be index-aligned with it.
func SavePlot(path string, qs []float64, curves []NamedCurve) error {
	p := plot.New()
	p.Title.Text = "Debye scattering intensity"
	p.X.Label.Text = "q (1/nm)"
	p.Y.Label.Text = "intensity"
	p.Legend.Top = true

	for ci, c := range curves {
		if len(c.Values) != len(qs) {
			return fmt.Errorf("curve %q has %d points but q grid has %d", c.Name, len(c.Values), len(qs))
		}

		pts := make(plotter.XYs, len(qs))
		for i, q := range qs {
			pts[i] = plotter.XY{X: q, Y: c.Values[i]}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build line for %q: %w", c.Name, err)
		}
		line.Width = vg.Points(1)
		line.Color = curvePalette[ci%len(curvePalette)]
		p.Add(line)
		p.Legend.Add(c.Name, line)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
