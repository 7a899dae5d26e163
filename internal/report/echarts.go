package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML writes an interactive line chart of the computed curves to a
// standalone HTML file at path.
func RenderHTML(path string, qs []float64, curves []NamedCurve) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Scattering curves", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Debye scattering intensity", Subtitle: fmt.Sprintf("%d q points", len(qs))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "q"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "intensity"}),
	)

	xs := make([]string, len(qs))
	for i, q := range qs {
		xs[i] = strconv.FormatFloat(q, 'g', 6, 64)
	}
	line.SetXAxis(xs)

	for _, c := range curves {
		if len(c.Values) != len(qs) {
			return fmt.Errorf("curve %q has %d points but q grid has %d", c.Name, len(c.Values), len(qs))
		}
		data := make([]opts.LineData, len(c.Values))
		for i, v := range c.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(c.Name, data)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
