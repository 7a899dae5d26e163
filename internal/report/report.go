// Package report writes the outputs of a scattering run: per-curve CSV
// files, a PNG plot, an interactive HTML chart and a JSON run manifest.
package report

import "github.com/AlbertKurtz/fast-dse/internal/dse"

// NamedCurve pairs a computed curve with the shape it was computed for.
// All curves of one run share the same q grid.
type NamedCurve struct {
	Name   string
	Values dse.Curve
}
