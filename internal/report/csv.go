package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AlbertKurtz/fast-dse/internal/dse"
)

// CSVWriter wraps csv.Writer with methods for curve output.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter creates a new CSVWriter over the given writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (c *CSVWriter) WriteHeader() error {
	return c.w.Write([]string{"q", "intensity"})
}

// WriteRow writes one (q, intensity) sample.
func (c *CSVWriter) WriteRow(q, intensity float64) error {
	return c.w.Write([]string{
		strconv.FormatFloat(q, 'g', -1, 64),
		strconv.FormatFloat(intensity, 'g', -1, 64),
	})
}

// Flush flushes buffered rows and reports any write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

// WriteCurveFile writes one curve to a CSV file at path. qs and curve must
// be index-aligned.
func WriteCurveFile(path string, qs []float64, curve dse.Curve) error {
	if len(qs) != len(curve) {
		return fmt.Errorf("q grid has %d points but curve has %d", len(qs), len(curve))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	cw := NewCSVWriter(f)
	if err := cw.WriteHeader(); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, q := range qs {
		if err := cw.WriteRow(q, curve[i]); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	return cw.Flush()
}
