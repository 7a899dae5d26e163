package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlbertKurtz/fast-dse/internal/dse"
)

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	cw := NewCSVWriter(&buf)

	require.NoError(t, cw.WriteHeader())
	require.NoError(t, cw.WriteRow(0.1, 125.0))
	require.NoError(t, cw.WriteRow(0.2, 118.5))
	require.NoError(t, cw.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "q,intensity", lines[0])
	assert.Equal(t, "0.1,125", lines[1])
	assert.Equal(t, "0.2,118.5", lines[2])
}

func TestWriteCurveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.csv")
	qs := []float64{1.0, 1.1, 1.2}
	curve := dse.Curve{9.0, 8.5, 7.25}

	require.NoError(t, WriteCurveFile(path, qs, curve))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "q,intensity", lines[0])
	assert.Equal(t, "1,9", lines[1])
}

func TestWriteCurveFileLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	err := WriteCurveFile(path, []float64{1.0, 2.0}, dse.Curve{1.0})
	require.Error(t, err)
}

func TestSavePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.png")
	qs := []float64{1.0, 2.0, 3.0, 4.0}
	curves := []NamedCurve{
		{Name: "sphere", Values: dse.Curve{16, 9, 4, 2}},
		{Name: "cube", Values: dse.Curve{25, 12, 6, 3}},
	}

	require.NoError(t, SavePlot(path, qs, curves))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSavePlotLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.png")
	err := SavePlot(path, []float64{1.0}, []NamedCurve{{Name: "sphere", Values: dse.Curve{1, 2}}})
	require.Error(t, err)
}

func TestRenderHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.html")
	qs := []float64{1.0, 2.0, 3.0}
	curves := []NamedCurve{
		{Name: "sphere", Values: dse.Curve{16, 9, 4}},
	}

	require.NoError(t, RenderHTML(path, qs, curves))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sphere")
	assert.Contains(t, string(data), "Debye scattering intensity")
}

func TestRunManifest(t *testing.T) {
	dir := t.TempDir()

	m := NewRunManifest(3.89, 30.0, 1.0, 15.0, 0.1, dse.ParallelQ, 4)
	require.NotEmpty(t, m.RunID)

	m.AddCurve("sphere", 147, 140, 250*time.Millisecond)
	m.AddCurve("cube", 343, 140, 600*time.Millisecond)
	require.NoError(t, m.Write(dir))

	data, err := os.ReadFile(filepath.Join(dir, ManifestFilename))
	require.NoError(t, err)

	var got RunManifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, m.RunID, got.RunID)
	require.Len(t, got.Curves, 2)
	assert.Equal(t, "sphere", got.Curves[0].Shape)
	assert.Equal(t, 147, got.Curves[0].Sites)
	assert.InDelta(t, 250.0, got.Curves[0].DurationMs, 1e-9)
}
