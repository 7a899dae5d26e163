package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ManifestFilename is the name of the run manifest inside the output dir.
const ManifestFilename = "run.json"

// RunManifest records the inputs, sizes and timings of one scattering run
// so a result directory stays interpretable after the fact.
type RunManifest struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`

	LatticeParam float64 `json:"lattice_param"`
	Length       float64 `json:"length"`
	MinQ         float64 `json:"min_q"`
	MaxQ         float64 `json:"max_q"`
	QStep        float64 `json:"q_step"`
	Strategy     string  `json:"strategy"`
	Workers      int     `json:"workers,omitempty"`

	Curves []CurveRecord `json:"curves"`
}

// CurveRecord summarises one computed curve.
type CurveRecord struct {
	Shape      string  `json:"shape"`
	Sites      int     `json:"sites"`
	QPoints    int     `json:"q_points"`
	DurationMs float64 `json:"duration_ms"`
}

// NewRunManifest creates a manifest with a fresh run ID.
func NewRunManifest(latticeParam, length, minQ, maxQ, qStep float64, strategy string, workers int) *RunManifest {
	return &RunManifest{
		RunID:        uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		LatticeParam: latticeParam,
		Length:       length,
		MinQ:         minQ,
		MaxQ:         maxQ,
		QStep:        qStep,
		Strategy:     strategy,
		Workers:      workers,
	}
}

// AddCurve appends a curve summary to the manifest.
func (m *RunManifest) AddCurve(shape string, sites, qPoints int, elapsed time.Duration) {
	m.Curves = append(m.Curves, CurveRecord{
		Shape:      shape,
		Sites:      sites,
		QPoints:    qPoints,
		DurationMs: float64(elapsed.Nanoseconds()) / 1e6,
	})
}

// Write stores the manifest as indented JSON in dir.
func (m *RunManifest) Write(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestFilename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
