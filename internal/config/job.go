// Package config loads and validates scattering job configurations.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlbertKurtz/fast-dse/internal/dse"
	"github.com/AlbertKurtz/fast-dse/internal/lattice"
)

// Default job values. They reproduce the canonical palladium-like run:
// a 30 nm crystal with 3.89 nm spacing swept over q in [1, 15).
const (
	DefaultLatticeParam = 3.89
	DefaultLength       = 30.0
	DefaultMinQ         = 1.0
	DefaultMaxQ         = 15.0
	DefaultQStep        = 0.1
	DefaultStrategy     = dse.ParallelQ
	DefaultOutputDir    = "out"
)

// DefaultShapes are the shapes computed when a job names none.
var DefaultShapes = []string{lattice.Sphere, lattice.Cube}

// JobConfig describes one scattering run. All fields are optional in the
// JSON file; omitted fields fall back to the Get* defaults, so partial
// configs are safe.
type JobConfig struct {
	Shapes       []string `json:"shapes,omitempty"`
	LatticeParam *float64 `json:"lattice_param,omitempty"`
	Length       *float64 `json:"length,omitempty"`

	MinQ  *float64 `json:"min_q,omitempty"`
	MaxQ  *float64 `json:"max_q,omitempty"`
	QStep *float64 `json:"q_step,omitempty"`

	Strategy *string `json:"strategy,omitempty"`
	Workers  *int    `json:"workers,omitempty"`

	OutputDir *string `json:"output_dir,omitempty"`
}

// EmptyJobConfig returns a JobConfig with all fields unset. The Get*
// methods supply defaults for every unset field.
func EmptyJobConfig() *JobConfig {
	return &JobConfig{}
}

// LoadJobConfig loads a JobConfig from a JSON file and validates it.
func LoadJobConfig(path string) (*JobConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyJobConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks every field that is set. Unset fields are valid because
// their defaults are.
func (c *JobConfig) Validate() error {
	for _, shape := range c.Shapes {
		if !lattice.IsValidShape(shape) {
			return fmt.Errorf("unknown shape %q (supported shapes: %s)", shape, lattice.ValidShapesString())
		}
	}
	if c.LatticeParam != nil && *c.LatticeParam <= 0 {
		return fmt.Errorf("lattice_param must be positive, got %g", *c.LatticeParam)
	}
	if c.Length != nil && *c.Length <= 0 {
		return fmt.Errorf("length must be positive, got %g", *c.Length)
	}
	if c.QStep != nil && *c.QStep <= 0 {
		return fmt.Errorf("q_step must be positive, got %g", *c.QStep)
	}
	if minQ, maxQ := c.GetMinQ(), c.GetMaxQ(); maxQ <= minQ {
		return fmt.Errorf("max_q %g must exceed min_q %g", maxQ, minQ)
	}
	if c.Strategy != nil && !dse.IsValidStrategy(*c.Strategy) {
		return fmt.Errorf("unknown strategy %q (supported strategies: %s)", *c.Strategy, dse.ValidStrategiesString())
	}
	if c.Workers != nil && *c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", *c.Workers)
	}
	return nil
}

// GetShapes returns the configured shapes or the defaults.
func (c *JobConfig) GetShapes() []string {
	if len(c.Shapes) > 0 {
		return c.Shapes
	}
	return DefaultShapes
}

// GetLatticeParam returns the lattice spacing or the default.
func (c *JobConfig) GetLatticeParam() float64 {
	if c.LatticeParam != nil {
		return *c.LatticeParam
	}
	return DefaultLatticeParam
}

// GetLength returns the crystal edge length or the default.
func (c *JobConfig) GetLength() float64 {
	if c.Length != nil {
		return *c.Length
	}
	return DefaultLength
}

// GetMinQ returns the grid start or the default.
func (c *JobConfig) GetMinQ() float64 {
	if c.MinQ != nil {
		return *c.MinQ
	}
	return DefaultMinQ
}

// GetMaxQ returns the exclusive grid end or the default.
func (c *JobConfig) GetMaxQ() float64 {
	if c.MaxQ != nil {
		return *c.MaxQ
	}
	return DefaultMaxQ
}

// GetQStep returns the grid step or the default.
func (c *JobConfig) GetQStep() float64 {
	if c.QStep != nil {
		return *c.QStep
	}
	return DefaultQStep
}

// GetStrategy returns the reduction strategy or the default.
func (c *JobConfig) GetStrategy() string {
	if c.Strategy != nil {
		return *c.Strategy
	}
	return DefaultStrategy
}

// GetWorkers returns the worker bound, or zero to let the computer pick.
func (c *JobConfig) GetWorkers() int {
	if c.Workers != nil {
		return *c.Workers
	}
	return 0
}

// GetOutputDir returns the output directory or the default.
func (c *JobConfig) GetOutputDir() string {
	if c.OutputDir != nil {
		return *c.OutputDir
	}
	return DefaultOutputDir
}
