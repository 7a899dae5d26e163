// Command dse-curve computes simulated scattering-intensity curves for
// cube and sphere crystal lattices and writes them out as CSV files, a
// PNG plot, an interactive HTML chart and a JSON run manifest.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/AlbertKurtz/fast-dse/internal/config"
	"github.com/AlbertKurtz/fast-dse/internal/dse"
	"github.com/AlbertKurtz/fast-dse/internal/lattice"
	"github.com/AlbertKurtz/fast-dse/internal/report"
)

var (
	configPath = flag.String("config", "", "Path to a job config JSON file (built-in defaults apply when empty)")
	outputDir  = flag.String("out", "", "Output directory (overrides the config)")
	strategy   = flag.String("strategy", "", "Reduction strategy: sequential, parallel-q or parallel-row (overrides the config)")
	noCharts   = flag.Bool("no-charts", false, "Skip PNG and HTML chart output")
)

func main() {
	flag.Parse()

	cfg := config.EmptyJobConfig()
	if *configPath != "" {
		loaded, err := config.LoadJobConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if *strategy != "" {
		cfg.Strategy = strategy
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("run failed: %v", err)
	}
}

func run(cfg *config.JobConfig) error {
	outDir := cfg.GetOutputDir()
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	computer, err := dse.NewComputer(cfg.GetStrategy(), cfg.GetWorkers())
	if err != nil {
		return err
	}

	minQ, maxQ, qStep := cfg.GetMinQ(), cfg.GetMaxQ(), cfg.GetQStep()
	qs := dse.QGrid(minQ, maxQ, qStep)
	log.Printf("q grid: %d points in [%g, %g) step %g, strategy=%s",
		len(qs), minQ, maxQ, qStep, computer.Strategy())

	manifest := report.NewRunManifest(cfg.GetLatticeParam(), cfg.GetLength(),
		minQ, maxQ, qStep, cfg.GetStrategy(), cfg.GetWorkers())

	var curves []report.NamedCurve
	for _, shape := range cfg.GetShapes() {
		lat, err := lattice.Generate(shape, cfg.GetLatticeParam(), cfg.GetLength())
		if err != nil {
			return fmt.Errorf("failed to generate %s lattice: %w", shape, err)
		}

		start := time.Now()
		curve, err := computer.Compute(minQ, maxQ, qStep, lat)
		if err != nil {
			return fmt.Errorf("failed to compute %s curve: %w", shape, err)
		}
		elapsed := time.Since(start)
		log.Printf("computed %s curve: %d sites, %d q points in %v", shape, len(lat), len(curve), elapsed)

		csvPath := filepath.Join(outDir, shape+".csv")
		if err := report.WriteCurveFile(csvPath, qs, curve); err != nil {
			return err
		}

		manifest.AddCurve(shape, len(lat), len(curve), elapsed)
		curves = append(curves, report.NamedCurve{Name: shape, Values: curve})
	}

	if !*noCharts {
		if err := report.SavePlot(filepath.Join(outDir, "curves.png"), qs, curves); err != nil {
			return err
		}
		if err := report.RenderHTML(filepath.Join(outDir, "curves.html"), qs, curves); err != nil {
			return err
		}
	}

	if err := manifest.Write(outDir); err != nil {
		return err
	}

	log.Printf("run %s written to %s", manifest.RunID, outDir)
	return nil
}
