// Package dse computes simulated scattering-intensity curves with the
// simplified Debye scattering equation: for each scattering-vector
// magnitude q on a linear grid, the intensity is the sum of sinc(q·d) over
// every ordered pair of lattice sites at distance d, self pairs included.
package dse

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/sourcegraph/conc"

	"github.com/AlbertKurtz/fast-dse/internal/lattice"
)

// Validation errors. Callers match these with errors.Is.
var (
	ErrInvalidRange    = errors.New("invalid q range")
	ErrInvalidStrategy = errors.New("invalid strategy")
)

// Curve is the computed intensity sequence, index-aligned with the q grid
// it was computed over.
type Curve []float64

// QGrid returns the q values minQ + i·qStep for i in [0, nPoints) with
// nPoints = floor((maxQ-minQ)/qStep). maxQ is exclusive unless the step
// arithmetic lands on it exactly. The caller validates the range.
func QGrid(minQ, maxQ, qStep float64) []float64 {
	nPoints := int(math.Floor((maxQ - minQ) / qStep))
	if nPoints <= 0 {
		return nil
	}
	qs := make([]float64, nPoints)
	for i := range qs {
		qs[i] = minQ + float64(i)*qStep
	}
	return qs
}

// Computer reduces the Debye kernel over a distance matrix for every q on
// a grid. The strategy selects the parallel decomposition; all strategies
// compute the same sum, differing only in floating-point addition order.
// Construct with NewComputer.
type Computer struct {
	strategy string
	workers  int
}

// NewComputer returns a Computer for the given strategy. workers bounds
// the goroutine fan-out of the parallel strategies; values below one fall
// back to runtime.NumCPU(). Sequential ignores workers.
func NewComputer(strategy string, workers int) (*Computer, error) {
	if !IsValidStrategy(strategy) {
		return nil, fmt.Errorf("%w: %q (supported strategies: %s)", ErrInvalidStrategy, strategy, ValidStrategiesString())
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Computer{strategy: strategy, workers: workers}, nil
}

// Strategy returns the configured reduction strategy.
func (c *Computer) Strategy() string { return c.strategy }

// Compute builds the distance matrix once, then reduces the kernel over
// every matrix entry for each q in [minQ, maxQ) stepped by qStep. Cost is
// O(nPoints·n²) after the O(n²) precomputation. The range is validated
// before anything is allocated.
func (c *Computer) Compute(minQ, maxQ, qStep float64, lat lattice.Lattice) (Curve, error) {
	if qStep <= 0 {
		return nil, fmt.Errorf("%w: q_step must be positive, got %g", ErrInvalidRange, qStep)
	}
	if maxQ <= minQ {
		return nil, fmt.Errorf("%w: max_q %g must exceed min_q %g", ErrInvalidRange, maxQ, minQ)
	}

	qs := QGrid(minQ, maxQ, qStep)
	if len(qs) == 0 {
		return Curve{}, nil
	}

	dm := BuildDistanceMatrix(lat)
	out := make(Curve, len(qs))

	switch c.strategy {
	case ParallelQ:
		c.reduceParallelQ(qs, dm, out)
	case ParallelRow:
		c.reduceParallelRow(qs, dm, out)
	default:
		reduceSequential(qs, dm, out)
	}
	return out, nil
}

// intensityAt sums the kernel over every ordered pair for one q. The n
// self pairs each contribute exactly 1.
func intensityAt(q float64, dm *DistanceMatrix) float64 {
	var sum float64
	for i := 0; i < dm.n; i++ {
		sum += rowIntensity(q, dm, i)
	}
	return sum
}

// rowIntensity sums the kernel over the full row i, diagonal included.
func rowIntensity(q float64, dm *DistanceMatrix, i int) float64 {
	var sum float64
	for j := 0; j < dm.n; j++ {
		sum += Contribution(q, dm.m.At(i, j))
	}
	return sum
}

func reduceSequential(qs []float64, dm *DistanceMatrix, out Curve) {
	for qi, q := range qs {
		out[qi] = intensityAt(q, dm)
	}
}

// reduceParallelQ fans the q-grid indices out over the worker pool. Each
// worker writes disjoint indices of out, so no merge step is needed.
func (c *Computer) reduceParallelQ(qs []float64, dm *DistanceMatrix, out Curve) {
	workers := min(c.workers, len(qs))

	var wg conc.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Go(func() {
			for qi := w; qi < len(qs); qi += workers {
				out[qi] = intensityAt(qs[qi], dm)
			}
		})
	}
	wg.Wait()
}

// reduceParallelRow splits matrix rows across workers within each q. The
// workers produce local partial sums which are merged by addition in
// worker order, keeping the reduction deterministic for a fixed worker
// count.
func (c *Computer) reduceParallelRow(qs []float64, dm *DistanceMatrix, out Curve) {
	workers := min(c.workers, dm.n)
	if workers < 1 {
		// Empty lattice: every intensity is an empty sum.
		return
	}

	for qi, q := range qs {
		partials := make([]float64, workers)

		var wg conc.WaitGroup
		for w := 0; w < workers; w++ {
			w := w
			wg.Go(func() {
				var sum float64
				for i := w; i < dm.n; i += workers {
					sum += rowIntensity(q, dm, i)
				}
				partials[w] = sum
			})
		}
		wg.Wait()

		var total float64
		for _, p := range partials {
			total += p
		}
		out[qi] = total
	}
}
