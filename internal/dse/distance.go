package dse

import (
	"gonum.org/v1/gonum/mat"

	"github.com/AlbertKurtz/fast-dse/internal/lattice"
)

// DistanceMatrix holds the squared pairwise distances between all sites of
// a lattice. It is symmetric with a zero diagonal and never mutated after
// construction, so concurrent workers may read it without locking.
type DistanceMatrix struct {
	n int
	m *mat.SymDense
}

// BuildDistanceMatrix computes the squared Euclidean distance for every
// pair of lattice sites. O(n²) time and space; only the upper triangle is
// computed because the result is provably symmetric.
func BuildDistanceMatrix(lat lattice.Lattice) *DistanceMatrix {
	n := len(lat)
	dm := &DistanceMatrix{n: n}
	if n == 0 {
		// mat.NewSymDense rejects zero dimensions; an empty matrix has no
		// entries to store anyway.
		return dm
	}

	dm.m = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := lat[i].X - lat[j].X
			dy := lat[i].Y - lat[j].Y
			dz := lat[i].Z - lat[j].Z
			dm.m.SetSym(i, j, dx*dx+dy*dy+dz*dz)
		}
	}
	return dm
}

// Len returns the number of lattice sites the matrix was built from.
func (dm *DistanceMatrix) Len() int { return dm.n }

// At returns the squared distance between sites i and j.
func (dm *DistanceMatrix) At(i, j int) float64 { return dm.m.At(i, j) }
