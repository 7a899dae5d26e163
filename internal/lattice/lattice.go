// Package lattice generates ordered 3D point sets for the canonical
// crystal shapes used by the scattering computation.
package lattice

import (
	"errors"
	"fmt"
	"math"
)

// Shape constants
const (
	Cube   = "cube"
	Sphere = "sphere"
)

// ValidShapes contains all valid shape values
var ValidShapes = []string{Cube, Sphere}

// Validation errors. Callers match these with errors.Is.
var (
	ErrInvalidShape     = errors.New("invalid shape")
	ErrInvalidParameter = errors.New("invalid lattice parameter")
)

// Point is a single lattice site in Cartesian coordinates. Units are
// arbitrary; nanometres by convention.
type Point struct {
	X, Y, Z float64
}

// Lattice is an ordered sequence of lattice sites. The order is the
// generation order and is stable for identical inputs.
type Lattice []Point

// IsValidShape checks if the given shape is in the list of valid shapes
func IsValidShape(shape string) bool {
	for _, validShape := range ValidShapes {
		if shape == validShape {
			return true
		}
	}
	return false
}

// ValidShapesString returns a comma-separated string of valid shapes for error messages
func ValidShapesString() string {
	return "cube, sphere"
}

// Generate produces the lattice for the requested shape. latticeParam is
// the spacing between neighbouring sites, length the edge length of the
// bounding cube. The site count is determined by the inputs, not by the
// caller: a cube emits steps³ sites for steps = floor(length/latticeParam),
// a sphere the subset of those sites inside the carved ball.
func Generate(shape string, latticeParam, length float64) (Lattice, error) {
	if latticeParam <= 0 {
		return nil, fmt.Errorf("%w: lattice_param must be positive, got %g", ErrInvalidParameter, latticeParam)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: length must be positive, got %g", ErrInvalidParameter, length)
	}

	steps := int(math.Floor(length / latticeParam))

	switch shape {
	case Cube:
		return cubeLattice(steps, latticeParam), nil
	case Sphere:
		return sphereLattice(steps, latticeParam, length), nil
	default:
		return nil, fmt.Errorf("%w: unknown shape %q (supported shapes: %s)", ErrInvalidShape, shape, ValidShapesString())
	}
}

// cubeLattice emits every grid site (i,j,k)·a in row-major order: i is the
// outer loop, k the inner one.
func cubeLattice(steps int, a float64) Lattice {
	lat := make(Lattice, 0, steps*steps*steps)
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			for k := 0; k < steps; k++ {
				lat = append(lat, Point{
					X: float64(i) * a,
					Y: float64(j) * a,
					Z: float64(k) * a,
				})
			}
		}
	}
	return lat
}

// sphereLattice walks the same grid as cubeLattice and keeps only sites
// inside the ball of radius length/2 centred at (radius, radius, radius).
// The centre lives in the grid's own coordinate frame: when length is not
// a whole multiple of a, it is not the centroid of the emitted sites. That
// asymmetry is intentional and kept stable.
func sphereLattice(steps int, a, length float64) Lattice {
	radius := length / 2
	radiusSq := radius * radius

	var lat Lattice
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			for k := 0; k < steps; k++ {
				p := Point{
					X: float64(i) * a,
					Y: float64(j) * a,
					Z: float64(k) * a,
				}
				dx := p.X - radius
				dy := p.Y - radius
				dz := p.Z - radius
				if dx*dx+dy*dy+dz*dz <= radiusSq {
					lat = append(lat, p)
				}
			}
		}
	}
	return lat
}
