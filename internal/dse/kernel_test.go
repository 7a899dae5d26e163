package dse

import (
	"math"
	"testing"
)

func TestContribution(t *testing.T) {
	tests := []struct {
		name     string
		q        float64
		distSq   float64
		expected float64
	}{
		{"zero distance", 1.0, 0.0, 1.0},
		{"zero distance large q", 1e6, 0.0, 1.0},
		{"zero q nonzero distance", 0.0, 4.0, 1.0},
		{"unit product", 1.0, 1.0, math.Sin(1.0)},
		{"qd = 2", 1.0, 4.0, math.Sin(2.0) / 2.0},
		{"qd = 2 via q", 2.0, 1.0, math.Sin(2.0) / 2.0},
		{"qd = pi crosses zero", math.Pi, 1.0, math.Sin(math.Pi) / math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Contribution(tt.q, tt.distSq)
			if math.Abs(got-tt.expected) > 1e-15 {
				t.Errorf("Contribution(%g, %g) = %g, want %g", tt.q, tt.distSq, got, tt.expected)
			}
		})
	}
}

func TestContributionExactLimits(t *testing.T) {
	// The singular cases must return exactly 1.0, not approximately.
	if got := Contribution(3.7, 0.0); got != 1.0 {
		t.Errorf("Contribution(3.7, 0) = %g, want exactly 1.0", got)
	}
	if got := Contribution(0.0, 12.25); got != 1.0 {
		t.Errorf("Contribution(0, 12.25) = %g, want exactly 1.0", got)
	}
}

func TestContributionNeverNaN(t *testing.T) {
	for _, q := range []float64{0, 1e-300, 1e-9, 1, 1e9} {
		for _, distSq := range []float64{0, 1e-300, 1e-9, 1, 1e9} {
			got := Contribution(q, distSq)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("Contribution(%g, %g) = %g, want finite", q, distSq, got)
			}
		}
	}
}

func TestContributionBounded(t *testing.T) {
	// |sin(x)/x| <= 1 everywhere, with the maximum at the limit point.
	for _, q := range []float64{0.1, 0.5, 1, 2, 10} {
		for _, distSq := range []float64{0.25, 1, 2, 100} {
			if got := Contribution(q, distSq); math.Abs(got) > 1.0 {
				t.Errorf("Contribution(%g, %g) = %g, magnitude exceeds 1", q, distSq, got)
			}
		}
	}
}
