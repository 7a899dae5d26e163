package dse

import "math"

// Contribution evaluates the Debye kernel sin(qd)/qd for a single pair at
// squared distance distSq. Both singular cases return the sinc limit 1
// instead of dividing: a zero distance (self pair) and a zero product q·d.
// The result is always finite; the kernel never yields NaN or Inf.
func Contribution(q, distSq float64) float64 {
	if distSq == 0 {
		return 1.0
	}
	qd := q * math.Sqrt(distSq)
	if qd == 0 {
		return 1.0
	}
	return math.Sin(qd) / qd
}
