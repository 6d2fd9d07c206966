package surface

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Steiner evaluates Steiner's parametrization of the Roman surface:
//
//	x = sin(2u)·cos²(v)
//	y = sin(u)·sin(2v)
//	z = cos(u)·sin(2v)
//
// over u, v ∈ [0, π]. The immersion self-intersects along three line
// segments meeting at a triple point at the origin.
//
// Complexity: O(1).
func Steiner(u, v float64) v3.Vec {
	cv := math.Cos(v)

	return v3.Vec{
		X: math.Sin(2*u) * cv * cv,
		Y: math.Sin(u) * math.Sin(2*v),
		Z: math.Cos(u) * math.Sin(2*v),
	}
}

// NearTriplePoint reports whether a Roman-surface sample lies close to
// the origin in all three coordinates, i.e. near the point where the
// surface's three sheets meet.
func NearTriplePoint(p v3.Vec) bool {
	return math.Abs(p.X) < TripleEps && math.Abs(p.Y) < TripleEps && math.Abs(p.Z) < TripleEps
}
