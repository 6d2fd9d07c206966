package surface

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Trefoil evaluates the standard (2,3) torus-knot curve at parameter t:
//
//	x = sin(t) + 2·sin(2t)
//	y = cos(t) − 2·cos(2t)
//	z = −sin(3t)
//
// One period t ∈ [0, 2π) traces the whole knot; samples form a single
// closed ring with no row structure.
//
// Complexity: O(1).
func Trefoil(t float64) v3.Vec {
	return v3.Vec{
		X: math.Sin(t) + 2*math.Sin(2*t),
		Y: math.Cos(t) - 2*math.Cos(2*t),
		Z: -math.Sin(3 * t),
	}
}
