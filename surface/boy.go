package surface

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Apery evaluates the Apéry (Bryant–Kusner form) parametrization of
// Boy's surface with scale parameter alpha:
//
//	d = alpha − √2·sin(3u)·sin(2v)
//	x = (√2·cos(2u)·cos²(v) + cos(u)·sin(2v)) / d
//	y = (√2·sin(2u)·cos²(v) − sin(u)·sin(2v)) / d
//	z = 3·cos²(v) / d
//
// The canonical immersion uses alpha = DefaultAlpha (2); values at or
// below √2 drive the denominator through zero somewhere on the domain.
//
// When |d| < SingularEps the sample is numerically unusable: ok is
// false and the zero vector is returned. Callers must drop the sample;
// no substitute value is ever synthesized.
//
// Complexity: O(1).
func Apery(u, v, alpha float64) (p v3.Vec, ok bool) {
	d := alpha - math.Sqrt2*math.Sin(3*u)*math.Sin(2*v)
	if math.Abs(d) < SingularEps || math.IsNaN(d) {
		return v3.Vec{}, false
	}

	cv2 := math.Cos(v) * math.Cos(v)
	p = v3.Vec{
		X: (math.Sqrt2*math.Cos(2*u)*cv2 + math.Cos(u)*math.Sin(2*v)) / d,
		Y: (math.Sqrt2*math.Sin(2*u)*cv2 - math.Sin(u)*math.Sin(2*v)) / d,
		Z: 3 * cv2 / d,
	}

	return p, true
}

// LobeBand reports whether the parametric angle u sits inside one of
// the three lobes of Boy's surface, detected where |sin(3u)| crests.
func LobeBand(u float64) bool {
	return math.Abs(math.Sin(3*u)) > 0.9
}
