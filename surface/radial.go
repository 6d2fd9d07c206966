package surface

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Ring layout constants. ringSpacing is the radial distance between
// consecutive rounds; wobbleAmp scales the |K|-driven perturbation;
// twistRate is the fixed per-row angular frequency of the minimal twist.
const (
	ringSpacing = 14.0
	wobbleAmp   = 3.0
	twistRate   = 1.2
)

// RingPoint places stitch pos (0-based) of a count-stitch round on the
// concentric ring for row (1-based), under curvature k. The radius
// carries a small sinusoidal wobble with amplitude wobbleAmp·|K| so
// rings do not render as perfect regular polygons.
//
// count < 1 collapses to the ring center rather than dividing by zero.
// Complexity: O(1).
func RingPoint(row, pos, count int, k float64) v2.Vec {
	if count < 1 {
		return v2.Vec{}
	}
	theta := 2 * math.Pi * float64(pos) / float64(count)

	mag := math.Abs(k)
	if math.IsNaN(mag) || math.IsInf(mag, 1) {
		mag = 0
	}
	r := float64(row)*ringSpacing + wobbleAmp*mag*math.Sin(3*theta+float64(row))

	return v2.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// TwistAngle returns the angular offset the minimal-surface layout adds
// to every stitch of the given row (1-based):
// shapeFactor·sin(row·1.2). Stitches whose |twist| exceeds
// TwistThreshold are self-intersection candidates.
func TwistAngle(row int, shapeFactor float64) float64 {
	if math.IsNaN(shapeFactor) {
		shapeFactor = 0
	}

	return shapeFactor * math.Sin(float64(row)*twistRate)
}

// TwistedRingPoint is RingPoint with the row's minimal-surface twist
// folded into the stitch angle.
func TwistedRingPoint(row, pos, count int, k, twist float64) v2.Vec {
	if count < 1 {
		return v2.Vec{}
	}
	theta := 2*math.Pi*float64(pos)/float64(count) + twist

	mag := math.Abs(k)
	if math.IsNaN(mag) || math.IsInf(mag, 1) {
		mag = 0
	}
	r := float64(row)*ringSpacing + wobbleAmp*mag*math.Sin(3*theta+float64(row))

	return v2.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}
