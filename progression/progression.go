package progression

import (
	"math"

	"github.com/NyxSpecter4/thalia-crochet-sub000/curvature"
)

// Rate and clamp constants for the radial family. Fixed; changing them
// changes every generated pattern, so they are not options.
const (
	// expansionRate scales |K| into the linear growth rate for K < 0.
	expansionRate = 2.0
	// contractionRate scales |K| into the linear shrink rate for K > 0.
	contractionRate = 1.5
	// contractionFloor is the smallest round a shrinking radial body
	// may reach; closing below 6 sc produces an unworkable hole.
	contractionFloor = 6
	// minStitches is the global floor for every other family.
	minStitches = 1
	// maxRate caps the effect of non-finite curvature so ±Inf degrades
	// to maximal clamping instead of NaN arithmetic.
	maxRate = 1e3
)

// Radial returns the per-row stitch counts for the concentric-ring
// families: hyperbolic expansion (K < 0), spherical contraction (K > 0)
// or constant Euclidean rounds (K = 0).
//
// Row i (0-based) is floor(base·(1 ± rate·i/rows)), with
// rate = expansionRate·|K| or contractionRate·|K|. Counts clamp at
// contractionFloor when shrinking and minStitches otherwise.
//
// Total over its numeric domain: NaN curvature behaves as 0, ±Inf as a
// maximal rate, rows ≤ 0 yields nil. Never panics.
//
// Complexity: O(rows).
func Radial(k float64, base, rows int) []int {
	if rows <= 0 {
		return nil
	}
	mag := math.Abs(k)
	if math.IsNaN(mag) {
		k, mag = 0, 0
	}
	if mag > maxRate {
		mag = maxRate
	}

	counts := make([]int, rows)
	for i := 0; i < rows; i++ {
		frac := float64(i) / float64(rows)
		switch {
		case k < 0:
			c := float64(base) * (1 + expansionRate*mag*frac)
			counts[i] = clampMin(int(math.Floor(c)), minStitches)
		case k > 0:
			c := float64(base) * (1 - contractionRate*mag*frac)
			counts[i] = clampMin(int(math.Floor(c)), contractionFloor)
		default:
			counts[i] = clampMin(base, minStitches)
		}
	}

	return counts
}

// MinimalSurface returns per-row counts following sinusoidal arc-length
// growth: row i is floor(base·(1 + shapeFactor·sin(i/rows·π/2))).
// The sequence accelerates early and flattens near the last row,
// approximating how a minimal surface gains circumference.
//
// shapeFactor is typically in (0, 1.5]; NaN behaves as 0. rows ≤ 0
// yields nil. Complexity: O(rows).
func MinimalSurface(base, rows int, shapeFactor float64) []int {
	if rows <= 0 {
		return nil
	}
	if math.IsNaN(shapeFactor) {
		shapeFactor = 0
	}

	counts := make([]int, rows)
	for i := 0; i < rows; i++ {
		grow := math.Sin(float64(i)/float64(rows)*math.Pi/2) * shapeFactor
		counts[i] = clampMin(int(math.Floor(float64(base)*(1+grow))), minStitches)
	}

	return counts
}

// ForCurvature dispatches to the radial calculator matching the regime
// of k, as classified by the curvature package. It exists so the node
// generator and the pattern compiler resolve the regime through one
// door and can never disagree on the resulting counts.
//
// Complexity: O(rows).
func ForCurvature(k float64, base, rows int) []int {
	// All three radial regimes share one closed form; classification is
	// still routed through curvature.Classify so NaN handling matches.
	if curvature.Classify(k).Regime == curvature.Constant {
		return Radial(0, base, rows)
	}

	return Radial(k, base, rows)
}

// ShapingSpacing computes how many plain stitches sit between shaping
// stitches when a round changes from prev to next stitches:
// floor(prev / |next-prev|), clamped to at least 1.
// Returns 0 when the counts are equal (no shaping needed).
//
// This single rule feeds both per-node instruction hints and the
// compiled round text, so the drawn graph and the printed pattern stay
// mutually consistent.
func ShapingSpacing(prev, next int) int {
	delta := next - prev
	if delta == 0 {
		return 0
	}
	if delta < 0 {
		delta = -delta
	}

	return clampMin(prev/delta, 1)
}

// clampMin floors v at min.
func clampMin(v, min int) int {
	if v < min {
		return min
	}

	return v
}
