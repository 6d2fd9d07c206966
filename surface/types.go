// Package surface defines the Family enum, shared numeric gates and the
// 3D → 2D projection used across the parametrization files.
package surface

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Family selects which parametrization places the stitches.
type Family int

const (
	// FamilyRadial places stitches on concentric rings; the curvature
	// sign picks expansion, contraction or constant rounds.
	FamilyRadial Family = iota
	// FamilyMinimal is the twisted minimal-surface layout (Enneper-like
	// sinusoidal arc-length growth plus an angular twist per row).
	FamilyMinimal
	// FamilyRoman samples Steiner's Roman surface.
	FamilyRoman
	// FamilyBoy samples Boy's surface via the Apéry parametrization.
	FamilyBoy
	// FamilyTrefoil samples the (2,3) trefoil knot as one closed ring.
	FamilyTrefoil
)

// String returns the lowercase family name.
func (f Family) String() string {
	switch f {
	case FamilyMinimal:
		return "minimal"
	case FamilyRoman:
		return "roman"
	case FamilyBoy:
		return "boy"
	case FamilyTrefoil:
		return "trefoil"
	default:
		return "radial"
	}
}

// Closed reports whether the family produces a single closed curve
// (one ring, no row structure) rather than stacked rounds.
func (f Family) Closed() bool {
	return f == FamilyTrefoil
}

// Numeric gates shared by the parametrizations and their consumers.
const (
	// DefaultAlpha is the standard Apéry scale; singularities appear
	// once α drops to √2 ≈ 1.414.
	DefaultAlpha = 2.0

	// SingularEps is the denominator magnitude below which a Boy's
	// surface sample is skipped outright.
	SingularEps = 0.001

	// TripleEps bounds |x|,|y|,|z| for a Roman-surface sample to count
	// as lying near the origin triple point.
	TripleEps = 0.25

	// TwistThreshold is the twist magnitude past which a minimal-surface
	// stitch becomes a self-intersection candidate.
	TwistThreshold = 0.35

	// MinImmersionStitches floors the per-row count derived from a
	// parametric angle so no immersion row degenerates.
	MinImmersionStitches = 4
)

// Project drops the z coordinate, mapping a surface sample into the
// plane the stitch graph is laid out and measured in.
func Project(p v3.Vec) v2.Vec {
	return v2.Vec{X: p.X, Y: p.Y}
}

// RowCount derives the stitch count of an immersion row from its
// parametric angle u: floor(base·(1+sin u)), floored at
// MinImmersionStitches. Rows near the equator (sin u ≈ 1) carry the
// most stitches, rows near the poles the fewest.
func RowCount(base int, u float64) int {
	c := int(math.Floor(float64(base) * (1 + math.Sin(u))))
	if c < MinImmersionStitches {
		return MinImmersionStitches
	}

	return c
}
