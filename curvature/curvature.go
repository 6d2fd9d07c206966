// Package curvature defines the Regime and Severity enums and the
// Classify entry point. See doc.go for the package overview.
package curvature

import "math"

// Regime identifies the topology family a curvature value selects.
type Regime int

const (
	// Expanding marks negative curvature: hyperbolic growth, per-row
	// stitch counts increase toward the rim.
	Expanding Regime = iota

	// Contracting marks positive curvature: spherical shrink, per-row
	// stitch counts decrease toward the pole.
	Contracting

	// Constant marks zero (or non-finite, unusable) curvature:
	// Euclidean fabric, stitch counts stay flat.
	Constant
)

// String returns the lowercase regime name.
func (r Regime) String() string {
	switch r {
	case Expanding:
		return "expanding"
	case Contracting:
		return "contracting"
	default:
		return "constant"
	}
}

// Severity grades the magnitude of the curvature.
type Severity int

const (
	// Mild covers |K| ≤ 0.3.
	Mild Severity = iota
	// Moderate covers 0.3 < |K| ≤ 0.7.
	Moderate
	// Strong covers |K| > 0.7.
	Strong
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case Strong:
		return "strong"
	case Moderate:
		return "moderate"
	default:
		return "mild"
	}
}

// Severity thresholds on |K|. Fixed; not configurable.
const (
	strongThreshold   = 0.7
	moderateThreshold = 0.3
)

// Class is the result of classifying one curvature value.
type Class struct {
	// Regime is the topology family selected by the sign of K.
	Regime Regime
	// Severity grades |K| against the fixed thresholds.
	Severity Severity
}

// Label renders the class as a short human-readable phrase,
// e.g. "strongly expanding (hyperbolic)".
func (c Class) Label() string {
	var adverb string
	switch c.Severity {
	case Strong:
		adverb = "strongly "
	case Moderate:
		adverb = "moderately "
	default:
		adverb = "mildly "
	}
	switch c.Regime {
	case Expanding:
		return adverb + "expanding (hyperbolic)"
	case Contracting:
		return adverb + "contracting (spherical)"
	default:
		return "constant (flat)"
	}
}

// Classify maps a signed curvature K to its Class.
//
// Pure and total: no error conditions exist. NaN is treated as zero
// curvature (Constant/Mild); ±Inf classifies by sign with Strong
// severity. Callers must tolerate degenerate output rather than expect
// rejection here.
//
// Complexity: O(1).
func Classify(k float64) Class {
	if math.IsNaN(k) {
		return Class{Regime: Constant, Severity: Mild}
	}

	var c Class
	switch {
	case k < 0:
		c.Regime = Expanding
	case k > 0:
		c.Regime = Contracting
	default:
		return Class{Regime: Constant, Severity: Mild}
	}

	switch mag := math.Abs(k); {
	case mag > strongThreshold:
		c.Severity = Strong
	case mag > moderateThreshold:
		c.Severity = Moderate
	default:
		c.Severity = Mild
	}

	return c
}
