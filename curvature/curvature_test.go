package curvature_test

import (
	"math"
	"testing"

	"github.com/NyxSpecter4/thalia-crochet-sub000/curvature"
	"github.com/stretchr/testify/assert"
)

// TestClassify_Regimes verifies the sign → regime map on plain values.
func TestClassify_Regimes(t *testing.T) {
	cases := []struct {
		name string
		k    float64
		want curvature.Regime
	}{
		{"Negative", -0.5, curvature.Expanding},
		{"Positive", 0.5, curvature.Contracting},
		{"Zero", 0, curvature.Constant},
		{"TinyNegative", -1e-9, curvature.Expanding},
		{"TinyPositive", 1e-9, curvature.Contracting},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, curvature.Classify(tc.k).Regime)
		})
	}
}

// TestClassify_Severity pins the fixed |K| thresholds, including the
// boundary values which belong to the lower grade.
func TestClassify_Severity(t *testing.T) {
	cases := []struct {
		name string
		k    float64
		want curvature.Severity
	}{
		{"Mild", -0.1, curvature.Mild},
		{"BoundaryMild", 0.3, curvature.Mild},
		{"Moderate", -0.5, curvature.Moderate},
		{"BoundaryModerate", 0.7, curvature.Moderate},
		{"Strong", -0.71, curvature.Strong},
		{"VeryStrong", 3.0, curvature.Strong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, curvature.Classify(tc.k).Severity)
		})
	}
}

// TestClassify_NonFinite checks that degenerate input still yields a
// usable Class: NaN degrades to Constant/Mild, ±Inf classify by sign.
func TestClassify_NonFinite(t *testing.T) {
	nan := curvature.Classify(math.NaN())
	assert.Equal(t, curvature.Constant, nan.Regime, "NaN regime")
	assert.Equal(t, curvature.Mild, nan.Severity, "NaN severity")

	pos := curvature.Classify(math.Inf(1))
	assert.Equal(t, curvature.Contracting, pos.Regime, "+Inf regime")
	assert.Equal(t, curvature.Strong, pos.Severity, "+Inf severity")

	neg := curvature.Classify(math.Inf(-1))
	assert.Equal(t, curvature.Expanding, neg.Regime, "-Inf regime")
	assert.Equal(t, curvature.Strong, neg.Severity, "-Inf severity")
}

// TestLabel spot-checks the label phrasing used in exported patterns.
func TestLabel(t *testing.T) {
	assert.Equal(t, "moderately expanding (hyperbolic)", curvature.Classify(-0.5).Label())
	assert.Equal(t, "strongly contracting (spherical)", curvature.Classify(0.9).Label())
	assert.Equal(t, "constant (flat)", curvature.Classify(0).Label())
}
