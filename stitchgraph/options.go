// SPDX-License-Identifier: MIT
// Package: thalia-crochet/stitchgraph
//
// options.go — generation options and their defaults.
//
// Contract:
//   • Options are a plain struct resolved once at the top of Generate;
//     the zero value of any field falls back to a workable default
//     rather than erroring (the generator is total, per the pipeline's
//     never-fail policy).
//   • Determinism: Generate uses no RNG and no clock; identical Options
//     produce deep-equal output.

package stitchgraph

import "github.com/NyxSpecter4/thalia-crochet-sub000/surface"

// Default parameter values. A zero-value Options resolves to these.
const (
	// DefaultBaseStitches is the canonical foundation-round count.
	DefaultBaseStitches = 12
	// DefaultRows is the canonical round count.
	DefaultRows = 5
	// DefaultShapeFactor drives minimal-surface growth and twist.
	DefaultShapeFactor = 0.8
	// DefaultSamples is the trefoil ring resolution.
	DefaultSamples = 60
	// minTrefoilSamples keeps the knot recognisable; below this the
	// crossing structure collapses.
	minTrefoilSamples = 12
)

// Options configures one stitch-graph generation.
type Options struct {
	// Curvature is the signed K parameter, conventionally in [-1, 1]
	// but unenforced; non-finite values degrade gracefully.
	Curvature float64
	// BaseStitches is the foundation-round stitch count.
	BaseStitches int
	// Rows is the number of rounds; ignored by closed-curve families.
	Rows int
	// Family selects the placement parametrization.
	Family surface.Family
	// ShapeFactor scales minimal-surface growth and twist.
	ShapeFactor float64
	// Alpha is the Apéry scale for Boy's surface; 0 means DefaultAlpha.
	Alpha float64
	// Samples is the trefoil ring resolution; 0 means DefaultSamples.
	Samples int
}

// DefaultOptions returns the canonical hyperbolic configuration:
// K=-0.5, 12 base stitches, 5 rounds, radial family.
func DefaultOptions() Options {
	return Options{
		Curvature:    -0.5,
		BaseStitches: DefaultBaseStitches,
		Rows:         DefaultRows,
		Family:       surface.FamilyRadial,
		ShapeFactor:  DefaultShapeFactor,
		Alpha:        surface.DefaultAlpha,
		Samples:      DefaultSamples,
	}
}

// resolved fills unusable zero values with defaults. Negative Rows or
// BaseStitches are left to the progression floor rules downstream.
func (o Options) resolved() Options {
	if o.BaseStitches == 0 {
		o.BaseStitches = DefaultBaseStitches
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.ShapeFactor == 0 {
		o.ShapeFactor = DefaultShapeFactor
	}
	if o.Alpha == 0 {
		o.Alpha = surface.DefaultAlpha
	}
	if o.Samples < minTrefoilSamples {
		o.Samples = DefaultSamples
	}

	return o
}
