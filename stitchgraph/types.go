// SPDX-License-Identifier: MIT
// Package: thalia-crochet/stitchgraph
//
// types.go — Node, Edge and their enums for the stitch graph.
//
// Design contract (strict):
//   • Classification is an explicit enum computed once at generation
//     time. Renderers map it to a color; the edge synthesizer branches
//     on it. Nothing in this module ever compares color values.
//   • Nodes are immutable after Generate returns: a parameter change
//     regenerates the whole graph, there is no incremental mutation.
//   • Edge direction is append-only: a target row index never exceeds
//     its source row index; closed-ring curves (trefoil) are the sole
//     exception, where the last sample connects forward to the first.
//   • String IDs are stable identifiers for consumers; all internal
//     lookups use row-local integer indices, never ID parsing.

package stitchgraph

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/NyxSpecter4/thalia-crochet-sub000/surface"
)

// Classification tags what a stitch node is, geometrically.
type Classification int

const (
	// ClassPlain is an unremarkable stitch.
	ClassPlain Classification = iota
	// ClassFlare marks mild-to-moderate hyperbolic expansion.
	ClassFlare
	// ClassRuffle marks strong hyperbolic expansion.
	ClassRuffle
	// ClassDome marks spherical contraction.
	ClassDome
	// ClassLobe marks a stitch inside one of Boy's surface's three lobes.
	ClassLobe
	// ClassTriplePoint marks a Roman-surface stitch near the origin
	// where the three sheets meet.
	ClassTriplePoint
	// ClassSelfIntersection marks a minimal-surface stitch whose twist
	// crosses the self-intersection threshold.
	ClassSelfIntersection
	// ClassCrossing marks a trefoil sample near an over/under crossing.
	ClassCrossing
)

// String returns the lowercase classification tag.
func (c Classification) String() string {
	switch c {
	case ClassFlare:
		return "flare"
	case ClassRuffle:
		return "ruffle"
	case ClassDome:
		return "dome"
	case ClassLobe:
		return "lobe"
	case ClassTriplePoint:
		return "triple-point"
	case ClassSelfIntersection:
		return "self-intersection"
	case ClassCrossing:
		return "crossing"
	default:
		return "plain"
	}
}

// Hint is the craft instruction a stitch carries.
type Hint int

const (
	// HintPlain — work one plain stitch.
	HintPlain Hint = iota
	// HintIncrease — work two stitches into one.
	HintIncrease
	// HintDecrease — work one stitch across two.
	HintDecrease
)

// String returns the craft wording used in instruction hints.
func (h Hint) String() string {
	switch h {
	case HintIncrease:
		return "increase"
	case HintDecrease:
		return "decrease"
	default:
		return "plain stitch"
	}
}

// EdgeKind types the relationship between two stitches.
type EdgeKind int

const (
	// EdgeStandard connects a stitch to its nearest anchor in the
	// previous round.
	EdgeStandard EdgeKind = iota
	// EdgePost reaches past the previous round to the round before it,
	// like a physical post stitch.
	EdgePost
	// EdgeIncrease marks the extra anchor an increase stitch adds.
	EdgeIncrease
	// EdgeDecrease marks the merged anchor of a decrease stitch.
	EdgeDecrease
	// EdgeSlip is the slip-stitch join closing a ring.
	EdgeSlip
)

// String returns the lowercase edge-kind tag.
func (k EdgeKind) String() string {
	switch k {
	case EdgePost:
		return "post-stitch"
	case EdgeIncrease:
		return "increase"
	case EdgeDecrease:
		return "decrease"
	case EdgeSlip:
		return "slip-stitch"
	default:
		return "standard"
	}
}

// Edge is one directed relationship between two stitch nodes.
type Edge struct {
	// From and To are stable node IDs.
	From, To string
	// Kind types the relationship.
	Kind EdgeKind
	// Curvature is the K value the edge was generated under.
	Curvature float64
	// RowSpan is 1 for an adjacent round, 2 for a skipped round, 0 for
	// edges within one closed ring.
	RowSpan int
	// Tension approximates mechanical stress at the joint, in [0,1].
	Tension float64
}

// Node is one stitch in the generated graph. Immutable once returned.
type Node struct {
	// ID is the stable identifier encoding family, row and position
	// (and the α shape parameter for Boy's surface).
	ID string
	// Pos is the projected 2D position.
	Pos v2.Vec
	// Size is a rendering size hint in the same units as Pos.
	Size float64
	// Class is the geometric classification, fixed at generation time.
	Class Classification
	// Curvature is the K value the node was generated under.
	Curvature float64
	// Row is the 1-indexed round; closed rings use Row 1 throughout.
	Row int
	// Position is the 1-indexed place within the round.
	Position int
	// RowTotal is the nominal stitch count of the round.
	RowTotal int
	// Hint is the craft instruction for this stitch.
	Hint Hint
	// Edges is the ordered list of outgoing edges.
	Edges []Edge
}

// nodeID builds the stable identifier for a stitch. Boy's surface
// embeds α because two α values produce distinct geometries for the
// same (row, pos).
func nodeID(f surface.Family, alpha float64, row, pos int) string {
	if f == surface.FamilyBoy {
		return fmt.Sprintf("%s-a%.2f-r%d-p%d", f, alpha, row, pos)
	}

	return fmt.Sprintf("%s-r%d-p%d", f, row, pos)
}

// AllEdges flattens every node's outgoing edge list in node order,
// which is also construction order. Convenience for exporters.
func AllEdges(nodes []Node) []Edge {
	var out []Edge
	for i := range nodes {
		out = append(out, nodes[i].Edges...)
	}

	return out
}
