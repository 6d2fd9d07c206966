// SPDX-License-Identifier: MIT
// Package: thalia-crochet/stitchgraph
//
// edges.go — EdgeSynthesizer: the second pass over a materialized node
// list inferring inter-row connectivity.
//
// Contract:
//   • Row 1 emits nothing (no predecessor round).
//   • Every later stitch anchors to the nearest previous-row stitch
//     (standard edge, tension |K|·0.7+0.3 clamped to [0,1]).
//   • Qualifying stitches additionally reach two rows back with a
//     post-stitch edge at reduced tension: hyperbolic stitches whose
//     0-based position divides by 3, and any lobe / triple-point /
//     self-intersection stitch, all requiring row > 2.
//   • Increase/decrease hints add one typed edge to the second-nearest
//     predecessor (falling back to the nearest) at boosted tension.
//   • Closed rings (trefoil) connect consecutive samples, close
//     last → first with a slip-stitch edge, and add diametric crossing
//     edges at a fixed stride.
//
// Nearest-neighbor lookups run over a per-row index arena — a bounded
// scan of one small slice, no ID parsing, no full-list filtering.

package stitchgraph

import (
	"math"

	"github.com/NyxSpecter4/thalia-crochet-sub000/surface"
)

// Tension model constants.
const (
	tensionBase       = 0.3
	tensionSlope      = 0.7
	postTensionFactor = 0.5
	shapingBoost      = 0.25
)

// synthesizeEdges appends outgoing edges to every node in place.
func synthesizeEdges(nodes []Node, opts Options) {
	if len(nodes) == 0 {
		return
	}
	if opts.Family.Closed() {
		ringEdges(nodes, opts)

		return
	}
	rowEdges(nodes, opts)
}

// baseTension maps curvature magnitude to the standard-edge tension.
func baseTension(k float64) float64 {
	mag := math.Abs(k)
	if math.IsNaN(mag) {
		mag = 0
	}

	return clamp01(tensionSlope*mag + tensionBase)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

// rowArena indexes nodes by row: arena[row-1] holds the node indices
// of that round in position order.
func rowArena(nodes []Node) [][]int {
	maxRow := 0
	for i := range nodes {
		if nodes[i].Row > maxRow {
			maxRow = nodes[i].Row
		}
	}
	arena := make([][]int, maxRow)
	for i := range nodes {
		r := nodes[i].Row - 1
		arena[r] = append(arena[r], i)
	}

	return arena
}

// nearestTwo scans one row of the arena for the two nodes closest to
// nodes[from]. second falls back to best when the row has one node.
func nearestTwo(nodes []Node, from int, row []int) (best, second int) {
	best, second = -1, -1
	bestD, secondD := math.Inf(1), math.Inf(1)
	for _, idx := range row {
		d := nodes[from].Pos.Sub(nodes[idx].Pos).Length()
		switch {
		case d < bestD:
			second, secondD = best, bestD
			best, bestD = idx, d
		case d < secondD:
			second, secondD = idx, d
		}
	}
	if second < 0 {
		second = best
	}

	return best, second
}

// postQualifies decides whether a stitch reaches two rows back.
func postQualifies(n *Node) bool {
	if n.Row <= 2 {
		return false
	}
	switch n.Class {
	case ClassLobe, ClassTriplePoint, ClassSelfIntersection:
		return true
	}
	// Hyperbolic fabric: every third stitch of an expanding round.
	if n.Curvature < 0 && (n.Position-1)%3 == 0 {
		return true
	}

	return false
}

// rowEdges synthesizes connectivity for stacked-round families.
func rowEdges(nodes []Node, opts Options) {
	arena := rowArena(nodes)
	tension := baseTension(opts.Curvature)

	for i := range nodes {
		n := &nodes[i]
		if n.Row <= 1 {
			continue
		}
		prevRow := arena[n.Row-2]
		if len(prevRow) == 0 {
			// Possible when every sample of a Boy's-surface round was
			// singular and skipped.
			continue
		}

		best, second := nearestTwo(nodes, i, prevRow)
		n.Edges = append(n.Edges, Edge{
			From:      n.ID,
			To:        nodes[best].ID,
			Kind:      EdgeStandard,
			Curvature: n.Curvature,
			RowSpan:   1,
			Tension:   tension,
		})

		if postQualifies(n) {
			if back := arena[n.Row-3]; len(back) > 0 {
				anchor, _ := nearestTwo(nodes, i, back)
				n.Edges = append(n.Edges, Edge{
					From:      n.ID,
					To:        nodes[anchor].ID,
					Kind:      EdgePost,
					Curvature: n.Curvature,
					RowSpan:   2,
					Tension:   clamp01(tension * postTensionFactor),
				})
			}
		}

		switch n.Hint {
		case HintIncrease, HintDecrease:
			kind := EdgeIncrease
			if n.Hint == HintDecrease {
				kind = EdgeDecrease
			}
			n.Edges = append(n.Edges, Edge{
				From:      n.ID,
				To:        nodes[second].ID,
				Kind:      kind,
				Curvature: n.Curvature,
				RowSpan:   1,
				Tension:   clamp01(tension + shapingBoost),
			})
		}
	}
}

// ringEdges synthesizes connectivity for one closed curve: consecutive
// samples, a slip-stitch closure, and diametric crossing edges.
func ringEdges(nodes []Node, opts Options) {
	n := len(nodes)
	tension := baseTension(opts.Curvature)

	for i := 1; i < n; i++ {
		nodes[i].Edges = append(nodes[i].Edges, Edge{
			From:      nodes[i].ID,
			To:        nodes[i-1].ID,
			Kind:      EdgeStandard,
			Curvature: nodes[i].Curvature,
			RowSpan:   0,
			Tension:   tension,
		})
	}

	// Ring closure: the sole edge allowed to point "forward".
	nodes[n-1].Edges = append(nodes[n-1].Edges, Edge{
		From:      nodes[n-1].ID,
		To:        nodes[0].ID,
		Kind:      EdgeSlip,
		Curvature: nodes[n-1].Curvature,
		RowSpan:   0,
		Tension:   tension,
	})

	if n < 2*crossingStride || opts.Family != surface.FamilyTrefoil {
		return
	}
	for i := crossingStride; i < n; i += crossingStride {
		if nodes[i].Class != ClassCrossing {
			continue
		}
		opposite := (i + n/2) % n
		if opposite >= i {
			// Keep the append-only direction: only reach back.
			opposite = (i + n/2) - n
			if opposite < 0 {
				continue
			}
		}
		nodes[i].Edges = append(nodes[i].Edges, Edge{
			From:      nodes[i].ID,
			To:        nodes[opposite].ID,
			Kind:      EdgePost,
			Curvature: nodes[i].Curvature,
			RowSpan:   0,
			Tension:   clamp01(tension * postTensionFactor),
		})
	}
}
