// SPDX-License-Identifier: MIT
// Package: thalia-crochet/stitchgraph
//
// nodes.go — SurfaceNodeGenerator: one pass per family materializing
// the flat node list. Coordinates come from the surface package;
// stitch-count sequences from the progression package; hints reuse the
// same shaping-spacing rule the pattern compiler prints, so graph and
// text can never disagree.
//
// Determinism: no RNG, no clock, no map iteration — identical Options
// yield deep-equal node lists.

package stitchgraph

import (
	"math"

	"github.com/NyxSpecter4/thalia-crochet-sub000/curvature"
	"github.com/NyxSpecter4/thalia-crochet-sub000/progression"
	"github.com/NyxSpecter4/thalia-crochet-sub000/surface"
)

// Rendering-scale constants. Immersion samples live in roughly [-3,3]
// parametric units and are blown up to the same drawing scale the
// radial rings use.
const (
	baseNodeSize   = 4.0
	immersionScale = 55.0
	trefoilScale   = 18.0
	// crossingGate is the |z| magnitude past which a trefoil sample
	// counts as sitting on an over/under crossing.
	crossingGate = 0.8
	// crossingStride spaces the diametric crossing edges around the
	// ring. Coprime to the 60-sample default so stride samples do not
	// all land on the z=0 nodal points of sin(3t).
	crossingStride = 7
)

// Generate materializes the stitch graph for opts: nodes first, then
// the edge-synthesis pass. Total over its domain — degenerate input
// produces a small or empty (but valid) graph, never a panic.
//
// Complexity: O(total nodes × previous-row width) dominated by edge
// synthesis; node generation itself is O(rows × stitches per row).
func Generate(opts Options) []Node {
	opts = opts.resolved()

	var nodes []Node
	switch opts.Family {
	case surface.FamilyMinimal:
		nodes = minimalNodes(opts)
	case surface.FamilyRoman:
		nodes = romanNodes(opts)
	case surface.FamilyBoy:
		nodes = boyNodes(opts)
	case surface.FamilyTrefoil:
		nodes = trefoilNodes(opts)
	default:
		nodes = radialNodes(opts)
	}

	synthesizeEdges(nodes, opts)

	return nodes
}

// radialClass buckets a curvature value into the fixed palette of
// radial classifications.
func radialClass(k float64) Classification {
	c := curvature.Classify(k)
	switch c.Regime {
	case curvature.Expanding:
		if c.Severity == curvature.Strong {
			return ClassRuffle
		}

		return ClassFlare
	case curvature.Contracting:
		return ClassDome
	default:
		return ClassPlain
	}
}

// nodeSize derives the rendering size hint; stronger curvature draws
// slightly larger stitches.
func nodeSize(k float64) float64 {
	mag := math.Abs(k)
	if math.IsNaN(mag) {
		mag = 0
	}
	if mag > 1 {
		mag = 1
	}

	return baseNodeSize * (1 + 0.25*mag)
}

// stitchHint assigns the craft hint for stitch pos (0-based) of a
// round that moves from prev to cur stitches: shaping stitches land at
// every (spacing+1)-th position, spacing = floor(prev/|delta|).
func stitchHint(prev, cur, pos int) Hint {
	if prev <= 0 || prev == cur {
		return HintPlain
	}
	spacing := progression.ShapingSpacing(prev, cur)
	if (pos+1)%(spacing+1) != 0 {
		return HintPlain
	}
	if cur > prev {
		return HintIncrease
	}

	return HintDecrease
}

// radialNodes lays concentric rings for the three curvature regimes.
func radialNodes(opts Options) []Node {
	counts := progression.Radial(opts.Curvature, opts.BaseStitches, opts.Rows)
	class := radialClass(opts.Curvature)
	size := nodeSize(opts.Curvature)

	nodes := make([]Node, 0, total(counts))
	prev := 0
	for i, count := range counts {
		row := i + 1
		for pos := 0; pos < count; pos++ {
			nodes = append(nodes, Node{
				ID:        nodeID(surface.FamilyRadial, 0, row, pos),
				Pos:       surface.RingPoint(row, pos, count, opts.Curvature),
				Size:      size,
				Class:     class,
				Curvature: opts.Curvature,
				Row:       row,
				Position:  pos + 1,
				RowTotal:  count,
				Hint:      stitchHint(prev, count, pos),
			})
		}
		prev = count
	}

	return nodes
}

// minimalNodes lays twisted rings following sinusoidal arc-length
// growth; stitches past the twist threshold on every third position
// become self-intersection candidates.
func minimalNodes(opts Options) []Node {
	counts := progression.MinimalSurface(opts.BaseStitches, opts.Rows, opts.ShapeFactor)
	size := nodeSize(opts.Curvature)

	nodes := make([]Node, 0, total(counts))
	prev := 0
	for i, count := range counts {
		row := i + 1
		twist := surface.TwistAngle(row, opts.ShapeFactor)
		for pos := 0; pos < count; pos++ {
			class := ClassPlain
			if math.Abs(twist) > surface.TwistThreshold && pos%3 == 0 {
				class = ClassSelfIntersection
			}
			nodes = append(nodes, Node{
				ID:        nodeID(surface.FamilyMinimal, 0, row, pos),
				Pos:       surface.TwistedRingPoint(row, pos, count, opts.Curvature, twist),
				Size:      size,
				Class:     class,
				Curvature: opts.Curvature,
				Row:       row,
				Position:  pos + 1,
				RowTotal:  count,
				Hint:      stitchHint(prev, count, pos),
			})
		}
		prev = count
	}

	return nodes
}

// romanNodes samples Steiner's parametrization row by row; u sweeps
// [0,π] at row midpoints, v sweeps [0,π] within the row.
func romanNodes(opts Options) []Node {
	size := nodeSize(opts.Curvature)

	var nodes []Node
	prev := 0
	for row := 1; row <= opts.Rows; row++ {
		u := math.Pi * (float64(row) - 0.5) / float64(opts.Rows)
		count := surface.RowCount(opts.BaseStitches, u)
		for pos := 0; pos < count; pos++ {
			v := math.Pi * float64(pos) / float64(count)
			p := surface.Steiner(u, v)
			class := ClassPlain
			if surface.NearTriplePoint(p) {
				class = ClassTriplePoint
			}
			proj := surface.Project(p)
			proj.X *= immersionScale
			proj.Y *= immersionScale
			nodes = append(nodes, Node{
				ID:        nodeID(surface.FamilyRoman, 0, row, pos),
				Pos:       proj,
				Size:      size,
				Class:     class,
				Curvature: opts.Curvature,
				Row:       row,
				Position:  pos + 1,
				RowTotal:  count,
				Hint:      stitchHint(prev, count, pos),
			})
		}
		prev = count
	}

	return nodes
}

// boyNodes samples the Apéry parametrization; near-singular samples
// are dropped entirely (the round keeps its nominal RowTotal, the
// stitch is simply absent).
func boyNodes(opts Options) []Node {
	size := nodeSize(opts.Curvature)

	var nodes []Node
	prev := 0
	for row := 1; row <= opts.Rows; row++ {
		u := -math.Pi/2 + math.Pi*(float64(row)-0.5)/float64(opts.Rows)
		count := surface.RowCount(opts.BaseStitches, u+math.Pi/2)
		for pos := 0; pos < count; pos++ {
			v := math.Pi * float64(pos) / float64(count)
			p, ok := surface.Apery(u, v, opts.Alpha)
			if !ok {
				continue
			}
			class := ClassPlain
			if surface.LobeBand(u) {
				class = ClassLobe
			}
			proj := surface.Project(p)
			proj.X *= immersionScale
			proj.Y *= immersionScale
			nodes = append(nodes, Node{
				ID:        nodeID(surface.FamilyBoy, opts.Alpha, row, pos),
				Pos:       proj,
				Size:      size,
				Class:     class,
				Curvature: opts.Curvature,
				Row:       row,
				Position:  pos + 1,
				RowTotal:  count,
				Hint:      stitchHint(prev, count, pos),
			})
		}
		prev = count
	}

	return nodes
}

// trefoilNodes samples the knot as one closed ring: every node sits in
// Row 1 and RowTotal equals the sample count.
func trefoilNodes(opts Options) []Node {
	n := opts.Samples
	size := nodeSize(opts.Curvature)

	nodes := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		p := surface.Trefoil(t)
		class := ClassPlain
		if math.Abs(p.Z) > crossingGate {
			class = ClassCrossing
		}
		proj := surface.Project(p)
		proj.X *= trefoilScale
		proj.Y *= trefoilScale
		nodes = append(nodes, Node{
			ID:        nodeID(surface.FamilyTrefoil, 0, 1, i),
			Pos:       proj,
			Size:      size,
			Class:     class,
			Curvature: opts.Curvature,
			Row:       1,
			Position:  i + 1,
			RowTotal:  n,
			Hint:      HintPlain,
		})
	}

	return nodes
}

// total sums a count sequence for slice preallocation.
func total(counts []int) int {
	sum := 0
	for _, c := range counts {
		sum += c
	}

	return sum
}
