// Package stitchgraph generates the spatial graph of a crocheted
// surface: typed stitch nodes laid out by a parametric family, plus
// inferred inter-row edges approximating how the fabric hangs together.
//
// 🚀 What is a stitch graph?
//
//	Each node is one stitch: a projected 2D position, a geometric
//	classification (plain / flare / ruffle / dome / lobe / triple-point
//	/ self-intersection / crossing), its round and position indices,
//	and a craft hint (plain, increase, decrease). Each edge is a typed,
//	directed link to an earlier stitch: the standard anchor into the
//	previous round, post stitches reaching one round further back,
//	increase/decrease anchors, and slip-stitch ring closures — every
//	edge carrying a [0,1] tension scalar.
//
// ✨ Guarantees:
//   - Deterministic and pure: same Options, deep-equal output.
//   - Total: degenerate parameters shrink the graph, never panic.
//   - Node IDs are unique per generation; edges never target a higher
//     round than their source (ring closure excepted).
//   - Stitch hints use the exact shaping rule the pattern compiler
//     prints, so a drawn increase always matches a printed one.
//
// ⚙️ Usage:
//
//	nodes := stitchgraph.Generate(stitchgraph.Options{
//	  Curvature:    -0.5,
//	  BaseStitches: 12,
//	  Rows:         5,
//	  Family:       surface.FamilyRadial,
//	})
//	for _, e := range stitchgraph.AllEdges(nodes) { ... }
//
// Cost: node generation O(rows × stitches), edge synthesis
// O(nodes × previous-row width). Totals stay in the low hundreds, so
// the bounded per-row scan beats any spatial index.
package stitchgraph
