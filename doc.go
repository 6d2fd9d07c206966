// Package thalia is a deterministic crochet-geometry toolkit: it turns
// a single curvature parameter (plus a handful of shape parameters)
// into the stitch graph and the written pattern of a crocheted surface.
//
// 🚀 What is thalia?
//
//	A pure-Go pipeline with no I/O in its core:
//		• curvature/    — classify K into expanding/contracting/constant
//		• progression/  — per-row stitch-count sequences per geometry family
//		• surface/      — closed-form parametrizations (rings, Enneper-style
//		  twist, Roman surface, Boy's surface, trefoil knot)
//		• stitchgraph/  — typed stitch nodes + inferred inter-row edges
//		• pattern/      — row-by-row craft instructions, style presets,
//		  multi-part assembly for self-intersecting immersions
//		• export/       — text, printable HTML, SVG and ECharts renderers
//
// ✨ Why this shape?
//
//   - One parameter change fans out to both the graph and the text;
//     both recompute from scratch and share the same shaping rules,
//     so the drawing and the instructions can never disagree.
//   - Every core function is pure and total: degenerate input clamps
//     or skips, it never throws.
//   - Deterministic end to end — no RNG, no clocks — so identical
//     inputs are deep-equal outputs.
//
// Quick taste:
//
//	nodes := stitchgraph.Generate(stitchgraph.DefaultOptions())
//	p := pattern.Compile(pattern.DefaultOptions())
//	fmt.Println(len(nodes), p.Rounds[0].Text)
//
// See examples/ for runnable scenarios and each package's doc.go for
// its contract.
package thalia
