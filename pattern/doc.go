// Package pattern compiles curvature and shape parameters into
// row-by-row crochet instructions — the textual twin of the stitch
// graph, driven by the same progressions and the same shaping rule.
//
// 🚀 What comes out?
//
//	A Pattern: derived skill level, a style-keyed materials list and
//	abbreviation glossary, one RowInstruction per round (or, for the
//	self-intersecting immersion styles, named AssemblyParts each with
//	their own rounds and join instructions), free-text notes and a
//	cultural-context paragraph.
//
// ✨ Guarantees:
//   - Compile never fails. Unknown styles silently use the classic
//     profile; degenerate numbers degrade through the progression
//     floors. No I/O, no shared state, no RNG.
//   - The parenthesized count ending every instruction equals the
//     round's StitchCount field — the round-trip contract exporters
//     and tests rely on.
//   - Stitch graph and pattern agree: both derive shaping from
//     progression.ShapingSpacing over the same count sequences.
//   - roman-surface and boys-surface styles always grade Expert and
//     compile to 2–3 joinable parts via the same round routine as the
//     single-stream path.
//
// ⚙️ Usage:
//
//	p := pattern.Compile(pattern.Options{
//	  Curvature:    -0.5,
//	  BaseStitches: 12,
//	  Rows:         5,
//	  Style:        pattern.StyleFreeform,
//	})
//	for _, r := range p.Rounds { fmt.Println(r.Text) }
//
// Complexity: O(rows) per compilation.
package pattern
