// Package progression derives per-row stitch-count sequences from a
// curvature (or shape) parameter — the 1D backbone every other package
// in the pipeline consumes.
//
// 🚀 What is a stitch progression?
//
//	An ordered slice of per-row stitch counts, one entry per crocheted
//	round, with the first entry equal to the base stitch count. The
//	sign of the curvature K decides its shape:
//	  • K < 0 — counts grow linearly at rate 2·|K| (hyperbolic ruffle)
//	  • K > 0 — counts shrink at rate 1.5·|K|, floored at 6 (sphere)
//	  • K = 0 — counts stay at the base (flat tube)
//
//	MinimalSurface instead follows sin(i/rows·π/2)·shapeFactor growth,
//	accelerating then decelerating like arc length on a minimal surface.
//
// ✨ Contract:
//   - Pure and total — no error returns, no panics. Degenerate input
//     (NaN/±Inf curvature, tiny base) clamps instead of failing.
//   - Counts are floored to integers and clamped to a minimum of 1
//     (6 for contracting radial rows) so no row degenerates to zero.
//   - ShapingSpacing is the single floor(prev/|delta|) rule shared by
//     the node generator's stitch hints and the pattern compiler's
//     round text, keeping graph and instructions count-consistent.
//
// ⚙️ Usage:
//
//	counts := progression.Radial(-0.5, 12, 5) // [12 14 16 19 21]
//	if err := progression.VerifyCurvatureLogic(); err != nil {
//	  // a canonical monotonicity property was violated
//	}
//
// Complexity: all calculators are O(rows) time, O(rows) memory.
package progression
