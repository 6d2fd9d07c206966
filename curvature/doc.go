// Package curvature classifies a signed Gaussian-curvature parameter K
// into the topology regime a crocheted surface falls into, plus a
// human-readable severity grade.
//
// 🚀 What is the curvature regime?
//
//	A single scalar K drives the whole pipeline:
//	  • K < 0 — hyperbolic surface, per-row stitch counts expand
//	  • K > 0 — spherical surface, per-row stitch counts contract
//	  • K = 0 — Euclidean surface, stitch counts stay constant
//
// ✨ Key properties:
//   - Classify is pure and total: any real K (including NaN and ±Inf)
//     yields a usable Class; degenerate input degrades, never errors.
//   - Fixed severity thresholds: |K| > 0.7 → Strong, |K| > 0.3 → Moderate,
//     otherwise Mild.
//   - Downstream consumers (progression, stitchgraph, pattern) branch on
//     the Regime enum, never on label strings.
//
// ⚙️ Usage:
//
//	c := curvature.Classify(-0.5)
//	fmt.Println(c.Regime, c.Severity) // Expanding Moderate
//	fmt.Println(c.Label())            // "moderately expanding (hyperbolic)"
//
// Complexity: O(1) time, O(1) space.
package curvature
