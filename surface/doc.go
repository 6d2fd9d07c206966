// Package surface holds the closed-form parametrizations behind every
// stitch-placement family: concentric radial rings, the twisted
// minimal-surface layout, Steiner's Roman surface, the Apéry
// parametrization of Boy's surface, and the trefoil knot curve.
//
// 🚀 What lives here?
//
//	Pure trigonometric sample functions mapping parametric coordinates
//	to 3D points (vec/v3) plus the planar projection (vec/v2) the node
//	generator and edge synthesizer work in. No stitch semantics — those
//	belong to stitchgraph; this package only answers "where is the
//	sample for (u, v)?".
//
// ✨ Families:
//   - RingPoint     — concentric rings with a |K|-scaled sinusoidal
//     radius wobble, used by all three radial regimes
//   - TwistAngle    — the shapeFactor·sin(row·1.2) angular twist of the
//     minimal-surface layout
//   - Steiner       — x=sin2u·cos²v, y=sin u·sin2v, z=cos u·sin2v over
//     u,v ∈ [0,π] (Roman surface; triple point at the origin)
//   - Apery         — Boy's surface with scale α; samples whose
//     denominator α−√2·sin3u·sin2v comes within 0.001 of zero are
//     reported not-ok and must be skipped, never substituted
//   - Trefoil       — x=sin t+2sin2t, y=cos t−2cos2t, z=−sin3t over
//     one period, a single closed ring
//
// Everything is pure, total and allocation-free; singular Boy samples
// are the only "failure" and surface as a boolean, not an error.
package surface
