// SPDX-License-Identifier: MIT
// Package: thalia-crochet/pattern
//
// compile.go — the single-pass pattern compiler.
//
// Contract:
//   • Compile is pure and total: no error return, no panic, no I/O.
//   • One shared round-template routine (rounds) serves both the
//     single-stream path and every multi-part assembly piece, so the
//     two paths cannot drift apart.
//   • The shaping spacing printed here is progression.ShapingSpacing —
//     the same rule the stitch-graph hints use.

package pattern

import (
	"fmt"
	"math"

	"github.com/NyxSpecter4/thalia-crochet-sub000/curvature"
	"github.com/NyxSpecter4/thalia-crochet-sub000/progression"
)

// Skill thresholds on |K|·rows.
const (
	loadIntermediate = 1.5
	loadAdvanced     = 3.0
	loadExpert       = 4.5
)

// Compile turns curvature + shape parameters + a style preset into a
// complete crochet pattern. Multi-part styles (roman-surface,
// boys-surface) compile to named assembly parts; everything else
// compiles to one instruction stream.
//
// Complexity: O(rows) — O(rows + parts·partRows) for assemblies.
func Compile(opts Options) Pattern {
	opts = opts.resolved()
	prof := profileFor(opts.Style)

	p := Pattern{
		Style:           opts.Style,
		Skill:           skillFor(opts, prof),
		Materials:       append([]string(nil), prof.materials...),
		Abbreviations:   append([]Abbrev(nil), prof.abbrevs...),
		Notes:           buildNotes(opts, prof),
		CulturalContext: prof.cultural,
	}

	if prof.multiPart {
		p.Parts = assembleParts(opts, prof)

		return p
	}
	p.Rounds = rounds(countsFor(opts), prof, opts.Rows)

	return p
}

// countsFor selects the progression calculator for the style: freeform
// follows minimal-surface growth, the trefoil ring keeps a constant
// tube, everything else follows the curvature regime.
func countsFor(opts Options) []int {
	switch opts.Style {
	case StyleFreeform:
		return progression.MinimalSurface(opts.BaseStitches, opts.Rows, opts.ShapeFactor)
	case StyleTrefoil:
		return progression.Radial(0, opts.BaseStitches, opts.Rows)
	default:
		return progression.ForCurvature(opts.Curvature, opts.BaseStitches, opts.Rows)
	}
}

// skillFor grades the pattern from |K|·rows, unless the style pins it.
func skillFor(opts Options, prof styleProfile) SkillLevel {
	if prof.pinExpert {
		return SkillExpert
	}
	mag := math.Abs(opts.Curvature)
	if math.IsNaN(mag) {
		mag = 0
	}
	switch load := mag * float64(opts.Rows); {
	case load < loadIntermediate:
		return SkillBeginner
	case load < loadAdvanced:
		return SkillIntermediate
	case load < loadExpert:
		return SkillAdvanced
	default:
		return SkillExpert
	}
}

// rounds is the shared round-template routine: round 1 is always the
// foundation ring; later rounds compare counts and pick the increase,
// decrease or even template, appending the style's injection when the
// round qualifies. The parenthesized count always terminates the text
// and always equals StitchCount.
func rounds(counts []int, prof styleProfile, rowsTotal int) []RowInstruction {
	out := make([]RowInstruction, 0, len(counts))
	prev := 0
	for i, count := range counts {
		round := i + 1
		var body string
		switch {
		case round == 1:
			body = fmt.Sprintf("Make a magic ring; work %d sc into the ring; join with sl st", count)
		case count > prev:
			body = fmt.Sprintf("*Sc in next %d sts, inc in next st; repeat from * around",
				progression.ShapingSpacing(prev, count))
		case count < prev:
			body = fmt.Sprintf("*Sc in next %d sts, sc2tog; repeat from * around",
				progression.ShapingSpacing(prev, count))
		default:
			body = "Sc in each st around"
		}
		if prof.inject != nil {
			if extra := prof.inject(round, rowsTotal); extra != "" {
				body += "; " + extra
			}
		}
		out = append(out, RowInstruction{
			Round:       round,
			StitchCount: count,
			Text:        fmt.Sprintf("%s. (%d)", body, count),
		})
		prev = count
	}

	return out
}

// buildNotes joins the style's fixed notes with the curvature reading.
func buildNotes(opts Options, prof styleProfile) []string {
	notes := append([]string(nil), prof.notes...)

	var behavior string
	switch curvature.Classify(opts.Curvature).Regime {
	case curvature.Expanding:
		behavior = "the rounds widen toward the rim and the fabric will ruffle"
	case curvature.Contracting:
		behavior = "the rounds close toward the pole and the fabric will cup"
	default:
		behavior = "the rounds stay even and the fabric lies flat"
	}
	notes = append(notes, fmt.Sprintf("Curvature %.2f reads as %s: %s.",
		opts.Curvature, curvature.Classify(opts.Curvature).Label(), behavior))

	return notes
}

// Assembly sizing: parts reuse the shared round routine at reduced
// row/stitch counts derived from the main parameters.
func halfFloor(v, min int) int {
	v /= 2
	if v < min {
		return min
	}

	return v
}

func thirdFloor(v, min int) int {
	v /= 3
	if v < min {
		return min
	}

	return v
}

// assembleParts produces the named pieces for the two immersion styles.
func assembleParts(opts Options, prof styleProfile) []AssemblyPart {
	// Lobes and panels always expand; a non-negative K would flatten
	// them, so the expansion defaults in.
	growK := opts.Curvature
	if growK >= 0 || math.IsNaN(growK) {
		growK = -0.5
	}
	partBase := halfFloor(opts.BaseStitches, 4)
	partRows := halfFloor(opts.Rows, 2)
	coreRows := thirdFloor(opts.Rows, 1)

	if opts.Style == StyleBoy {
		return []AssemblyPart{
			{
				Name:   "cross-cap panel",
				Count:  2,
				Rounds: rounds(progression.Radial(growK, partBase, partRows), prof, partRows),
				Join:   "Graft the two panels to each other along their open edges with a flat seam, leaving a hand-width slit open.",
			},
			{
				Name:   "grafting band",
				Count:  1,
				Rounds: rounds(progression.Radial(0, thirdFloor(opts.BaseStitches, 6), coreRows), prof, coreRows),
				Join:   "Thread the band through the slit and sew both of its ends to the same rim; the pass-through is what forms the cross-cap.",
			},
		}
	}

	// Roman surface: three lobes around a central disc.
	return []AssemblyPart{
		{
			Name:   "lobe",
			Count:  3,
			Rounds: rounds(progression.Radial(growK, partBase, partRows), prof, partRows),
			Join:   "Whipstitch each pair of lobes together along their straight edges so all three share pairwise seams.",
		},
		{
			Name:   "central disc",
			Count:  1,
			Rounds: rounds(progression.Radial(0, partBase, coreRows), prof, coreRows),
			Join:   "Sew each lobe's curved edge around the disc; pinning first, because the three seams must meet at a single triple point.",
		},
	}
}
