// SPDX-License-Identifier: MIT
// Package: thalia-crochet/pattern
//
// types.go — Style, SkillLevel and the compiled-pattern data model.
//
// Contract:
//   • Compile never fails: unknown styles fall back to the classic
//     profile silently; degenerate numeric input degrades through the
//     progression floors. There is no error type in this package.
//   • A Pattern is compiled fresh per call and shares no state with
//     any other compilation; the style profiles it reads are
//     immutable package-level tables.

package pattern

// Style is the closed enumeration of pattern presets.
type Style int

const (
	// StyleClassic is the default granny/doily register.
	StyleClassic Style = iota
	// StyleAmigurumi works dense spiral rounds, Japanese style.
	StyleAmigurumi
	// StyleLace is the Irish-lace register with picot injections.
	StyleLace
	// StyleFreeform is hyperbolic freeform coral, minimal-surface growth.
	StyleFreeform
	// StyleRoman crochets Steiner's Roman surface as joinable parts.
	StyleRoman
	// StyleBoy crochets Boy's surface as joinable cross-cap parts.
	StyleBoy
	// StyleTrefoil works the trefoil knot as one grafted ring.
	StyleTrefoil
)

// String returns the style's display name.
func (s Style) String() string {
	switch s {
	case StyleAmigurumi:
		return "amigurumi"
	case StyleLace:
		return "lace"
	case StyleFreeform:
		return "freeform"
	case StyleRoman:
		return "roman-surface"
	case StyleBoy:
		return "boys-surface"
	case StyleTrefoil:
		return "trefoil"
	default:
		return "classic"
	}
}

// StyleFromName maps a preset name to its Style. Unrecognized names
// fall back to StyleClassic — silently, per the compiler's never-fail
// contract.
func StyleFromName(name string) Style {
	for s := StyleClassic; s <= StyleTrefoil; s++ {
		if s.String() == name {
			return s
		}
	}

	return StyleClassic
}

// SkillLevel grades how demanding a compiled pattern is.
type SkillLevel int

const (
	// SkillBeginner — flat rounds, little shaping.
	SkillBeginner SkillLevel = iota
	// SkillIntermediate — steady shaping every round.
	SkillIntermediate
	// SkillAdvanced — aggressive shaping or many rounds.
	SkillAdvanced
	// SkillExpert — multi-part immersion assembly.
	SkillExpert
)

// String returns the display name of the skill level.
func (l SkillLevel) String() string {
	switch l {
	case SkillIntermediate:
		return "intermediate"
	case SkillAdvanced:
		return "advanced"
	case SkillExpert:
		return "expert"
	default:
		return "beginner"
	}
}

// Abbrev is one glossary entry.
type Abbrev struct {
	// Abbr is the shorthand used in instruction text, e.g. "sc2tog".
	Abbr string
	// Meaning spells it out.
	Meaning string
}

// RowInstruction is one compiled round of craft text.
type RowInstruction struct {
	// Round is the 1-indexed round number.
	Round int
	// StitchCount is the resulting stitch count of the round; always
	// equal to the parenthesized count at the end of Text.
	StitchCount int
	// Text is the craft instruction.
	Text string
	// Notes carries optional free-text remarks for this round.
	Notes []string
}

// AssemblyPart is one separately worked piece of a multi-part surface.
type AssemblyPart struct {
	// Name labels the piece, e.g. "lobe".
	Name string
	// Count says how many copies to work.
	Count int
	// Rounds is the piece's own instruction stream.
	Rounds []RowInstruction
	// Join describes how the piece attaches to the others.
	Join string
}

// Pattern is the compiled artifact.
type Pattern struct {
	// Style echoes the preset the pattern was compiled for.
	Style Style
	// Skill is the derived difficulty grade.
	Skill SkillLevel
	// Materials lists yarn, hook and notions.
	Materials []string
	// Abbreviations is the fixed glossary for the style.
	Abbreviations []Abbrev
	// Rounds is the single-stream instruction list; empty when the
	// style compiles to Parts instead.
	Rounds []RowInstruction
	// Parts holds the multi-part decomposition for immersion styles.
	Parts []AssemblyPart
	// Notes carries style- and curvature-specific free text.
	Notes []string
	// CulturalContext is the style's background paragraph.
	CulturalContext string
}

// Options configures one compilation.
type Options struct {
	// Curvature is the signed K parameter.
	Curvature float64
	// BaseStitches is the foundation-round count.
	BaseStitches int
	// Rows is the number of rounds.
	Rows int
	// Style selects the preset; out-of-range values behave as classic.
	Style Style
	// ShapeFactor drives freeform (minimal-surface) growth; 0 means
	// the default.
	ShapeFactor float64
}

// Default compilation parameters, mirroring the graph generator's.
const (
	DefaultBaseStitches = 12
	DefaultRows         = 5
	DefaultShapeFactor  = 0.8
)

// DefaultOptions returns the canonical hyperbolic classic pattern:
// K=-0.5, 12 base stitches, 5 rounds.
func DefaultOptions() Options {
	return Options{
		Curvature:    -0.5,
		BaseStitches: DefaultBaseStitches,
		Rows:         DefaultRows,
		Style:        StyleClassic,
		ShapeFactor:  DefaultShapeFactor,
	}
}

// resolved fills unusable zero values with defaults.
func (o Options) resolved() Options {
	if o.BaseStitches == 0 {
		o.BaseStitches = DefaultBaseStitches
	}
	if o.Rows <= 0 {
		o.Rows = DefaultRows
	}
	if o.ShapeFactor == 0 {
		o.ShapeFactor = DefaultShapeFactor
	}
	if o.Style < StyleClassic || o.Style > StyleTrefoil {
		o.Style = StyleClassic
	}

	return o
}
