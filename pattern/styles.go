// SPDX-License-Identifier: MIT
// Package: thalia-crochet/pattern
//
// styles.go — one immutable profile per style preset: materials,
// glossary, note templates, cultural context and the optional per-round
// text injection. Selected once in Compile and applied uniformly; no
// style-name comparisons happen anywhere else.

package pattern

// injectFn returns extra instruction text for a round, or "" when the
// round gets none. rows is the total round count of the stream.
type injectFn func(round, rows int) string

// styleProfile is the strategy record for one preset.
type styleProfile struct {
	materials []string
	abbrevs   []Abbrev
	notes     []string
	cultural  string
	inject    injectFn
	// multiPart routes compilation through the assembly path.
	multiPart bool
	// pinExpert forces SkillExpert regardless of parameters.
	pinExpert bool
}

// baseAbbrevs is the glossary shared by every style.
var baseAbbrevs = []Abbrev{
	{"ch", "chain"},
	{"sc", "single crochet"},
	{"inc", "increase (2 sc in one stitch)"},
	{"sc2tog", "single crochet 2 together (decrease)"},
	{"sl st", "slip stitch"},
	{"st(s)", "stitch(es)"},
	{"rnd", "round"},
}

// withAbbrevs appends style-specific entries to the shared glossary.
func withAbbrevs(extra ...Abbrev) []Abbrev {
	out := make([]Abbrev, 0, len(baseAbbrevs)+len(extra))
	out = append(out, baseAbbrevs...)
	out = append(out, extra...)

	return out
}

// every3rdRound injects on rounds divisible by three (lace picots).
func every3rdRound(text string) injectFn {
	return func(round, _ int) string {
		if round > 1 && round%3 == 0 {
			return text
		}

		return ""
	}
}

// pastMidpoint injects on rounds past the stream's midpoint.
func pastMidpoint(text string) injectFn {
	return func(round, rows int) string {
		if round > rows/2 {
			return text
		}

		return ""
	}
}

// profiles is the immutable preset table. Read-only after init; safe
// for concurrent Compile calls.
var profiles = map[Style]styleProfile{
	StyleClassic: {
		materials: []string{
			"Worsted weight yarn (aran), one skein per ~40 rounds",
			"4.5 mm (US 7) crochet hook",
			"Yarn needle and stitch marker",
		},
		abbrevs: withAbbrevs(),
		notes: []string{
			"Work in continuous rounds unless a round says to join.",
			"Count stitches at the end of every round; the parenthesized number is the target.",
		},
		cultural: "Worked-in-the-round crochet descends from 19th-century European " +
			"doily and granny-square traditions, where concentric shaping rules were " +
			"passed along as counted recipes long before charts existed.",
	},
	StyleAmigurumi: {
		materials: []string{
			"Sport or DK cotton yarn in two colors",
			"2.5 mm hook (smaller than the yarn calls for, to keep stuffing invisible)",
			"Polyester fiberfill and a yarn needle",
			"Safety eyes (optional)",
		},
		abbrevs: withAbbrevs(Abbrev{"blo", "back loop only"}),
		notes: []string{
			"Keep tension tight; gaps let stuffing show.",
			"Stuff firmly as you close — you cannot reach back in later.",
		},
		cultural: "Amigurumi is the Japanese practice of crocheting small stuffed " +
			"figures in dense spiral rounds; its shaping vocabulary of paired inc and " +
			"sc2tog rounds maps directly onto spherical (positive-curvature) surfaces.",
		inject: pastMidpoint("work this round in blo"),
	},
	StyleLace: {
		materials: []string{
			"Crochet thread size 10 or lace-weight linen",
			"1.5 mm steel hook",
			"Blocking pins and starch",
		},
		abbrevs: withAbbrevs(Abbrev{"picot", "ch 3, sl st into the 3rd ch from hook"}),
		notes: []string{
			"Block aggressively; lace only reads once stretched.",
			"Picot rounds are decorative — keep the stitch count unchanged through them.",
		},
		cultural: "Irish crochet lace grew out of famine-relief cottage industry in " +
			"the 1840s; its picot-studded mesh joins separately worked motifs, a " +
			"lineage this preset borrows for its every-third-round texture.",
		inject: every3rdRound("work a picot after every 4th st"),
	},
	StyleFreeform: {
		materials: []string{
			"Mixed-weight scrap yarns, the louder the better",
			"3.5–5.5 mm hooks, changed at will",
			"No pattern gauge — the surface rules",
		},
		abbrevs: withAbbrevs(),
		notes: []string{
			"Growth follows a minimal-surface arc: fast in the early rounds, settling near the rim.",
			"Let the fabric ruffle where it wants to; do not block it flat.",
		},
		cultural: "Freeform hyperbolic crochet entered mathematics outreach through " +
			"Daina Taimiņa's models of the hyperbolic plane and the Crochet Coral " +
			"Reef project, which showed that exponential stitch growth is the " +
			"natural fiber encoding of negative curvature.",
	},
	StyleRoman: {
		materials: []string{
			"Smooth worsted cotton in three close shades (one per lobe)",
			"4.0 mm hook",
			"Yarn needle for seaming; waste yarn for markers",
		},
		abbrevs: withAbbrevs(),
		notes: []string{
			"Each lobe is worked flat-ish and eases into shape at seaming.",
			"The three seams must meet at a single point — pin before sewing.",
		},
		cultural: "Steiner's Roman surface is a self-intersecting projection of the " +
			"projective plane; crocheting it means lofting the closed surface into " +
			"separately worked lobes that only meet correctly once grafted.",
		multiPart: true,
		pinExpert: true,
	},
	StyleBoy: {
		materials: []string{
			"Elastic wool-blend worsted (the cross-cap needs stretch)",
			"4.0 mm hook",
			"Yarn needle; blocking wires for the grafting band",
		},
		abbrevs: withAbbrevs(),
		notes: []string{
			"The Apéry parametrization drives the panel shaping; trust the counts even where the fabric curls.",
			"Singular spots on the surface are simply skipped — do not add stitches to compensate.",
		},
		cultural: "Boy's surface is the only immersion of the projective plane with " +
			"no pinch points; fiber models of it descend from the Apéry " +
			"parametrization, worked as panels grafted through a cross-cap.",
		multiPart: true,
		pinExpert: true,
	},
	StyleTrefoil: {
		materials: []string{
			"Firm mercerized cotton, one color",
			"3.0 mm hook",
			"A 30 cm flexible wire core (optional, for posing)",
		},
		abbrevs: withAbbrevs(),
		notes: []string{
			"The ring is worked as a closed tube and grafted end-to-end; thread the knot before grafting.",
			"Keep the over/under crossings loose until the graft closes.",
		},
		cultural: "The trefoil is the simplest nontrivial knot; crocheted knots " +
			"trace back to Celtic interlace motifs, worked here as a single " +
			"closed I-cord ring.",
	},
}

// profileFor returns the style's profile, falling back to classic for
// anything unknown. Never fails.
func profileFor(s Style) styleProfile {
	if p, ok := profiles[s]; ok {
		return p
	}

	return profiles[StyleClassic]
}
