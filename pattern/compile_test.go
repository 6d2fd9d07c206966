package pattern_test

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/NyxSpecter4/thalia-crochet-sub000/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trailingCount extracts the parenthesized stitch count ending an
// instruction, the embedded half of the round-trip contract.
var trailingCount = regexp.MustCompile(`\((\d+)\)$`)

func embeddedCount(t *testing.T, text string) int {
	t.Helper()
	m := trailingCount.FindStringSubmatch(text)
	require.NotNil(t, m, "instruction %q lacks a trailing count", text)
	n, err := strconv.Atoi(m[1])
	require.NoError(t, err)

	return n
}

// TestCompile_CanonicalScenario is the K=-0.5, base 12, rows 5 fixture:
// round 1 is a 12-stitch foundation ring, round 5 exceeds 12 and its
// printed count matches the field.
func TestCompile_CanonicalScenario(t *testing.T) {
	p := pattern.Compile(pattern.Options{Curvature: -0.5, BaseStitches: 12, Rows: 5})
	require.Len(t, p.Rounds, 5)

	r1 := p.Rounds[0]
	assert.Equal(t, 1, r1.Round)
	assert.Equal(t, 12, r1.StitchCount)
	assert.Contains(t, r1.Text, "magic ring")
	assert.Contains(t, r1.Text, "work 12 sc")

	r5 := p.Rounds[4]
	assert.Equal(t, 5, r5.Round)
	assert.Greater(t, r5.StitchCount, 12)
	assert.Equal(t, r5.StitchCount, embeddedCount(t, r5.Text))
}

// TestCompile_RoundTrip checks the embedded-count contract across all
// styles and curvature regimes, single-stream and parts alike.
func TestCompile_RoundTrip(t *testing.T) {
	styles := []pattern.Style{
		pattern.StyleClassic, pattern.StyleAmigurumi, pattern.StyleLace,
		pattern.StyleFreeform, pattern.StyleRoman, pattern.StyleBoy, pattern.StyleTrefoil,
	}
	for _, s := range styles {
		for _, k := range []float64{-0.8, -0.3, 0, 0.4, 0.9} {
			p := pattern.Compile(pattern.Options{Curvature: k, BaseStitches: 14, Rows: 6, Style: s})
			for _, r := range p.Rounds {
				assert.Equal(t, r.StitchCount, embeddedCount(t, r.Text), "style %s K=%v round %d", s, k, r.Round)
			}
			for _, part := range p.Parts {
				for _, r := range part.Rounds {
					assert.Equal(t, r.StitchCount, embeddedCount(t, r.Text), "style %s part %s round %d", s, part.Name, r.Round)
				}
			}
		}
	}
}

// TestCompile_InstructionTemplates verifies which template each regime
// selects and that the spacing matches the shared rule.
func TestCompile_InstructionTemplates(t *testing.T) {
	grow := pattern.Compile(pattern.Options{Curvature: -0.5, BaseStitches: 12, Rows: 5})
	// Round 2: 12 → 14, spacing floor(12/2) = 6.
	assert.Contains(t, grow.Rounds[1].Text, "Sc in next 6 sts, inc in next st")

	flat := pattern.Compile(pattern.Options{Curvature: 0, BaseStitches: 12, Rows: 3})
	assert.Contains(t, flat.Rounds[1].Text, "Sc in each st around")
	assert.Contains(t, flat.Rounds[2].Text, "Sc in each st around")

	shrink := pattern.Compile(pattern.Options{Curvature: 0.8, BaseStitches: 14, Rows: 5})
	assert.Contains(t, shrink.Rounds[1].Text, "sc2tog")
}

// TestCompile_StyleInjections: lace injects on every third round,
// amigurumi past the midpoint, classic never.
func TestCompile_StyleInjections(t *testing.T) {
	lace := pattern.Compile(pattern.Options{Curvature: -0.4, BaseStitches: 12, Rows: 6, Style: pattern.StyleLace})
	assert.Contains(t, lace.Rounds[2].Text, "picot", "round 3 carries the lace injection")
	assert.Contains(t, lace.Rounds[5].Text, "picot", "round 6 carries the lace injection")
	assert.NotContains(t, lace.Rounds[1].Text, "picot")

	ami := pattern.Compile(pattern.Options{Curvature: 0.4, BaseStitches: 12, Rows: 6, Style: pattern.StyleAmigurumi})
	assert.NotContains(t, ami.Rounds[2].Text, "blo", "round 3 is before the midpoint")
	assert.Contains(t, ami.Rounds[3].Text, "blo", "round 4 is past the midpoint")
	assert.Contains(t, ami.Rounds[5].Text, "blo")

	classic := pattern.Compile(pattern.Options{Curvature: -0.4, BaseStitches: 12, Rows: 6})
	for _, r := range classic.Rounds {
		assert.NotContains(t, r.Text, "picot")
		assert.NotContains(t, r.Text, "blo")
	}
}

// TestCompile_SkillLevels covers the |K|·rows thresholds and the
// Expert pin on the immersion styles.
func TestCompile_SkillLevels(t *testing.T) {
	cases := []struct {
		name string
		opts pattern.Options
		want pattern.SkillLevel
	}{
		{"FlatBeginner", pattern.Options{Curvature: 0, BaseStitches: 12, Rows: 8}, pattern.SkillBeginner},
		{"GentleBeginner", pattern.Options{Curvature: -0.2, BaseStitches: 12, Rows: 5}, pattern.SkillBeginner},
		{"Intermediate", pattern.Options{Curvature: -0.5, BaseStitches: 12, Rows: 5}, pattern.SkillIntermediate},
		{"Advanced", pattern.Options{Curvature: -0.7, BaseStitches: 12, Rows: 6}, pattern.SkillAdvanced},
		{"Expert", pattern.Options{Curvature: -1.0, BaseStitches: 12, Rows: 6}, pattern.SkillExpert},
		{"RomanPinnedExpert", pattern.Options{Curvature: 0, BaseStitches: 12, Rows: 3, Style: pattern.StyleRoman}, pattern.SkillExpert},
		{"BoyPinnedExpert", pattern.Options{Curvature: 0.1, BaseStitches: 12, Rows: 3, Style: pattern.StyleBoy}, pattern.SkillExpert},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pattern.Compile(tc.opts).Skill)
		})
	}
}

// TestCompile_MultiPartAssembly checks the immersion decompositions.
func TestCompile_MultiPartAssembly(t *testing.T) {
	roman := pattern.Compile(pattern.Options{Curvature: -0.5, BaseStitches: 12, Rows: 6, Style: pattern.StyleRoman})
	assert.Empty(t, roman.Rounds, "multi-part styles have no single stream")
	require.Len(t, roman.Parts, 2)
	assert.Equal(t, "lobe", roman.Parts[0].Name)
	assert.Equal(t, 3, roman.Parts[0].Count)
	assert.Equal(t, "central disc", roman.Parts[1].Name)
	for _, part := range roman.Parts {
		assert.NotEmpty(t, part.Rounds, "part %s has rounds", part.Name)
		assert.NotEmpty(t, part.Join, "part %s has join instructions", part.Name)
		assert.Contains(t, part.Rounds[0].Text, "magic ring", "parts start from a foundation ring")
	}

	boy := pattern.Compile(pattern.Options{Curvature: -0.5, BaseStitches: 12, Rows: 6, Style: pattern.StyleBoy})
	require.Len(t, boy.Parts, 2)
	assert.Equal(t, "cross-cap panel", boy.Parts[0].Name)
	assert.Equal(t, 2, boy.Parts[0].Count)
	assert.Equal(t, "grafting band", boy.Parts[1].Name)
	assert.Contains(t, boy.Parts[1].Join, "cross-cap")
}

// TestCompile_UnknownStyleFallsBack: out-of-range style values compile
// with the classic profile, silently.
func TestCompile_UnknownStyleFallsBack(t *testing.T) {
	odd := pattern.Compile(pattern.Options{Curvature: -0.5, BaseStitches: 12, Rows: 5, Style: pattern.Style(99)})
	classic := pattern.Compile(pattern.Options{Curvature: -0.5, BaseStitches: 12, Rows: 5, Style: pattern.StyleClassic})
	assert.Equal(t, classic.Materials, odd.Materials)
	assert.Equal(t, classic.Abbreviations, odd.Abbreviations)
	assert.Equal(t, pattern.StyleClassic, odd.Style)
}

// TestCompile_Idempotent: equal input, deep-equal output.
func TestCompile_Idempotent(t *testing.T) {
	for _, s := range []pattern.Style{pattern.StyleClassic, pattern.StyleRoman, pattern.StyleLace} {
		opts := pattern.DefaultOptions()
		opts.Style = s
		assert.True(t, reflect.DeepEqual(pattern.Compile(opts), pattern.Compile(opts)), "style %s", s)
	}
}

// TestCompile_Degenerate: NaN curvature and zero-ish sizes still yield
// a usable pattern.
func TestCompile_Degenerate(t *testing.T) {
	var p pattern.Pattern
	require.NotPanics(t, func() {
		p = pattern.Compile(pattern.Options{Curvature: math.NaN()})
	})
	assert.NotEmpty(t, p.Rounds)
	assert.NotEmpty(t, p.Materials)
	assert.Equal(t, pattern.SkillBeginner, p.Skill, "NaN load grades beginner")
}

// TestStyleFromName covers the name round-trip and its silent fallback.
func TestStyleFromName(t *testing.T) {
	for s := pattern.StyleClassic; s <= pattern.StyleTrefoil; s++ {
		assert.Equal(t, s, pattern.StyleFromName(s.String()))
	}
	assert.Equal(t, pattern.StyleClassic, pattern.StyleFromName("macrame"))
	assert.Equal(t, pattern.StyleClassic, pattern.StyleFromName(strings.ToUpper("lace")), "matching is case-sensitive")
}
