package stitchgraph_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/NyxSpecter4/thalia-crochet-sub000/progression"
	"github.com/NyxSpecter4/thalia-crochet-sub000/stitchgraph"
	"github.com/NyxSpecter4/thalia-crochet-sub000/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_RadialCounts verifies the node list mirrors the radial
// progression exactly: one node per stitch, 1-indexed rows/positions.
func TestGenerate_RadialCounts(t *testing.T) {
	opts := stitchgraph.Options{Curvature: -0.5, BaseStitches: 12, Rows: 5, Family: surface.FamilyRadial}
	nodes := stitchgraph.Generate(opts)

	counts := progression.Radial(-0.5, 12, 5)
	want := 0
	for _, c := range counts {
		want += c
	}
	require.Len(t, nodes, want)

	perRow := map[int]int{}
	for _, n := range nodes {
		perRow[n.Row]++
		assert.Equal(t, counts[n.Row-1], n.RowTotal, "RowTotal of %s", n.ID)
		assert.GreaterOrEqual(t, n.Position, 1)
		assert.LessOrEqual(t, n.Position, n.RowTotal)
	}
	for row, c := range counts {
		assert.Equal(t, c, perRow[row+1], "row %d node count", row+1)
	}
}

// TestGenerate_NodeIDsUnique checks ID uniqueness across families.
func TestGenerate_NodeIDsUnique(t *testing.T) {
	families := []surface.Family{
		surface.FamilyRadial, surface.FamilyMinimal, surface.FamilyRoman,
		surface.FamilyBoy, surface.FamilyTrefoil,
	}
	for _, f := range families {
		t.Run(f.String(), func(t *testing.T) {
			opts := stitchgraph.DefaultOptions()
			opts.Family = f
			seen := map[string]bool{}
			for _, n := range stitchgraph.Generate(opts) {
				assert.False(t, seen[n.ID], "duplicate node ID %s", n.ID)
				seen[n.ID] = true
			}
		})
	}
}

// TestGenerate_Classifications spot-checks the per-family enums.
func TestGenerate_Classifications(t *testing.T) {
	strong := stitchgraph.Generate(stitchgraph.Options{Curvature: -0.9, BaseStitches: 12, Rows: 4})
	assert.Equal(t, stitchgraph.ClassRuffle, strong[0].Class, "strong expansion is ruffle")

	mild := stitchgraph.Generate(stitchgraph.Options{Curvature: -0.2, BaseStitches: 12, Rows: 4})
	assert.Equal(t, stitchgraph.ClassFlare, mild[0].Class, "mild expansion is flare")

	dome := stitchgraph.Generate(stitchgraph.Options{Curvature: 0.5, BaseStitches: 12, Rows: 4})
	assert.Equal(t, stitchgraph.ClassDome, dome[0].Class, "contraction is dome")

	roman := stitchgraph.Generate(stitchgraph.Options{BaseStitches: 10, Rows: 6, Family: surface.FamilyRoman})
	foundTriple := false
	for _, n := range roman {
		if n.Class == stitchgraph.ClassTriplePoint {
			foundTriple = true
		}
	}
	assert.True(t, foundTriple, "Roman surface must classify triple-point stitches")
}

// TestGenerate_IncreaseHintsMatchSpacing verifies the node hints follow
// the shared floor(prev/|delta|) rule on a known row transition.
func TestGenerate_IncreaseHintsMatchSpacing(t *testing.T) {
	// K=-0.5, base 12, rows 5: row 1 → 12, row 2 → 14; delta 2, spacing 6.
	nodes := stitchgraph.Generate(stitchgraph.Options{Curvature: -0.5, BaseStitches: 12, Rows: 5})

	incPositions := []int{}
	for _, n := range nodes {
		if n.Row == 2 && n.Hint == stitchgraph.HintIncrease {
			incPositions = append(incPositions, n.Position)
		}
	}
	assert.Equal(t, []int{7, 14}, incPositions, "increases land every spacing+1 stitches")
}

// TestGenerate_BoySingularitySkip drives α near √2 so some samples hit
// the denominator gate: generation must not panic and the affected
// samples must simply be absent.
func TestGenerate_BoySingularitySkip(t *testing.T) {
	// Pick α so the sample at row 2, 0-based position 16 lands exactly
	// on the denominator zero (rows sample u at midpoints, v at
	// π·pos/count — see nodes.go).
	u := -math.Pi/2 + math.Pi*(2-0.5)/5
	count := surface.RowCount(12, u+math.Pi/2)
	v := math.Pi * 16.0 / float64(count)

	opts := stitchgraph.DefaultOptions()
	opts.Family = surface.FamilyBoy
	opts.Alpha = math.Sqrt2 * math.Sin(3*u) * math.Sin(2*v)

	var nodes []stitchgraph.Node
	require.NotPanics(t, func() { nodes = stitchgraph.Generate(opts) })
	require.NotEmpty(t, nodes, "only singular samples are dropped, not the graph")

	for _, n := range nodes {
		assert.False(t, n.Row == 2 && n.Position == 17, "singular sample %s must be absent", n.ID)
		assert.False(t, math.IsNaN(n.Pos.X) || math.IsNaN(n.Pos.Y), "node %s has NaN position", n.ID)
	}

	full := stitchgraph.DefaultOptions()
	full.Family = surface.FamilyBoy
	assert.Less(t, len(nodes), len(stitchgraph.Generate(full)),
		"near-singular α must drop at least one sample versus α=2")
}

// TestGenerate_Idempotent requires deep-equal output for equal input.
func TestGenerate_Idempotent(t *testing.T) {
	for _, f := range []surface.Family{surface.FamilyRadial, surface.FamilyBoy, surface.FamilyTrefoil} {
		opts := stitchgraph.DefaultOptions()
		opts.Family = f
		a := stitchgraph.Generate(opts)
		b := stitchgraph.Generate(opts)
		assert.True(t, reflect.DeepEqual(a, b), "family %s not idempotent", f)
	}
}

// TestGenerate_Degenerate checks the total-function contract.
func TestGenerate_Degenerate(t *testing.T) {
	require.NotPanics(t, func() {
		stitchgraph.Generate(stitchgraph.Options{Curvature: math.NaN(), BaseStitches: -3, Rows: 2})
	})
	require.NotPanics(t, func() {
		stitchgraph.Generate(stitchgraph.Options{Curvature: math.Inf(-1), BaseStitches: 12, Rows: 3})
	})

	nodes := stitchgraph.Generate(stitchgraph.Options{Curvature: -0.5, BaseStitches: 12, Rows: -1})
	assert.Empty(t, nodes, "negative rows produce an empty graph")
}
