package export

import (
	"errors"

	"github.com/NyxSpecter4/thalia-crochet-sub000/stitchgraph"
)

// ErrNilWriter indicates a renderer was handed a nil io.Writer.
var ErrNilWriter = errors.New("export: nil writer")

// ClassColor maps a stitch classification to the fixed render palette.
// The mapping is one-way: nothing in the pipeline ever inspects a
// color to recover a classification.
func ClassColor(c stitchgraph.Classification) string {
	switch c {
	case stitchgraph.ClassFlare:
		return "#7bc96f"
	case stitchgraph.ClassRuffle:
		return "#1d7d2c"
	case stitchgraph.ClassDome:
		return "#4a7fd4"
	case stitchgraph.ClassLobe:
		return "#d4734a"
	case stitchgraph.ClassTriplePoint:
		return "#c2272d"
	case stitchgraph.ClassSelfIntersection:
		return "#8e44ad"
	case stitchgraph.ClassCrossing:
		return "#b8860b"
	default:
		return "#999999"
	}
}

// edgeColor styles edges by kind, muted relative to nodes.
func edgeColor(k stitchgraph.EdgeKind) string {
	switch k {
	case stitchgraph.EdgePost:
		return "#bbbbbb"
	case stitchgraph.EdgeIncrease:
		return "#5fae54"
	case stitchgraph.EdgeDecrease:
		return "#6a8fd4"
	case stitchgraph.EdgeSlip:
		return "#b8860b"
	default:
		return "#dddddd"
	}
}
