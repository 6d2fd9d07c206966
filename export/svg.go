package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/NyxSpecter4/thalia-crochet-sub000/stitchgraph"
)

// SVGOptions sizes the rendered canvas.
type SVGOptions struct {
	// Width and Height of the SVG canvas in pixels; zero values take
	// the defaults.
	Width, Height int
	// Margin keeps nodes off the canvas edge.
	Margin int
}

// DefaultSVGOptions returns an 800×800 canvas with a 40px margin.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 800, Height: 800, Margin: 40}
}

func (o SVGOptions) resolved() SVGOptions {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.Margin < 0 {
		o.Margin = 0
	}

	return o
}

// SVG renders the stitch graph as a static SVG: edges first (so nodes
// draw on top), then one circle per stitch colored by classification.
// An empty node list renders an empty canvas, not an error.
func SVG(w io.Writer, nodes []stitchgraph.Node, opts SVGOptions) error {
	if w == nil {
		return ErrNilWriter
	}
	opts = opts.resolved()

	toCanvas := fitter(nodes, opts)
	byID := make(map[string]int, len(nodes))
	for i := range nodes {
		byID[nodes[i].ID] = i
	}

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)

	for i := range nodes {
		x1, y1 := toCanvas(nodes[i].Pos.X, nodes[i].Pos.Y)
		for _, e := range nodes[i].Edges {
			j, ok := byID[e.To]
			if !ok {
				continue
			}
			x2, y2 := toCanvas(nodes[j].Pos.X, nodes[j].Pos.Y)
			width := 1 + int(e.Tension*2)
			canvas.Line(x1, y1, x2, y2,
				fmt.Sprintf("stroke:%s;stroke-width:%d", edgeColor(e.Kind), width))
		}
	}

	for i := range nodes {
		x, y := toCanvas(nodes[i].Pos.X, nodes[i].Pos.Y)
		canvas.Circle(x, y, int(math.Round(nodes[i].Size)),
			fmt.Sprintf("fill:%s;stroke:#333", ClassColor(nodes[i].Class)))
	}

	canvas.End()

	return nil
}

// fitter builds the world → canvas transform from the node bounds.
func fitter(nodes []stitchgraph.Node, opts SVGOptions) func(x, y float64) (int, int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range nodes {
		minX = math.Min(minX, nodes[i].Pos.X)
		minY = math.Min(minY, nodes[i].Pos.Y)
		maxX = math.Max(maxX, nodes[i].Pos.X)
		maxY = math.Max(maxY, nodes[i].Pos.Y)
	}

	spanX, spanY := maxX-minX, maxY-minY
	if len(nodes) == 0 || spanX <= 0 && spanY <= 0 {
		cx, cy := opts.Width/2, opts.Height/2

		return func(_, _ float64) (int, int) { return cx, cy }
	}
	span := math.Max(spanX, spanY)
	scale := float64(min(opts.Width, opts.Height)-2*opts.Margin) / span

	return func(x, y float64) (int, int) {
		return opts.Margin + int((x-minX)*scale), opts.Margin + int((y-minY)*scale)
	}
}
