package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/NyxSpecter4/thalia-crochet-sub000/stitchgraph"
)

// GraphHTML renders the stitch graph as a self-contained interactive
// ECharts page: fixed node positions from the generator, tension as
// link value, classification colors on the nodes.
func GraphHTML(w io.Writer, nodes []stitchgraph.Node, title string) error {
	if w == nil {
		return ErrNilWriter
	}

	gnodes := make([]opts.GraphNode, 0, len(nodes))
	glinks := make([]opts.GraphLink, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		gnodes = append(gnodes, opts.GraphNode{
			Name:       n.ID,
			X:          float32(n.Pos.X),
			Y:          float32(n.Pos.Y),
			SymbolSize: n.Size,
			ItemStyle:  &opts.ItemStyle{Color: ClassColor(n.Class)},
		})
		for _, e := range n.Edges {
			glinks = append(glinks, opts.GraphLink{
				Source: e.From,
				Target: e.To,
				Value:  float32(e.Tension),
			})
		}
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100vw",
			Height:    "100vh",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	graph.AddSeries(
		"stitches",
		gnodes,
		glinks,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "none",
			Roam:   opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
	)

	if err := graph.Render(w); err != nil {
		return fmt.Errorf("GraphHTML: %w", err)
	}

	return nil
}
