// Package export renders compiled patterns and stitch graphs for
// humans: a plain-text pattern sheet, a printable HTML page, a static
// SVG of the stitch graph, and an interactive ECharts graph page.
//
// This is the peripheral rim of the pipeline — the core packages never
// import it. All renderers write to caller-supplied io.Writers; the
// only error conditions are a nil writer (ErrNilWriter) and writer
// failures, wrapped with the renderer's name.
//
// Color policy: the palette lives here and nowhere else. Renderers map
// stitchgraph.Classification values to colors; no package ever reasons
// backwards from a color to a meaning.
package export
