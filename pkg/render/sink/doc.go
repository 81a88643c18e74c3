// Package sink provides output format renderers for computed layouts.
//
// # Overview
//
// A "sink" turns a [layout.Result] (or a wired [render.Frame]) into a
// final output format:
//
//   - SVG: hand-built vector drawing of piles, labels and regions
//   - JSON: the layout document, readable back with [ParseJSON]
//   - DOT: a Graphviz graph with pinned pile positions
//   - PNG/PDF: drawn by the tdewolff/canvas backend
//
// # SVG Output
//
//	svg := sink.RenderSVG(res,
//	    sink.WithRegions(),
//	    sink.WithCounts(map[layout.Kind]int{layout.KindTalon: 24}),
//	)
//
// # JSON Output
//
// [RenderJSON] writes an indented document. Region rectangles use null
// for edges that extend to the surface border, and region members are
// indices into the canonical pile order. [ParseJSON] reverses it.
//
// # Graphviz Output
//
// [ToDOT] produces a neato graph; [RenderDOT] lays it out with the
// embedded Graphviz (no system install required).
//
// # Raster Output
//
// [RenderPNG] and [RenderPDF] take a frame so that background images,
// overlay and label counts set up by [render.Build] are drawn too.
package sink
