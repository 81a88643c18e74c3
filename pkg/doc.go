// Package pkg provides the core libraries for tableau, a solitaire pile
// layout engine.
//
// # Overview
//
// Tableau computes where the piles of a solitaire game sit on the table:
// the talon, the waste, the foundations, the rows and the reserves, plus
// the count labels next to them and the drop regions a surface uses for
// hit testing. The pkg directory is organized into these areas:
//
//  1. [layout] - The engine: families, parameters, geometry and Compute
//  2. [region] - Drop region registry and hit testing
//  3. [render] - The adapter boundary, scenes and drawing backends
//  4. [preset], [expr] - Named presets and layout expressions
//  5. [pipeline], [cache] - Orchestration (resolve → layout → render) with caching
//
// # Architecture
//
// The typical data flow through tableau:
//
//	Layout expression ("freecell(reserves=6)")
//	         ↓
//	    [preset] resolves it to a family and parameters
//	         ↓
//	    [layout] computes pile positions, labels and regions
//	         ↓
//	    [render] wires the result onto a surface
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT output, or a terminal preview
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/tableau/pkg/layout"
//	    "github.com/matzehuels/tableau/pkg/render/sink"
//	)
//
//	res, err := layout.Compute(layout.Klondike, layout.DefaultParams(layout.Klondike))
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(res)
//
// # Main Packages
//
//   - [layout]: families, [layout.Params], [layout.Compute], [layout.Result]
//   - [region]: [region.Registry] and [region.Hit]
//   - [render]: [render.Adapter], [render.Scene], [render.Setup], [render.Build]
//   - [render/canvas]: PNG, PDF and SVG drawing via tdewolff/canvas
//   - [render/sink]: JSON documents, hand-written SVG and Graphviz DOT
//   - [render/term]: lipgloss terminal previews
//   - [preset]: the built-in preset catalog
//   - [expr]: the layout expression grammar
//   - [cache]: content-addressed file cache
//   - [pipeline]: the [pipeline.Runner] shared by the CLI
//   - [observability]: pipeline and cache hooks
//   - [errors]: coded errors and validators
//   - [buildinfo]: version information set via ldflags
package pkg
