// Package render turns computed layouts into drawable scenes.
//
// # Overview
//
// The layout engine only knows positions. Everything visual goes through
// the [Adapter] contract, which a drawing surface implements:
//
//   - CreateLabel places a running-count label
//   - SetInitialSize sizes the surface to the layout
//   - SetBackgroundImage tiles or stretches a background image
//   - SetOverlayImage centers an image above everything else
//   - RegisterHitRegion records a drop target
//
// [Setup] wires a [layout.Result] to an adapter the same way for every
// game: it sizes the surface, realizes all piles into a position-keyed
// registry, resolves and registers the drop regions and creates talon and
// waste labels unless the adapter is in preview mode.
//
// # Scenes
//
// [Scene] is an in-memory adapter. Drawing backends in [render/canvas],
// [render/term] and [render/sink] build a [Frame] with [Build] and replay
// the scene onto their own surface.
//
//	res, _ := layout.Compute(layout.Klondike, layout.DefaultParams(layout.Klondike))
//	frame, err := render.Build(res, render.Options{Background: "felt.png"})
//
// # Backgrounds
//
// A [Background] retiles on every resize. Tile mode repeats the image from
// the top-left corner until the surface is covered; stretch mode scales a
// single image to the full surface. A missing or unreadable image is not
// fatal: SetBackgroundImage reports false and the surface keeps its solid
// colour.
//
// [render/canvas]: github.com/matzehuels/tableau/pkg/render/canvas
// [render/term]: github.com/matzehuels/tableau/pkg/render/term
// [render/sink]: github.com/matzehuels/tableau/pkg/render/sink
package render
