// Package layout computes pile positions for solitaire tableaux.
//
// # Overview
//
// Every supported game arranges its piles with one of a small number of
// closed-form algorithms, the layout families. Given the shape of a game
// (row and reserve counts, deck and suit counts, card size, margins and
// stagger offsets) a family deterministically produces:
//
//   - A [Pile] for the talon, waste, foundations, rows and reserves
//   - The size of the drawing surface
//   - Optional count labels for the talon and waste ([LabelSpec])
//   - Drop regions that map a screen rectangle to a set of piles ([Region])
//
// # Computing a Layout
//
// Start from the family defaults and override what the game needs:
//
//	p := layout.DefaultParams(layout.Klondike)
//	p.Decks = 2
//	p.Rows = 9
//	r, err := layout.Compute(layout.Klondike, p)
//
// [Compute] validates the parameters first. Contradictory shapes, such as
// a waste pile in a family that has none, an odd reserve count where the
// family splits reserves into two columns, or labels where the family has
// no room for them, fail with an INVALID_CONFIG error. Two piles landing on
// the same position fail with DUPLICATE_PILE.
//
// # Grid and Rounding
//
// Piles sit on a grid whose pitch is one card plus one margin ([Geometry]
// XS and YS). Every division in the family algorithms is floor division,
// so layouts are pixel exact and identical across platforms.
//
// The sizing heuristic shared by most families reserves room for two
// thirds of a card plus Playcards-1 stagger offsets, so deep piles stay
// readable without making the surface needlessly tall.
//
// The surface is at least as large as the family asks for and always
// large enough to contain every pile plus one margin.
//
// # Families
//
//   - [BakersDozen]: two row blocks, foundation column, talon
//   - [FreeCell]: reserves and foundations on top, rows below
//   - [Gypsy], [Yukon]: rows left, foundation columns right
//   - [Harp]: rows on top, foundations, waste and talon below
//   - [Klondike], [Easy]: talon, waste and foundations on top, rows below
//   - [Samurai], [Sumo], [Fun], [Oonsoo]: twelve-suit layouts
//   - [Ghulam]: split foundation columns with corner reserves
//   - [Generic]: configurable fallback
//
// # Labels and Preview
//
// Label positions come from a fixed set of directions ([Geometry.TextAttr]).
// When [Params.Preview] is above 1 no label descriptors are produced.
// Preview never moves a pile.
package layout
