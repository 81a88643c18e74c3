package render

import (
	"fmt"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
	"github.com/matzehuels/tableau/pkg/region"
)

// Board is the wiring between one layout result and one adapter.
type Board struct {
	Result *layout.Result
	// Piles holds every pile in canonical order; the registry maps a
	// position to its index here.
	Piles    []layout.Pile
	Registry *region.Registry[int]
	Regions  []region.Resolved[int]
	Groups   layout.Groups

	labels map[layout.Point]Label
}

// Setup performs the default wiring of res onto a.
func Setup(a Adapter, res *layout.Result) (*Board, error) {
	b := &Board{
		Result:   res,
		Piles:    res.All(),
		Registry: region.NewRegistry[int](),
		Groups:   res.Groups(),
		labels:   make(map[layout.Point]Label),
	}
	a.SetInitialSize(res.Width, res.Height)

	for i, p := range b.Piles {
		if err := b.Registry.Register(p.Point(), i); err != nil {
			return nil, err
		}
	}

	resolved, err := region.Resolve(res.Regions, b.Registry)
	if err != nil {
		return nil, fmt.Errorf("resolve regions: %w", err)
	}
	b.Regions = resolved
	for _, r := range resolved {
		a.RegisterHitRegion(r.Piles, r.Rect)
	}

	if a.PreviewLevel() > 1 {
		return b, nil
	}
	for _, p := range []*layout.Pile{res.Talon, res.Waste} {
		if p == nil || p.Label == nil {
			continue
		}
		l, err := a.CreateLabel(p.Label.Point(), p.Label.Anchor, p.Label.Format)
		if err != nil {
			return nil, fmt.Errorf("create %s label: %w", p.Kind, err)
		}
		b.labels[p.Point()] = l
	}
	return b, nil
}

// AttachLabel adds a count label to pile in direction dir, shifted by
// (dx, dy). An empty format keeps the direction's default. It is a no-op
// in preview mode and fails if the pile already has a label.
func (b *Board) AttachLabel(a Adapter, pile layout.Pile, dir layout.Direction, dx, dy int, format layout.NumberFormat) (Label, error) {
	if a.PreviewLevel() > 1 {
		return nil, nil
	}
	if _, ok := b.Registry.Lookup(pile.Point()); !ok {
		return nil, errors.New(errors.ErrCodePileNotFound, "no pile at %s", pile.Point())
	}
	if _, ok := b.labels[pile.Point()]; ok {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s already has a label", pile)
	}
	spec, err := b.Result.Geometry.TextAttr(pile.Point(), dir, b.Result.Params.Decks)
	if err != nil {
		return nil, err
	}
	if format != "" {
		if !format.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported count format %q", format)
		}
		spec.Format = format
	}
	l, err := a.CreateLabel(layout.Point{X: spec.X + dx, Y: spec.Y + dy}, spec.Anchor, spec.Format)
	if err != nil {
		return nil, err
	}
	b.labels[pile.Point()] = l
	return l, nil
}

// Label returns the label attached to pile, if any.
func (b *Board) Label(pile layout.Pile) (Label, bool) {
	l, ok := b.labels[pile.Point()]
	return l, ok
}

// SetCount updates the count shown for pile. Piles without a label are
// ignored.
func (b *Board) SetCount(pile layout.Pile, n int) {
	if l, ok := b.labels[pile.Point()]; ok {
		l.SetCount(n)
	}
}

// PileAt returns the pile whose card footprint contains (x, y).
func (b *Board) PileAt(x, y int) (layout.Pile, bool) {
	g := b.Result.Geometry
	for _, p := range b.Piles {
		if x >= p.X && x < p.X+g.CW && y >= p.Y && y < p.Y+g.CH {
			return p, true
		}
	}
	return layout.Pile{}, false
}

// DropTarget returns the region containing (x, y), translated back to
// piles.
func (b *Board) DropTarget(x, y int) ([]layout.Pile, bool) {
	r, ok := region.Hit(b.Regions, x, y)
	if !ok {
		return nil, false
	}
	out := make([]layout.Pile, len(r.Handles))
	for i, h := range r.Handles {
		out[i] = b.Piles[h]
	}
	return out, true
}
