package layout

import (
	"github.com/matzehuels/tableau/pkg/errors"
)

// builder accumulates piles for one computation. The first error is
// sticky; later calls become no-ops so family code can stay linear.
type builder struct {
	g    Geometry
	p    Params
	res  *Result
	seen map[Point]Pile
	err  error
}

func newBuilder(f Family, p Params) *builder {
	g := NewGeometry(p)
	return &builder{
		g:    g,
		p:    p,
		res:  &Result{Family: f, Params: p, Geometry: g},
		seen: make(map[Point]Pile),
	}
}

func (b *builder) newPile(kind Kind, index, x, y, suit int) (Pile, bool) {
	p := Pile{Kind: kind, Index: index, X: x, Y: y, Suit: suit}
	if b.err != nil {
		return p, false
	}
	if prev, dup := b.seen[p.Point()]; dup {
		b.err = errors.New(errors.ErrCodeDuplicatePile,
			"%s: %s collides with %s at %s", b.res.Family, p.Kind, prev, p.Point())
		return p, false
	}
	b.seen[p.Point()] = p
	return p, true
}

func (b *builder) talon(x, y int) *Pile {
	p, ok := b.newPile(KindTalon, 0, x, y, NoSuit)
	if !ok {
		return &p
	}
	b.res.Talon = &p
	return b.res.Talon
}

func (b *builder) waste(x, y int) *Pile {
	p, ok := b.newPile(KindWaste, 0, x, y, NoSuit)
	if !ok {
		return &p
	}
	b.res.Waste = &p
	return b.res.Waste
}

func (b *builder) foundation(x, y, suit int) {
	if p, ok := b.newPile(KindFoundation, len(b.res.Foundations), x, y, suit); ok {
		b.res.Foundations = append(b.res.Foundations, p)
	}
}

func (b *builder) row(x, y int) {
	if p, ok := b.newPile(KindRow, len(b.res.Rows), x, y, NoSuit); ok {
		b.res.Rows = append(b.res.Rows, p)
	}
}

func (b *builder) reserve(x, y int) {
	if p, ok := b.newPile(KindReserve, len(b.res.Reserves), x, y, NoSuit); ok {
		b.res.Reserves = append(b.res.Reserves, p)
	}
}

// label attaches a count label to p. Family code calls it only when
// texts are enabled; in preview mode the descriptor is dropped here.
func (b *builder) label(p *Pile, x, y int, anchor Anchor, format NumberFormat) {
	if b.p.Preview > 1 {
		return
	}
	p.Label = &LabelSpec{X: x, Y: y, Anchor: anchor, Format: format}
}

// region registers a drop target over a snapshot of piles.
func (b *builder) region(piles []Pile, r Rect) {
	b.res.Regions = append(b.res.Regions, Region{
		Piles: append([]Pile(nil), piles...),
		Rect:  r,
	})
}

func (b *builder) size(w, h int) {
	b.res.Width, b.res.Height = w, h
}

// finish grows the surface so every pile footprint plus one margin fits.
func (b *builder) finish() (*Result, error) {
	if b.err != nil {
		return nil, b.err
	}
	bounds := b.res.Bounds()
	b.res.Width = max(b.res.Width, bounds.X1+b.g.XM)
	b.res.Height = max(b.res.Height, bounds.Y1+b.g.YM)
	return b.res, nil
}
