package layout

// gypsy puts the rows on the left and one foundation column per deck on
// the right, with the talon and optional waste at the bottom right.
func gypsy(b *builder) {
	g, p := b.g, b.p
	suits := p.suitCount()

	h := g.YM + max(b.playHeight(), (suits+1)*g.YS)

	x, y := rowsAndColumns(b, suits)

	x, y = x+(p.Decks-1)*g.XS, h-g.YS
	if p.Texts {
		x -= floorDiv(g.XS, 2)
	}
	t := b.talon(x, y)
	if p.Texts {
		b.label(t, x+g.XS, y+g.CH, AnchorSW, FormatWidth3)
	}
	if p.Waste {
		x -= g.XS
		w := b.waste(x, y)
		if p.Texts {
			b.label(w, x-g.XM, y+g.CH, AnchorSE, FormatWidth3)
		}
	}

	b.size(g.XM+(p.Rows+p.Decks)*g.XS, h)
}

// yukon is gypsy without a waste, with the talon tucked in the bottom left.
func yukon(b *builder) {
	g, p := b.g, b.p
	suits := p.suitCount()

	h := g.YM + max(b.playHeight(), suits*g.YS)

	rowsAndColumns(b, suits)

	x, y := g.XM, h-g.YS
	t := b.talon(x, y)
	if p.Texts {
		b.label(t, x+g.XS, y+g.CH, AnchorSW, FormatWidth3)
	}

	b.size(g.XM+(p.Rows+p.Decks)*g.XS, h)
}

// rowsAndColumns lays a row band from the top-left margin and the
// foundation columns right of it. It returns the x of the first foundation
// column and the y below the last foundation.
func rowsAndColumns(b *builder, suits int) (x, y int) {
	g, p := b.g, b.p
	x, y = g.XM, g.YM
	for range p.Rows {
		b.row(x, y)
		x += g.XS
	}
	b.region(b.res.Rows, Rect{UnboundedNeg, UnboundedNeg, x - floorDiv(g.CW, 2), Unbounded})

	for suit := range suits {
		for i := range p.Decks {
			b.foundation(x+i*g.XS, y, suit)
		}
		y += g.YS
	}
	return x, y
}
