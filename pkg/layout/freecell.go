package layout

// freeCell centers reserves and foundations in a top strip, leaving one
// empty slot between them, with the rows centered below.
func freeCell(b *builder) {
	g, p := b.g, b.p
	suits := p.suitCount()
	toprows := p.Reserves + 1 + suits*p.Decks
	maxrows := max(p.Rows, toprows)
	w := g.XM + maxrows*g.XS

	h := g.YM + g.YS + max(b.playHeight(), 3*g.YS)

	x, y := floorDiv(w-(toprows*g.XS-g.XM), 2), g.YM
	for range p.Reserves {
		b.reserve(x, y)
		x += g.XS
	}
	for suit := range suits {
		for range p.Decks {
			x += g.XS
			b.foundation(x, y, suit)
		}
	}

	x, y = floorDiv(w-(p.Rows*g.XS-g.XM), 2), g.YM+g.YS
	for range p.Rows {
		b.row(x, y)
		x += g.XS
	}
	b.region(b.res.Rows, Rect{UnboundedNeg, y - floorDiv(g.YM, 2), Unbounded, Unbounded})

	x, y = g.XM, h-g.YS
	t := b.talon(x, y)
	if p.Texts {
		b.label(t, x+g.XS, y+g.CH, AnchorSW, FormatWidth3)
	}

	b.size(w, h)
}
