package layout

// generic is the configurable fallback: talon over waste on the left, two
// foundation bands right of them and the rows along the bottom.
func generic(b *builder) {
	g, p := b.g, b.p
	suits := p.suitCount()
	frows := floorDiv(suits*p.Decks, 2)
	fspace := floorDiv(g.XS*(p.Rows-1), 2)

	w, h := g.XM+g.XS*p.Rows, 2*g.YM+g.YS*p.Height
	b.size(w, h)

	x, y := g.XM, g.YM
	t := b.talon(x, y)
	if p.Texts {
		b.label(t, x+g.XS, y+g.CH, AnchorSW, FormatWidth3)
	}
	if p.Waste {
		ws := b.waste(x, y+g.YS)
		if p.Texts {
			b.label(ws, x+g.XS, y+g.YS+g.CH, AnchorSW, FormatWidth3)
		}
	}

	start := w - fspace - floorDiv(g.XS*frows, 2)
	for band := range 2 {
		x = start
		for suit := range floorDiv(suits, 2) {
			for range p.Decks {
				b.foundation(x, y, suit+band*floorDiv(suits, 2))
				x += g.XS
			}
		}
		y += g.YS
	}

	x, y = g.XM, 2*g.YM+2*g.YS
	for range p.Rows {
		b.row(x, y)
		x += g.XS
	}
	b.region(b.res.Rows, Rect{UnboundedNeg, y - g.YM, Unbounded, Unbounded})
}
