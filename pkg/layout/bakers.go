package layout

// bakersDozen places two row blocks on the left, a foundation column per
// deck to their right and the talon at the bottom of that column.
func bakersDozen(b *builder) {
	g, p := b.g, b.p
	suits := p.suitCount()
	halfrows := floorDiv(p.Rows+1, 2)

	// at least nine cards of the upper block stay playable
	h := g.YS + min(2*g.YS, (p.Playcards-1)*g.YOffset)
	h = max(h, floorDiv(5*g.YS, 2), floorDiv(3*g.YS, 2)+g.CH)
	h = min(h, 3*g.YS)

	for i := range halfrows {
		b.row(g.XM+i*g.XS, g.YM)
	}
	for i := range p.Rows - halfrows {
		b.row(g.XM+i*g.XS, g.YM+h)
	}

	x, y := g.XM+halfrows*g.XS, g.YM
	b.region(b.res.Rows, Rect{UnboundedNeg, UnboundedNeg, x - floorDiv(g.CW, 2), Unbounded})
	for suit := range suits {
		for i := range p.Decks {
			b.foundation(x+i*g.XS, y, suit)
		}
		y += g.YS
	}

	total := g.YM + 2*h
	b.talon(x, total-g.YS)

	b.size(g.XM+(halfrows+p.Decks)*g.XS, total)
}
