package layout

// harp centers the rows on top and runs foundations, waste and talon
// along a bottom strip.
func harp(b *builder) {
	g, p := b.g, b.p
	suits := p.suitCount()
	waste := b2i(p.Waste)

	w := g.XM + max(p.Rows*g.XS, (suits*p.Decks+waste+1)*g.XS, (suits*p.Decks+1)*g.XS+2*g.XM)

	// at least playcards cards fully playable
	h := max(g.YS+(p.Playcards-1)*g.YOffset, 3*g.YS)
	if p.Texts {
		h += g.TextHeight
	}

	x, y := floorDiv(w-(p.Rows*g.XS-g.XM), 2), g.YM
	for range p.Rows {
		b.row(x, y)
		x += g.XS
	}

	x, y = g.XM, g.YM+h
	b.region(b.res.Rows, Rect{UnboundedNeg, UnboundedNeg, Unbounded, y - floorDiv(g.YS, 2)})
	for suit := range suits {
		for range p.Decks {
			b.foundation(x, y, suit)
			x += g.XS
		}
	}
	if p.Waste {
		x = w - 2*g.XS
		ws := b.waste(x, y)
		if p.Texts {
			b.label(ws, x+floorDiv(g.CW, 2), y-g.YM, AnchorS, FormatPlain)
		}
	}
	x = w - g.XS
	t := b.talon(x, y)
	if p.Texts {
		b.label(t, x+floorDiv(g.CW, 2), y-g.YM, AnchorS, FormatPlain)
	}

	b.size(w, g.YM+h+g.YS)
}
