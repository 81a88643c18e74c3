package layout

// samuraiSuits is the number of foundation suits in a samurai layout;
// the first half runs down the left, the rest down the right.
const samuraiSuits = 12

// samurai centers the rows between two blocks of foundation columns and
// puts the talon and waste at the bottom center.
func samurai(b *builder) {
	g, p := b.g, b.p
	toprows := 2*p.Decks + p.Rows
	yextra := 0

	h := max(b.playHeight(), 2*g.YS)

	x := (g.XM + floorDiv(toprows*g.XS, 2)) - g.XS
	y := h
	t := b.talon(x, y)
	if p.Texts {
		if p.Waste || !p.Center || toprows-p.Rows <= 1 {
			b.label(t, x+floorDiv(g.CW, 2), y+g.YS, AnchorN, FormatPlain)
			yextra = 20
		} else {
			b.label(t, x+g.XS, y, AnchorNW, FormatWidth3)
		}
	}
	if p.Waste {
		x += g.XS
		w := b.waste(x, y)
		if p.Texts {
			b.label(w, x+floorDiv(g.CW, 2), y+g.YS, AnchorN, FormatPlain)
		}
	}

	x, y = g.XM, g.YM
	d := 0
	for suit := range samuraiSuits {
		for i := range p.Decks {
			b.foundation(x+g.XS*i, y+g.YS*d, suit)
			if i == p.Decks-1 && suit == samuraiSuits/2-1 {
				d, x, y = -1, x+g.XS*(toprows-p.Decks), g.YM
			}
		}
		d++
	}

	x, y = g.XM+g.XS*p.Decks, g.YM
	x0 := x
	for range p.Rows {
		b.row(x, y)
		x += g.XS
	}
	b.region(b.res.Rows, Rect{x0 - floorDiv(g.XM, 2), 0, x0 + g.XS*p.Rows, Unbounded})

	b.size(g.XM+toprows*g.XS, g.YM+g.YS+yextra+h)
}
