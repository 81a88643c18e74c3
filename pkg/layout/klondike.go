package layout

// topLabel labels the talon either below it, which costs a label strip,
// or to its right when the strip next to it is free. It reports whether
// the label went below.
func topLabel(b *builder, t *Pile, maxrows, frows int) bool {
	g, p := b.g, b.p
	if !p.Texts {
		return false
	}
	if p.Waste || !p.Center || maxrows-frows <= 1 {
		b.label(t, t.X+floorDiv(g.CW, 2), t.Y+g.YS, AnchorN, FormatPlain)
		return true
	}
	b.label(t, t.X+g.XS, t.Y, AnchorNW, FormatWidth3)
	return false
}

// foundationStart returns the x of the first foundation in a top strip of
// maxrows columns holding frows foundations.
func foundationStart(b *builder, maxrows, frows int) int {
	g, p := b.g, b.p
	x := g.XM + (maxrows-frows)*g.XS
	if p.Center && frows+2*(1+b2i(p.Waste)+1) <= maxrows {
		x = g.XM + floorDiv((maxrows-frows)*g.XS, 2)
	}
	return x
}

// klondike puts talon, waste and foundations in a top strip and the rows
// below. More than five suits split the foundations over two strips.
func klondike(b *builder) {
	g, p := b.g, b.p
	suits := p.suitCount()
	foundrows := 1 + b2i(suits > 5)
	frows := floorDiv(p.Decks*suits, foundrows)
	toprows := 1 + b2i(p.Waste) + frows
	maxrows := max(p.Rows, toprows)
	textHeight := p.TextHeight

	h := max(b.playHeight(), 2*g.YS)

	x, y := g.XM, g.YM
	t := b.talon(x, y)
	if topLabel(b, t, maxrows, frows) {
		textHeight = g.TextHeight
	}
	if p.Waste {
		x += g.XS
		w := b.waste(x, y)
		if p.Texts {
			b.label(w, x+floorDiv(g.CW, 2), y+g.YS, AnchorN, FormatPlain)
			textHeight = g.TextHeight
		}
	}

	for row := range foundrows {
		x = foundationStart(b, maxrows, frows)
		for suit := range floorDiv(suits, foundrows) {
			for range p.Decks {
				b.foundation(x, y, suit+row*floorDiv(suits, 2))
				x += g.XS
			}
		}
		y += g.YS
	}

	x = g.XM
	if p.Rows < maxrows {
		x += floorDiv((maxrows-p.Rows)*g.XS, 2)
	}
	y += textHeight
	for range p.Rows {
		b.row(x, y)
		x += g.XS
	}
	b.region(b.res.Rows, Rect{UnboundedNeg, y - floorDiv(g.YM, 2), Unbounded, Unbounded})

	b.size(g.XM+maxrows*g.XS, h+g.YM+g.YS*foundrows)
}

// easy is klondike with one foundation per rank. Three or more decks wrap
// the foundations onto a second strip after the second deck.
func easy(b *builder) {
	g, p := b.g, b.p
	frows := floorDiv(4*p.Decks, 1+b2i(p.Decks >= 3))
	toprows := 1 + b2i(p.Waste) + frows
	maxrows := max(p.Rows, toprows)
	yextra := 0

	h := max(b.playHeight(), 2*g.YS)

	x, y := g.XM, g.YM
	t := b.talon(x, y)
	if topLabel(b, t, maxrows, frows) {
		yextra = 20
	}
	if p.Waste {
		x += g.XS
		w := b.waste(x, y)
		if p.Texts {
			b.label(w, x+floorDiv(g.CW, 2), y+g.YS, AnchorN, FormatPlain)
		}
	}

	x = foundationStart(b, maxrows, frows)
	x0, y0 := x, y
	for i := range p.Decks {
		for rank := range p.Ranks {
			b.foundation(x0, y0, rank)
			x0 += g.XS
		}
		if i == 1 && p.Decks > 2 {
			x0, y0 = x, y+g.YS
			y = y0
		}
	}

	x, y = g.XM, y+g.YS+yextra*b2i(p.Decks <= 2)
	for range p.Rows {
		b.row(x, y)
		x += g.XS
	}
	b.region(b.res.Rows, Rect{UnboundedNeg, y - floorDiv(g.YM, 2), Unbounded, Unbounded})

	b.size(g.XM+maxrows*g.XS, g.YM+g.YS+yextra+h)
}
