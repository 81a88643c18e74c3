package layout

// sumoSuits is the width of a sumo foundation band.
const sumoSuits = 12

// sumo stacks one twelve-suit foundation band per deck on top, centers the
// rows below and splits the reserves into a left and a right column.
func sumo(b *builder) {
	g, p := b.g, b.p
	maxrows := max(p.Rows, sumoSuits)
	w := g.XM + maxrows*g.XS

	h := max(b.playHeight(), 2*g.YS)

	x, y := g.XM, g.YM
	for range p.Decks {
		for suit := range sumoSuits {
			b.foundation(x, y, suit)
			x += g.XS
		}
		x, y = g.XM, y+g.YS
	}

	x, y = g.XM+g.XS*floorDiv(sumoSuits-p.Rows, 2), g.YM+g.YS*p.Decks
	for range p.Rows {
		b.row(x, y)
		x += g.XS
	}
	b.region(b.res.Rows, Rect{
		g.XS + floorDiv(g.XM, 2),
		g.YS*p.Decks + floorDiv(g.YM, 2),
		g.XS*(sumoSuits-1) - floorDiv(g.XM, 2),
		Unbounded,
	})

	half := floorDiv(p.Reserves, 2)
	for _, x := range []int{g.XM, w - g.XS} {
		y := g.YM + g.YS*p.Decks
		for range half {
			b.reserve(x, y)
			y += g.YS
		}
	}

	x, y = g.XM, h+g.YM
	t := b.talon(x, y)
	if p.Texts {
		b.label(t, x+g.XS, y+g.CH, AnchorSW, FormatWidth3)
	}

	b.size(g.XM+sumoSuits*g.XS, g.YM+g.YS+h)
}

// fun splits the rows into an upper and a lower band on the left and
// keeps one rank column per deck on the right, with reserves under the
// foundations.
func fun(b *builder) {
	g, p := b.g, b.p
	toprows := p.Decks + floorDiv(p.Rows, 2)
	w := 2*g.XM + toprows*g.XS

	h := max(b.playHeight(), 2*g.YS)

	x, y := w-g.XS*p.Decks, g.YM
	for range p.Decks {
		for rank := range p.Ranks {
			b.foundation(x, y, rank)
			y += g.YS
		}
		x, y = x+g.XS, g.YM
	}

	halfBands(b, g.XM, g.XS, h)
	b.region(b.res.Rows, Rect{0, 0, floorDiv(g.XS*p.Rows, 2) + floorDiv(g.XM, 2), Unbounded})

	reserveColumns(b, w-g.XS*p.Decks, g.YM+g.YS*4)

	x, y = g.XM, h
	t := b.talon(x, y)
	if p.Texts {
		b.label(t, x+g.XS, y+g.CH, AnchorSW, FormatWidth3)
	}

	b.size(w, g.YM+g.YS+h)
}

// oonsoo puts the talon top left, reserve columns under it and two widely
// spaced row bands to the right.
func oonsoo(b *builder) {
	g, p := b.g, b.p
	toprows := p.Decks + floorDiv(p.Rows, 2)
	w := 2*g.XM + toprows*(g.XS+g.XM)

	h := max(b.playHeight(), 2*g.YS)

	x, y := g.XM, g.YM
	t := b.talon(x, y)
	if p.Texts {
		b.label(t, x+floorDiv(g.CW, 2), y+g.YS, AnchorCenter, FormatPlain)
	}

	halfBands(b, g.XS+3*g.XM, g.XS+g.XM, h)
	b.region(b.res.Rows, Rect{g.XS + g.XM, UnboundedNeg, Unbounded, Unbounded})

	reserveColumns(b, g.XM, 3*g.YM+g.YS)

	b.size(w, g.YM+g.YS+h)
}

// halfBands places half the rows at the top margin and the other half at
// the vertical midpoint, both starting at x0 with the given pitch.
func halfBands(b *builder, x0, pitch, h int) {
	g, p := b.g, b.p
	half := floorDiv(p.Rows, 2)
	for _, y := range []int{g.YM, floorDiv(g.YS+h, 2)} {
		x := x0
		for range half {
			b.row(x, y)
			x += pitch
		}
	}
}

// reserveColumns places reserves/decks piles per deck column. The first
// column starts at y0; later columns start four pitches down.
func reserveColumns(b *builder, x, y0 int) {
	g, p := b.g, b.p
	y := y0
	for range p.Decks {
		for range floorDiv(p.Reserves, p.Decks) {
			b.reserve(x, y)
			y += g.YS
		}
		x, y = x+g.XS, g.YM+g.YS*4
	}
}
