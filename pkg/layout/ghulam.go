package layout

// ghulam splits the foundations over a left and a right column, puts two
// row bands between them and the reserves in the lower corners.
func ghulam(b *builder) {
	g, p := b.g, b.p
	suits := p.Suits

	w := 3*g.XM + g.XS*(floorDiv(p.Rows, 2)+2)
	h := g.YM + g.YS*(floorDiv(suits, 2)+2)

	x, y := g.XM, g.YM
	for i := range suits {
		b.foundation(x, y, i)
		y += g.YS
		if i == floorDiv(suits, 2)-1 {
			x, y = w-g.XS, g.YM
		}
	}

	x = 2*g.XM + g.XS
	half := floorDiv(p.Rows, 2)
	for i := range half {
		b.row(x+i*g.XS, g.YM)
	}
	for i := range half {
		b.row(x+i*g.XS, floorDiv(h, 2))
	}
	b.region(b.res.Rows, Rect{g.XM + g.XS, UnboundedNeg, w - g.XM - g.XS, Unbounded})

	for _, x := range []int{g.XM, w - g.XS} {
		for i := range floorDiv(p.Reserves, 2) {
			b.reserve(x, h-g.YS*(i+1))
		}
	}

	b.talon(w-2*g.XS, h-g.YS)

	b.size(w, h)
}
