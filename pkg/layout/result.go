package layout

// Result is the output of one layout computation. It is never mutated
// after [Compute] returns; callers that need a different arrangement
// compute a new one.
type Result struct {
	Family   Family
	Params   Params
	Geometry Geometry

	Talon       *Pile
	Waste       *Pile
	Foundations []Pile
	Rows        []Pile
	Reserves    []Pile
	Regions     []Region

	Width, Height int
}

// All returns every pile in canonical order: talon, waste, foundations,
// rows, reserves.
func (r *Result) All() []Pile {
	out := make([]Pile, 0, r.Len())
	if r.Talon != nil {
		out = append(out, *r.Talon)
	}
	if r.Waste != nil {
		out = append(out, *r.Waste)
	}
	out = append(out, r.Foundations...)
	out = append(out, r.Rows...)
	out = append(out, r.Reserves...)
	return out
}

// Len returns the total number of piles.
func (r *Result) Len() int {
	n := len(r.Foundations) + len(r.Rows) + len(r.Reserves)
	if r.Talon != nil {
		n++
	}
	if r.Waste != nil {
		n++
	}
	return n
}

// Bounds returns the smallest rectangle covering every pile's card
// footprint. The zero Rect is returned for an empty result.
func (r *Result) Bounds() Rect {
	piles := r.All()
	if len(piles) == 0 {
		return Rect{}
	}
	b := Rect{piles[0].X, piles[0].Y, piles[0].X + r.Geometry.CW, piles[0].Y + r.Geometry.CH}
	for _, p := range piles[1:] {
		b.X0 = min(b.X0, p.X)
		b.Y0 = min(b.Y0, p.Y)
		b.X1 = max(b.X1, p.X+r.Geometry.CW)
		b.Y1 = max(b.Y1, p.Y+r.Geometry.CH)
	}
	return b
}

// Labeled returns the piles that carry a label descriptor.
func (r *Result) Labeled() []Pile {
	var out []Pile
	for _, p := range r.All() {
		if p.Label != nil {
			out = append(out, p)
		}
	}
	return out
}

// Groups partitions piles by the role they play during a game.
type Groups struct {
	Talon   []Pile // talon and waste
	Drop    []Pile // piles cards can be dragged from
	Open    []Pile // piles that are always face up
	Reserve []Pile
}

// Groups returns the default stack groups of r.
func (r *Result) Groups() Groups {
	var waste []Pile
	if r.Waste != nil {
		waste = []Pile{*r.Waste}
	}
	var g Groups
	if r.Talon != nil {
		g.Talon = append(g.Talon, *r.Talon)
	}
	g.Talon = append(g.Talon, waste...)
	g.Drop = concat(r.Rows, r.Reserves, waste)
	g.Open = concat(r.Foundations, r.Rows, r.Reserves)
	g.Reserve = concat(r.Reserves)
	return g
}

func concat(parts ...[]Pile) []Pile {
	var out []Pile
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
