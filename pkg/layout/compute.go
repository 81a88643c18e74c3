package layout

// Compute runs the layout algorithm of family over p.
//
// The computation is pure: identical inputs always produce identical
// results, and each call allocates a fresh [Result]. Invalid or
// contradictory parameters fail with an INVALID_CONFIG error before any
// pile is placed.
func Compute(family Family, p Params) (*Result, error) {
	spec, ok := lookupFamily(family)
	if !ok {
		return nil, unknownFamily(family)
	}
	if err := spec.validate(p); err != nil {
		return nil, err
	}
	b := newBuilder(family, p)
	spec.build(b)
	return b.finish()
}

// MustCompute is like Compute but panics on error. It is meant for
// package-level fixtures and examples with known-good parameters.
func MustCompute(family Family, p Params) *Result {
	r, err := Compute(family, p)
	if err != nil {
		panic(err)
	}
	return r
}

// playHeight is the shared sizing heuristic: enough vertical room to show
// two thirds of a card plus playcards-1 stagger offsets.
func (b *builder) playHeight() int {
	return floorDiv(b.g.CH*2, 3) + (b.p.Playcards-1)*b.g.YOffset
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}
