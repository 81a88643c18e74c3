package layout

import "math"

// Sentinels for rectangle edges that extend to the edge of the surface.
const (
	Unbounded    = math.MaxInt32
	UnboundedNeg = math.MinInt32
)

// Rect is an axis-aligned rectangle with inclusive edges. Any edge may be
// [Unbounded] or [UnboundedNeg].
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Contains reports whether (x, y) lies within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Clip returns r with unbounded edges replaced by the surface bounds.
func (r Rect) Clip(width, height int) Rect {
	c := r
	c.X0 = max(c.X0, 0)
	c.Y0 = max(c.Y0, 0)
	c.X1 = min(c.X1, width)
	c.Y1 = min(c.Y1, height)
	return c
}

// IsBounded reports whether every edge is finite.
func (r Rect) IsBounded() bool {
	return r.X0 != UnboundedNeg && r.Y0 != UnboundedNeg &&
		r.X1 != Unbounded && r.Y1 != Unbounded
}

// Region is a drop target: a set of piles that accept cards released
// anywhere inside Rect.
type Region struct {
	Piles []Pile
	Rect  Rect
}
