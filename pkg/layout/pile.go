package layout

import (
	"fmt"
	"strings"
)

// NoSuit marks a pile without a suit hint.
const NoSuit = -1

// Kind identifies which collection of a [Result] a pile belongs to.
type Kind uint8

const (
	KindTalon Kind = iota
	KindWaste
	KindFoundation
	KindRow
	KindReserve
)

var kindNames = [...]string{"talon", "waste", "foundation", "row", "reserve"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, n := range kindNames {
		if n == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown pile kind %q", b)
}

// Point is a pixel position on the drawing surface. The origin is the
// top-left corner and Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Pile is the position of one logical stack of cards.
//
// Within a single [Result] no two piles share the same (X, Y); the position
// is the pile's identity. Kind and Index record where the pile sits in the
// result and are informational only.
type Pile struct {
	Kind  Kind       `json:"kind"`
	Index int        `json:"index"`
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Suit  int        `json:"suit"`
	Label *LabelSpec `json:"label,omitempty"`
}

// Point returns the pile origin.
func (p Pile) Point() Point { return Point{p.X, p.Y} }

// HasSuit reports whether the pile carries a suit hint.
func (p Pile) HasSuit() bool { return p.Suit != NoSuit }

func (p Pile) String() string {
	return fmt.Sprintf("%s[%d]@%s", p.Kind, p.Index, p.Point())
}

// Anchor is the corner of a label's text box that sits on the label
// position, using the usual compass names.
type Anchor string

const (
	AnchorCenter Anchor = "center"
	AnchorN      Anchor = "n"
	AnchorS      Anchor = "s"
	AnchorE      Anchor = "e"
	AnchorW      Anchor = "w"
	AnchorNE     Anchor = "ne"
	AnchorNW     Anchor = "nw"
	AnchorSE     Anchor = "se"
	AnchorSW     Anchor = "sw"
)

// Valid reports whether a is one of the nine known anchors.
func (a Anchor) Valid() bool {
	switch a {
	case AnchorCenter, AnchorN, AnchorS, AnchorE, AnchorW,
		AnchorNE, AnchorNW, AnchorSE, AnchorSW:
		return true
	}
	return false
}

// Horizontal returns -1, 0 or 1 for anchors on the west edge, the middle
// or the east edge. A west anchor means the text extends to the right.
func (a Anchor) Horizontal() int {
	s := string(a)
	switch {
	case strings.HasSuffix(s, "w"):
		return -1
	case strings.HasSuffix(s, "e"):
		return 1
	}
	return 0
}

// Vertical returns -1, 0 or 1 for anchors on the north edge, the middle
// or the south edge.
func (a Anchor) Vertical() int {
	s := string(a)
	switch {
	case strings.HasPrefix(s, "n"):
		return -1
	case strings.HasPrefix(s, "s"):
		return 1
	}
	return 0
}

// NumberFormat is the printf verb used to render a pile's card count.
type NumberFormat string

const (
	FormatPlain  NumberFormat = "%d"
	FormatWidth2 NumberFormat = "%2d"
	FormatWidth3 NumberFormat = "%3d"
)

// Valid reports whether f is a supported count format.
func (f NumberFormat) Valid() bool {
	return f == FormatPlain || f == FormatWidth2 || f == FormatWidth3
}

// Format renders n. Unknown formats fall back to %d.
func (f NumberFormat) Format(n int) string {
	if !f.Valid() {
		f = FormatPlain
	}
	return fmt.Sprintf(string(f), n)
}

// LabelSpec describes where a running-count label attaches to a pile.
// X and Y are absolute surface coordinates.
type LabelSpec struct {
	X      int          `json:"x"`
	Y      int          `json:"y"`
	Anchor Anchor       `json:"anchor"`
	Format NumberFormat `json:"format"`
}

// Point returns the label position.
func (l LabelSpec) Point() Point { return Point{l.X, l.Y} }

// Offset returns the label position relative to the pile origin.
func (l LabelSpec) Offset(p Pile) (dx, dy int) {
	return l.X - p.X, l.Y - p.Y
}
