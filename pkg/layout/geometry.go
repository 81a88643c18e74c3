package layout

import (
	"strings"

	"github.com/matzehuels/tableau/pkg/errors"
)

// LabelHeight is the vertical strip reserved for a count label placed
// below a pile.
const LabelHeight = 30

// Geometry holds the card metrics every family works with.
//
// XS and YS are the grid pitch: a card plus one margin.
type Geometry struct {
	CW, CH           int
	XM, YM           int
	XS, YS           int
	XOffset, YOffset int
	TextHeight       int
}

// NewGeometry derives the grid metrics from p.
func NewGeometry(p Params) Geometry {
	return Geometry{
		CW:         p.CardWidth,
		CH:         p.CardHeight,
		XM:         p.MarginX,
		YM:         p.MarginY,
		XS:         p.CardWidth + p.MarginX,
		YS:         p.CardHeight + p.MarginY,
		XOffset:    p.OffsetX,
		YOffset:    p.OffsetY,
		TextHeight: LabelHeight,
	}
}

// floorDiv is integer division rounding toward negative infinity. All
// centering arithmetic uses it so that layouts stay pixel exact.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Direction selects where a count label goes relative to its pile.
type Direction string

const (
	DirN  Direction = "n"
	DirNN Direction = "nn"
	DirS  Direction = "s"
	DirSS Direction = "ss"
	DirNW Direction = "nw"
	DirSW Direction = "sw"
	DirNE Direction = "ne"
	DirSE Direction = "se"
	DirE  Direction = "e"
)

var directionNames = map[string]Direction{
	"north":       DirN,
	"north-north": DirNN,
	"south":       DirS,
	"south-south": DirSS,
	"north-west":  DirNW,
	"south-west":  DirSW,
	"north-east":  DirNE,
	"south-east":  DirSE,
	"east":        DirE,
}

// ParseDirection accepts both the short ("se") and long ("south-east")
// spelling of a label direction.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := directionNames[s]; ok {
		return d, nil
	}
	switch d := Direction(s); d {
	case DirN, DirNN, DirS, DirSS, DirNW, DirSW, DirNE, DirSE, DirE:
		return d, nil
	}
	return "", errors.New(errors.ErrCodeInvalidAnchor, "unknown label direction %q", s)
}

// TextAttr returns the label placement for a pile at `at` in direction dir.
// East-side labels widen to three digits when more than one deck is in
// play.
func (g Geometry) TextAttr(at Point, dir Direction, decks int) (LabelSpec, error) {
	x, y := at.X, at.Y
	switch dir {
	case DirN:
		return LabelSpec{x + floorDiv(g.CW, 2), y - g.YM, AnchorCenter, FormatPlain}, nil
	case DirNN:
		return LabelSpec{x + floorDiv(g.CW, 2), y - g.YM, AnchorS, FormatPlain}, nil
	case DirS:
		return LabelSpec{x + floorDiv(g.CW, 2), y + g.YS, AnchorCenter, FormatPlain}, nil
	case DirSS:
		return LabelSpec{x + floorDiv(g.CW, 2), y + g.YS, AnchorN, FormatPlain}, nil
	case DirNW:
		return LabelSpec{x - g.XM, y, AnchorNE, FormatPlain}, nil
	case DirSW:
		return LabelSpec{x - g.XM, y + g.CH, AnchorSE, FormatPlain}, nil
	}
	f := FormatWidth2
	if decks > 1 {
		f = FormatWidth3
	}
	switch dir {
	case DirNE:
		return LabelSpec{x + g.XS, y, AnchorNW, f}, nil
	case DirSE:
		return LabelSpec{x + g.XS, y + g.CH, AnchorSW, f}, nil
	case DirE:
		return LabelSpec{x + g.XS, y + floorDiv(g.CH, 2), AnchorW, f}, nil
	}
	return LabelSpec{}, errors.New(errors.ErrCodeInvalidAnchor, "unknown label direction %q", dir)
}
