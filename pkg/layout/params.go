package layout

import (
	"github.com/matzehuels/tableau/pkg/errors"
)

// Params are the shape parameters of a layout computation.
//
// The zero value is not usable; start from [DefaultParams] and override
// the fields a game needs.
type Params struct {
	Rows      int  `json:"rows"`
	Reserves  int  `json:"reserves"`
	Waste     bool `json:"waste"`
	Texts     bool `json:"texts"`
	Center    bool `json:"center"`
	Playcards int  `json:"playcards"`

	// Height is the generic family's surface height in card pitches.
	Height int `json:"height,omitempty"`
	// TextHeight is the initial label strip reserved above the Klondike
	// rows. It is replaced when a label is placed below the talon or waste.
	TextHeight int `json:"text_height,omitempty"`

	CardWidth  int `json:"card_width"`
	CardHeight int `json:"card_height"`
	MarginX    int `json:"margin_x"`
	MarginY    int `json:"margin_y"`
	OffsetX    int `json:"offset_x"`
	OffsetY    int `json:"offset_y"`

	Decks  int  `json:"decks"`
	Suits  int  `json:"suits"`
	Ranks  int  `json:"ranks"`
	Trumps bool `json:"trumps"`

	// Preview is the rendering adapter's preview level. Above 1 no label
	// descriptors are produced. Positions never depend on it.
	Preview int `json:"preview,omitempty"`
}

// Card and spacing defaults shared by every family.
const (
	DefaultCardWidth  = 71
	DefaultCardHeight = 96
	DefaultMargin     = 10
	DefaultOffsetX    = 0
	DefaultOffsetY    = 25
)

func baseParams() Params {
	return Params{
		CardWidth:  DefaultCardWidth,
		CardHeight: DefaultCardHeight,
		MarginX:    DefaultMargin,
		MarginY:    DefaultMargin,
		OffsetX:    DefaultOffsetX,
		OffsetY:    DefaultOffsetY,
		Decks:      1,
		Suits:      4,
		Ranks:      13,
	}
}

// DefaultParams returns the defaults for family. Unknown families get the
// shared card defaults only; [Compute] rejects them later.
func DefaultParams(family Family) Params {
	p := baseParams()
	if spec, ok := lookupFamily(family); ok {
		spec.defaults(&p)
	}
	return p
}

// suitCount is the number of foundation suits, counting trumps as a suit.
func (p Params) suitCount() int {
	if p.Trumps {
		return p.Suits + 1
	}
	return p.Suits
}

// Validate checks p against the rules of family.
func (p Params) Validate(family Family) error {
	spec, ok := lookupFamily(family)
	if !ok {
		return unknownFamily(family)
	}
	return spec.validate(p)
}

func (p Params) validateCommon(spec familySpec) error {
	f := spec.name
	switch {
	case p.Rows < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: rows must be positive, got %d", f, p.Rows)
	case p.Reserves < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: reserves cannot be negative, got %d", f, p.Reserves)
	case p.CardWidth <= 0 || p.CardHeight <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: card size must be positive, got %dx%d", f, p.CardWidth, p.CardHeight)
	case p.MarginX < 0 || p.MarginY < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: margins cannot be negative", f)
	case p.OffsetX < 0 || p.OffsetY < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: offsets cannot be negative", f)
	case p.Decks < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: decks must be positive, got %d", f, p.Decks)
	case p.Suits < 1:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: suits must be positive, got %d", f, p.Suits)
	case p.TextHeight < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: text height cannot be negative", f)
	case p.Preview < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "%s: preview level cannot be negative", f)
	}
	if spec.usesPlaycards && p.Playcards < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: playcards must be positive, got %d", f, p.Playcards)
	}
	if spec.usesRanks && p.Ranks < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: ranks must be positive, got %d", f, p.Ranks)
	}
	if p.Waste && !spec.waste {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: layout has no waste pile", f)
	}
	if p.Reserves > 0 && !spec.reserves {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: layout has no reserve piles", f)
	}
	if p.Texts && !spec.texts {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: layout does not support count labels", f)
	}
	return nil
}

func requireEven(f Family, what string, n int) error {
	if n%2 != 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: %s must be even, got %d", f, what, n)
	}
	return nil
}

func requireMultiple(f Family, what string, n, of int) error {
	if n%of != 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "%s: %s must be a multiple of %d, got %d", f, what, of, n)
	}
	return nil
}
