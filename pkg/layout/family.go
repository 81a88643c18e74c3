package layout

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/matzehuels/tableau/pkg/errors"
)

// Family names one closed-form layout algorithm.
type Family string

const (
	BakersDozen Family = "bakers-dozen"
	FreeCell    Family = "free-cell"
	Gypsy       Family = "gypsy"
	Harp        Family = "harp"
	Klondike    Family = "klondike"
	Yukon       Family = "yukon"
	Easy        Family = "easy"
	Samurai     Family = "samurai"
	Sumo        Family = "sumo"
	Fun         Family = "fun"
	Oonsoo      Family = "oonsoo"
	Ghulam      Family = "ghulam"
	Generic     Family = "generic"
)

// familySpec describes which knobs a family understands and how it builds.
type familySpec struct {
	name    Family
	summary string

	waste, reserves, texts bool
	usesPlaycards          bool
	usesRanks              bool

	defaults func(*Params)
	check    func(Params) error
	build    func(*builder)
}

func (s familySpec) validate(p Params) error {
	if err := p.validateCommon(s); err != nil {
		return err
	}
	if s.check != nil {
		return s.check(p)
	}
	return nil
}

var families = []familySpec{
	{
		name:          BakersDozen,
		summary:       "two row blocks, foundation column, talon below",
		usesPlaycards: true,
		defaults: func(p *Params) {
			p.Rows, p.Playcards = 13, 9
		},
		build: bakersDozen,
	},
	{
		name:     FreeCell,
		summary:  "reserves and foundations on top, rows below, corner talon",
		reserves: true, texts: true, usesPlaycards: true,
		defaults: func(p *Params) {
			p.Rows, p.Reserves, p.Playcards = 8, 4, 18
		},
		build: freeCell,
	},
	{
		name:    Gypsy,
		summary: "rows left, foundation columns right, talon and waste below",
		waste:   true, texts: true, usesPlaycards: true,
		defaults: func(p *Params) {
			p.Rows, p.Texts, p.Playcards = 8, true, 25
		},
		build: gypsy,
	},
	{
		name:    Harp,
		summary: "rows on top, foundations, waste and talon in a bottom strip",
		waste:   true, texts: true, usesPlaycards: true,
		defaults: func(p *Params) {
			p.Rows, p.Waste, p.Texts, p.Playcards = 9, true, true, 19
		},
		build: harp,
	},
	{
		name:    Klondike,
		summary: "talon, waste and foundations on top, rows below",
		waste:   true, texts: true, usesPlaycards: true,
		defaults: func(p *Params) {
			p.Rows, p.Waste, p.Texts, p.Playcards, p.Center = 7, true, true, 16, true
		},
		build: klondike,
	},
	{
		name:    Yukon,
		summary: "rows left, foundation column right, talon bottom left",
		texts:   true, usesPlaycards: true,
		defaults: func(p *Params) {
			p.Rows, p.Playcards = 7, 20
		},
		build: yukon,
	},
	{
		name:    Easy,
		summary: "talon and waste, one foundation per rank, rows below",
		waste:   true, texts: true, usesPlaycards: true, usesRanks: true,
		defaults: func(p *Params) {
			p.Rows, p.Waste, p.Texts, p.Playcards, p.Center = 7, true, true, 10, true
			p.Ranks = 4
		},
		build: easy,
	},
	{
		name:    Samurai,
		summary: "foundation columns left and right, rows between, talon below",
		waste:   true, texts: true, usesPlaycards: true,
		defaults: func(p *Params) {
			p.Rows, p.Waste, p.Texts, p.Playcards, p.Center = 8, true, true, 20, true
			p.Suits, p.Ranks = 12, 4
		},
		build: samurai,
	},
	{
		name:     Sumo,
		summary:  "twelve-suit foundation bands, centered rows, split reserves",
		reserves: true, texts: true, usesPlaycards: true,
		defaults: func(p *Params) {
			p.Rows, p.Reserves, p.Playcards = 8, 4, 12
			p.Suits, p.Ranks = 12, 4
		},
		check: func(p Params) error { return requireEven(Sumo, "reserves", p.Reserves) },
		build: sumo,
	},
	{
		name:     Fun,
		summary:  "two row bands, rank foundations and reserves on the right",
		reserves: true, texts: true, usesPlaycards: true, usesRanks: true,
		defaults: func(p *Params) {
			p.Rows, p.Reserves, p.Playcards = 8, 4, 12
			p.Suits, p.Ranks = 12, 4
		},
		check: func(p Params) error {
			if err := requireEven(Fun, "rows", p.Rows); err != nil {
				return err
			}
			return requireMultiple(Fun, "reserves", p.Reserves, p.Decks)
		},
		build: fun,
	},
	{
		name:     Oonsoo,
		summary:  "talon, two spaced row bands, reserve columns",
		reserves: true, texts: true, usesPlaycards: true,
		defaults: func(p *Params) {
			p.Rows, p.Reserves, p.Playcards = 12, 0, 12
			p.Suits, p.Ranks = 12, 4
		},
		check: func(p Params) error {
			if err := requireEven(Oonsoo, "rows", p.Rows); err != nil {
				return err
			}
			return requireMultiple(Oonsoo, "reserves", p.Reserves, p.Decks)
		},
		build: oonsoo,
	},
	{
		name:     Ghulam,
		summary:  "split foundation columns, two row bands, corner reserves",
		reserves: true,
		defaults: func(p *Params) {
			p.Rows = 8
			p.Suits, p.Ranks = 8, 12
		},
		check: func(p Params) error {
			if err := requireEven(Ghulam, "rows", p.Rows); err != nil {
				return err
			}
			return requireEven(Ghulam, "reserves", p.Reserves)
		},
		build: ghulam,
	},
	{
		name:    Generic,
		summary: "stacked talon and waste, two foundation bands, rows below",
		waste:   true, texts: true,
		defaults: func(p *Params) {
			p.Rows, p.Waste, p.Texts, p.Height = 8, true, true, 6
		},
		check: func(p Params) error {
			if p.Height < 1 {
				return errors.New(errors.ErrCodeInvalidConfig, "%s: height must be positive, got %d", Generic, p.Height)
			}
			return nil
		},
		build: generic,
	},
}

var familyAliases = map[string]Family{
	"bakersdozen": BakersDozen,
	"bakers":      BakersDozen,
	"freecell":    FreeCell,
	"samuri":      Samurai,
	"generiklon":  Generic,
}

func lookupFamily(f Family) (familySpec, bool) {
	for _, s := range families {
		if s.name == f {
			return s, true
		}
	}
	return familySpec{}, false
}

// Families returns every supported family in a stable order.
func Families() []Family {
	out := make([]Family, len(families))
	for i, s := range families {
		out[i] = s.name
	}
	return out
}

// Summary returns a one-line description of the family's arrangement.
func (f Family) Summary() string {
	if s, ok := lookupFamily(f); ok {
		return s.summary
	}
	return ""
}

// Supports reports which optional knobs the family understands.
func (f Family) Supports() (waste, reserves, texts bool) {
	s, _ := lookupFamily(f)
	return s.waste, s.reserves, s.texts
}

// ParseFamily resolves a family name, accepting a few historical aliases.
func ParseFamily(name string) (Family, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if f, ok := familyAliases[n]; ok {
		return f, nil
	}
	if _, ok := lookupFamily(Family(n)); ok {
		return Family(n), nil
	}
	return "", unknownFamily(Family(n))
}

func unknownFamily(f Family) error {
	names := make([]string, 0, len(families))
	for _, s := range families {
		names = append(names, string(s.name))
	}
	return errors.Wrap(errors.ErrCodeInvalidFamily,
		&errors.SuggestionError{Kind: "family", Name: string(f), Suggestion: Suggest(string(f), names)},
		"unknown layout family %q", f)
}

// Suggest returns the candidate closest to name by edit distance, or ""
// when nothing is reasonably close.
func Suggest(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/3) {
		return ""
	}
	return best
}
