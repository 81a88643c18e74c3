package expr

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		name  string
		canon string
	}{
		{"sumo", "sumo", "sumo"},
		{"Klondike()", "klondike", "klondike"},
		{"klondike(decks=2, rows=9)", "klondike", "klondike(decks=2, rows=9)"},
		{"free-cell( reserves = 6 , !center )", "free-cell", "free-cell(reserves=6, !center)"},
		{"gypsy(texts, Card-Width=60)", "gypsy", "gypsy(texts, card_width=60)"},
		{"harp(waste=off, trumps=yes)", "harp", "harp(waste=false, trumps=true)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if e.Name != tt.name {
				t.Errorf("Name = %q, want %q", e.Name, tt.name)
			}
			if got := e.String(); got != tt.canon {
				t.Errorf("String() = %q, want %q", got, tt.canon)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "klondike(", "klondike(rows=)", "klondike(rows=maybe)", "7"} {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Parse(%q) error = %v, want INVALID_INPUT", input, err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	e, err := Parse("klondike(decks=2, rows=9, !center, texts, card-height=120)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p := layout.DefaultParams(layout.Klondike)
	if err := e.Apply(&p); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if p.Decks != 2 || p.Rows != 9 || p.Center || !p.Texts || p.CardHeight != 120 {
		t.Errorf("Apply() params = %+v", p)
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		input string
		code  errors.Code
	}{
		{"klondike(rowz=3)", errors.ErrCodeInvalidConfig},
		{"klondike(waste=3)", errors.ErrCodeInvalidConfig},
		{"klondike(rows=true)", errors.ErrCodeInvalidConfig},
		{"klondike(rows)", errors.ErrCodeInvalidConfig},
		{"klondike(!rows=3)", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			p := layout.DefaultParams(layout.Klondike)
			if err := e.Apply(&p); !errors.Is(err, tt.code) {
				t.Errorf("Apply() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestSetSuggestion(t *testing.T) {
	var p layout.Params
	err := Set(&p, "rowz", 3)
	var s *errors.SuggestionError
	if !stderrors.As(err, &s) {
		t.Fatalf("Set() error = %v, want a suggestion", err)
	}
	if s.Suggestion != "rows" {
		t.Errorf("Suggestion = %q, want %q", s.Suggestion, "rows")
	}
}

func TestSetInt64(t *testing.T) {
	var p layout.Params
	if err := Set(&p, "decks", int64(3)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if p.Decks != 3 {
		t.Errorf("Decks = %d, want 3", p.Decks)
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 19 {
		t.Errorf("Keys() = %d keys, want 19", len(keys))
	}
	if keys[0] != "card_height" {
		t.Errorf("Keys()[0] = %q, want card_height", keys[0])
	}
}

func TestHas(t *testing.T) {
	e, err := Parse("freecell(Card-Width=80, !texts)")
	if err != nil {
		t.Fatal(err)
	}
	for key, want := range map[string]bool{"card_width": true, "card-width": true, "texts": true, "rows": false} {
		if got := e.Has(key); got != want {
			t.Errorf("Has(%q) = %v, want %v", key, got, want)
		}
	}
}
