package preset

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
)

func TestBuiltinPresetsCompute(t *testing.T) {
	c := Builtin()
	if len(c.All()) < 20 {
		t.Fatalf("Builtin() has %d presets", len(c.All()))
	}
	for _, p := range c.All() {
		t.Run(p.Name, func(t *testing.T) {
			f, params, err := p.Resolve()
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if _, err := layout.Compute(f, params); err != nil {
				t.Errorf("Compute(%s) error = %v", f, err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	c := Builtin()
	tests := []struct {
		name string
		want string
	}{
		{"klondike", "klondike"},
		{"KLONDIKE", "klondike"},
		{"solitaire", "klondike"},
		{" samuri ", "samurai"},
		{"bakers", "bakers-dozen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := c.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if p.Name != tt.want {
				t.Errorf("Lookup() = %s, want %s", p.Name, tt.want)
			}
		})
	}
}

func TestLookupMixedCaseAlias(t *testing.T) {
	c, err := Parse([]byte("[westcliff]\nfamily = \"klondike\"\naliases = [\"WestCliff-Patience\"]\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for _, name := range []string{"westcliff", "WESTCLIFF", "westcliff-patience", "WestCliff-Patience"} {
		t.Run(name, func(t *testing.T) {
			p, err := c.Lookup(name)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if p.Name != "westcliff" {
				t.Errorf("Lookup() = %s, want westcliff", p.Name)
			}
		})
	}
}

func TestParseCaseInsensitiveDuplicate(t *testing.T) {
	data := "[a]\nfamily = \"klondike\"\naliases = [\"Same\"]\n[b]\nfamily = \"yukon\"\naliases = [\"same\"]\n"
	if _, err := Parse([]byte(data)); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Parse() error = %v, want INVALID_CONFIG", err)
	}
}

func TestLookupSuggestion(t *testing.T) {
	_, err := Builtin().Lookup("klondyke")
	if !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Fatalf("Lookup() error = %v, want PRESET_NOT_FOUND", err)
	}
	var s *errors.SuggestionError
	if !stderrors.As(err, &s) || s.Suggestion != "klondike" {
		t.Errorf("Lookup() suggestion = %v, want klondike", err)
	}
}

func TestResolve(t *testing.T) {
	c := Builtin()
	tests := []struct {
		input  string
		family layout.Family
		check  func(layout.Params) bool
	}{
		{"double-klondike(rows=10)", layout.Klondike, func(p layout.Params) bool { return p.Decks == 2 && p.Rows == 10 }},
		{"spider", layout.Gypsy, func(p layout.Params) bool { return p.Rows == 10 && p.Playcards == 28 }},
		{"yukon(decks=2)", layout.Yukon, func(p layout.Params) bool { return p.Decks == 2 }},
		{"bakersdozen", layout.BakersDozen, func(p layout.Params) bool { return p.Rows == 13 }},
		{"ganjifa(!texts)", layout.Ghulam, func(p layout.Params) bool { return p.Reserves == 4 && p.Suits == 8 }},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, p, err := c.Resolve(tt.input)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if f != tt.family {
				t.Errorf("family = %s, want %s", f, tt.family)
			}
			if !tt.check(p) {
				t.Errorf("params = %+v", p)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	c := Builtin()
	tests := []struct {
		input string
		code  errors.Code
	}{
		{"canfield", errors.ErrCodeNotFound},
		{"klondike(", errors.ErrCodeInvalidInput},
		{"klondike(lanes=3)", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if _, _, err := c.Resolve(tt.input); !errors.Is(err, tt.code) {
				t.Errorf("Resolve() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"bad toml", "[a\nfamily=", errors.ErrCodeInvalidInput},
		{"missing family", "[a]\nsummary = \"x\"\n", errors.ErrCodeInvalidConfig},
		{"bad name", "[A_b]\nfamily = \"yukon\"\n", errors.ErrCodeInvalidInput},
		{"duplicate alias", "[a]\nfamily = \"yukon\"\naliases = [\"b\"]\n[b]\nfamily = \"gypsy\"\n", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestBadPresetParams(t *testing.T) {
	c, err := Parse([]byte("[x]\nfamily = \"yukon\"\nparams = { decks = true }\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p, err := c.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if _, _, err := p.Resolve(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Resolve() error = %v, want INVALID_CONFIG", err)
	}
}
