// Package expr parses layout expressions such as
//
//	klondike(decks=2, rows=9)
//	freecell(reserves=6, !center)
//	sumo
//
// An expression names a preset or a layout family and lists parameter
// overrides. Values are integers or booleans; a bare key means true and a
// key prefixed with "!" means false.
package expr

import (
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
)

var (
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "Int", Pattern: `-?\d+`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[(),=!]`},
	})

	exprParser = participle.MustBuild[Expr](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace"),
	)
)

// Expr is a parsed layout expression.
type Expr struct {
	Pos  lexer.Position `parser:""`
	Name string         `parser:"@Ident"`
	Args []*Arg         `parser:"( '(' ( @@ ( ',' @@ )* )? ')' )?"`
}

// Arg is one key=value override.
type Arg struct {
	Pos    lexer.Position `parser:""`
	Negate bool           `parser:"@'!'?"`
	Key    string         `parser:"@Ident"`
	Value  *Value         `parser:"( '=' @@ )?"`
}

// Value is an integer or boolean literal.
type Value struct {
	Int  *int    `parser:"  @Int"`
	Bool *string `parser:"| @( 'true' | 'false' | 'yes' | 'no' | 'on' | 'off' )"`
}

// Parse parses an expression.
func Parse(input string) (*Expr, error) {
	e, err := exprParser.ParseString("", input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %q", input)
	}
	e.Name = strings.ToLower(e.Name)
	return e, nil
}

// String returns the canonical form of e, with keys normalized and in
// input order.
func (e *Expr) String() string {
	if len(e.Args) == 0 {
		return e.Name
	}
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return e.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Has reports whether e sets key, in any spelling [Set] accepts.
func (e *Expr) Has(key string) bool {
	key = normalizeKey(key)
	for _, a := range e.Args {
		if normalizeKey(a.Key) == key {
			return true
		}
	}
	return false
}

func (a *Arg) String() string {
	key := normalizeKey(a.Key)
	switch {
	case a.Negate:
		return "!" + key
	case a.Value == nil:
		return key
	case a.Value.Int != nil:
		return key + "=" + strconv.Itoa(*a.Value.Int)
	}
	return key + "=" + strconv.FormatBool(a.Value.boolean())
}

func (v *Value) boolean() bool {
	switch *v.Bool {
	case "true", "yes", "on":
		return true
	}
	return false
}

// Apply sets every argument of e on p.
func (e *Expr) Apply(p *layout.Params) error {
	for _, a := range e.Args {
		var err error
		switch {
		case a.Negate:
			if a.Value != nil {
				return errors.New(errors.ErrCodeInvalidInput, "%s: negated key %q takes no value", a.Pos, a.Key)
			}
			err = Set(p, a.Key, false)
		case a.Value == nil:
			err = Set(p, a.Key, true)
		case a.Value.Int != nil:
			err = Set(p, a.Key, *a.Value.Int)
		default:
			err = Set(p, a.Key, a.Value.boolean())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type field struct {
	i *int
	b *bool
}

func fields(p *layout.Params) map[string]field {
	return map[string]field{
		"rows":        {i: &p.Rows},
		"reserves":    {i: &p.Reserves},
		"waste":       {b: &p.Waste},
		"texts":       {b: &p.Texts},
		"center":      {b: &p.Center},
		"playcards":   {i: &p.Playcards},
		"height":      {i: &p.Height},
		"text_height": {i: &p.TextHeight},
		"card_width":  {i: &p.CardWidth},
		"card_height": {i: &p.CardHeight},
		"margin_x":    {i: &p.MarginX},
		"margin_y":    {i: &p.MarginY},
		"offset_x":    {i: &p.OffsetX},
		"offset_y":    {i: &p.OffsetY},
		"decks":       {i: &p.Decks},
		"suits":       {i: &p.Suits},
		"ranks":       {i: &p.Ranks},
		"trumps":      {b: &p.Trumps},
		"preview":     {i: &p.Preview},
	}
}

// Keys returns every parameter key [Set] accepts, sorted.
func Keys() []string {
	var p layout.Params
	keys := make([]string, 0, 19)
	for k := range fields(&p) {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "-", "_")
}

// Set assigns value to the parameter named key. Keys are case-insensitive
// and accept dashes for underscores. Integer values come as int or int64
// (TOML decodes integers as int64).
func Set(p *layout.Params, key string, value any) error {
	f, ok := fields(p)[normalizeKey(key)]
	if !ok {
		name := normalizeKey(key)
		return errors.Wrap(errors.ErrCodeInvalidConfig,
			&errors.SuggestionError{Kind: "parameter", Name: key, Suggestion: layout.Suggest(name, Keys())},
			"unknown parameter %q", key)
	}
	switch v := value.(type) {
	case bool:
		if f.b == nil {
			return errors.New(errors.ErrCodeInvalidConfig, "parameter %q takes an integer, got %t", key, v)
		}
		*f.b = v
	case int:
		if f.i == nil {
			return errors.New(errors.ErrCodeInvalidConfig, "parameter %q takes a boolean, got %d", key, v)
		}
		*f.i = v
	case int64:
		return Set(p, key, int(v))
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "parameter %q: unsupported value %v", key, value)
	}
	return nil
}
