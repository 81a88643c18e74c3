// Package preset maps game names to layout families and parameters.
//
// The built-in catalog is embedded from presets.toml. A preset's params
// are overrides applied on top of [layout.DefaultParams] for its family.
package preset

import (
	_ "embed"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/expr"
	"github.com/matzehuels/tableau/pkg/layout"
)

//go:embed presets.toml
var builtin []byte

// Preset is one named game setup.
type Preset struct {
	Name    string         `toml:"-"`
	Family  layout.Family  `toml:"family"`
	Summary string         `toml:"summary"`
	Aliases []string       `toml:"aliases"`
	Params  map[string]any `toml:"params"`
}

// Resolve returns the preset's family and parameters.
func (p Preset) Resolve() (layout.Family, layout.Params, error) {
	f, err := layout.ParseFamily(string(p.Family))
	if err != nil {
		return "", layout.Params{}, err
	}
	params := layout.DefaultParams(f)
	for _, k := range slices.Sorted(maps.Keys(p.Params)) {
		if err := expr.Set(&params, k, p.Params[k]); err != nil {
			return "", layout.Params{}, errors.Wrap(errors.GetCode(err), err, "preset %s", p.Name)
		}
	}
	return f, params, nil
}

// Catalog is a set of presets addressable by name or alias.
type Catalog struct {
	presets []Preset
	byName  map[string]int
}

// Builtin returns the embedded catalog.
func Builtin() *Catalog {
	c, err := Parse(builtin)
	if err != nil {
		panic("preset: embedded catalog: " + err.Error())
	}
	return c
}

// Parse reads a catalog in the presets.toml format.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]Preset
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse presets")
	}
	c := &Catalog{byName: make(map[string]int)}
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		p := raw[name]
		p.Name = name
		if p.Family == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "preset %s: missing family", name)
		}
		if err := errors.ValidateName(name); err != nil {
			return nil, err
		}
		c.presets = append(c.presets, p)
	}
	for i, p := range c.presets {
		for _, n := range append([]string{p.Name}, p.Aliases...) {
			n = strings.ToLower(strings.TrimSpace(n))
			if j, dup := c.byName[n]; dup {
				return nil, errors.New(errors.ErrCodeInvalidConfig, "preset name %q used by %s and %s", n, c.presets[j].Name, p.Name)
			}
			c.byName[n] = i
		}
	}
	return c, nil
}

// All returns the presets sorted by name.
func (c *Catalog) All() []Preset {
	return slices.Clone(c.presets)
}

// Names returns every preset name and alias.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.byName))
}

// Lookup finds a preset by name or alias, case-insensitively.
func (c *Catalog) Lookup(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if i, ok := c.byName[key]; ok {
		return c.presets[i], nil
	}
	return Preset{}, errors.Wrap(errors.ErrCodePresetNotFound,
		&errors.SuggestionError{Kind: "preset", Name: name, Suggestion: layout.Suggest(key, c.Names())},
		"unknown preset %q", name)
}

// Resolve evaluates a layout expression. The expression name is looked up
// as a preset first and as a family second; arguments override the
// resulting parameters.
func (c *Catalog) Resolve(input string) (layout.Family, layout.Params, error) {
	e, err := expr.Parse(input)
	if err != nil {
		return "", layout.Params{}, err
	}
	var (
		f      layout.Family
		params layout.Params
	)
	if p, perr := c.Lookup(e.Name); perr == nil {
		f, params, err = p.Resolve()
	} else if fam, ferr := layout.ParseFamily(e.Name); ferr == nil {
		f, params = fam, layout.DefaultParams(fam)
	} else {
		names := append(c.Names(), familyNames()...)
		return "", layout.Params{}, errors.Wrap(errors.ErrCodeNotFound,
			&errors.SuggestionError{Kind: "preset or family", Name: e.Name, Suggestion: layout.Suggest(e.Name, names)},
			"cannot resolve %q", e.Name)
	}
	if err != nil {
		return "", layout.Params{}, err
	}
	if err := e.Apply(&params); err != nil {
		return "", layout.Params{}, err
	}
	return f, params, nil
}

func familyNames() []string {
	fs := layout.Families()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}
