// Package region resolves layout drop regions against realized piles.
//
// A layout describes regions in terms of its own [layout.Pile] values. The
// caller realizes those piles as its own handles (game stacks, widgets,
// indices) and records them in a [Registry] keyed by position. [Resolve]
// then translates every region into handles. Resolution is total: a region
// that names a pile the caller never realized is an engine or adapter
// defect and fails with PILE_NOT_FOUND.
package region

import (
	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
)

// Registry maps pile positions to caller-owned handles.
type Registry[H any] struct {
	index   map[layout.Point]int
	handles []H
}

// NewRegistry returns an empty registry.
func NewRegistry[H any]() *Registry[H] {
	return &Registry[H]{index: make(map[layout.Point]int)}
}

// Register records h as the handle for the pile at p.
func (r *Registry[H]) Register(p layout.Point, h H) error {
	if _, ok := r.index[p]; ok {
		return errors.New(errors.ErrCodeDuplicatePile, "pile already registered at %s", p)
	}
	r.index[p] = len(r.handles)
	r.handles = append(r.handles, h)
	return nil
}

// Lookup returns the handle registered at p.
func (r *Registry[H]) Lookup(p layout.Point) (H, bool) {
	i, ok := r.index[p]
	if !ok {
		var zero H
		return zero, false
	}
	return r.handles[i], true
}

// Len returns the number of registered handles.
func (r *Registry[H]) Len() int { return len(r.handles) }

// Handles returns the handles in registration order.
func (r *Registry[H]) Handles() []H {
	return append([]H(nil), r.handles...)
}

// RegisterAll realizes every pile of res, in canonical order, with realize
// and registers the result.
func RegisterAll[H any](reg *Registry[H], res *layout.Result, realize func(layout.Pile) H) error {
	for _, p := range res.All() {
		if err := reg.Register(p.Point(), realize(p)); err != nil {
			return err
		}
	}
	return nil
}

// Resolved is a region whose piles have been translated to handles.
type Resolved[H any] struct {
	Handles []H
	Piles   []layout.Pile
	Rect    layout.Rect
}

// Resolve translates regions into handles from reg.
func Resolve[H any](regions []layout.Region, reg *Registry[H]) ([]Resolved[H], error) {
	out := make([]Resolved[H], 0, len(regions))
	for i, rg := range regions {
		res := Resolved[H]{
			Handles: make([]H, 0, len(rg.Piles)),
			Piles:   rg.Piles,
			Rect:    rg.Rect,
		}
		for _, p := range rg.Piles {
			h, ok := reg.Lookup(p.Point())
			if !ok {
				return nil, errors.New(errors.ErrCodePileNotFound,
					"region %d references unrealized pile %s", i, p)
			}
			res.Handles = append(res.Handles, h)
		}
		out = append(out, res)
	}
	return out, nil
}

// Hit returns the first resolved region containing (x, y).
func Hit[H any](regions []Resolved[H], x, y int) (Resolved[H], bool) {
	for _, r := range regions {
		if r.Rect.Contains(x, y) {
			return r, true
		}
	}
	return Resolved[H]{}, false
}
