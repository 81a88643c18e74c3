package region

import (
	"testing"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
)

func klondike(t *testing.T) *layout.Result {
	t.Helper()
	r, err := layout.Compute(layout.Klondike, layout.DefaultParams(layout.Klondike))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return r
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry[string]()
	if err := reg.Register(layout.Point{X: 1, Y: 2}, "a"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := reg.Register(layout.Point{X: 1, Y: 2}, "b"); !errors.Is(err, errors.ErrCodeDuplicatePile) {
		t.Errorf("Register(duplicate) error = %v, want %v", err, errors.ErrCodeDuplicatePile)
	}
	if h, ok := reg.Lookup(layout.Point{X: 1, Y: 2}); !ok || h != "a" {
		t.Errorf("Lookup() = %q, %v, want a, true", h, ok)
	}
	if _, ok := reg.Lookup(layout.Point{X: 9, Y: 9}); ok {
		t.Error("Lookup(missing) ok = true")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestResolve(t *testing.T) {
	res := klondike(t)
	reg := NewRegistry[int]()
	next := 0
	if err := RegisterAll(reg, res, func(layout.Pile) int { next++; return next - 1 }); err != nil {
		t.Fatalf("RegisterAll() error = %v", err)
	}
	if reg.Len() != res.Len() {
		t.Fatalf("Len() = %d, want %d", reg.Len(), res.Len())
	}

	resolved, err := Resolve(res.Regions, reg)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("resolved = %d, want 1", len(resolved))
	}
	// talon, waste and four foundations come first
	for i, h := range resolved[0].Handles {
		if want := 6 + i; h != want {
			t.Errorf("handle[%d] = %d, want %d", i, h, want)
		}
	}
}

func TestResolveMissingPile(t *testing.T) {
	res := klondike(t)
	reg := NewRegistry[layout.Pile]()
	for _, p := range res.All()[:len(res.All())-1] {
		if err := reg.Register(p.Point(), p); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}
	_, err := Resolve(res.Regions, reg)
	if !errors.Is(err, errors.ErrCodePileNotFound) {
		t.Errorf("Resolve() error = %v, want %v", err, errors.ErrCodePileNotFound)
	}
}

func TestHit(t *testing.T) {
	res := klondike(t)
	reg := NewRegistry[layout.Pile]()
	if err := RegisterAll(reg, res, func(p layout.Pile) layout.Pile { return p }); err != nil {
		t.Fatalf("RegisterAll() error = %v", err)
	}
	resolved, err := Resolve(res.Regions, reg)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	row := res.Rows[3]
	if r, ok := Hit(resolved, row.X, row.Y+200); !ok || len(r.Handles) != len(res.Rows) {
		t.Errorf("Hit(row) = %v, %v, want rows region", r, ok)
	}
	if _, ok := Hit(resolved, res.Talon.X, res.Talon.Y); ok {
		t.Error("Hit(talon) ok = true, want false")
	}
}
