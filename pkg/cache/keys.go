package cache

import (
	"fmt"

	"github.com/matzehuels/tableau/pkg/layout"
)

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey identifies the layout of family computed with params.
	LayoutKey(family layout.Family, params layout.Params) string
	// ArtifactKey identifies one rendering of a layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render inputs that affect an artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Background string  `json:"background,omitempty"`
	Stretch    bool    `json:"stretch,omitempty"`
	Overlay    string  `json:"overlay,omitempty"`
	Regions    bool    `json:"regions,omitempty"`
	Scale      float64 `json:"scale,omitempty"`

	// Counts are the label counts drawn, keyed by pile kind.
	Counts map[string]int `json:"counts,omitempty"`
	// Expr is recorded in JSON documents, so it only keys that format.
	Expr string `json:"expr,omitempty"`
}

// DefaultKeyer hashes its inputs under a versioned prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// keyVersion changes whenever layout output changes for the same inputs.
const keyVersion = "v1"

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(family layout.Family, params layout.Params) string {
	return hashKey(fmt.Sprintf("layout:%s:%s", keyVersion, family), params)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s:%s", keyVersion, opts.Format), layoutHash, opts)
}

// ScopedKeyer prefixes every key of an inner keyer, e.g. to keep the
// artifacts of two configurations apart in one cache directory.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (or the default keyer when nil).
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey implements [Keyer].
func (k *ScopedKeyer) LayoutKey(family layout.Family, params layout.Params) string {
	return k.prefix + k.inner.LayoutKey(family, params)
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
