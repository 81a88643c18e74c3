// Package pipeline provides the resolve → layout → render pipeline shared
// by every tableau command.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: Evaluate a layout expression against the preset catalog
//  2. Layout: Compute pile positions for the resolved family and params
//  3. Render: Generate every requested output format
//
// Layouts and artifacts are cached by content key, and the formats of one
// run are rendered concurrently.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Expr:    "double-klondike(rows=10)",
//	    Formats: []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tableau/pkg/cache"
	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
	"github.com/matzehuels/tableau/pkg/preset"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultScale is the default PNG resolution in pixels per layout unit.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatPNG      = "png"
	FormatPDF      = "pdf"
	FormatJSON     = "json"
	FormatDOT      = "dot"
	FormatGraphviz = "graphviz"
)

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT, FormatGraphviz}

// Extension returns the file extension for an output format.
func Extension(format string) string {
	switch format {
	case FormatGraphviz:
		return "graphviz.svg"
	case FormatDOT:
		return "dot"
	}
	return format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Expr is a layout expression: a preset or family name with optional
	// parameter overrides, e.g. "freecell(reserves=6)".
	Expr string `json:"expr"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Background string   `json:"background,omitempty"`
	Stretch    bool     `json:"stretch,omitempty"`
	Overlay    string   `json:"overlay,omitempty"`
	Regions    bool     `json:"regions,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Refresh    bool     `json:"refresh,omitempty"`

	// Overrides are parameter defaults (e.g. card_width from the config
	// file) applied to every parameter the expression does not set itself.
	Overrides map[string]any `json:"overrides,omitempty"`

	// Counts seeds the talon and waste labels, keyed by pile kind.
	Counts map[layout.Kind]int `json:"counts,omitempty"`

	// Runtime options (not serialized)
	Catalog *preset.Catalog `json:"-"`
	Logger  *log.Logger     `json:"-"`

	validated bool
	runID     string
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID tags the run in logs and JSON output.
	RunID string

	Family layout.Family
	Params layout.Params
	Layout *layout.Result

	// LayoutHash is the content hash of the layout's JSON document.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Piles      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	for _, path := range []string{o.Background, o.Overlay} {
		if path == "" {
			continue
		}
		if err := errors.ValidateImagePath(path); err != nil {
			return err
		}
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %g", o.Scale)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Catalog == nil {
		o.Catalog = preset.Builtin()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:     format,
		Background: o.Background,
		Stretch:    o.Stretch,
		Overlay:    o.Overlay,
		Regions:    o.Regions,
		Scale:      o.Scale,
	}
	if len(o.Counts) > 0 {
		opts.Counts = make(map[string]int, len(o.Counts))
		for k, n := range o.Counts {
			opts.Counts[k.String()] = n
		}
	}
	if format == FormatJSON {
		opts.Expr = o.Expr
	}
	return opts
}

func dedupe(in []string) []string {
	var out []string
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
