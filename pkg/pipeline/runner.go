package pipeline

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/tableau/pkg/buildinfo"
	"github.com/matzehuels/tableau/pkg/cache"
	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/expr"
	"github.com/matzehuels/tableau/pkg/layout"
	"github.com/matzehuels/tableau/pkg/observability"
	"github.com/matzehuels/tableau/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete resolve → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if opts.Expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout expression is required")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.New().String(),
		Artifacts: make(map[string][]byte),
	}
	opts.runID = result.RunID
	logger := r.Logger.With("run", result.RunID)

	// Stage 1: Resolve
	family, params, err := opts.Catalog.Resolve(opts.Expr)
	observability.Pipeline().OnResolve(ctx, opts.Expr, string(family), err)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	if err := applyOverrides(&params, opts.Expr, opts.Overrides); err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Family = family
	result.Params = params

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, string(family))
	res, data, layoutHit, err := r.LayoutWithCacheInfo(ctx, family, params, opts)
	piles := 0
	if res != nil {
		piles = res.Len()
	}
	observability.Pipeline().OnLayoutComplete(ctx, string(family), piles, time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = res
	result.LayoutHash = cache.Hash(data)
	result.Stats.Piles = piles
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	logger.Info("computed layout",
		"family", family,
		"piles", result.Stats.Piles,
		"size", fmt.Sprintf("%dx%d", res.Width, res.Height),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res, result.LayoutHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes a layout with caching. It returns the layout,
// its JSON document and whether it came from cache.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, family layout.Family, params layout.Params, opts Options) (*layout.Result, []byte, bool, error) {
	r.applyLogger(&opts)
	cacheKey := r.Keyer.LayoutKey(family, params)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			res, err := sink.ParseJSON(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, observability.KeyLayout)
				return res, data, true, nil
			}
			opts.Logger.Debug("discarding cached layout", "key", cacheKey, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, observability.KeyLayout)
	}

	res, err := layout.Compute(family, params)
	if err != nil {
		return nil, nil, false, err
	}
	data, err := sink.RenderJSON(res)
	if err != nil {
		return nil, nil, false, err
	}
	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
		observability.Cache().OnCacheSet(ctx, observability.KeyLayout, len(data))
	}

	return res, data, false, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Formats missing from the cache are rendered concurrently.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res *layout.Result, layoutHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte)
	var missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, observability.KeyArtifact)
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, observability.KeyArtifact)
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, missing)
	rendered, err := Render(ctx, res, opts, missing)
	observability.Pipeline().OnRenderComplete(ctx, missing, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, observability.KeyArtifact, len(data))
		}
	}

	return artifacts, false, nil
}

// Visualize renders a previously computed layout document, skipping the
// resolve and layout stages.
func (r *Runner) Visualize(ctx context.Context, data []byte, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	res, err := sink.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result := &Result{
		RunID:      uuid.New().String(),
		Family:     res.Family,
		Params:     res.Params,
		Layout:     res,
		LayoutHash: cache.Hash(data),
	}
	result.Stats.Piles = res.Len()
	opts.runID = result.RunID

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res, result.LayoutHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit
	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// applyOverrides sets each override the expression leaves alone, in key order.
func applyOverrides(p *layout.Params, input string, overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	e, err := expr.Parse(input)
	if err != nil {
		return err
	}
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		if e.Has(key) {
			continue
		}
		if err := expr.Set(p, key, overrides[key]); err != nil {
			return err
		}
	}
	return nil
}

// documentMeta records the run that rendered the document. A cached json
// artifact keeps the id of the run that first produced it.
func documentMeta(opts Options) sink.DocumentMeta {
	return sink.DocumentMeta{RunID: opts.runID, Preset: opts.Expr, Version: buildinfo.Version}
}
