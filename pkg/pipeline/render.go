package pipeline

import (
	"context"
	"fmt"
	"image/color"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
	"github.com/matzehuels/tableau/pkg/render"
	"github.com/matzehuels/tableau/pkg/render/sink"
)

// Render produces the given formats for a computed layout. The frame is
// built once and shared read-only by the format goroutines.
func Render(ctx context.Context, res *layout.Result, opts Options, formats []string) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	frame, err := render.Build(res, render.Options{
		Background: opts.Background,
		Stretch:    opts.Stretch,
		Overlay:    opts.Overlay,
		Counts:     opts.Counts,
		Preview:    res.Params.Preview,
		Logger:     opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	out := make(map[string][]byte, len(formats))

	g, gctx := errgroup.WithContext(ctx)
	for _, format := range formats {
		g.Go(func() error {
			data, err := renderFormat(gctx, frame, opts, format)
			if err != nil {
				return fmt.Errorf("%s: %w", format, err)
			}
			mu.Lock()
			out[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func renderFormat(ctx context.Context, f *render.Frame, opts Options, format string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch format {
	case FormatSVG:
		return sink.RenderSVG(f.Result, buildSVGOptions(f, opts)...), nil
	case FormatPNG:
		return sink.RenderPNG(f, buildRasterOptions(opts)...)
	case FormatPDF:
		return sink.RenderPDF(f, buildRasterOptions(opts)...)
	case FormatJSON:
		return sink.RenderJSON(f.Result, sink.WithMeta(documentMeta(opts)))
	case FormatDOT:
		return []byte(sink.ToDOT(f.Result)), nil
	case FormatGraphviz:
		return sink.RenderDOT(ctx, sink.ToDOT(f.Result), "svg")
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
}

func buildSVGOptions(f *render.Frame, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithBackground(hexColor(f.Scene.Background.Color), hexColor(f.TextColor())),
		sink.WithCounts(opts.Counts),
	}
	if opts.Regions {
		svgOpts = append(svgOpts, sink.WithRegions())
	}
	return svgOpts
}

func buildRasterOptions(opts Options) []sink.RasterOption {
	rasterOpts := []sink.RasterOption{sink.WithScale(opts.Scale)}
	if opts.Regions {
		rasterOpts = append(rasterOpts, sink.WithRegionOutlines())
	}
	return rasterOpts
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
