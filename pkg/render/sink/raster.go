package sink

import (
	"bytes"

	"github.com/matzehuels/tableau/pkg/render"
	"github.com/matzehuels/tableau/pkg/render/canvas"
)

// RasterOption configures [RenderPNG] and [RenderPDF].
type RasterOption func(*rasterRenderer)

type rasterRenderer struct {
	scale   float64
	regions bool
}

// WithScale sets pixels per layout unit for PNG output (default 2.0).
func WithScale(s float64) RasterOption {
	return func(r *rasterRenderer) { r.scale = s }
}

// WithRegionOutlines draws the drop regions.
func WithRegionOutlines() RasterOption {
	return func(r *rasterRenderer) { r.regions = true }
}

// RenderPNG draws a wired frame as PNG.
func RenderPNG(f *render.Frame, opts ...RasterOption) ([]byte, error) {
	return rasterize(f, "png", opts)
}

// RenderPDF draws a wired frame as a single-page PDF.
func RenderPDF(f *render.Frame, opts ...RasterOption) ([]byte, error) {
	return rasterize(f, "pdf", opts)
}

func rasterize(f *render.Frame, format string, opts []RasterOption) ([]byte, error) {
	r := rasterRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	s, err := canvas.New(f, canvas.Options{Scale: r.scale, Regions: r.regions})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := s.Write(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
