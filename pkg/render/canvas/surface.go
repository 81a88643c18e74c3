// Package canvas draws a wired [render.Frame] with tdewolff/canvas and
// writes it as PNG, PDF or SVG.
//
// One layout unit maps to one canvas millimetre; the PNG writer scales
// that to pixels with [Options.Scale].
package canvas

import (
	"image/color"
	"io"
	"strconv"

	tdcanvas "github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/layout"
	"github.com/matzehuels/tableau/pkg/render"
)

const (
	ptPerUnit     = 72 / 25.4
	labelSize     = 14.0
	hintSize      = 10.0
	strokeWidth   = 1.5
	cornerRadius  = 4.0
	fanCards      = 3
	defaultFormat = "png"
)

// Formats lists the output formats [Surface.Write] accepts.
var Formats = []string{"png", "pdf", "svg"}

var kindColors = map[layout.Kind]color.RGBA{
	layout.KindTalon:      tdcanvas.Hex("#2b4c7e"),
	layout.KindWaste:      tdcanvas.Hex("#567ebb"),
	layout.KindFoundation: tdcanvas.Hex("#c9a227"),
	layout.KindRow:        tdcanvas.Hex("#f4f1ea"),
	layout.KindReserve:    tdcanvas.Hex("#8c6bb1"),
}

// Options configure a [Surface].
type Options struct {
	// Scale is pixels per layout unit for PNG output.
	Scale float64
	// Regions outlines the drop regions.
	Regions bool
}

// Surface renders one frame.
type Surface struct {
	frame *render.Frame
	opts  Options
	fonts *tdcanvas.FontFamily
}

// New prepares a surface for f.
func New(f *render.Frame, opts Options) (*Surface, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	family := tdcanvas.NewFontFamily("tableau")
	if err := family.LoadFont(goregular.TTF, 0, tdcanvas.FontRegular); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load label font")
	}
	return &Surface{frame: f, opts: opts, fonts: family}, nil
}

// Canvas draws the frame onto a new canvas.
func (s *Surface) Canvas() *tdcanvas.Canvas {
	scene := s.frame.Scene
	w, h := float64(scene.Width), float64(scene.Height)
	c := tdcanvas.New(w, h)
	ctx := tdcanvas.NewContext(c)
	ctx.SetCoordSystem(tdcanvas.CartesianIV)

	s.drawBackground(ctx)
	if scene.Hidden() {
		return c
	}
	if s.opts.Regions {
		s.drawRegions(ctx)
	}
	s.drawPiles(ctx)
	s.drawLabels(ctx)
	if o := scene.Overlay; o != nil {
		ctx.DrawImage(float64(o.X), float64(o.Y), o.Image, tdcanvas.DPMM(1))
	}
	return c
}

// Write encodes the frame in format, one of [Formats].
func (s *Surface) Write(w io.Writer, format string) error {
	if format == "" {
		format = defaultFormat
	}
	var writer tdcanvas.Writer
	switch format {
	case "png":
		writer = renderers.PNG(tdcanvas.DPMM(s.opts.Scale))
	case "pdf":
		writer = renderers.PDF()
	case "svg":
		writer = renderers.SVG()
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "canvas cannot write %q", format)
	}
	if err := writer(w, s.Canvas()); err != nil {
		return errors.Wrap(errors.ErrCodeAdapterIO, err, "write %s", format)
	}
	return nil
}

func (s *Surface) drawBackground(ctx *tdcanvas.Context) {
	scene := s.frame.Scene
	bg := scene.Background
	if bg.Image == nil {
		ctx.SetFillColor(bg.Color)
		ctx.SetStrokeColor(tdcanvas.Transparent)
		ctx.DrawPath(0, 0, tdcanvas.Rectangle(float64(scene.Width), float64(scene.Height)))
		return
	}
	ctx.DrawImage(0, 0, render.Compose(bg, scene.Width, scene.Height), tdcanvas.DPMM(1))
}

func (s *Surface) drawRegions(ctx *tdcanvas.Context) {
	scene := s.frame.Scene
	ctx.SetFillColor(color.RGBA{0xff, 0xff, 0xff, 0x18})
	ctx.SetStrokeColor(color.RGBA{0xff, 0xff, 0xff, 0x60})
	ctx.SetStrokeWidth(strokeWidth)
	ctx.SetDashes(0, 6, 4)
	for _, r := range scene.Regions {
		c := r.Rect.Clip(scene.Width, scene.Height)
		if c.X1 <= c.X0 || c.Y1 <= c.Y0 {
			continue
		}
		ctx.DrawPath(float64(c.X0), float64(c.Y0), tdcanvas.Rectangle(float64(c.X1-c.X0), float64(c.Y1-c.Y0)))
	}
	ctx.SetDashes(0)
}

func (s *Surface) drawPiles(ctx *tdcanvas.Context) {
	g := s.frame.Result.Geometry
	cw, ch := float64(g.CW), float64(g.CH)
	dx, dy := s.frame.Stagger()
	hint := s.fonts.Face(hintSize*ptPerUnit, color.RGBA{0x40, 0x40, 0x40, 0xff}, tdcanvas.FontRegular, tdcanvas.FontNormal)

	ctx.SetStrokeColor(tdcanvas.Hex("#1a1a1a"))
	ctx.SetStrokeWidth(strokeWidth)
	for _, p := range s.frame.Board.Piles {
		ctx.SetFillColor(kindColors[p.Kind])
		cards := 1
		if p.Kind == layout.KindRow {
			cards = fanCards
		}
		for i := 0; i < cards; i++ {
			x, y := float64(p.X+i*dx), float64(p.Y+i*dy)
			ctx.DrawPath(x, y, tdcanvas.RoundedRectangle(cw, ch, cornerRadius))
		}
		if p.HasSuit() {
			line := tdcanvas.NewTextLine(hint, strconv.Itoa(p.Suit), tdcanvas.Center)
			ctx.DrawText(float64(p.X)+cw/2, float64(p.Y)+ch/2+hint.Metrics().Ascent/2, line)
		}
	}
}

func (s *Surface) drawLabels(ctx *tdcanvas.Context) {
	face := s.fonts.Face(labelSize*ptPerUnit, s.frame.TextColor(), tdcanvas.FontRegular, tdcanvas.FontNormal)
	m := face.Metrics()
	for _, l := range s.frame.Scene.Labels {
		align := tdcanvas.Center
		switch l.Anchor.Horizontal() {
		case -1:
			align = tdcanvas.Left
		case 1:
			align = tdcanvas.Right
		}
		y := float64(l.At.Y)
		switch l.Anchor.Vertical() {
		case -1:
			y += m.Ascent
		case 0:
			y += (m.Ascent - m.Descent) / 2
		case 1:
			y -= m.Descent
		}
		ctx.DrawText(float64(l.At.X), y, tdcanvas.NewTextLine(face, l.Text(), align))
	}
}
