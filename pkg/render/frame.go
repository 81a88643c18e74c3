package render

import (
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tableau/pkg/layout"
)

// Options configure [Build].
type Options struct {
	Background      string
	Stretch         bool
	Overlay         string
	OverlayWidth    int
	OverlayHeight   int
	BackgroundColor *color.RGBA
	// Counts seeds label counts by pile kind, e.g. 24 cards in the talon.
	Counts  map[layout.Kind]int
	Preview int
	Logger  *log.Logger
}

// Frame is a fully wired scene ready for a drawing backend.
type Frame struct {
	Result *layout.Result
	Scene  *Scene
	Board  *Board
}

// Build wires res onto a fresh [Scene]. Image failures are logged and
// leave the default background in place.
func Build(res *layout.Result, opts Options) (*Frame, error) {
	s := NewScene(opts.Preview, opts.Logger)
	if opts.BackgroundColor != nil {
		s.Background.Color = *opts.BackgroundColor
	}
	b, err := Setup(s, res)
	if err != nil {
		return nil, err
	}
	if opts.Background != "" {
		s.SetBackgroundImage(opts.Background, opts.Stretch)
	}
	if opts.Overlay != "" {
		s.SetOverlayImage(opts.Overlay, opts.OverlayWidth, opts.OverlayHeight)
	}
	for _, p := range []*layout.Pile{res.Talon, res.Waste} {
		if p == nil {
			continue
		}
		if n, ok := opts.Counts[p.Kind]; ok {
			b.SetCount(*p, n)
		}
	}
	s.logger.Debug("frame built", "family", res.Family, "piles", len(b.Piles),
		"labels", len(s.Labels), "regions", len(s.Regions))
	return &Frame{Result: res, Scene: s, Board: b}, nil
}

// Stagger returns the per-card offsets a backend should use when fanning
// cards on this frame.
func (f *Frame) Stagger() (int, int) {
	g := f.Result.Geometry
	return PreviewOffsets(g.XOffset, g.YOffset, f.Scene.PreviewLevel())
}

// TextColor returns the label colour for the frame's background.
func (f *Frame) TextColor() color.RGBA {
	return f.Scene.Background.TextColor()
}
