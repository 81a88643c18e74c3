package render

import (
	"image"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tableau/pkg/layout"
)

// HitRegion is a drop region as registered by [Setup].
type HitRegion struct {
	Piles []layout.Pile
	Rect  layout.Rect
}

// Overlay is the centered top image.
type Overlay struct {
	Path  string
	Image image.Image
	X, Y  int
}

// Scene is an in-memory [Adapter]. It records everything the layout
// wiring asks for; the drawing backends read it back.
type Scene struct {
	Width, Height int
	Background    *Background
	Overlay       *Overlay
	Labels        []*TextLabel
	Regions       []HitRegion

	preview int
	hidden  bool
	logger  *log.Logger
}

// NewScene returns an empty scene at the given preview level. A nil
// logger discards.
func NewScene(preview int, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scene{
		Background: NewBackground(),
		preview:    preview,
		logger:     logger,
	}
}

// CreateLabel implements [Adapter].
func (s *Scene) CreateLabel(at layout.Point, anchor layout.Anchor, format layout.NumberFormat) (Label, error) {
	l := &TextLabel{At: at, Anchor: anchor, Format: format}
	s.Labels = append(s.Labels, l)
	return l, nil
}

// SetInitialSize implements [Adapter].
func (s *Scene) SetInitialSize(width, height int) {
	s.Width, s.Height = width, height
	s.Background.SetMinSize(width, height)
	s.Background.Resize(width, height)
}

// SetBackgroundImage implements [Adapter]. An empty path clears the image.
func (s *Scene) SetBackgroundImage(path string, stretch bool) bool {
	if path == "" {
		s.Background.SetImage("", nil, false)
		return true
	}
	img, err := LoadImage(path)
	if err != nil {
		s.logger.Warn("background image not loaded", "path", path, "err", err)
		return false
	}
	s.Background.SetImage(path, img, stretch)
	s.Background.Resize(s.Width, s.Height)
	return true
}

// SetOverlayImage implements [Adapter]. The image is centered on a
// width x height area, or on the surface when width is not positive.
func (s *Scene) SetOverlayImage(path string, width, height int) bool {
	if path == "" {
		s.Overlay = nil
		return true
	}
	img, err := LoadImage(path)
	if err != nil {
		s.logger.Warn("overlay image not loaded", "path", path, "err", err)
		return false
	}
	if width <= 0 {
		width, height = s.Width, s.Height
	}
	size := img.Bounds().Size()
	x, y := CenterOverlay(size.X, size.Y, width, height)
	s.Overlay = &Overlay{Path: path, Image: img, X: x, Y: y}
	return true
}

// RegisterHitRegion implements [Adapter].
func (s *Scene) RegisterHitRegion(piles []layout.Pile, rect layout.Rect) {
	s.Regions = append(s.Regions, HitRegion{Piles: piles, Rect: rect})
}

// PreviewLevel implements [Adapter].
func (s *Scene) PreviewLevel() int { return s.preview }

// Resize grows the surface and retiles the background.
func (s *Scene) Resize(width, height int) []Tile {
	s.Width, s.Height = max(width, s.Width), max(height, s.Height)
	return s.Background.Resize(width, height)
}

// Hide marks every item hidden, as when a game is paused.
func (s *Scene) Hide() { s.hidden = true }

// Show reverses [Scene.Hide].
func (s *Scene) Show() { s.hidden = false }

// Hidden reports whether the scene is paused.
func (s *Scene) Hidden() bool { return s.hidden }
