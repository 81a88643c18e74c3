package render

import (
	"github.com/matzehuels/tableau/pkg/layout"
)

// Label is a drawable running-count label. The surrounding game pushes
// count changes; the layout never updates labels itself.
type Label interface {
	SetCount(n int)
	Text() string
}

// Adapter is the boundary between the layout engine and a drawing surface.
type Adapter interface {
	CreateLabel(at layout.Point, anchor layout.Anchor, format layout.NumberFormat) (Label, error)
	SetInitialSize(width, height int)
	SetBackgroundImage(path string, stretch bool) bool
	SetOverlayImage(path string, width, height int) bool
	RegisterHitRegion(piles []layout.Pile, rect layout.Rect)
	// PreviewLevel reports the surface's detail reduction. Above 1 labels
	// are suppressed and stagger offsets are scaled down.
	PreviewLevel() int
}

// TextLabel is the label implementation used by [Scene].
type TextLabel struct {
	At     layout.Point
	Anchor layout.Anchor
	Format layout.NumberFormat
	Count  int
}

// SetCount implements [Label].
func (l *TextLabel) SetCount(n int) { l.Count = n }

// Text implements [Label].
func (l *TextLabel) Text() string { return l.Format.Format(l.Count) }

// PreviewOffsets scales stagger offsets down for a preview surface.
func PreviewOffsets(xoff, yoff, preview int) (int, int) {
	if preview > 1 {
		return xoff / preview, yoff / preview
	}
	return xoff, yoff
}
