package render

import (
	"image"
	"image/color"
)

// Tile is one placement of the background image on the surface.
type Tile struct {
	X, Y, W, H int
}

// PlanTiles covers a surfW x surfH surface with an imgW x imgH image. In
// stretch mode a single tile spans the surface; otherwise tiles repeat
// column by column from the top-left corner.
func PlanTiles(imgW, imgH, surfW, surfH int, stretch bool) []Tile {
	if imgW <= 0 || imgH <= 0 || surfW <= 0 || surfH <= 0 {
		return nil
	}
	if stretch {
		return []Tile{{0, 0, surfW, surfH}}
	}
	var tiles []Tile
	for x := 0; x < surfW-1; x += imgW {
		for y := 0; y < surfH-1; y += imgH {
			tiles = append(tiles, Tile{x, y, imgW, imgH})
		}
	}
	return tiles
}

// DefaultBackground is the felt green used when no image is set.
var DefaultBackground = color.RGBA{R: 0x00, G: 0x66, B: 0x33, A: 0xff}

// Background is the surface's backdrop: a solid colour, optionally covered
// by a tiled or stretched image. It owns its tiles and recreates them on
// every [Background.Resize].
type Background struct {
	Color   color.RGBA
	Path    string
	Image   image.Image
	Stretch bool

	minW, minH int
	tiles      []Tile
}

// NewBackground returns a background with the default colour.
func NewBackground() *Background {
	return &Background{Color: DefaultBackground}
}

// SetImage replaces the image. A nil image clears it.
func (b *Background) SetImage(path string, img image.Image, stretch bool) {
	b.Path, b.Image, b.Stretch = path, img, stretch
	b.tiles = nil
	if img == nil {
		b.Path, b.Stretch = "", false
	}
}

// SetMinSize records the configured surface size. Resizes never plan
// tiles for a smaller area.
func (b *Background) SetMinSize(w, h int) {
	b.minW, b.minH = w, h
}

// Resize discards the current tiles and plans new ones for a w x h surface.
func (b *Background) Resize(w, h int) []Tile {
	b.tiles = nil
	if b.Image == nil {
		return nil
	}
	sw, sh := max(w, b.minW), max(h, b.minH)
	size := b.Image.Bounds().Size()
	b.tiles = PlanTiles(size.X, size.Y, sw, sh, b.Stretch)
	return b.tiles
}

// Tiles returns the tiles of the last resize.
func (b *Background) Tiles() []Tile { return b.tiles }

// TextColor returns the label colour that reads best on b.
func (b *Background) TextColor() color.RGBA {
	c := color.Color(b.Color)
	if b.Image != nil {
		c = averageColor(b.Image)
	}
	return TextColorFor(c)
}

// TextColorFor returns white on dark backgrounds and black otherwise,
// using relative luminance.
func TextColorFor(bg color.Color) color.RGBA {
	r, g, bl, _ := bg.RGBA()
	lum := (0.212671*float64(r>>8) + 0.715160*float64(g>>8) + 0.072169*float64(bl>>8)) / 255
	if lum < 0.3 {
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return color.RGBA{0x00, 0x00, 0x00, 0xff}
}

// averageColor samples img on a coarse grid.
func averageColor(img image.Image) color.Color {
	b := img.Bounds()
	if b.Empty() {
		return color.Black
	}
	step := max(1, max(b.Dx(), b.Dy())/32)
	var r, g, bl, n uint64
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r, g, bl, n = r+uint64(cr>>8), g+uint64(cg>>8), bl+uint64(cb>>8), n+1
		}
	}
	return color.RGBA{uint8(r / n), uint8(g / n), uint8(bl / n), 0xff}
}

// CenterOverlay returns the top-left corner that centers an iw x ih image
// on a cw x ch surface.
func CenterOverlay(iw, ih, cw, ch int) (x, y int) {
	return floorDiv(cw-iw, 2), floorDiv(ch-ih, 2)
}

// floorDiv rounds toward negative infinity, matching the layout engine.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
