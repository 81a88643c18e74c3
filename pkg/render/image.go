package render

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/tableau/pkg/errors"
)

// LoadImage decodes a background or overlay image. Failures carry the
// ADAPTER_IO code.
func LoadImage(path string) (image.Image, error) {
	if err := errors.ValidateImagePath(path); err != nil {
		return nil, errors.Wrap(errors.ErrCodeAdapterIO, err, "load image %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAdapterIO, err, "load image %s", path)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAdapterIO, err, "decode image %s", path)
	}
	return img, nil
}

// Scale resizes img to w x h with bilinear filtering.
func Scale(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Compose flattens a background onto a w x h image, following the tile
// plan of the last resize. The solid colour shows wherever no tile lands.
func Compose(bg *Background, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg.Color), image.Point{}, draw.Src)
	if bg.Image == nil {
		return dst
	}
	for _, t := range bg.Tiles() {
		r := image.Rect(t.X, t.Y, t.X+t.W, t.Y+t.H)
		if bg.Stretch {
			draw.BiLinear.Scale(dst, r, bg.Image, bg.Image.Bounds(), draw.Over, nil)
			continue
		}
		draw.Draw(dst, r, bg.Image, bg.Image.Bounds().Min, draw.Over)
	}
	return dst
}
