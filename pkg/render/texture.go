// pkg/render/texture.go
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Texture is a CPU-side image shared by every rendering backend.
// Backends convert it to whatever their device needs (GPU texture,
// terminal cells) and may cache that conversion, so the backing pixels
// must not be mutated after construction.
type Texture struct {
	img *image.NRGBA
}

// NewTexture copies img into a texture.
func NewTexture(img image.Image) *Texture {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	return &Texture{img: nrgba}
}

// NewTextureFromPattern builds a texture from a 2D pixel pattern:
// cells marked 1 are filled with fill, everything else stays
// transparent. Rows or columns beyond width/height are ignored.
func NewTextureFromPattern(width, height int, pattern [][]int, fill color.Color) *Texture {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y, row := range pattern {
		if y >= height {
			break
		}
		for x, pixel := range row {
			if x >= width {
				break
			}
			if pixel == 1 {
				img.Set(x, y, fill)
			}
		}
	}
	return &Texture{img: img}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the texture height in pixels.
func (t *Texture) Height() int {
	return t.img.Bounds().Dy()
}

// Image exposes the backing pixels for backend conversion. Treat the
// result as read-only.
func (t *Texture) Image() *image.NRGBA {
	return t.img
}
