// pkg/entity/text_sprite.go
package entity

import (
	"errors"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/opd-ai/go-shooter/pkg/physics"
	"github.com/opd-ai/go-shooter/pkg/render"
)

// textSpritePointSize is the fixed point size every text sprite is
// laid out at.
const textSpritePointSize = 16

// ErrNoFont is returned when a text sprite is constructed without a
// usable font.
var ErrNoFont = errors.New("entity: text sprite requires a font")

// TextSprite renders a short text label. The label is shaped and
// rasterized exactly once at construction; drawing afterwards cannot
// fail on the font path.
type TextSprite struct {
	label string
	tex   *render.Texture
}

// NewTextSprite lays out label at a fixed point size using fnt.
// It fails, returning no partial value, if the font is unusable.
func NewTextSprite(label string, fnt *truetype.Font) (*TextSprite, error) {
	if fnt == nil {
		return nil, ErrNoFont
	}

	face := truetype.NewFace(fnt, &truetype.Options{
		Size:    textSpritePointSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	width := font.MeasureString(face, label).Ceil()
	if width < 1 {
		width = 1
	}
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if height < 1 {
		height = 1
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	drawer.DrawString(label)

	return &TextSprite{
		label: label,
		tex:   render.NewTexture(img),
	}, nil
}

// Label returns the text this sprite renders.
func (s *TextSprite) Label() string {
	return s.label
}

// Draw implements Sprite.
func (s *TextSprite) Draw(center physics.Vector2D, ctx render.Context) error {
	return ctx.Draw(s.tex, render.At(center).WithOffset(0.5, 0.5))
}

// Width implements Sprite.
func (s *TextSprite) Width() int {
	return s.tex.Width()
}

// Height implements Sprite.
func (s *TextSprite) Height() int {
	return s.tex.Height()
}
