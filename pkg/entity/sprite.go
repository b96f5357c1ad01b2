// pkg/entity/sprite.go
package entity

import (
	"github.com/opd-ai/go-shooter/pkg/physics"
	"github.com/opd-ai/go-shooter/pkg/render"
)

// Sprite is the visual representation owned by an Enemy, decoupling
// how an enemy looks from how it moves and collides. Each sprite
// instance belongs to exactly one enemy.
type Sprite interface {
	// Draw renders the sprite centered at center.
	Draw(center physics.Vector2D, ctx render.Context) error

	// Width and Height are the intrinsic pixel dimensions, used for
	// centering and bounding-box computation.
	Width() int
	Height() int
}

// ImageSprite renders a static texture.
type ImageSprite struct {
	tex *render.Texture
}

// NewImageSprite wraps a texture as an enemy sprite.
func NewImageSprite(tex *render.Texture) *ImageSprite {
	return &ImageSprite{tex: tex}
}

// Draw implements Sprite.
func (s *ImageSprite) Draw(center physics.Vector2D, ctx render.Context) error {
	return ctx.Draw(s.tex, render.At(center).WithOffset(0.5, 0.5))
}

// Width implements Sprite.
func (s *ImageSprite) Width() int {
	return s.tex.Width()
}

// Height implements Sprite.
func (s *ImageSprite) Height() int {
	return s.tex.Height()
}
