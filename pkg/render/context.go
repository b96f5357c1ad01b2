// pkg/render/context.go

// Package render defines the drawing surface the game entities paint
// on each frame. Entities receive an opaque Context, issue draw
// commands against it, and propagate its failures unchanged; the
// concrete backend (engo window, terminal, headless) is chosen by the
// caller.
package render

import (
	"errors"

	"github.com/opd-ai/go-shooter/pkg/physics"
)

// ErrNilTexture is returned when a draw call is issued without a texture.
var ErrNilTexture = errors.New("render: nil texture")

// DrawParams positions a texture on the surface. Offset is the anchor
// point inside the texture in [0,1] per axis: (0,0) anchors the
// top-left corner at Dest, (0.5,0.5) centers the texture on it.
type DrawParams struct {
	Dest   physics.Vector2D
	Offset physics.Vector2D
	Scale  physics.Vector2D
}

// At returns params that place the texture's top-left corner at dest
// with no scaling. The zero DrawParams value would collapse the
// texture, so construction always starts here.
func At(dest physics.Vector2D) DrawParams {
	return DrawParams{Dest: dest, Scale: physics.Vector2D{X: 1, Y: 1}}
}

// WithOffset sets the anchor point.
func (p DrawParams) WithOffset(x, y float64) DrawParams {
	p.Offset = physics.Vector2D{X: x, Y: y}
	return p
}

// WithScale sets the scale factors.
func (p DrawParams) WithScale(x, y float64) DrawParams {
	p.Scale = physics.Vector2D{X: x, Y: y}
	return p
}

// TopLeft returns the world position of the texture's top-left corner
// after the offset anchor and scaling are applied.
func (p DrawParams) TopLeft(tex *Texture) physics.Vector2D {
	w := float64(tex.Width()) * p.Scale.X
	h := float64(tex.Height()) * p.Scale.Y
	return p.Dest.Sub(physics.Vector2D{X: w * p.Offset.X, Y: h * p.Offset.Y})
}

// Context is the per-frame rendering handle passed into every entity
// draw call. Implementations must tolerate being called once per
// entity per frame from a single goroutine.
type Context interface {
	// Draw paints the texture according to p. A nil texture or a
	// renderer-level failure is reported to the caller; no retries
	// happen at this level.
	Draw(tex *Texture, p DrawParams) error

	// Clear resets the surface at the start of a frame.
	Clear()

	// Present flushes the finished frame to the output device.
	Present() error
}
