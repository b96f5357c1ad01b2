// pkg/render/null.go
package render

import (
	"context"

	"github.com/opd-ai/go-shooter/pkg/logging"
)

// DrawCall records a single draw command issued against a NullContext.
type DrawCall struct {
	Texture *Texture
	Params  DrawParams
}

// NullContext is a Context that renders nothing. It debug-logs and
// records every draw command, which makes it the backend for headless
// runs and for tests that assert on draw behavior.
type NullContext struct {
	logger *logging.Logger
	calls  []DrawCall
	frames int
}

// NewNullContext creates a NullContext with structured logging.
func NewNullContext() *NullContext {
	return &NullContext{
		logger: logging.NewLogger().ForComponent("render.null"),
	}
}

// Draw implements Context.
func (c *NullContext) Draw(tex *Texture, p DrawParams) error {
	if tex == nil {
		return ErrNilTexture
	}
	c.calls = append(c.calls, DrawCall{Texture: tex, Params: p})
	c.logger.Debug(context.Background(), "draw",
		"dest_x", p.Dest.X,
		"dest_y", p.Dest.Y,
		"width", tex.Width(),
		"height", tex.Height(),
	)
	return nil
}

// Clear implements Context.
func (c *NullContext) Clear() {
	c.calls = c.calls[:0]
}

// Present implements Context.
func (c *NullContext) Present() error {
	c.frames++
	c.logger.Debug(context.Background(), "present", "frame", c.frames, "draw_calls", len(c.calls))
	return nil
}

// DrawCalls returns the commands recorded since the last Clear.
func (c *NullContext) DrawCalls() []DrawCall {
	return c.calls
}

// Frames returns how many frames have been presented.
func (c *NullContext) Frames() int {
	return c.frames
}
