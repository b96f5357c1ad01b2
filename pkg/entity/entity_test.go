// pkg/entity/entity_test.go
package entity

import (
	"errors"
	"math"

	"github.com/opd-ai/go-shooter/pkg/render"
)

// recordContext is a render.Context that records draw commands and can
// be primed to fail, for exercising error propagation.
type recordContext struct {
	calls []render.DrawCall
	err   error
}

func (c *recordContext) Draw(tex *render.Texture, p render.DrawParams) error {
	if c.err != nil {
		return c.err
	}
	c.calls = append(c.calls, render.DrawCall{Texture: tex, Params: p})
	return nil
}

func (c *recordContext) Clear() {
	c.calls = nil
}

func (c *recordContext) Present() error {
	return nil
}

var errRendererDown = errors.New("renderer context invalidated")

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
