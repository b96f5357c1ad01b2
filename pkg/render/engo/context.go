// pkg/render/engo/context.go

// Package engo is the windowed frontend. It adapts the Engo game
// engine's retained-mode render system to the immediate-mode Context
// the entities draw against: every frame the context is cleared, the
// entities issue draw calls, and the calls become ECS entities that
// live until the next clear.
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-shooter/pkg/render"
)

// visual is the ECS entity backing one draw call.
type visual struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoContext implements render.Context on top of Engo's RenderSystem.
// Textures are converted to GPU drawables once and cached by identity.
type EngoContext struct {
	renderSystem *common.RenderSystem
	drawables    map[*render.Texture]common.Drawable

	frame []*visual
	pool  []*visual
}

// NewEngoContext creates a context that feeds the given render system.
func NewEngoContext(renderSystem *common.RenderSystem) *EngoContext {
	return &EngoContext{
		renderSystem: renderSystem,
		drawables:    make(map[*render.Texture]common.Drawable),
	}
}

// Draw implements render.Context.
func (c *EngoContext) Draw(tex *render.Texture, p render.DrawParams) error {
	if tex == nil {
		return render.ErrNilTexture
	}

	v := c.next()
	topLeft := p.TopLeft(tex)

	v.RenderComponent = common.RenderComponent{
		Drawable: c.drawable(tex),
		Scale:    engo.Point{X: float32(p.Scale.X), Y: float32(p.Scale.Y)},
	}
	v.SpaceComponent = common.SpaceComponent{
		Position: engo.Point{X: float32(topLeft.X), Y: float32(topLeft.Y)},
		Width:    float32(float64(tex.Width()) * p.Scale.X),
		Height:   float32(float64(tex.Height()) * p.Scale.Y),
	}

	c.renderSystem.Add(&v.BasicEntity, &v.RenderComponent, &v.SpaceComponent)
	c.frame = append(c.frame, v)
	return nil
}

// Clear drops the previous frame's entities from the render system and
// recycles them.
func (c *EngoContext) Clear() {
	for _, v := range c.frame {
		c.renderSystem.Remove(v.BasicEntity)
	}
	c.pool = append(c.pool, c.frame...)
	c.frame = c.frame[:0]
}

// Present implements render.Context. Engo presents the frame itself at
// the end of the update cycle, so there is nothing to flush here.
func (c *EngoContext) Present() error {
	return nil
}

// next returns a recycled visual or allocates a fresh one.
func (c *EngoContext) next() *visual {
	if n := len(c.pool); n > 0 {
		v := c.pool[n-1]
		c.pool = c.pool[:n-1]
		return v
	}
	return &visual{BasicEntity: ecs.NewBasic()}
}

// drawable converts a texture to a GPU drawable, caching the result.
func (c *EngoContext) drawable(tex *render.Texture) common.Drawable {
	if d, ok := c.drawables[tex]; ok {
		return d
	}
	d := common.NewTextureSingle(common.NewImageObject(tex.Image()))
	c.drawables[tex] = d
	return d
}
