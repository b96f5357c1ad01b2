// pkg/entity/shot.go
package entity

import (
	"github.com/opd-ai/go-shooter/pkg/assets"
	"github.com/opd-ai/go-shooter/pkg/physics"
	"github.com/opd-ai/go-shooter/pkg/render"
)

// Shot is a projectile fired by the player. It travels straight up at
// a constant speed; the collision and bounds systems flip Alive when
// it should be removed, and the owning collection discards it.
type Shot struct {
	Position physics.Vector2D
	Alive    bool

	velocity physics.Vector2D
}

// NewShot creates a live shot at pos moving upward at ShotSpeed. The
// velocity never changes after construction.
func NewShot(pos physics.Vector2D) *Shot {
	return &Shot{
		Position: pos,
		Alive:    true,
		velocity: physics.Vector2D{Y: -ShotSpeed},
	}
}

// Update advances the shot by one frame. No failure mode.
func (s *Shot) Update(seconds float64) {
	s.Position = s.Position.Add(s.velocity.Scale(seconds))
}

// Draw renders the shot at its current position, anchored at the
// texture's top-left corner.
func (s *Shot) Draw(ctx render.Context, bundle *assets.Bundle) error {
	tex, err := bundle.Texture(assets.ShotTexture)
	if err != nil {
		return err
	}
	return ctx.Draw(tex, render.At(s.Position))
}
