// pkg/entity/enemy.go
package entity

import (
	"github.com/opd-ai/go-shooter/pkg/physics"
	"github.com/opd-ai/go-shooter/pkg/render"
)

// Enemy is a descending entity that owns its Sprite exclusively. The
// external collision and bounds systems read BoundingRect and flip
// Alive; removal belongs to the owning collection.
type Enemy struct {
	Position physics.Vector2D
	Alive    bool

	label    string
	velocity physics.Vector2D
	sprite   Sprite
}

// NewEnemy creates a live enemy at pos moving vertically at speed
// (positive is downward in screen space; any sign is allowed). The
// sprite must be non-nil and becomes owned by the enemy.
func NewEnemy(label string, pos physics.Vector2D, speed float64, sprite Sprite) *Enemy {
	return &Enemy{
		Position: pos,
		Alive:    true,
		label:    label,
		velocity: physics.Vector2D{Y: speed},
		sprite:   sprite,
	}
}

// Label identifies the enemy for debugging and display.
func (e *Enemy) Label() string {
	return e.label
}

// Update advances the enemy by one frame.
func (e *Enemy) Update(seconds float64) {
	e.Position = e.Position.Add(e.velocity.Scale(seconds))
}

// Draw delegates to the owned sprite at the enemy's current position.
func (e *Enemy) Draw(ctx render.Context) error {
	return e.sprite.Draw(e.Position, ctx)
}

// BoundingRect derives the collision box from the current position and
// the sprite's dimensions. It is computed on every call, never cached,
// so it always tracks the position.
func (e *Enemy) BoundingRect() physics.Rect {
	return physics.Rect{
		Center: e.Position,
		Width:  float64(e.sprite.Width()),
		Height: float64(e.sprite.Height()),
	}
}
