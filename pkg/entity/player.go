// pkg/entity/player.go

// Package entity defines the movable, drawable objects of the game:
// the player ship, its shots, and the descending enemies. Entities are
// plain single-threaded values driven once per frame by an external
// game loop; they never enforce game rules (cooldowns, collisions,
// removal) themselves.
package entity

import (
	"github.com/opd-ai/go-shooter/pkg/assets"
	"github.com/opd-ai/go-shooter/pkg/physics"
	"github.com/opd-ai/go-shooter/pkg/render"
)

// Fixed movement configuration, in world units per second.
const (
	PlayerSpeed = 500.0
	ShotSpeed   = 500.0
	ShotTimeout = 1.0 // seconds between allowed shots
)

// PlayerState enumerates the player's visual modes. Transitions are
// driven entirely by the game-loop collaborator.
type PlayerState int

const (
	StateNormal PlayerState = iota
	StateShooting
)

// Player is the user-controlled ship. It moves horizontally along the
// bottom of the playfield and is created once per session.
type Player struct {
	State    PlayerState
	Position physics.Vector2D

	// TimeUntilNextShot counts down to the next allowed shot. The
	// firing collaborator decrements, tests, and resets it; the
	// entity itself does not enforce the cooldown.
	TimeUntilNextShot float64

	velocity physics.Vector2D
}

// NewPlayer creates a player at pos in the Normal state with the
// cooldown started.
func NewPlayer(pos physics.Vector2D) *Player {
	return &Player{
		State:             StateNormal,
		Position:          pos,
		TimeUntilNextShot: ShotTimeout,
	}
}

// Update moves the player horizontally. amount is the input axis,
// conceptually in [-1, 1]; seconds is the frame's elapsed time. The
// resulting x is clamped to [0, maxRight]. There is no vertical
// movement and no failure mode.
func (p *Player) Update(amount, seconds, maxRight float64) {
	p.velocity.X = PlayerSpeed * amount
	newX := p.Position.X + p.velocity.X*seconds
	p.Position.X = physics.Clamp(newX, 0, maxRight)
}

// Draw renders the visual for the current state. The normal ship is
// anchored at its bottom center and drawn slightly scaled down; the
// shooting ship uses its own anchor tuned to line the muzzle up with
// the hull. Missing textures and renderer failures propagate.
func (p *Player) Draw(ctx render.Context, bundle *assets.Bundle) error {
	var name string
	var params render.DrawParams

	switch p.State {
	case StateShooting:
		name = assets.PlayerShooting
		params = render.At(p.Position).WithOffset(0.545, 0.96)
	default:
		name = assets.PlayerNormal
		params = render.At(p.Position).WithOffset(0.5, 1.0).WithScale(0.95, 0.95)
	}

	tex, err := bundle.Texture(name)
	if err != nil {
		return err
	}
	return ctx.Draw(tex, params)
}
