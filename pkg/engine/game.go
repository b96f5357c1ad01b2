// pkg/engine/game.go

// Package engine drives the game session. It is the external
// collaborator the entity package is written against: it owns the
// entity collections, enforces the firing cooldown, advances every
// entity each frame, resolves collisions through bounding rectangles,
// and removes whatever the frame left dead.
package engine

import (
	"context"
	"math/rand"

	"github.com/golang/freetype/truetype"

	"github.com/opd-ai/go-shooter/pkg/assets"
	"github.com/opd-ai/go-shooter/pkg/config"
	"github.com/opd-ai/go-shooter/pkg/entity"
	"github.com/opd-ai/go-shooter/pkg/event"
	"github.com/opd-ai/go-shooter/pkg/logging"
	"github.com/opd-ai/go-shooter/pkg/physics"
	"github.com/opd-ai/go-shooter/pkg/render"
)

// GameStatus tracks the session lifecycle.
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

// InputState is the per-frame input sample the frontend feeds into
// Update. Movement is the horizontal axis, conceptually in [-1, 1].
type InputState struct {
	Movement float64
	Fire     bool
}

// Game holds the session state and entity collections.
type Game struct {
	Config  *config.GameConfig
	Player  *entity.Player
	Shots   []*entity.Shot
	Enemies []*entity.Enemy

	EventBus    *event.Bus
	Score       int
	Lives       int
	Status      GameStatus
	ElapsedTime float64

	bundle     *assets.Bundle
	font       *truetype.Font
	rng        *rand.Rand
	spawnTimer float64
	spawnCount int
	logger     *logging.Logger

	// widest/tallest sprite spawned so far, used to inflate
	// broad-phase query areas
	maxSpriteW float64
	maxSpriteH float64
}

// NewGame creates a session over the given config, asset bundle, and
// text-sprite font. A nil font disables text sprites; enemies then
// always use the image sprite.
func NewGame(cfg *config.GameConfig, bundle *assets.Bundle, fnt *truetype.Font) *Game {
	return &Game{
		Config:     cfg,
		Player:     entity.NewPlayer(physics.Vector2D{X: cfg.ScreenWidth / 2, Y: cfg.ScreenHeight}),
		EventBus:   event.NewEventBus(),
		Lives:      cfg.Rules.Lives,
		Status:     GameStatusWaiting,
		bundle:     bundle,
		font:       fnt,
		rng:        rand.New(rand.NewSource(int64(rand.Uint64()))),
		spawnTimer: cfg.Spawn.Interval,
		logger:     logging.NewLogger().ForComponent("engine"),
	}
}

// Start activates the session.
func (g *Game) Start() {
	if g.Status != GameStatusWaiting {
		return
	}
	g.Status = GameStatusActive
	g.EventBus.Publish(event.NewGameEvent(event.GameStarted, g, 0))
	g.logger.Info(context.Background(), "game started",
		"lives", g.Lives,
		"spawn_interval", g.Config.Spawn.Interval,
	)
}

// Update advances the session by one frame. It is a no-op unless the
// session is active.
func (g *Game) Update(input InputState, seconds float64) {
	if g.Status != GameStatusActive {
		return
	}

	g.ElapsedTime += seconds
	if g.Config.Rules.TimeLimit > 0 && g.ElapsedTime >= g.Config.Rules.TimeLimit {
		g.end()
		return
	}

	g.updatePlayer(input, seconds)
	g.updateShots(seconds)
	g.updateSpawning(seconds)
	g.updateEnemies(seconds)
	g.resolveCollisions()
	g.prune()
}

// updatePlayer applies movement, drives the visual state, and enforces
// the firing cooldown. The cooldown lives on the player as plain
// mutable state; this is the collaborator that decrements and resets
// it.
func (g *Game) updatePlayer(input InputState, seconds float64) {
	g.Player.Update(input.Movement, seconds, g.Config.ScreenWidth)
	g.Player.TimeUntilNextShot -= seconds

	if !input.Fire {
		g.Player.State = entity.StateNormal
		return
	}

	g.Player.State = entity.StateShooting
	if g.Player.TimeUntilNextShot <= 0 {
		g.fireShot()
		g.Player.TimeUntilNextShot = entity.ShotTimeout
	}
}

// fireShot spawns a shot at the player's muzzle.
func (g *Game) fireShot() {
	muzzle := g.Player.Position
	shot := entity.NewShot(muzzle)
	g.Shots = append(g.Shots, shot)
	g.EventBus.Publish(&event.BaseEvent{EventType: event.ShotFired, Source: g})
	g.logger.Debug(context.Background(), "shot fired", "x", muzzle.X, "y", muzzle.Y)
}

// updateShots advances every shot and retires the ones that left the
// top of the screen.
func (g *Game) updateShots(seconds float64) {
	for _, shot := range g.Shots {
		shot.Update(seconds)
		if shot.Position.Y < 0 {
			shot.Alive = false
		}
	}
}

// updateSpawning ticks the spawn timer and produces new enemies.
func (g *Game) updateSpawning(seconds float64) {
	g.spawnTimer -= seconds
	for g.spawnTimer <= 0 {
		g.SpawnEnemy()
		g.spawnTimer += g.Config.Spawn.Interval
	}
}

// SpawnEnemy creates one enemy just above the top edge at a random
// column and speed, alternating between text and image sprites.
func (g *Game) SpawnEnemy() {
	spawn := g.Config.Spawn
	label := "enemy"
	if len(spawn.Labels) > 0 {
		label = spawn.Labels[g.rng.Intn(len(spawn.Labels))]
	}
	speed := spawn.MinSpeed + g.rng.Float64()*(spawn.MaxSpeed-spawn.MinSpeed)

	sprite := g.newEnemySprite(label)
	if sprite == nil {
		return
	}

	margin := float64(sprite.Width()) / 2
	x := margin + g.rng.Float64()*(g.Config.ScreenWidth-2*margin)
	pos := physics.Vector2D{X: x, Y: -float64(sprite.Height()) / 2}

	enemy := entity.NewEnemy(label, pos, speed, sprite)
	g.Enemies = append(g.Enemies, enemy)
	g.spawnCount++
	if w := float64(sprite.Width()); w > g.maxSpriteW {
		g.maxSpriteW = w
	}
	if h := float64(sprite.Height()); h > g.maxSpriteH {
		g.maxSpriteH = h
	}

	g.EventBus.Publish(event.NewEnemyEvent(event.EnemySpawned, g, label))
	g.logger.Debug(context.Background(), "enemy spawned",
		"label", label,
		"x", x,
		"speed", speed,
	)
}

// newEnemySprite alternates sprite kinds, falling back to the image
// sprite when the font is unavailable.
func (g *Game) newEnemySprite(label string) entity.Sprite {
	if g.font != nil && g.spawnCount%2 == 0 {
		sprite, err := entity.NewTextSprite(label, g.font)
		if err == nil {
			return sprite
		}
		g.logger.Warn(context.Background(), "text sprite failed, using image sprite",
			"label", label,
			"error", err.Error(),
		)
	}

	tex, err := g.bundle.Texture(assets.EnemyTexture)
	if err != nil {
		g.logger.Error(context.Background(), "no enemy texture, skipping spawn", err)
		return nil
	}
	return entity.NewImageSprite(tex)
}

// updateEnemies advances enemies and charges a life for each one that
// crosses the bottom edge.
func (g *Game) updateEnemies(seconds float64) {
	for _, enemy := range g.Enemies {
		enemy.Update(seconds)
		if !enemy.Alive {
			continue
		}
		if enemy.BoundingRect().Top() > g.Config.ScreenHeight {
			enemy.Alive = false
			g.loseLife(enemy, event.EnemyBreached)
		}
	}
}

// resolveCollisions tests shots and the player against enemy bounding
// rectangles. Enemy positions go through a quadtree broad phase; the
// precise test is the rect intersection the entities expose.
func (g *Game) resolveCollisions() {
	if len(g.Enemies) == 0 {
		return
	}

	bounds := physics.Rect{
		Center: physics.Vector2D{X: g.Config.ScreenWidth / 2, Y: g.Config.ScreenHeight / 2},
		Width:  g.Config.ScreenWidth * 2,
		Height: g.Config.ScreenHeight * 2,
	}
	index := physics.NewQuadTree(bounds, 8)
	for _, enemy := range g.Enemies {
		if enemy.Alive {
			index.Insert(enemy.Position, enemy)
		}
	}

	shotW, shotH := g.shotSize()
	for _, shot := range g.Shots {
		if !shot.Alive {
			continue
		}
		// Shots draw with a top-left anchor, so the box centers half a
		// texture below and right of the position.
		shotRect := physics.Rect{
			Center: shot.Position.Add(physics.Vector2D{X: shotW / 2, Y: shotH / 2}),
			Width:  shotW,
			Height: shotH,
		}
		area := physics.Rect{
			Center: shotRect.Center,
			Width:  shotRect.Width + g.maxSpriteW,
			Height: shotRect.Height + g.maxSpriteH,
		}

		for _, candidate := range index.Query(area) {
			enemy := candidate.(*entity.Enemy)
			if !enemy.Alive || !enemy.BoundingRect().Intersects(shotRect) {
				continue
			}
			enemy.Alive = false
			shot.Alive = false
			g.Score++
			g.EventBus.Publish(event.NewEnemyEvent(event.EnemyDestroyed, g, enemy.Label()))
			g.EventBus.Publish(event.NewScoreEvent(g, g.Score))
			break
		}
	}

	playerRect := g.playerRect()
	for _, candidate := range index.Query(physics.Rect{
		Center: playerRect.Center,
		Width:  playerRect.Width + g.maxSpriteW,
		Height: playerRect.Height + g.maxSpriteH,
	}) {
		enemy := candidate.(*entity.Enemy)
		if !enemy.Alive || !enemy.BoundingRect().Intersects(playerRect) {
			continue
		}
		enemy.Alive = false
		g.loseLife(enemy, event.EnemyDestroyed)
	}
}

// shotSize returns the shot texture dimensions, with a small default
// when the bundle has no shot texture.
func (g *Game) shotSize() (float64, float64) {
	tex, err := g.bundle.Texture(assets.ShotTexture)
	if err != nil {
		return 4, 4
	}
	return float64(tex.Width()), float64(tex.Height())
}

// playerRect derives the player's collision box from the normal
// texture, accounting for the bottom-center draw anchor.
func (g *Game) playerRect() physics.Rect {
	w, h := 16.0, 16.0
	if tex, err := g.bundle.Texture(assets.PlayerNormal); err == nil {
		w, h = float64(tex.Width()), float64(tex.Height())
	}
	return physics.Rect{
		Center: g.Player.Position.Sub(physics.Vector2D{Y: h / 2}),
		Width:  w,
		Height: h,
	}
}

// loseLife charges a life and ends the session when none remain.
func (g *Game) loseLife(enemy *entity.Enemy, reason event.Type) {
	g.Lives--
	g.EventBus.Publish(event.NewEnemyEvent(reason, g, enemy.Label()))
	g.logger.Info(context.Background(), "life lost",
		"enemy", enemy.Label(),
		"lives_left", g.Lives,
	)
	if g.Lives <= 0 {
		g.end()
	}
}

// end closes the session.
func (g *Game) end() {
	if g.Status == GameStatusEnded {
		return
	}
	g.Status = GameStatusEnded
	g.EventBus.Publish(event.NewGameEvent(event.GameEnded, g, g.Score))
	g.logger.Info(context.Background(), "game ended",
		"score", g.Score,
		"elapsed", g.ElapsedTime,
	)
}

// prune drops dead shots and enemies from the collections. Alive flags
// are set by the collision and bounds checks above or by external
// callers; this is the single place entities are actually removed.
func (g *Game) prune() {
	shots := g.Shots[:0]
	for _, shot := range g.Shots {
		if shot.Alive {
			shots = append(shots, shot)
		}
	}
	g.Shots = shots

	enemies := g.Enemies[:0]
	for _, enemy := range g.Enemies {
		if enemy.Alive {
			enemies = append(enemies, enemy)
		}
	}
	g.Enemies = enemies
}

// Draw renders the player, shots, and enemies against ctx. The first
// failure aborts the frame and propagates to the caller.
func (g *Game) Draw(ctx render.Context) error {
	if err := g.Player.Draw(ctx, g.bundle); err != nil {
		return logging.WrapError(err, "drawing player")
	}
	for _, shot := range g.Shots {
		if err := shot.Draw(ctx, g.bundle); err != nil {
			return logging.WrapError(err, "drawing shot")
		}
	}
	for _, enemy := range g.Enemies {
		if err := enemy.Draw(ctx); err != nil {
			return logging.WrapError(err, "drawing enemy %q", enemy.Label())
		}
	}
	return nil
}
