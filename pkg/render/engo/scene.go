// pkg/render/engo/scene.go
package engo

import (
	"bytes"
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/go-shooter/pkg/config"
	"github.com/opd-ai/go-shooter/pkg/engine"
	"github.com/opd-ai/go-shooter/pkg/logging"
)

// fontURL is the virtual path the HUD font is preloaded under.
const fontURL = "fonts/goregular.ttf"

// GameScene wires a game session into Engo's scene lifecycle.
type GameScene struct {
	game   *engine.Game
	logger *logging.Logger
}

// NewGameScene creates a scene around an existing session.
func NewGameScene(game *engine.Game) *GameScene {
	return &GameScene{
		game:   game,
		logger: logging.NewLogger().ForComponent("engo.scene"),
	}
}

// Type identifies the scene to Engo.
func (s *GameScene) Type() string {
	return "game"
}

// Preload stages the embedded HUD font with the asset loader.
func (s *GameScene) Preload() {
	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(goregular.TTF)); err != nil {
		s.logger.Warn(context.Background(), "hud font preload failed", "error", err.Error())
	}
}

// Setup builds the ECS world, binds input, and starts the session. The
// per-frame work happens in frameSystem.
func (s *GameScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		s.logger.Error(context.Background(), "unexpected updater type", nil)
		return
	}

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	SetupInputBindings()

	hud, err := NewHUD(renderSystem)
	if err != nil {
		// The session is playable without the status line.
		s.logger.Warn(context.Background(), "hud disabled", "error", err.Error())
	}

	world.AddSystem(&frameSystem{
		game:   s.game,
		ctx:    NewEngoContext(renderSystem),
		hud:    hud,
		logger: s.logger,
	})
}

// frameSystem runs the session every tick: sample input, advance the
// simulation, redraw.
type frameSystem struct {
	game   *engine.Game
	ctx    *EngoContext
	hud    *HUD
	logger *logging.Logger
}

// Update implements ecs.System.
func (f *frameSystem) Update(dt float32) {
	input := ReadInput()

	if f.game.Status == engine.GameStatusWaiting && input.Fire {
		f.game.Start()
	}
	f.game.Update(input, float64(dt))

	f.ctx.Clear()
	if err := f.game.Draw(f.ctx); err != nil {
		f.logger.Error(context.Background(), "frame draw failed", err)
	}
	if f.hud != nil {
		f.hud.Refresh(f.game)
	}
}

// Remove implements ecs.System.
func (f *frameSystem) Remove(ecs.BasicEntity) {}

// Run opens the window and hands control to Engo. It blocks until the
// window closes.
func Run(cfg *config.GameConfig, game *engine.Game) {
	opts := engo.RunOptions{
		Title:      cfg.Render.WindowTitle,
		Width:      int(cfg.ScreenWidth),
		Height:     int(cfg.ScreenHeight),
		Fullscreen: cfg.Render.Fullscreen,
	}
	engo.Run(opts, NewGameScene(game))
}
