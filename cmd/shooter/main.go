// cmd/shooter/main.go
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/freetype/truetype"

	"github.com/opd-ai/go-shooter/pkg/assets"
	"github.com/opd-ai/go-shooter/pkg/config"
	"github.com/opd-ai/go-shooter/pkg/engine"
	"github.com/opd-ai/go-shooter/pkg/render"
	engorender "github.com/opd-ai/go-shooter/pkg/render/engo"
)

const terminalFrameRate = 30

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	backend := flag.String("renderer", "", "Renderer backend: 'engo' or 'terminal' (overrides config)")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Float64("width", 0, "Playfield width (overrides config)")
	height := flag.Float64("height", 0, "Playfield height (overrides config)")
	flag.Parse()

	// Load configuration
	var gameConfig *config.GameConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	// Apply command-line overrides
	if *backend != "" {
		gameConfig.Render.Backend = *backend
	}
	if *fullscreen {
		gameConfig.Render.Fullscreen = true
	}
	if *width > 0 {
		gameConfig.ScreenWidth = *width
	}
	if *height > 0 {
		gameConfig.ScreenHeight = *height
	}
	if err := gameConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	game := engine.NewGame(gameConfig, assets.DefaultBundle(), loadFont(gameConfig))

	switch gameConfig.Render.Backend {
	case "terminal":
		runTerminal(game, gameConfig)
	case "null":
		runHeadless(game)
	case "engo":
		fallthrough
	default:
		engorender.Run(gameConfig, game)
	}
}

// runHeadless steps the session against the recording renderer at a
// fixed timestep with no input until it ends. With no shots fired the
// session runs down its lives; useful for smoke-testing a config.
func runHeadless(game *engine.Game) {
	ctx := render.NewNullContext()
	game.Start()

	const step = 1.0 / 60
	for game.Status == engine.GameStatusActive {
		game.Update(engine.InputState{}, step)
		ctx.Clear()
		if err := game.Draw(ctx); err != nil {
			log.Fatalf("Draw failed: %v", err)
		}
		if err := ctx.Present(); err != nil {
			log.Fatalf("Present failed: %v", err)
		}
	}
	log.Printf("Game over after %d frames, final score %d", ctx.Frames(), game.Score)
}

// loadFont loads the configured label font, falling back to the
// embedded Go Regular face.
func loadFont(cfg *config.GameConfig) *truetype.Font {
	if cfg.Render.FontPath != "" {
		fnt, err := assets.LoadFont(cfg.Render.FontPath)
		if err == nil {
			return fnt
		}
		log.Printf("Failed to load font %s, using built-in: %v", cfg.Render.FontPath, err)
	}
	return assets.GoRegular()
}

// runTerminal drives the session against a tcell screen at a fixed
// frame rate. Arrow keys or A/D move, space fires, escape or Q quits.
// Terminals report key presses without releases, so each press steers
// for exactly one frame.
func runTerminal(game *engine.Game, cfg *config.GameConfig) {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create terminal screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize terminal screen: %v", err)
	}
	defer screen.Fini()

	ctx := render.NewTerminalContext(screen, cfg.Render.CellSize)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	game.Start()

	ticker := time.NewTicker(time.Second / terminalFrameRate)
	defer ticker.Stop()

	var input engine.InputState
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyLeft || ev.Rune() == 'a':
					input.Movement = -1
				case ev.Key() == tcell.KeyRight || ev.Rune() == 'd':
					input.Movement = 1
				case ev.Rune() == ' ':
					input.Fire = true
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			game.Update(input, now.Sub(last).Seconds())
			last = now
			input = engine.InputState{}

			ctx.Clear()
			if err := game.Draw(ctx); err != nil {
				log.Printf("Draw failed: %v", err)
				return
			}
			if err := ctx.Present(); err != nil {
				log.Printf("Present failed: %v", err)
				return
			}

			if game.Status == engine.GameStatusEnded {
				log.Printf("Game over, final score %d", game.Score)
				return
			}
		}
	}
}
