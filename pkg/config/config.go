// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// GameConfig contains configuration for a game session
type GameConfig struct {
	ScreenWidth  float64      `json:"screenWidth"`
	ScreenHeight float64      `json:"screenHeight"`
	Spawn        SpawnConfig  `json:"spawn"`
	Render       RenderConfig `json:"render"`
	Rules        GameRules    `json:"rules"`
}

// SpawnConfig controls how enemies enter the playfield
type SpawnConfig struct {
	Interval float64  `json:"interval"` // seconds between spawns
	MinSpeed float64  `json:"minSpeed"` // downward units/sec
	MaxSpeed float64  `json:"maxSpeed"`
	Labels   []string `json:"labels"` // pool of enemy labels
}

// RenderConfig selects and tunes the rendering backend
type RenderConfig struct {
	Backend     string  `json:"backend"`  // "engo", "terminal", or "null"
	CellSize    float64 `json:"cellSize"` // world units per terminal cell
	FontPath    string  `json:"fontPath"` // TTF for text sprites; empty uses the built-in face
	Fullscreen  bool    `json:"fullscreen"`
	WindowTitle string  `json:"windowTitle"`
}

// GameRules contains session rules
type GameRules struct {
	Lives     int     `json:"lives"`     // enemy breaches allowed before the game ends
	TimeLimit float64 `json:"timeLimit"` // seconds, 0 means unlimited
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects configurations the game loop cannot run with.
func (c *GameConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %vx%v", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Spawn.Interval <= 0 {
		return fmt.Errorf("invalid spawn interval %v", c.Spawn.Interval)
	}
	if c.Spawn.MaxSpeed < c.Spawn.MinSpeed {
		return fmt.Errorf("spawn maxSpeed %v below minSpeed %v", c.Spawn.MaxSpeed, c.Spawn.MinSpeed)
	}
	if c.Rules.Lives <= 0 {
		return fmt.Errorf("invalid lives %d", c.Rules.Lives)
	}
	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		Spawn: SpawnConfig{
			Interval: 1.5,
			MinSpeed: 60,
			MaxSpeed: 180,
			Labels: []string{
				"bandit", "bogey", "vandal", "raider",
				"corsair", "maverick", "drifter", "specter",
			},
		},
		Render: RenderConfig{
			Backend:     "engo",
			CellSize:    16,
			WindowTitle: "shooter",
		},
		Rules: GameRules{
			Lives: 3,
		},
	}
}
