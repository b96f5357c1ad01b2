// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-shooter/pkg/engine"
)

const (
	buttonLeft  = "moveLeft"
	buttonRight = "moveRight"
	buttonFire  = "fire"
)

// SetupInputBindings registers the key bindings. Called once during
// scene setup, before the first input read.
func SetupInputBindings() {
	engo.Input.RegisterButton(buttonLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(buttonRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(buttonFire, engo.KeySpace)
}

// ReadInput samples the keyboard into the per-frame input state.
// Opposing directions held together cancel out.
func ReadInput() engine.InputState {
	var state engine.InputState
	if engo.Input.Button(buttonLeft).Down() {
		state.Movement -= 1
	}
	if engo.Input.Button(buttonRight).Down() {
		state.Movement += 1
	}
	state.Fire = engo.Input.Button(buttonFire).Down()
	return state
}
