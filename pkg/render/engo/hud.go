// pkg/render/engo/hud.go
package engo

import (
	"fmt"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-shooter/pkg/engine"
)

const hudFontSize = 24

// HUD draws the score and lives line in the top-left corner, and the
// game-over banner once the session ends.
type HUD struct {
	font  *common.Font
	label visual
}

// NewHUD creates the HUD and registers its text entity with the render
// system. The font must already be preloaded with engo.Files.
func NewHUD(renderSystem *common.RenderSystem) (*HUD, error) {
	fnt := &common.Font{
		URL:  fontURL,
		Size: hudFontSize,
		FG:   color.White,
	}
	if err := fnt.CreatePreloaded(); err != nil {
		return nil, fmt.Errorf("creating hud font: %w", err)
	}

	hud := &HUD{font: fnt}
	hud.label = visual{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: common.Text{Font: fnt, Text: ""},
		},
		SpaceComponent: common.SpaceComponent{
			Position: engo.Point{X: 10, Y: 10},
		},
	}
	renderSystem.Add(&hud.label.BasicEntity, &hud.label.RenderComponent, &hud.label.SpaceComponent)
	return hud, nil
}

// Refresh redraws the status line from the current session state.
func (h *HUD) Refresh(g *engine.Game) {
	h.label.RenderComponent.Drawable = common.Text{
		Font: h.font,
		Text: statusLine(g.Score, g.Lives, g.Status),
	}
}

// statusLine formats the HUD text for the given session state.
func statusLine(score, lives int, status engine.GameStatus) string {
	switch status {
	case engine.GameStatusWaiting:
		return "press space to start"
	case engine.GameStatusEnded:
		return fmt.Sprintf("game over  score %d", score)
	default:
		return fmt.Sprintf("score %d  lives %d", score, lives)
	}
}
