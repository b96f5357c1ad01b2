// pkg/render/terminal_test.go
package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-shooter/pkg/physics"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTerminalContext_DrawLightsCells(t *testing.T) {
	screen := newSimScreen(t)
	ctx := NewTerminalContext(screen, 10)

	tex := NewTextureFromPattern(1, 1, [][]int{{1}}, color.RGBA{255, 255, 255, 255})

	// World (50, 30) with cell size 10 lands on cell (5, 3).
	if err := ctx.Draw(tex, At(physics.Vector2D{X: 50, Y: 30})); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	mainc, _, _, _ := screen.GetContent(5, 3)
	if mainc != '█' {
		t.Errorf("cell (5,3) = %q, want block rune", mainc)
	}
}

func TestTerminalContext_OffscreenPixelsIgnored(t *testing.T) {
	screen := newSimScreen(t)
	ctx := NewTerminalContext(screen, 10)

	tex := NewTextureFromPattern(1, 1, [][]int{{1}}, color.White)

	// Well outside the 80x24 screen: must not panic, must not error.
	if err := ctx.Draw(tex, At(physics.Vector2D{X: 5000, Y: 5000})); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if err := ctx.Draw(tex, At(physics.Vector2D{X: -100, Y: -100})); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
}

func TestTerminalContext_TransparentPixelsSkipped(t *testing.T) {
	screen := newSimScreen(t)
	ctx := NewTerminalContext(screen, 10)

	tex := NewTextureFromPattern(1, 1, [][]int{{0}}, color.White)

	if err := ctx.Draw(tex, At(physics.Vector2D{X: 50, Y: 30})); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	mainc, _, _, _ := screen.GetContent(5, 3)
	if mainc == '█' {
		t.Error("transparent pixel should leave the cell untouched")
	}
}

func TestTerminalContext_NilTexture(t *testing.T) {
	screen := newSimScreen(t)
	ctx := NewTerminalContext(screen, 10)

	if err := ctx.Draw(nil, At(physics.Vector2D{})); err != ErrNilTexture {
		t.Errorf("Draw(nil) error = %v, want ErrNilTexture", err)
	}
}
