// pkg/render/terminal.go
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-shooter/pkg/physics"
)

// TerminalContext renders textures into terminal cells through tcell.
// World coordinates are divided by cellSize to pick a cell; any texture
// pixel with more than half alpha lights its cell with the pixel color.
type TerminalContext struct {
	screen   tcell.Screen
	cellSize float64
}

// NewTerminalContext wraps an initialized tcell screen. cellSize is the
// number of world units covered by one terminal cell and must be
// positive; 16 maps a 1024-unit playfield onto 64 columns.
func NewTerminalContext(screen tcell.Screen, cellSize float64) *TerminalContext {
	if cellSize <= 0 {
		cellSize = 16
	}
	return &TerminalContext{screen: screen, cellSize: cellSize}
}

// Draw implements Context.
func (c *TerminalContext) Draw(tex *Texture, p DrawParams) error {
	if tex == nil {
		return ErrNilTexture
	}

	topLeft := p.TopLeft(tex)
	img := tex.Image()
	cols, rows := c.screen.Size()

	for py := 0; py < tex.Height(); py++ {
		for px := 0; px < tex.Width(); px++ {
			r, g, b, a := img.At(px, py).RGBA()
			if a < 0x8000 {
				continue
			}

			world := topLeft.Add(physics.Vector2D{
				X: float64(px) * p.Scale.X,
				Y: float64(py) * p.Scale.Y,
			})
			cx := int(world.X / c.cellSize)
			cy := int(world.Y / c.cellSize)
			if cx < 0 || cx >= cols || cy < 0 || cy >= rows {
				continue
			}

			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
				int32(r>>8), int32(g>>8), int32(b>>8),
			))
			c.screen.SetContent(cx, cy, '█', nil, style)
		}
	}

	return nil
}

// Clear implements Context.
func (c *TerminalContext) Clear() {
	c.screen.Clear()
}

// Present implements Context.
func (c *TerminalContext) Present() error {
	c.screen.Show()
	return nil
}
