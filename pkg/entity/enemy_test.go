// pkg/entity/enemy_test.go
package entity

import (
	"errors"
	"image/color"
	"testing"

	"github.com/opd-ai/go-shooter/pkg/assets"
	"github.com/opd-ai/go-shooter/pkg/physics"
	"github.com/opd-ai/go-shooter/pkg/render"
)

func testImageSprite(w, h int) *ImageSprite {
	return NewImageSprite(render.NewTextureFromPattern(w, h, nil, color.White))
}

func TestNewEnemy(t *testing.T) {
	sprite := testImageSprite(12, 8)
	enemy := NewEnemy("bogey", physics.Vector2D{X: 100, Y: -20}, 80, sprite)

	if !enemy.Alive {
		t.Error("new enemy should be alive")
	}
	if enemy.Label() != "bogey" {
		t.Errorf("Label() = %q, want %q", enemy.Label(), "bogey")
	}
}

func TestEnemy_Update(t *testing.T) {
	tests := []struct {
		name    string
		speed   float64
		seconds float64
	}{
		{name: "descending", speed: 80, seconds: 1},
		{name: "descending_frame_time", speed: 120, seconds: 0.016},
		{name: "ascending_negative_speed", speed: -40, seconds: 0.5},
		{name: "stationary", speed: 0, seconds: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := physics.Vector2D{X: 300, Y: 50}
			enemy := NewEnemy("e", start, tt.speed, testImageSprite(10, 10))
			enemy.Update(tt.seconds)

			if !closeTo(enemy.Position.X, start.X) {
				t.Errorf("x = %v, enemies must not drift horizontally", enemy.Position.X)
			}
			wantY := start.Y + tt.speed*tt.seconds
			if !closeTo(enemy.Position.Y, wantY) {
				t.Errorf("y = %v, want %v", enemy.Position.Y, wantY)
			}
		})
	}
}

func TestEnemy_BoundingRect(t *testing.T) {
	tests := []struct {
		name string
		pos  physics.Vector2D
		w, h int
	}{
		{name: "origin", pos: physics.Vector2D{}, w: 10, h: 10},
		{name: "offset_position", pos: physics.Vector2D{X: 123.5, Y: -44.25}, w: 7, h: 3},
		{name: "wide_sprite", pos: physics.Vector2D{X: 50, Y: 60}, w: 64, h: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enemy := NewEnemy("e", tt.pos, 10, testImageSprite(tt.w, tt.h))
			rect := enemy.BoundingRect()

			if rect.Center != tt.pos {
				t.Errorf("rect center = %v, want %v", rect.Center, tt.pos)
			}
			if rect.Width != float64(tt.w) || rect.Height != float64(tt.h) {
				t.Errorf("rect size = %vx%v, want %dx%d", rect.Width, rect.Height, tt.w, tt.h)
			}
		})
	}
}

func TestEnemy_BoundingRectTracksPosition(t *testing.T) {
	enemy := NewEnemy("e", physics.Vector2D{X: 10, Y: 0}, 100, testImageSprite(8, 8))

	before := enemy.BoundingRect()
	enemy.Update(1)
	after := enemy.BoundingRect()

	if before.Center == after.Center {
		t.Error("bounding rect should follow the enemy's movement")
	}
	if !closeTo(after.Center.Y, before.Center.Y+100) {
		t.Errorf("rect center y = %v, want %v", after.Center.Y, before.Center.Y+100)
	}
}

func TestEnemy_SpritePolymorphismInGeometry(t *testing.T) {
	// Two enemies at the same position with different sprite kinds
	// expose each sprite's own dimensions through their rects.
	pos := physics.Vector2D{X: 200, Y: 100}

	imageEnemy := NewEnemy("img", pos, 50, testImageSprite(12, 12))

	textSprite, err := NewTextSprite("invader", assets.GoRegular())
	if err != nil {
		t.Fatalf("NewTextSprite() error = %v", err)
	}
	textEnemy := NewEnemy("txt", pos, 50, textSprite)

	imgRect := imageEnemy.BoundingRect()
	txtRect := textEnemy.BoundingRect()

	if imgRect.Center != txtRect.Center {
		t.Error("both rects should center on the shared position")
	}
	if imgRect.Width != 12 || imgRect.Height != 12 {
		t.Errorf("image rect = %vx%v, want 12x12", imgRect.Width, imgRect.Height)
	}
	if txtRect.Width != float64(textSprite.Width()) || txtRect.Height != float64(textSprite.Height()) {
		t.Error("text rect should match the text sprite's own dimensions")
	}
	if txtRect.Width == imgRect.Width {
		t.Error("a seven-letter label should not measure exactly 12px wide")
	}
}

func TestEnemy_DrawDelegatesToSprite(t *testing.T) {
	pos := physics.Vector2D{X: 60, Y: 70}
	enemy := NewEnemy("e", pos, 10, testImageSprite(10, 10))
	ctx := &recordContext{}

	if err := enemy.Draw(ctx); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if len(ctx.calls) != 1 {
		t.Fatalf("Draw() issued %d commands, want 1", len(ctx.calls))
	}

	call := ctx.calls[0]
	if call.Params.Dest != pos {
		t.Errorf("dest = %v, want enemy position %v", call.Params.Dest, pos)
	}
	if !closeTo(call.Params.Offset.X, 0.5) || !closeTo(call.Params.Offset.Y, 0.5) {
		t.Errorf("offset = %v, sprites draw centered", call.Params.Offset)
	}
}

func TestEnemy_DrawPropagatesFailure(t *testing.T) {
	enemy := NewEnemy("e", physics.Vector2D{}, 10, testImageSprite(4, 4))
	if err := enemy.Draw(&recordContext{err: errRendererDown}); !errors.Is(err, errRendererDown) {
		t.Errorf("Draw() error = %v, want renderer failure", err)
	}
}
