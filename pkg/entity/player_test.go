// pkg/entity/player_test.go
package entity

import (
	"errors"
	"testing"

	"github.com/opd-ai/go-shooter/pkg/assets"
	"github.com/opd-ai/go-shooter/pkg/physics"
)

func TestNewPlayer(t *testing.T) {
	pos := physics.Vector2D{X: 100, Y: 700}
	player := NewPlayer(pos)

	if player.State != StateNormal {
		t.Errorf("State = %v, want StateNormal", player.State)
	}
	if player.Position != pos {
		t.Errorf("Position = %v, want %v", player.Position, pos)
	}
	if player.TimeUntilNextShot != ShotTimeout {
		t.Errorf("TimeUntilNextShot = %v, want %v", player.TimeUntilNextShot, ShotTimeout)
	}
}

func TestPlayer_Update(t *testing.T) {
	tests := []struct {
		name      string
		startX    float64
		amount    float64
		seconds   float64
		maxRight  float64
		expectedX float64
	}{
		{
			name:      "full_right_one_second",
			startX:    0,
			amount:    1,
			seconds:   1,
			maxRight:  1000,
			expectedX: 500,
		},
		{
			name:      "clamped_left",
			startX:    10,
			amount:    -1,
			seconds:   1,
			maxRight:  1000,
			expectedX: 0,
		},
		{
			name:      "clamped_right",
			startX:    900,
			amount:    1,
			seconds:   1,
			maxRight:  1000,
			expectedX: 1000,
		},
		{
			name:      "no_input_no_movement",
			startX:    250,
			amount:    0,
			seconds:   1,
			maxRight:  1000,
			expectedX: 250,
		},
		{
			name:      "partial_axis_frame_time",
			startX:    100,
			amount:    0.5,
			seconds:   0.016,
			maxRight:  1000,
			expectedX: 100 + 500*0.016*0.5,
		},
		{
			name:      "zero_max_right_pins_to_origin",
			startX:    0,
			amount:    1,
			seconds:   1,
			maxRight:  0,
			expectedX: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := NewPlayer(physics.Vector2D{X: tt.startX, Y: 700})
			player.Update(tt.amount, tt.seconds, tt.maxRight)

			if !closeTo(player.Position.X, tt.expectedX) {
				t.Errorf("x = %v, want %v", player.Position.X, tt.expectedX)
			}
			if player.Position.X < 0 || player.Position.X > tt.maxRight {
				t.Errorf("x = %v escaped [0, %v]", player.Position.X, tt.maxRight)
			}
			if player.Position.Y != 700 {
				t.Errorf("y = %v, player must not move vertically", player.Position.Y)
			}
		})
	}
}

func TestPlayer_UpdateStaysInBounds(t *testing.T) {
	// Bounds hold for any mix of inputs applied over many frames.
	player := NewPlayer(physics.Vector2D{X: 400, Y: 700})
	const maxRight = 800.0

	inputs := []float64{1, 1, -1, 0.25, -2, 3, -0.5, 1, 1, 1, -1, -1, -1, -1}
	for _, amount := range inputs {
		player.Update(amount, 0.5, maxRight)
		if player.Position.X < 0 || player.Position.X > maxRight {
			t.Fatalf("x = %v escaped [0, %v] after input %v", player.Position.X, maxRight, amount)
		}
	}
}

func TestPlayer_DrawNormalState(t *testing.T) {
	player := NewPlayer(physics.Vector2D{X: 320, Y: 700})
	ctx := &recordContext{}
	bundle := assets.DefaultBundle()

	if err := player.Draw(ctx, bundle); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if len(ctx.calls) != 1 {
		t.Fatalf("Draw() issued %d commands, want 1", len(ctx.calls))
	}

	call := ctx.calls[0]
	want, _ := bundle.Texture(assets.PlayerNormal)
	if call.Texture != want {
		t.Error("normal state should draw the normal texture")
	}
	if !closeTo(call.Params.Scale.X, 0.95) || !closeTo(call.Params.Scale.Y, 0.95) {
		t.Errorf("normal state scale = %v, want 0.95", call.Params.Scale)
	}
	if !closeTo(call.Params.Offset.X, 0.5) || !closeTo(call.Params.Offset.Y, 1.0) {
		t.Errorf("normal state offset = %v, want (0.5, 1.0)", call.Params.Offset)
	}
}

func TestPlayer_DrawShootingState(t *testing.T) {
	player := NewPlayer(physics.Vector2D{X: 320, Y: 700})
	player.State = StateShooting
	ctx := &recordContext{}
	bundle := assets.DefaultBundle()

	if err := player.Draw(ctx, bundle); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	call := ctx.calls[0]
	want, _ := bundle.Texture(assets.PlayerShooting)
	if call.Texture != want {
		t.Error("shooting state should draw the shooting texture")
	}
	if !closeTo(call.Params.Offset.X, 0.545) || !closeTo(call.Params.Offset.Y, 0.96) {
		t.Errorf("shooting state offset = %v, want (0.545, 0.96)", call.Params.Offset)
	}
	if !closeTo(call.Params.Scale.X, 1) {
		t.Errorf("shooting state scale = %v, want 1", call.Params.Scale)
	}
}

func TestPlayer_DrawMissingAsset(t *testing.T) {
	player := NewPlayer(physics.Vector2D{})
	ctx := &recordContext{}

	err := player.Draw(ctx, assets.NewBundle())
	if err == nil {
		t.Fatal("Draw() with empty bundle should fail")
	}
	if !errors.Is(err, assets.ErrMissingResource) {
		t.Errorf("Draw() error = %v, want ErrMissingResource", err)
	}
}

func TestPlayer_DrawPropagatesRendererFailure(t *testing.T) {
	player := NewPlayer(physics.Vector2D{})
	ctx := &recordContext{err: errRendererDown}

	err := player.Draw(ctx, assets.DefaultBundle())
	if !errors.Is(err, errRendererDown) {
		t.Errorf("Draw() error = %v, want renderer failure", err)
	}
}
