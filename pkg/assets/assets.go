// pkg/assets/assets.go

// Package assets provides the read-only bundle of pre-loaded visuals
// that Player and Shot reference by name, plus the font loader used by
// text sprites. Everything here is loaded before the first frame; a
// lookup miss at draw time is a programming or packaging error and is
// reported as such.
package assets

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/opd-ai/go-shooter/pkg/render"
)

// Texture names the entity draw calls reference.
const (
	PlayerNormal   = "player/normal"
	PlayerShooting = "player/shooting"
	ShotTexture    = "shot"
	EnemyTexture   = "enemy"
)

// ErrMissingResource reports a texture lookup for a name that was
// never loaded into the bundle.
var ErrMissingResource = errors.New("assets: missing resource")

// Bundle holds named textures. It is populated once at startup and
// read-only afterwards.
type Bundle struct {
	textures map[string]*render.Texture
}

// NewBundle creates an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{
		textures: make(map[string]*render.Texture),
	}
}

// Add registers a texture under name, replacing any previous entry.
func (b *Bundle) Add(name string, tex *render.Texture) {
	b.textures[name] = tex
}

// Texture returns the texture registered under name, or a
// missing-resource error for the caller to propagate.
func (b *Bundle) Texture(name string) (*render.Texture, error) {
	tex, ok := b.textures[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingResource, name)
	}
	return tex, nil
}

// LoadImage decodes a PNG file and registers it under name.
func (b *Bundle) LoadImage(name, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image %q: %w", path, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to decode image %q: %w", path, err)
	}

	b.Add(name, render.NewTexture(img))
	return nil
}

// DefaultBundle builds the built-in visuals from pixel patterns, so
// the game runs without any files on disk.
func DefaultBundle() *Bundle {
	b := NewBundle()
	b.Add(PlayerNormal, playerNormalTexture())
	b.Add(PlayerShooting, playerShootingTexture())
	b.Add(ShotTexture, shotTexture())
	b.Add(EnemyTexture, enemyTexture())
	return b
}

// playerNormalTexture is the idle ship: a filled diamond.
func playerNormalTexture() *render.Texture {
	return render.NewTextureFromPattern(16, 16, [][]int{
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	}, color.RGBA{R: 230, G: 126, B: 34, A: 255})
}

// playerShootingTexture adds a muzzle column above the hull.
func playerShootingTexture() *render.Texture {
	return render.NewTextureFromPattern(16, 18, [][]int{
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	}, color.RGBA{R: 231, G: 76, B: 60, A: 255})
}

// enemyTexture is the saucer used when an enemy has no text label.
func enemyTexture() *render.Texture {
	return render.NewTextureFromPattern(12, 8, [][]int{
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
	}, color.RGBA{R: 46, G: 204, B: 113, A: 255})
}

// shotTexture is a small bright dot.
func shotTexture() *render.Texture {
	return render.NewTextureFromPattern(4, 4, [][]int{
		{0, 1, 1, 0},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{0, 1, 1, 0},
	}, color.RGBA{R: 241, G: 196, B: 15, A: 255})
}
