// pkg/assets/fonts.go
package assets

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFont reads and parses a TrueType font from disk. Both a missing
// file and a corrupt font surface as resource-load errors.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %q: %w", path, err)
	}
	fnt, err := ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", path, err)
	}
	return fnt, nil
}

// ParseFont parses raw TrueType data.
func ParseFont(data []byte) (*truetype.Font, error) {
	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return fnt, nil
}

// GoRegular returns the face compiled into the binary, used when no
// font path is configured. The embedded data always parses.
func GoRegular() *truetype.Font {
	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic("assets: embedded font failed to parse: " + err.Error())
	}
	return fnt
}
