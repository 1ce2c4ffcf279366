package rgb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

type Color struct {
	R, G, B uint8
}

func FromPacked(n int) Color {
	r, g, b := FromInt(n)
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

func (c Color) Int() int {
	return ToInt(int(c.R), int(c.G), int(c.B))
}

// Hex returns c as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// ParseHex parses "#rrggbb" or "rrggbb", case insensitively.
func ParseHex(s string) (Color, error) {
	v := strings.TrimPrefix(s, "#")
	if len(v) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

// Swatch renders text on a 24-bit background of c. The foreground is black
// or white, whichever reads better on c. When color output is disabled
// (see color.NoColor) text is returned unchanged.
func (c Color) Swatch(text string) string {
	fg := color.RGB(255, 255, 255)
	if c.luma() > 140 {
		fg = color.RGB(0, 0, 0)
	}
	return fg.AddBgRGB(int(c.R), int(c.G), int(c.B)).Sprint(text)
}

func (c Color) luma() int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
