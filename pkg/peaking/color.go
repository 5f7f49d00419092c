package peaking

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HighlightColor is a peaking highlight color in the frame's native channel
// order: blue, green, red.
type HighlightColor struct {
	B uint8
	G uint8
	R uint8
}

// ParseHexColor converts an RGB-ordered hex string ("#FF0000", with or
// without the leading "#") into the frame's native channel order. This is the
// single conversion point between wire colors and pixel colors; malformed
// input returns ErrInvalidColorFormat.
func ParseHexColor(s string) (HighlightColor, error) {
	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return HighlightColor{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	r, g, b := c.RGB255()
	return HighlightColor{B: b, G: g, R: r}, nil
}

// Hex returns the color as an RGB-ordered "#RRGGBB" string.
func (c HighlightColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
