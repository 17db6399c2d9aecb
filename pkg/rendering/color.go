// Package rendering provides the drawing surface abstraction the retained
// tree paints into: colors, geometry, a minimal Canvas interface, text
// metrics, and a recording canvas for headless rendering.
package rendering

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// ParseHex parses "#RRGGBB" or "#AARRGGBB" into a Color.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return Color(0xFF000000 | uint32(value)), nil
	case 8:
		return Color(uint32(value)), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
