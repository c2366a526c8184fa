package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadColor is returned when a hex color string cannot be parsed.
var ErrBadColor = errors.New("invalid hex color")

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// ParseHex parses a "#rrggbb" color.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	return Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

// Hex is like ParseHex but panics on malformed input.
// It is meant for color literals in package-level theme definitions.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Ptr returns a pointer to a copy of c, for optional color fields.
func (c Color) Ptr() *Color {
	return &c
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return int(v*255 + 0.5)
	}
}
