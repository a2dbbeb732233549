package theme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Fallback channels used whenever a color value cannot be parsed
const (
	FallbackR = 11
	FallbackG = 21
	FallbackB = 48
)

// darkenStep is subtracted from every channel for the dark variant
const darkenStep = 20

var hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// RGB is a single color as three 0-255 channels
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// DerivedColors is the set of inline-style strings computed from one hex value
type DerivedColors struct {
	RGB    RGB    `json:"rgb"`
	Solid  string `json:"solid"`
	Light  string `json:"light"`
	Medium string `json:"medium"`
	Dark   string `json:"dark"`
}

// Fallback returns the default color triple
func Fallback() RGB {
	return RGB{R: FallbackR, G: FallbackG, B: FallbackB}
}

// ParseHex parses a strict #RRGGBB (leading # optional) value.
// The boolean is false when the input does not match; the returned triple is then the fallback.
func ParseHex(hex string) (RGB, bool) {
	if !hexPattern.MatchString(hex) {
		return Fallback(), false
	}

	digits := strings.TrimPrefix(hex, "#")
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Fallback(), false
	}

	return RGB{
		R: int(value >> 16 & 0xff),
		G: int(value >> 8 & 0xff),
		B: int(value & 0xff),
	}, true
}

// DeriveColors maps a hex string to its solid, light, medium and dark variants.
// Malformed input yields the variants of the fallback triple.
func DeriveColors(hex string) DerivedColors {
	rgb, _ := ParseHex(hex)
	return FromRGB(rgb)
}

// FromRGB builds the derived strings for an already parsed color
func FromRGB(c RGB) DerivedColors {
	dark := c.Darken(darkenStep)
	return DerivedColors{
		RGB:    c,
		Solid:  c.CSS(),
		Light:  c.CSSAlpha("0.1"),
		Medium: c.CSSAlpha("0.6"),
		Dark:   dark.CSS(),
	}
}

// Darken subtracts step from each channel, floored at zero
func (c RGB) Darken(step int) RGB {
	return RGB{
		R: max(0, c.R-step),
		G: max(0, c.G-step),
		B: max(0, c.B-step),
	}
}

// CSS formats the color as rgb(r, g, b)
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// CSSAlpha formats the color as rgba(r, g, b, alpha)
func (c RGB) CSSAlpha(alpha string) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, alpha)
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsValidHex reports whether the value is a strict 6-digit hex color
func IsValidHex(hex string) bool {
	return hexPattern.MatchString(hex)
}
