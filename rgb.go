package tableimage

import (
	"fmt"
	"image/color"
)

// RGB represents a fully opaque color as 8-bit red, green and blue channels.
// The struct is comparable, so it serves directly as the map key for weight
// tables and palette code mappings.
type RGB struct {
	R, G, B uint8
}

// RGBFromInts builds an RGB from arbitrary integer channel values, clamping
// each channel into [0, 255].
func RGBFromInts(r, g, b int) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// RGBFromColor converts any color.Color to an RGB, reducing the 16-bit
// channels to 8 bits and discarding alpha. Callers feeding translucent
// sources should composite them onto a background first; see
// imageutil.Flatten.
func RGBFromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// ToColor returns the color as a stdlib color.RGBA with full opacity.
func (c RGB) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex renders the color as a CSS hex literal of the form "#rrggbb",
// shortened to "#rgb" when both hex digits of every channel are equal.
func (c RGB) Hex() string {
	if shortensToNibble(c.R) && shortensToNibble(c.G) && shortensToNibble(c.B) {
		return fmt.Sprintf("#%x%x%x", c.R&0xf, c.G&0xf, c.B&0xf)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// shortensToNibble reports whether both hex digits of v are the same, i.e.
// the channel survives the "#rrggbb" to "#rgb" shorthand.
func shortensToNibble(v uint8) bool {
	return v>>4 == v&0xf
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
