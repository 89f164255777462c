package layout

import "fmt"

// Color is an RGBA color with byte channels. The zero value is fully
// transparent and is treated as "no color" throughout the engine.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex returns the color as a "#rrggbb" string for lipgloss.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Transparent reports whether the color should not be drawn.
func (c Color) Transparent() bool {
	return c.A == 0
}
