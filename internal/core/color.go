package core

import "fmt"

// Color is a 24-bit RGB colour for a screen cell. The zero value means
// "terminal default" so cells without an explicit colour stay unstyled.
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB builds an explicit colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Hex returns the colour as "#rrggbb", or "" for the default colour.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette used by the renderers.
var (
	ColorDefault = Color{}
	ColorWhite   = RGB(255, 255, 255)
	ColorGreen   = RGB(0, 255, 0)
	ColorRed     = RGB(255, 0, 0)
	ColorBlack   = RGB(0, 0, 0)
	ColorGray    = RGB(50, 50, 50)
	ColorOrange  = RGB(255, 165, 0)
	ColorBlue    = RGB(31, 64, 237)
	ColorTeal    = RGB(0, 128, 128)
)
