package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI 256-color codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorGold
	ColorBlue
	ColorSky
	ColorBrown
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorBlack
	ColorGray1 // Grayscale ramp for decayed scenery, dark to light
	ColorGray2
	ColorGray3
	ColorGray4
	ColorGray5
)

// GrayRamp holds the grayscale shades from darkest to lightest.
var GrayRamp = []Color{ColorBlack, ColorGray1, ColorGray2, ColorGray3, ColorGray4, ColorGray5, ColorWhite}

// Shade picks a grayscale color for a brightness in [0, 1].
func Shade(brightness float64) Color {
	i := int(ClampF(brightness, 0, 1) * float64(len(GrayRamp)-1))
	return GrayRamp[i]
}
