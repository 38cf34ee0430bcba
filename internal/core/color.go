package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Bright returns the highlighted variant of a base color.
// Colors without one are returned unchanged.
func (c Color) Bright() Color {
	switch c {
	case ColorRed:
		return ColorBrightRed
	case ColorGreen:
		return ColorBrightGreen
	case ColorYellow:
		return ColorBrightYellow
	case ColorBlue:
		return ColorBrightBlue
	case ColorMagenta:
		return ColorBrightMagenta
	case ColorCyan:
		return ColorBrightCyan
	case ColorWhite:
		return ColorBrightWhite
	default:
		return c
	}
}
