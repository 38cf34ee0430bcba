package core

import (
	"fmt"
	"strings"
)

// Color is a token color.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorCyan
	ColorOrange
	ColorWhite
	ColorCount // Sentinel value for iteration
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Char returns a single-letter code used by snapshots and fixtures.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorCyan:
		return 'C'
	case ColorOrange:
		return 'O'
	case ColorWhite:
		return 'W'
	default:
		return '?'
	}
}

// ParseColor converts a color name or its letter code to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	case "cyan", "c":
		return ColorCyan, true
	case "orange", "o":
		return ColorOrange, true
	case "white", "w":
		return ColorWhite, true
	default:
		return ColorRed, false
	}
}

// Palette is the ordered set of colors new tokens are drawn from.
type Palette []Color

// DefaultPalette returns the six classic colors.
func DefaultPalette() Palette {
	return Palette{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorPurple, ColorCyan}
}

// AllColors returns every defined color in declaration order.
func AllColors() Palette {
	p := make(Palette, 0, ColorCount)
	for c := Color(0); c < ColorCount; c++ {
		p = append(p, c)
	}
	return p
}

// ParsePalette builds a palette from color names.
func ParsePalette(names []string) (Palette, error) {
	p := make(Palette, 0, len(names))
	for _, name := range names {
		c, ok := ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", name)
		}
		p = append(p, c)
	}
	return p, nil
}

// Names returns the color names of the palette.
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.String()
	}
	return names
}

// hasDuplicates reports whether any color appears twice.
func (p Palette) hasDuplicates() bool {
	var seen [ColorCount]bool
	for _, c := range p {
		if c >= ColorCount {
			continue
		}
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}
