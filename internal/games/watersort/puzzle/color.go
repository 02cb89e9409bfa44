package puzzle

import "strings"

// Color identifies a liquid color. Only equality is meaningful.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorLime
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
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
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorLime:
		return "lime"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII rendering.
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
	case ColorMagenta:
		return 'M'
	case ColorCyan:
		return 'C'
	case ColorOrange:
		return 'O'
	case ColorLime:
		return 'L'
	default:
		return '?'
	}
}

// ParseColor converts a string to a Color.
// Returns ColorRed and false if the string is not recognized.
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
	case "magenta", "m":
		return ColorMagenta, true
	case "cyan", "c":
		return ColorCyan, true
	case "orange", "o":
		return ColorOrange, true
	case "lime", "l":
		return ColorLime, true
	default:
		return ColorRed, false
	}
}

// DefaultPalette returns every color in palette order.
func DefaultPalette() []Color {
	palette := make([]Color, 0, ColorCount)
	for c := Color(0); c < ColorCount; c++ {
		palette = append(palette, c)
	}
	return palette
}

// ParsePalette converts color names to a palette, rejecting unknown names.
func ParsePalette(names []string) ([]Color, bool) {
	palette := make([]Color, 0, len(names))
	for _, name := range names {
		c, ok := ParseColor(name)
		if !ok {
			return nil, false
		}
		palette = append(palette, c)
	}
	return palette, true
}
