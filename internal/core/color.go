package core

// Color is a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256 code.
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
	ColorOrange
	ColorLime
	ColorGray
	ColorGold
)
