package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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

// Kitchen palette.
const (
	ColorCounter = ColorGray
	ColorHappy   = ColorBrightGreen
	ColorAngry   = ColorBrightRed
	ColorPickup  = ColorBrightYellow
	ColorReady   = ColorBrightCyan
)

// PlayerColor returns the color a player is drawn in.
func PlayerColor(p PlayerID) Color {
	switch p {
	case Player1:
		return ColorRed
	case Player2:
		return ColorGreen
	default:
		return ColorDefault
	}
}
