package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
