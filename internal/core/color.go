package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI colors in the terminal frontend and to RGBA in the window.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGray
	ColorWhite
	ColorYellow
	ColorCyan
)
