package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
	ColorOrange
	ColorPink
	ColorCyan
	ColorPurple
	ColorWhite
	ColorGray
	ColorGold
)
