// Package engine implements the grid, collision and connectivity core of the
// bubble shooter. It is UI-agnostic and deterministic: every operation is a
// synchronous function of an explicit State value.
package engine

import "strings"

// Color identifies a bubble color. Colors compare by identity.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
	ColorOrange
	ColorPink
	ColorCyan
	ColorPurple
)

// PaletteSize is the number of distinct bubble colors.
const PaletteSize = 8

var colorNames = [PaletteSize]string{
	"red", "blue", "green", "yellow", "orange", "pink", "cyan", "purple",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// Valid reports whether the color belongs to the palette.
func (c Color) Valid() bool {
	return int(c) < PaletteSize
}

// ParseColor converts a color name to a Color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range colorNames {
		if name == s {
			return Color(i), true
		}
	}
	return 0, false
}

// Palette returns the first n colors of the palette, n capped at PaletteSize.
func Palette(n int) []Color {
	if n > PaletteSize {
		n = PaletteSize
	}
	if n < 1 {
		n = 1
	}
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}

// BubbleID is a stable identity assigned when a bubble is launched or placed.
type BubbleID uint32

// Bubble is a static grid bubble or the in-flight projectile.
type Bubble struct {
	ID    BubbleID
	Pos   Vec   // Center position
	Vel   Vec   // Zero for static bubbles
	Cell  Cell  // Recorded grid cell (static bubbles only)
	Color Color
}

// QueueBubble is a bubble waiting in the launcher.
// Queue slots are replaced by value, never recolored in place.
type QueueBubble struct {
	Color Color
}
