// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: Max(r.W-2*n, 0), H: Max(r.H-2*n, 0)}
}

// Viewport maps a rectangle of a continuous field onto a rectangle of screen cells.
// Terminal cells are roughly twice as tall as wide, so X and Y scale separately.
type Viewport struct {
	Area   Rect    // Screen cells showing the field
	MinX   float64 // Field coordinate at the left edge of Area
	MinY   float64 // Field coordinate at the top edge of Area
	FieldW float64 // Field width shown
	FieldH float64 // Field height shown
}

// ToCell converts a field position to the screen cell that shows it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := v.Area.X + int(math.Floor((x-v.MinX)/v.FieldW*float64(v.Area.W)))
	cy := v.Area.Y + int(math.Floor((y-v.MinY)/v.FieldH*float64(v.Area.H)))
	return cx, cy
}

// ToField converts the center of a screen cell to a field position.
func (v Viewport) ToField(cx, cy int) (float64, float64) {
	x := v.MinX + (float64(cx-v.Area.X)+0.5)/float64(Max(v.Area.W, 1))*v.FieldW
	y := v.MinY + (float64(cy-v.Area.Y)+0.5)/float64(Max(v.Area.H, 1))*v.FieldH
	return x, y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
