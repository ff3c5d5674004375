package engine

import (
	"fmt"
	"math"
)

// Vec is a point or displacement in field pixels.
// X increases to the right, Y increases downward (screen coordinates).
type Vec struct {
	X float64
	Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// String returns a string representation of the vector.
func (v Vec) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", v.X, v.Y)
}

// Cell is a coordinate on the hex-offset grid.
// Odd rows are shifted right by half a diameter.
type Cell struct {
	Col int
	Row int
}

// C is a convenience constructor for Cell.
func C(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Geometry converts between continuous field positions and grid cells
// and answers proximity questions between bubble centers.
type Geometry struct {
	Origin         Vec     // Center of cell (0,0)
	Diameter       float64 // Bubble diameter and column pitch
	RowPitch       float64 // Vertical distance between row centers
	AdjacencySlack float64 // Extra distance still counted as touching
	CollisionSlack float64 // Overlap tolerated before two bubbles collide
	MinX           float64 // Leftmost legal center X
	MaxX           float64 // Rightmost legal center X
}

// rowShift returns the horizontal offset applied to a row.
// Uses row&1 so negative rows alternate the same way as positive ones.
func (g Geometry) rowShift(row int) float64 {
	if row&1 == 1 {
		return g.Diameter / 2
	}
	return 0
}

// ToPosition returns the center of a cell.
func (g Geometry) ToPosition(c Cell) Vec {
	return Vec{
		X: g.Origin.X + float64(c.Col)*g.Diameter + g.rowShift(c.Row),
		Y: g.Origin.Y + float64(c.Row)*g.RowPitch,
	}
}

// ToGrid returns the cell whose center is nearest to p.
// It is the exact inverse of ToPosition: both axes round to nearest,
// the row first because the column origin depends on row parity.
func (g Geometry) ToGrid(p Vec) Cell {
	row := int(math.Round((p.Y - g.Origin.Y) / g.RowPitch))
	col := int(math.Round((p.X - g.Origin.X - g.rowShift(row)) / g.Diameter))
	return Cell{Col: col, Row: row}
}

// ColRange returns the inclusive range of columns whose centers fit between the walls.
func (g Geometry) ColRange(row int) (lo, hi int) {
	shift := g.Origin.X + g.rowShift(row)
	lo = int(math.Ceil((g.MinX - shift) / g.Diameter))
	hi = int(math.Floor((g.MaxX - shift) / g.Diameter))
	return lo, hi
}

// Valid reports whether a cell lies inside the playfield.
func (g Geometry) Valid(c Cell) bool {
	if c.Row < 0 {
		return false
	}
	lo, hi := g.ColRange(c.Row)
	return c.Col >= lo && c.Col <= hi
}

// Clamp returns the nearest valid cell to c.
func (g Geometry) Clamp(c Cell) Cell {
	if c.Row < 0 {
		c.Row = 0
	}
	lo, hi := g.ColRange(c.Row)
	if c.Col < lo {
		c.Col = lo
	}
	if c.Col > hi {
		c.Col = hi
	}
	return c
}

// Neighbors returns the six hex neighbors of a cell.
// Cells outside the playfield are included; callers filter with Valid.
func (g Geometry) Neighbors(c Cell) []Cell {
	// Odd rows sit half a cell to the right, so their diagonal
	// neighbors are at col and col+1; even rows at col-1 and col.
	d := 0
	if c.Row&1 == 1 {
		d = 1
	}
	return []Cell{
		{Col: c.Col - 1, Row: c.Row},
		{Col: c.Col + 1, Row: c.Row},
		{Col: c.Col - 1 + d, Row: c.Row - 1},
		{Col: c.Col + d, Row: c.Row - 1},
		{Col: c.Col - 1 + d, Row: c.Row + 1},
		{Col: c.Col + d, Row: c.Row + 1},
	}
}

// AdjacentDist is the largest center distance counted as adjacency.
func (g Geometry) AdjacentDist() float64 {
	return g.Diameter + g.AdjacencySlack
}

// CollideDist is the center distance below which two bubbles collide.
func (g Geometry) CollideDist() float64 {
	return g.Diameter - g.CollisionSlack
}

// Adjacent reports whether two bubble centers are close enough to touch.
// Coincident centers are not adjacent.
func (g Geometry) Adjacent(a, b Vec) bool {
	d := a.Dist(b)
	return d > 0 && d <= g.AdjacentDist()
}

// Collide reports whether two bubble centers overlap.
// Coincident centers do not collide.
func (g Geometry) Collide(a, b Vec) bool {
	d := a.Dist(b)
	return d > 0 && d < g.CollideDist()
}

// reach returns how many rows and columns around a cell must be scanned
// to find every center within radius.
func (g Geometry) reach(radius float64) (rows, cols int) {
	rows = int(math.Ceil(radius/g.RowPitch)) + 1
	cols = int(math.Ceil((radius+g.Diameter/2)/g.Diameter)) + 1
	return rows, cols
}
