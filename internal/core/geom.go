// Package core provides fundamental types and utilities for the tunnel game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a cell position on the playfield in (row, column) order.
// Row 0 is the top of the screen, column 0 the left edge.
type Point struct {
	Row, Col int
}

// P is a convenience constructor for Point.
func P(row, col int) Point {
	return Point{Row: row, Col: col}
}

// Equals reports whether two points occupy the same cell.
func (p Point) Equals(other Point) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Above returns the cell one row up, saturating at row 0.
// A projectile that jumps over an entity in a single tick still counts
// as a hit one row above it (the forgiving hit box).
func (p Point) Above() Point {
	if p.Row == 0 {
		return p
	}
	return Point{Row: p.Row - 1, Col: p.Col}
}

// Rect represents an axis-aligned box used for overlay layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
