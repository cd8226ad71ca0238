// Package core provides fundamental types and utilities shared by the game
// logic and the front ends. It has no external dependencies (especially no
// Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

import "fmt"

// GridPos addresses one cell of the arena. Rows grow downward and columns
// grow rightward; (0, 0) is the top-left cell.
type GridPos struct {
	Row, Col int
}

// Pos is shorthand for GridPos{Row: row, Col: col}.
func Pos(row, col int) GridPos {
	return GridPos{Row: row, Col: col}
}

// Add returns p shifted by the given row and column deltas.
func (p GridPos) Add(dRow, dCol int) GridPos {
	return GridPos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// In reports whether p lies inside a grid of the given dimensions.
func (p GridPos) In(width, height int) bool {
	return p.Row >= 0 && p.Row < height && p.Col >= 0 && p.Col < width
}

func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Rect represents an axis-aligned box in screen cells.
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
