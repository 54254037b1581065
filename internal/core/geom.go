// Package core provides the value types shared by the simulation and the
// terminal platform: vectors, rectangles, the screen buffer and run config.
// It has no external dependencies (especially no Bubble Tea) so the
// navigation logic stays pure and testable.
package core

// Rect represents an axis-aligned box of cells, used for wall stamping
// and screen layout.
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

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsVec is Contains for a grid coordinate.
func (r Rect) ContainsVec(v Vector2) bool {
	return r.Contains(v.X, v.Y)
}

// Cells returns every coordinate covered by the rectangle, row by row.
func (r Rect) Cells() []Vector2 {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	cells := make([]Vector2, 0, r.W*r.H)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			cells = append(cells, V(x, y))
		}
	}
	return cells
}
