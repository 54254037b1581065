// Package grid provides the bounds-checked cell store the turtle moves on.
// The grid has no notion of turtles or rendering; it only guards access and
// enforces that safe writes land on empty cells.
package grid

import (
	"fmt"

	"github.com/vovakirdan/turtlesim/internal/core"
)

// WriteMode selects how Set treats an occupied target.
type WriteMode uint8

const (
	// WriteSafe only succeeds if the target cell is currently empty.
	WriteSafe WriteMode = iota
	// WriteForce overwrites whatever is there. Callers use it only for
	// cells they already own.
	WriteForce
)

// Grid is a fixed-size rectangle of cells stored row-major: index = y*W + x.
// Origin is the top-left corner, x grows right and y grows down.
type Grid struct {
	w     int
	h     int
	cells []Cell
}

// New creates an empty grid.
func New(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
}

// FromCodes builds a grid from rows of numeric cell codes.
// All rows must have the same length.
func FromCodes(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	g := New(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.w {
			return nil, fmt.Errorf("grid: row %d has %d cells, expected %d", y, len(row), g.w)
		}
		for x, code := range row {
			cell, err := CellFromCode(code)
			if err != nil {
				return nil, fmt.Errorf("grid: cell (%d,%d): %w", x, y, err)
			}
			g.cells[g.index(core.V(x, y))] = cell
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

func (g *Grid) index(c core.Vector2) int {
	return c.Y*g.w + c.X
}

// InBounds returns true if 0 <= x < width and 0 <= y < height.
func (g *Grid) InBounds(c core.Vector2) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Get returns the cell at c. The second result is false when c is out of
// bounds, in which case the cell value must not be trusted.
func (g *Grid) Get(c core.Vector2) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.cells[g.index(c)], true
}

// IsEmpty reports whether c is in bounds and vacant.
func (g *Grid) IsEmpty(c core.Vector2) bool {
	cell, ok := g.Get(c)
	return ok && cell.IsEmpty()
}

// Set writes cell at c and reports whether the write happened.
// Out-of-bounds writes and safe writes onto occupied cells are rejected
// without touching the grid.
func (g *Grid) Set(c core.Vector2, cell Cell, mode WriteMode) bool {
	if mode == WriteSafe {
		return g.CompareAndSwap(c, Empty(), cell)
	}
	if !g.InBounds(c) {
		return false
	}
	g.cells[g.index(c)] = cell
	return true
}

// CompareAndSwap writes next at c only if the cell currently equals old.
// A safe Set is CompareAndSwap(c, Empty(), cell).
func (g *Grid) CompareAndSwap(c core.Vector2, old, next Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	i := g.index(c)
	if g.cells[i] != old {
		return false
	}
	g.cells[i] = next
	return true
}

// Fill overwrites every cell inside r that lies within the grid.
func (g *Grid) Fill(r core.Rect, cell Cell) {
	for _, c := range r.Cells() {
		g.Set(c, cell, WriteForce)
	}
}

// Count returns how many cells hold the given kind.
func (g *Grid) Count(kind Kind) int {
	n := 0
	for _, cell := range g.cells {
		if cell.Kind == kind {
			n++
		}
	}
	return n
}

// Find returns the coordinates of every cell of the given kind, row by row.
func (g *Grid) Find(kind Kind) []core.Vector2 {
	var found []core.Vector2
	for i, cell := range g.cells {
		if cell.Kind == kind {
			found = append(found, core.V(i%g.w, i/g.w))
		}
	}
	return found
}

// Rows returns the grid as rows of numeric cell codes.
// The result is a copy; mutating it does not affect the grid.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.h)
	for y := range rows {
		row := make([]int, g.w)
		for x := range row {
			row[x] = g.cells[y*g.w+x].Code()
		}
		rows[y] = row
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		w:     g.w,
		h:     g.h,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
