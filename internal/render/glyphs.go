// Package render draws grid state into a core.Screen. Glyph tables live
// here and nowhere else; the grid only knows cell kinds and codes.
package render

import (
	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/grid"
)

// Box glyph dimensions in screen characters.
const (
	CellW = 3
	CellH = 2
)

// Mode selects how many characters a grid cell takes on screen.
type Mode int

const (
	ModeBox     Mode = iota // 3x2 box-drawing glyphs
	ModeCompact             // one character per cell
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeCompact {
		return "compact"
	}
	return "box"
}

// cellSize returns the on-screen footprint of one cell.
func (m Mode) cellSize() (int, int) {
	if m == ModeCompact {
		return 1, 1
	}
	return CellW, CellH
}

// Agent glyphs double the side of the box the turtle faces.
// Facing indices: 1 east, 2 west, 3 north, 4 south, 5 up, 6 down.
var boxGlyphs = map[int][CellH]string{
	grid.CodeEmpty:     {"   ", "   "},
	grid.CodeSolid:     {"███", "███"},
	grid.CodePathStart: {" ^ ", " U "},
	grid.CodePathHoriz: {"___", "   "},
	grid.CodePathVert:  {" | ", " | "},
	grid.CodeAgent:     {"┌╥┐", "└╨┘"},
	grid.CodeAgent + 1: {"┌─╖", "└─╜"},
	grid.CodeAgent + 2: {"╓─┐", "╙─┘"},
	grid.CodeAgent + 3: {"┌─┐", "╘═╛"},
	grid.CodeAgent + 4: {"╒═╕", "└─┘"},
	grid.CodeAgent + 5: {"╔═╗", "╚═╝"},
	grid.CodeAgent + 6: {"┌┬┐", "└┴┘"},
}

var compactGlyphs = map[int]rune{
	grid.CodeEmpty:     ' ',
	grid.CodeSolid:     '█',
	grid.CodePathStart: 'U',
	grid.CodePathHoriz: '_',
	grid.CodePathVert:  '|',
	grid.CodeAgent:     '@',
	grid.CodeAgent + 1: '→',
	grid.CodeAgent + 2: '←',
	grid.CodeAgent + 3: '↓',
	grid.CodeAgent + 4: '↑',
	grid.CodeAgent + 5: '⊙',
	grid.CodeAgent + 6: '⊗',
}

var unknownGlyph = [CellH]string{"???", "???"}

// Glyph returns the two 3-character rows for a cell.
func Glyph(c grid.Cell) [CellH]string {
	if g, ok := boxGlyphs[c.Code()]; ok {
		return g
	}
	return unknownGlyph
}

// CompactGlyph returns the single-character form of a cell.
func CompactGlyph(c grid.Cell) rune {
	if r, ok := compactGlyphs[c.Code()]; ok {
		return r
	}
	return '?'
}

// ColorOf returns the foreground color of a cell.
func ColorOf(c grid.Cell) core.Color {
	switch c.Kind {
	case grid.KindSolid:
		return core.ColorGray
	case grid.KindAgent:
		return core.ColorBrightGreen
	case grid.KindPathStart:
		return core.ColorOrange
	case grid.KindPathHoriz, grid.KindPathVert:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}
