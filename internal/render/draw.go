package render

import (
	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/grid"
)

// FrameSize returns the size of a w x h grid drawn in mode, border included.
func FrameSize(mode Mode, w, h int) (int, int) {
	cw, ch := mode.cellSize()
	return w*cw + 2, h*ch + 2
}

// Fit picks the largest mode whose framed grid fits into maxW x maxH.
// ok is false when not even the compact form fits.
func Fit(w, h, maxW, maxH int) (mode Mode, ok bool) {
	for _, m := range []Mode{ModeBox, ModeCompact} {
		fw, fh := FrameSize(m, w, h)
		if fw <= maxW && fh <= maxH {
			return m, true
		}
	}
	return ModeCompact, false
}

// Layered returns the cell shown at c: the base cell, or the overlay cell
// where the base is empty. overlay may be nil.
func Layered(base, overlay *grid.Grid, c core.Vector2) grid.Cell {
	cell, _ := base.Get(c)
	if cell.IsEmpty() && overlay != nil {
		if o, ok := overlay.Get(c); ok {
			return o
		}
	}
	return cell
}

// Draw renders the grid with a border whose top-left corner is at (x, y).
// The renderer only reads the grids.
func Draw(dst *core.Screen, x, y int, mode Mode, base, overlay *grid.Grid) {
	fw, fh := FrameSize(mode, base.Width(), base.Height())
	dst.DrawBox(core.NewRect(x, y, fw, fh), core.ColorGray)

	cw, ch := mode.cellSize()
	for gy := 0; gy < base.Height(); gy++ {
		for gx := 0; gx < base.Width(); gx++ {
			cell := Layered(base, overlay, core.V(gx, gy))
			color := ColorOf(cell)
			sx, sy := x+1+gx*cw, y+1+gy*ch

			if mode == ModeCompact {
				dst.SetColored(sx, sy, CompactGlyph(cell), color)
				continue
			}
			for row, line := range Glyph(cell) {
				dst.DrawTextColored(sx, sy+row, line, color)
			}
		}
	}
}

// Text renders the framed grid to plain text.
func Text(mode Mode, base, overlay *grid.Grid) string {
	fw, fh := FrameSize(mode, base.Width(), base.Height())
	s := core.NewScreen(fw, fh)
	Draw(s, 0, 0, mode, base, overlay)
	return s.String()
}
