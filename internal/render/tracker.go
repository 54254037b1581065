package render

import "github.com/vovakirdan/turtlesim/internal/grid"

// Tracker remembers the grid contents at the last draw so drivers can skip
// redrawing frames in which nothing changed.
type Tracker struct {
	last *grid.Grid
}

// Changed reports whether g differs from the last drawn state.
// A tracker that never drew reports true.
func (t *Tracker) Changed(g *grid.Grid) bool {
	return t.last == nil || !t.last.Equal(g)
}

// MarkDrawn snapshots g as the drawn state.
func (t *Tracker) MarkDrawn(g *grid.Grid) {
	t.last = g.Clone()
}

// Reset forgets the last drawn state.
func (t *Tracker) Reset() {
	t.last = nil
}
