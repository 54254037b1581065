package grid_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/grid"
)

func TestNewGrid(t *testing.T) {
	g := grid.New(12, 10)

	if g.Width() != 12 || g.Height() != 10 {
		t.Errorf("expected 12x10 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Count(grid.KindEmpty) != 120 {
		t.Errorf("expected 120 empty cells, got %d", g.Count(grid.KindEmpty))
	}
}

func TestGridInBounds(t *testing.T) {
	g := grid.New(5, 4)

	testCases := []struct {
		coord    core.Vector2
		expected bool
	}{
		{core.V(0, 0), true},
		{core.V(4, 3), true},
		{core.V(2, 2), true},
		{core.V(-1, 0), false},
		{core.V(0, -1), false},
		{core.V(5, 0), false},
		{core.V(0, 4), false},
		{core.V(5, 4), false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.coord); got != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.coord, tc.expected, got)
		}
	}
}

func TestGridSafeWrite(t *testing.T) {
	g := grid.New(3, 3)
	c := core.V(1, 1)

	if !g.Set(c, grid.Solid(), grid.WriteSafe) {
		t.Fatal("safe write onto an empty cell should succeed")
	}

	// Occupied: safe write rejected and cell untouched
	if g.Set(c, grid.Agent(1), grid.WriteSafe) {
		t.Error("safe write onto an occupied cell should fail")
	}
	if cell, _ := g.Get(c); cell != grid.Solid() {
		t.Errorf("cell should still be solid, got %v", cell)
	}

	// Force always overwrites
	if !g.Set(c, grid.Agent(1), grid.WriteForce) {
		t.Error("forced write should succeed")
	}
	if cell, _ := g.Get(c); cell != grid.Agent(1) {
		t.Errorf("cell should be agent/1, got %v", cell)
	}
	if !g.Set(c, grid.Empty(), grid.WriteForce) {
		t.Error("forced write of empty should succeed")
	}
	if !g.IsEmpty(c) {
		t.Error("cell should be empty after forced clear")
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := grid.New(4, 4)
	g.Set(core.V(0, 0), grid.Solid(), grid.WriteForce)
	before := g.Clone()

	outside := []core.Vector2{
		core.V(-1, 0), core.V(0, -1), core.V(4, 0), core.V(0, 4), core.V(100, -100),
	}

	for _, c := range outside {
		if _, ok := g.Get(c); ok {
			t.Errorf("Get(%v) should report out of bounds", c)
		}
		if g.Set(c, grid.Solid(), grid.WriteSafe) {
			t.Errorf("safe Set(%v) should fail", c)
		}
		if g.Set(c, grid.Solid(), grid.WriteForce) {
			t.Errorf("forced Set(%v) should fail", c)
		}
		if g.CompareAndSwap(c, grid.Empty(), grid.Solid()) {
			t.Errorf("CompareAndSwap(%v) should fail", c)
		}
		if g.IsEmpty(c) {
			t.Errorf("IsEmpty(%v) should be false out of bounds", c)
		}
	}

	if !g.Equal(before) {
		t.Error("out-of-bounds writes must not mutate the grid")
	}
}

func TestGridCompareAndSwap(t *testing.T) {
	g := grid.New(2, 2)
	c := core.V(1, 0)

	if !g.CompareAndSwap(c, grid.Empty(), grid.Agent(2)) {
		t.Fatal("swap from empty should succeed")
	}
	if g.CompareAndSwap(c, grid.Empty(), grid.Agent(3)) {
		t.Error("swap with stale expected value should fail")
	}
	if !g.CompareAndSwap(c, grid.Agent(2), grid.Agent(3)) {
		t.Error("swap with matching expected value should succeed")
	}
	if cell, _ := g.Get(c); cell.Facing != 3 {
		t.Errorf("expected facing 3, got %d", cell.Facing)
	}
}

func TestGridFillAndFind(t *testing.T) {
	g := grid.New(6, 4)
	g.Fill(core.NewRect(4, 2, 5, 5), grid.Solid()) // partially outside

	if got := g.Count(grid.KindSolid); got != 4 {
		t.Errorf("expected 4 solid cells after clipped fill, got %d", got)
	}

	g.Set(core.V(1, 3), grid.Agent(1), grid.WriteForce)
	found := g.Find(grid.KindAgent)
	if len(found) != 1 || found[0] != core.V(1, 3) {
		t.Errorf("Find(agent) = %v, expected [(1,3)]", found)
	}
}

func TestGridRowsRoundTrip(t *testing.T) {
	codes := [][]int{
		{0, 0, 1},
		{256, 1, 0},
		{0, 200, 259},
	}

	g, err := grid.FromCodes(codes)
	if err != nil {
		t.Fatalf("FromCodes() failed: %v", err)
	}

	cell, _ := g.Get(core.V(0, 1))
	if cell.Kind != grid.KindAgent || cell.Facing != 1 {
		t.Errorf("(0,1) should be agent/1, got %v", cell)
	}

	rows := g.Rows()
	for y := range codes {
		for x := range codes[y] {
			if rows[y][x] != codes[y][x] {
				t.Errorf("Rows()[%d][%d] = %d, expected %d", y, x, rows[y][x], codes[y][x])
			}
		}
	}

	// Rows is a copy
	rows[0][0] = 1
	if !g.IsEmpty(core.V(0, 0)) {
		t.Error("mutating Rows() output must not change the grid")
	}
}

func TestFromCodesErrors(t *testing.T) {
	if _, err := grid.FromCodes([][]int{{0, 0}, {0}}); err == nil {
		t.Error("ragged rows should fail")
	}
	_, err := grid.FromCodes([][]int{{0, 7}})
	if !errors.Is(err, grid.ErrUnknownCode) {
		t.Errorf("expected ErrUnknownCode, got %v", err)
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(core.V(1, 1), grid.Solid(), grid.WriteForce)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	g.Set(core.V(1, 1), grid.Empty(), grid.WriteForce)
	if clone.IsEmpty(core.V(1, 1)) {
		t.Error("clone should not be affected by original modification")
	}
	if g.Equal(clone) {
		t.Error("grids should differ after modification")
	}
	if g.Equal(grid.New(3, 2)) {
		t.Error("grids of different size are never equal")
	}
}

func TestCellCodes(t *testing.T) {
	tests := []struct {
		cell grid.Cell
		code int
	}{
		{grid.Empty(), 0},
		{grid.Solid(), 1},
		{grid.Agent(0), 255},
		{grid.Agent(1), 256},
		{grid.Agent(4), 259},
		{grid.Cell{Kind: grid.KindPathStart}, 200},
		{grid.Cell{Kind: grid.KindPathHoriz}, 201},
		{grid.Cell{Kind: grid.KindPathVert}, 202},
	}

	for _, tc := range tests {
		t.Run(tc.cell.String(), func(t *testing.T) {
			if got := tc.cell.Code(); got != tc.code {
				t.Errorf("Code() = %d, expected %d", got, tc.code)
			}
			parsed, err := grid.CellFromCode(tc.code)
			if err != nil {
				t.Fatalf("CellFromCode(%d) failed: %v", tc.code, err)
			}
			if parsed != tc.cell {
				t.Errorf("CellFromCode(%d) = %v, expected %v", tc.code, parsed, tc.cell)
			}
		})
	}

	for _, bad := range []int{-1, 2, 199, 254, 262} {
		if _, err := grid.CellFromCode(bad); err == nil {
			t.Errorf("CellFromCode(%d) should fail", bad)
		}
	}
}
