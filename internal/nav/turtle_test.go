package nav

import (
	"testing"

	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/grid"
)

func spawnOn(t *testing.T, g *grid.Grid, spawn, offset core.Vector2) *Turtle {
	t.Helper()
	tt, ok := Spawn(g, spawn, offset, 1, fixedChooser(0))
	if !ok {
		t.Fatalf("Spawn(%v) failed", spawn)
	}
	return tt
}

// assertSingleAgent checks the one-occupant invariant.
func assertSingleAgent(t *testing.T, g *grid.Grid, tt *Turtle) {
	t.Helper()
	agents := g.Find(grid.KindAgent)
	if len(agents) != 1 || agents[0] != tt.Position {
		t.Fatalf("agent cells = %v, expected exactly [%v]", agents, tt.Position)
	}
	cell, _ := g.Get(tt.Position)
	if Direction(cell.Facing) != tt.Heading {
		t.Fatalf("agent cell faces %s, turtle heads %s", Direction(cell.Facing), tt.Heading)
	}
}

func TestSpawnOccupiesCell(t *testing.T) {
	g := grid.New(5, 5)
	tt := spawnOn(t, g, core.V(1, 1), core.V(2, 3))

	if tt.Destination != core.V(3, 4) {
		t.Errorf("destination = %v, expected (3,4)", tt.Destination)
	}
	if !tt.Moving {
		t.Error("turtle away from its destination should be moving")
	}
	if tt.Heading != East {
		t.Errorf("initial heading = %s, expected east", tt.Heading)
	}
	assertSingleAgent(t, g, tt)
}

func TestSpawnRejectsOccupiedOrOutside(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(core.V(0, 0), grid.Solid(), grid.WriteForce)

	if _, ok := Spawn(g, core.V(0, 0), core.V(1, 1), 1, fixedChooser(0)); ok {
		t.Error("spawn on a solid cell should fail")
	}
	if _, ok := Spawn(g, core.V(3, 0), core.V(1, 1), 1, fixedChooser(0)); ok {
		t.Error("spawn outside the grid should fail")
	}
}

func TestUpdateMovesAlongHeading(t *testing.T) {
	g := grid.New(6, 3)
	tt := spawnOn(t, g, core.V(0, 1), core.V(3, 0))

	for i := 1; i <= 3; i++ {
		if out := tt.Update(); out != OutcomeMoved {
			t.Fatalf("update %d = %s, expected moved", i, out)
		}
		if tt.Position != core.V(i, 1) {
			t.Fatalf("after update %d position = %v", i, tt.Position)
		}
		assertSingleAgent(t, g, tt)
	}

	// Arrival is observed on the following update, not on the last move.
	if !tt.Moving {
		t.Error("the move onto the destination must not clear Moving")
	}
	if out := tt.Update(); out != OutcomeArrived {
		t.Errorf("update at destination = %s, expected arrived", out)
	}
	if tt.Moving {
		t.Error("turtle on its destination should not be moving")
	}
	if tt.Moves != 3 || tt.Turns != 0 {
		t.Errorf("moves=%d turns=%d, expected 3 and 0", tt.Moves, tt.Turns)
	}
}

func TestTurnConsumesTick(t *testing.T) {
	g := grid.New(3, 5)
	tt := spawnOn(t, g, core.V(1, 0), core.V(0, 3))

	if out := tt.Update(); out != OutcomeTurned {
		t.Fatalf("first update = %s, expected turned", out)
	}
	if tt.Position != core.V(1, 0) {
		t.Errorf("turn must not move the turtle, position = %v", tt.Position)
	}
	if tt.Heading != North {
		t.Errorf("heading = %s, expected north", tt.Heading)
	}
	if cell, _ := g.Get(tt.Position); cell.Code() != 258 {
		t.Errorf("downward-facing agent code = %d, expected 258", cell.Code())
	}
	assertSingleAgent(t, g, tt)

	if out := tt.Update(); out != OutcomeMoved {
		t.Fatalf("second update = %s, expected moved", out)
	}
	if tt.Position != core.V(1, 1) {
		t.Errorf("position = %v, expected (1,1)", tt.Position)
	}
}

func TestReversalTakesTwoTurns(t *testing.T) {
	g := grid.New(10, 5)
	tt := spawnOn(t, g, core.V(6, 2), core.V(-4, 0))

	expected := []Outcome{OutcomeTurned, OutcomeTurned, OutcomeMoved}
	for i, want := range expected {
		if got := tt.Update(); got != want {
			t.Fatalf("update %d = %s, expected %s", i+1, got, want)
		}
	}
	if tt.Heading != West || tt.Position != core.V(5, 2) {
		t.Errorf("heading=%s position=%v, expected west at (5,2)", tt.Heading, tt.Position)
	}

	for tt.Moving {
		tt.Update()
	}
	if tt.Position != core.V(2, 2) || tt.Turns != 2 || tt.Moves != 4 {
		t.Errorf("final position=%v turns=%d moves=%d", tt.Position, tt.Turns, tt.Moves)
	}
	assertSingleAgent(t, g, tt)
}

func TestObstacleFallsBackToSecondAxis(t *testing.T) {
	g := grid.New(5, 5)
	g.Set(core.V(1, 0), grid.Solid(), grid.WriteForce)
	tt := spawnOn(t, g, core.V(0, 0), core.V(3, 2))

	// East is blocked, so the y candidate wins: turn north, then move.
	if out := tt.Update(); out != OutcomeTurned || tt.Heading != North {
		t.Fatalf("update = %s heading %s, expected turn to north", out, tt.Heading)
	}
	if out := tt.Update(); out != OutcomeMoved || tt.Position != core.V(0, 1) {
		t.Fatalf("update = %s position %v, expected move to (0,1)", out, tt.Position)
	}
	if cell, _ := g.Get(core.V(1, 0)); cell != grid.Solid() {
		t.Error("obstacle must never be overwritten")
	}
}

func TestBoxedInIsNoProgress(t *testing.T) {
	g := grid.New(5, 5)
	for _, c := range []core.Vector2{core.V(1, 2), core.V(3, 2), core.V(2, 1), core.V(2, 3)} {
		g.Set(c, grid.Solid(), grid.WriteForce)
	}
	tt := spawnOn(t, g, core.V(2, 2), core.V(2, 2))
	before := g.Clone()

	for i := 0; i < 5; i++ {
		if out := tt.Update(); out != OutcomeBlocked {
			t.Fatalf("update %d = %s, expected blocked", i+1, out)
		}
		if !tt.Bumped || !tt.Moving {
			t.Fatal("boxed-in turtle should be bumped and still moving")
		}
	}
	if tt.Position != core.V(2, 2) || tt.Blocked != 5 {
		t.Errorf("position=%v blocked=%d", tt.Position, tt.Blocked)
	}
	if !g.Equal(before) {
		t.Error("blocked updates must not touch the grid")
	}
}

func TestGridEdgeCountsAsBlocked(t *testing.T) {
	g := grid.New(3, 3)
	// Destination outside the grid: the only candidate leaves the bounds.
	tt := spawnOn(t, g, core.V(2, 1), core.V(1, 0))

	if out := tt.Update(); out != OutcomeBlocked {
		t.Errorf("update = %s, expected blocked at the edge", out)
	}
	assertSingleAgent(t, g, tt)
}

func TestSenseFront(t *testing.T) {
	g := grid.New(3, 3)
	g.Set(core.V(2, 1), grid.Solid(), grid.WriteForce)
	tt := spawnOn(t, g, core.V(1, 1), core.V(0, 1))

	cell, ok := tt.Sense()
	if !ok || cell != grid.Solid() {
		t.Errorf("Sense() = (%v, %v), expected solid", cell, ok)
	}
	if tt.Remaining() != core.V(0, 1) {
		t.Errorf("Remaining() = %v, expected (0,1)", tt.Remaining())
	}
}
