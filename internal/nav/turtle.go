package nav

import (
	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/grid"
)

// Outcome describes what a single Update did.
type Outcome uint8

const (
	// OutcomeArrived means the turtle is on its destination; nothing changed.
	OutcomeArrived Outcome = iota
	// OutcomeTurned means the tick was spent on one turn step.
	OutcomeTurned
	// OutcomeMoved means the turtle advanced one cell.
	OutcomeMoved
	// OutcomeBlocked means no candidate was usable this tick.
	OutcomeBlocked
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeArrived:
		return "arrived"
	case OutcomeTurned:
		return "turned"
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Turtle is a nearly blind agent that only looks at the cells next to it.
// It borrows the grid and only ever writes its own cell and the one it
// moves into.
type Turtle struct {
	Position    core.Vector2
	Heading     Direction
	Destination core.Vector2
	Speed       float64 // cells per second, consumed by the driver
	Moving      bool    // refreshed at the start of each Update
	Bumped      bool

	Turns   int
	Moves   int
	Blocked int

	world *grid.Grid
	rng   Chooser
}

// Spawn places a turtle facing East at spawn and targets spawn+offset.
// It occupies its cell immediately; ok is false if the spawn cell is out of
// bounds or already taken.
func Spawn(world *grid.Grid, spawn, offset core.Vector2, speed float64, rng Chooser) (t *Turtle, ok bool) {
	t = &Turtle{
		Position:    spawn,
		Heading:     East,
		Destination: spawn.Add(offset),
		Speed:       speed,
		world:       world,
		rng:         rng,
	}
	if !world.Set(spawn, t.cell(), grid.WriteSafe) {
		return nil, false
	}
	t.Moving = t.Position != t.Destination
	return t, true
}

func (t *Turtle) cell() grid.Cell {
	return grid.Agent(uint8(t.Heading))
}

// Update runs one tick of the greedy movement algorithm and commits at most
// one change: a turn step or a single move. Callers must not run Updates
// concurrently on the same grid.
func (t *Turtle) Update() Outcome {
	delta := t.Destination.Sub(t.Position)
	t.Moving = !delta.IsZero()
	t.Bumped = false
	if !t.Moving {
		return OutcomeArrived
	}

	for _, step := range delta.OrthoNormalsByRank() {
		if step.IsZero() {
			continue
		}
		target := t.Position.Add(step)
		if !t.world.IsEmpty(target) {
			continue
		}

		if want := FromVector(step); want != t.Heading {
			t.Heading, _ = TurnTowards(t.Heading, want, t.rng)
			t.world.Set(t.Position, t.cell(), grid.WriteForce)
			t.Turns++
			return OutcomeTurned
		}

		if t.world.Set(target, t.cell(), grid.WriteSafe) {
			t.world.Set(t.Position, grid.Empty(), grid.WriteForce)
			t.Position = target
			t.Moves++
			return OutcomeMoved
		}
	}

	t.Bumped = true
	t.Blocked++
	return OutcomeBlocked
}

// Sense returns what is directly in front of the turtle.
// ok is false when the front cell is outside the grid.
func (t *Turtle) Sense() (cell grid.Cell, ok bool) {
	return t.world.Get(t.Position.Add(t.Heading.Vector()))
}

// Remaining returns the vector from the turtle to its destination.
func (t *Turtle) Remaining() core.Vector2 {
	return t.Destination.Sub(t.Position)
}
