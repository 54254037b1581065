// Package nav holds the turtle: its heading model, the one-step turn state
// machine and the greedy per-tick movement over a grid.
package nav

import (
	"github.com/vovakirdan/turtlesim/internal/core"
)

// Direction is the closed set of headings. The numeric values are the
// facing indexes stored in agent cells and must not be reordered.
type Direction uint8

const (
	East Direction = iota + 1
	West
	North
	South
	Up   // vertical motion only, no planar vector
	Down // vertical motion only, no planar vector
)

// Planar lists the four directions reachable from a 2D vector.
var Planar = []Direction{East, West, North, South}

var directionNames = [...]string{
	East:  "east",
	West:  "west",
	North: "north",
	South: "south",
	Up:    "up",
	Down:  "down",
}

// String returns the direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the six headings.
func (d Direction) Valid() bool {
	return d >= East && d <= Down
}

// Vector returns the unit vector for a planar direction.
// North is positive y; rows grow downward, so North points down the screen.
// Up and Down have no planar component and return the zero vector.
func (d Direction) Vector() core.Vector2 {
	switch d {
	case East:
		return core.V(1, 0)
	case West:
		return core.V(-1, 0)
	case North:
		return core.V(0, 1)
	case South:
		return core.V(0, -1)
	default:
		return core.V(0, 0)
	}
}

// Axis returns the planar axis d moves along. ok is false for Up and Down.
func (d Direction) Axis() (axis core.Axis, ok bool) {
	switch d {
	case East, West:
		return core.AxisX, true
	case North, South:
		return core.AxisY, true
	default:
		return 0, false
	}
}

// FromVector converts a vector to the heading of its dominant axis:
// x maps to East (West when negative), y maps to North (South when negative).
// Equal magnitudes resolve to the x axis, and the zero vector yields East.
func FromVector(v core.Vector2) Direction {
	dom := v.DominantAxis()
	if dom.Axis == core.AxisY {
		if dom.Value < 0 {
			return South
		}
		return North
	}
	if dom.Value < 0 {
		return West
	}
	return East
}

// Chooser picks the perpendicular heading when a turn would otherwise be a
// reversal. *rand.Rand satisfies it; tests pass a seeded source or a stub.
type Chooser interface {
	Intn(n int) int
}

// TurnTowards advances current one step toward desired.
//
//   - current == desired: no transition, reached is false.
//   - same axis, opposite sense (East/West or North/South): the turtle cannot
//     reverse in place, so it turns onto one of the two perpendicular
//     headings picked by rng, and reached is false.
//   - otherwise the heading becomes desired and reached is true.
func TurnTowards(current, desired Direction, rng Chooser) (next Direction, reached bool) {
	if current == desired {
		return current, false
	}

	curAxis, curOK := current.Axis()
	wantAxis, wantOK := desired.Axis()
	if curOK && wantOK && curAxis == wantAxis {
		perpendicular := [2]Direction{North, South}
		if curAxis == core.AxisY {
			perpendicular = [2]Direction{East, West}
		}
		return perpendicular[rng.Intn(2)], false
	}

	return desired, true
}
