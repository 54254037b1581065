package sim

import (
	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/nav"
)

// Snapshot captures the complete simulation state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Seed        int64
	Updates     int
	Position    core.Vector2
	Destination core.Vector2
	Heading     nav.Direction
	Turns       int
	Moves       int
	Blocked     int
	Moving      bool
	Status      core.Status
	Rows        [][]int
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.tick,
		Seed:    s.seed,
		Updates: s.updates,
		Status:  s.status,
	}
	if t := s.turtle; t != nil {
		snap.Position = t.Position
		snap.Destination = t.Destination
		snap.Heading = t.Heading
		snap.Turns = t.Turns
		snap.Moves = t.Moves
		snap.Blocked = t.Blocked
		snap.Moving = t.Moving
	}
	if s.world != nil {
		snap.Rows = s.world.Rows()
	}
	return snap
}
