package sim

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turtlesim/internal/config"
	"github.com/vovakirdan/turtlesim/internal/registry"
	"github.com/vovakirdan/turtlesim/internal/storage"
)

// Open creates the registered scenario id, loads its configuration through
// the usual search order (customPath first) and attaches logger.
func Open(id, customPath string, logger *log.Logger) (*Simulation, error) {
	sc, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	s, ok := sc.(*Simulation)
	if !ok {
		return nil, fmt.Errorf("sim: scenario %q is not a turtle simulation", id)
	}

	cfg, err := config.Load(id, customPath)
	if err != nil {
		return nil, err
	}
	if err := s.Configure(cfg); err != nil {
		return nil, err
	}
	s.SetLogger(logger)
	return s, nil
}

// Summary describes the current run for the history store.
func (s *Simulation) Summary(elapsed time.Duration) storage.Run {
	r := storage.Run{
		Scenario: s.id,
		Seed:     s.seed,
		Updates:  s.updates,
		Outcome:  s.status,
		Duration: elapsed,
		Spawn:    s.cfg.Turtle.Spawn.Vector(),
	}
	if s.world != nil {
		r.Width = s.world.Width()
		r.Height = s.world.Height()
	}
	if t := s.turtle; t != nil {
		r.Destination = t.Destination
		r.Final = t.Position
		r.Turns = t.Turns
		r.Moves = t.Moves
	}
	return r
}
