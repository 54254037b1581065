// Package sim runs a single turtle on a generated world. It owns the grid,
// the turtle and the seeded chooser, gates turtle updates against the
// platform frame clock and decides when a run has arrived, stalled or been
// aborted.
package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turtlesim/internal/config"
	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/grid"
	"github.com/vovakirdan/turtlesim/internal/nav"
	"github.com/vovakirdan/turtlesim/internal/world"
)

// Simulation implements registry.Scenario.
type Simulation struct {
	id     string
	cfg    config.SimConfig
	logger *log.Logger

	seed   int64
	rng    *rand.Rand
	world  *grid.Grid
	trail  *grid.Grid // destination marker and breadcrumbs, drawn under the world
	turtle *nav.Turtle

	tick           uint64
	updates        int
	moveEveryTicks int
	moveTicker     int // frames since the last turtle update
	sinceMove      int // turtle updates since the last position change
	lastOutcome    nav.Outcome

	status      core.Status
	paused      bool
	showOverlay bool
}

// New creates a simulation for scenario id with the given configuration.
// Call Reset before stepping it.
func New(id string, cfg config.SimConfig) *Simulation {
	return &Simulation{
		id:     id,
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
}

// SetLogger replaces the discard logger.
func (s *Simulation) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	s.logger = l.With("scenario", s.id)
}

// ID returns the scenario identifier.
func (s *Simulation) ID() string { return s.id }

// Title returns the display name.
func (s *Simulation) Title() string {
	if s.cfg.Name != "" {
		return s.cfg.Name
	}
	return s.id
}

// Config returns the active configuration.
func (s *Simulation) Config() config.SimConfig { return s.cfg }

// Configure validates and stores cfg for the next Reset.
func (s *Simulation) Configure(cfg config.SimConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("sim %s: %w", s.id, err)
	}
	s.cfg = cfg
	return nil
}

// Reset generates the world and spawns the turtle.
func (s *Simulation) Reset(rc core.RuntimeConfig) error {
	s.seed = rc.Seed
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(s.seed))

	g, err := world.Generate(s.cfg.WorldParams())
	if err != nil {
		return fmt.Errorf("sim %s: %w", s.id, err)
	}

	spawn := s.cfg.Turtle.Spawn.Vector()
	t, ok := nav.Spawn(g, spawn, s.cfg.Turtle.Offset.Vector(), s.cfg.Turtle.Speed, s.rng)
	if !ok {
		return fmt.Errorf("sim %s: spawn cell %s is not empty", s.id, spawn)
	}

	s.world = g
	s.turtle = t
	s.trail = grid.New(g.Width(), g.Height())
	s.trail.Set(t.Destination, grid.Cell{Kind: grid.KindPathStart}, grid.WriteForce)

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = s.cfg.Timing.TickRate
	}
	s.moveEveryTicks = s.cfg.MoveEveryTicks(tickRate)
	s.moveTicker = 0
	s.tick = 0
	s.updates = 0
	s.sinceMove = 0
	s.paused = false
	s.showOverlay = s.cfg.Render.ShowOverlay
	s.status = core.StatusRunning
	if !t.Moving {
		s.status = core.StatusArrived
	}

	s.logger.Debug("reset",
		"seed", s.seed,
		"size", fmt.Sprintf("%dx%d", g.Width(), g.Height()),
		"spawn", spawn,
		"destination", t.Destination,
		"move_every", s.moveEveryTicks,
	)
	return nil
}

// Step advances the simulation by one platform frame.
func (s *Simulation) Step(in core.InputFrame) core.StepResult {
	s.tick++

	if in.Has(core.ActionToggleOverlay) {
		s.showOverlay = !s.showOverlay
	}
	if in.Has(core.ActionPause) && !s.status.Finished() {
		s.paused = !s.paused
	}

	updated := false
	switch {
	case s.status.Finished():
	case s.paused:
		if in.Has(core.ActionStep) {
			s.Advance()
			updated = true
		}
	default:
		s.moveTicker++
		if s.moveTicker >= s.moveEveryTicks {
			s.moveTicker = 0
			s.Advance()
			updated = true
		}
	}

	return core.StepResult{State: s.State(), Updated: updated}
}

// Advance runs exactly one turtle update regardless of the frame clock and
// returns its outcome. Once the run has finished it only repeats the last
// outcome.
func (s *Simulation) Advance() nav.Outcome {
	if s.status.Finished() {
		return s.lastOutcome
	}

	prev := s.turtle.Position
	out := s.turtle.Update()
	s.updates++
	s.lastOutcome = out

	s.logger.Debug("update",
		"n", s.updates,
		"outcome", out,
		"position", s.turtle.Position,
		"heading", s.turtle.Heading,
		"remaining", s.turtle.Remaining(),
	)
	if out == nav.OutcomeBlocked {
		if ahead, ok := s.turtle.Sense(); ok {
			s.logger.Debug("blocked", "ahead", ahead)
		}
	}

	if out == nav.OutcomeMoved {
		s.sinceMove = 0
		s.markTrail(prev, s.turtle.Position.Sub(prev))
	} else {
		s.sinceMove++
	}

	switch {
	case !s.turtle.Moving:
		s.finish(core.StatusArrived)
	case s.cfg.Timing.StallLimit > 0 && s.sinceMove >= s.cfg.Timing.StallLimit:
		s.finish(core.StatusStalled)
	case s.cfg.Timing.MaxUpdates > 0 && s.updates >= s.cfg.Timing.MaxUpdates:
		s.finish(core.StatusAborted)
	}
	return out
}

// Abort ends a running simulation early.
func (s *Simulation) Abort() {
	if s.turtle != nil && !s.status.Finished() {
		s.finish(core.StatusAborted)
	}
}

func (s *Simulation) finish(status core.Status) {
	s.status = status
	s.paused = false
	s.logger.Info("run finished",
		"status", status,
		"updates", s.updates,
		"turns", s.turtle.Turns,
		"moves", s.turtle.Moves,
		"position", s.turtle.Position,
	)
}

// markTrail leaves a breadcrumb on the cell the turtle just left.
func (s *Simulation) markTrail(c, step core.Vector2) {
	kind := grid.KindPathHoriz
	if step.X == 0 {
		kind = grid.KindPathVert
	}
	s.trail.Set(c, grid.Cell{Kind: kind}, grid.WriteForce)
}

// State returns the current simulation state.
func (s *Simulation) State() core.SimState {
	moving := false
	if s.turtle != nil {
		moving = s.turtle.Moving
	}
	return core.SimState{
		Status:  s.status,
		Updates: s.updates,
		Moving:  moving,
		Paused:  s.paused,
	}
}

// Seed returns the seed used by the last Reset.
func (s *Simulation) Seed() int64 { return s.seed }

// World returns the live grid. Callers must only read it.
func (s *Simulation) World() *grid.Grid { return s.world }

// Overlay returns the trail layer when it is visible, nil otherwise.
func (s *Simulation) Overlay() *grid.Grid {
	if !s.showOverlay {
		return nil
	}
	return s.trail
}

// Turtle returns the agent.
func (s *Simulation) Turtle() *nav.Turtle { return s.turtle }
