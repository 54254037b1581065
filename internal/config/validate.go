package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/turtlesim/internal/core"
)

// ErrInvalid marks every validation problem.
var ErrInvalid = errors.New("config: invalid")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports every problem in c at once.
// Spawn cells that end up solid are only detected when the world is built.
func (c SimConfig) Validate() error {
	var errs []error

	w, h := c.World.Width, c.World.Height
	if w <= 0 || h <= 0 {
		errs = append(errs, invalid("world size %dx%d must be positive", w, h))
	}
	if c.World.TunnelWidth < 0 {
		errs = append(errs, invalid("tunnel_width %.2f must not be negative", c.World.TunnelWidth))
	}
	bounds := core.NewRect(0, 0, w, h)
	for i, r := range c.World.Walls {
		switch {
		case r.W <= 0 || r.H <= 0:
			errs = append(errs, invalid("wall %d has empty size %dx%d", i, r.W, r.H))
		case !r.Bounds().Intersects(bounds):
			errs = append(errs, invalid("wall %d at (%d,%d) lies outside the world", i, r.X, r.Y))
		}
	}

	spawn := c.Turtle.Spawn.Vector()
	if !bounds.ContainsVec(spawn) {
		errs = append(errs, invalid("spawn %s outside %dx%d world", spawn, w, h))
	}
	if dest := c.Turtle.Destination(); !bounds.ContainsVec(dest) {
		errs = append(errs, invalid("destination %s outside %dx%d world", dest, w, h))
	}
	for _, r := range c.World.Walls {
		if r.Bounds().ContainsVec(spawn) {
			errs = append(errs, invalid("spawn %s is inside a wall", spawn))
			break
		}
	}
	if c.Turtle.Speed <= 0 {
		errs = append(errs, invalid("turtle speed %.2f must be positive", c.Turtle.Speed))
	}

	if c.Timing.TickRate <= 0 {
		errs = append(errs, invalid("tick_rate %d must be positive", c.Timing.TickRate))
	}
	if c.Timing.StallLimit < 0 {
		errs = append(errs, invalid("stall_limit %d must not be negative", c.Timing.StallLimit))
	}
	if c.Timing.MaxUpdates < 0 {
		errs = append(errs, invalid("max_updates %d must not be negative", c.Timing.MaxUpdates))
	}

	return errors.Join(errs...)
}
