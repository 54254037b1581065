package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/render"
	"github.com/vovakirdan/turtlesim/internal/sim"
	"github.com/vovakirdan/turtlesim/internal/storage"
)

// clearScreen homes the cursor and erases the display.
var clearScreen = termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1) +
	termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 2)

// HeadlessOptions configure RunHeadless.
type HeadlessOptions struct {
	Out      io.Writer
	Color    bool          // style glyphs with ANSI colors
	Clear    bool          // clear the terminal before each frame
	Compact  bool          // one character per cell
	Interval time.Duration // time between turtle updates; 0 means 1/speed seconds
	Store    *storage.Store
}

// HeadlessResult reports how a headless run ended.
type HeadlessResult struct {
	State   core.SimState
	Elapsed time.Duration
	RunID   string
}

// RunHeadless drives s without Bubble Tea: one turtle update per interval,
// and the frame is printed whenever the world grid changed since the last
// print. It returns when the run finishes or ctx is cancelled, in which
// case the run is aborted. s must already be Reset.
func RunHeadless(ctx context.Context, s *sim.Simulation, opts HeadlessOptions) (HeadlessResult, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = updateInterval(s.Config().Turtle.Speed)
	}

	start := time.Now()
	var tracker render.Tracker
	show := func() error {
		if !tracker.Changed(s.World()) {
			return nil
		}
		tracker.MarkDrawn(s.World())
		return writeFrame(opts, s, time.Since(start))
	}

	if err := show(); err != nil {
		return HeadlessResult{}, err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !s.State().Status.Finished() {
		select {
		case <-ctx.Done():
			s.Abort()
		case <-ticker.C:
			s.Advance()
			if err := show(); err != nil {
				return HeadlessResult{}, err
			}
		}
	}

	res := HeadlessResult{State: s.State(), Elapsed: time.Since(start)}
	fmt.Fprintf(opts.Out, "%s after %d updates (%.1fs)\n", res.State.Status, res.State.Updates, res.Elapsed.Seconds())

	if opts.Store != nil && (res.State.Status != core.StatusAborted || res.State.Updates > 0) {
		id, err := opts.Store.SaveRun(s.Summary(res.Elapsed))
		if err != nil {
			return res, err
		}
		res.RunID = id
	}
	return res, nil
}

// updateInterval converts a speed in updates per second to a period.
func updateInterval(speed float64) time.Duration {
	if speed <= 0 {
		return time.Second
	}
	return time.Duration(float64(time.Second) / speed)
}

// writeFrame prints the world with the trail overlay and a status line.
func writeFrame(opts HeadlessOptions, s *sim.Simulation, elapsed time.Duration) error {
	mode := render.ModeBox
	if opts.Compact {
		mode = render.ModeCompact
	}

	world := s.World()
	var frame string
	if opts.Color {
		w, h := render.FrameSize(mode, world.Width(), world.Height())
		screen := core.NewScreen(w, h)
		render.Draw(screen, 0, 0, mode, world, s.Overlay())
		frame = RenderScreen(screen)
	} else {
		frame = render.Text(mode, world, s.Overlay())
	}

	prefix := ""
	if opts.Clear {
		prefix = clearScreen
	}

	t := s.Turtle()
	_, err := fmt.Fprintf(opts.Out, "%s%s\n%.1fs  upd %d  %s -> %s  facing %s\n",
		prefix, frame, elapsed.Seconds(), s.State().Updates, t.Position, t.Destination, t.Heading)
	return err
}
