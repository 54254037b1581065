package sim

import (
	"fmt"

	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/render"
)

const hudLines = 2

var statusColors = map[core.Status]core.Color{
	core.StatusRunning: core.ColorCyan,
	core.StatusArrived: core.ColorBrightGreen,
	core.StatusStalled: core.ColorRed,
	core.StatusAborted: core.ColorOrange,
}

// Render draws the world, the trail overlay and the HUD into dst.
func (s *Simulation) Render(dst *core.Screen) {
	if s.world == nil {
		return
	}

	top := 0
	reserved := 0
	if s.cfg.Render.ShowHUD {
		top = 1
		reserved = hudLines
	}

	mode, ok := render.Fit(s.world.Width(), s.world.Height(), dst.Width(), dst.Height()-reserved)
	if !ok {
		fw, fh := render.FrameSize(render.ModeCompact, s.world.Width(), s.world.Height())
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", fw, fh+reserved))
		return
	}

	fw, fh := render.FrameSize(mode, s.world.Width(), s.world.Height())
	left := (dst.Width() - fw) / 2
	render.Draw(dst, left, top, mode, s.world, s.Overlay())

	if s.cfg.Render.ShowHUD {
		s.renderHUD(dst, left, top+fh, fw)
	}
}

func (s *Simulation) renderHUD(dst *core.Screen, left, bottom, width int) {
	t := s.turtle

	status := string(s.status)
	if s.paused {
		status = "paused"
	}
	title := fmt.Sprintf("%s [%s]", s.Title(), status)
	dst.DrawTextColored(left, 0, title, statusColors[s.status])

	if seed := fmt.Sprintf("seed %d", s.seed); len(title)+len(seed) < width {
		dst.DrawTextColored(left+width-len(seed), 0, seed, core.ColorGray)
	}

	stats := fmt.Sprintf("upd %d  turn %d  move %d  %s -> %s  facing %s",
		s.updates, t.Turns, t.Moves, t.Position, t.Destination, t.Heading)
	if t.Bumped {
		stats += "  bumped"
	}
	dst.DrawTextColored(left, bottom, stats, core.ColorWhite)
}
