package sim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/turtlesim/internal/config"
	"github.com/vovakirdan/turtlesim/internal/core"
)

func TestSummary(t *testing.T) {
	s := newSim(t, ScenarioTunnel, config.DefaultTunnelConfig(), 7)
	runToEnd(t, s, 100)

	r := s.Summary(3 * time.Second)
	if r.Scenario != ScenarioTunnel || r.Seed != 7 || r.Outcome != core.StatusArrived {
		t.Errorf("summary header = %+v", r)
	}
	if r.Width != 12 || r.Height != 10 {
		t.Errorf("size = %dx%d, expected 12x10", r.Width, r.Height)
	}
	if r.Spawn != core.V(0, 0) || r.Destination != core.V(5, 5) || r.Final != core.V(5, 5) {
		t.Errorf("positions = %v %v %v", r.Spawn, r.Destination, r.Final)
	}
	if r.Updates != 19 || r.Moves != 10 || r.Turns != 8 {
		t.Errorf("counters = %d/%d/%d, expected 19/10/8", r.Updates, r.Moves, r.Turns)
	}
	if r.Duration != 3*time.Second {
		t.Errorf("duration = %v", r.Duration)
	}
}

func TestOpenUsesConfigSearchOrder(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	s, err := Open(ScenarioWalled, "", nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if s.Title() != "Walled Tunnel" {
		t.Errorf("Title() = %q", s.Title())
	}

	custom := config.DefaultTunnelConfig()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := `name: Quick Tunnel
world: { width: 12, height: 10, surface_depth: 2, tunnel_width: 2.5 }
turtle: { spawn: { x: 0, y: 0 }, offset: { x: 5, y: 5 }, speed: 3 }
timing: { tick_rate: 30, stall_limit: 10 }
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err = Open(ScenarioTunnel, path, nil)
	if err != nil {
		t.Fatalf("Open(custom) failed: %v", err)
	}
	if s.Title() != "Quick Tunnel" || s.Config().Turtle.Speed != 3 {
		t.Errorf("custom config not applied: %+v", s.Config())
	}
	if s.Config().World.Width != custom.World.Width {
		t.Errorf("width = %d", s.Config().World.Width)
	}
}

func TestOpenUnknownScenario(t *testing.T) {
	if _, err := Open("maze", "", nil); err == nil {
		t.Error("Open() of an unregistered scenario should fail")
	}
}
