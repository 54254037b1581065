package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/turtlesim/internal/config"
	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/sim"
	"github.com/vovakirdan/turtlesim/internal/storage"
)

// fastTunnel updates the turtle on every frame.
func fastTunnel() *sim.Simulation {
	cfg := config.DefaultTunnelConfig()
	cfg.Turtle.Speed = float64(cfg.Timing.TickRate)
	return sim.New(sim.ScenarioTunnel, cfg)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newModel(t *testing.T, opts Options) Model {
	t.Helper()
	m, err := NewModel(fastTunnel(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}, opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg{ID: m.tickID})
}

func TestModelRunsToArrivalAndSavesOnce(t *testing.T) {
	store := openStore(t)
	m := newModel(t, Options{Store: store})

	for i := 0; i < 100 && !m.State().Status.Finished(); i++ {
		m, _ = tick(t, m)
	}
	if m.State().Status != core.StatusArrived || m.State().Updates != 19 {
		t.Fatalf("state = %+v, expected arrived after 19 updates", m.State())
	}
	if m.LastRunID() == "" {
		t.Fatal("finished run was not saved")
	}

	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		m, cmd = tick(t, m)
	}
	if cmd == nil {
		t.Error("without auto-exit the frame clock keeps running")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(runs))
	}
	if runs[0].ID != m.LastRunID() || runs[0].Outcome != core.StatusArrived || runs[0].Updates != 19 {
		t.Errorf("saved run = %+v", runs[0])
	}
}

func TestModelPauseAndStep(t *testing.T) {
	m := newModel(t, Options{})

	m, _ = tick(t, m)
	if m.State().Updates != 1 {
		t.Fatalf("updates = %d, expected 1", m.State().Updates)
	}

	m, _ = send(t, m, keyPress(" "))
	m, _ = tick(t, m)
	if !m.State().Paused {
		t.Fatal("space should pause the simulation")
	}
	m, _ = tick(t, m)
	if m.State().Updates != 1 {
		t.Errorf("paused simulation advanced to %d updates", m.State().Updates)
	}

	m, _ = send(t, m, keyPress("n"))
	m, _ = tick(t, m)
	if m.State().Updates != 2 || !m.State().Paused {
		t.Errorf("single step: state = %+v", m.State())
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newModel(t, Options{})

	m, cmd := send(t, m, TickMsg{ID: m.tickID + 1000})
	if cmd != nil || m.State().Updates != 0 {
		t.Errorf("stale tick was processed: cmd=%v state=%+v", cmd != nil, m.State())
	}
}

func TestModelQuitAbortsAndSaves(t *testing.T) {
	store := openStore(t)
	m := newModel(t, Options{Store: store})

	for i := 0; i < 3; i++ {
		m, _ = tick(t, m)
	}
	m, cmd := send(t, m, keyPress("q"))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].Outcome != core.StatusAborted || runs[0].Updates != 3 {
		t.Errorf("saved runs = %+v", runs)
	}
}

func TestModelQuitBeforeFirstUpdateSkipsSave(t *testing.T) {
	store := openStore(t)
	m := newModel(t, Options{Store: store})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Fatal("ctrl+c should quit")
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("an untouched run should not be saved, got %d", len(runs))
	}
}

func TestModelRestartUsesFreshSeed(t *testing.T) {
	store := openStore(t)
	m := newModel(t, Options{Store: store})

	for i := 0; i < 4; i++ {
		m, _ = tick(t, m)
	}
	m, _ = send(t, m, keyPress("r"))
	m, _ = tick(t, m)

	if m.State().Status != core.StatusRunning || m.State().Updates != 0 {
		t.Errorf("after restart state = %+v", m.State())
	}
	if m.config.Seed == 1 {
		t.Error("restart should pick a new seed")
	}
	runs, _ := store.RecentRuns(10)
	if len(runs) != 1 || runs[0].Outcome != core.StatusAborted {
		t.Errorf("the interrupted run should be saved as aborted: %+v", runs)
	}
}

func TestModelAutoExit(t *testing.T) {
	m := newModel(t, Options{AutoExit: true})

	var cmd tea.Cmd
	for i := 0; i < 100 && !m.IsQuitting(); i++ {
		m, cmd = tick(t, m)
	}
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("auto-exit model should quit when the run finishes")
	}
	if m.State().Status != core.StatusArrived {
		t.Errorf("status = %s", m.State().Status)
	}
}

func TestModelBackOnlyInSession(t *testing.T) {
	m := newModel(t, Options{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("a standalone model has no menu to return to")
	}

	m = newModel(t, Options{InSession: true})
	m, _ = tick(t, m)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc should return to the picker in a session")
	}
	if m.State().Status != core.StatusAborted {
		t.Errorf("leaving should abort the run, status = %s", m.State().Status)
	}
}

func TestModelView(t *testing.T) {
	m := newModel(t, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	if h := m.screen.Height(); h != 23 {
		t.Errorf("screen height = %d, expected 23 (one help line)", h)
	}
	view := m.View()
	if view == "" {
		t.Fatal("View() is empty")
	}

	m, _ = send(t, m, keyPress("?"))
	if m.screen.Height() >= 23 {
		t.Errorf("full help should shrink the screen, height = %d", m.screen.Height())
	}
}
