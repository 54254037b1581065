package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/registry"
	"github.com/vovakirdan/turtlesim/internal/sim"
	"github.com/vovakirdan/turtlesim/internal/storage"
)

const defaultTickRate = 30

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configure a Model beyond the runtime config.
type Options struct {
	Store     *storage.Store // nil disables run history
	Logger    *log.Logger    // nil discards
	AutoExit  bool           // quit as soon as the run finishes
	InSession bool           // Back returns to the picker instead of doing nothing
}

// recorder is implemented by scenarios whose runs can be stored.
type recorder interface {
	Summary(elapsed time.Duration) storage.Run
}

// Model is the Bubble Tea model for one running simulation.
type Model struct {
	sim        registry.Scenario
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	state      core.SimState
	started    time.Time
	tickID     int64
	width      int
	height     int
	saved      bool // Whether the current run has been recorded
	lastRunID  string
	err        error
	quitting   bool
	backToMenu bool
}

// NewModel resets sc with cfg and wraps it in a Bubble Tea model.
func NewModel(sc registry.Scenario, cfg core.RuntimeConfig, opts Options) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := sc.Reset(cfg); err != nil {
		return Model{}, err
	}

	m := Model{
		sim:        sc,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		state:      sc.State(),
		started:    time.Now(),
		tickID:     nextTickID(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(m.width, m.screenHeight())
	return m, nil
}

// RuntimeFor fills the frame rate from the scenario configuration when the
// caller left it unset.
func RuntimeFor(s *sim.Simulation, rc core.RuntimeConfig) core.RuntimeConfig {
	if rc.TickRate <= 0 {
		rc.TickRate = s.Config().Timing.TickRate
	}
	return rc
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.screenHeight())
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.screenHeight())
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.opts.InSession {
			m.stop()
			m.backToMenu = true
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.stop()
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes one platform frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.stop()
		m.config.Seed = time.Now().UnixNano()
		if err := m.sim.Reset(m.config); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.state = m.sim.State()
		m.saved = false
		m.started = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.tickID)
	}

	result := m.sim.Step(m.inputFrame)
	m.state = result.State
	m.inputFrame.Clear()

	if m.state.Status.Finished() && !m.saved {
		m.saveRun()
		if m.opts.AutoExit {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, tickCmd(m.config.TickRate, m.tickID)
}

// stop aborts an unfinished run and records it.
func (m *Model) stop() {
	m.sim.Abort()
	m.state = m.sim.State()
	m.saveRun()
}

// saveRun stores the finished run once. Aborted runs that never updated
// are not worth keeping.
func (m *Model) saveRun() {
	if m.saved || !m.state.Status.Finished() {
		return
	}
	m.saved = true

	if m.state.Status == core.StatusAborted && m.state.Updates == 0 {
		return
	}
	rec, ok := m.sim.(recorder)
	if !ok || m.opts.Store == nil {
		return
	}

	id, err := m.opts.Store.SaveRun(rec.Summary(time.Since(m.started)))
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.lastRunID = id
	m.logger.Info("run saved", "id", id, "scenario", m.sim.ID(), "status", m.state.Status)
}

// screenHeight is the terminal height minus the help bar.
func (m Model) screenHeight() int {
	h := m.height - strings.Count(m.help.View(m.keys), "\n") - 1
	return max(h, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.sim.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed simulation state.
func (m Model) State() core.SimState {
	return m.state
}

// LastRunID returns the history id of the last saved run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single scenario and returns the ID
// of the recorded run, if any.
func Run(sc registry.Scenario, cfg core.RuntimeConfig, opts Options) (string, error) {
	model, err := NewModel(sc, cfg, opts)
	if err != nil {
		return "", err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.LastRunID(), m.Err()
	}
	return "", nil
}
