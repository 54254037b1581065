package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turtlesim/internal/core"
	"github.com/vovakirdan/turtlesim/internal/sim"
	"github.com/vovakirdan/turtlesim/internal/storage"
)

type sessionScreen int

const (
	screenPicker sessionScreen = iota
	screenSim
	screenHistory
)

// SessionModel manages the full session flow: picker -> simulation or
// history -> picker. It is the top-level model of SSH sessions and of a
// local run without a scenario argument.
type SessionModel struct {
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	screen   sessionScreen
	picker   PickerModel
	sim      *Model
	history  HistoryModel
	notice   string // last error, shown above the picker
	quitting bool
}

// NewSessionModel creates a session. A non-empty scenario starts that
// simulation right away instead of showing the picker.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, scenario string) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		picker: NewPickerModel(store, cfg.ScreenW, cfg.ScreenH),
	}
	if scenario != "" {
		m.startSim(scenario)
	}
	return m
}

// startSim opens the scenario and switches to it, or stays on the picker
// with a notice.
func (m *SessionModel) startSim(id string) tea.Cmd {
	s, err := sim.Open(id, "", m.logger)
	if err != nil {
		m.notice = err.Error()
		return nil
	}

	rc := RuntimeFor(s, m.config)
	model, err := NewModel(s, rc, Options{Store: m.store, Logger: m.logger, InSession: true})
	if err != nil {
		m.notice = err.Error()
		return nil
	}

	m.notice = ""
	m.sim = &model
	m.screen = screenSim
	return model.Init()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenSim && m.sim != nil {
		return m.sim.Init()
	}
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenSim:
		return m.updateSim(msg)
	case screenHistory:
		return m.updateHistory(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates when the picker is shown.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if picker, ok := next.(PickerModel); ok {
		m.picker = picker
	}

	switch {
	case m.picker.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.picker.Selected() != nil:
		id := m.picker.Selected().ID
		m.picker = NewPickerModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.startSim(id)

	case m.picker.WantsHistory():
		m.picker = NewPickerModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.history = NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH, allTab, true)
		m.screen = screenHistory
		return m, nil
	}

	return m, cmd
}

// updateSim handles updates while a simulation runs.
func (m SessionModel) updateSim(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.sim.Update(msg)
	if model, ok := next.(Model); ok {
		m.sim = &model
	}

	switch {
	case m.sim.IsQuitting():
		m.quitting = true
		if err := m.sim.Err(); err != nil {
			m.logger.Error("simulation stopped", "error", err)
		}
		return m, tea.Quit

	case m.sim.BackToMenu():
		m.sim = nil
		m.screen = screenPicker
		m.picker = NewPickerModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.picker.Init()
	}

	return m, cmd
}

// updateHistory handles updates while the run history is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	if history, ok := next.(HistoryModel); ok {
		m.history = history
	}

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.history.IsGoingBack():
		m.screen = screenPicker
		return m, nil
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenSim:
		return m.sim.View()
	case screenHistory:
		return m.history.View()
	}

	view := m.picker.View()
	if m.notice != "" {
		view = fmt.Sprintf("%s\n%s", centerText(m.notice, m.config.ScreenW), view)
	}
	return view
}

// Current returns the running simulation model, or nil on other screens.
func (m SessionModel) Current() *Model {
	if m.screen != screenSim {
		return nil
	}
	return m.sim
}

// RunSession runs a local session starting at the picker.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, logger, ""),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
