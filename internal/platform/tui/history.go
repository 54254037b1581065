package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turtlesim/internal/registry"
	"github.com/vovakirdan/turtlesim/internal/storage"
)

// History layout constants
const (
	historyChrome = 9   // title, tabs, stats, help and borders
	maxRuns       = 100 // Max runs to load per tab
	allTab        = ""  // tab id that lists every scenario
)

// HistoryKeyMap defines the key bindings for the run history browser.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next scenario"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev scenario"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type historyTab struct {
	id    string
	title string
}

// HistoryModel is the Bubble Tea model for browsing stored runs.
type HistoryModel struct {
	tabs      []historyTab
	tabCursor int
	store     *storage.Store
	runs      []storage.Run
	stats     *storage.ScenarioStats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	inSession bool // Back returns to the picker instead of exiting
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history browser. The first tab lists every
// scenario, the rest one registered scenario each. initial selects the
// starting tab by scenario id.
func NewHistoryModel(store *storage.Store, width, height int, initial string, inSession bool) HistoryModel {
	tabs := []historyTab{{id: allTab, title: "All"}}
	for _, s := range registry.List() {
		tabs = append(tabs, historyTab{id: s.ID, title: s.Title})
	}

	m := HistoryModel{
		tabs:      tabs,
		store:     store,
		keys:      DefaultHistoryKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
		inSession: inSession,
	}
	for i, t := range tabs {
		if t.id == initial {
			m.tabCursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Scenario", Width: 8},
		{Title: "Outcome", Width: 8},
		{Title: "Upd", Width: 5},
		{Title: "Turns", Width: 5},
		{Title: "Moves", Width: 5},
		{Title: "Final", Width: 8},
		{Title: "Seed", Width: 20},
	}

	// Drop the seed column on narrow terminals
	if m.width < 90 {
		columns = columns[:len(columns)-1]
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads runs and stats for the current tab.
func (m *HistoryModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	id := m.tabs[m.tabCursor].id
	if id == allTab {
		m.runs, m.loadErr = m.store.RecentRuns(maxRuns)
	} else {
		m.runs, m.loadErr = m.store.RunsForScenario(id, maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.ScenarioStats(id)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *HistoryModel) updateTableRows() {
	withSeed := len(m.table.Columns()) == 8
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			r.Scenario,
			string(r.Outcome),
			fmt.Sprintf("%d", r.Updates),
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.Moves),
			r.Final.String(),
		}
		if withSeed {
			row = append(row, fmt.Sprintf("%d", r.Seed))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.inSession {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tabCursor = (m.tabCursor - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting || (m.goingBack && !m.inSession) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("RUN HISTORY"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders the scenario tabs, collapsing to arrows when narrow.
func (m HistoryModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tabCursor {
			tabs[i] = activeTabStyle.Render(t.title)
		} else {
			tabs[i] = tabStyle.Render(" " + t.title + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.tabs[m.tabCursor].title)
	}
	return line
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Run history is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a simulation to fill the history.")
	}
	return m.table.View()
}

// statsLine summarises the selected scenario.
func (m HistoryModel) statsLine() string {
	st := m.stats
	if st == nil || st.Runs == 0 {
		return ""
	}
	line := fmt.Sprintf("runs %d  arrived %d  stalled %d  aborted %d  avg %.1f upd",
		st.Runs, st.Arrived, st.Stalled, st.Aborted, st.AvgUpdates)
	if st.BestUpdates > 0 {
		line += fmt.Sprintf("  best %d", st.BestUpdates)
	}
	return line
}

// Runs returns the runs listed by the current tab.
func (m HistoryModel) Runs() []storage.Run {
	return m.runs
}

// IsGoingBack returns true if user wants to go back.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history browser on its own, starting at scenario
// (empty for every scenario).
func RunHistory(store *storage.Store, scenario string, width, height int) error {
	model := NewHistoryModel(store, width, height, scenario, false)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
