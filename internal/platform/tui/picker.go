package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turtlesim/internal/registry"
	"github.com/vovakirdan/turtlesim/internal/storage"
)

// PickerKeyMap defines the key bindings for the scenario picker.
type PickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "run"),
		),
		History: key.NewBinding(
			key.WithKeys("tab", "h"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	pickerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	pickerCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pickerDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// PickerModel is the Bubble Tea model for the scenario picker.
type PickerModel struct {
	items       []registry.ScenarioInfo
	stats       map[string]*storage.ScenarioStats
	cursor      int
	width       int
	height      int
	keys        PickerKeyMap
	help        help.Model
	quitting    bool
	selected    *registry.ScenarioInfo
	openHistory bool
}

// NewPickerModel creates a picker over every registered scenario. Run
// counts are shown when store is set.
func NewPickerModel(store *storage.Store, width, height int) PickerModel {
	m := PickerModel{
		items:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultPickerKeyMap(),
		help:   help.New(),
	}
	if store != nil {
		if stats, err := store.AllStats(); err == nil {
			m.stats = stats
		}
	}
	return m
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				selected := m.items[m.cursor]
				m.selected = &selected
			}

		case key.Matches(msg, m.keys.History):
			m.openHistory = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(pickerTitleStyle.Render("T U R T L E S I M"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a scenario", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = pickerCursor.Render("> " + item.Title)
		}
		if st, ok := m.stats[item.ID]; ok && st.Runs > 0 {
			line += pickerDim.Render(fmt.Sprintf("  (%d runs, %d arrived)", st.Runs, st.Arrived))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen scenario, or nil if none was chosen yet.
func (m PickerModel) Selected() *registry.ScenarioInfo {
	return m.selected
}

// WantsHistory returns true if user requested the run history.
func (m PickerModel) WantsHistory() bool {
	return m.openHistory
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width, ignoring ANSI sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
