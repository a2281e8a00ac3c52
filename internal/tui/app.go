package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/store"
)

// View identifies the active screen
type View int

const (
	ViewDashboard View = iota
	ViewWatch
)

// Model is the root bubbletea model. It owns the store and fans
// snapshot updates out to the views.
type Model struct {
	store  *store.Store
	styles Styles
	width  int
	height int

	currentView View
	dashboard   DashboardView
	watch       WatchView
}

// NewModel creates the root model
func NewModel(st *store.Store) Model {
	styles := DefaultStyles()
	return Model{
		store:     st,
		styles:    styles,
		dashboard: NewDashboardView(st, styles),
		watch:     NewWatchView(st, styles),
	}
}

// WithView selects the screen shown first
func (m Model) WithView(view View) Model {
	m.currentView = view
	return m
}

// Init triggers the initial state fetch
func (m Model) Init() tea.Cmd {
	return m.dashboard.Init()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.height - 2
		m.dashboard = m.dashboard.SetSize(m.width, contentHeight)
		m.watch = m.watch.SetSize(m.width, contentHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// q quits everywhere except while the clock is running
			if msg.String() == "q" && m.currentView == ViewWatch && m.watch.state == watchRunning {
				break
			}
			m.store.Close()
			return m, tea.Quit
		case "tab":
			if m.currentView == ViewDashboard {
				m.currentView = ViewWatch
			} else {
				m.currentView = ViewDashboard
			}
			return m, nil
		}

	case stateLoadedMsg:
		// Snapshot updates feed both views
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		cmds = append(cmds, cmd)
		m.watch, cmd = m.watch.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case entrySavedMsg:
		// A logged entry changes the totals on the dashboard too
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.watch, cmd = m.watch.Update(msg)
		cmds = append(cmds, cmd)
		cmds = append(cmds, m.dashboard.load(false))
		return m, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewWatch:
		m.watch, cmd = m.watch.Update(msg)
	}
	return m, cmd
}

// View renders the active screen plus the global footer
func (m Model) View() string {
	var b strings.Builder
	switch m.currentView {
	case ViewDashboard:
		b.WriteString(m.dashboard.View())
	case ViewWatch:
		b.WriteString(m.watch.View())
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab: switch view  r: refresh  q: quit"))
	return b.String()
}
