package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/stats"
	"tempo/internal/store"
	"tempo/internal/track"
)

// Messages shared between the dashboard and the root model
type stateLoadedMsg struct{ derived *track.Derived }
type loadErrorMsg struct{ err error }

// DashboardView renders the folder tree with rolled-up hour totals, the
// recent-activity heatmap and target progress.
type DashboardView struct {
	store  *store.Store
	styles Styles
	width  int
	height int

	derived *track.Derived
	errMsg  string
}

// NewDashboardView creates a new dashboard view
func NewDashboardView(st *store.Store, styles Styles) DashboardView {
	return DashboardView{
		store:  st,
		styles: styles,
	}
}

// Init triggers the initial fetch
func (v DashboardView) Init() tea.Cmd {
	return v.load(true)
}

// SetSize sets the view dimensions
func (v DashboardView) SetSize(width, height int) DashboardView {
	v.width = width
	v.height = height
	return v
}

// load refreshes the snapshot from the server (when refetch is set) and
// derives the tree for rendering.
func (v DashboardView) load(refetch bool) tea.Cmd {
	st := v.store
	return func() tea.Msg {
		if refetch {
			if err := st.Refresh(context.Background()); err != nil {
				return loadErrorMsg{err: err}
			}
		}
		derived, err := st.Derived()
		if err != nil {
			return loadErrorMsg{err: err}
		}
		return stateLoadedMsg{derived: derived}
	}
}

// Update handles messages
func (v DashboardView) Update(msg tea.Msg) (DashboardView, tea.Cmd) {
	switch msg := msg.(type) {
	case stateLoadedMsg:
		v.derived = msg.derived
		v.errMsg = ""
	case loadErrorMsg:
		v.errMsg = msg.err.Error()
	case tea.KeyMsg:
		if msg.String() == "r" {
			return v, v.load(true)
		}
	}
	return v, nil
}

// View renders the dashboard
func (v DashboardView) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("tempo"))
	b.WriteString("\n\n")

	if v.errMsg != "" {
		b.WriteString(v.styles.Error.Render("error: " + v.errMsg))
		b.WriteString("\n\n")
	}

	if v.derived == nil {
		b.WriteString(v.styles.Subtle.Render("loading..."))
		return b.String()
	}

	snap := v.store.Snapshot()

	if len(v.derived.Roots) == 0 {
		b.WriteString(v.styles.Subtle.Render("no folders yet"))
		b.WriteString("\n")
	}
	for _, root := range v.derived.Roots {
		v.renderNode(&b, root, 0)
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("last 14 days"))
	b.WriteString("\n")
	b.WriteString(v.renderHeatmap(stats.LastDays(snap.Entries, time.Now(), 14)))
	b.WriteString("\n")

	week := stats.WeekTotal(snap.Entries, time.Now())
	if snap.Profile != nil && snap.Profile.WeeklyTargetHours != nil && *snap.Profile.WeeklyTargetHours > 0 {
		target := *snap.Profile.WeeklyTargetHours
		b.WriteString(fmt.Sprintf("this week: %s %s\n",
			v.styles.Hours.Render(fmt.Sprintf("%.1fh / %.0fh", week, target)),
			v.renderBar(week/target, 20),
		))
	} else {
		b.WriteString(fmt.Sprintf("this week: %s\n", v.styles.Hours.Render(fmt.Sprintf("%.1fh", week))))
	}

	progress := stats.Progress(v.derived.Modules)
	if len(progress) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("targets"))
		b.WriteString("\n")
		for _, p := range progress {
			b.WriteString(fmt.Sprintf("  %-24s %s %s\n",
				truncate(p.Name, 24),
				v.renderBar(p.Fraction, 16),
				v.styles.Subtle.Render(fmt.Sprintf("%.1f/%.0fh", p.Hours, p.Target)),
			))
		}
	}

	return b.String()
}

func (v DashboardView) renderNode(b *strings.Builder, node *track.FolderNode, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(fmt.Sprintf("%s%s %s\n",
		indent,
		v.styles.Folder.Render(node.Name),
		v.styles.Hours.Render(fmt.Sprintf("%.1fh", node.TotalHours)),
	))
	for _, module := range node.Modules {
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			indent,
			v.styles.Module.Render(module.Name),
			v.styles.Subtle.Render(fmt.Sprintf("%.1fh", module.TotalHours)),
		))
	}
	for _, child := range node.Children {
		v.renderNode(b, child, depth+1)
	}
}

// renderHeatmap draws one block per day, shaded by hours logged.
func (v DashboardView) renderHeatmap(days []stats.DayTotal) string {
	var b strings.Builder
	for _, day := range days {
		switch {
		case day.Hours == 0:
			b.WriteString(v.styles.BarEmpty.Render("░"))
		case day.Hours < 1:
			b.WriteString(v.styles.BarFull.Render("▒"))
		case day.Hours < 3:
			b.WriteString(v.styles.BarFull.Render("▓"))
		default:
			b.WriteString(v.styles.BarFull.Render("█"))
		}
	}
	return b.String()
}

func (v DashboardView) renderBar(fraction float64, width int) string {
	if fraction > 1 {
		fraction = 1
	}
	if fraction < 0 {
		fraction = 0
	}
	full := int(fraction * float64(width))
	return v.styles.BarFull.Render(strings.Repeat("█", full)) +
		v.styles.BarEmpty.Render(strings.Repeat("░", width-full))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
