package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/domain/models"
	"tempo/internal/store"
	"tempo/internal/track"
)

type watchState int

const (
	watchPicking watchState = iota
	watchRunning
	watchStopped
)

type entrySavedMsg struct{ entry *models.Entry }
type watchErrorMsg struct{ err error }

// WatchView is the stopwatch: pick a module, run the clock, and log the
// elapsed time as an entry when done.
type WatchView struct {
	store  *store.Store
	styles Styles
	width  int
	height int

	sw      stopwatch.Model
	state   watchState
	modules []*track.ModuleWithRelations
	cursor  int

	statusMsg string
	errMsg    string
}

// NewWatchView creates a new stopwatch view
func NewWatchView(st *store.Store, styles Styles) WatchView {
	return WatchView{
		store:  st,
		styles: styles,
		sw:     stopwatch.NewWithInterval(time.Second),
	}
}

// SetSize sets the view dimensions
func (v WatchView) SetSize(width, height int) WatchView {
	v.width = width
	v.height = height
	return v
}

// Update handles messages
func (v WatchView) Update(msg tea.Msg) (WatchView, tea.Cmd) {
	switch msg := msg.(type) {
	case stateLoadedMsg:
		v.modules = msg.derived.Modules
		if v.cursor >= len(v.modules) {
			v.cursor = 0
		}
		return v, nil

	case entrySavedMsg:
		v.state = watchPicking
		v.statusMsg = fmt.Sprintf("logged %.2fh to %s", msg.entry.DurationHours, v.moduleName(msg.entry.ModuleID))
		return v, v.sw.Reset()

	case watchErrorMsg:
		v.state = watchStopped
		v.errMsg = msg.err.Error()
		return v, nil

	case tea.KeyMsg:
		v.statusMsg = ""
		v.errMsg = ""
		switch v.state {
		case watchPicking:
			switch msg.String() {
			case "up", "k":
				if v.cursor > 0 {
					v.cursor--
				}
			case "down", "j":
				if v.cursor < len(v.modules)-1 {
					v.cursor++
				}
			case "enter", " ":
				if len(v.modules) > 0 {
					v.state = watchRunning
					return v, v.sw.Start()
				}
			}
		case watchRunning:
			switch msg.String() {
			case "enter", " ":
				v.state = watchStopped
				return v, v.sw.Stop()
			}
		case watchStopped:
			switch msg.String() {
			case "s", "enter":
				return v, v.saveEntry()
			case "d":
				v.state = watchPicking
				return v, v.sw.Reset()
			}
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.sw, cmd = v.sw.Update(msg)
	return v, cmd
}

// saveEntry logs the elapsed time against the selected module. Durations
// are clamped up to one minute so a quick tap still produces a valid
// entry.
func (v WatchView) saveEntry() tea.Cmd {
	if v.cursor >= len(v.modules) {
		return nil
	}
	st := v.store
	moduleID := v.modules[v.cursor].ID
	elapsed := v.sw.Elapsed()

	return func() tea.Msg {
		minutes := math.Round(elapsed.Minutes())
		if minutes < 1 {
			minutes = 1
		}

		entry, err := st.CreateEntry(context.Background(), &models.CreateEntryRequest{
			ModuleID:      moduleID,
			ActivityType:  "focus",
			DurationHours: minutes / 60,
			Date:          time.Now().Format(models.EntryDateLayout),
		})
		if err != nil {
			return watchErrorMsg{err: err}
		}
		return entrySavedMsg{entry: entry}
	}
}

func (v WatchView) moduleName(id string) string {
	for _, module := range v.modules {
		if module.ID == id {
			return module.Name
		}
	}
	return id
}

// View renders the stopwatch
func (v WatchView) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("stopwatch"))
	b.WriteString("\n\n")

	if v.errMsg != "" {
		b.WriteString(v.styles.Error.Render("error: " + v.errMsg))
		b.WriteString("\n\n")
	}
	if v.statusMsg != "" {
		b.WriteString(v.styles.Hours.Render(v.statusMsg))
		b.WriteString("\n\n")
	}

	switch v.state {
	case watchPicking:
		if len(v.modules) == 0 {
			b.WriteString(v.styles.Subtle.Render("no modules yet - create one with `tempo log` or the dashboard"))
			b.WriteString("\n")
			break
		}
		b.WriteString(v.styles.Subtitle.Render("pick a module"))
		b.WriteString("\n")
		for i, module := range v.modules {
			line := fmt.Sprintf("%s  %s", module.Name, v.styles.Subtle.Render(module.Folder.Name))
			if i == v.cursor {
				b.WriteString(v.styles.Selected.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	case watchRunning, watchStopped:
		module := v.modules[v.cursor]
		b.WriteString(fmt.Sprintf("%s %s\n\n",
			v.styles.Folder.Render(module.Folder.Name+" / "+module.Name),
			v.styles.Subtle.Render("("+v.stateLabel()+")"),
		))
		b.WriteString(v.styles.Title.Render(formatElapsed(v.sw.Elapsed())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(v.helpLine()))
	return b.String()
}

func (v WatchView) stateLabel() string {
	if v.state == watchRunning {
		return "running"
	}
	return "stopped"
}

func (v WatchView) helpLine() string {
	switch v.state {
	case watchRunning:
		return "space: stop"
	case watchStopped:
		return "s: save  d: discard"
	default:
		return "j/k: move  space: start"
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
