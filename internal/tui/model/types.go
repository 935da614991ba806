package model

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/docker"
	"dockhand/internal/tui/design"
	"dockhand/internal/tui/views"
)

// Model is the single source of truth for the dashboard. Views own their
// row data and cursors; the model owns which tab is active, the terminal
// geometry, and the status bar line.
type Model struct {
	Width  int
	Height int

	ActiveTab int
	Views     []views.View

	Client *docker.Client
	Events <-chan tea.Msg

	Keys  KeyMap
	Theme design.Theme

	StatusMessage string
	StatusKind    design.StatusKind

	Quitting bool
}

// KeyMap holds the global key bindings. View-local keys live with the views.
type KeyMap struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
}

// DefaultKeyMap returns the standard global bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev tab"),
		),
	}
}

// ClearStatusBarMsg wipes the transient status bar message.
type ClearStatusBarMsg struct{}

// SetStatusMessage installs a transient status line and schedules its
// expiry. A newer message simply overwrites an older one; the stale clear
// is harmless.
func (m *Model) SetStatusMessage(text string, kind design.StatusKind, d time.Duration) tea.Cmd {
	m.StatusMessage = text
	m.StatusKind = kind
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusBarMsg{}
	})
}

// ActiveView returns the view bound to the active tab.
func (m *Model) ActiveView() views.View {
	return m.Views[m.ActiveTab]
}
