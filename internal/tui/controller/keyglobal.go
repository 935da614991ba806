package controller

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/tui/model"
)

// handleKeyMsgGlobal processes the bindings that work everywhere: quit and
// tab switching. Global keys win over view keys, so quitting never gets
// trapped by a modal.
func handleKeyMsgGlobal(m *model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.Keys.NextTab):
		m.ActiveTab = (m.ActiveTab + 1) % len(m.Views)
		return true, nil

	case key.Matches(msg, m.Keys.PrevTab):
		m.ActiveTab = (m.ActiveTab - 1 + len(m.Views)) % len(m.Views)
		return true, nil
	}
	return false, nil
}
