// Package view turns the model into terminal output. Rendering is pure:
// every function takes the model (and theme) and returns a string, with no
// side effects on state.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dockhand/internal/tui/design"
	"dockhand/internal/tui/model"
)

// Render draws the full frame: tab bar, active view body, help line, and
// the status bar.
func Render(m *model.Model) string {
	if m.Quitting {
		return ""
	}
	if m.Width == 0 || m.Height == 0 {
		return m.Theme.Placeholder().Render("Loading... (waiting for window size)")
	}

	tabBar := renderTabBar(m)
	helpLine := m.Theme.HelpBar().Render(m.ActiveView().HelpLine() + " · ←/→ tabs · q quit")
	statusBar := renderStatusBar(m)

	chromeHeight := lipgloss.Height(tabBar) + lipgloss.Height(helpLine) + lipgloss.Height(statusBar)
	bodyHeight := m.Height - chromeHeight
	if bodyHeight < design.MinBodyHeight {
		bodyHeight = design.MinBodyHeight
	}

	body := m.ActiveView().View(m.Width, bodyHeight, m.Theme)

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, body, helpLine, statusBar)
}

// renderTabBar lists every tab with the active one highlighted.
func renderTabBar(m *model.Model) string {
	labels := make([]string, 0, len(m.Views))
	for i, v := range m.Views {
		if i == m.ActiveTab {
			labels = append(labels, m.Theme.TabActive().Render(v.Name()))
		} else {
			labels = append(labels, m.Theme.TabInactive().Render(v.Name()))
		}
	}
	return strings.Join(labels, m.Theme.HelpBar().Render("|"))
}

// renderStatusBar shows the engine endpoint and version on the left and
// the transient message, when one is live, on the right.
func renderStatusBar(m *model.Model) string {
	left := m.Theme.StatusBar(design.StatusNeutral).
		Render(m.Client.Host() + " · engine " + m.Client.ServerVersion())
	if m.StatusMessage == "" {
		return left
	}

	right := m.Theme.StatusBar(m.StatusKind).Render(m.StatusMessage)
	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}
