package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"dockhand/internal/tui/design"
)

// nameList is the shared state of the plain-name views (containers,
// networks, volumes): an ordered row slice plus the selection cursor.
type nameList struct {
	names       []string
	cur         cursor
	lastRefresh time.Time
}

// replace swaps the rows wholesale and re-clamps the cursor.
func (l *nameList) replace(names []string) {
	l.names = names
	l.cur.Clamp(len(names))
	l.lastRefresh = time.Now()
}

// selected returns the row under the cursor, if any.
func (l *nameList) selected() (string, bool) {
	if len(l.names) == 0 {
		return "", false
	}
	return l.names[l.cur.Index()], true
}

// handleNavKey consumes up/down selection moves.
func (l *nameList) handleNavKey(key string) bool {
	switch key {
	case "up":
		l.cur.Up()
		return true
	case "down":
		l.cur.Down(len(l.names))
		return true
	}
	return false
}

// renderNameList draws a bordered list body with the selected row
// highlighted, or the empty placeholder. Shared by the name-backed views.
func renderNameList(title string, l *nameList, width, height int, th design.Theme, emptyText string) string {
	if width < design.MinBodyWidth {
		width = design.MinBodyWidth
	}
	inner := width - 4 // panel border + padding

	var b strings.Builder
	b.WriteString(th.PanelTitle().Render(fmt.Sprintf("%s (%d)", title, len(l.names))))
	b.WriteString("\n")

	if len(l.names) == 0 {
		b.WriteString(th.Placeholder().Render(emptyText))
	} else {
		visible := visibleWindow(len(l.names), l.cur.Index(), height-design.MinBodyHeight)
		for i := visible.start; i < visible.end; i++ {
			line := truncate(l.names[i], inner)
			if i == l.cur.Index() {
				b.WriteString(th.SelectedRow().Render("> " + line))
			} else {
				b.WriteString(th.Row().Render("  " + line))
			}
			if i < visible.end-1 {
				b.WriteString("\n")
			}
		}
	}

	return th.Panel().Width(width - 2).Render(b.String())
}

// window is the half-open row range currently on screen.
type window struct {
	start, end int
}

// visibleWindow keeps the selected row inside a viewport of max rows.
func visibleWindow(length, selected, max int) window {
	if max < 1 {
		max = 1
	}
	if length <= max {
		return window{0, length}
	}
	start := selected - max/2
	if start < 0 {
		start = 0
	}
	if start+max > length {
		start = length - max
	}
	return window{start, start + max}
}

// truncate trims a cell to the given display width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-1, "…")
}

// actionCmd runs one engine action asynchronously and reports the outcome.
func actionCmd(tab int, verb, target string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return ActionDoneMsg{Tab: tab, Verb: verb, Target: target, Err: fn(context.Background())}
	}
}

// copyCmd puts the selected row's identifier on the system clipboard.
func copyCmd(tab int, text string) tea.Cmd {
	return func() tea.Msg {
		return ActionDoneMsg{Tab: tab, Verb: VerbCopy, Target: text, Err: clipboard.WriteAll(text)}
	}
}
