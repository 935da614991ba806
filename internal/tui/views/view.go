// Package views contains the per-resource dashboard modules. Each view owns
// its rows, its selection cursor, and its refresh cadence; nothing outside a
// view ever mutates its state. Data arrives as messages — produced either by
// the view's own commands (initial and manual refresh, actions) or by the
// background poll workers — and is applied when the update loop dispatches
// the message back to the view.
package views

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/tui/design"
)

// View is the capability contract every resource view implements.
type View interface {
	// Name is the tab label.
	Name() string

	// Tab is the fixed slot assigned at construction, never mutated.
	Tab() int

	// Init returns the initial refresh command, run once at startup.
	Init() tea.Cmd

	// Interval is the background refresh cadence for this resource kind.
	Interval() time.Duration

	// Refresh performs the kind-specific list query and returns the message
	// carrying the outcome. It is what both manual refresh and the poll
	// worker run.
	Refresh(ctx context.Context) tea.Msg

	// Update applies a data message to the view's own state. Messages meant
	// for other views are ignored.
	Update(msg tea.Msg) tea.Cmd

	// HandleKey processes one key event, reporting whether it was consumed.
	HandleKey(msg tea.KeyMsg) (bool, tea.Cmd)

	// View renders the body for the given area. Pure function of state.
	View(width, height int, th design.Theme) string

	// HelpLine is the one-line key legend; it changes while a modal is open.
	HelpLine() string
}

// cursor tracks the selected row index. It clamps to the row count on every
// move and every wholesale row replacement: the index stays below the length
// whenever rows exist, and pins to zero when they do not. No wraparound.
type cursor struct {
	index int
}

// Index returns the current selection.
func (c *cursor) Index() int { return c.index }

// Up moves the selection up one row, stopping at the top.
func (c *cursor) Up() {
	if c.index > 0 {
		c.index--
	}
}

// Down moves the selection down one row, stopping at the last of length rows.
func (c *cursor) Down(length int) {
	if c.index < length-1 {
		c.index++
	}
}

// Clamp re-establishes the invariant after rows were replaced.
func (c *cursor) Clamp(length int) {
	if length == 0 {
		c.index = 0
		return
	}
	if c.index >= length {
		c.index = length - 1
	}
}

// refreshCmd wraps a view's Refresh into a command for manual refresh and
// Init. The poll workers call Refresh with the run context instead.
func refreshCmd(v View) tea.Cmd {
	return func() tea.Msg {
		return v.Refresh(context.Background())
	}
}
