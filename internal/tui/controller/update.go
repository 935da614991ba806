package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/poll"
	"dockhand/internal/tui/design"
	"dockhand/internal/tui/model"
	"dockhand/internal/tui/views"
	"dockhand/pkg/logging"
)

const statusFlashDuration = 3 * time.Second

// Update is the single dispatch point for every message the program sees.
// Poll events are unwrapped and re-armed so the event channel always has
// exactly one consumer; data messages fan out to every view and each view
// picks up only what it owns.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case poll.EventMsg:
		// Re-arm the listener first so the next poll result is never lost,
		// then dispatch the wrapped message through the same switch.
		inner, cmd := Update(msg.Msg, m)
		return inner, tea.Batch(cmd, poll.Listen(m.Events))

	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, forwardToViews(m, msg)

	case model.ClearStatusBarMsg:
		m.StatusMessage = ""
		m.StatusKind = design.StatusNeutral
		return m, nil

	case views.RefreshFailedMsg:
		logging.Error("Poll", msg.Err, "%s refresh failed", msg.ViewName)
		return m, m.SetStatusMessage(msg.ViewName+" refresh failed", design.StatusError, statusFlashDuration)

	case views.ActionDoneMsg:
		return handleActionDone(m, msg)
	}

	return m, forwardToViews(m, msg)
}

// handleActionDone flashes the outcome and forwards the message so the
// owning view can schedule its follow-up refresh.
func handleActionDone(m *model.Model, msg views.ActionDoneMsg) (*model.Model, tea.Cmd) {
	forward := forwardToViews(m, msg)

	if msg.Err != nil {
		logging.Error("Action", msg.Err, "%s %s failed", msg.Verb, msg.Target)
		return m, tea.Batch(forward,
			m.SetStatusMessage(msg.Verb+" "+msg.Target+" failed", design.StatusError, statusFlashDuration))
	}

	logging.Info("Action", "%s %s done", msg.Verb, msg.Target)
	text := msg.Verb + " " + msg.Target
	if msg.Verb == views.VerbCopy {
		text = "copied " + msg.Target
	}
	return m, tea.Batch(forward,
		m.SetStatusMessage(text, design.StatusSuccess, statusFlashDuration))
}

// handleKeyMsg routes keys: global bindings first, then the active view.
// Keys neither claims are dropped.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if handled, cmd := handleKeyMsgGlobal(m, msg); handled {
		return m, cmd
	}
	if handled, cmd := m.ActiveView().HandleKey(msg); handled {
		return m, cmd
	}
	return m, nil
}

// forwardToViews delivers a message to every view and batches whatever
// commands come back.
func forwardToViews(m *model.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range m.Views {
		if cmd := v.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
