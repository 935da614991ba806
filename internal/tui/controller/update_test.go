package controller

import (
	"errors"
	"io"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/config"
	"dockhand/internal/docker"
	"dockhand/internal/poll"
	"dockhand/internal/tui/model"
	"dockhand/internal/tui/views"
	"dockhand/pkg/logging"
)

func TestMain(m *testing.M) {
	logging.InitForCLI(logging.LevelError, io.Discard)
	os.Exit(m.Run())
}

func newTestModel() *model.Model {
	events := make(chan tea.Msg, 1)
	return model.New(&docker.Client{}, config.Default(), events)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTabSwitchingWrapsBothEnds(t *testing.T) {
	m := newTestModel()

	for i := 1; i < model.TabCount(); i++ {
		m, _ = Update(keyMsg("right"), m)
		if m.ActiveTab != i {
			t.Fatalf("after %d rights: expected tab %d, got %d", i, i, m.ActiveTab)
		}
	}

	m, _ = Update(keyMsg("right"), m)
	if m.ActiveTab != 0 {
		t.Errorf("expected right on the last tab to wrap to 0, got %d", m.ActiveTab)
	}

	m, _ = Update(keyMsg("left"), m)
	if m.ActiveTab != model.TabCount()-1 {
		t.Errorf("expected left on the first tab to wrap to %d, got %d", model.TabCount()-1, m.ActiveTab)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		m := newTestModel()
		m, cmd := Update(keyMsg(k), m)
		if !isQuit(t, cmd) {
			t.Errorf("expected %q to quit", k)
		}
		if !m.Quitting {
			t.Errorf("expected %q to mark the model quitting", k)
		}
	}
}

func TestQuitWinsOverModal(t *testing.T) {
	m := newTestModel()
	m.ActiveTab = model.TabImages
	m.ActiveView().Update(views.ImagesLoadedMsg{Rows: []docker.ImageRow{{ID: "sha256:aaa", RepoTag: "nginx:latest"}}})
	m.ActiveView().HandleKey(keyMsg("i"))

	_, cmd := Update(keyMsg("q"), m)
	if !isQuit(t, cmd) {
		t.Error("expected q to quit even while the inspect modal is open")
	}
}

func TestViewKeysRouteToActiveView(t *testing.T) {
	m := newTestModel()

	// "r" is a view key: the active view answers with a refresh command.
	_, cmd := Update(keyMsg("r"), m)
	if cmd == nil {
		t.Error("expected the active view to claim r with a refresh command")
	}

	// Keys nobody claims are dropped.
	m2, cmd := Update(keyMsg("x"), m)
	if cmd != nil {
		t.Error("expected an unclaimed key to produce no command")
	}
	if m2.Quitting || m2.ActiveTab != m.ActiveTab {
		t.Error("expected an unclaimed key to leave the model untouched")
	}
}

func TestPollEventUnwrapsAndRearms(t *testing.T) {
	m := newTestModel()

	m, cmd := Update(poll.EventMsg{Msg: views.ContainersLoadedMsg{Names: []string{"web"}}}, m)
	if cmd == nil {
		t.Error("expected the listener to be re-armed after a poll event")
	}
	if m.Quitting {
		t.Error("expected a data message to leave the run state alone")
	}
}

func TestRefreshFailureFlashesWithoutQuitting(t *testing.T) {
	m := newTestModel()

	m, cmd := Update(views.RefreshFailedMsg{Tab: 0, ViewName: "Containers", Err: errors.New("engine down")}, m)
	if m.Quitting {
		t.Error("expected a refresh failure to be non-fatal")
	}
	if m.StatusMessage == "" {
		t.Error("expected a status bar message for the failure")
	}
	if cmd == nil {
		t.Error("expected a status expiry command")
	}
}

func TestActionOutcomeFlashes(t *testing.T) {
	m := newTestModel()

	m, _ = Update(views.ActionDoneMsg{Tab: 0, Verb: views.VerbDelete, Target: "web"}, m)
	if m.StatusMessage == "" {
		t.Error("expected a status message after a successful action")
	}

	m, _ = Update(views.ActionDoneMsg{Tab: 0, Verb: views.VerbStart, Target: "web", Err: errors.New("no such container")}, m)
	if m.StatusMessage == "" {
		t.Error("expected a status message after a failed action")
	}
	if m.Quitting {
		t.Error("expected a failed action to be non-fatal")
	}
}

func TestClearStatusBar(t *testing.T) {
	m := newTestModel()
	m.StatusMessage = "stale"

	m, _ = Update(model.ClearStatusBarMsg{}, m)
	if m.StatusMessage != "" {
		t.Error("expected the status message to clear")
	}
}

func TestWindowSizeStored(t *testing.T) {
	m := newTestModel()

	m, _ = Update(tea.WindowSizeMsg{Width: 120, Height: 40}, m)
	if m.Width != 120 || m.Height != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.Width, m.Height)
	}
}
