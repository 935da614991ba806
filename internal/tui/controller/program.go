package controller

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/config"
	"dockhand/internal/docker"
	"dockhand/internal/poll"
	"dockhand/internal/tui/model"
	"dockhand/pkg/logging"
)

// NewProgram wires the model, the poller, and the Bubble Tea program
// together. The returned cancel func stops every poll worker; callers must
// invoke it once the program exits.
func NewProgram(client *docker.Client, cfg config.Config) (*tea.Program, context.CancelFunc) {
	poller := poll.New(0)
	m := model.New(client, cfg, poller.Events())

	specs := make([]poll.Spec, 0, len(m.Views))
	for _, v := range m.Views {
		specs = append(specs, poll.Spec{
			Name:     v.Name(),
			Interval: v.Interval(),
			Fetch:    v.Refresh,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	poller.Start(ctx, specs...)

	p := tea.NewProgram(NewAppModel(m), tea.WithAltScreen())
	return p, cancel
}

// RunDashboard runs the dashboard until the user quits or the program
// fails, then tears down the poll workers.
func RunDashboard(client *docker.Client, cfg config.Config) error {
	p, cancel := NewProgram(client, cfg)
	defer cancel()

	logging.Info("TUI", "starting dashboard for host %s", client.Host())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
