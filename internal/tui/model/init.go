package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/config"
	"dockhand/internal/docker"
	"dockhand/internal/poll"
	"dockhand/internal/tui/design"
	"dockhand/internal/tui/views"
	"dockhand/pkg/logging"
)

// Tab positions. The slice order in New must match.
const (
	TabContainers = iota
	TabImages
	TabNetworks
	TabVolumes
	tabCount
)

// New assembles the dashboard model from a connected client, the loaded
// configuration, and the poller's event channel.
func New(client *docker.Client, cfg config.Config, events <-chan tea.Msg) *Model {
	m := &Model{
		Client: client,
		Events: events,
		Keys:   DefaultKeyMap(),
		Theme:  design.ForName(cfg.Theme),
		Views: []views.View{
			views.NewContainers(client, TabContainers, cfg.Refresh.Containers.Std()),
			views.NewImages(client, TabImages, cfg.Refresh.Images.Std()),
			views.NewNetworks(client, TabNetworks, cfg.Refresh.Networks.Std()),
			views.NewVolumes(client, TabVolumes, cfg.Refresh.Volumes.Std()),
		},
	}
	logging.Debug("Model", "initialized with %d views, theme %q", len(m.Views), m.Theme.Name)
	return m
}

// Init fires every view's initial load and arms the poll event listener.
func (m *Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.Views)+1)
	for _, v := range m.Views {
		if cmd := v.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, poll.Listen(m.Events))
	return tea.Batch(cmds...)
}

// TabCount is the number of dashboard tabs.
func TabCount() int { return tabCount }
