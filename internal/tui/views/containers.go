package views

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/docker"
	"dockhand/internal/tui/design"
)

// Containers lists every container, running or not, and carries the
// start/stop toggle and delete actions.
type Containers struct {
	client   *docker.Client
	tab      int
	interval time.Duration
	list     nameList
}

// NewContainers builds the containers view bound to its tab slot.
func NewContainers(client *docker.Client, tab int, interval time.Duration) *Containers {
	return &Containers{client: client, tab: tab, interval: interval}
}

func (v *Containers) Name() string            { return "Containers" }
func (v *Containers) Tab() int                { return v.tab }
func (v *Containers) Interval() time.Duration { return v.interval }

func (v *Containers) Init() tea.Cmd { return refreshCmd(v) }

func (v *Containers) Refresh(ctx context.Context) tea.Msg {
	names, err := v.client.ListContainers(ctx)
	if err != nil {
		return RefreshFailedMsg{Tab: v.tab, ViewName: v.Name(), Err: err}
	}
	return ContainersLoadedMsg{Names: names}
}

func (v *Containers) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ContainersLoadedMsg:
		v.list.replace(msg.Names)
	case ActionDoneMsg:
		if msg.Tab == v.tab && msg.Err == nil && msg.Verb != VerbCopy {
			return refreshCmd(v)
		}
	}
	return nil
}

func (v *Containers) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()
	if v.list.handleNavKey(key) {
		return true, nil
	}

	switch key {
	case "r", "f5":
		return true, refreshCmd(v)
	case "s":
		if name, ok := v.list.selected(); ok {
			return true, v.toggleCmd(name)
		}
		return true, nil
	case "d":
		if name, ok := v.list.selected(); ok {
			return true, actionCmd(v.tab, VerbDelete, name, func(ctx context.Context) error {
				return v.client.RemoveContainer(ctx, name)
			})
		}
		return true, nil
	case "y":
		if name, ok := v.list.selected(); ok {
			return true, copyCmd(v.tab, name)
		}
		return true, nil
	}
	return false, nil
}

// toggleCmd resolves the container's live status and starts or stops it
// accordingly, all in one async command.
func (v *Containers) toggleCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		status, err := v.client.ContainerStatus(ctx, name)
		if err != nil {
			return ActionDoneMsg{Tab: v.tab, Verb: VerbStart, Target: name, Err: err}
		}
		if strings.HasPrefix(status, "Up") {
			return ActionDoneMsg{Tab: v.tab, Verb: VerbStop, Target: name, Err: v.client.StopContainer(ctx, name)}
		}
		return ActionDoneMsg{Tab: v.tab, Verb: VerbStart, Target: name, Err: v.client.StartContainer(ctx, name)}
	}
}

func (v *Containers) View(width, height int, th design.Theme) string {
	return renderNameList(v.Name(), &v.list, width, height, th, "No containers found or loading...")
}

func (v *Containers) HelpLine() string {
	return "↑/↓ select · s start/stop · d delete · y copy name · r refresh"
}
