package views

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/docker"
	"dockhand/internal/tui/design"
)

// Networks lists the engine's networks by name.
type Networks struct {
	client   *docker.Client
	tab      int
	interval time.Duration
	list     nameList
}

// NewNetworks builds the networks view bound to its tab slot.
func NewNetworks(client *docker.Client, tab int, interval time.Duration) *Networks {
	return &Networks{client: client, tab: tab, interval: interval}
}

func (v *Networks) Name() string            { return "Networks" }
func (v *Networks) Tab() int                { return v.tab }
func (v *Networks) Interval() time.Duration { return v.interval }

func (v *Networks) Init() tea.Cmd { return refreshCmd(v) }

func (v *Networks) Refresh(ctx context.Context) tea.Msg {
	names, err := v.client.ListNetworks(ctx)
	if err != nil {
		return RefreshFailedMsg{Tab: v.tab, ViewName: v.Name(), Err: err}
	}
	return NetworksLoadedMsg{Names: names}
}

func (v *Networks) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NetworksLoadedMsg:
		v.list.replace(msg.Names)
	case ActionDoneMsg:
		if msg.Tab == v.tab && msg.Err == nil && msg.Verb != VerbCopy {
			return refreshCmd(v)
		}
	}
	return nil
}

func (v *Networks) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()
	if v.list.handleNavKey(key) {
		return true, nil
	}

	switch key {
	case "r", "f5":
		return true, refreshCmd(v)
	case "d":
		if name, ok := v.list.selected(); ok {
			return true, actionCmd(v.tab, VerbDelete, name, func(ctx context.Context) error {
				return v.client.RemoveNetwork(ctx, name)
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

func (v *Networks) View(width, height int, th design.Theme) string {
	return renderNameList(v.Name(), &v.list, width, height, th, "No networks found or loading...")
}

func (v *Networks) HelpLine() string {
	return "↑/↓ select · d delete · y copy name · r refresh"
}
