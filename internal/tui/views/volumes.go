package views

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/docker"
	"dockhand/internal/tui/design"
)

// Volumes lists the engine's volumes by name.
type Volumes struct {
	client   *docker.Client
	tab      int
	interval time.Duration
	list     nameList
}

// NewVolumes builds the volumes view bound to its tab slot.
func NewVolumes(client *docker.Client, tab int, interval time.Duration) *Volumes {
	return &Volumes{client: client, tab: tab, interval: interval}
}

func (v *Volumes) Name() string            { return "Volumes" }
func (v *Volumes) Tab() int                { return v.tab }
func (v *Volumes) Interval() time.Duration { return v.interval }

func (v *Volumes) Init() tea.Cmd { return refreshCmd(v) }

func (v *Volumes) Refresh(ctx context.Context) tea.Msg {
	names, err := v.client.ListVolumes(ctx)
	if err != nil {
		return RefreshFailedMsg{Tab: v.tab, ViewName: v.Name(), Err: err}
	}
	return VolumesLoadedMsg{Names: names}
}

func (v *Volumes) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case VolumesLoadedMsg:
		v.list.replace(msg.Names)
	case ActionDoneMsg:
		if msg.Tab == v.tab && msg.Err == nil && msg.Verb != VerbCopy {
			return refreshCmd(v)
		}
	}
	return nil
}

func (v *Volumes) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
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
				return v.client.RemoveVolume(ctx, name)
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

func (v *Volumes) View(width, height int, th design.Theme) string {
	return renderNameList(v.Name(), &v.list, width, height, th, "No volumes found or loading...")
}

func (v *Volumes) HelpLine() string {
	return "↑/↓ select · d delete · y copy name · r refresh"
}
