package views

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dockhand/internal/docker"
	"dockhand/internal/tui/design"
)

// Images lists the engine's images with id/size/age/usage columns and owns
// the inspect modal. The view is a two-state machine: browsing ⇄ inspecting,
// where inspecting carries its own scroll position in the detail viewport.
type Images struct {
	client   *docker.Client
	tab      int
	interval time.Duration

	rows        []docker.ImageRow
	cur         cursor
	lastRefresh time.Time

	inspecting bool
	pendingID  string
	detail     *docker.ImageDetail
	detailView viewport.Model

	width  int
	height int
}

// NewImages builds the images view bound to its tab slot.
func NewImages(client *docker.Client, tab int, interval time.Duration) *Images {
	return &Images{
		client:     client,
		tab:        tab,
		interval:   interval,
		detailView: viewport.New(0, 0),
	}
}

func (v *Images) Name() string            { return "Images" }
func (v *Images) Tab() int                { return v.tab }
func (v *Images) Interval() time.Duration { return v.interval }

func (v *Images) Init() tea.Cmd { return refreshCmd(v) }

func (v *Images) Refresh(ctx context.Context) tea.Msg {
	rows, err := v.client.ListImages(ctx)
	if err != nil {
		return RefreshFailedMsg{Tab: v.tab, ViewName: v.Name(), Err: err}
	}
	return ImagesLoadedMsg{Rows: rows}
}

func (v *Images) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ImagesLoadedMsg:
		v.rows = msg.Rows
		v.cur.Clamp(len(v.rows))
		v.lastRefresh = time.Now()

	case ImageInspectedMsg:
		// Results are correlated by image ID: a fetch kicked off for an
		// earlier, since-closed modal must not touch the current one.
		if !v.inspecting || msg.ID != v.pendingID {
			return nil
		}
		if msg.Err != nil {
			// A failed detail fetch closes the modal; the controller logs it.
			v.closeModal()
			return nil
		}
		v.detail = msg.Detail
		v.detailView.SetContent(formatImageDetail(v.detail))
		v.detailView.GotoTop()

	case ActionDoneMsg:
		if msg.Tab == v.tab && msg.Err == nil && msg.Verb != VerbCopy {
			return refreshCmd(v)
		}

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.sizeDetailView()
	}
	return nil
}

func (v *Images) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if v.inspecting {
		return v.handleModalKey(msg)
	}

	key := msg.String()
	switch key {
	case "up":
		v.cur.Up()
		return true, nil
	case "down":
		v.cur.Down(len(v.rows))
		return true, nil
	case "r", "f5":
		return true, refreshCmd(v)
	case "i":
		if row, ok := v.selected(); ok {
			return true, v.openInspectCmd(row)
		}
		return true, nil
	case "d":
		if row, ok := v.selected(); ok {
			id := row.ID
			return true, actionCmd(v.tab, VerbDelete, row.RepoTag, func(ctx context.Context) error {
				return v.client.RemoveImage(ctx, id)
			})
		}
		return true, nil
	case "y":
		if row, ok := v.selected(); ok {
			return true, copyCmd(v.tab, row.ID)
		}
		return true, nil
	}
	return false, nil
}

// handleModalKey re-routes input while the inspect modal is open: the
// viewport owns scrolling, "i" closes, and everything else is swallowed so
// list actions cannot fire under the overlay. Global keys never reach here.
func (v *Images) handleModalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "i":
		v.closeModal()
		return true, nil
	case "up", "down", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		v.detailView, cmd = v.detailView.Update(msg)
		return true, cmd
	}
	return true, nil
}

// openInspectCmd enters the inspecting state with no detail yet (the modal
// shows a loading placeholder) and kicks off the async fetch.
func (v *Images) openInspectCmd(row docker.ImageRow) tea.Cmd {
	v.inspecting = true
	v.pendingID = row.ID
	v.detail = nil
	id := row.ID
	return func() tea.Msg {
		detail, err := v.client.InspectImage(context.Background(), id)
		return ImageInspectedMsg{ID: id, Detail: detail, Err: err}
	}
}

func (v *Images) closeModal() {
	v.inspecting = false
	v.pendingID = ""
	v.detail = nil
	v.detailView.GotoTop()
}

// Inspecting reports whether the modal is open.
func (v *Images) Inspecting() bool { return v.inspecting }

func (v *Images) selected() (docker.ImageRow, bool) {
	if len(v.rows) == 0 {
		return docker.ImageRow{}, false
	}
	return v.rows[v.cur.Index()], true
}

func (v *Images) sizeDetailView() {
	w := v.width - 8
	h := v.height - 10
	if w < design.MinBodyWidth {
		w = design.MinBodyWidth
	}
	if h < design.MinBodyHeight {
		h = design.MinBodyHeight
	}
	v.detailView.Width = w
	v.detailView.Height = h
}

func (v *Images) View(width, height int, th design.Theme) string {
	if v.inspecting {
		return v.renderModal(width, th)
	}
	return v.renderTable(width, height, th)
}

func (v *Images) renderTable(width, height int, th design.Theme) string {
	if width < design.MinBodyWidth {
		width = design.MinBodyWidth
	}
	inner := width - 4

	var b strings.Builder
	b.WriteString(th.PanelTitle().Render(fmt.Sprintf("Images (%d)", len(v.rows))))
	b.WriteString("\n")

	if len(v.rows) == 0 {
		b.WriteString(th.Placeholder().Render("No images found or loading..."))
		return th.Panel().Width(width - 2).Render(b.String())
	}

	b.WriteString(th.HelpBar().Render(truncate(imageHeaderLine(), inner)))
	b.WriteString("\n")

	visible := visibleWindow(len(v.rows), v.cur.Index(), height-design.MinBodyHeight-1)
	for i := visible.start; i < visible.end; i++ {
		line := truncate(imageRowLine(v.rows[i]), inner)
		if i == v.cur.Index() {
			b.WriteString(th.SelectedRow().Render("> " + line))
		} else {
			b.WriteString(th.Row().Render("  " + line))
		}
		if i < visible.end-1 {
			b.WriteString("\n")
		}
	}

	return th.Panel().Width(width - 2).Render(b.String())
}

func (v *Images) renderModal(width int, th design.Theme) string {
	title := "Inspect"
	if row, ok := v.selected(); ok {
		title = "Inspect " + row.RepoTag
	}

	var body string
	if v.detail == nil {
		body = th.Placeholder().Render("Loading image details...")
	} else {
		body = v.detailView.View()
	}

	content := th.PanelTitle().Render(title) + "\n" + body
	maxWidth := width - 4
	if maxWidth < design.MinBodyWidth {
		maxWidth = design.MinBodyWidth
	}
	return th.Modal().MaxWidth(maxWidth).Render(content)
}

func (v *Images) HelpLine() string {
	if v.inspecting {
		return "↑/↓ scroll · i close"
	}
	return "↑/↓ select · i inspect · d delete · y copy id · r refresh"
}

func imageHeaderLine() string {
	return fmt.Sprintf("%-40s %-10s %-16s %-6s %s", "REPO:TAG", "SIZE", "AGE", "USED", "ID")
}

func imageRowLine(row docker.ImageRow) string {
	used := "-"
	if row.Containers >= 0 {
		used = fmt.Sprintf("%d", row.Containers)
	}
	return fmt.Sprintf("%-40s %-10s %-16s %-6s %s",
		truncate(row.RepoTag, 40),
		docker.FormatSize(row.Size),
		docker.FormatAge(row.Created),
		used,
		row.DisplayID,
	)
}

// formatImageDetail renders the inspect record as the modal's scrollable
// text. Plain text: the viewport scrolls it line by line.
func formatImageDetail(d *docker.ImageDetail) string {
	var b strings.Builder

	writeField := func(name, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "%-12s %s\n", name+":", value)
	}

	writeField("ID", docker.ShortID(d.ID))
	writeField("Tags", strings.Join(d.Tags, ", "))
	writeField("Size", docker.FormatSize(d.Size))
	if !d.Created.IsZero() {
		writeField("Created", fmt.Sprintf("%s (%s)", d.Created.Format(time.RFC3339), docker.FormatAge(d.Created)))
	} else {
		writeField("Created", "")
	}
	writeField("Platform", d.OS+"/"+d.Architecture)
	writeField("WorkDir", d.WorkingDir)
	writeField("Entrypoint", strings.Join(d.Entrypoint, " "))
	writeField("Cmd", strings.Join(d.Cmd, " "))
	writeField("Ports", strings.Join(d.ExposedPorts, ", "))

	if len(d.Env) > 0 {
		b.WriteString("\nEnvironment:\n")
		for _, env := range d.Env {
			fmt.Fprintf(&b, "  %s\n", env)
		}
	}

	if len(d.Labels) > 0 {
		b.WriteString("\nLabels:\n")
		keys := make([]string, 0, len(d.Labels))
		for k := range d.Labels {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s=%s\n", k, d.Labels[k])
		}
	}

	return b.String()
}
