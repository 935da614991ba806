package views

import (
	"dockhand/internal/docker"
)

// Action verbs reported through ActionDoneMsg.
const (
	VerbStart  = "start"
	VerbStop   = "stop"
	VerbDelete = "delete"
	VerbCopy   = "copy"
)

// ContainersLoadedMsg replaces the containers view's rows.
type ContainersLoadedMsg struct {
	Names []string
}

// ImagesLoadedMsg replaces the images view's rows.
type ImagesLoadedMsg struct {
	Rows []docker.ImageRow
}

// NetworksLoadedMsg replaces the networks view's rows.
type NetworksLoadedMsg struct {
	Names []string
}

// VolumesLoadedMsg replaces the volumes view's rows.
type VolumesLoadedMsg struct {
	Names []string
}

// RefreshFailedMsg reports a failed list query. The issuing view keeps its
// previous rows; the controller logs the error. Never fatal.
type RefreshFailedMsg struct {
	Tab      int
	ViewName string
	Err      error
}

// ImageInspectedMsg carries the outcome of an image detail fetch. On error
// the images view closes its modal.
type ImageInspectedMsg struct {
	ID     string
	Detail *docker.ImageDetail
	Err    error
}

// ActionDoneMsg reports the outcome of a resource action (start/stop/delete/
// copy). The owning view refreshes itself after a successful mutation; the
// controller logs failures and flashes the status bar.
type ActionDoneMsg struct {
	Tab    int
	Verb   string
	Target string
	Err    error
}
