package docker

import (
	"sort"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/go-units"
)

// ImageRow is one line in the images view.
type ImageRow struct {
	// ID is the full engine identifier, used for inspect/remove calls.
	ID string
	// DisplayID is the shortened identifier shown on screen.
	DisplayID string
	// RepoTag is the first repository tag, or the DisplayID for untagged
	// images.
	RepoTag string
	// Size is the image size in bytes.
	Size int64
	// Created is the image creation time.
	Created time.Time
	// Containers counts containers using the image; -1 when the engine did
	// not compute it.
	Containers int64
}

// ImageDetail is the record behind the inspect modal.
type ImageDetail struct {
	ID           string
	Tags         []string
	Size         int64
	Created      time.Time
	Architecture string
	OS           string
	Env          []string
	ExposedPorts []string
	WorkingDir   string
	Entrypoint   []string
	Cmd          []string
	Labels       map[string]string
}

func newImageRow(img image.Summary) ImageRow {
	row := ImageRow{
		ID:         img.ID,
		DisplayID:  ShortID(img.ID),
		Size:       img.Size,
		Created:    time.Unix(img.Created, 0),
		Containers: img.Containers,
	}
	row.RepoTag = displayTag(img.RepoTags, row.DisplayID)
	return row
}

func newImageDetail(inspect types.ImageInspect) *ImageDetail {
	detail := &ImageDetail{
		ID:           inspect.ID,
		Tags:         inspect.RepoTags,
		Size:         inspect.Size,
		Architecture: inspect.Architecture,
		OS:           inspect.Os,
	}
	if created, err := time.Parse(time.RFC3339Nano, inspect.Created); err == nil {
		detail.Created = created
	}
	if cfg := inspect.Config; cfg != nil {
		detail.Env = cfg.Env
		detail.WorkingDir = cfg.WorkingDir
		detail.Entrypoint = cfg.Entrypoint
		detail.Cmd = cfg.Cmd
		detail.Labels = cfg.Labels
		for port := range cfg.ExposedPorts {
			detail.ExposedPorts = append(detail.ExposedPorts, string(port))
		}
		sort.Strings(detail.ExposedPorts)
	}
	return detail
}

// ShortID shortens an engine identifier for display: the "sha256:" prefix
// is dropped and the digest truncated to twelve characters.
func ShortID(id string) string {
	id = strings.TrimPrefix(id, "sha256:")
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// displayTag picks the first usable repo tag, falling back to the short ID
// for dangling images.
func displayTag(tags []string, fallback string) string {
	for _, tag := range tags {
		if tag != "" && tag != "<none>:<none>" {
			return tag
		}
	}
	return fallback
}

// FormatSize renders a byte count in human units ("1.2GB").
func FormatSize(size int64) string {
	return units.HumanSize(float64(size))
}

// FormatAge renders how long ago t was ("3 days ago"). Zero times render
// as "unknown".
func FormatAge(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return units.HumanDuration(time.Since(t)) + " ago"
}
