// Package docker wraps the Docker engine SDK behind the narrow query and
// action surface the dashboard needs. One Client instance is shared by all
// views; an internal mutex serializes engine calls so concurrent refresh
// workers never interleave on the same connection. The lock is scoped to a
// single call and is never held across anything else.
package docker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/volume"
)

// ErrConnection marks a failure to reach the engine at startup. It is the
// only fatal error class in the client; everything else is ErrQuery.
var ErrConnection = errors.New("cannot connect to container engine")

// ErrQuery marks a failed list/inspect/action call. Callers recover locally:
// previous data is retained and the failure is logged.
var ErrQuery = errors.New("engine query failed")

// StatusUnknown is reported when a container's status cannot be determined.
const StatusUnknown = "Unknown"

// Client is the shared resource client handle.
type Client struct {
	mu     sync.Mutex
	engine Engine

	host          string
	serverVersion string
}

// Connect establishes the engine connection and verifies it with a version
// ping. It fails fast when the daemon is unreachable — this is the caller's
// cue to exit before any terminal setup.
func Connect(ctx context.Context, host string) (*Client, error) {
	engine, err := newEngine(host)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return connectWith(ctx, engine, host)
}

// connectWith finishes construction against an arbitrary Engine; split out
// so tests can inject a fake.
func connectWith(ctx context.Context, engine Engine, host string) (*Client, error) {
	version, err := engine.ServerVersion(ctx)
	if err != nil {
		_ = engine.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return &Client{
		engine:        engine,
		host:          host,
		serverVersion: version.Version,
	}, nil
}

// Host returns the configured engine address, empty for the local default.
func (c *Client) Host() string { return c.host }

// ServerVersion returns the engine version reported at connect time.
func (c *Client) ServerVersion() string { return c.serverVersion }

// Close releases the underlying engine connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Close()
}

// ListContainers returns the display names of all containers, running or
// not, in the order the engine reports them.
func (c *Client) ListContainers(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	containers, err := c.engine.ContainerList(ctx, container.ListOptions{All: true})
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: listing containers: %v", ErrQuery, err)
	}

	names := make([]string, 0, len(containers))
	for _, ctr := range containers {
		if name := primaryName(ctr.Names); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// ContainerStatus resolves the human-readable status ("Up 2 hours",
// "Exited (0) ...") of the named container, or StatusUnknown.
func (c *Client) ContainerStatus(ctx context.Context, name string) (string, error) {
	opts := container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("name", name)),
	}
	c.mu.Lock()
	containers, err := c.engine.ContainerList(ctx, opts)
	c.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("%w: resolving status of %s: %v", ErrQuery, name, err)
	}
	if len(containers) == 0 || containers[0].Status == "" {
		return StatusUnknown, nil
	}
	return containers[0].Status, nil
}

// StartContainer starts the named container.
func (c *Client) StartContainer(ctx context.Context, name string) error {
	c.mu.Lock()
	err := c.engine.ContainerStart(ctx, name, container.StartOptions{})
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: starting %s: %v", ErrQuery, name, err)
	}
	return nil
}

// StopContainer stops the named container with the engine's default timeout.
func (c *Client) StopContainer(ctx context.Context, name string) error {
	c.mu.Lock()
	err := c.engine.ContainerStop(ctx, name, container.StopOptions{})
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: stopping %s: %v", ErrQuery, name, err)
	}
	return nil
}

// RemoveContainer force-removes the named container.
func (c *Client) RemoveContainer(ctx context.Context, name string) error {
	c.mu.Lock()
	err := c.engine.ContainerRemove(ctx, name, container.RemoveOptions{Force: true})
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: removing %s: %v", ErrQuery, name, err)
	}
	return nil
}

// ListImages returns one row per image known to the engine.
func (c *Client) ListImages(ctx context.Context) ([]ImageRow, error) {
	c.mu.Lock()
	images, err := c.engine.ImageList(ctx, image.ListOptions{})
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: listing images: %v", ErrQuery, err)
	}

	rows := make([]ImageRow, 0, len(images))
	for _, img := range images {
		rows = append(rows, newImageRow(img))
	}
	return rows, nil
}

// InspectImage fetches the detail record for one image.
func (c *Client) InspectImage(ctx context.Context, id string) (*ImageDetail, error) {
	c.mu.Lock()
	inspect, _, err := c.engine.ImageInspectWithRaw(ctx, id)
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: inspecting image %s: %v", ErrQuery, ShortID(id), err)
	}
	return newImageDetail(inspect), nil
}

// RemoveImage removes the image by ID.
func (c *Client) RemoveImage(ctx context.Context, id string) error {
	c.mu.Lock()
	_, err := c.engine.ImageRemove(ctx, id, image.RemoveOptions{})
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: removing image %s: %v", ErrQuery, ShortID(id), err)
	}
	return nil
}

// ListNetworks returns the names of all networks.
func (c *Client) ListNetworks(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	networks, err := c.engine.NetworkList(ctx, network.ListOptions{})
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: listing networks: %v", ErrQuery, err)
	}

	names := make([]string, 0, len(networks))
	for _, nw := range networks {
		if nw.Name != "" {
			names = append(names, nw.Name)
		}
	}
	return names, nil
}

// RemoveNetwork removes the named network.
func (c *Client) RemoveNetwork(ctx context.Context, name string) error {
	c.mu.Lock()
	err := c.engine.NetworkRemove(ctx, name)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: removing network %s: %v", ErrQuery, name, err)
	}
	return nil
}

// ListVolumes returns the names of all volumes, sorted for stable display.
func (c *Client) ListVolumes(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	resp, err := c.engine.VolumeList(ctx, volume.ListOptions{})
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%w: listing volumes: %v", ErrQuery, err)
	}

	names := make([]string, 0, len(resp.Volumes))
	for _, vol := range resp.Volumes {
		if vol != nil {
			names = append(names, vol.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// RemoveVolume removes the named volume.
func (c *Client) RemoveVolume(ctx context.Context, name string) error {
	c.mu.Lock()
	err := c.engine.VolumeRemove(ctx, name, false)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: removing volume %s: %v", ErrQuery, name, err)
	}
	return nil
}

// primaryName picks the first reported container name, minus the leading
// slash the engine prepends.
func primaryName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.TrimPrefix(names[0], "/")
}
