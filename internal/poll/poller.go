// Package poll runs the background refresh workers that keep each dashboard
// view current. One goroutine per view ticks at the view's own cadence,
// performs its fetch, and pushes the resulting message onto a single event
// channel the update loop consumes in FIFO order. Workers observe the run
// context and stop promptly on cancellation; a failed fetch never stops a
// worker's loop.
package poll

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dockhand/pkg/logging"
)

const logSubsystem = "poll"

// Spec describes one background refresh worker.
type Spec struct {
	// Name identifies the worker in log lines.
	Name string
	// Interval is the tick cadence. Specs with a non-positive interval are
	// skipped.
	Interval time.Duration
	// Fetch performs the refresh and returns the message to deliver. It is
	// called once per tick; a slow fetch stalls only its own worker.
	Fetch func(ctx context.Context) tea.Msg
}

// Poller owns the shared event channel and the worker goroutines.
type Poller struct {
	events chan tea.Msg
}

// New creates a poller whose event channel holds up to buffer messages.
func New(buffer int) *Poller {
	if buffer <= 0 {
		buffer = 16
	}
	return &Poller{events: make(chan tea.Msg, buffer)}
}

// Events exposes the channel the update loop listens on.
func (p *Poller) Events() <-chan tea.Msg {
	return p.events
}

// Start launches one worker per spec. Workers run until ctx is cancelled.
func (p *Poller) Start(ctx context.Context, specs ...Spec) {
	for _, spec := range specs {
		if spec.Interval <= 0 {
			logging.Warn(logSubsystem, "worker %s has no interval, skipping", spec.Name)
			continue
		}
		go p.work(ctx, spec)
	}
}

func (p *Poller) work(ctx context.Context, spec Spec) {
	ticker := time.NewTicker(spec.Interval)
	defer ticker.Stop()

	logging.Debug(logSubsystem, "worker %s started (every %s)", spec.Name, spec.Interval)
	for {
		select {
		case <-ctx.Done():
			logging.Debug(logSubsystem, "worker %s stopped", spec.Name)
			return
		case <-ticker.C:
			p.deliver(ctx, spec.Fetch(ctx))
		}
	}
}

// deliver sends without wedging a worker when the consumer is gone.
func (p *Poller) deliver(ctx context.Context, msg tea.Msg) {
	if msg == nil {
		return
	}
	select {
	case p.events <- msg:
	case <-ctx.Done():
	}
}

// EventMsg wraps a message that arrived over the poller channel. The update
// loop re-arms Listen when it sees one, keeping exactly one consumer on the
// channel at all times.
type EventMsg struct {
	Msg tea.Msg
}

// Listen returns a command that blocks for the next poller event.
func Listen(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Msg: msg}
	}
}
