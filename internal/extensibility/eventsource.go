package extensibility

import (
	"time"

	"github.com/comalice/drills/internal/core"
	"github.com/comalice/drills/internal/primitives"
)

var (
	_ core.EventSource = (*ChannelEventSource)(nil)
	_ core.EventSource = (*TimerEventSource)(nil)
)

// ChannelEventSource is an EventSource backed by a Go channel.
type ChannelEventSource struct {
	ch chan primitives.Event
}

// NewChannelEventSource creates a new ChannelEventSource with the given channel.
func NewChannelEventSource(ch chan primitives.Event) *ChannelEventSource {
	return &ChannelEventSource{ch: ch}
}

// Events returns the receive-only channel for events.
func (s *ChannelEventSource) Events() <-chan primitives.Event {
	return s.ch
}

// TimerEventSource emits the same event every tick, at most limit times
// (0 = unlimited), then closes its channel.
type TimerEventSource struct {
	ch        chan primitives.Event
	eventType string
	limit     int
	ticker    *time.Ticker
	stop      chan struct{}
}

// NewTimerEventSource creates a TimerEventSource that emits eventType every d.
func NewTimerEventSource(eventType string, d time.Duration, limit int) *TimerEventSource {
	t := &TimerEventSource{
		ch:        make(chan primitives.Event, 1),
		eventType: eventType,
		limit:     limit,
		ticker:    time.NewTicker(d),
		stop:      make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *TimerEventSource) run() {
	defer close(t.ch)
	defer t.ticker.Stop()

	sent := 0
	for {
		select {
		case <-t.ticker.C:
			select {
			case t.ch <- primitives.NewEvent(t.eventType, sent):
				sent++
			case <-t.stop:
				return
			}
			if t.limit > 0 && sent >= t.limit {
				return
			}
		case <-t.stop:
			return
		}
	}
}

// Events returns the event channel.
func (t *TimerEventSource) Events() <-chan primitives.Event {
	return t.ch
}

// Stop ends the ticker and closes the channel. Call it at most once.
func (t *TimerEventSource) Stop() {
	close(t.stop)
}
