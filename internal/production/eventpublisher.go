package production

import (
	"context"
	"sync/atomic"

	"github.com/comalice/drills/internal/core"
	"github.com/comalice/drills/internal/primitives"
)

var _ core.EventPublisher = (*ChannelPublisher)(nil)

// PublishedEvent bundles an event with its transition metadata.
type PublishedEvent struct {
	Event    primitives.Event
	Metadata core.MachineMetadata
}

// ChannelPublisher forwards transitions to a Go channel without blocking;
// when the buffer is full the transition is dropped and counted.
type ChannelPublisher struct {
	ch      chan<- PublishedEvent
	dropped atomic.Int64
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- PublishedEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event primitives.Event, metadata core.MachineMetadata) error {
	select {
	case p.ch <- PublishedEvent{Event: event, Metadata: metadata}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		p.dropped.Add(1)
		return nil
	}
}

// Dropped returns how many transitions were lost to backpressure.
func (p *ChannelPublisher) Dropped() int64 {
	return p.dropped.Load()
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
