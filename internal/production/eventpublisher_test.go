package production

import (
	"context"
	"testing"
	"time"

	"github.com/comalice/drills/internal/core"
	"github.com/comalice/drills/internal/primitives"
)

func TestChannelPublisher_Delivery(t *testing.T) {
	ch := make(chan PublishedEvent, 10)
	p := NewChannelPublisher(ch)

	meta := core.MachineMetadata{MachineID: "order-1", From: "created", To: "paid", Timestamp: time.Now()}
	if err := p.Publish(context.Background(), primitives.NewEvent("advance", nil), meta); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	select {
	case got := <-ch:
		if got.Event.Type != "advance" {
			t.Errorf("event type mismatch: got %q", got.Event.Type)
		}
		if got.Metadata.Transition() != "created -> paid" {
			t.Errorf("transition mismatch: got %q", got.Metadata.Transition())
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("no event delivered")
	}
}

func TestChannelPublisher_BackpressureDrop(t *testing.T) {
	ch := make(chan PublishedEvent, 1)
	p := NewChannelPublisher(ch)
	ch <- PublishedEvent{}

	err := p.Publish(context.Background(), primitives.NewEvent("advance", nil), core.MachineMetadata{})
	if err != nil {
		t.Errorf("Publish on full channel failed: %v", err)
	}
	if p.Dropped() != 1 {
		t.Errorf("expected 1 dropped event, got %d", p.Dropped())
	}
}

func TestChannelPublisher_MachineIntegration(t *testing.T) {
	ch := make(chan PublishedEvent, 10)
	p := NewChannelPublisher(ch)
	defer p.Close()

	m, err := core.NewMachine(orderConfig(), core.WithPublisher(p))
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Fire(context.Background(), primitives.NewEvent("advance", nil)); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-ch:
		if got.Metadata.Transition() != "created -> paid" {
			t.Errorf("unexpected transition %q", got.Metadata.Transition())
		}
	default:
		t.Error("Fire must publish synchronously")
	}
}
