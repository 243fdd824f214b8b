package extensibility

import (
	"testing"
	"time"

	"github.com/comalice/drills/internal/primitives"
)

func TestChannelEventSource(t *testing.T) {
	ch := make(chan primitives.Event, 1)
	s := NewChannelEventSource(ch)
	ch <- primitives.NewEvent("advance", nil)

	select {
	case ev := <-s.Events():
		if ev.Type != "advance" {
			t.Errorf("wrong event %q", ev.Type)
		}
	default:
		t.Error("expected buffered event")
	}
}

func TestTimerEventSource_Limit(t *testing.T) {
	s := NewTimerEventSource("advance", 5*time.Millisecond, 3)

	var got []primitives.Event
	timeout := time.After(time.Second)
	for {
		select {
		case ev, ok := <-s.Events():
			if !ok {
				if len(got) != 3 {
					t.Fatalf("expected 3 events before close, got %d", len(got))
				}
				if got[2].Data != 2 {
					t.Errorf("expected sequence number 2, got %v", got[2].Data)
				}
				return
			}
			got = append(got, ev)
		case <-timeout:
			t.Fatal("timer source did not close")
		}
	}
}

func TestTimerEventSource_Stop(t *testing.T) {
	s := NewTimerEventSource("tick", time.Hour, 0)
	s.Stop()

	select {
	case _, ok := <-s.Events():
		if ok {
			t.Error("expected closed channel after Stop")
		}
	case <-time.After(time.Second):
		t.Error("channel not closed after Stop")
	}
}
