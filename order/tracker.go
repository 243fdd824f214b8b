package order

import (
	"context"

	"github.com/comalice/drills/internal/core"
	"github.com/comalice/drills/internal/primitives"
)

// Tracker drives an Order through core.Machine so every step can be
// persisted, published and counted.
type Tracker struct {
	order   *Order
	machine *core.Machine
}

// NewTracker wraps o. The machine ID is the order ID and the machine starts
// from the order's current status.
func NewTracker(o *Order, opts ...core.Option) (*Tracker, error) {
	opts = append([]core.Option{core.WithID(o.ID.String())}, opts...)
	m, err := core.NewMachine(Definition(), opts...)
	if err != nil {
		return nil, err
	}
	if o.Status != Lifecycle.Initial() {
		snap := m.Snapshot()
		snap.Current = o.Status.String()
		if err := m.Restore(snap); err != nil {
			return nil, err
		}
	}
	return &Tracker{order: o, machine: m}, nil
}

// Advance fires EventAdvance and mirrors the result onto the order.
func (t *Tracker) Advance(ctx context.Context) (Status, error) {
	if err := t.machine.Fire(ctx, primitives.NewEvent(EventAdvance, t.order.ID.String())); err != nil {
		return t.order.Status, err
	}
	t.order.Status = Status(t.machine.Current())
	return t.order.Status, nil
}

// Resume loads the last persisted status of the order.
func (t *Tracker) Resume(ctx context.Context) error {
	if err := t.machine.Resume(ctx); err != nil {
		return err
	}
	t.order.Status = Status(t.machine.Current())
	return nil
}

func (t *Tracker) Order() *Order {
	return t.order
}

func (t *Tracker) Machine() *core.Machine {
	return t.machine
}
