// Package order models the order-status exercise: an order walks
// created -> paid -> shipped -> delivered -> cancelled and then stays
// cancelled.
package order

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/comalice/drills"
	"github.com/comalice/drills/internal/primitives"
)

// Status is the lifecycle stage of an order.
type Status string

const (
	Created   Status = "created"
	Paid      Status = "paid"
	Shipped   Status = "shipped"
	Delivered Status = "delivered"
	Cancelled Status = "cancelled"
)

// EventAdvance is the event that moves an order one step forward.
const EventAdvance = "advance"

// Lifecycle is the fixed transition order.
var Lifecycle = drills.MustSequence(Created, Paid, Shipped, Delivered, Cancelled)

func (s Status) String() string {
	return string(s)
}

// Next returns the following status. Cancelled is absorbing.
func (s Status) Next() Status {
	return Lifecycle.Next(s)
}

// IsTerminal reports whether s is the absorbing status.
func (s Status) IsTerminal() bool {
	return s == Lifecycle.Terminal()
}

// ParseStatus accepts a status name, case-insensitively.
func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(v)))
	if !Lifecycle.Contains(s) {
		return "", fmt.Errorf("unknown order status %q", v)
	}
	return s, nil
}

// Order is an order entity. Status only changes through Advance.
type Order struct {
	ID     uuid.UUID `json:"id" yaml:"id"`
	Status Status    `json:"status" yaml:"status"`
}

// New creates an order with a fresh ID in the Created status.
func New() *Order {
	return &Order{
		ID:     uuid.New(),
		Status: Lifecycle.Initial(),
	}
}

// Advance moves the order to its next status and returns it.
func (o *Order) Advance() Status {
	o.Status = o.Status.Next()
	return o.Status
}

// Definition returns the lifecycle as a machine definition driven by
// EventAdvance, for use with the runtime in internal/core.
func Definition() primitives.MachineConfig {
	states := Lifecycle.States()
	ids := make([]string, len(states))
	for i, s := range states {
		ids[i] = s.String()
	}
	return primitives.Linear("order", EventAdvance, ids...)
}
