package core

import (
	"context"
	"time"

	"github.com/comalice/drills/internal/primitives"
)

// GuardEvaluator decides whether a guarded transition may fire. An empty
// guard always passes and is never handed to the evaluator.
type GuardEvaluator interface {
	Eval(ctx *primitives.Context, guard string, event primitives.Event) (bool, error)
}

// EventSource feeds events to Machine.Run until its channel is closed.
type EventSource interface {
	Events() <-chan primitives.Event
}

// Persister stores the latest snapshot of each machine.
type Persister interface {
	Save(ctx context.Context, snapshot MachineSnapshot) error
	Load(ctx context.Context, machineID string) (MachineSnapshot, error)
}

// EventPublisher announces completed transitions.
type EventPublisher interface {
	Publish(ctx context.Context, event primitives.Event, metadata MachineMetadata) error
	Close() error
}

// Registry keeps the transition history of every machine it has seen.
type Registry interface {
	Register(ctx context.Context, snapshot MachineSnapshot) error
	Latest(ctx context.Context, machineID string) (MachineSnapshot, error)
	History(ctx context.Context, machineID string) ([]MachineSnapshot, error)
	ListMachines(ctx context.Context) ([]string, error)
}

// Visualizer renders a machine definition with its active state.
type Visualizer interface {
	ExportDOT(config primitives.MachineConfig, current string) string
	ExportJSON(config primitives.MachineConfig) ([]byte, error)
}

// MachineSnapshot is the serializable runtime state of a machine.
type MachineSnapshot struct {
	MachineID   string                   `json:"machineID" yaml:"machineID"`
	Version     string                   `json:"version" yaml:"version"`
	Config      primitives.MachineConfig `json:"config" yaml:"config"`
	Current     string                   `json:"current" yaml:"current"`
	ContextData map[string]any           `json:"context,omitempty" yaml:"context,omitempty"`
	Timestamp   time.Time                `json:"timestamp" yaml:"timestamp"`
}

// MachineMetadata describes a published transition.
type MachineMetadata struct {
	MachineID string    `json:"machineID" yaml:"machineID"`
	From      string    `json:"from" yaml:"from"`
	To        string    `json:"to" yaml:"to"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Transition renders the metadata as "from -> to".
func (md MachineMetadata) Transition() string {
	return md.From + " -> " + md.To
}
