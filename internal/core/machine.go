// Package core runs machine definitions from internal/primitives.
//
// A Machine is a synchronous, thread-safe wrapper around a looplab/fsm
// instance that adds absorbing terminal states, guard expressions, snapshot
// persistence, transition publishing and metrics.
package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/comalice/drills/internal/primitives"
)

var (
	// ErrRejected is returned by Fire when the event is not allowed in the
	// current state or its guard does not hold. The state is unchanged.
	ErrRejected = errors.New("event rejected")

	ErrGuardFailed      = errors.New("guard condition not met")
	ErrNoGuardEvaluator = errors.New("guarded transition without guard evaluator")
	ErrNoPersister      = errors.New("no persister configured")
)

// Machine is the runtime instance of a MachineConfig.
type Machine struct {
	id      string
	config  primitives.MachineConfig
	version string
	fsm     *fsm.FSM
	ctx     *primitives.Context

	// mu serializes Fire and Restore so side effects observe a stable state.
	mu sync.Mutex

	logger     *zap.Logger
	guardEval  GuardEvaluator
	persister  Persister
	publisher  EventPublisher
	registry   Registry
	visualizer Visualizer
	metrics    *Metrics
}

// NewMachine validates config and returns a Machine in its initial state.
func NewMachine(config primitives.MachineConfig, opts ...Option) (*Machine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("machine %q: %w", config.ID, err)
	}

	m := &Machine{
		id:      config.ID,
		config:  config,
		version: primitives.ComputeVersion(&config),
		ctx:     primitives.NewContext(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(zap.String("machine", m.id))

	events := make(fsm.Events, 0, len(config.Transitions))
	for _, t := range config.Transitions {
		events = append(events, fsm.EventDesc{Name: t.Event, Src: t.From, Dst: t.Target})
	}
	m.fsm = fsm.NewFSM(config.Initial, events, fsm.Callbacks{
		"before_event": m.checkGuard,
	})

	return m, nil
}

// checkGuard cancels the transition when its guard does not hold.
func (m *Machine) checkGuard(_ context.Context, e *fsm.Event) {
	t, ok := m.config.FindTransition(e.Src, e.Event)
	if !ok || t.Guard == "" {
		return
	}
	if m.guardEval == nil {
		e.Cancel(ErrNoGuardEvaluator)
		return
	}

	var evt primitives.Event
	if len(e.Args) > 0 {
		evt, _ = e.Args[0].(primitives.Event)
	}
	pass, err := m.guardEval.Eval(m.ctx, t.Guard, evt)
	if err != nil {
		e.Cancel(fmt.Errorf("guard %q: %w", t.Guard, err))
		return
	}
	if !pass {
		e.Cancel(ErrGuardFailed)
	}
}

// ID returns the instance ID.
func (m *Machine) ID() string {
	return m.id
}

// Config returns the machine definition.
func (m *Machine) Config() primitives.MachineConfig {
	return m.config
}

// Version returns the definition version recorded in snapshots.
func (m *Machine) Version() string {
	return m.version
}

// Ctx returns the extended state read by guards.
func (m *Machine) Ctx() *primitives.Context {
	return m.ctx
}

// Current returns the active state.
func (m *Machine) Current() string {
	return m.fsm.Current()
}

// IsTerminal reports whether the machine sits in an absorbing state.
func (m *Machine) IsTerminal() bool {
	return m.config.IsTerminal(m.fsm.Current())
}

// Can reports whether event is declared for the current state. Guards are
// not evaluated.
func (m *Machine) Can(event string) bool {
	return !m.IsTerminal() && m.fsm.Can(event)
}

// Available returns the events declared for the current state, sorted.
func (m *Machine) Available() []string {
	if m.IsTerminal() {
		return nil
	}
	events := m.fsm.AvailableTransitions()
	sort.Strings(events)
	return events
}

// Fire applies evt synchronously.
//
// In a terminal state every event is a no-op and Fire returns nil. An event
// that is not declared for the current state, or whose guard fails, returns
// an error wrapping ErrRejected and leaves the state unchanged.
func (m *Machine) Fire(ctx context.Context, evt primitives.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.fsm.Current()
	if m.config.IsTerminal(from) {
		m.logger.Debug("event ignored in terminal state",
			zap.String("event", evt.Type), zap.String("state", from))
		return nil
	}

	if err := m.fsm.Event(ctx, evt.Type, evt); err != nil {
		var noTransition fsm.NoTransitionError
		if errors.As(err, &noTransition) {
			return nil
		}
		m.metrics.rejected(m.id, evt.Type)
		m.logger.Info("event rejected",
			zap.String("event", evt.Type), zap.String("state", from), zap.Error(err))
		return fmt.Errorf("%w: %q in state %q: %w", ErrRejected, evt.Type, from, err)
	}

	to := m.fsm.Current()
	m.metrics.transition(m.id, from, to)
	m.logger.Debug("transition",
		zap.String("event", evt.Type), zap.String("from", from), zap.String("to", to))

	m.afterTransition(ctx, evt, from, to)
	return nil
}

// afterTransition persists, records and publishes a completed transition.
// Failures are logged; the transition itself already happened.
func (m *Machine) afterTransition(ctx context.Context, evt primitives.Event, from, to string) {
	snapshot := m.snapshotLocked()

	if m.persister != nil {
		if err := m.persister.Save(ctx, snapshot); err != nil {
			m.logger.Warn("persist snapshot failed", zap.Error(err))
		}
	}
	if m.registry != nil {
		if err := m.registry.Register(ctx, snapshot); err != nil {
			m.logger.Warn("register snapshot failed", zap.Error(err))
		}
	}
	if m.publisher != nil {
		md := MachineMetadata{
			MachineID: m.id,
			From:      from,
			To:        to,
			Timestamp: snapshot.Timestamp,
		}
		if err := m.publisher.Publish(ctx, evt, md); err != nil {
			m.logger.Warn("publish transition failed", zap.Error(err))
		}
	}
}

// Snapshot returns the current runtime state.
func (m *Machine) Snapshot() MachineSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) snapshotLocked() MachineSnapshot {
	return MachineSnapshot{
		MachineID:   m.id,
		Version:     m.version,
		Config:      m.config,
		Current:     m.fsm.Current(),
		ContextData: m.ctx.Snapshot(),
		Timestamp:   time.Now().UTC(),
	}
}

// Restore puts the machine back into the state recorded by snapshot.
func (m *Machine) Restore(snapshot MachineSnapshot) error {
	if snapshot.MachineID != m.id {
		return fmt.Errorf("machine ID mismatch: have %q, snapshot %q", m.id, snapshot.MachineID)
	}
	if snapshot.Config.ID != "" && snapshot.Config.ID != m.config.ID {
		return fmt.Errorf("definition mismatch: have %q, snapshot %q", m.config.ID, snapshot.Config.ID)
	}
	if !m.config.HasState(snapshot.Current) {
		return fmt.Errorf("snapshot state %q is not part of machine %q", snapshot.Current, m.config.ID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if snapshot.Version != "" && snapshot.Version != m.version {
		m.logger.Info("restoring snapshot from another definition version",
			zap.String("snapshot_version", snapshot.Version), zap.String("version", m.version))
	}
	m.fsm.SetState(snapshot.Current)
	m.ctx.Restore(snapshot.ContextData)
	return nil
}

// Resume restores the last snapshot saved by the configured persister.
func (m *Machine) Resume(ctx context.Context) error {
	if m.persister == nil {
		return ErrNoPersister
	}
	snapshot, err := m.persister.Load(ctx, m.id)
	if err != nil {
		return fmt.Errorf("resume %q: %w", m.id, err)
	}
	return m.Restore(snapshot)
}

// Run fires every event from src until the source closes or ctx is done.
// Rejected events are logged and skipped.
func (m *Machine) Run(ctx context.Context, src EventSource) error {
	events := src.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			_ = m.Fire(ctx, evt)
		}
	}
}

// Visualize returns the Graphviz DOT rendering of the machine.
func (m *Machine) Visualize() string {
	if m.visualizer == nil {
		return "ERROR: No visualizer configured. Use WithVisualizer(&production.DefaultVisualizer{})"
	}
	return m.visualizer.ExportDOT(m.config, m.fsm.Current())
}

// Mermaid returns a Mermaid state diagram of the machine.
func (m *Machine) Mermaid() (string, error) {
	return fsm.VisualizeWithType(m.fsm, fsm.MermaidStateDiagram)
}
