package core

import "go.uber.org/zap"

// Option applies configuration to Machine via functional options pattern.
type Option func(*Machine)

// WithID overrides the instance ID (defaults to the config ID). Snapshots
// and metrics are keyed by it.
func WithID(id string) Option {
	return func(m *Machine) {
		m.id = id
	}
}

// WithLogger configures the Machine logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithGuardEvaluator configures how guard expressions are evaluated.
func WithGuardEvaluator(e GuardEvaluator) Option {
	return func(m *Machine) {
		m.guardEval = e
	}
}

// WithPersister saves a snapshot after every transition.
func WithPersister(p Persister) Option {
	return func(m *Machine) {
		m.persister = p
	}
}

// WithPublisher announces every transition.
func WithPublisher(pb EventPublisher) Option {
	return func(m *Machine) {
		m.publisher = pb
	}
}

// WithRegistry records every transition in r.
func WithRegistry(r Registry) Option {
	return func(m *Machine) {
		m.registry = r
	}
}

// WithVisualizer configures the Machine with a Visualizer.
func WithVisualizer(v Visualizer) Option {
	return func(m *Machine) {
		m.visualizer = v
	}
}

// WithMetrics counts transitions and rejected events.
func WithMetrics(mt *Metrics) Option {
	return func(m *Machine) {
		m.metrics = mt
	}
}
