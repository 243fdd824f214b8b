package core

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters shared by every Machine configured with them.
type Metrics struct {
	Transitions *prometheus.CounterVec
	Rejected    *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drills",
			Name:      "transitions_total",
			Help:      "Number of completed state transitions.",
		}, []string{"machine", "from", "to"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drills",
			Name:      "rejected_events_total",
			Help:      "Number of events refused by a machine.",
		}, []string{"machine", "event"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.Transitions, m.Rejected} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

func (m *Metrics) transition(machine, from, to string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(machine, from, to).Inc()
}

func (m *Metrics) rejected(machine, event string) {
	if m == nil {
		return
	}
	m.Rejected.WithLabelValues(machine, event).Inc()
}
