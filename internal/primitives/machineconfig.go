package primitives

import (
	"errors"
	"fmt"
)

// MachineConfig defines a complete flat state machine.
//
// A state listed in Terminal is absorbing: it must have no outgoing
// transitions. Every other state needs at least one so the machine can
// always make progress.
type MachineConfig struct {
	Version     string             `json:"version,omitempty" yaml:"version,omitempty"`
	ID          string             `json:"id" yaml:"id"`
	Initial     string             `json:"initial" yaml:"initial"`
	States      []string           `json:"states" yaml:"states"`
	Terminal    []string           `json:"terminal,omitempty" yaml:"terminal,omitempty"`
	Transitions []TransitionConfig `json:"transitions" yaml:"transitions"`
}

// Linear builds the config of a sequence where a single event moves each
// state to the following one and the last state is terminal.
func Linear(id, event string, states ...string) MachineConfig {
	cfg := MachineConfig{
		ID:     id,
		States: append([]string(nil), states...),
	}
	if len(states) == 0 {
		return cfg
	}
	cfg.Initial = states[0]
	cfg.Terminal = []string{states[len(states)-1]}
	for i := 0; i < len(states)-1; i++ {
		cfg.Transitions = append(cfg.Transitions, TransitionConfig{
			Event:  event,
			From:   []string{states[i]},
			Target: states[i+1],
		})
	}
	return cfg
}

// Validate validates the entire machine configuration:
//   - non-empty ID and Initial, Initial listed in States
//   - unique, well-formed state IDs
//   - terminal states are known and have no outgoing transitions
//   - every transition is valid and only references known states
//   - no (event, source) pair is declared twice
//   - every non-terminal state has an outgoing transition
//   - every state is reachable from Initial
func (m *MachineConfig) Validate() error {
	if m.ID == "" {
		return errors.New("machine ID is required")
	}
	if m.Initial == "" {
		return errors.New("initial state ID is required")
	}
	if len(m.States) == 0 {
		return errors.New("states list is required and cannot be empty")
	}

	known := make(map[string]bool, len(m.States))
	for _, s := range m.States {
		if err := validateID(s); err != nil {
			return fmt.Errorf("state: %w", err)
		}
		if known[s] {
			return fmt.Errorf("duplicate state %q", s)
		}
		known[s] = true
	}
	if !known[m.Initial] {
		return fmt.Errorf("initial state %q not found in states", m.Initial)
	}

	terminal := make(map[string]bool, len(m.Terminal))
	for _, s := range m.Terminal {
		if !known[s] {
			return fmt.Errorf("terminal state %q not found in states", s)
		}
		terminal[s] = true
	}

	outgoing := make(map[string]int, len(m.States))
	seen := make(map[[2]string]bool)
	for i, t := range m.Transitions {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transition %d: %w", i, err)
		}
		if !known[t.Target] {
			return fmt.Errorf("invalid transition target %q (event %q, transition %d)", t.Target, t.Event, i)
		}
		for _, from := range t.From {
			if !known[from] {
				return fmt.Errorf("invalid transition source %q (event %q, transition %d)", from, t.Event, i)
			}
			if terminal[from] {
				return fmt.Errorf("terminal state %q cannot have outgoing transition %q", from, t.Event)
			}
			key := [2]string{t.Event, from}
			if seen[key] {
				return fmt.Errorf("event %q declared twice for state %q", t.Event, from)
			}
			seen[key] = true
			outgoing[from]++
		}
	}

	for _, s := range m.States {
		if !terminal[s] && outgoing[s] == 0 {
			return fmt.Errorf("state %q is neither terminal nor has outgoing transitions", s)
		}
	}

	visited := m.reachable()
	for _, s := range m.States {
		if !visited[s] {
			return fmt.Errorf("orphaned state %q (not reachable from initial %q)", s, m.Initial)
		}
	}

	return nil
}

// reachable marks states reachable from Initial via transitions.
func (m *MachineConfig) reachable() map[string]bool {
	visited := map[string]bool{m.Initial: true}
	queue := []string{m.Initial}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, t := range m.Outgoing(s) {
			if !visited[t.Target] {
				visited[t.Target] = true
				queue = append(queue, t.Target)
			}
		}
	}
	return visited
}

// IsTerminal reports whether state is listed as terminal.
func (m *MachineConfig) IsTerminal(state string) bool {
	for _, s := range m.Terminal {
		if s == state {
			return true
		}
	}
	return false
}

// HasState reports whether state is listed in States.
func (m *MachineConfig) HasState(state string) bool {
	for _, s := range m.States {
		if s == state {
			return true
		}
	}
	return false
}

// Outgoing returns the transitions leaving state, in declaration order.
func (m *MachineConfig) Outgoing(state string) []TransitionConfig {
	var out []TransitionConfig
	for _, t := range m.Transitions {
		for _, from := range t.From {
			if from == state {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// FindTransition returns the transition for event out of state, if any.
func (m *MachineConfig) FindTransition(state, event string) (TransitionConfig, bool) {
	for _, t := range m.Outgoing(state) {
		if t.Event == event {
			return t, true
		}
	}
	return TransitionConfig{}, false
}
