package primitives

import (
	"errors"
	"fmt"
)

// TransitionConfig describes one edge of the machine: Event moves any state
// in From to Target, provided Guard (an expression, empty = always) holds.
type TransitionConfig struct {
	Event  string   `json:"event" yaml:"event"`
	From   []string `json:"from" yaml:"from"`
	Target string   `json:"target" yaml:"target"`
	Guard  string   `json:"guard,omitempty" yaml:"guard,omitempty"`
}

// Validate checks TransitionConfig fields and id syntax.
func (t *TransitionConfig) Validate() error {
	if t.Event == "" {
		return errors.New("event is required")
	}
	if err := validateID(t.Event); err != nil {
		return fmt.Errorf("event: %w", err)
	}
	if len(t.From) == 0 {
		return fmt.Errorf("event %q: at least one source state is required", t.Event)
	}
	for _, from := range t.From {
		if err := validateID(from); err != nil {
			return fmt.Errorf("event %q source: %w", t.Event, err)
		}
	}
	if t.Target == "" {
		return fmt.Errorf("event %q: target is required", t.Event)
	}
	if err := validateID(t.Target); err != nil {
		return fmt.Errorf("event %q target: %w", t.Event, err)
	}
	return nil
}

// validateID accepts alphanumerics, underscores and hyphens.
func validateID(id string) error {
	if id == "" {
		return errors.New("empty id")
	}
	for i, r := range id {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return fmt.Errorf("invalid id %q: invalid character '%c' at index %d", id, r, i)
		}
	}
	return nil
}
