package primitives

// Event is the immutable trigger of a transition.
//
// Event fields are exported for convenience in read-only contexts, but
// consumers must not modify them after construction.
type Event struct {
	Type string `json:"type" yaml:"type"`
	Data any    `json:"data,omitempty" yaml:"data,omitempty"`
}

// NewEvent creates and returns a new immutable Event.
func NewEvent(eventType string, data any) Event {
	return Event{
		Type: eventType,
		Data: data,
	}
}
