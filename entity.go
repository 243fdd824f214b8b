package drills

// Entity is a record with exactly one state drawn from a Sequence plus an
// optional payload. The state only changes through Advance.
type Entity[S comparable] struct {
	seq     *Sequence[S]
	state   S
	payload *Payload
}

// NewEntity creates an Entity in the sequence's initial state.
func NewEntity[S comparable](seq *Sequence[S]) *Entity[S] {
	return &Entity[S]{
		seq:     seq,
		state:   seq.Initial(),
		payload: NewPayload(),
	}
}

func (e *Entity[S]) State() S {
	return e.state
}

// Advance moves to the successor state and returns it.
// Terminal states are left untouched.
func (e *Entity[S]) Advance() S {
	e.state = e.seq.Next(e.state)
	return e.state
}

// Done reports whether the entity sits in its terminal state.
func (e *Entity[S]) Done() bool {
	return e.seq.IsTerminal(e.state)
}

// Payload returns the entity's side data. It is never nil.
func (e *Entity[S]) Payload() *Payload {
	return e.payload
}
