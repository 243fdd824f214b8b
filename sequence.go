// Package drills holds the state-transition pattern shared by the exercise
// packages: a closed, ordered set of states and a total successor function
// whose last state is absorbing.
package drills

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySequence  = errors.New("sequence needs at least one state")
	ErrDuplicateState = errors.New("duplicate state in sequence")
)

// Sequence is an immutable linear transition table.
//
// Next is total: the last state maps to itself and so does any value that
// is not part of the sequence.
type Sequence[S comparable] struct {
	order []S
	next  map[S]S
	index map[S]int
}

// NewSequence builds a Sequence from states in transition order.
func NewSequence[S comparable](states ...S) (*Sequence[S], error) {
	if len(states) == 0 {
		return nil, ErrEmptySequence
	}

	q := &Sequence[S]{
		order: append([]S(nil), states...),
		next:  make(map[S]S, len(states)),
		index: make(map[S]int, len(states)),
	}
	for i, s := range states {
		if _, exists := q.index[s]; exists {
			return nil, fmt.Errorf("%w: %v at position %d", ErrDuplicateState, s, i)
		}
		q.index[s] = i
	}

	// Build LUT; the terminal points at itself.
	last := len(states) - 1
	for i, s := range states {
		if i == last {
			q.next[s] = s
			continue
		}
		q.next[s] = states[i+1]
	}

	return q, nil
}

// MustSequence is NewSequence for package-level tables. It panics on error.
func MustSequence[S comparable](states ...S) *Sequence[S] {
	q, err := NewSequence(states...)
	if err != nil {
		panic(err)
	}
	return q
}

// Initial returns the first state.
func (q *Sequence[S]) Initial() S {
	return q.order[0]
}

// Terminal returns the absorbing last state.
func (q *Sequence[S]) Terminal() S {
	return q.order[len(q.order)-1]
}

// States returns a copy of the states in order.
func (q *Sequence[S]) States() []S {
	return append([]S(nil), q.order...)
}

func (q *Sequence[S]) Len() int {
	return len(q.order)
}

func (q *Sequence[S]) Contains(s S) bool {
	_, ok := q.index[s]
	return ok
}

// IsTerminal reports whether Next(s) == s.
func (q *Sequence[S]) IsTerminal(s S) bool {
	return q.Next(s) == s
}

// Next returns the successor of s.
func (q *Sequence[S]) Next(s S) S {
	if n, ok := q.next[s]; ok {
		return n
	}
	return s
}

// Walk returns every state from `from` up to and including the terminal.
// Unknown states yield a single-element slice.
func (q *Sequence[S]) Walk(from S) []S {
	i, ok := q.index[from]
	if !ok {
		return []S{from}
	}
	return append([]S(nil), q.order[i:]...)
}
