// Package primitives provides the data structures used to describe a state
// machine declaratively: events, transitions and machine definitions that
// can be loaded from YAML or JSON and validated before a runtime uses them.
//
// Core invariants:
//   - Events are immutable values.
//   - A valid MachineConfig is total: every non-terminal state has at least one
//     outgoing transition and terminal states have none.
//   - Context is safe for concurrent use.
package primitives
