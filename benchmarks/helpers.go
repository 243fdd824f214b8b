// Package benchmarks measures the transition runtime and its persistence
// layer.
package benchmarks

import (
	"fmt"
	"time"

	"github.com/comalice/drills/internal/core"
	"github.com/comalice/drills/internal/primitives"
)

// GenRing creates a machine with n states cycling on "tick" and no terminal.
func GenRing(n int) primitives.MachineConfig {
	if n < 1 {
		n = 1
	}
	b := primitives.NewMachineBuilder(fmt.Sprintf("ring_%d", n), "s0")
	for i := 0; i < n; i++ {
		b.State(fmt.Sprintf("s%d", i)).On("tick", fmt.Sprintf("s%d", (i+1)%n))
	}
	return b.MustBuild()
}

// GenLinear creates an n-state linear lifecycle ending in a terminal state.
func GenLinear(n int) primitives.MachineConfig {
	if n < 2 {
		n = 2
	}
	states := make([]string, n)
	for i := range states {
		states[i] = fmt.Sprintf("s%d", i)
	}
	return primitives.Linear(fmt.Sprintf("linear_%d", n), "tick", states...)
}

// GenSnapshot returns a snapshot of a ring machine with ctxKeys context
// entries.
func GenSnapshot(id string, ctxKeys int) core.MachineSnapshot {
	cfg := GenRing(8)
	data := make(map[string]any, ctxKeys)
	for i := 0; i < ctxKeys; i++ {
		data[fmt.Sprintf("key%d", i)] = fmt.Sprintf("value%d", i)
	}
	return core.MachineSnapshot{
		MachineID:   id,
		Version:     primitives.ComputeVersion(&cfg),
		Config:      cfg,
		Current:     "s3",
		ContextData: data,
		Timestamp:   time.Unix(1700000000, 0).UTC(),
	}
}
