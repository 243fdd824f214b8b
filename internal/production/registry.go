package production

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/comalice/drills/internal/core"
)

var _ core.Registry = (*MemoryRegistry)(nil)

var ErrNotFound = errors.New("machine not found")

// MemoryRegistry keeps the snapshot history of every machine in memory,
// oldest first, bounded to limit entries per machine (0 = unbounded).
type MemoryRegistry struct {
	mu      sync.RWMutex
	limit   int
	history map[string][]core.MachineSnapshot
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry(limit int) *MemoryRegistry {
	return &MemoryRegistry{
		limit:   limit,
		history: make(map[string][]core.MachineSnapshot),
	}
}

func (r *MemoryRegistry) Register(ctx context.Context, snapshot core.MachineSnapshot) error {
	if snapshot.MachineID == "" {
		return errors.New("snapshot without machine ID")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	h := append(r.history[snapshot.MachineID], snapshot)
	if r.limit > 0 && len(h) > r.limit {
		h = h[len(h)-r.limit:]
	}
	r.history[snapshot.MachineID] = h
	return nil
}

func (r *MemoryRegistry) Latest(ctx context.Context, machineID string) (core.MachineSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h := r.history[machineID]
	if len(h) == 0 {
		return core.MachineSnapshot{}, fmt.Errorf("%w: %q", ErrNotFound, machineID)
	}
	return h[len(h)-1], nil
}

func (r *MemoryRegistry) History(ctx context.Context, machineID string) ([]core.MachineSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.history[machineID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, machineID)
	}
	return append([]core.MachineSnapshot(nil), h...), nil
}

func (r *MemoryRegistry) ListMachines(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.history))
	for id := range r.history {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
