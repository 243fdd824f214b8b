package drills

import "sync"

// Payload is thread-safe side data carried by an Entity (an identifier, the
// track being played...). It never influences transitions.
type Payload struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewPayload creates an empty payload.
func NewPayload() *Payload {
	return &Payload{
		data: make(map[string]any),
	}
}

// Get retrieves a value by key. Returns nil if the key does not exist.
func (p *Payload) Get(key string) any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data[key]
}

// String retrieves a string value, or "" when missing or not a string.
func (p *Payload) String(key string) string {
	s, _ := p.Get(key).(string)
	return s
}

func (p *Payload) Set(key string, value any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[key] = value
}

func (p *Payload) Delete(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.data, key)
}

// Snapshot returns a copy of all values.
func (p *Payload) Snapshot() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snapshot := make(map[string]any, len(p.data))
	for k, v := range p.data {
		snapshot[k] = v
	}
	return snapshot
}
