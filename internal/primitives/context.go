package primitives

import "sync"

// Context is the extended state of a running machine. Guards read it,
// callers write it. Safe for concurrent use.
type Context struct {
	data sync.Map
}

// NewContext creates a new Context with an empty map.
func NewContext() *Context {
	return &Context{}
}

// Get retrieves a value by key.
func (c *Context) Get(key string) (any, bool) {
	return c.data.Load(key)
}

func (c *Context) Set(key string, val any) {
	c.data.Store(key, val)
}

func (c *Context) Delete(key string) {
	c.data.Delete(key)
}

// Snapshot returns a serializable copy of the context data.
func (c *Context) Snapshot() map[string]any {
	snap := map[string]any{}
	c.data.Range(func(k, v any) bool {
		snap[k.(string)] = v
		return true
	})
	return snap
}

// Restore replaces the context data from a snapshot map.
func (c *Context) Restore(snap map[string]any) {
	c.data.Range(func(k, v any) bool {
		c.data.Delete(k)
		return true
	})
	for k, v := range snap {
		c.data.Store(k, v)
	}
}

// Merge stores every entry of vars, keeping keys that are not mentioned.
func (c *Context) Merge(vars map[string]any) {
	for k, v := range vars {
		c.data.Store(k, v)
	}
}
