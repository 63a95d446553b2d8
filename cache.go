package gdrive

import (
	"strings"
	"sync"
)

// resolutionCache memoizes path resolutions for the lifetime of an adapter
// instance. Keys are normalized paths; a nil Object records definite absence,
// so a cache hit can answer "does not exist" without a remote round-trip.
//
// The adapter may be used from multiple goroutines, so the map is guarded by
// a mutex. Racing resolutions of the same path at worst perform redundant
// remote lookups.
type resolutionCache struct {
	mu      sync.Mutex
	entries map[string]*Object
}

func newResolutionCache() *resolutionCache {
	return &resolutionCache{entries: map[string]*Object{}}
}

// get returns the cached object for path. ok reports whether the path has
// been resolved before; obj is nil for a cached absence.
func (c *resolutionCache) get(path string) (obj *Object, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	obj, ok = c.entries[path]
	return obj, ok
}

// put records a resolution. A nil obj records absence.
func (c *resolutionCache) put(path string, obj *Object) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = obj
}

// invalidate drops the entry for path and for every path under it. Mutating
// operations call this before returning so later resolutions observe their
// own writes instead of stale entries.
func (c *resolutionCache) invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if path == "" {
		clear(c.entries)
		return
	}
	prefix := path + "/"
	delete(c.entries, path)
	for p := range c.entries {
		if strings.HasPrefix(p, prefix) {
			delete(c.entries, p)
		}
	}
}
