package texture

import "sync"

// Resolver resolves a texture path to a decoded texture.
type Resolver interface {
	Resolve(path string) *Texture
}

// Cache is a concurrency-safe texture cache keyed by file path, shared by
// batch workers so each texture is decoded once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	tex    *Texture
	loaded bool // true if a load was attempted (tex may still be nil)
}

// NewCache creates an empty texture cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*cacheEntry)}
}

// Resolve loads and caches the texture at path. Returns nil if the file is
// missing or cannot be decoded.
func (c *Cache) Resolve(path string) *Texture {
	if path == "" {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.tex
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	tex, _ := Load(path)

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.tex
	}
	c.items[path] = &cacheEntry{tex: tex, loaded: true}
	c.mu.Unlock()

	return tex
}
