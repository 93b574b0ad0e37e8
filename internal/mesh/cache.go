package mesh

import "sync"

// Resolver turns a primitive descriptor into tessellated geometry.
type Resolver interface {
	Resolve(p Primitive) *Mesh
}

// Cache is a concurrency-safe tessellation cache. Batch workers render
// frames in parallel and share one cache.
type Cache struct {
	mu     sync.RWMutex
	items  map[Primitive]*Mesh
	slices int
	stacks int
}

// NewCache creates a cache tessellating quadrics with the given detail.
func NewCache(slices, stacks int) *Cache {
	return &Cache{
		items:  make(map[Primitive]*Mesh),
		slices: slices,
		stacks: stacks,
	}
}

// Resolve returns the cached mesh for p, tessellating it on first use.
// Returned meshes are shared and must not be modified.
func (c *Cache) Resolve(p Primitive) *Mesh {
	// Fast path: read lock
	c.mu.RLock()
	if m, ok := c.items[p]; ok {
		c.mu.RUnlock()
		return m
	}
	c.mu.RUnlock()

	m := Tessellate(p, c.slices, c.stacks)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.items[p]; ok {
		return existing
	}
	c.items[p] = m
	return m
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
