// Package details memoizes per-breed detail lookups so repeated card
// expansions never refetch from the breed API.
package details

import (
	"context"
	"sync"

	"github.com/pawhaven/pawhaven/internal/catalog"
)

// State tracks where a breed's detail fetch currently stands.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// Fetcher loads the expanded record for one breed id.
type Fetcher func(ctx context.Context, id int) (*catalog.BreedDetail, error)

// Cache memoizes detail fetches per breed id. Loaded and failed outcomes
// are both cached for the cache's lifetime; concurrent callers for the same
// id share a single in-flight fetch. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	fetch   Fetcher
	entries map[int]*entry
}

type entry struct {
	state  State
	detail *catalog.BreedDetail
	err    error
	done   chan struct{}
}

// NewCache builds a cache around the given fetcher.
func NewCache(fetch Fetcher) *Cache {
	return &Cache{fetch: fetch, entries: map[int]*entry{}}
}

// Get returns the cached detail for the id, fetching it on first use.
func (c *Cache) Get(ctx context.Context, id int) (*catalog.BreedDetail, error) {
	c.mu.Lock()
	if e, ok := c.entries[id]; ok {
		c.mu.Unlock()
		select {
		case <-e.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return e.detail, e.err
	}
	e := &entry{state: StateLoading, done: make(chan struct{})}
	c.entries[id] = e
	c.mu.Unlock()

	detail, err := c.fetch(ctx, id)
	c.mu.Lock()
	e.detail = detail
	e.err = err
	if err != nil {
		e.state = StateFailed
	} else {
		e.state = StateLoaded
	}
	c.mu.Unlock()
	close(e.done)
	return detail, err
}

// StateOf reports the fetch state for the id without triggering a fetch.
func (c *Cache) StateOf(id int) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok {
		return e.state
	}
	return StateIdle
}

// Forget evicts the id so the next Get retries, e.g. after a failure the
// caller wants to recover from.
func (c *Cache) Forget(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[id]; ok && e.state != StateLoading {
		delete(c.entries, id)
	}
}
