// File: cache.go
// Role: Commute-keyed shortest-path cache, scoped to one simulation run.
package pathing

import (
	"errors"

	"github.com/urbansim/pedflow/graph"
)

// Commute identifies one intended trip: an (origin, destination) vertex pair.
// Comparable value type; equality and map keying work over both fields.
type Commute struct {
	Origin      string
	Destination string
}

// cacheEntry remembers one resolved commute. ok=false marks a commute whose
// endpoints turned out to be disconnected.
type cacheEntry struct {
	path []string
	ok   bool
}

// Cache memoizes shortest paths over a fixed traversable graph, keyed by
// Commute. No-path outcomes are cached too, so a disconnected pair is
// searched exactly once.
//
// A Cache is scoped to a single simulation repetition and is not safe for
// concurrent use; discard it when the repetition ends.
type Cache struct {
	g       *graph.Graph
	entries map[Commute]cacheEntry

	hits     int
	misses   int
	computes int
}

// NewCache creates a Cache bound to the given traversable graph.
func NewCache(g *graph.Graph) *Cache {
	return &Cache{
		g:       g,
		entries: make(map[Commute]cacheEntry),
	}
}

// ShortestPath returns the cached path for the commute, computing and
// storing it on first request. The returned slice is the cached value
// itself; callers must treat it as read-only.
// Returns ErrNoPath for disconnected endpoints (cached as well); other
// search errors pass through uncached.
func (c *Cache) ShortestPath(from, to string, opts ...Option) ([]string, error) {
	key := Commute{Origin: from, Destination: to}
	if entry, ok := c.entries[key]; ok {
		c.hits++
		if !entry.ok {
			return nil, ErrNoPath
		}
		return entry.path, nil
	}

	c.misses++
	c.computes++
	path, err := ShortestPath(c.g, from, to, opts...)
	switch {
	case err == nil:
		c.entries[key] = cacheEntry{path: path, ok: true}
		return path, nil
	case errors.Is(err, ErrNoPath):
		c.entries[key] = cacheEntry{ok: false}
		return nil, err
	default:
		return nil, err
	}
}

// Stats reports cache hits and misses since creation.
func (c *Cache) Stats() (hits, misses int) { return c.hits, c.misses }

// Computes reports how many times the underlying search actually ran,
// for call-count instrumentation in tests.
func (c *Cache) Computes() int { return c.computes }

// Len returns the number of cached commutes (positive and negative).
func (c *Cache) Len() int { return len(c.entries) }
