package pedestrian

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/urbansim/pedflow/city"
	"github.com/urbansim/pedflow/pathing"
)

// Sentinel errors for population sampling.
var (
	// ErrInsufficientCapacity indicates an origin or destination pool has
	// fewer distinct cells than the requested pedestrian count.
	ErrInsufficientCapacity = errors.New("pedestrian: insufficient capacity for requested pedestrian count")

	// ErrBadCount indicates a negative pedestrian count.
	ErrBadCount = errors.New("pedestrian: count cannot be negative")
)

// Pedestrian is one sampled trip: an identity, its endpoints, and the single
// shortest path between them (endpoints inclusive). Created per simulation
// repetition and discarded at run end.
type Pedestrian struct {
	// ID is a unique identity for reporting.
	ID string

	// Origin and Destination are the sampled trip endpoints.
	Origin      city.Cell
	Destination city.Cell

	// Path is the ordered cell sequence from Origin to Destination.
	Path []city.Cell
}

// Commute returns the cache key identifying this pedestrian's trip.
func (p Pedestrian) Commute() pathing.Commute {
	return pathing.Commute{Origin: p.Origin.ID(), Destination: p.Destination.ID()}
}

// Option configures population sampling.
type Option func(*options)

type options struct {
	strictPools bool
	rng         *rand.Rand
}

// WithStrictPools restricts origins to Residence cells and destinations to
// Business cells, excluding Walkways from both pools.
func WithStrictPools() Option {
	return func(o *options) { o.strictPools = true }
}

// WithRand supplies the RNG driving sampling. A nil value is ignored; without
// this option a stable default stream is used.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// Generate samples n pedestrians on the grid and resolves their shortest
// paths through cache (bound to the run's traversable graph).
//
// Returns ErrBadCount for n < 0 and ErrInsufficientCapacity when either pool
// holds fewer than n distinct cells. Pedestrians whose endpoints are
// disconnected are dropped silently, so the result may hold fewer than n
// entries. Complexity: O(rows×cols + n×(V+E)) worst case.
func Generate(n int, grid *city.Grid, cache *pathing.Cache, opts ...Option) ([]Pedestrian, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if n == 0 {
		return nil, nil
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	rng := resolveRNG(o.rng)

	origins, destinations := pools(grid, o.strictPools)
	if len(origins) < n {
		return nil, fmt.Errorf("%w: %d origins available, %d requested", ErrInsufficientCapacity, len(origins), n)
	}
	if len(destinations) < n {
		return nil, fmt.Errorf("%w: %d destinations available, %d requested", ErrInsufficientCapacity, len(destinations), n)
	}

	sampledOrigins := sampleCells(origins, n, rng)
	sampledDests := sampleCells(destinations, n, rng)

	peds := make([]Pedestrian, 0, n)
	for i := 0; i < n; i++ {
		origin, dest := sampledOrigins[i], sampledDests[i]
		ids, err := cache.ShortestPath(origin.ID(), dest.ID())
		if errors.Is(err, pathing.ErrNoPath) {
			continue // isolated by blockages: best-effort skip
		}
		if err != nil {
			return nil, fmt.Errorf("pedestrian: path %s → %s: %w", origin.ID(), dest.ID(), err)
		}
		path, err := resolvePath(grid, ids)
		if err != nil {
			return nil, err
		}
		peds = append(peds, Pedestrian{
			ID:          uuid.NewString(),
			Origin:      origin,
			Destination: dest,
			Path:        path,
		})
	}

	return peds, nil
}

// pools partitions grid cells into candidate origin and destination pools,
// scanning in row-major order for deterministic pool layout.
func pools(grid *city.Grid, strict bool) (origins, destinations []city.Cell) {
	for _, row := range grid.Cells() {
		for _, c := range row {
			if c.IsResidence() || (!strict && c.IsWalkway()) {
				origins = append(origins, c)
			}
			if c.IsBusiness() || (!strict && c.IsWalkway()) {
				destinations = append(destinations, c)
			}
		}
	}

	return origins, destinations
}

// resolvePath maps graph vertex IDs back to grid cells.
func resolvePath(grid *city.Grid, ids []string) ([]city.Cell, error) {
	path := make([]city.Cell, len(ids))
	for i, id := range ids {
		c, ok := grid.CellByID(id)
		if !ok {
			return nil, fmt.Errorf("pedestrian: path vertex %q not on grid", id)
		}
		path[i] = c
	}

	return path, nil
}
