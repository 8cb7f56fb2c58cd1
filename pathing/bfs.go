// File: bfs.go
// Role: Breadth-first traversal and target-directed shortest-path search.
package pathing

import (
	"fmt"

	"github.com/urbansim/pedflow/graph"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *graph.Graph
	opts    Options
	target  string // empty for full traversal
	queue   []queueItem
	visited map[string]bool
	res     *Result
	found   bool
}

// BFS runs a full breadth-first traversal from startID, applying any number
// of functional Options. Returns ErrGraphNil or ErrStartVertexNotFound for
// invalid input, ErrOptionViolation for bad options, or the context error on
// cancellation. Complexity: O(V + E).
func BFS(g *graph.Graph, startID string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, startID, "", opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// ShortestPath finds one unweighted shortest path from → to and returns it
// as an ordered vertex ID sequence, endpoints inclusive. The search stops as
// soon as the target is dequeued; among equally short paths, the one chosen
// follows sorted neighbor order and is therefore deterministic.
// Returns ErrNoPath when the endpoints are disconnected.
// Complexity: O(V + E) worst case.
func ShortestPath(g *graph.Graph, from, to string, opts ...Option) ([]string, error) {
	w, err := newWalker(g, from, to, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(to) {
		return nil, ErrTargetVertexNotFound
	}
	if err = w.loop(); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, from, to)
	}

	return w.res.PathTo(to)
}

// newWalker validates inputs and prepares BFS state seeded at startID.
func newWalker(g *graph.Graph, startID, target string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		target:  target,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w, nil
}

// enqueue marks id visited at depth d, records its parent, and queues it.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, target hit, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		if w.target != "" && item.id == w.target {
			w.found = true
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
// Neighbor order is sorted (graph contract), keeping traversal deterministic.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("pathing: neighbors of %q: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
