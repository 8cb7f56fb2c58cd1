// File: methods.go
// Role: Vertex and edge lifecycle, queries, and cloning.
//
// Determinism:
//   - Vertices() and NeighborIDs() return IDs sorted lexicographically.
//   - Edges() returns edges sorted by Edge.ID.
//   - Edge IDs are monotonic textual counters ("e1", "e2", ...).
package graph

import (
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers.
const edgeIDPrefix = 'e'

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]string)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges.
// Returns ErrEmptyVertexID for an empty ID, ErrVertexNotFound if absent.
// Complexity: O(deg(id)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Drop every incident edge and its mirrored adjacency entry.
	for nbr, eid := range g.adjacency[id] {
		delete(g.edges, eid)
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// AddEdge connects from and to with an undirected edge carrying the blocked
// tag, creating missing endpoints on the fly. Duplicate connections are
// idempotent: the existing edge ID is returned and its tag left untouched.
// Returns ErrEmptyVertexID for empty IDs, ErrLoopNotAllowed when from == to.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, blocked bool) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if eid, ok := g.adjacency[from][to]; ok {
		return eid, nil // simple graph: keep the first edge
	}

	eid := g.newEdgeID()
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Blocked: blocked}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether an edge between from and to exists, in either
// orientation. Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// GetEdge returns the edge between from and to, or ErrEdgeNotFound.
// The returned *Edge is read-only by convention.
// Complexity: O(1).
func (g *Graph) GetEdge(from, to string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Edges returns all edges sorted by Edge.ID ascending. The slice holds
// copies, so callers may retain them freely.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically.
// Returns ErrVertexNotFound if the vertex is absent.
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	nbrs := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		nbrs = append(nbrs, nbr)
	}
	sort.Strings(nbrs)

	return nbrs, nil
}

// Clone returns a deep, independent copy of the graph: vertices, edges, and
// adjacency. The edge ID sequence is carried over so future AddEdge calls on
// the clone never collide with existing IDs.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.nextEdgeID = g.nextEdgeID
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
		clone.adjacency[id] = make(map[string]string, len(g.adjacency[id]))
	}
	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		clone.adjacency[e.From][e.To] = eid
		if e.From != e.To {
			clone.adjacency[e.To][e.From] = eid
		}
	}

	return clone
}

// newEdgeID reserves the next monotonic textual edge ID ("e1", "e2", ...).
// Caller must hold the write lock.
func (g *Graph) newEdgeID() string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
