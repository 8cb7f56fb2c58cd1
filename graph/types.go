// Package graph declares the Graph and Edge types, sentinel errors,
// and the NewGraph constructor.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Edge is an undirected connection between two vertices.
//
// Each Edge has a unique textual ID, endpoints From/To (order carries no
// meaning), and a Blocked tag set when either endpoint cell is impassable.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// From and To are the endpoint vertex IDs.
	From, To string

	// Blocked marks the edge as crossing an impassable cell.
	Blocked bool
}

// Graph is an undirected graph with string vertex IDs and blocked-tagged
// edges. The zero value is not usable; construct with NewGraph.
//
// Simple graph semantics: no self-loops, no parallel edges. Adding a
// duplicate edge is a no-op returning the existing edge ID.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64

	vertices map[string]struct{}
	edges    map[string]*Edge

	// adjacency[u][v] = edge ID of the (single) edge between u and v.
	// Both directions are stored for every edge.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
