// Package pathing provides breadth-first search over a graph.Graph,
// unweighted shortest-path extraction, and a commute-keyed path cache.
//
// BFS explores vertices in increasing edge distance from a start vertex,
// with optional context cancellation and depth limiting. ShortestPath runs
// a target-directed search and reconstructs one shortest path; equally short
// alternatives are deliberately not enumerated (single-path policy).
//
// Cache amortizes repeated (origin, destination) lookups within one
// simulation repetition. It also remembers no-path outcomes, so a
// disconnected pair costs one search, not one per pedestrian. Caches are
// repetition-scoped and must not be shared across runs.
//
// Errors:
//
//   - ErrGraphNil: a nil graph pointer was passed.
//   - ErrStartVertexNotFound / ErrTargetVertexNotFound: endpoint absent.
//   - ErrNoPath: the endpoints are disconnected.
//   - ErrOptionViolation: an invalid Option was supplied.
package pathing
