// Package graph provides the undirected in-memory graph backing a city's
// connectivity model.
//
// What:
//
//   - Graph stores vertices keyed by string ID and undirected edges that carry
//     a Blocked tag, marking connections through impassable cells.
//   - Enumeration surfaces (Vertices, Edges, NeighborIDs) return sorted,
//     deterministic output so higher-level algorithms stay reproducible.
//   - Clone produces a deep, independent copy; RemoveVertex deletes a vertex
//     together with every incident edge.
//
// Why:
//
//   - City grids derive one vertex per cell and one edge per 4-adjacent pair;
//     path analysis then runs on a disposable copy with blocked vertices
//     stripped out, leaving the original untouched.
//
// Concurrency:
//
//   - All methods are safe for concurrent use; a single RWMutex guards the
//     vertex catalog, edge catalog, and adjacency index.
//
// Errors:
//
//   - ErrEmptyVertexID: an operation received an empty vertex ID.
//   - ErrVertexNotFound: an operation referenced a non-existent vertex.
//   - ErrEdgeNotFound: an operation referenced a non-existent edge.
package graph
