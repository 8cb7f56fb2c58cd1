// Package city models a randomly generated city as a rectangular grid of
// typed cells and the connectivity graph derived from it.
//
// What:
//
//   - GeoLocation is an immutable non-negative integer coordinate pair.
//   - Cell combines a GeoLocation with one of four CellTypes: Residence,
//     Business, Blockage, or Walkway.
//   - TypeWeights drives weighted categorical sampling during generation.
//   - Grid owns the cell matrix plus a graph with one vertex per cell and an
//     edge per 4-adjacent pair, tagged blocked when either endpoint is a
//     Blockage.
//   - Traversable derives a disposable copy of that graph with every Blockage
//     vertex removed, ready for unweighted shortest-path analysis.
//
// Why:
//
//   - Foot-traffic simulations sample pedestrian trips on the grid and need a
//     navigable view that excludes impassable cells without ever mutating the
//     generated city.
//
// Determinism:
//
//   - Generation consumes an explicit *rand.Rand; a fixed seed reproduces the
//     identical city. A nil RNG falls back to a stable default stream.
//
// Errors:
//
//   - ErrNegativeCoordinate: GeoLocation constructed with a coordinate < 0.
//   - ErrEmptyGrid: a grid with no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadWeights: an empty weight table, a negative weight, or zero total.
package city
