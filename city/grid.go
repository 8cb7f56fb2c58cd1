// File: grid.go
// Role: Grid construction, random generation, connectivity derivation, and
//       the traversable-view copy used for path analysis.
//
// Invariants:
//   - The cell matrix is rectangular and never mutates after construction.
//   - The connectivity graph holds exactly rows*cols vertices and
//     rows*(cols-1) + (rows-1)*cols edges.
//   - An edge is blocked iff either endpoint cell is a Blockage.
package city

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/urbansim/pedflow/graph"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("city: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("city: all grid rows must have the same length")
)

// Grid owns a rectangular matrix of typed cells and the connectivity graph
// derived from it. A Grid never mutates after construction; per-run path
// analysis works on disposable copies from Traversable.
type Grid struct {
	cells [][]Cell
	conn  *graph.Graph
	byID  map[string]Cell
}

// NewGrid builds a Grid from a non-empty rectangular cell matrix, deep-copying
// the input and deriving the connectivity graph.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
// Complexity: O(rows×cols).
func NewGrid(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to guarantee immutability against caller mutation.
	owned := make([][]Cell, len(cells))
	for r := range cells {
		owned[r] = make([]Cell, cols)
		copy(owned[r], cells[r])
	}

	g := &Grid{
		cells: owned,
		byID:  make(map[string]Cell, len(cells)*cols),
	}
	g.conn = g.deriveConnectivity()
	for _, row := range owned {
		for _, c := range row {
			g.byID[c.ID()] = c
		}
	}

	return g, nil
}

// GenerateRandom synthesizes a rows×cols city: each cell's category is drawn
// independently from the weight table. A nil rng uses the stable default
// stream; a nil or empty weights table is rejected via Validate.
// Returns ErrEmptyGrid for non-positive dimensions, ErrBadWeights for a
// malformed table. Complexity: O(rows×cols).
func GenerateRandom(rows, cols int, weights TypeWeights, rng *rand.Rand) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d", ErrEmptyGrid, rows, cols)
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	r := resolveRNG(rng)

	cells := make([][]Cell, rows)
	for lat := 0; lat < rows; lat++ {
		cells[lat] = make([]Cell, cols)
		for lon := 0; lon < cols; lon++ {
			loc, err := NewGeoLocation(lat, lon)
			if err != nil {
				return nil, err
			}
			cells[lat][lon] = Cell{Location: loc, Type: weights.pick(r)}
		}
	}

	return NewGrid(cells)
}

// deriveConnectivity builds the full grid graph: one vertex per cell, and for
// each cell an edge to its existing right and below neighbors (visiting only
// those two directions avoids double-adding the reverse pair). Edges are
// tagged blocked when either endpoint is a Blockage.
func (g *Grid) deriveConnectivity() *graph.Graph {
	cg := graph.NewGraph()
	rows, cols := len(g.cells), len(g.cells[0])

	for lat := 0; lat < rows; lat++ {
		for lon := 0; lon < cols; lon++ {
			_ = cg.AddVertex(g.cells[lat][lon].ID())
		}
	}
	for lat := 0; lat < rows; lat++ {
		for lon := 0; lon < cols; lon++ {
			cur := g.cells[lat][lon]
			if lon+1 < cols {
				right := g.cells[lat][lon+1]
				_, _ = cg.AddEdge(cur.ID(), right.ID(), cur.IsBlocked() || right.IsBlocked())
			}
			if lat+1 < rows {
				below := g.cells[lat+1][lon]
				_, _ = cg.AddEdge(cur.ID(), below.ID(), cur.IsBlocked() || below.IsBlocked())
			}
		}
	}

	return cg
}

// Rows returns the number of grid rows. Complexity: O(1).
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the number of grid columns. Complexity: O(1).
func (g *Grid) Cols() int { return len(g.cells[0]) }

// CellAt returns the cell at (lat, lon), reporting false when out of bounds.
// Complexity: O(1).
func (g *Grid) CellAt(lat, lon int) (Cell, bool) {
	if lat < 0 || lat >= len(g.cells) || lon < 0 || lon >= len(g.cells[0]) {
		return Cell{}, false
	}

	return g.cells[lat][lon], true
}

// CellByID resolves a graph vertex ID back to its cell.
// Complexity: O(1).
func (g *Grid) CellByID(id string) (Cell, bool) {
	c, ok := g.byID[id]

	return c, ok
}

// Cells returns a copy of the cell matrix; mutating the result never touches
// the grid. Complexity: O(rows×cols).
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, len(g.cells))
	for r := range g.cells {
		out[r] = make([]Cell, len(g.cells[r]))
		copy(out[r], g.cells[r])
	}

	return out
}

// Connectivity returns the full derived graph, including blockage vertices
// and blocked-tagged edges. Treat the result as read-only; use Traversable
// for a mutable per-run copy.
func (g *Grid) Connectivity() *graph.Graph { return g.conn }

// Traversable returns a fresh copy of the connectivity graph with every
// Blockage vertex (and its incident edges) removed. The copy is disposable
// and run-scoped; the source grid and graph are never mutated.
// Complexity: O(V + E).
func (g *Grid) Traversable() *graph.Graph {
	tv := g.conn.Clone()
	for _, row := range g.cells {
		for _, c := range row {
			if c.IsBlocked() {
				_ = tv.RemoveVertex(c.ID())
			}
		}
	}

	return tv
}

// CountByType tallies cells per category, for rendering and reporting.
// Complexity: O(rows×cols).
func (g *Grid) CountByType() map[CellType]int {
	counts := make(map[CellType]int, len(cellTypeNames))
	for _, row := range g.cells {
		for _, c := range row {
			counts[c.Type]++
		}
	}

	return counts
}
