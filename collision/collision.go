// Package collision aggregates positional foot-traffic statistics across
// pedestrian paths and ranks hot-spot cells.
//
// A collision is a non-endpoint cell appearing in more than one pedestrian's
// path, optionally at the same interior position index across paths ("same
// place, same step"). Origins and destinations never count.
//
// Ranking is deterministic: the hot spot is the cell with the highest total
// occurrence count, ties broken by lowest coordinate lexicographically
// (latitude first, then longitude).
package collision

import (
	"github.com/urbansim/pedflow/city"
	"github.com/urbansim/pedflow/pedestrian"
)

// Stats accumulates occurrences of one cell across pedestrian paths.
type Stats struct {
	// Total counts paths containing the cell at an interior position.
	Total int

	// ByPosition counts occurrences per 1-based interior position index.
	ByPosition map[int]int
}

// Aggregate walks every pedestrian's path and tallies interior cells only:
// index 0 (origin) and the final index (destination) are excluded. Interior
// positions are counted 1-based among interior cells.
// Complexity: O(total path length).
func Aggregate(peds []pedestrian.Pedestrian) map[city.Cell]*Stats {
	agg := make(map[city.Cell]*Stats)
	for _, p := range peds {
		if len(p.Path) < 3 {
			continue // no interior cells
		}
		interior := p.Path[1 : len(p.Path)-1]
		for i, c := range interior {
			position := i + 1
			s, ok := agg[c]
			if !ok {
				s = &Stats{ByPosition: make(map[int]int)}
				agg[c] = s
			}
			s.Total++
			s.ByPosition[position]++
		}
	}

	return agg
}

// TopLocation returns the hot-spot cell: highest Total, ties broken by
// lexicographically lowest location. Reports false for an empty aggregate.
// Complexity: O(len(agg)).
func TopLocation(agg map[city.Cell]*Stats) (city.Cell, *Stats, bool) {
	var (
		top      city.Cell
		topStats *Stats
	)
	for c, s := range agg {
		if topStats == nil ||
			s.Total > topStats.Total ||
			(s.Total == topStats.Total && c.Location.Less(top.Location)) {
			top, topStats = c, s
		}
	}
	if topStats == nil {
		return city.Cell{}, nil, false
	}

	return top, topStats, true
}

// MaxSamePosition returns the most frequent same-position collision for the
// cell: the interior position with the highest count, ties broken by lowest
// position. Returns (0, 0) when no positions were recorded.
func (s *Stats) MaxSamePosition() (position, count int) {
	for p, n := range s.ByPosition {
		if n > count || (n == count && (position == 0 || p < position)) {
			position, count = p, n
		}
	}

	return position, count
}
