package pedestrian_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbansim/pedflow/city"
	"github.com/urbansim/pedflow/pathing"
	"github.com/urbansim/pedflow/pedestrian"
)

// buildGrid constructs a Grid from a compact rune layout:
// 'R' residence, 'B' business, '+' blockage, '.' walkway.
func buildGrid(t *testing.T, layout []string) *city.Grid {
	t.Helper()
	cells := make([][]city.Cell, len(layout))
	for lat, row := range layout {
		cells[lat] = make([]city.Cell, len(row))
		for lon, ch := range row {
			var typ city.CellType
			switch ch {
			case 'R':
				typ = city.Residence
			case 'B':
				typ = city.Business
			case '+':
				typ = city.Blockage
			default:
				typ = city.Walkway
			}
			loc, err := city.NewGeoLocation(lat, lon)
			require.NoError(t, err)
			cells[lat][lon] = city.Cell{Location: loc, Type: typ}
		}
	}
	grid, err := city.NewGrid(cells)
	require.NoError(t, err)
	return grid
}

// newCache binds a fresh path cache to the grid's traversable view.
func newCache(grid *city.Grid) *pathing.Cache {
	return pathing.NewCache(grid.Traversable())
}

// TestGenerate_PathEndpointsAndBlockages verifies every path starts at its
// origin, ends at its destination, and never crosses a blockage.
func TestGenerate_PathEndpointsAndBlockages(t *testing.T) {
	grid, err := city.GenerateRandom(15, 15, city.DefaultTypeWeights(), rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	peds, err := pedestrian.Generate(10, grid, newCache(grid),
		pedestrian.WithRand(rand.New(rand.NewSource(12))))
	require.NoError(t, err)

	for _, p := range peds {
		require.NotEmpty(t, p.Path, "pedestrian %s has empty path", p.ID)
		assert.Equal(t, p.Origin, p.Path[0], "path must start at origin")
		assert.Equal(t, p.Destination, p.Path[len(p.Path)-1], "path must end at destination")
		for _, c := range p.Path {
			assert.False(t, c.IsBlocked(), "blockage cell %v on path", c.Location)
		}
	}
}

// TestGenerate_PoolPolicy verifies the permissive pools: walkways serve both
// roles, blockages serve neither, and strict mode narrows to R→B.
func TestGenerate_PoolPolicy(t *testing.T) {
	grid := buildGrid(t, []string{
		"R.B",
		"...",
		"R.B",
	})

	peds, err := pedestrian.Generate(4, grid, newCache(grid),
		pedestrian.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	for _, p := range peds {
		assert.True(t, p.Origin.IsResidence() || p.Origin.IsWalkway(),
			"origin %v type %s outside pool", p.Origin.Location, p.Origin.Type)
		assert.True(t, p.Destination.IsBusiness() || p.Destination.IsWalkway(),
			"destination %v type %s outside pool", p.Destination.Location, p.Destination.Type)
	}

	strict, err := pedestrian.Generate(2, grid, newCache(grid),
		pedestrian.WithStrictPools(),
		pedestrian.WithRand(rand.New(rand.NewSource(6))))
	require.NoError(t, err)
	for _, p := range strict {
		assert.True(t, p.Origin.IsResidence(), "strict origin must be residence")
		assert.True(t, p.Destination.IsBusiness(), "strict destination must be business")
	}
}

// TestGenerate_CapacityError surfaces the explicit sentinel, not a generic
// failure, when a pool cannot satisfy the request.
func TestGenerate_CapacityError(t *testing.T) {
	// 3 origin candidates (one residence, two walkways), five destinations.
	grid := buildGrid(t, []string{
		"R.B",
		".BB",
	})
	_, err := pedestrian.Generate(5, grid, newCache(grid),
		pedestrian.WithRand(rand.New(rand.NewSource(4))))
	assert.ErrorIs(t, err, pedestrian.ErrInsufficientCapacity)

	// Destination pool can run short independently.
	destPoor := buildGrid(t, []string{
		"RRR",
		"RBR",
	})
	_, err = pedestrian.Generate(2, destPoor, newCache(destPoor),
		pedestrian.WithStrictPools(),
		pedestrian.WithRand(rand.New(rand.NewSource(4))))
	assert.ErrorIs(t, err, pedestrian.ErrInsufficientCapacity)
}

// TestGenerate_DistinctEndpoints verifies sampling without replacement:
// no origin repeats across the population, nor any destination.
func TestGenerate_DistinctEndpoints(t *testing.T) {
	grid := buildGrid(t, []string{
		"RRRR",
		"....",
		"BBBB",
	})
	peds, err := pedestrian.Generate(6, grid, newCache(grid),
		pedestrian.WithRand(rand.New(rand.NewSource(21))))
	require.NoError(t, err)
	require.Len(t, peds, 6)

	origins := make(map[city.GeoLocation]bool)
	dests := make(map[city.GeoLocation]bool)
	for _, p := range peds {
		assert.False(t, origins[p.Origin.Location], "origin %v drawn twice", p.Origin.Location)
		assert.False(t, dests[p.Destination.Location], "destination %v drawn twice", p.Destination.Location)
		origins[p.Origin.Location] = true
		dests[p.Destination.Location] = true
	}
}

// TestGenerate_SkipsDisconnected drops pedestrians whose endpoints are
// isolated by blockages without raising an error.
func TestGenerate_SkipsDisconnected(t *testing.T) {
	// The residence is walled off from the business.
	grid := buildGrid(t, []string{
		"R+B",
	})
	peds, err := pedestrian.Generate(1, grid, newCache(grid),
		pedestrian.WithStrictPools(),
		pedestrian.WithRand(rand.New(rand.NewSource(2))))
	require.NoError(t, err, "disconnection must not surface as an error")
	assert.Empty(t, peds, "disconnected pedestrian must be dropped")
}

// TestGenerate_CountValidation covers n == 0 and n < 0.
func TestGenerate_CountValidation(t *testing.T) {
	grid := buildGrid(t, []string{"R.B"})
	peds, err := pedestrian.Generate(0, grid, newCache(grid))
	require.NoError(t, err)
	assert.Empty(t, peds)

	_, err = pedestrian.Generate(-1, grid, newCache(grid))
	assert.ErrorIs(t, err, pedestrian.ErrBadCount)
}

// TestGenerate_SharedCache verifies repeated commutes resolve through the
// cache rather than recomputation.
func TestGenerate_SharedCache(t *testing.T) {
	grid := buildGrid(t, []string{
		"R.B",
	})
	cache := newCache(grid)
	_, err := pedestrian.Generate(2, grid, cache,
		pedestrian.WithRand(rand.New(rand.NewSource(8))))
	require.NoError(t, err)

	before := cache.Computes()
	_, err = pedestrian.Generate(2, grid, cache,
		pedestrian.WithRand(rand.New(rand.NewSource(8))))
	require.NoError(t, err)
	assert.Equal(t, before, cache.Computes(),
		"identical draws on the same cache must not recompute")
}
