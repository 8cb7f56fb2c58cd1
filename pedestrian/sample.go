// File: sample.go
// Role: Deterministic sampling-without-replacement over cell pools.
//
// Concurrency:
//   - math/rand.Rand is not goroutine-safe; callers hand each worker its own
//     stream.
package pedestrian

import (
	"math/rand"

	"github.com/urbansim/pedflow/city"
)

// defaultRNGSeed is the fixed seed used when callers omit WithRand.
// Arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// resolveRNG returns rng, or a deterministic default stream when nil.
func resolveRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(defaultRNGSeed))
}

// sampleCells draws n distinct cells from pool without replacement using a
// partial Fisher–Yates shuffle over a copy; the pool itself is untouched.
// Caller has verified n ≤ len(pool).
// Complexity: O(len(pool)) copy + O(n) draws.
func sampleCells(pool []city.Cell, n int, rng *rand.Rand) []city.Cell {
	scratch := make([]city.Cell, len(pool))
	copy(scratch, pool)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(scratch)-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}

	return scratch[:n:n]
}
