// File: weights.go
// Role: Weighted categorical sampling of cell types during city generation.
//
// Determinism:
//   - Sampling consumes exactly one Float64 per draw from the supplied RNG.
//   - The table is ordered; the cumulative walk makes draw outcomes a pure
//     function of (table, r).
package city

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrBadWeights indicates a malformed weight table: empty, a negative
// weight, or a zero total.
var ErrBadWeights = errors.New("city: malformed cell-type weight table")

// defaultRNGSeed is the fixed seed used when callers pass a nil RNG.
// Arbitrary but stable, to keep default generation reproducible.
const defaultRNGSeed int64 = 1

// TypeWeight pairs a cell category with its sampling weight.
type TypeWeight struct {
	Type   CellType
	Weight float64
}

// TypeWeights is an ordered weight table for categorical sampling.
// Order matters: the cumulative walk visits entries front to back.
type TypeWeights []TypeWeight

// DefaultTypeWeights returns the stock city composition:
// walkway 30, residence 30, business 25, blockage 15.
func DefaultTypeWeights() TypeWeights {
	return TypeWeights{
		{Type: Walkway, Weight: 30},
		{Type: Residence, Weight: 30},
		{Type: Business, Weight: 25},
		{Type: Blockage, Weight: 15},
	}
}

// Validate checks the table for sampling soundness: at least one entry, no
// negative weights, positive total. Returns ErrBadWeights otherwise.
// Complexity: O(len(w)).
func (w TypeWeights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("%w: empty table", ErrBadWeights)
	}
	var total float64
	for _, tw := range w {
		if tw.Weight < 0 {
			return fmt.Errorf("%w: negative weight %g for %s", ErrBadWeights, tw.Weight, tw.Type)
		}
		total += tw.Weight
	}
	if total <= 0 {
		return fmt.Errorf("%w: total weight must be positive", ErrBadWeights)
	}

	return nil
}

// total sums all weights. Caller has validated the table.
func (w TypeWeights) total() float64 {
	var t float64
	for _, tw := range w {
		t += tw.Weight
	}

	return t
}

// pick draws one category: r uniform in [0, total), then a cumulative walk
// returning the first entry whose running total (inclusive) reaches r.
// Caller has validated the table, so the walk cannot fall through: the final
// running total equals the sampling bound. Complexity: O(len(w)).
func (w TypeWeights) pick(rng *rand.Rand) CellType {
	r := rng.Float64() * w.total()
	var upto float64
	for _, tw := range w {
		if upto+tw.Weight >= r {
			return tw.Type
		}
		upto += tw.Weight
	}
	// Unreachable after Validate: total(w) >= r by construction.
	panic("city: weight walk exhausted")
}

// resolveRNG returns rng, or a deterministic default stream when nil.
func resolveRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(defaultRNGSeed))
}
