// Package sim orchestrates Monte Carlo foot-traffic runs over a generated
// city: an outer loop of independent simulations, each sweeping a pedestrian
// count range, feeding sampled populations into collision aggregation and
// collecting per-repetition hot-spot records.
//
// The grid never mutates after generation, so one traversable view is derived
// per driver run and shared read-only across repetitions; the shortest-path
// cache, whose keys are commute pairs, is created fresh for every repetition
// and discarded with it.
//
// A repetition that cannot be satisfied — the pedestrian count exceeds pool
// capacity, or no sampled pedestrian produced an interior cell — ends the
// inner sweep early and contributes no record; the driver reports "nothing to
// record" distinctly from an error.
package sim
