package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/urbansim/pedflow/city"
	"github.com/urbansim/pedflow/collision"
	"github.com/urbansim/pedflow/graph"
	"github.com/urbansim/pedflow/pathing"
	"github.com/urbansim/pedflow/pedestrian"
)

// Sentinel errors for driver configuration.
var (
	// ErrGridNil indicates a nil grid was passed to NewDriver.
	ErrGridNil = errors.New("sim: grid is nil")

	// ErrBadSimulations indicates a non-positive simulation count.
	ErrBadSimulations = errors.New("sim: simulations must be ≥ 1")

	// ErrBadPedestrianRange indicates min/max outside 1 ≤ min ≤ max.
	ErrBadPedestrianRange = errors.New("sim: pedestrian range must satisfy 1 ≤ min ≤ max")
)

// defaultRNGSeed is the fixed seed used when Config.Seed == 0.
const defaultRNGSeed int64 = 1

// Config holds the driver's sweep parameters.
type Config struct {
	// Simulations is the number of independent repetitions of the sweep.
	Simulations int

	// MinPedestrians and MaxPedestrians bound the inner sweep (inclusive).
	MinPedestrians int
	MaxPedestrians int

	// StrictPools restricts origins to residences and destinations to
	// businesses (the conservative sampling policy).
	StrictPools bool

	// Seed drives all sampling. Zero selects the stable default seed.
	Seed int64
}

// Record is one repetition's summary: the hot spot found for a given
// (simulation, pedestrian count) pair.
type Record struct {
	Simulation      int
	Pedestrians     int
	Top             city.Cell
	Collisions      int
	SamePositionMax int
}

// Summary collects all records plus the overall top location across the
// whole batch. Found is false when no repetition produced a record.
type Summary struct {
	Records    []Record
	Top        city.Cell
	Collisions int
	Found      bool
}

// Driver runs the simulation batch over one immutable grid.
type Driver struct {
	grid *city.Grid
	cfg  Config
	log  *zap.Logger
	rng  *rand.Rand
}

// NewDriver validates the configuration and binds a driver to the grid.
// A nil logger is replaced with zap.NewNop().
func NewDriver(grid *city.Grid, cfg Config, log *zap.Logger) (*Driver, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	if cfg.Simulations < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSimulations, cfg.Simulations)
	}
	if cfg.MinPedestrians < 1 || cfg.MaxPedestrians < cfg.MinPedestrians {
		return nil, fmt.Errorf("%w: got [%d, %d]", ErrBadPedestrianRange, cfg.MinPedestrians, cfg.MaxPedestrians)
	}
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return &Driver{
		grid: grid,
		cfg:  cfg,
		log:  log,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Run executes the full batch and returns its summary.
//
// For each simulation and each pedestrian count in [min, max]: sample a
// population (fresh path cache per repetition), aggregate collisions, and
// record the hot spot. A capacity shortfall or an empty aggregate ends the
// inner sweep early — larger counts cannot fare better — without failing the
// batch. The overall top is the record with the strictly highest collision
// count; earlier records win ties, keeping the outcome deterministic.
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	traversable := d.grid.Traversable()

	var summary Summary
	for simulation := 1; simulation <= d.cfg.Simulations; simulation++ {
		d.log.Info("running simulation", zap.Int("simulation", simulation))

		for count := d.cfg.MinPedestrians; count <= d.cfg.MaxPedestrians; count++ {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			default:
			}

			rec, ok, err := d.repetition(traversable, simulation, count)
			if err != nil {
				return summary, err
			}
			if !ok {
				break // infeasible count or nothing to aggregate: end sweep
			}

			summary.Records = append(summary.Records, rec)
			if !summary.Found || rec.Collisions > summary.Collisions {
				summary.Top = rec.Top
				summary.Collisions = rec.Collisions
				summary.Found = true
			}
		}
	}

	d.log.Info("batch complete",
		zap.Int("records", len(summary.Records)),
		zap.Bool("found", summary.Found),
	)

	return summary, nil
}

// repetition runs one (simulation, pedestrian count) pair with its own
// repetition-scoped path cache. The bool result reports whether a record was
// produced; capacity shortfalls and empty aggregates return (false, nil).
func (d *Driver) repetition(traversable *graph.Graph, simulation, count int) (Record, bool, error) {
	cache := pathing.NewCache(traversable)

	opts := []pedestrian.Option{pedestrian.WithRand(d.rng)}
	if d.cfg.StrictPools {
		opts = append(opts, pedestrian.WithStrictPools())
	}
	peds, err := pedestrian.Generate(count, d.grid, cache, opts...)
	if errors.Is(err, pedestrian.ErrInsufficientCapacity) {
		d.log.Warn("pedestrian count infeasible for this grid",
			zap.Int("simulation", simulation),
			zap.Int("pedestrians", count),
			zap.Error(err),
		)
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("sim: simulation %d, %d pedestrians: %w", simulation, count, err)
	}

	agg := collision.Aggregate(peds)
	top, stats, ok := collision.TopLocation(agg)
	if !ok {
		d.log.Debug("nothing to aggregate",
			zap.Int("simulation", simulation),
			zap.Int("pedestrians", count),
			zap.Int("sampled", len(peds)),
		)
		return Record{}, false, nil
	}

	hits, misses := cache.Stats()
	_, samePosMax := stats.MaxSamePosition()
	d.log.Debug("repetition complete",
		zap.Int("simulation", simulation),
		zap.Int("pedestrians", count),
		zap.String("top", top.Location.String()),
		zap.Int("collisions", stats.Total),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)

	return Record{
		Simulation:      simulation,
		Pedestrians:     count,
		Top:             top,
		Collisions:      stats.Total,
		SamePositionMax: samePosMax,
	}, true, nil
}
