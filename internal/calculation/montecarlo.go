package calculation

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rpgo/mcplanner/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("github.com/rpgo/mcplanner/internal/calculation")

// RunConfig holds configuration for one Monte Carlo run
type RunConfig struct {
	NumSimulations int
	Seed           uint32 // 0 picks a time-derived seed
	Workers        int    // <= 1 runs every path on the calling goroutine
}

// MonteCarloAggregator runs independent paths and reduces them to per-year
// mean and percentile bands
type MonteCarloAggregator struct {
	Logger Logger
}

// NewMonteCarloAggregator creates an aggregator; a nil logger discards output
func NewMonteCarloAggregator(logger Logger) *MonteCarloAggregator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &MonteCarloAggregator{Logger: logger}
}

// Run simulates cfg.NumSimulations paths. Path i is always seeded with
// DeriveSeed(seed, i), so the result does not depend on Workers.
func (a *MonteCarloAggregator) Run(ctx context.Context, sim PathSimulator, cfg RunConfig) (*domain.AggregateResult, error) {
	if cfg.NumSimulations < 1 {
		return nil, invalid("num_simulations", "must be at least 1, got %d", cfg.NumSimulations)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = seedFunc()
	}

	ctx, span := tracer.Start(ctx, "montecarlo.run")
	defer span.End()
	span.SetAttributes(
		attribute.Int("montecarlo.num_simulations", cfg.NumSimulations),
		attribute.Int("montecarlo.workers", cfg.Workers),
		attribute.Int64("montecarlo.seed", int64(seed)),
	)

	paths := make([]domain.Path, cfg.NumSimulations)
	if err := a.generate(ctx, sim, seed, cfg.Workers, paths); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("monte carlo run aborted: %w", err)
	}

	result := Aggregate(paths)
	result.Seed = seed
	span.SetAttributes(
		attribute.Int("montecarlo.years", result.Years()),
		attribute.Int("montecarlo.degenerate_paths", result.DegeneratePaths),
	)
	a.Logger.Debugf("aggregated %d paths over %d years (seed %d)", len(paths), result.Years(), seed)
	return result, nil
}

func (a *MonteCarloAggregator) generate(ctx context.Context, sim PathSimulator, seed uint32, workers int, paths []domain.Path) error {
	if workers <= 1 {
		for i := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			paths[i] = sim.SimulatePath(DeriveSeed(seed, i))
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			paths[i] = sim.SimulatePath(DeriveSeed(seed, i))
			return nil
		})
	}
	return g.Wait()
}

// Aggregate pads paths to a common length by repeating each path's last
// value, then computes the per-year mean, 5th and 95th percentiles.
// Paths are padded in place. An empty path pads with zero.
func Aggregate(paths []domain.Path) *domain.AggregateResult {
	n := len(paths)
	result := &domain.AggregateResult{Paths: paths, NumSimulations: n}
	if n == 0 {
		return result
	}

	maxLen := 0
	for _, p := range paths {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}
	for i, p := range paths {
		if p.IsDegenerate() {
			result.DegeneratePaths++
		}
		if len(p) < maxLen {
			last := p.Last()
			for len(p) < maxLen {
				p = append(p, last)
			}
			paths[i] = p
		}
	}

	result.Mean = make(domain.Series, maxLen)
	result.P5 = make(domain.Series, maxLen)
	result.P95 = make(domain.Series, maxLen)

	idx5 := int(math.Floor(0.05 * float64(n-1)))
	idx95 := int(math.Ceil(0.95 * float64(n-1)))
	if idx95 > n-1 {
		idx95 = n - 1
	}

	values := make([]float64, n)
	for year := 0; year < maxLen; year++ {
		for i, p := range paths {
			values[i] = p[year]
		}
		sort.Float64s(values)
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		result.Mean[year] = sum / float64(n)
		result.P5[year] = values[idx5]
		result.P95[year] = values[idx95]
	}

	return result
}
