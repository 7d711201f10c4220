package calculation

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rpgo/mcplanner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatePadsShorterPaths(t *testing.T) {
	paths := []domain.Path{
		{1, 2, 3},
		{10, 20, 30, 40, 50},
	}
	result := Aggregate(paths)

	require.Equal(t, 5, result.Years())
	assert.Len(t, result.P5, 5)
	assert.Len(t, result.P95, 5)
	assert.Equal(t, domain.Path{1, 2, 3, 3, 3}, result.Paths[0], "short path is forward-filled")
	assert.Equal(t, domain.Path{10, 20, 30, 40, 50}, result.Paths[1], "long path is untouched")
	assert.Equal(t, 21.5, result.Mean[3])
	assert.Equal(t, 26.5, result.Mean[4])
	assert.Equal(t, 3.0, result.P5[4])
	assert.Equal(t, 50.0, result.P95[4])
}

func TestAggregateSinglePath(t *testing.T) {
	result := Aggregate([]domain.Path{{5, -6, 7}})
	for year := 0; year < 3; year++ {
		assert.Equal(t, result.Mean[year], result.P5[year])
		assert.Equal(t, result.Mean[year], result.P95[year])
	}
	assert.Equal(t, domain.Series{5, -6, 7}, result.Mean)
}

func TestAggregateTwoPaths(t *testing.T) {
	result := Aggregate([]domain.Path{{1, 4}, {3, 2}})
	assert.Equal(t, domain.Series{1, 2}, result.P5)
	assert.Equal(t, domain.Series{3, 4}, result.P95)
	assert.Equal(t, domain.Series{2, 3}, result.Mean)

	equal := Aggregate([]domain.Path{{7}, {7}})
	assert.Equal(t, 7.0, equal.P5[0])
	assert.Equal(t, 7.0, equal.P95[0])
}

func TestAggregateNearestRank(t *testing.T) {
	paths := make([]domain.Path, 101)
	for i := range paths {
		// reverse order so sorting matters
		paths[i] = domain.Path{float64(100 - i)}
	}
	result := Aggregate(paths)
	assert.Equal(t, 5.0, result.P5[0])
	assert.Equal(t, 95.0, result.P95[0])
	assert.Equal(t, 50.0, result.Mean[0])

	ten := make([]domain.Path, 10)
	for i := range ten {
		ten[i] = domain.Path{float64(i)}
	}
	result = Aggregate(ten)
	assert.Equal(t, 0.0, result.P5[0], "floor(0.05*9) = 0")
	assert.Equal(t, 9.0, result.P95[0], "ceil(0.95*9) = 9")
}

func TestAggregateCountsDegeneratePaths(t *testing.T) {
	result := Aggregate([]domain.Path{
		{1, math.Inf(-1)},
		{1, 2},
		{math.NaN(), 3},
	})
	assert.Equal(t, 2, result.DegeneratePaths)
	assert.True(t, math.IsInf(result.Mean[1], -1))
}

func TestAggregateEmpty(t *testing.T) {
	result := Aggregate(nil)
	assert.Equal(t, 0, result.Years())
	assert.Equal(t, 0, result.NumSimulations)
}

func TestMonteCarloRunReproducible(t *testing.T) {
	sim, err := NewRetirementSimulator(baseRetirementParams())
	require.NoError(t, err)
	agg := NewMonteCarloAggregator(nil)

	cfg := RunConfig{NumSimulations: 200, Seed: 42}
	first, err := agg.Run(context.Background(), sim, cfg)
	require.NoError(t, err)
	second, err := agg.Run(context.Background(), sim, cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Mean, second.Mean)
	assert.Equal(t, first.P5, second.P5)
	assert.Equal(t, first.P95, second.P95)
	assert.Equal(t, uint32(42), first.Seed)
	assert.Len(t, first.Paths, 200)

	other, err := agg.Run(context.Background(), sim, RunConfig{NumSimulations: 200, Seed: 43})
	require.NoError(t, err)
	assert.NotEqual(t, first.Mean, other.Mean)
}

func TestMonteCarloRunParallelMatchesSequential(t *testing.T) {
	sim, err := NewHomePurchaseSimulator(baseHomeParams())
	require.NoError(t, err)
	agg := NewMonteCarloAggregator(nil)

	sequential, err := agg.Run(context.Background(), sim, RunConfig{NumSimulations: 300, Seed: 7, Workers: 1})
	require.NoError(t, err)
	parallel, err := agg.Run(context.Background(), sim, RunConfig{NumSimulations: 300, Seed: 7, Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, sequential.Paths, parallel.Paths)
	assert.Equal(t, sequential.Mean, parallel.Mean)
	assert.Equal(t, sequential.P5, parallel.P5)
	assert.Equal(t, sequential.P95, parallel.P95)
}

func TestMonteCarloRunBandsOrdered(t *testing.T) {
	sim, err := NewRetirementSimulator(baseRetirementParams())
	require.NoError(t, err)
	result, err := NewMonteCarloAggregator(nil).Run(context.Background(), sim, RunConfig{NumSimulations: 500, Seed: 9, Workers: 4})
	require.NoError(t, err)

	for year := range result.Mean {
		assert.LessOrEqual(t, result.P5[year], result.P95[year], "year %d", year)
	}
}

func TestMonteCarloRunTimeSeed(t *testing.T) {
	orig := seedFunc
	defer SetSeedFunc(orig)
	SetSeedFunc(func() uint32 { return 1234 })

	sim := PathFunc(func(seed uint32) domain.Path { return domain.Path{float64(seed)} })
	result, err := NewMonteCarloAggregator(nil).Run(context.Background(), sim, RunConfig{NumSimulations: 3})
	require.NoError(t, err)
	assert.Equal(t, uint32(1234), result.Seed)
	assert.Equal(t, float64(DeriveSeed(1234, 0)), result.Paths[0][0])
}

func TestMonteCarloRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := PathFunc(func(uint32) domain.Path { return domain.Path{1} })
	for _, workers := range []int{1, 4} {
		_, err := NewMonteCarloAggregator(nil).Run(ctx, sim, RunConfig{NumSimulations: 10, Seed: 1, Workers: workers})
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled), "workers=%d", workers)
	}
}

func TestMonteCarloRunRejectsZeroPaths(t *testing.T) {
	sim := PathFunc(func(uint32) domain.Path { return nil })
	_, err := NewMonteCarloAggregator(nil).Run(context.Background(), sim, RunConfig{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
