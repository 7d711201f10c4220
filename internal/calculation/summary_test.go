package calculation

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/rpgo/mcplanner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuidanceTiers(t *testing.T) {
	tests := []struct {
		rate int64
		want domain.GuidanceTier
	}{
		{100, domain.TierSolid},
		{95, domain.TierSolid},
		{94, domain.TierGoodTrack},
		{80, domain.TierGoodTrack},
		{79, domain.TierSomeRisk},
		{60, domain.TierSomeRisk},
		{59, domain.TierSignificantChallenges},
		{0, domain.TierSignificantChallenges},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GuidanceFor(decimal.NewFromInt(tt.rate)), "rate %d", tt.rate)
	}
}

func TestDeriveSummaryHeadlines(t *testing.T) {
	result := Aggregate([]domain.Path{
		{100, 200, 50},
		{300, 400, -10},
		{500, 600, 20},
		{700, 800, 0},
	})
	s := DeriveSummary(result, 2, 3)

	assert.Equal(t, "500.00", s.ValueAtMilestone.String())
	assert.Equal(t, "15.00", s.ValueAtHorizonEnd.String())
	assert.Equal(t, 2, s.SuccessfulPaths, "zero is not a success")
	assert.True(t, s.SuccessRate.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, domain.TierSignificantChallenges, s.Guidance)
}

func TestDeriveSummaryClampsIndices(t *testing.T) {
	result := Aggregate([]domain.Path{{10, 20, 30}})

	s := DeriveSummary(result, 7, 9)
	assert.Equal(t, "30.00", s.ValueAtMilestone.String())
	assert.Equal(t, "30.00", s.ValueAtHorizonEnd.String())

	s = DeriveSummary(result, 0, 3)
	assert.Equal(t, "10.00", s.ValueAtMilestone.String(), "milestone before the first year reads year one")
	assert.True(t, s.SuccessRate.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, domain.TierSolid, s.Guidance)
}

func TestDeriveSummaryRoundsPercentage(t *testing.T) {
	paths := []domain.Path{{1}, {1}, {-1}}
	s := DeriveSummary(Aggregate(paths), 1, 1)
	assert.True(t, s.SuccessRate.Equal(decimal.NewFromInt(67)), "got %s", s.SuccessRate)
}

func TestDeriveSummaryEmpty(t *testing.T) {
	s := DeriveSummary(Aggregate(nil), 1, 1)
	assert.True(t, s.SuccessRate.IsZero())
	assert.Equal(t, domain.Amount(0), s.ValueAtHorizonEnd)
	assert.False(t, s.Degenerate())
	assert.Equal(t, domain.TierSignificantChallenges, s.Guidance)
}

func TestDeriveSummaryKeepsNonFiniteMean(t *testing.T) {
	result := Aggregate([]domain.Path{{1, math.Inf(-1)}, {1, -5}})
	require.True(t, math.IsInf(result.Mean[1], -1))

	s := DeriveSummary(result, 1, 2)
	assert.Equal(t, "1.00", s.ValueAtMilestone.String())
	assert.True(t, math.IsInf(float64(s.ValueAtHorizonEnd), -1))
	assert.True(t, s.Degenerate())
	assert.Equal(t, "-inf", s.ValueAtHorizonEnd.Format())
	assert.Equal(t, 0, s.SuccessfulPaths)
	assert.Equal(t, domain.TierSignificantChallenges, s.Guidance)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"value_at_horizon_end":null`)
	assert.Contains(t, string(data), `"value_at_milestone":"1"`)

	nan := DeriveSummary(Aggregate([]domain.Path{{math.NaN()}}), 1, 1)
	assert.Equal(t, "n/a", nan.ValueAtHorizonEnd.Format())
	assert.True(t, nan.Degenerate())
}

func TestSuccessRateNonIncreasingWithTaxRate(t *testing.T) {
	params := domain.RetirementParameters{
		CurrentSavings:          600000,
		AnnualSavings:           10000,
		YearsUntilRetirement:    5,
		RetirementYears:         30,
		AnnualExpenses:          40000,
		InflationRate:           0.02,
		MeanReturn:              0.05,
		StandardDeviationReturn: 0.10,
		NumSimulations:          400,
	}
	agg := NewMonteCarloAggregator(nil)

	for _, seed := range []uint32{1, 2, 3} {
		previous := decimal.NewFromInt(101)
		for _, tax := range []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5} {
			p := params
			p.RetirementTaxRate = tax
			sim, err := NewRetirementSimulator(p)
			require.NoError(t, err)

			result, err := agg.Run(context.Background(), sim, RunConfig{NumSimulations: p.NumSimulations, Seed: seed})
			require.NoError(t, err)
			rate := DeriveSummary(result, p.YearsUntilRetirement, p.Horizon()).SuccessRate

			assert.True(t, rate.LessThanOrEqual(previous),
				"seed %d: success rate rose from %s to %s at tax %.1f", seed, previous, rate, tax)
			previous = rate
		}
	}
}
