package calculation

import (
	"github.com/rpgo/mcplanner/internal/domain"
	shop "github.com/shopspring/decimal"
)

// Guidance thresholds on the rounded success percentage
var (
	solidThreshold     = shop.NewFromInt(95)
	goodTrackThreshold = shop.NewFromInt(80)
	someRiskThreshold  = shop.NewFromInt(60)
)

// GuidanceFor maps a success percentage to its guidance tier
func GuidanceFor(successRate shop.Decimal) domain.GuidanceTier {
	switch {
	case successRate.GreaterThanOrEqual(solidThreshold):
		return domain.TierSolid
	case successRate.GreaterThanOrEqual(goodTrackThreshold):
		return domain.TierGoodTrack
	case successRate.GreaterThanOrEqual(someRiskThreshold):
		return domain.TierSomeRisk
	default:
		return domain.TierSignificantChallenges
	}
}

// clampIndex turns a 1-based year into an index valid for a series of length n
func clampIndex(year, n int) int {
	i := year - 1
	if i > n-1 {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// DeriveSummary reads the headline values of a run. milestoneYear and
// horizonYear are 1-based years; indices past the end of the series are
// clamped to the last year. A NaN or infinite mean is reported as is and
// flagged by Summary.Degenerate.
func DeriveSummary(result *domain.AggregateResult, milestoneYear, horizonYear int) domain.Summary {
	summary := domain.Summary{
		MilestoneYear: milestoneYear,
		HorizonYear:   horizonYear,
		SuccessRate:   shop.Zero,
	}
	n := result.Years()
	if n == 0 || len(result.Paths) == 0 {
		summary.Guidance = GuidanceFor(summary.SuccessRate)
		return summary
	}

	// Non-finite means pass through unchanged; formatters render them as
	// n/a or ±inf and JSON as null.
	summary.ValueAtMilestone = domain.Amount(result.Mean[clampIndex(milestoneYear, n)])
	summary.ValueAtHorizonEnd = domain.Amount(result.Mean[clampIndex(horizonYear, n)])

	for _, p := range result.Paths {
		if len(p) == 0 {
			continue
		}
		if p[clampIndex(horizonYear, len(p))] > 0 {
			summary.SuccessfulPaths++
		}
	}
	summary.SuccessRate = shop.NewFromInt(int64(summary.SuccessfulPaths)).
		Div(shop.NewFromInt(int64(len(result.Paths)))).
		Mul(shop.NewFromInt(100)).
		Round(0)
	summary.Guidance = GuidanceFor(summary.SuccessRate)
	return summary
}
