package calculation

import "github.com/rpgo/mcplanner/internal/domain"

// RetirementSimulator models savings growth until retirement followed by
// taxed, inflation-adjusted withdrawals. Balances are never floored: a
// negative value means the plan ran out of money.
type RetirementSimulator struct {
	params domain.RetirementParameters
}

// NewRetirementSimulator validates params and returns a simulator for them
func NewRetirementSimulator(params domain.RetirementParameters) (*RetirementSimulator, error) {
	if err := ValidateRetirement(params); err != nil {
		return nil, err
	}
	return &RetirementSimulator{params: params}, nil
}

// SimulatePath runs one path with its own generator seeded from seed
func (rs *RetirementSimulator) SimulatePath(seed uint32) domain.Path {
	gen := NewNormalGenerator(rs.params.MeanReturn, rs.params.StandardDeviationReturn, NewMulberry32(seed))
	return rs.Simulate(gen)
}

// Simulate runs one path drawing a yearly return from returns
func (rs *RetirementSimulator) Simulate(returns Variate) domain.Path {
	p := rs.params
	path := make(domain.Path, 0, p.Horizon())
	savings := p.CurrentSavings

	// Accumulation phase
	for year := 0; year < p.YearsUntilRetirement; year++ {
		r := returns.Next()
		savings = savings*(1+r) + p.AnnualSavings
		path = append(path, savings)
	}

	// Withdrawal phase
	expenses := p.AnnualExpenses
	for year := 0; year < p.RetirementYears; year++ {
		r := returns.Next()
		savings *= 1 + r
		grossWithdrawal := expenses / (1 - p.RetirementTaxRate)
		savings -= grossWithdrawal
		path = append(path, savings)
		expenses *= 1 + p.InflationRate
	}

	return path
}
