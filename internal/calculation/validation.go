package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/mcplanner/internal/domain"
)

// ErrInvalidInput marks parameters the models cannot run on
var ErrInvalidInput = errors.New("invalid simulation input")

// InputError describes one rejected parameter
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalid(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	return nil
}

// ValidateRetirement rejects retirement parameters that would divide by zero
// or describe an empty horizon
func ValidateRetirement(p domain.RetirementParameters) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"current_savings", p.CurrentSavings},
		{"annual_savings", p.AnnualSavings},
		{"annual_expenses", p.AnnualExpenses},
		{"inflation_rate", p.InflationRate},
		{"retirement_tax_rate", p.RetirementTaxRate},
		{"mean_return", p.MeanReturn},
		{"standard_deviation_return", p.StandardDeviationReturn},
	} {
		if err := finite(f.name, f.v); err != nil {
			return err
		}
	}
	if p.YearsUntilRetirement < 0 {
		return invalid("years_until_retirement", "cannot be negative, got %d", p.YearsUntilRetirement)
	}
	if p.RetirementYears < 0 {
		return invalid("retirement_years", "cannot be negative, got %d", p.RetirementYears)
	}
	if p.Horizon() == 0 {
		return invalid("retirement_years", "years until retirement plus retirement years must be at least 1")
	}
	if p.RetirementTaxRate >= 1 {
		return invalid("retirement_tax_rate", "must be below 1, got %g", p.RetirementTaxRate)
	}
	if p.StandardDeviationReturn < 0 {
		return invalid("standard_deviation_return", "cannot be negative, got %g", p.StandardDeviationReturn)
	}
	if p.NumSimulations < 1 {
		return invalid("num_simulations", "must be at least 1, got %d", p.NumSimulations)
	}
	return nil
}

// ValidateHomePurchase rejects home purchase parameters the amortization
// and proceeds formulas cannot handle
func ValidateHomePurchase(p domain.HomePurchaseParameters) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"down_payment", p.DownPayment},
		{"loan_amount", p.LoanAmount},
		{"mortgage_rate", p.MortgageRate},
		{"monthly_payment", p.MonthlyPayment},
		{"home_appreciation_mean", p.HomeAppreciationMean},
		{"home_appreciation_std", p.HomeAppreciationStd},
		{"selling_costs", p.SellingCosts},
	} {
		if err := finite(f.name, f.v); err != nil {
			return err
		}
	}
	if p.MortgageYears <= 0 {
		return invalid("mortgage_years", "must be positive, got %d", p.MortgageYears)
	}
	if p.DownPayment < 0 {
		return invalid("down_payment", "cannot be negative, got %g", p.DownPayment)
	}
	if p.LoanAmount < 0 {
		return invalid("loan_amount", "cannot be negative, got %g", p.LoanAmount)
	}
	if p.MonthlyPayment < 0 {
		return invalid("monthly_payment", "cannot be negative, got %g", p.MonthlyPayment)
	}
	if 1+p.MortgageRate/12 <= 0 {
		return invalid("mortgage_rate", "monthly factor 1+rate/12 must be positive, got rate %g", p.MortgageRate)
	}
	if p.SellingCosts < 0 || p.SellingCosts >= 1 {
		return invalid("selling_costs", "must be in [0, 1), got %g", p.SellingCosts)
	}
	if p.HomeAppreciationStd < 0 {
		return invalid("home_appreciation_std", "cannot be negative, got %g", p.HomeAppreciationStd)
	}
	if p.NumSimulations < 1 {
		return invalid("num_simulations", "must be at least 1, got %d", p.NumSimulations)
	}
	return nil
}
