package output

import (
	"fmt"
	"io"

	"github.com/rpgo/mcplanner/internal/domain"
)

// ReportOptions tunes how GenerateReport renders a report
type ReportOptions struct {
	IncludePaths bool // JSON output carries every raw path
}

// ResolveFormatter looks up the named formatter and applies opts to it.
func ResolveFormatter(format string, opts ReportOptions) (Formatter, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	if j, ok := f.(JSONFormatter); ok {
		j.IncludePaths = opts.IncludePaths
		f = j
	}
	return f, nil
}

// GenerateReport renders report in the named format and writes it to w.
func GenerateReport(w io.Writer, report *domain.SimulationReport, format string, opts ReportOptions) error {
	f, err := ResolveFormatter(format, opts)
	if err != nil {
		return err
	}

	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// parameterRow is one labelled input shown alongside the results
type parameterRow struct {
	Label string
	Value string
}

// parameterRows lists the inputs of a report in display order
func parameterRows(r *domain.SimulationReport) []parameterRow {
	switch {
	case r.Retirement != nil:
		p := r.Retirement
		return []parameterRow{
			{"Current savings", FormatCurrency(p.CurrentSavings)},
			{"Annual savings", FormatCurrency(p.AnnualSavings)},
			{"Years until retirement", fmt.Sprint(p.YearsUntilRetirement)},
			{"Retirement years", fmt.Sprint(p.RetirementYears)},
			{"Annual expenses", FormatCurrency(p.AnnualExpenses)},
			{"Inflation", FormatRate(p.InflationRate)},
			{"Retirement tax rate", FormatRate(p.RetirementTaxRate)},
			{"Mean return", FormatRate(p.MeanReturn)},
			{"Return std deviation", FormatRate(p.StandardDeviationReturn)},
			{"Simulations", fmt.Sprint(p.NumSimulations)},
		}
	case r.HomePurchase != nil:
		p := r.HomePurchase
		rows := []parameterRow{
			{"Home price", FormatCurrency(p.HomeValue())},
			{"Down payment", FormatCurrency(p.DownPayment)},
			{"Loan amount", FormatCurrency(p.LoanAmount)},
			{"Mortgage rate", FormatRate(p.MortgageRate)},
			{"Mortgage years", fmt.Sprint(p.MortgageYears)},
		}
		if r.Schedule != nil {
			label := "Monthly payment"
			if r.Schedule.DerivedPayment {
				label = "Monthly payment (derived)"
			}
			rows = append(rows, parameterRow{label, FormatCents(r.Schedule.MonthlyPayment)})
		}
		rows = append(rows,
			parameterRow{"Appreciation mean", FormatRate(p.HomeAppreciationMean)},
			parameterRow{"Appreciation std deviation", FormatRate(p.HomeAppreciationStd)},
			parameterRow{"Selling costs", FormatRate(p.SellingCosts)},
			parameterRow{"Simulations", fmt.Sprint(p.NumSimulations)},
		)
		for _, extra := range []struct {
			label string
			v     float64
		}{
			{"Property taxes", p.PropertyTaxes},
			{"Insurance", p.Insurance},
			{"HOA", p.HOA},
			{"Buying costs", p.BuyingCosts},
		} {
			if extra.v != 0 {
				rows = append(rows, parameterRow{extra.label, FormatCurrency(extra.v)})
			}
		}
		return rows
	}
	return nil
}

// title is the heading used by the human-readable formatters
func title(r *domain.SimulationReport) string {
	if r.Variant == domain.VariantHomePurchase {
		return "Home Purchase Simulation"
	}
	return "Retirement Simulation"
}

// milestoneLabel names the milestone headline for the report's variant
func milestoneLabel(r *domain.SimulationReport) (milestone, horizon string) {
	if r.Variant == domain.VariantHomePurchase {
		return "Net proceeds at loan payoff", "Net proceeds at horizon end"
	}
	return "Mean savings at retirement", "Mean savings at horizon end"
}
