package main

import (
	"fmt"

	"github.com/rpgo/mcplanner/internal/config"
	"github.com/rpgo/mcplanner/internal/domain"
	"github.com/rpgo/mcplanner/internal/output"
	"github.com/spf13/cobra"
)

func newRetirementCmd(a *app) *cobra.Command {
	example, _ := config.NewInputParser().CreateExampleConfiguration(domain.VariantRetirement)
	p := *example.Retirement

	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Simulate savings growth until retirement and drawdown after it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := p
			return a.execute(cmd, &domain.Configuration{Retirement: &params})
		},
	}

	f := cmd.Flags()
	f.Float64Var(&p.CurrentSavings, "current-savings", p.CurrentSavings, "savings today")
	f.Float64Var(&p.AnnualSavings, "annual-savings", p.AnnualSavings, "amount added each working year")
	f.IntVar(&p.YearsUntilRetirement, "years-until-retirement", p.YearsUntilRetirement, "working years left")
	f.IntVar(&p.RetirementYears, "retirement-years", p.RetirementYears, "years spent in retirement")
	f.Float64Var(&p.AnnualExpenses, "annual-expenses", p.AnnualExpenses, "first-year retirement spending in today's money")
	f.Float64Var(&p.InflationRate, "inflation-rate", p.InflationRate, "annual inflation as a fraction")
	f.Float64Var(&p.RetirementTaxRate, "tax-rate", p.RetirementTaxRate, "tax rate on withdrawals as a fraction")
	f.Float64Var(&p.MeanReturn, "mean-return", p.MeanReturn, "mean annual return as a fraction")
	f.Float64Var(&p.StandardDeviationReturn, "std-return", p.StandardDeviationReturn, "standard deviation of annual return as a fraction")
	f.IntVarP(&p.NumSimulations, "simulations", "n", p.NumSimulations, "number of simulated paths")
	return cmd
}

func newHomeCmd(a *app) *cobra.Command {
	example, _ := config.NewInputParser().CreateExampleConfiguration(domain.VariantHomePurchase)
	p := *example.HomePurchase

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Simulate net proceeds of selling a financed home at the end of each year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := p
			return a.execute(cmd, &domain.Configuration{HomePurchase: &params})
		},
	}

	f := cmd.Flags()
	f.Float64Var(&p.DownPayment, "down-payment", p.DownPayment, "cash paid up front")
	f.Float64Var(&p.LoanAmount, "loan-amount", p.LoanAmount, "mortgage principal")
	f.Float64Var(&p.MortgageRate, "mortgage-rate", p.MortgageRate, "annual mortgage rate as a fraction")
	f.IntVar(&p.MortgageYears, "mortgage-years", p.MortgageYears, "mortgage term in years")
	f.Float64Var(&p.MonthlyPayment, "monthly-payment", p.MonthlyPayment, "monthly payment; 0 derives the amortizing payment")
	f.Float64Var(&p.HomeAppreciationMean, "appreciation-mean", p.HomeAppreciationMean, "mean annual appreciation as a fraction")
	f.Float64Var(&p.HomeAppreciationStd, "appreciation-std", p.HomeAppreciationStd, "standard deviation of appreciation as a fraction")
	f.Float64Var(&p.SellingCosts, "selling-costs", p.SellingCosts, "selling costs as a fraction of the sale price")
	f.IntVarP(&p.NumSimulations, "simulations", "n", p.NumSimulations, "number of simulated paths")
	f.Float64Var(&p.PropertyTaxes, "property-taxes", p.PropertyTaxes, "annual property taxes")
	f.Float64Var(&p.Insurance, "insurance", p.Insurance, "annual insurance")
	f.Float64Var(&p.HOA, "hoa", p.HOA, "annual HOA dues")
	f.Float64Var(&p.BuyingCosts, "buying-costs", p.BuyingCosts, "closing costs paid at purchase")
	f.Float64Var(&p.TaxRate, "tax-rate", p.TaxRate, "marginal tax rate as a fraction")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <config.yaml>",
		Short: "Run the simulation described by a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings.Parser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			return a.execute(cmd, cfg)
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "example <retirement|home> [file]",
		Short:     "Write an example configuration file",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"retirement", "home"},
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := domain.Variant(args[0])
			if args[0] == "home" {
				variant = domain.VariantHomePurchase
			}
			cfg, err := config.NewInputParser().CreateExampleConfiguration(variant)
			if err != nil {
				return err
			}

			filename := fmt.Sprintf("%s_example.yaml", variant)
			if len(args) == 2 {
				filename = args[1]
			}
			if err := config.SaveConfiguration(cfg, filename); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Example configuration written to %s\n", filename)
			return nil
		},
	}
}

func newFormatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(a.stdout, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(a.stdout, "  %s\n", name)
			}
			fmt.Fprintln(a.stdout, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(a.stdout, "  %s -> %s\n", alias, output.AliasTarget(alias))
			}
			return nil
		},
	}
}
