package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rpgo/mcplanner/internal/calculation"
	"github.com/rpgo/mcplanner/internal/config"
	"github.com/rpgo/mcplanner/internal/domain"
	"github.com/rpgo/mcplanner/internal/output"
	"github.com/rpgo/mcplanner/internal/telemetry"
	"github.com/spf13/cobra"
)

const serviceName = "mcplanner"

// version is stamped at build time with -ldflags "-X main.version=..."
var version = "dev"

// app carries state shared by every subcommand
type app struct {
	stdout io.Writer
	stderr io.Writer

	settings config.Settings
	shutdown func(context.Context) error

	seed         uint32
	workers      int
	startYear    int
	format       string
	outputFile   string
	includePaths bool
	verbose      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "mcplanner",
		Short:         "Monte Carlo projections for retirement savings and home purchases",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(context.WithoutCancel(cmd.Context()))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.Uint32Var(&a.seed, "seed", 0, "base seed; 0 picks a time-derived seed")
	pf.IntVar(&a.workers, "workers", 0, "parallel path workers; 0 uses one per CPU")
	pf.IntVar(&a.startYear, "start-year", 0, "calendar year of the first simulated year; 0 uses the current year")
	pf.StringVarP(&a.format, "format", "f", "console", "output format (see 'mcplanner formats')")
	pf.StringVarP(&a.outputFile, "output", "o", "", "write the report to a file instead of stdout")
	pf.BoolVar(&a.includePaths, "include-paths", false, "include every simulated path in JSON output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug detail to stderr")

	root.AddCommand(
		newRetirementCmd(a),
		newHomeCmd(a),
		newRunCmd(a),
		newExampleCmd(a),
		newFormatsCmd(a),
	)
	return root
}

func (a *app) init(ctx context.Context) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	a.settings = settings

	shutdown, err := telemetry.Setup(ctx, serviceName, telemetry.Config{
		Enabled:        settings.OTelEnabled,
		Endpoint:       settings.OTelEndpoint,
		ServiceVersion: version,
		SampleRatio:    settings.OTelSampleRatio,
	})
	if err != nil {
		return fmt.Errorf("telemetry setup failed: %w", err)
	}
	a.shutdown = shutdown
	return nil
}

// simulationSettings merges environment defaults, the configuration file
// block and explicitly set flags, in increasing order of precedence
func (a *app) simulationSettings(cmd *cobra.Command, file domain.SimulationSettings) domain.SimulationSettings {
	sim := file
	a.settings.Apply(&sim)

	flags := cmd.Flags()
	if flags.Changed("seed") {
		sim.Seed = a.seed
	}
	if flags.Changed("workers") {
		sim.Workers = a.workers
	}
	if flags.Changed("start-year") {
		sim.StartYear = a.startYear
	}
	return sim
}

func (a *app) engine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(calculation.NewStdLogger(a.stderr, a.verbose))
	return engine
}

// execute validates cfg, runs it and writes the report
func (a *app) execute(cmd *cobra.Command, cfg *domain.Configuration) error {
	cfg.Simulation = a.simulationSettings(cmd, cfg.Simulation)
	if err := a.settings.Parser().ValidateConfiguration(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	report, err := a.engine().RunConfiguration(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return a.write(report)
}

func (a *app) write(report *domain.SimulationReport) error {
	opts := output.ReportOptions{IncludePaths: a.includePaths}
	if a.outputFile == "" {
		return output.GenerateReport(a.stdout, report, a.format, opts)
	}

	f, err := output.ResolveFormatter(a.format, opts)
	if err != nil {
		return err
	}
	path, err := output.WriteFormatted(f, report, a.outputFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Report written to %s\n", path)
	return nil
}
