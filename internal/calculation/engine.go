package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/mcplanner/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RunOptions controls execution of a single engine run
type RunOptions struct {
	Seed      uint32
	Workers   int
	StartYear int // 0 uses the current calendar year
}

// CalculationEngine validates parameters, runs the Monte Carlo aggregation
// and derives the headline summary
type CalculationEngine struct {
	Aggregator *MonteCarloAggregator
	Logger     Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	logger := NopLogger{}
	return &CalculationEngine{
		Aggregator: NewMonteCarloAggregator(logger),
		Logger:     logger,
	}
}

// SetLogger sets the logger for the engine and its aggregator. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Aggregator.Logger = l
}

// RunConfiguration runs whichever variant cfg selects, applying its simulation settings
func (ce *CalculationEngine) RunConfiguration(ctx context.Context, cfg *domain.Configuration) (*domain.SimulationReport, error) {
	opts := RunOptions{
		Seed:      cfg.Simulation.Seed,
		Workers:   cfg.Simulation.Workers,
		StartYear: cfg.Simulation.StartYear,
	}
	switch {
	case cfg.Retirement != nil && cfg.HomePurchase != nil:
		return nil, fmt.Errorf("%w: configuration selects both retirement and home_purchase", ErrInvalidInput)
	case cfg.Retirement != nil:
		return ce.RunRetirement(ctx, *cfg.Retirement, opts)
	case cfg.HomePurchase != nil:
		return ce.RunHomePurchase(ctx, *cfg.HomePurchase, opts)
	default:
		return nil, fmt.Errorf("%w: configuration has no retirement or home_purchase section", ErrInvalidInput)
	}
}

// RunRetirement simulates a savings and drawdown plan
func (ce *CalculationEngine) RunRetirement(ctx context.Context, params domain.RetirementParameters, opts RunOptions) (*domain.SimulationReport, error) {
	ctx, span := tracer.Start(ctx, "engine.retirement", trace.WithAttributes(
		attribute.Int("retirement.years_until_retirement", params.YearsUntilRetirement),
		attribute.Int("retirement.retirement_years", params.RetirementYears),
	))
	defer span.End()

	sim, err := NewRetirementSimulator(params)
	if err != nil {
		return nil, ce.fail(span, fmt.Errorf("retirement parameters rejected: %w", err))
	}

	result, err := ce.run(ctx, domain.VariantRetirement, sim, params.NumSimulations, params.Horizon(), opts)
	if err != nil {
		return nil, ce.fail(span, err)
	}

	summary := DeriveSummary(result, params.YearsUntilRetirement, params.Horizon())
	span.SetAttributes(attribute.String("summary.success_rate", summary.SuccessRate.String()))

	p := params
	return &domain.SimulationReport{
		Variant:    domain.VariantRetirement,
		StartYear:  ce.startYear(opts),
		Result:     result,
		Summary:    summary,
		Retirement: &p,
	}, nil
}

// RunHomePurchase simulates net equity of a financed home purchase
func (ce *CalculationEngine) RunHomePurchase(ctx context.Context, params domain.HomePurchaseParameters, opts RunOptions) (*domain.SimulationReport, error) {
	ctx, span := tracer.Start(ctx, "engine.home_purchase", trace.WithAttributes(
		attribute.Int("home.mortgage_years", params.MortgageYears),
	))
	defer span.End()

	sim, err := NewHomePurchaseSimulator(params)
	if err != nil {
		return nil, ce.fail(span, fmt.Errorf("home purchase parameters rejected: %w", err))
	}

	result, err := ce.run(ctx, domain.VariantHomePurchase, sim, params.NumSimulations, params.MortgageYears, opts)
	if err != nil {
		return nil, ce.fail(span, err)
	}

	summary := DeriveSummary(result, params.MortgageYears, params.MortgageYears)
	span.SetAttributes(attribute.String("summary.success_rate", summary.SuccessRate.String()))

	p := params
	return &domain.SimulationReport{
		Variant:      domain.VariantHomePurchase,
		StartYear:    ce.startYear(opts),
		Result:       result,
		Summary:      summary,
		HomePurchase: &p,
		Schedule:     sim.Schedule(),
	}, nil
}

func (ce *CalculationEngine) run(ctx context.Context, variant domain.Variant, sim PathSimulator, n, horizon int, opts RunOptions) (*domain.AggregateResult, error) {
	started := nowFunc()
	ce.Logger.Infof("running %s: %d paths over %d years", variant, n, horizon)

	result, err := ce.Aggregator.Run(ctx, sim, RunConfig{
		NumSimulations: n,
		Seed:           opts.Seed,
		Workers:        opts.Workers,
	})
	if err != nil {
		ce.Logger.Errorf("%s run failed: %v", variant, err)
		return nil, err
	}

	if result.DegeneratePaths > 0 {
		ce.Logger.Warnf("%d of %d paths produced non-finite values", result.DegeneratePaths, n)
	}
	ce.Logger.Infof("%s finished in %s (seed %d)", variant, nowFunc().Sub(started), result.Seed)
	return result, nil
}

func (ce *CalculationEngine) startYear(opts RunOptions) int {
	if opts.StartYear != 0 {
		return opts.StartYear
	}
	return nowFunc().Year()
}

func (ce *CalculationEngine) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
