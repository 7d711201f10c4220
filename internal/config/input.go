package config

import (
	"fmt"
	"os"

	"github.com/rpgo/mcplanner/internal/calculation"
	"github.com/rpgo/mcplanner/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultMaxSimulations caps the number of paths a single run may request
const DefaultMaxSimulations = 100000

// InputParser handles parsing of input configuration files
type InputParser struct {
	MaxSimulations int
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{MaxSimulations: DefaultMaxSimulations}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Retirement != nil && config.HomePurchase != nil {
		return fmt.Errorf("%w: only one of retirement or home_purchase may be set", calculation.ErrInvalidInput)
	}
	if config.Retirement == nil && config.HomePurchase == nil {
		return fmt.Errorf("%w: a retirement or home_purchase section is required", calculation.ErrInvalidInput)
	}

	if err := ip.validateSimulation(&config.Simulation); err != nil {
		return fmt.Errorf("simulation settings validation failed: %w", err)
	}

	if config.Retirement != nil {
		if err := ip.checkSimulationCount(config.Retirement.NumSimulations); err != nil {
			return err
		}
		if err := calculation.ValidateRetirement(*config.Retirement); err != nil {
			return fmt.Errorf("retirement validation failed: %w", err)
		}
	}
	if config.HomePurchase != nil {
		if err := ip.checkSimulationCount(config.HomePurchase.NumSimulations); err != nil {
			return err
		}
		if err := calculation.ValidateHomePurchase(*config.HomePurchase); err != nil {
			return fmt.Errorf("home purchase validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateSimulation(s *domain.SimulationSettings) error {
	if s.Workers < 0 {
		return &calculation.InputError{Field: "workers", Reason: fmt.Sprintf("cannot be negative, got %d", s.Workers)}
	}
	if s.StartYear < 0 {
		return &calculation.InputError{Field: "start_year", Reason: fmt.Sprintf("cannot be negative, got %d", s.StartYear)}
	}
	return nil
}

func (ip *InputParser) checkSimulationCount(n int) error {
	if ip.MaxSimulations > 0 && n > ip.MaxSimulations {
		return &calculation.InputError{
			Field:  "num_simulations",
			Reason: fmt.Sprintf("%d exceeds the limit of %d", n, ip.MaxSimulations),
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration for the given variant
func (ip *InputParser) CreateExampleConfiguration(variant domain.Variant) (*domain.Configuration, error) {
	switch variant {
	case domain.VariantRetirement:
		return &domain.Configuration{
			Simulation: domain.SimulationSettings{Seed: 20250101},
			Retirement: &domain.RetirementParameters{
				CurrentSavings:          250000,
				AnnualSavings:           20000,
				YearsUntilRetirement:    20,
				RetirementYears:         30,
				AnnualExpenses:          60000,
				InflationRate:           0.025,
				RetirementTaxRate:       0.15,
				MeanReturn:              0.06,
				StandardDeviationReturn: 0.12,
				NumSimulations:          1000,
			},
		}, nil
	case domain.VariantHomePurchase:
		return &domain.Configuration{
			Simulation: domain.SimulationSettings{Seed: 20250101},
			HomePurchase: &domain.HomePurchaseParameters{
				DownPayment:          80000,
				LoanAmount:           320000,
				MortgageRate:         0.065,
				MortgageYears:        30,
				HomeAppreciationMean: 0.035,
				HomeAppreciationStd:  0.08,
				SellingCosts:         0.06,
				NumSimulations:       1000,
				PropertyTaxes:        4800,
				Insurance:            1500,
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown variant %q (want %s or %s)", variant, domain.VariantRetirement, domain.VariantHomePurchase)
	}
}

// SaveConfiguration writes config to filename as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
