package config

import (
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/rpgo/mcplanner/internal/domain"
)

// Settings are process-wide defaults read from the environment.
// Values in a configuration file and CLI flags take precedence.
type Settings struct {
	Workers        int    `env:"MCPLANNER_WORKERS"         envDefault:"0"`
	Seed           uint32 `env:"MCPLANNER_SEED"            envDefault:"0"`
	StartYear      int    `env:"MCPLANNER_START_YEAR"      envDefault:"0"`
	MaxSimulations int    `env:"MCPLANNER_MAX_SIMULATIONS" envDefault:"100000"`
	OTelEndpoint   string `env:"MCPLANNER_OTEL_ENDPOINT"`
	OTelEnabled    bool   `env:"MCPLANNER_OTEL_ENABLED"    envDefault:"false"`

	OTelSampleRatio float64 `env:"MCPLANNER_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings reads Settings from the environment
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if s.MaxSimulations <= 0 {
		s.MaxSimulations = DefaultMaxSimulations
	}
	if s.Workers < 0 {
		return Settings{}, fmt.Errorf("MCPLANNER_WORKERS cannot be negative, got %d", s.Workers)
	}
	if s.OTelSampleRatio < 0 || s.OTelSampleRatio > 1 {
		return Settings{}, fmt.Errorf("MCPLANNER_OTEL_SAMPLE_RATIO must be in [0, 1], got %g", s.OTelSampleRatio)
	}
	return s, nil
}

// Apply fills unset fields of sim from the environment defaults. Zero
// workers after merging means one worker per available CPU.
func (s Settings) Apply(sim *domain.SimulationSettings) {
	if sim.Seed == 0 {
		sim.Seed = s.Seed
	}
	if sim.StartYear == 0 {
		sim.StartYear = s.StartYear
	}
	if sim.Workers == 0 {
		sim.Workers = s.Workers
	}
	if sim.Workers == 0 {
		sim.Workers = runtime.GOMAXPROCS(0)
	}
}

// Parser returns an InputParser enforcing the configured simulation cap
func (s Settings) Parser() *InputParser {
	p := NewInputParser()
	if s.MaxSimulations > 0 {
		p.MaxSimulations = s.MaxSimulations
	}
	return p
}
