package sim

import "fmt"

// Defaults used by DefaultConfig.
const (
	DefaultStepCount     = 1000
	DefaultSusceptible   = 950.0
	DefaultInfected      = 50.0
	DefaultResistant     = 0.0
	DefaultInfectionRate = 0.05
	DefaultRecoveryRate  = 0.01
	DefaultBirthRate     = 0.0
	DefaultDeathRate     = 0.0
)

// ModelParameters groups the rates and the run length. Immutable for a run.
type ModelParameters struct {
	InfectionRate float64 // β, per-contact transmission rate
	RecoveryRate  float64 // γ, fraction of infected recovering per step
	BirthRate     float64 // μ, proportional birth rate, added to Susceptible
	DeathRate     float64 // ν, proportional death rate, applied to every compartment
	StepCount     int     // number of time points produced, including the initial state (must be ≥ 1)
}

// Config is the full input of a run: parameters plus initial compartment sizes.
type Config struct {
	ModelParameters
	Initial CompartmentState
}

// NewModelParameters creates a ModelParameters. Values are stored as-is.
func NewModelParameters(infectionRate, recoveryRate, birthRate, deathRate float64, stepCount int) ModelParameters {
	return ModelParameters{
		InfectionRate: infectionRate,
		RecoveryRate:  recoveryRate,
		BirthRate:     birthRate,
		DeathRate:     deathRate,
		StepCount:     stepCount,
	}
}

// NewConfig creates a Config from parameters and an initial state.
func NewConfig(params ModelParameters, initial CompartmentState) Config {
	return Config{ModelParameters: params, Initial: initial}
}

// DefaultConfig returns the documented defaults: 1000 steps, S/I/R = 950/50/0,
// β = 0.05, γ = 0.01 and no vital dynamics.
func DefaultConfig() Config {
	return NewConfig(
		NewModelParameters(DefaultInfectionRate, DefaultRecoveryRate, DefaultBirthRate, DefaultDeathRate, DefaultStepCount),
		CompartmentState{Susceptible: DefaultSusceptible, Infected: DefaultInfected, Resistant: DefaultResistant},
	)
}

// Validate checks the only hard constraint: StepCount ≥ 1.
// Signs and ranges of rates and compartments are not checked.
func (c Config) Validate() error {
	if c.StepCount < 1 {
		return fmt.Errorf("%w: step count must be >= 1, got %d", ErrInvalidConfiguration, c.StepCount)
	}
	return nil
}
