package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sir-sim/sir-sim/sim"
)

// referenceConfig is the parameter set the CLI runs when no flag or scenario
// says otherwise.
func referenceConfig() sim.Config {
	return sim.NewConfig(
		sim.NewModelParameters(0.05, 0.01, 0.00001, 0.007, 1000),
		sim.CompartmentState{Susceptible: 10000, Infected: 100, Resistant: 5},
	)
}

// modelFlags binds the model parameters of one command to its flag set.
type modelFlags struct {
	steps       int     // Number of time points, including the initial state
	susceptible float64 // Initial susceptible count
	infected    float64 // Initial infected count
	resistant   float64 // Initial resistant count
	beta        float64 // Infection rate
	gamma       float64 // Recovery rate
	mu          float64 // Birth rate
	nu          float64 // Death rate
}

// model flag names, in the order they are registered
const (
	flagSteps       = "steps"
	flagSusceptible = "susceptible"
	flagInfected    = "infected"
	flagResistant   = "resistant"
	flagBeta        = "beta"
	flagGamma       = "gamma"
	flagMu          = "mu"
	flagNu          = "nu"
)

func (m *modelFlags) register(cmd *cobra.Command) {
	ref := referenceConfig()
	cmd.Flags().IntVar(&m.steps, flagSteps, ref.StepCount, "Number of time steps (including the initial state)")
	cmd.Flags().Float64Var(&m.susceptible, flagSusceptible, ref.Initial.Susceptible, "Initial susceptible population")
	cmd.Flags().Float64Var(&m.infected, flagInfected, ref.Initial.Infected, "Initial infected population")
	cmd.Flags().Float64Var(&m.resistant, flagResistant, ref.Initial.Resistant, "Initial resistant population")
	cmd.Flags().Float64Var(&m.beta, flagBeta, ref.InfectionRate, "Infection rate (beta)")
	cmd.Flags().Float64Var(&m.gamma, flagGamma, ref.RecoveryRate, "Recovery rate (gamma)")
	cmd.Flags().Float64Var(&m.mu, flagMu, ref.BirthRate, "Birth rate (mu)")
	cmd.Flags().Float64Var(&m.nu, flagNu, ref.DeathRate, "Death rate (nu)")
}

// config returns the flag values as a Config.
func (m *modelFlags) config() sim.Config {
	return sim.NewConfig(
		sim.NewModelParameters(m.beta, m.gamma, m.mu, m.nu, m.steps),
		sim.CompartmentState{Susceptible: m.susceptible, Infected: m.infected, Resistant: m.resistant},
	)
}

// overlay copies onto base only the flags the user set explicitly, so a
// scenario value is never clobbered by a flag default.
func (m *modelFlags) overlay(cmd *cobra.Command, base sim.Config) sim.Config {
	changed := cmd.Flags().Changed
	if changed(flagSteps) {
		base.StepCount = m.steps
	}
	if changed(flagSusceptible) {
		base.Initial.Susceptible = m.susceptible
	}
	if changed(flagInfected) {
		base.Initial.Infected = m.infected
	}
	if changed(flagResistant) {
		base.Initial.Resistant = m.resistant
	}
	if changed(flagBeta) {
		base.InfectionRate = m.beta
	}
	if changed(flagGamma) {
		base.RecoveryRate = m.gamma
	}
	if changed(flagMu) {
		base.BirthRate = m.mu
	}
	if changed(flagNu) {
		base.DeathRate = m.nu
	}
	return base
}

// resolveRunConfig builds the run configuration from flags and, when path is
// set, the named scenario of a scenario file.
func resolveRunConfig(cmd *cobra.Command, m *modelFlags, path, name string) (sim.Config, error) {
	if path == "" {
		cfg := m.config()
		return cfg, cfg.Validate()
	}
	file, err := LoadScenarioFile(path)
	if err != nil {
		return sim.Config{}, err
	}
	base, err := file.Lookup(name)
	if err != nil {
		return sim.Config{}, err
	}
	cfg := m.overlay(cmd, base)
	return cfg, cfg.Validate()
}
