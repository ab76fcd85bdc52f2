package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator owns a Config and, once Run has succeeded, the Result it produced.
// It is not safe for concurrent use.
type Simulator struct {
	config            Config
	initialPopulation float64
	result            *Result // nil until Run succeeds
}

// NewSimulator validates cfg and returns a Simulator in the not-run state.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		config:            cfg,
		initialPopulation: cfg.Initial.Total(),
	}, nil
}

// Config returns the configuration the simulator was built with.
func (sim *Simulator) Config() Config {
	return sim.config
}

// InitialPopulation returns S0 + I0 + R0, computed once at construction.
func (sim *Simulator) InitialPopulation() float64 {
	return sim.initialPopulation
}

// HasRun reports whether a result is available.
func (sim *Simulator) HasRun() bool {
	return sim.result != nil
}

// Result returns the stored result, or ErrResultNotAvailable before a successful Run.
func (sim *Simulator) Result() (*Result, error) {
	if sim.result == nil {
		return nil, ErrResultNotAvailable
	}
	return sim.result, nil
}

// Run integrates the model for StepCount-1 steps and stores the result.
// Running again recomputes the same sequence and replaces the stored result.
// On failure nothing is stored and any previous result is kept.
func (sim *Simulator) Run() (*Result, error) {
	cfg := sim.config
	logrus.Debugf("[sir] run: steps=%d initial=(%v) N=%g beta=%g gamma=%g mu=%g nu=%g",
		cfg.StepCount, cfg.Initial, sim.initialPopulation,
		cfg.InfectionRate, cfg.RecoveryRate, cfg.BirthRate, cfg.DeathRate)

	states := make([]CompartmentState, cfg.StepCount)
	states[0] = cfg.Initial
	n := sim.initialPopulation
	for t := 1; t < cfg.StepCount; t++ {
		next, err := Step(states[t-1], n, cfg.ModelParameters)
		if err != nil {
			logrus.Warnf("[sir] run aborted at step %d: %v", t, err)
			return nil, &StepError{Step: t, Population: n, State: states[t-1], Wrapped: err}
		}
		states[t] = next
		n = next.Total()
	}

	res := newResult(cfg.ModelParameters, states)
	sim.result = res
	logrus.Debugf("[sir] run complete: final=(%v) N=%g", res.Final(), n)
	return res, nil
}

// Step advances one explicit Euler step from prev, where n is the total
// population entering the step. It fails with ErrDivisionByZero when n is 0.
func Step(prev CompartmentState, n float64, p ModelParameters) (CompartmentState, error) {
	if n == 0 {
		return CompartmentState{}, ErrDivisionByZero
	}
	s, i, r := prev.Susceptible, prev.Infected, prev.Resistant

	newInfections := p.InfectionRate * s * i / n
	recoveries := i * p.RecoveryRate
	births := p.BirthRate * n
	deathsS := p.DeathRate * s
	deathsI := p.DeathRate * i
	deathsR := p.DeathRate * r

	return CompartmentState{
		Susceptible: s + births - newInfections - deathsS,
		Infected:    i + newInfections - recoveries - deathsI,
		Resistant:   r + recoveries - deathsR,
	}, nil
}

// Simulate builds a Simulator for cfg, runs it and returns the result.
func Simulate(cfg Config) (*Result, error) {
	s, err := NewSimulator(cfg)
	if err != nil {
		return nil, err
	}
	return s.Run()
}
