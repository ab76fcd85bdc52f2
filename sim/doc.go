// Package sim provides the core SIR (Susceptible–Infected–Resistant) simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - config.go: ModelParameters, initial CompartmentState and their defaults
//   - simulator.go: the fixed-step explicit Euler loop and the Step function
//   - result.go: the time series produced by a run
//
// # Architecture
//
// The Simulator owns an immutable Config and, after a successful Run, a Result.
// "Has run" is realized as "a result is present": consumers call
// Simulator.Result, which fails with ErrResultNotAvailable before Run.
//
// Output collaborators live in sub-packages and only consume *Result:
//   - sim/export/: CSV export and replay
//   - sim/chart/: time-series and phase-plane plots
//
// # Numerics
//
// The integrator is deliberately the plain explicit Euler scheme. Total
// population is recomputed after every step, compartments are never clamped,
// and a step whose total population is exactly zero fails with
// ErrDivisionByZero instead of propagating NaN.
package sim
