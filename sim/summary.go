package sim

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
)

// Summary aggregates headline statistics of a Result.
type Summary struct {
	Steps                int
	PeakInfected         float64
	PeakStep             int
	Initial              CompartmentState
	Final                CompartmentState
	InitialPopulation    float64
	FinalPopulation      float64
	PopulationDrift      float64 // FinalPopulation - InitialPopulation
	CumulativeInfections float64 // Σ β·S·I/N over integrated steps
	CumulativeRecoveries float64 // Σ γ·I over integrated steps
	AttackRate           float64 // 1 - S_final/S_0; 0 when S_0 is 0
}

// Summarize computes aggregate statistics from a Result.
// A nil or empty result fails with ErrResultNotAvailable.
func Summarize(res *Result) (*Summary, error) {
	if res == nil || res.Len() == 0 {
		return nil, ErrResultNotAvailable
	}
	p := res.Parameters()
	infected := res.Infected()
	totals := res.Totals()

	summary := &Summary{
		Steps:             res.Len(),
		PeakInfected:      floats.Max(infected),
		PeakStep:          floats.MaxIdx(infected),
		Initial:           res.At(0),
		Final:             res.Final(),
		InitialPopulation: totals[0],
		FinalPopulation:   totals[len(totals)-1],
	}
	summary.PopulationDrift = summary.FinalPopulation - summary.InitialPopulation

	// The last row is never integrated from.
	for t := 0; t < res.Len()-1; t++ {
		s := res.At(t)
		if totals[t] != 0 {
			summary.CumulativeInfections += p.InfectionRate * s.Susceptible * s.Infected / totals[t]
		}
	}
	if res.Len() > 1 {
		summary.CumulativeRecoveries = p.RecoveryRate * floats.Sum(infected[:res.Len()-1])
	}
	if s0 := summary.Initial.Susceptible; s0 != 0 {
		summary.AttackRate = 1 - summary.Final.Susceptible/s0
	}
	return summary, nil
}

// Print writes the summary in a fixed human-readable layout.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== SIR Simulation Summary ===")
	fmt.Fprintf(w, "Steps                 : %d\n", s.Steps)
	fmt.Fprintf(w, "Initial (S, I, R)     : %.4f, %.4f, %.4f\n", s.Initial.Susceptible, s.Initial.Infected, s.Initial.Resistant)
	fmt.Fprintf(w, "Final   (S, I, R)     : %.4f, %.4f, %.4f\n", s.Final.Susceptible, s.Final.Infected, s.Final.Resistant)
	fmt.Fprintf(w, "Peak Infected         : %.4f at step %d\n", s.PeakInfected, s.PeakStep)
	fmt.Fprintf(w, "Population            : %.4f -> %.4f (drift %+.4f)\n", s.InitialPopulation, s.FinalPopulation, s.PopulationDrift)
	fmt.Fprintf(w, "Cumulative Infections : %.4f\n", s.CumulativeInfections)
	fmt.Fprintf(w, "Cumulative Recoveries : %.4f\n", s.CumulativeRecoveries)
	fmt.Fprintf(w, "Attack Rate           : %.4f\n", s.AttackRate)
}
