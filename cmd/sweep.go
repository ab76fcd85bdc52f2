package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sir-sim/sir-sim/sim"
)

var (
	// CLI flags for the sweep command
	sweepModel  modelFlags
	sweepParam  string    // Rate to vary: beta, gamma, mu or nu
	sweepValues []float64 // Values taken by the swept rate
	sweepOut    string    // Output CSV path ("" = stdout)
)

// SweepHeader is the column layout of a sweep table.
var SweepHeader = []string{"value", "peak_infected", "peak_step", "final_susceptible", "final_infected", "final_resistant", "attack_rate"}

// withRate returns base with the named rate replaced by v.
func withRate(base sim.Config, param string, v float64) (sim.Config, error) {
	switch param {
	case flagBeta:
		base.InfectionRate = v
	case flagGamma:
		base.RecoveryRate = v
	case flagMu:
		base.BirthRate = v
	case flagNu:
		base.DeathRate = v
	default:
		return base, fmt.Errorf("unknown sweep parameter %q; valid: beta, gamma, mu, nu", param)
	}
	return base, nil
}

// runSweep simulates base once per value and writes one summary row per run.
func runSweep(base sim.Config, param string, values []float64, w io.Writer) error {
	if len(values) == 0 {
		return fmt.Errorf("no sweep values given")
	}
	if _, err := withRate(base, param, 0); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(SweepHeader); err != nil {
		return err
	}
	for _, v := range values {
		cfg, _ := withRate(base, param, v)
		res, err := sim.Simulate(cfg)
		if err != nil {
			return fmt.Errorf("%s=%g: %w", param, v, err)
		}
		summary, err := sim.Summarize(res)
		if err != nil {
			return fmt.Errorf("%s=%g: %w", param, v, err)
		}
		logrus.Debugf("[sweep] %s=%g peak=%g at %d", param, v, summary.PeakInfected, summary.PeakStep)
		row := []string{
			formatCell(v),
			formatCell(summary.PeakInfected),
			strconv.Itoa(summary.PeakStep),
			formatCell(summary.Final.Susceptible),
			formatCell(summary.Final.Infected),
			formatCell(summary.Final.Resistant),
			formatCell(summary.AttackRate),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// sweepCmd runs the model across several values of one rate
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the model across values of one rate and tabulate the outcomes",
	Run: func(cmd *cobra.Command, args []string) {
		base := sweepModel.config()
		if err := base.Validate(); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		var w io.Writer = os.Stdout
		if sweepOut != "" {
			f, err := os.Create(sweepOut)
			if err != nil {
				logrus.Fatalf("Error creating file %s: %v", sweepOut, err)
			}
			defer func() {
				if err := f.Close(); err != nil {
					logrus.Fatalf("Error closing file %s: %v", sweepOut, err)
				}
			}()
			w = f
		}
		if err := runSweep(base, sweepParam, sweepValues, w); err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
	},
}

func init() {
	sweepModel.register(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", flagBeta, "Rate to sweep: beta, gamma, mu or nu")
	sweepCmd.Flags().Float64SliceVar(&sweepValues, "values", []float64{0.01, 0.02, 0.05, 0.1}, "Comma-separated values for the swept rate")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "", "Output CSV path (default stdout)")
}
