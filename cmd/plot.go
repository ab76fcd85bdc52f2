package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sir-sim/sir-sim/sim"
	"github.com/sir-sim/sir-sim/sim/chart"
	"github.com/sir-sim/sir-sim/sim/export"
)

var (
	// CLI flags for the plot command
	plotFrom       string  // CSV series to replay
	plotTimeSeries string  // Output path of the time-series plot
	plotPhase      string  // Output path of the phase-plane plot
	plotPhaseAxes  string  // Phase-plane column selection
	plotBeta       float64 // Rates only feed the title
	plotGamma      float64
	plotMu         float64
	plotNu         float64
)

// replayPlots re-renders both plots from an exported CSV series.
func replayPlots(from, timeSeriesPath, phasePath string, params sim.ModelParameters, style chart.Style) error {
	res, err := export.LoadCSV(from, params)
	if err != nil {
		return err
	}
	logrus.Infof("Loaded %d rows from %s", res.Len(), from)
	return chart.SavePair(timeSeriesPath, phasePath, res, style)
}

// plotCmd re-plots a series previously written by `run --csv`
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Re-plot an exported CSV series",
	Run: func(cmd *cobra.Command, args []string) {
		axes, err := chart.ParsePhaseAxes(plotPhaseAxes)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		style := chart.DefaultStyle()
		style.PhaseAxes = axes
		params := sim.NewModelParameters(plotBeta, plotGamma, plotMu, plotNu, 0)
		if err := replayPlots(plotFrom, plotTimeSeries, plotPhase, params, style); err != nil {
			logrus.Fatalf("Plot failed: %v", err)
		}
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotFrom, "from", "result.csv", "CSV series written by the run command")
	plotCmd.Flags().StringVar(&plotTimeSeries, "timeseries-plot", "example_1.png", "Time-series plot output")
	plotCmd.Flags().StringVar(&plotPhase, "phase-plot", "conflict_1.png", "Phase-plane plot output")
	plotCmd.Flags().StringVar(&plotPhaseAxes, "phase-axes", string(chart.PhaseSusceptibleInfected), "Phase-plane axes: susceptible-infected or reference")
	plotCmd.Flags().Float64Var(&plotBeta, "beta", 0, "Infection rate shown in the title")
	plotCmd.Flags().Float64Var(&plotGamma, "gamma", 0, "Recovery rate shown in the title")
	plotCmd.Flags().Float64Var(&plotMu, "mu", 0, "Birth rate shown in the title")
	plotCmd.Flags().Float64Var(&plotNu, "nu", 0, "Death rate shown in the title")
}
