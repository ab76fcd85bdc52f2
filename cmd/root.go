package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sir-sim/sir-sim/sim"
	"github.com/sir-sim/sir-sim/sim/chart"
	"github.com/sir-sim/sir-sim/sim/export"
)

var (
	// CLI flags shared by every subcommand
	logLevel string // Log verbosity level

	// CLI flags for the run command
	runModel           modelFlags
	configPath         string // Scenario YAML file
	scenarioName       string // Scenario to pick from configPath
	timeSeriesPlotPath string // Output path of the time-series plot
	phasePlotPath      string // Output path of the phase-plane plot
	csvPath            string // Output path of the CSV export ("" disables)
	phaseAxes          string // Phase-plane column selection
	printSummary       bool   // Print run summary to stdout
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sir-sim",
	Short: "Discrete-time SIR epidemic simulator",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// runOutputs names the artifacts a run should produce. Empty paths are skipped.
type runOutputs struct {
	CSVPath        string
	TimeSeriesPath string
	PhasePath      string
	Style          chart.Style
	Summary        bool
}

// runSimulation runs cfg once and writes the requested artifacts.
func runSimulation(cfg sim.Config, out runOutputs, stdout io.Writer) (*sim.Result, error) {
	if (out.TimeSeriesPath == "") != (out.PhasePath == "") {
		return nil, fmt.Errorf("--timeseries-plot and --phase-plot must both be set or both be empty")
	}

	s, err := sim.NewSimulator(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := s.Run(); err != nil {
		return nil, err
	}
	res, err := s.Result()
	if err != nil {
		return nil, err
	}

	if out.CSVPath != "" {
		if err := export.SaveCSV(out.CSVPath, res); err != nil {
			return nil, err
		}
	}
	if out.TimeSeriesPath != "" {
		if err := chart.SavePair(out.TimeSeriesPath, out.PhasePath, res, out.Style); err != nil {
			return nil, err
		}
	}
	if out.Summary {
		summary, err := sim.Summarize(res)
		if err != nil {
			return nil, err
		}
		summary.Print(stdout)
	}
	return res, nil
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the SIR simulation and write plots and CSV",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveRunConfig(cmd, &runModel, configPath, scenarioName)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		axes, err := chart.ParsePhaseAxes(phaseAxes)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		style := chart.DefaultStyle()
		style.PhaseAxes = axes

		logrus.Infof("Starting simulation: steps=%d S0=%g I0=%g R0=%g beta=%g gamma=%g mu=%g nu=%g",
			cfg.StepCount, cfg.Initial.Susceptible, cfg.Initial.Infected, cfg.Initial.Resistant,
			cfg.InfectionRate, cfg.RecoveryRate, cfg.BirthRate, cfg.DeathRate)

		out := runOutputs{
			CSVPath:        csvPath,
			TimeSeriesPath: timeSeriesPlotPath,
			PhasePath:      phasePlotPath,
			Style:          style,
			Summary:        printSummary,
		}
		if _, err := runSimulation(cfg, out, os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runModel.register(runCmd)
	runCmd.Flags().StringVar(&configPath, "config", "", "Scenario YAML file; explicitly set model flags override it")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Scenario name inside --config (optional when the file holds one scenario)")
	runCmd.Flags().StringVar(&timeSeriesPlotPath, "timeseries-plot", "example_1.png", "Time-series plot output (format from extension; empty disables plots)")
	runCmd.Flags().StringVar(&phasePlotPath, "phase-plot", "conflict_1.png", "Phase-plane plot output (format from extension; empty disables plots)")
	runCmd.Flags().StringVar(&csvPath, "csv", "result.csv", "CSV export path (empty disables)")
	runCmd.Flags().StringVar(&phaseAxes, "phase-axes", string(chart.PhaseSusceptibleInfected), "Phase-plane axes: susceptible-infected or reference")
	runCmd.Flags().BoolVar(&printSummary, "summary", false, "Print a run summary to stdout")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(sweepCmd)
}
