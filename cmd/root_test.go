package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/sir-sim/sir-sim/sim"
	"github.com/sir-sim/sir-sim/sim/chart"
	"github.com/sir-sim/sir-sim/sim/export"
)

func testStyle() chart.Style {
	s := chart.DefaultStyle()
	s.Width = 4 * vg.Inch
	s.Height = 3 * vg.Inch
	return s
}

// newModelCmd returns a throwaway command with model flags bound to m.
func newModelCmd(m *modelFlags) *cobra.Command {
	c := &cobra.Command{Use: "test"}
	m.register(c)
	return c
}

func TestReferenceConfig_LiteralParameterSet(t *testing.T) {
	cfg := referenceConfig()
	assert.Equal(t, 1000, cfg.StepCount)
	assert.Equal(t, sim.CompartmentState{Susceptible: 10000, Infected: 100, Resistant: 5}, cfg.Initial)
	assert.Equal(t, 0.05, cfg.InfectionRate)
	assert.Equal(t, 0.01, cfg.RecoveryRate)
	assert.Equal(t, 0.00001, cfg.BirthRate)
	assert.Equal(t, 0.007, cfg.DeathRate)
}

func TestModelFlags_DefaultsAreReferenceConfig(t *testing.T) {
	var m modelFlags
	newModelCmd(&m)
	assert.Equal(t, referenceConfig(), m.config())
}

func TestResolveRunConfig_FlagsOnly(t *testing.T) {
	var m modelFlags
	c := newModelCmd(&m)
	require.NoError(t, c.Flags().Set(flagSteps, "20"))
	require.NoError(t, c.Flags().Set(flagBeta, "0.3"))

	cfg, err := resolveRunConfig(c, &m, "", "")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.StepCount)
	assert.Equal(t, 0.3, cfg.InfectionRate)
	assert.Equal(t, 10000.0, cfg.Initial.Susceptible)
}

func TestResolveRunConfig_ZeroSteps_InvalidConfiguration(t *testing.T) {
	var m modelFlags
	c := newModelCmd(&m)
	require.NoError(t, c.Flags().Set(flagSteps, "0"))

	_, err := resolveRunConfig(c, &m, "", "")
	assert.ErrorIs(t, err, sim.ErrInvalidConfiguration)
}

func TestResolveRunConfig_ScenarioWithExplicitOverride(t *testing.T) {
	// GIVEN a scenario file and an explicitly set --gamma
	path := writeScenarioFile(t, `
version: "1"
scenarios:
  small:
    steps: 30
    susceptible: 90
    infected: 10
    beta: 0.4
`)
	var m modelFlags
	c := newModelCmd(&m)
	require.NoError(t, c.Flags().Set(flagGamma, "0.2"))

	// WHEN the run configuration is resolved
	cfg, err := resolveRunConfig(c, &m, path, "small")
	require.NoError(t, err)

	// THEN scenario values win over flag defaults
	assert.Equal(t, 30, cfg.StepCount)
	assert.Equal(t, 90.0, cfg.Initial.Susceptible)
	assert.Equal(t, 0.4, cfg.InfectionRate)
	// AND the explicit flag wins over the scenario
	assert.Equal(t, 0.2, cfg.RecoveryRate)
	// AND omitted keys fall back to simulator defaults, not CLI defaults
	assert.Equal(t, sim.DefaultResistant, cfg.Initial.Resistant)
	assert.Equal(t, sim.DefaultBirthRate, cfg.BirthRate)
	assert.Equal(t, sim.DefaultDeathRate, cfg.DeathRate)
}

func TestRunSimulation_WritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	cfg := referenceConfig()
	cfg.StepCount = 100
	out := runOutputs{
		CSVPath:        filepath.Join(dir, "result.csv"),
		TimeSeriesPath: filepath.Join(dir, "example_1.png"),
		PhasePath:      filepath.Join(dir, "conflict_1.png"),
		Style:          testStyle(),
		Summary:        true,
	}
	var stdout bytes.Buffer

	res, err := runSimulation(cfg, out, &stdout)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Len())

	for _, path := range []string{out.CSVPath, out.TimeSeriesPath, out.PhasePath} {
		_, err := os.Stat(path)
		assert.NoError(t, err, "%s must exist", path)
	}
	back, err := export.LoadCSV(out.CSVPath, res.Parameters())
	require.NoError(t, err)
	assert.Equal(t, res.States(), back.States())
	assert.Contains(t, stdout.String(), "SIR Simulation Summary")
}

func TestRunSimulation_DivisionByZero_NoArtifacts(t *testing.T) {
	dir := t.TempDir()
	cfg := sim.NewConfig(sim.NewModelParameters(0.05, 0.01, 0, 0, 10), sim.CompartmentState{})
	out := runOutputs{
		CSVPath:        filepath.Join(dir, "result.csv"),
		TimeSeriesPath: filepath.Join(dir, "a.png"),
		PhasePath:      filepath.Join(dir, "b.png"),
		Style:          testStyle(),
	}

	_, err := runSimulation(cfg, out, &bytes.Buffer{})

	require.ErrorIs(t, err, sim.ErrDivisionByZero)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunSimulation_OnePlotPathOnly_Rejected(t *testing.T) {
	out := runOutputs{TimeSeriesPath: filepath.Join(t.TempDir(), "a.png"), Style: testStyle()}
	_, err := runSimulation(referenceConfig(), out, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both")
}

func TestReplayPlots_FromExportedCSV(t *testing.T) {
	dir := t.TempDir()
	cfg := referenceConfig()
	cfg.StepCount = 50
	res, err := sim.Simulate(cfg)
	require.NoError(t, err)
	csvPath := filepath.Join(dir, "result.csv")
	require.NoError(t, export.SaveCSV(csvPath, res))

	ts := filepath.Join(dir, "ts.svg")
	ph := filepath.Join(dir, "ph.svg")
	require.NoError(t, replayPlots(csvPath, ts, ph, res.Parameters(), testStyle()))

	data, err := os.ReadFile(ts)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<svg"))
}

func TestReplayPlots_MissingCSV_NothingWritten(t *testing.T) {
	dir := t.TempDir()
	ts := filepath.Join(dir, "ts.png")
	err := replayPlots(filepath.Join(dir, "missing.csv"), ts, filepath.Join(dir, "ph.png"), sim.ModelParameters{}, testStyle())
	require.Error(t, err)
	_, statErr := os.Stat(ts)
	assert.True(t, os.IsNotExist(statErr))
}
