package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_NilResult_NotAvailable(t *testing.T) {
	s, err := Summarize(nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrResultNotAvailable)
}

func TestSummarize_ConcreteScenario(t *testing.T) {
	res := mustRun(t, newTestConfig(3, 950, 50, 0, 0.05, 0.01, 0, 0))

	summary, err := Summarize(res)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Steps)
	assert.Equal(t, res.At(2), summary.Final)
	assert.Equal(t, 2, summary.PeakStep)
	assert.InDelta(t, 53.81415234375, summary.PeakInfected, 1e-9)
	assert.InDelta(t, 1000.0, summary.InitialPopulation, 1e-9)
	assert.InDelta(t, 0.0, summary.PopulationDrift, 1e-9)
	// recoveries over two integrated steps: 0.5 + 0.51875
	assert.InDelta(t, 1.01875, summary.CumulativeRecoveries, 1e-9)
	// infections over two integrated steps equal the drop in S
	assert.InDelta(t, 950-res.Final().Susceptible, summary.CumulativeInfections, 1e-9)
	assert.InDelta(t, 1-res.Final().Susceptible/950, summary.AttackRate, 1e-12)
}

func TestSummarize_SingleRow(t *testing.T) {
	res := mustRun(t, newTestConfig(1, 10, 5, 0, 0.5, 0.1, 0, 0))

	summary, err := Summarize(res)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.PeakStep)
	assert.Equal(t, 5.0, summary.PeakInfected)
	assert.Equal(t, 0.0, summary.CumulativeRecoveries)
	assert.Equal(t, 0.0, summary.CumulativeInfections)
	assert.Equal(t, 0.0, summary.AttackRate)
}

func TestSummarize_NoSusceptibles_AttackRateZero(t *testing.T) {
	res := mustRun(t, newTestConfig(10, 0, 50, 50, 0.5, 0.1, 0, 0))

	summary, err := Summarize(res)
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.AttackRate)
}

func TestSummary_Print(t *testing.T) {
	res := mustRun(t, DefaultConfig())
	summary, err := Summarize(res)
	require.NoError(t, err)

	var buf bytes.Buffer
	summary.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "=== SIR Simulation Summary ===")
	assert.Contains(t, out, "Peak Infected")
	assert.Contains(t, out, "Attack Rate")
}
