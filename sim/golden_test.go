package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sir-sim/sir-sim/sim/internal/testutil"
)

// TestSimulator_GoldenDataset replays every configuration in
// testdata/goldendataset.json and compares checkpoints and peak statistics.
func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)
	require.NotEmpty(t, dataset.Tests)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := NewConfig(
				NewModelParameters(tc.Beta, tc.Gamma, tc.Mu, tc.Nu, tc.Steps),
				CompartmentState{Susceptible: tc.Susceptible, Infected: tc.Infected, Resistant: tc.Resistant},
			)
			res, err := Simulate(cfg)
			require.NoError(t, err)
			require.Equal(t, tc.Steps, res.Len())

			const relTol = 1e-9
			for _, cp := range tc.Checkpoints {
				got := res.At(cp.Time)
				testutil.AssertFloat64Equal(t, fmt.Sprintf("S[%d]", cp.Time), cp.Susceptible, got.Susceptible, relTol)
				testutil.AssertFloat64Equal(t, fmt.Sprintf("I[%d]", cp.Time), cp.Infected, got.Infected, relTol)
				testutil.AssertFloat64Equal(t, fmt.Sprintf("R[%d]", cp.Time), cp.Resistant, got.Resistant, relTol)
			}

			summary, err := Summarize(res)
			require.NoError(t, err)
			testutil.AssertFloat64Equal(t, "peak infected", tc.PeakInfected, summary.PeakInfected, relTol)
			if summary.PeakStep != tc.PeakStep {
				t.Errorf("peak step: got %d, want %d", summary.PeakStep, tc.PeakStep)
			}
		})
	}
}
