// Package chart renders a simulation Result as a time-series plot and a
// phase-plane plot. All styling is passed explicitly through a Style value.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
)

// PhaseAxes selects which columns the phase-plane plot draws.
type PhaseAxes string

const (
	// PhaseSusceptibleInfected plots Infected (y) against Susceptible (x).
	PhaseSusceptibleInfected PhaseAxes = "susceptible-infected"
	// PhaseReference plots Resistant (y) against Infected (x) under the legacy
	// "Suspectible"/"Infected" axis labels, misspelling included.
	PhaseReference PhaseAxes = "reference"
)

// ParsePhaseAxes validates a phase-axes name.
func ParsePhaseAxes(s string) (PhaseAxes, error) {
	switch PhaseAxes(s) {
	case PhaseSusceptibleInfected, PhaseReference:
		return PhaseAxes(s), nil
	case "":
		return PhaseSusceptibleInfected, nil
	}
	return "", fmt.Errorf("unknown phase axes %q; valid: %s, %s", s, PhaseSusceptibleInfected, PhaseReference)
}

// Style holds dimensions, colors and text sizes for both plots.
type Style struct {
	Width          vg.Length
	Height         vg.Length
	Background     color.Color
	GridColor      color.Color
	ShowGrid       bool
	SeriesColors   [3]color.Color // Susceptible, Infected, Resistant
	PhaseColor     color.Color
	LineWidth      vg.Length
	TitleFontSize  vg.Length
	LegendFontSize vg.Length
	PhaseAxes      PhaseAxes
}

// DefaultStyle returns a 16x9 inch dark-grid theme with blue/red/green series.
func DefaultStyle() Style {
	return Style{
		Width:      16 * vg.Inch,
		Height:     9 * vg.Inch,
		Background: color.RGBA{R: 0xea, G: 0xea, B: 0xf2, A: 0xff},
		GridColor:  color.White,
		ShowGrid:   true,
		SeriesColors: [3]color.Color{
			color.RGBA{B: 0xff, A: 0xff},
			color.RGBA{R: 0xff, A: 0xff},
			color.RGBA{G: 0x80, A: 0xff},
		},
		PhaseColor:     color.RGBA{B: 0xff, A: 0xff},
		LineWidth:      vg.Points(1.5),
		TitleFontSize:  vg.Points(16),
		LegendFontSize: vg.Points(10),
		PhaseAxes:      PhaseSusceptibleInfected,
	}
}
