package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sir-sim/sir-sim/sim"
)

var seriesNames = [3]string{"Susceptible", "Infected", "Resistant"}

// Title renders the four rates, e.g. "β = 0.05, γ = 0.01, μ = 1e-05, ν = 0.007".
func Title(p sim.ModelParameters) string {
	return fmt.Sprintf("β = %s, γ = %s, μ = %s, ν = %s",
		formatRate(p.InfectionRate), formatRate(p.RecoveryRate),
		formatRate(p.BirthRate), formatRate(p.DeathRate))
}

// TimeSeries plots all three compartments against time with a legend and
// the rate parameters as title.
func TimeSeries(res *sim.Result, style Style) (*plot.Plot, error) {
	if res == nil {
		return nil, sim.ErrResultNotAvailable
	}
	p := newPlot(style)
	p.Title.Text = Title(res.Parameters())
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Population"

	times := res.Times()
	columns := [3][]float64{res.Susceptible(), res.Infected(), res.Resistant()}
	for i, col := range columns {
		l, err := newLine(times, col, style.SeriesColors[i], style.LineWidth)
		if err != nil {
			return nil, fmt.Errorf("%s series: %w", seriesNames[i], err)
		}
		p.Add(l)
		p.Legend.Add(seriesNames[i], l)
	}
	p.Legend.Top = true
	if style.LegendFontSize > 0 {
		p.Legend.TextStyle.Font.Size = style.LegendFontSize
	}
	return p, nil
}

// PhasePlane plots one compartment against another according to style.PhaseAxes.
func PhasePlane(res *sim.Result, style Style) (*plot.Plot, error) {
	if res == nil {
		return nil, sim.ErrResultNotAvailable
	}
	axes, err := ParsePhaseAxes(string(style.PhaseAxes))
	if err != nil {
		return nil, err
	}

	p := newPlot(style)
	var xs, ys []float64
	switch axes {
	case PhaseReference:
		xs, ys = res.Infected(), res.Resistant()
		p.X.Label.Text = "Suspectible"
		p.Y.Label.Text = "Infected"
	default:
		xs, ys = res.Susceptible(), res.Infected()
		p.X.Label.Text = "Susceptible"
		p.Y.Label.Text = "Infected"
	}
	l, err := newLine(xs, ys, style.PhaseColor, style.LineWidth)
	if err != nil {
		return nil, fmt.Errorf("phase series: %w", err)
	}
	p.Add(l)
	return p, nil
}

// Render encodes p in the given format ("png", "svg", "pdf", ...).
func Render(p *plot.Plot, style Style, format string) ([]byte, error) {
	wt, err := p.WriterTo(style.Width, style.Height, format)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", format, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// SavePair renders the time-series and phase-plane plots and writes them to
// the two paths. Both images are rendered before either file is created, so a
// nil result or a rendering failure writes nothing.
func SavePair(timeSeriesPath, phasePath string, res *sim.Result, style Style) error {
	if res == nil {
		return sim.ErrResultNotAvailable
	}
	ts, err := TimeSeries(res, style)
	if err != nil {
		return err
	}
	ph, err := PhasePlane(res, style)
	if err != nil {
		return err
	}
	tsBytes, err := renderForPath(ts, style, timeSeriesPath)
	if err != nil {
		return err
	}
	phBytes, err := renderForPath(ph, style, phasePath)
	if err != nil {
		return err
	}
	if err := writeFile(timeSeriesPath, tsBytes); err != nil {
		return err
	}
	return writeFile(phasePath, phBytes)
}

// FormatFromPath derives the image format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", fmt.Errorf("cannot infer image format from %q: no extension", path)
	}
	return ext, nil
}

func renderForPath(p *plot.Plot, style Style, path string) ([]byte, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return Render(p, style, format)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logrus.Infof("Wrote plot %s (%d bytes)", path, len(data))
	return nil
}

func newPlot(style Style) *plot.Plot {
	p := plot.New()
	if style.Background != nil {
		p.BackgroundColor = style.Background
	}
	if style.TitleFontSize > 0 {
		p.Title.TextStyle.Font.Size = style.TitleFontSize
	}
	if style.ShowGrid {
		g := plotter.NewGrid()
		if style.GridColor != nil {
			g.Vertical.Color = style.GridColor
			g.Horizontal.Color = style.GridColor
		}
		p.Add(g)
	}
	return p
}

func newLine(xs, ys []float64, c color.Color, width vg.Length) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	if c != nil {
		l.LineStyle.Color = c
	}
	if width > 0 {
		l.LineStyle.Width = width
	}
	return l, nil
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
