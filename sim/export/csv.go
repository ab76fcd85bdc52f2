// Package export serializes a simulation Result as delimited text and reads it back.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/sir-sim/sir-sim/sim"
)

// Header is the exact column layout of an exported series.
var Header = []string{"Time", "Susceptible", "Infected", "Resistant"}

// WriteCSV writes res to w, one row per time step after the header.
func WriteCSV(w io.Writer, res *sim.Result) error {
	if res == nil {
		return sim.ErrResultNotAvailable
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	row := make([]string, len(Header))
	for t := 0; t < res.Len(); t++ {
		s := res.At(t)
		row[0] = strconv.Itoa(res.Time(t))
		row[1] = formatFloat(s.Susceptible)
		row[2] = formatFloat(s.Infected)
		row[3] = formatFloat(s.Resistant)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", t, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes res to path. The series is encoded in memory first, so a nil
// result or an encoding error leaves no file behind.
func SaveCSV(path string, res *sim.Result) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, res); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logrus.Infof("Wrote %d rows to %s", res.Len(), path)
	return nil
}

// ReadCSV parses a series written by WriteCSV. The header must match exactly
// and times must run 0..n-1. Rates are unknown to the file, so the returned
// Result carries zero rates unless the caller supplies them via params.
func ReadCSV(r io.Reader, params sim.ModelParameters) (*sim.Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing csv: missing header")
	}
	for i, col := range Header {
		if records[0][i] != col {
			return nil, fmt.Errorf("parsing csv: column %d is %q, want %q", i, records[0][i], col)
		}
	}
	rows := records[1:]
	if len(rows) == 0 {
		return nil, fmt.Errorf("parsing csv: no data rows")
	}

	states := make([]sim.CompartmentState, len(rows))
	for t, rec := range rows {
		tm, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid time %q: %w", t+1, rec[0], err)
		}
		if tm != t {
			return nil, fmt.Errorf("row %d: time %d out of sequence, want %d", t+1, tm, t)
		}
		var vals [3]float64
		for j := range vals {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid %s %q: %w", t+1, Header[j+1], rec[j+1], err)
			}
			vals[j] = v
		}
		states[t] = sim.CompartmentState{Susceptible: vals[0], Infected: vals[1], Resistant: vals[2]}
	}
	return sim.NewResult(params, states), nil
}

// LoadCSV reads a series from path. See ReadCSV.
func LoadCSV(path string, params sim.ModelParameters) (*sim.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, params)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
