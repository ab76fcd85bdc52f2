package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sir-sim/sir-sim/sim"
)

// Scenario describes one preset in a scenario file. Omitted keys take the
// simulator defaults (sim.DefaultConfig).
type Scenario struct {
	Steps       *int     `yaml:"steps"`
	Susceptible *float64 `yaml:"susceptible"`
	Infected    *float64 `yaml:"infected"`
	Resistant   *float64 `yaml:"resistant"`
	Beta        *float64 `yaml:"beta"`
	Gamma       *float64 `yaml:"gamma"`
	Mu          *float64 `yaml:"mu"`
	Nu          *float64 `yaml:"nu"`
}

// ScenarioFile represents the full scenario YAML structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioFile struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// LoadScenarioFile parses a scenario YAML file. Unknown keys are errors.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var file ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no scenarios", path)
	}
	return &file, nil
}

// Names returns the scenario names in sorted order.
func (f *ScenarioFile) Names() []string {
	names := make([]string, 0, len(f.Scenarios))
	for name := range f.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named scenario as a Config. An empty name is accepted
// only when the file holds exactly one scenario.
func (f *ScenarioFile) Lookup(name string) (sim.Config, error) {
	if name == "" {
		if len(f.Scenarios) != 1 {
			return sim.Config{}, fmt.Errorf("scenario name required; available: %s", strings.Join(f.Names(), ", "))
		}
		name = f.Names()[0]
	}
	sc, ok := f.Scenarios[name]
	if !ok {
		return sim.Config{}, fmt.Errorf("unknown scenario %q; available: %s", name, strings.Join(f.Names(), ", "))
	}
	return sc.Config(), nil
}

// Config applies the scenario on top of sim.DefaultConfig.
func (s Scenario) Config() sim.Config {
	cfg := sim.DefaultConfig()
	setInt(&cfg.StepCount, s.Steps)
	setFloat(&cfg.Initial.Susceptible, s.Susceptible)
	setFloat(&cfg.Initial.Infected, s.Infected)
	setFloat(&cfg.Initial.Resistant, s.Resistant)
	setFloat(&cfg.InfectionRate, s.Beta)
	setFloat(&cfg.RecoveryRate, s.Gamma)
	setFloat(&cfg.BirthRate, s.Mu)
	setFloat(&cfg.DeathRate, s.Nu)
	return cfg
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
