package sim

import "fmt"

// CompartmentState holds the sub-population sizes at one time step.
// Values are not clamped; extreme parameters can drive them negative.
type CompartmentState struct {
	Susceptible float64
	Infected    float64
	Resistant   float64
}

// Total returns S + I + R.
func (s CompartmentState) Total() float64 {
	return s.Susceptible + s.Infected + s.Resistant
}

func (s CompartmentState) String() string {
	return fmt.Sprintf("S=%g I=%g R=%g", s.Susceptible, s.Infected, s.Resistant)
}
