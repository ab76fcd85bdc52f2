package sim

// Result is the time series of one run: one CompartmentState per time index
// 0..StepCount-1. It is not modified after Run returns it.
type Result struct {
	params ModelParameters
	states []CompartmentState
}

func newResult(params ModelParameters, states []CompartmentState) *Result {
	return &Result{params: params, states: states}
}

// NewResult builds a Result from an existing series, e.g. one read back from CSV.
// StepCount in params is overwritten with len(states).
func NewResult(params ModelParameters, states []CompartmentState) *Result {
	params.StepCount = len(states)
	cp := make([]CompartmentState, len(states))
	copy(cp, states)
	return newResult(params, cp)
}

// Parameters returns the parameters that produced the series.
func (r *Result) Parameters() ModelParameters { return r.params }

// Len returns the number of time points.
func (r *Result) Len() int { return len(r.states) }

// At returns the state at time index t.
func (r *Result) At(t int) CompartmentState { return r.states[t] }

// Time returns the time value of row t. Time is the step index.
func (r *Result) Time(t int) int { return t }

// Final returns the last state of the series.
func (r *Result) Final() CompartmentState { return r.states[len(r.states)-1] }

// Times returns 0..Len()-1 as float64, ready for plotting.
func (r *Result) Times() []float64 {
	out := make([]float64, len(r.states))
	for t := range out {
		out[t] = float64(t)
	}
	return out
}

// States returns a copy of the series.
func (r *Result) States() []CompartmentState {
	out := make([]CompartmentState, len(r.states))
	copy(out, r.states)
	return out
}

// Susceptible returns the susceptible column.
func (r *Result) Susceptible() []float64 {
	return r.column(func(s CompartmentState) float64 { return s.Susceptible })
}

// Infected returns the infected column.
func (r *Result) Infected() []float64 {
	return r.column(func(s CompartmentState) float64 { return s.Infected })
}

// Resistant returns the resistant column.
func (r *Result) Resistant() []float64 {
	return r.column(func(s CompartmentState) float64 { return s.Resistant })
}

// Totals returns S+I+R per time index.
func (r *Result) Totals() []float64 {
	return r.column(CompartmentState.Total)
}

func (r *Result) column(f func(CompartmentState) float64) []float64 {
	out := make([]float64, len(r.states))
	for t, s := range r.states {
		out[t] = f(s)
	}
	return out
}
