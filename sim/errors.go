package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidConfiguration indicates a configuration the simulator cannot run (StepCount < 1).
	ErrInvalidConfiguration = errors.New("sim: invalid configuration")

	// ErrDivisionByZero indicates the total population reached zero before a step.
	ErrDivisionByZero = errors.New("sim: division by zero (total population is 0)")

	// ErrResultNotAvailable indicates results were requested before a successful Run.
	ErrResultNotAvailable = errors.New("sim: model has not run, call Run first")
)

// StepError wraps a failure of a single integration step with its context.
type StepError struct {
	Step       int              // index of the step that could not be computed
	Population float64          // total population entering the step
	State      CompartmentState // last successfully computed state (time Step-1)
	Wrapped    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (N=%g): %v", e.Step, e.Population, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
