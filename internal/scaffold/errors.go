package scaffold

import "fmt"

// CollisionError is returned when the component directory already exists.
// It is an expected outcome: the CLI reports it and exits successfully.
type CollisionError struct {
	Dir string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("Looks like this component already exists! There's already a component at %s.\nPlease delete this directory and try again.", e.Dir)
}

// StepError records the pipeline state that failed.
type StepError struct {
	State State
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.State, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
