package stateless

import (
	"errors"
	"fmt"
)

// ErrStateNotConfigured is returned when a state has no representation in the
// machine's table. Construction guarantees one representation per declared
// state, so this error only surfaces for defensive lookups, most commonly a
// Permit destination or a restored snapshot state that lies outside the
// declared domain.
type ErrStateNotConfigured[S comparable] struct {
	State S
}

func (e *ErrStateNotConfigured[S]) Error() string {
	return fmt.Sprintf("stateless: state %v not configured", e.State)
}

// ErrTriggerNotPermitted is returned by Fire when the current state's table
// has no behaviour for the given trigger. It is the one error callers are
// expected to routinely handle. The machine's state and context object are
// left completely unmodified.
type ErrTriggerNotPermitted[S, T comparable] struct {
	State   S
	Trigger T
}

func (e *ErrTriggerNotPermitted[S, T]) Error() string {
	return fmt.Sprintf("stateless: trigger %v not permitted from state %v", e.Trigger, e.State)
}

// ErrConfigStillInUse is returned by Build when a StateConfig handle for
// State has not been released. It signals a caller bug: a handle obtained
// via Config was retained past sealing. Release the handle and Build again.
type ErrConfigStillInUse[S comparable] struct {
	State S
}

func (e *ErrConfigStillInUse[S]) Error() string {
	return fmt.Sprintf("stateless: StateConfig for state %v still in use", e.State)
}

// ErrUnknown is a reserved fallback; normal operation never produces it.
var ErrUnknown = errors.New("stateless: unknown state machine error")
