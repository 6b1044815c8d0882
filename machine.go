package stateless

import (
	"fmt"

	"github.com/enetx/g"
)

// Machine is a sealed, executable state machine. It owns the closed table of
// state representations, the current state, the shared context object and
// the global transition listeners. The only way to obtain one is
// Builder.Build.
//
// Fire is strictly synchronous: one trigger is fully processed before the
// call returns. A Machine is not safe for concurrent use; serialize access
// externally or wrap it with AsSync.
type Machine[S, T comparable, O any] struct {
	current         S
	domain          g.Slice[S]
	states          g.Map[S, *stateRepresentation[S, T, O]]
	object          *Object[O]
	transitionEvent *TransitionEventHandler[S, T]
}

func newMachine[S, T comparable, O any](
	initial S,
	domain g.Slice[S],
	states g.Map[S, *stateRepresentation[S, T, O]],
	object *Object[O],
	transitionEvent *TransitionEventHandler[S, T],
) *Machine[S, T, O] {
	return &Machine[S, T, O]{
		current:         initial,
		domain:          domain,
		states:          states,
		object:          object,
		transitionEvent: transitionEvent,
	}
}

// State returns the current state.
func (m *Machine[S, T, O]) State() S { return m.current }

// Object returns the shared handle to the machine's context object. The
// handle stays valid for the machine's whole lifetime, so the caller can
// inspect results between firings or retain it beyond the machine.
func (m *Machine[S, T, O]) Object() *Object[O] { return m.object }

// Fire drives the machine with one trigger.
//
// The trigger is resolved against the current state's table before any side
// effect; if it is not permitted, Fire returns ErrTriggerNotPermitted and
// the state and context object are untouched. A transitioning trigger runs
// the source state's exit actions, updates the state, then runs the
// destination's entry actions, in that strict order. An internal trigger
// runs only the internal actions registered for it and leaves the state
// alone. Either way the global listeners run last, exactly once.
func (m *Machine[S, T, O]) Fire(trigger T) error {
	rep := m.representation(m.current)
	if rep == nil {
		return &ErrStateNotConfigured[S]{State: m.current}
	}

	behaviour, err := rep.behaviour(trigger)
	if err != nil {
		return err
	}

	transition := newTransition(m.current, trigger, behaviour.fire(m.current))

	switch behaviour.kind {
	case kindTransitioning:
		rep.exit(transition, m.object)
		m.current = transition.Destination
		m.representation(m.current).enter(transition, m.object)
	case kindInternal:
		rep.fireInternalActions(transition, m.object)
	}

	m.transitionEvent.FireEvents(transition)

	return nil
}

func (m *Machine[S, T, O]) representation(state S) *stateRepresentation[S, T, O] {
	if rep := m.states.Get(state); rep.IsSome() {
		return rep.Some()
	}

	return nil
}

// States returns the declared state domain in declaration order.
func (m *Machine[S, T, O]) States() g.Slice[S] {
	return m.domain.Clone()
}

// String implements fmt.Stringer.
func (m *Machine[S, T, O]) String() string {
	return fmt.Sprintf("StateMachine(state: %v)", m.current)
}
