package stateless

import "github.com/enetx/g"

// TransitionEventHandler holds the global transition listeners. Listeners
// fire in registration order, exactly once per successful firing, regardless
// of whether the firing changed the state.
type TransitionEventHandler[S, T comparable] struct {
	events g.Slice[Listener[S, T]]
}

// NewTransitionEventHandler creates an empty handler.
func NewTransitionEventHandler[S, T comparable]() *TransitionEventHandler[S, T] {
	return &TransitionEventHandler[S, T]{events: g.NewSlice[Listener[S, T]]()}
}

// AddEvent appends a listener. Listeners accumulate; they never replace.
func (h *TransitionEventHandler[S, T]) AddEvent(f Listener[S, T]) {
	h.events.Push(f)
}

// FireEvents invokes every listener with the transition, in registration
// order.
func (h *TransitionEventHandler[S, T]) FireEvents(transition Transition[S, T]) {
	for event := range h.events.Iter() {
		event(transition)
	}
}

// Len returns the number of registered listeners.
func (h *TransitionEventHandler[S, T]) Len() int {
	return int(h.events.Len())
}
