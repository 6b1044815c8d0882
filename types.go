package stateless

// Action is a callback attached to a state. The engine invokes it with the
// Transition being executed and exclusive access to the machine's context
// object for the duration of this single invocation.
type Action[S, T comparable, O any] func(Transition[S, T], *O)

// Listener is a global callback invoked after every successful firing,
// whether or not the state changed.
type Listener[S, T comparable] func(Transition[S, T])
