package stateless

// Transition describes a single firing event: the state it left, the trigger
// that caused it, and the state it arrived in. A fresh value is constructed
// for every firing and passed to actions and listeners; it is never retained
// by the engine.
type Transition[S, T comparable] struct {
	Source      S
	Destination S
	Trigger     T
}

func newTransition[S, T comparable](source S, trigger T, destination S) Transition[S, T] {
	return Transition[S, T]{Source: source, Destination: destination, Trigger: trigger}
}

// IsReentry reports whether the transition leaves and re-enters the same
// state. A reentry runs exit and entry actions; contrast with an internal
// trigger, which runs neither.
func (t Transition[S, T]) IsReentry() bool { return t.Source == t.Destination }
