package stateless

import "github.com/enetx/g"

// stateRepresentation is the per-state rule table: the behaviour registered
// for each permitted trigger plus the ordered entry, exit and internal action
// lists. One exists for every state in the declared domain, created eagerly
// by the builder, whether or not the caller ever configures it.
type stateRepresentation[S, T comparable, O any] struct {
	state           S
	behaviours      g.Map[T, triggerBehaviour[S]]
	entryActions    g.Slice[Action[S, T, O]]
	exitActions     g.Slice[Action[S, T, O]]
	internalActions g.Map[T, g.Slice[Action[S, T, O]]]

	// handles counts outstanding StateConfig references; Build refuses to
	// seal while any remain.
	handles int
}

func newStateRepresentation[S, T comparable, O any](state S) *stateRepresentation[S, T, O] {
	return &stateRepresentation[S, T, O]{
		state:           state,
		behaviours:      g.NewMap[T, triggerBehaviour[S]](),
		internalActions: g.NewMap[T, g.Slice[Action[S, T, O]]](),
	}
}

// addTriggerBehaviour overwrites any behaviour previously registered for the
// trigger. Last registration wins; there is no multi-behaviour ambiguity.
func (r *stateRepresentation[S, T, O]) addTriggerBehaviour(trigger T, behaviour triggerBehaviour[S]) {
	r.behaviours.Set(trigger, behaviour)
}

func (r *stateRepresentation[S, T, O]) addEntryAction(f Action[S, T, O]) {
	r.entryActions.Push(f)
}

func (r *stateRepresentation[S, T, O]) addExitAction(f Action[S, T, O]) {
	r.exitActions.Push(f)
}

// addInternalAction appends f to the action list of the given trigger.
// Internal actions are scoped per trigger: they run only when that trigger
// is fired from this state, never on arrival into it.
func (r *stateRepresentation[S, T, O]) addInternalAction(trigger T, f Action[S, T, O]) {
	r.internalActions.Entry(trigger).
		AndModify(func(s *g.Slice[Action[S, T, O]]) { s.Push(f) }).
		OrInsert(g.SliceOf(f))
}

// behaviour resolves the trigger against this state's table. This is the
// sole legality check in the firing protocol and happens before any side
// effect.
func (r *stateRepresentation[S, T, O]) behaviour(trigger T) (triggerBehaviour[S], error) {
	if b := r.behaviours.Get(trigger); b.IsSome() {
		return b.Some(), nil
	}

	return triggerBehaviour[S]{}, &ErrTriggerNotPermitted[S, T]{State: r.state, Trigger: trigger}
}

// enter runs the entry actions in registration order. The object lock is
// acquired once per action and released before the next one runs.
func (r *stateRepresentation[S, T, O]) enter(transition Transition[S, T], object *Object[O]) {
	for action := range r.entryActions.Iter() {
		object.With(func(o *O) { action(transition, o) })
	}
}

// exit runs the exit actions in registration order, same locking discipline
// as enter.
func (r *stateRepresentation[S, T, O]) exit(transition Transition[S, T], object *Object[O]) {
	for action := range r.exitActions.Iter() {
		object.With(func(o *O) { action(transition, o) })
	}
}

// fireInternalActions runs the internal actions registered for the
// transition's trigger, same locking discipline as enter.
func (r *stateRepresentation[S, T, O]) fireInternalActions(transition Transition[S, T], object *Object[O]) {
	actions := r.internalActions.Get(transition.Trigger)
	if actions.IsNone() {
		return
	}

	for action := range actions.Some().Iter() {
		object.With(func(o *O) { action(transition, o) })
	}
}
