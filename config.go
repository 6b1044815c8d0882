package stateless

// StateConfig is a shared configuration handle for one state's
// representation. Handles are handed out by Builder.Config; any number may
// exist for the same state at once, and mutations made through one are
// visible through all of them.
//
// A handle must be given back with Release before Build can seal the
// machine. Using a handle after Release is a programming error and panics.
type StateConfig[S, T comparable, O any] struct {
	rep      *stateRepresentation[S, T, O]
	released bool
}

func newStateConfig[S, T comparable, O any](rep *stateRepresentation[S, T, O]) *StateConfig[S, T, O] {
	rep.handles++
	return &StateConfig[S, T, O]{rep: rep}
}

func (c *StateConfig[S, T, O]) live() {
	if c.released {
		panic("stateless: use of released StateConfig")
	}
}

// State returns the state this handle configures.
func (c *StateConfig[S, T, O]) State() S {
	c.live()
	return c.rep.state
}

// Permit registers trigger as a transition to destination. Registering the
// same trigger again overwrites the earlier behaviour. A destination equal
// to the configured state is a reentry: firing it runs both exit and entry
// actions. Use InternalTransition to stay in place without them.
func (c *StateConfig[S, T, O]) Permit(trigger T, destination S) *StateConfig[S, T, O] {
	c.live()
	c.rep.addTriggerBehaviour(trigger, transitioningBehaviour(destination))

	return c
}

// InternalTransition registers trigger as an internal transition and appends
// action to the trigger's internal action list. Firing the trigger runs the
// action without leaving the state: no exit, no entry, no state change.
// Actions accumulate across calls for the same trigger.
func (c *StateConfig[S, T, O]) InternalTransition(trigger T, action Action[S, T, O]) *StateConfig[S, T, O] {
	c.live()
	c.rep.addTriggerBehaviour(trigger, internalBehaviour[S]())
	c.rep.addInternalAction(trigger, action)

	return c
}

// OnEntry appends an entry action, run whenever a transitioning firing
// arrives in this state.
func (c *StateConfig[S, T, O]) OnEntry(f Action[S, T, O]) *StateConfig[S, T, O] {
	c.live()
	c.rep.addEntryAction(f)

	return c
}

// OnExit appends an exit action, run whenever a transitioning firing leaves
// this state.
func (c *StateConfig[S, T, O]) OnExit(f Action[S, T, O]) *StateConfig[S, T, O] {
	c.live()
	c.rep.addExitAction(f)

	return c
}

// Release gives the handle back to the builder. It is idempotent; every
// other method panics afterwards.
func (c *StateConfig[S, T, O]) Release() {
	if c.released {
		return
	}

	c.released = true
	c.rep.handles--
}
