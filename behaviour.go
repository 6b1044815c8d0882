package stateless

// behaviourKind is the closed set of things a trigger can do. The firing
// protocol branches on it exhaustively.
type behaviourKind uint8

const (
	// kindTransitioning moves the machine to an explicit destination state.
	kindTransitioning behaviourKind = iota
	// kindInternal runs the trigger's internal actions and stays in place.
	kindInternal
)

// triggerBehaviour is a plain value; resolving one copies it out of the
// table, so the table is not touched while actions run.
type triggerBehaviour[S comparable] struct {
	kind        behaviourKind
	destination S
}

func transitioningBehaviour[S comparable](destination S) triggerBehaviour[S] {
	return triggerBehaviour[S]{kind: kindTransitioning, destination: destination}
}

func internalBehaviour[S comparable]() triggerBehaviour[S] {
	return triggerBehaviour[S]{kind: kindInternal}
}

// fire computes the destination of a firing from source. Internal triggers
// stay where they are.
func (b triggerBehaviour[S]) fire(source S) S {
	if b.kind == kindInternal {
		return source
	}

	return b.destination
}
