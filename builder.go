// Package stateless provides a generic finite state machine engine with a
// builder-sealed configuration phase. A Builder is created over a finite
// state domain, states are configured through shared StateConfig handles
// (transitions, entry/exit actions, internal transitions), and Build seals
// the configuration into an executable Machine that shares a caller-supplied
// context object with every callback. It is built with types and utilities
// from the github.com/enetx/g library.
package stateless

import (
	"fmt"

	"github.com/enetx/g"
)

// Builder is the configuration-phase half of the engine. It eagerly creates
// one state representation per value of the declared domain, so every state
// is addressable before the caller touches it, and is consumed by Build.
type Builder[S, T comparable, O any] struct {
	initial         S
	domain          g.Slice[S]
	states          g.Map[S, *stateRepresentation[S, T, O]]
	transitionEvent *TransitionEventHandler[S, T]
	built           bool
}

// NewBuilder creates a Builder with the given initial state and state
// domain. The domain must enumerate every value the machine can ever be in;
// a representation is created for each up front, and Permit destinations are
// checked against it at Build time. The initial state is added to the domain
// if the caller left it out.
func NewBuilder[S, T comparable, O any](initial S, domain []S) *Builder[S, T, O] {
	b := &Builder[S, T, O]{
		initial:         initial,
		domain:          g.NewSlice[S](),
		states:          g.NewMap[S, *stateRepresentation[S, T, O]](),
		transitionEvent: NewTransitionEventHandler[S, T](),
	}

	for _, state := range domain {
		b.addState(state)
	}

	b.addState(initial)

	return b
}

func (b *Builder[S, T, O]) addState(state S) {
	if b.states.Contains(state) {
		return
	}

	b.domain.Push(state)
	b.states.Set(state, newStateRepresentation[S, T, O](state))
}

// Config returns a new configuration handle for state. Handles for the same
// state share one representation; mutations through any handle are visible
// through all. Every handle must be released before Build. Config panics if
// state is outside the declared domain or the builder was already consumed.
func (b *Builder[S, T, O]) Config(state S) *StateConfig[S, T, O] {
	b.usable()

	rep := b.states.Get(state)
	if rep.IsNone() {
		panic(fmt.Sprintf("stateless: state %v is not in the declared domain", state))
	}

	return newStateConfig(rep.Some())
}

// Configure acquires a handle for state, runs fn with it, and releases it.
// This is the scoped counterpart to Config for the common case where the
// handle does not need to outlive the configuration block.
func (b *Builder[S, T, O]) Configure(state S, fn func(*StateConfig[S, T, O])) *Builder[S, T, O] {
	config := b.Config(state)
	defer config.Release()

	fn(config)

	return b
}

// OnTransitioned appends a global listener fired after every successful
// firing on the built machine, whether or not the state changed.
func (b *Builder[S, T, O]) OnTransitioned(f Listener[S, T]) *Builder[S, T, O] {
	b.usable()
	b.transitionEvent.AddEvent(f)

	return b
}

// Build seals the configuration and produces the Machine, taking ownership
// of object as the machine's shared context.
//
// Sealing reclaims exclusive ownership of every state representation: if any
// StateConfig handle is still outstanding, Build fails with
// ErrConfigStillInUse for that state and the builder is left untouched, so
// the caller may release the handle and build again. Build also verifies
// that every Permit destination lies inside the declared domain, failing
// with ErrStateNotConfigured otherwise.
//
// On success the builder is consumed: the representation table moves into
// the machine and any further use of the builder panics.
func (b *Builder[S, T, O]) Build(object O) (*Machine[S, T, O], error) {
	b.usable()

	for state := range b.domain.Iter() {
		rep := b.states.Get(state).Some()
		if rep.handles > 0 {
			return nil, &ErrConfigStillInUse[S]{State: state}
		}

		for _, behaviour := range rep.behaviours.Iter() {
			if behaviour.kind == kindTransitioning && !b.states.Contains(behaviour.destination) {
				return nil, &ErrStateNotConfigured[S]{State: behaviour.destination}
			}
		}
	}

	machine := newMachine(b.initial, b.domain, b.states, newObject(object), b.transitionEvent)

	b.built = true
	b.states = nil
	b.domain = nil
	b.transitionEvent = nil

	return machine, nil
}

func (b *Builder[S, T, O]) usable() {
	if b.built {
		panic("stateless: use of Builder after Build")
	}
}
