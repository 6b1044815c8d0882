package stateless_test

import (
	"errors"
	"testing"

	"github.com/enetx/stateless"
)

func TestBuilder_EntryIntoUnconfiguredStateWorks(t *testing.T) {
	// A state the caller never configured is still a valid destination;
	// the builder created its representation up front.
	builder := stateless.NewBuilder[state, trigger, int](stateOff, onOffDomain)
	builder.Configure(stateOff, func(cfg *stateless.StateConfig[state, trigger, int]) {
		cfg.Permit(triggerSwitch, stateOn)
	})

	machine, err := builder.Build(0)
	assertNoError(t, err)

	assertEqual(t, machine.State(), stateOff)
	assertNoError(t, machine.Fire(triggerSwitch))
	assertEqual(t, machine.State(), stateOn)
}

func TestBuilder_InitialStateAddedToDomain(t *testing.T) {
	builder := stateless.NewBuilder[state, trigger, int]("Extra", onOffDomain)

	machine, err := builder.Build(0)
	assertNoError(t, err)

	assertEqual(t, machine.State(), "Extra")
	assertEqual(t, machine.States().Len(), 3)
}

func TestBuilder_SealingFailsWhileHandleRetained(t *testing.T) {
	builder := stateless.NewBuilder[state, trigger, int](stateOff, onOffDomain)

	cfg := builder.Config(stateOff)
	cfg.Permit(triggerSwitch, stateOn)

	// The handle is still alive: sealing must refuse.
	_, err := builder.Build(0)
	assertError(t, err)

	var stillInUse *stateless.ErrConfigStillInUse[state]
	assertTrue(t, errors.As(err, &stillInUse))
	assertEqual(t, stillInUse.State, stateOff)

	// Releasing the handle unblocks sealing; the configuration made
	// through it survives.
	cfg.Release()

	machine, err := builder.Build(0)
	assertNoError(t, err)
	assertNoError(t, machine.Fire(triggerSwitch))
	assertEqual(t, machine.State(), stateOn)
}

func TestBuilder_SealingReportsEveryOutstandingHandleState(t *testing.T) {
	builder := stateless.NewBuilder[state, trigger, int](stateOff, onOffDomain)

	first := builder.Config(stateOff)
	second := builder.Config(stateOff)
	third := builder.Config(stateOn)

	first.Release()

	// stateOff still has one live handle; it is reported first because
	// sealing walks the domain in declaration order.
	_, err := builder.Build(0)
	var stillInUse *stateless.ErrConfigStillInUse[state]
	assertTrue(t, errors.As(err, &stillInUse))
	assertEqual(t, stillInUse.State, stateOff)

	second.Release()

	_, err = builder.Build(0)
	assertTrue(t, errors.As(err, &stillInUse))
	assertEqual(t, stillInUse.State, stateOn)

	third.Release()

	_, err = builder.Build(0)
	assertNoError(t, err)
}

func TestBuilder_SharedHandlesAliasOneRepresentation(t *testing.T) {
	builder := stateless.NewBuilder[state, trigger, int](stateOff, onOffDomain)

	first := builder.Config(stateOff)
	second := builder.Config(stateOff)

	first.Permit(triggerSwitch, stateOn)
	second.OnExit(func(_ stateless.Transition[state, trigger], o *int) { *o = 42 })

	first.Release()
	second.Release()

	machine, err := builder.Build(0)
	assertNoError(t, err)

	assertNoError(t, machine.Fire(triggerSwitch))
	assertEqual(t, machine.State(), stateOn)
	assertEqual(t, machine.Object().Value(), 42)
}

func TestBuilder_PermitDestinationOutsideDomain(t *testing.T) {
	builder := stateless.NewBuilder[state, trigger, int](stateOff, onOffDomain)
	builder.Configure(stateOff, func(cfg *stateless.StateConfig[state, trigger, int]) {
		cfg.Permit(triggerSwitch, "Nowhere")
	})

	_, err := builder.Build(0)
	assertError(t, err)

	var notConfigured *stateless.ErrStateNotConfigured[state]
	assertTrue(t, errors.As(err, &notConfigured))
	assertEqual(t, notConfigured.State, "Nowhere")
}

func TestBuilder_ConfigUnknownStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for state outside the domain")
		}
	}()

	builder := stateless.NewBuilder[state, trigger, int](stateOff, onOffDomain)
	builder.Config("Nowhere")
}

func TestBuilder_ReleasedHandlePanics(t *testing.T) {
	builder := stateless.NewBuilder[state, trigger, int](stateOff, onOffDomain)

	cfg := builder.Config(stateOff)
	cfg.Release()
	cfg.Release() // idempotent

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on use of released StateConfig")
		}
	}()

	cfg.Permit(triggerSwitch, stateOn)
}

func TestBuilder_UseAfterBuildPanics(t *testing.T) {
	builder := stateless.NewBuilder[state, trigger, int](stateOff, onOffDomain)

	_, err := builder.Build(0)
	assertNoError(t, err)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on use of consumed Builder")
		}
	}()

	builder.Config(stateOff)
}

func TestBuilder_ConfigState(t *testing.T) {
	builder := stateless.NewBuilder[state, trigger, int](stateOff, onOffDomain)

	cfg := builder.Config(stateOn)
	assertEqual(t, cfg.State(), stateOn)
	cfg.Release()
}

func TestBuilder_OnTransitionedTwiceFiresBoth(t *testing.T) {
	count := 0

	builder := stateless.NewBuilder[state, trigger, int](stateOff, onOffDomain)
	builder.Configure(stateOff, func(cfg *stateless.StateConfig[state, trigger, int]) {
		cfg.Permit(triggerSwitch, stateOn)
	})
	builder.OnTransitioned(func(stateless.Transition[state, trigger]) { count++ })
	builder.OnTransitioned(func(stateless.Transition[state, trigger]) { count++ })

	machine, err := builder.Build(0)
	assertNoError(t, err)

	assertNoError(t, machine.Fire(triggerSwitch))
	assertEqual(t, count, 2)
}
