package stateless_test

import (
	"sync"
	"testing"

	"github.com/enetx/stateless"
)

func TestObject_SharedHandleSeesActionMutations(t *testing.T) {
	machine := buildOnOff(t, 0)

	object := machine.Object()
	object.With(func(o *int) { *o = 10 })
	assertEqual(t, object.Value(), 10)

	object.Set(20)
	assertEqual(t, machine.Object().Value(), 20)
}

func TestObject_ConcurrentAccess(t *testing.T) {
	object := buildOnOff(t, 0).Object()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			object.With(func(o *int) { *o++ })
		}()
	}
	wg.Wait()

	assertEqual(t, object.Value(), 100)
}

func TestObject_LockHeldPerActionOnly(t *testing.T) {
	// An exit action mutates the object and releases the lock before the
	// entry action runs; the entry action can take it again without
	// deadlocking, and observes the exit action's write.
	type record struct{ exits, entries int }

	builder := stateless.NewBuilder[state, trigger, record](stateOff, onOffDomain)
	builder.Configure(stateOff, func(cfg *stateless.StateConfig[state, trigger, record]) {
		cfg.Permit(triggerSwitch, stateOn).
			OnExit(func(_ stateless.Transition[state, trigger], o *record) { o.exits++ })
	})
	builder.Configure(stateOn, func(cfg *stateless.StateConfig[state, trigger, record]) {
		cfg.OnEntry(func(tr stateless.Transition[state, trigger], o *record) {
			assertEqual(t, o.exits, 1)
			o.entries++
		})
	})

	machine, err := builder.Build(record{})
	assertNoError(t, err)

	assertNoError(t, machine.Fire(triggerSwitch))
	assertEqual(t, machine.Object().Value(), record{exits: 1, entries: 1})
}
