package stateless

import (
	"sync"

	"github.com/enetx/g"
)

// SyncMachine wraps a Machine with a sync.RWMutex, serializing every firing
// and read. It is the external-mutex pattern for sharing one machine across
// goroutines; the firing protocol itself stays strictly sequential.
//
// The context object handle returned by Object carries its own lock and may
// be used concurrently regardless of the wrapper.
type SyncMachine[S, T comparable, O any] struct {
	machine *Machine[S, T, O]
	mu      sync.RWMutex
}

// AsSync wraps the machine for concurrent use. The caller must not keep
// firing the bare machine afterwards.
func (m *Machine[S, T, O]) AsSync() *SyncMachine[S, T, O] {
	return &SyncMachine[S, T, O]{machine: m}
}

// Fire is the serialized version of Machine.Fire.
func (sm *SyncMachine[S, T, O]) Fire(trigger T) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.Fire(trigger)
}

// State is the serialized version of Machine.State.
func (sm *SyncMachine[S, T, O]) State() S {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.State()
}

// Object returns the shared context object handle.
func (sm *SyncMachine[S, T, O]) Object() *Object[O] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.Object()
}

// States is the serialized version of Machine.States.
func (sm *SyncMachine[S, T, O]) States() g.Slice[S] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.States()
}

// ToDOT is the serialized version of Machine.ToDOT.
func (sm *SyncMachine[S, T, O]) ToDOT() g.String {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface.
func (sm *SyncMachine[S, T, O]) MarshalJSON() ([]byte, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (sm *SyncMachine[S, T, O]) UnmarshalJSON(data []byte) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.machine.UnmarshalJSON(data)
}

// String implements fmt.Stringer.
func (sm *SyncMachine[S, T, O]) String() string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.machine.String()
}
