package stateless

import (
	"encoding/json"
	"fmt"
)

// machineSnapshot is the serializable runtime state of a Machine: the
// current state plus the context object. Configuration (transitions,
// actions, listeners) is code, not data, and is never serialized.
type machineSnapshot[S comparable, O any] struct {
	Current S `json:"current"`
	Object  O `json:"object"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m *Machine[S, T, O]) MarshalJSON() ([]byte, error) {
	snapshot := machineSnapshot[S, O]{
		Current: m.current,
		Object:  m.object.Value(),
	}

	return json.Marshal(snapshot)
}

// UnmarshalJSON implements the json.Unmarshaler interface. It restores the
// current state and context object without running any callbacks. The
// restored state must belong to the machine's declared domain.
func (m *Machine[S, T, O]) UnmarshalJSON(data []byte) error {
	var snapshot machineSnapshot[S, O]
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("stateless: failed to unmarshal machine snapshot: %w", err)
	}

	if !m.states.Contains(snapshot.Current) {
		return &ErrStateNotConfigured[S]{State: snapshot.Current}
	}

	m.current = snapshot.Current
	m.object.Set(snapshot.Object)

	return nil
}
