package stateless_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/enetx/stateless"
)

func TestMachine_SnapshotRoundTrip(t *testing.T) {
	machine := buildOnOff(t, 0)
	machine.Object().Set(41)
	assertNoError(t, machine.Fire(triggerSwitch))

	data, err := json.Marshal(machine)
	assertNoError(t, err)

	restored := buildOnOff(t, 0)
	assertNoError(t, json.Unmarshal(data, restored))

	assertEqual(t, restored.State(), stateOn)
	assertEqual(t, restored.Object().Value(), 41)

	// The restored machine keeps firing from where the snapshot left off.
	assertNoError(t, restored.Fire(triggerSwitch))
	assertEqual(t, restored.State(), stateOff)
}

func TestMachine_SnapshotUnknownState(t *testing.T) {
	machine := buildOnOff(t, 0)

	err := json.Unmarshal([]byte(`{"current": "Nowhere", "object": 0}`), machine)
	assertError(t, err)

	var notConfigured *stateless.ErrStateNotConfigured[state]
	assertTrue(t, errors.As(err, &notConfigured))
	assertEqual(t, notConfigured.State, "Nowhere")

	// The machine is untouched by a failed restore.
	assertEqual(t, machine.State(), stateOff)
}

func TestMachine_SnapshotMalformed(t *testing.T) {
	machine := buildOnOff(t, 0)

	err := json.Unmarshal([]byte(`{"current": 5, "object": 0}`), machine)
	assertError(t, err)
	assertTrue(t, strings.Contains(err.Error(), "failed to unmarshal machine snapshot"))
}
