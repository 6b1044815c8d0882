package stateless

import "github.com/enetx/g"

// StateMachine is the execution surface shared by Machine and SyncMachine.
type StateMachine[S, T comparable, O any] interface {
	Fire(T) error
	State() S
	Object() *Object[O]
	States() g.Slice[S]
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

// Interface compliance checks.
var (
	_ StateMachine[int, int, int] = (*Machine[int, int, int])(nil)
	_ StateMachine[int, int, int] = (*SyncMachine[int, int, int])(nil)
)
