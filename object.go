package stateless

import "sync"

// Object is the mutex-guarded cell holding the machine's context object. The
// machine hands the same *Object to every action (locked once per action
// invocation, never across actions) and to the caller via Machine.Object, so
// the caller may inspect or mutate the object between firings.
//
// The lock is not reentrant: an action that calls With on the machine's own
// Object, or fires the machine again, deadlocks. Actions already hold the
// object; they must use the *O they were given.
type Object[O any] struct {
	mu  sync.Mutex
	val O
}

func newObject[O any](val O) *Object[O] {
	return &Object[O]{val: val}
}

// With runs fn with exclusive access to the underlying value.
func (o *Object[O]) With(fn func(*O)) {
	o.mu.Lock()
	defer o.mu.Unlock()

	fn(&o.val)
}

// Value returns a copy of the underlying value taken under the lock.
func (o *Object[O]) Value() O {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.val
}

// Set replaces the underlying value.
func (o *Object[O]) Set(val O) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.val = val
}
