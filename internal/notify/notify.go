// Package notify provides a small typed observer registry used by the
// governor components to publish changes to the host.
//
// Listeners are called synchronously, in registration order, on the
// goroutine that publishes. A panicking listener is recovered and reported
// through the registry's panic hook so that it cannot break its siblings.
package notify

import (
	"fmt"
	"sync"
)

// Subscription identifies a registered listener. The zero value is a
// subscription that was never registered; cancelling it is a no-op.
type Subscription struct {
	id     uint64
	cancel func(uint64)
}

// Cancel removes the listener. It is safe to call more than once.
func (s Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel(s.id)
	}
}

type entry[T any] struct {
	id uint64
	fn func(T)
}

// Registry holds listeners for values of type T.
type Registry[T any] struct {
	mu      sync.Mutex
	nextID  uint64
	entries []entry[T]

	// OnPanic is invoked with the recovered error when a listener panics.
	OnPanic func(err error)
}

// Subscribe registers fn and returns its subscription. A nil fn is ignored.
func (r *Registry[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return Subscription{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.entries = append(r.entries, entry[T]{id: r.nextID, fn: fn})

	return Subscription{id: r.nextID, cancel: r.remove}
}

// Unsubscribe is the same as s.Cancel().
func (r *Registry[T]) Unsubscribe(s Subscription) {
	s.Cancel()
}

func (r *Registry[T]) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Notify calls every listener with v. Listeners registered or removed while
// Notify runs take effect on the next call.
func (r *Registry[T]) Notify(v T) {
	r.mu.Lock()
	snapshot := make([]entry[T], len(r.entries))
	copy(snapshot, r.entries)
	onPanic := r.OnPanic
	r.mu.Unlock()

	for _, e := range snapshot {
		call(e.fn, v, onPanic)
	}
}

func call[T any](fn func(T), v T, onPanic func(error)) {
	defer func() {
		if rec := recover(); rec != nil && onPanic != nil {
			onPanic(fmt.Errorf("listener panicked: %v", rec))
		}
	}()
	fn(v)
}
