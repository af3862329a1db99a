// Package history provides the fixed-capacity ring buffer used for the
// bounded network, interval, cleanup and archive histories.
package history

// DefaultCapacity is the number of entries kept by the governor histories.
const DefaultCapacity = 20

// Ring keeps the last Cap() values pushed into it. It is not safe for
// concurrent use; owners guard it with their own lock.
type Ring[T any] struct {
	buf   []T
	start int
	size  int
}

// New returns an empty ring. A non-positive capacity uses DefaultCapacity.
func New[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends v, evicting the oldest value when full.
func (r *Ring[T]) Push(v T) {
	if r.size < len(r.buf) {
		r.buf[(r.start+r.size)%len(r.buf)] = v
		r.size++
		return
	}
	r.buf[r.start] = v
	r.start = (r.start + 1) % len(r.buf)
}

// Len returns the number of stored values.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// At returns the i-th value counting from the oldest.
func (r *Ring[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= r.size {
		return zero, false
	}
	return r.buf[(r.start+i)%len(r.buf)], true
}

// Last returns the newest value.
func (r *Ring[T]) Last() (T, bool) {
	return r.At(r.size - 1)
}

// Previous returns the value pushed right before the newest one.
func (r *Ring[T]) Previous() (T, bool) {
	return r.At(r.size - 2)
}

// Items returns a copy of the values, oldest first.
func (r *Ring[T]) Items() []T {
	out := make([]T, r.size)
	for i := range out {
		out[i], _ = r.At(i)
	}
	return out
}

// Replace drops the current content and pushes items in order, so only the
// newest Cap() of them are kept.
func (r *Ring[T]) Replace(items []T) {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.start, r.size = 0, 0
	for _, v := range items {
		r.Push(v)
	}
}
