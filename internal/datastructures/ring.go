package datastructures

import "iter"

// Ring is a bounded FIFO that drops its oldest entry when full.
type Ring[T any] struct {
	data     []T
	head     int
	size     int
	capacity int
}

// NewRing creates a Ring holding at most capacity entries.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("capacity must be greater than 0")
	}
	return &Ring[T]{
		data:     make([]T, capacity),
		capacity: capacity,
	}
}

// Push appends value, evicting the oldest entry if the ring is full.
// It reports whether an entry was evicted.
func (r *Ring[T]) Push(value T) bool {
	if r.size == r.capacity {
		r.data[r.head] = value
		r.head = (r.head + 1) % r.capacity
		return true
	}
	r.data[(r.head+r.size)%r.capacity] = value
	r.size++
	return false
}

// All yields entries from oldest to newest.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(r.data[(r.head+i)%r.capacity]) {
				return
			}
		}
	}
}

// Len returns the number of entries held.
func (r *Ring[T]) Len() int {
	return r.size
}

// Cap returns the maximum number of entries.
func (r *Ring[T]) Cap() int {
	return r.capacity
}

// Reset drops all entries.
func (r *Ring[T]) Reset() {
	clear(r.data)
	r.head = 0
	r.size = 0
}
