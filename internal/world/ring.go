package world

import "iter"

// Ring is a bounded FIFO. Push fails when full, Pop fails when empty.
type Ring[T any] struct {
	items []T
	head  int
	n     int
}

func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{items: make([]T, capacity)}
}

func (r *Ring[T]) Len() int { return r.n }
func (r *Ring[T]) Cap() int { return len(r.items) }

// Push appends v at the back.
func (r *Ring[T]) Push(v T) bool {
	if r.n == len(r.items) {
		return false
	}
	r.items[(r.head+r.n)%len(r.items)] = v
	r.n++
	return true
}

// Pop evicts the front element.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	v := r.items[r.head]
	r.items[r.head] = zero
	r.head = (r.head + 1) % len(r.items)
	r.n--
	return v, true
}

// At returns the i-th element counting from the front; 0 is the oldest.
func (r *Ring[T]) At(i int) *T {
	if i < 0 || i >= r.n {
		return nil
	}
	return &r.items[(r.head+i)%len(r.items)]
}

func (r *Ring[T]) Front() *T { return r.At(0) }

// All yields pointers front to back so callers can mutate in place.
func (r *Ring[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(i, r.At(i)) {
				return
			}
		}
	}
}
