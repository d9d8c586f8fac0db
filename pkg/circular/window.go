package circular

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Window is a fixed-capacity sliding window: once full, Push overwrites the
// oldest element. Reads are newest-first, so Get(0) is the latest Push.
type Window[T any] struct {
	data []T
	head int
	size int
}

func NewWindow[T any](capacity int) *Window[T] {
	if capacity <= 0 {
		panic("capacity must be positive")
	}
	return &Window[T]{data: make([]T, capacity)}
}

func (w *Window[T]) Capacity() int { return len(w.data) }
func (w *Window[T]) Size() int     { return w.size }
func (w *Window[T]) IsEmpty() bool { return w.size == 0 }
func (w *Window[T]) IsFull() bool  { return w.size == len(w.data) }

func (w *Window[T]) Clear() {
	w.head = 0
	w.size = 0
}

func (w *Window[T]) Push(v T) {
	w.data[w.head] = v
	w.head = (w.head + 1) % len(w.data)
	if w.size < len(w.data) {
		w.size++
	}
}

// Get returns the idx-th most recent element, 0 being the latest Push.
func (w *Window[T]) Get(idx int) (T, error) {
	if idx < 0 || idx >= w.size {
		var zero T
		return zero, fmt.Errorf("circular: index %d out of range [0, %d)", idx, w.size)
	}
	return w.at(idx), nil
}

// First returns the most recent element.
func (w *Window[T]) First() (T, error) {
	if w.size == 0 {
		var zero T
		return zero, ErrEmptyBuffer
	}
	return w.at(0), nil
}

// Last returns the oldest element still inside the window.
func (w *Window[T]) Last() (T, error) {
	if w.size == 0 {
		var zero T
		return zero, ErrEmptyBuffer
	}
	return w.at(w.size - 1), nil
}

// Data returns the window contents oldest to newest.
func (w *Window[T]) Data() []T {
	if w.size == 0 {
		return nil
	}
	out := make([]T, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.at(w.size - 1 - i)
	}
	return out
}

// at reads newest-first without bounds checking.
func (w *Window[T]) at(idx int) T {
	return w.data[wrap(w.head-1-idx, len(w.data))]
}

// MinOf returns the smallest element currently inside the window.
func MinOf[T constraints.Ordered](w *Window[T]) (T, error) {
	if w.size == 0 {
		var zero T
		return zero, ErrEmptyBuffer
	}
	minVal := w.at(0)
	for i := 1; i < w.size; i++ {
		if v := w.at(i); v < minVal {
			minVal = v
		}
	}
	return minVal, nil
}

// MaxOf returns the largest element currently inside the window.
func MaxOf[T constraints.Ordered](w *Window[T]) (T, error) {
	if w.size == 0 {
		var zero T
		return zero, ErrEmptyBuffer
	}
	maxVal := w.at(0)
	for i := 1; i < w.size; i++ {
		if v := w.at(i); v > maxVal {
			maxVal = v
		}
	}
	return maxVal, nil
}
