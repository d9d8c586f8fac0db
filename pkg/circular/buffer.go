package circular

import "errors"

// ErrEmptyBuffer is returned by any element operation on a zero-length buffer.
var ErrEmptyBuffer = errors.New("circular: empty buffer")

// Buffer is a fixed-length sequence with a rotating cursor. The length is set
// at construction and never changes; Advance reads the elements in order and
// wraps from the last back to the first, so traversal never terminates.
//
// Buffer deliberately does not satisfy an iterator contract, since ranging
// over it would never end. Access from multiple goroutines must be serialized
// by the caller.
type Buffer[T any] struct {
	items  []T
	cursor int
}

// FromSlice builds a buffer that takes ownership of items as-is. The caller
// must not retain the slice. A nil or empty slice yields a zero-length buffer
// whose element operations return ErrEmptyBuffer.
func FromSlice[T any](items []T) *Buffer[T] {
	return &Buffer[T]{items: items}
}

// Repeat builds a buffer holding n copies of v. Negative n is treated as 0.
func Repeat[T any](v T, n int) *Buffer[T] {
	if n < 0 {
		n = 0
	}
	items := make([]T, n)
	for i := range items {
		items[i] = v
	}
	return &Buffer[T]{items: items}
}

// FillFunc builds a buffer of n elements where element i is fn(i). Negative n
// is treated as 0.
func FillFunc[T any](n int, fn func(int) T) *Buffer[T] {
	if n < 0 {
		n = 0
	}
	items := make([]T, n)
	for i := range items {
		items[i] = fn(i)
	}
	return &Buffer[T]{items: items}
}

// Advance returns the element under the cursor and moves the cursor one slot
// forward, wrapping past the end. Unlike a finite iterator it has no
// end-of-sequence: a non-empty buffer always yields a value.
func (b *Buffer[T]) Advance() (T, error) {
	if len(b.items) == 0 {
		var zero T
		return zero, ErrEmptyBuffer
	}
	v := b.items[b.cursor]
	b.cursor = (b.cursor + 1) % len(b.items)
	return v, nil
}

// Peek returns the element under the cursor without moving it.
func (b *Buffer[T]) Peek() (T, error) {
	if len(b.items) == 0 {
		var zero T
		return zero, ErrEmptyBuffer
	}
	return b.items[b.cursor], nil
}

// Skip moves the cursor n slots forward without reading. Negative n moves it
// backward.
func (b *Buffer[T]) Skip(n int) error {
	if len(b.items) == 0 {
		return ErrEmptyBuffer
	}
	b.cursor = wrap(b.cursor+n, len(b.items))
	return nil
}

// Get returns the element at position i mod Len, independent of the cursor.
// Negative i counts back from the end, so Get(-1) is the final element.
func (b *Buffer[T]) Get(i int) (T, error) {
	if len(b.items) == 0 {
		var zero T
		return zero, ErrEmptyBuffer
	}
	return b.items[wrap(i, len(b.items))], nil
}

// Set replaces the element at position i mod Len.
func (b *Buffer[T]) Set(i int, v T) error {
	if len(b.items) == 0 {
		return ErrEmptyBuffer
	}
	b.items[wrap(i, len(b.items))] = v
	return nil
}

// Len returns the fixed length of the buffer.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

func (b *Buffer[T]) IsEmpty() bool {
	return len(b.items) == 0
}

// Cursor returns the position the next Advance will read. For a zero-length
// buffer it returns 0, which carries no meaning.
func (b *Buffer[T]) Cursor() int {
	return b.cursor
}

// ResetCursor moves the cursor to position to mod Len.
func (b *Buffer[T]) ResetCursor(to int) error {
	if len(b.items) == 0 {
		return ErrEmptyBuffer
	}
	b.cursor = wrap(to, len(b.items))
	return nil
}

// Values returns a copy of the backing sequence in storage order.
func (b *Buffer[T]) Values() []T {
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// wrap reduces i into [0, n), non-negative even for negative i.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
