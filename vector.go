// Package vector implements a growable array with explicit element lifetimes.
// Raw slot allocation is kept apart from element construction and destruction,
// which lets every mutating operation unwind exactly the work it did when an
// element copy fails.
package vector

import (
	"fmt"
	"iter"
)

// Vector is a contiguous, growable sequence of T. The zero value is an empty
// vector with no storage. Not goroutine-safe.
//
// Only slots[:length] hold live elements; the remaining slots are zero and
// unconstructed. len(slots) is the capacity and slots is nil when it is 0.
type Vector[T any] struct {
	slots  []T
	length int
}

// New returns an empty vector. It never allocates storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector with room for n elements.
// If n <= 0 the vector has no storage.
func WithCapacity[T any](n int) *Vector[T] {
	if n <= 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{slots: make([]T, n)}
}

// From returns a vector holding copies of values, with capacity len(values).
// If a copy fails, the copies made so far are destroyed and the error is returned.
func From[T any](values ...T) (*Vector[T], error) {
	block, err := duplicate(values, len(values))
	if err != nil {
		return nil, err
	}
	return &Vector[T]{slots: block, length: len(values)}, nil
}

// Clone returns an independent copy whose capacity equals v.Len().
// If copying element k fails, elements [0,k) of the copy are destroyed in
// reverse order and the error is returned unchanged.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	block, err := duplicate(v.live(), v.length)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{slots: block, length: v.length}, nil
}

// Assign replaces the contents of v with a copy of other.
// The copy is built before v is touched, so on error v is unchanged.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	tmp, err := other.Clone()
	if err != nil {
		return err
	}
	v.Swap(tmp)
	tmp.Release()
	return nil
}

// Swap exchanges the storage of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.slots, other.slots = other.slots, v.slots
	v.length, other.length = other.length, v.length
}

// Release destroys all elements in reverse order and drops the storage.
// The vector is empty and may be reused afterwards.
func (v *Vector[T]) Release() {
	destroyRange(v.slots, v.length)
	v.slots = nil
	v.length = 0
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.slots)
}

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool {
	return v.length == 0
}

// At returns a pointer to element i. The pointer stays valid until the
// storage is reallocated or the element is destroyed.
func (v *Vector[T]) At(i int) *T {
	return &v.slots[:v.length][i]
}

// Front returns a pointer to the first element. The vector must not be empty.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a pointer to the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	return v.At(v.length - 1)
}

// Data returns the live elements as a slice sharing v's storage.
// Appending to it never writes into v's spare slots.
func (v *Vector[T]) Data() []T {
	return v.slots[:v.length:v.length]
}

// Begin returns the position of the first element, always 0.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (v *Vector[T]) End() int {
	return v.length
}

// All iterates over positions and element pointers from front to back.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, &v.slots[i]) {
				return
			}
		}
	}
}

// Backward iterates over positions and element pointers from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.length - 1; i >= 0; i-- {
			if !yield(i, &v.slots[i]) {
				return
			}
		}
	}
}

func (v *Vector[T]) live() []T {
	return v.slots[:v.length]
}

// adopt destroys the current elements, drops the old storage and installs
// block. The live count is unchanged; block must already hold that many
// constructed elements.
func (v *Vector[T]) adopt(block []T) {
	destroyRange(v.slots, v.length)
	v.slots = block
}

func (v *Vector[T]) panicIfOutOfRange(first, last int) {
	if first < 0 || first > last || last > v.length {
		panic(fmt.Sprintf("vector: range [%d,%d) out of bounds [0,%d]", first, last, v.length))
	}
}
