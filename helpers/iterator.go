// Package helpers bridges null-terminated pullees and ordinary Go code:
// iterators, range-over-func sequences and slices.
package helpers

import (
	"fmt"
	"iter"

	"github.com/arielf-camacho/pue/primitives"
)

// Iterator walks a null-terminated pullee with HasNext and Next. HasNext pulls
// one item ahead and keeps it until Next returns it.
type Iterator[T any] struct {
	source  primitives.Pullee[*T]
	next    *T
	fetched bool
}

// NewIterator returns an Iterator over source.
func NewIterator[T any](source primitives.Pullee[*T]) *Iterator[T] {
	return &Iterator[T]{source: source}
}

// HasNext tells whether Next has an item to return.
func (it *Iterator[T]) HasNext() bool {
	if !it.fetched {
		it.next = primitives.Pull(it.source)
		it.fetched = true
	}
	return it.next != nil
}

// Next returns the next item. It panics with ErrIllegalState past the end of
// the stream.
func (it *Iterator[T]) Next() T {
	if !it.HasNext() {
		panic(fmt.Errorf("%w: no more items", primitives.ErrIllegalState))
	}
	// The end is sticky, so only a fetched item resets the look-ahead.
	it.fetched = false
	return *it.next
}

// All returns the items of source as a sequence. Breaking out of the range
// loop leaves the remaining items in source.
func All[T any](source primitives.Pullee[*T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := primitives.Pull(source); v != nil; v = primitives.Pull(source) {
			if !yield(*v) {
				return
			}
		}
	}
}
