// Package sources holds ready made pullees: the passive producers a pipeline
// pulls from. All of them are null-terminated unless stated otherwise.
package sources

import (
	"iter"

	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pullee[*int](&SlicePullee[int]{})

// SlicePullee yields the elements of a slice, then nil forever.
//
// -- Slice [1, 2, 3] --
//
// -- 1 -- 2 -- 3 -- nil -- nil -->
type SlicePullee[T any] struct {
	items []T
	next  int
}

// Slice returns a pullee over items. The slice is not copied.
func Slice[T any](items []T) *SlicePullee[T] {
	return &SlicePullee[T]{items: items}
}

// Of returns a pullee over the given items.
func Of[T any](items ...T) *SlicePullee[T] {
	return Slice(items)
}

// Call implements primitives.Pullee.
func (s *SlicePullee[T]) Call(primitives.Unit) *T {
	if s.next >= len(s.items) {
		return nil
	}
	v := s.items[s.next]
	s.next++
	return &v
}

// Remaining returns how many items are left.
func (s *SlicePullee[T]) Remaining() int {
	return len(s.items) - s.next
}

// SliceUntil returns a pullee over items for streams whose end is marked by a
// sentinel value instead of nil: once items are exhausted it returns end.
func SliceUntil[T any](items []T, end T) primitives.Pullee[T] {
	i := 0
	return primitives.PulleeFunc[T](func() T {
		if i >= len(items) {
			return end
		}
		i++
		return items[i-1]
	})
}

// SeqPullee pulls the values of an iter.Seq, then nil.
type SeqPullee[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

var _ = primitives.Pullee[*int](&SeqPullee[int]{})

// Seq returns a pullee over the values of seq. The sequence is driven with
// iter.Pull on a goroutine of its own, released once exhausted. A consumer
// leaving earlier, after a take for instance, must call Stop.
func Seq[T any](seq iter.Seq[T]) *SeqPullee[T] {
	next, stop := iter.Pull(seq)
	return &SeqPullee[T]{next: next, stop: stop}
}

// Call implements primitives.Pullee.
func (s *SeqPullee[T]) Call(primitives.Unit) *T {
	if s.done {
		return nil
	}
	v, ok := s.next()
	if !ok {
		s.Stop()
		return nil
	}
	return &v
}

// Stop releases the sequence. Later pulls return nil.
func (s *SeqPullee[T]) Stop() {
	if !s.done {
		s.done = true
		s.stop()
	}
}

// Repeat returns a pullee yielding v forever. It never ends.
func Repeat[T any](v T) primitives.Pullee[T] {
	return primitives.PulleeFunc[T](func() T { return v })
}

// Func returns a pullee calling f until it reports there is nothing left.
// After that f is not called again.
func Func[T any](f func() (T, bool)) primitives.Pullee[*T] {
	done := false
	return primitives.PulleeFunc[*T](func() *T {
		if done {
			return nil
		}
		v, ok := f()
		if !ok {
			done = true
			return nil
		}
		return &v
	})
}
