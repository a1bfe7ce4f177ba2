package sinks

import (
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pushee[*int](&SinglePushee[int]{})

// SinglePushee keeps the last pushed item. It is meant for streams carrying a
// single value; with longer streams the last item wins.
//
// -- 1 -- nil -->
//
// -> 1
type SinglePushee[T any] struct {
	value *T
	done  bool
}

// Single returns an empty SinglePushee.
func Single[T any]() *SinglePushee[T] {
	return &SinglePushee[T]{}
}

// Call implements primitives.Pushee.
func (s *SinglePushee[T]) Call(item *T) primitives.Unit {
	if item == nil {
		s.done = true
		return primitives.Unit{}
	}
	v := *item
	s.value = &v
	return primitives.Unit{}
}

// Value returns the last item and whether there was any.
func (s *SinglePushee[T]) Value() (T, bool) {
	if s.value == nil {
		var zero T
		return zero, false
	}
	return *s.value, true
}

// Done tells whether the end of the stream was pushed.
func (s *SinglePushee[T]) Done() bool {
	return s.done
}
