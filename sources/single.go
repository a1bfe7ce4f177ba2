package sources

import (
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pullee[*any](&SinglePullee[any]{})

// SinglePullee yields the value returned by a function once, then nil.
//
// -- Single f() = 1 --
//
// -- 1 -- nil -- nil -->
//
// When the function fails the error goes to the error handler and the stream
// ends right away.
type SinglePullee[T any] struct {
	get          func() (T, error)
	errorHandler func(error)
	done         bool
}

// SinglePulleeBuilder is a fluent builder for SinglePullee.
type SinglePulleeBuilder[T any] struct {
	get          func() (T, error)
	errorHandler func(error)
}

// Single creates a new SinglePulleeBuilder for building a SinglePullee.
func Single[T any](get func() (T, error)) *SinglePulleeBuilder[T] {
	if get == nil {
		panic("get cannot be nil")
	}

	return &SinglePulleeBuilder[T]{get: get}
}

// ErrorHandler sets the error handler for the SinglePullee.
func (b *SinglePulleeBuilder[T]) ErrorHandler(
	handler func(error),
) *SinglePulleeBuilder[T] {
	b.errorHandler = handler
	return b
}

// Build creates the SinglePullee.
func (b *SinglePulleeBuilder[T]) Build() *SinglePullee[T] {
	return &SinglePullee[T]{get: b.get, errorHandler: b.errorHandler}
}

// Call implements primitives.Pullee.
func (s *SinglePullee[T]) Call(primitives.Unit) *T {
	if s.done {
		return nil
	}
	s.done = true

	value, err := s.get()
	if err != nil {
		if s.errorHandler != nil {
			s.errorHandler(err)
		}
		return nil
	}
	return &value
}
