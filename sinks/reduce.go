package sinks

import (
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pushee[*int](&ReducePushee[int, any]{})

// ReducePushee reduces the pushed items to a single value using the given
// reduce function.
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- nil -->
//
// -- ReducePushee f(result, value, index) = result + value --
//
// -> 15, done
//
// When the function fails the error goes to the error handler, the result
// keeps its last good value and the rest of the stream is ignored.
type ReducePushee[IN, OUT any] struct {
	fn           func(result OUT, value IN, index uint) (OUT, error)
	errorHandler func(error, uint, IN, OUT)

	index  uint
	result OUT
	done   bool
	failed bool
}

// ReducePusheeBuilder is a fluent builder for ReducePushee.
type ReducePusheeBuilder[IN, OUT any] struct {
	fn           func(result OUT, value IN, index uint) (OUT, error)
	initial      OUT
	errorHandler func(error, uint, IN, OUT)
}

// Reduce creates a new ReducePusheeBuilder for building a ReducePushee.
func Reduce[IN, OUT any](
	fn func(result OUT, value IN, index uint) (OUT, error),
	initial OUT,
) *ReducePusheeBuilder[IN, OUT] {
	if fn == nil {
		panic("fn cannot be nil")
	}

	return &ReducePusheeBuilder[IN, OUT]{fn: fn, initial: initial}
}

// ErrorHandler sets the error handler for the ReducePushee.
func (b *ReducePusheeBuilder[IN, OUT]) ErrorHandler(
	handler func(error, uint, IN, OUT),
) *ReducePusheeBuilder[IN, OUT] {
	b.errorHandler = handler
	return b
}

// Build creates the ReducePushee.
func (b *ReducePusheeBuilder[IN, OUT]) Build() *ReducePushee[IN, OUT] {
	return &ReducePushee[IN, OUT]{
		fn:           b.fn,
		errorHandler: b.errorHandler,
		result:       b.initial,
	}
}

// Call implements primitives.Pushee.
func (r *ReducePushee[IN, OUT]) Call(item *IN) primitives.Unit {
	if r.done || r.failed {
		return primitives.Unit{}
	}
	if item == nil {
		r.done = true
		return primitives.Unit{}
	}

	result, err := r.fn(r.result, *item, r.index)
	if err != nil {
		r.failed = true
		if r.errorHandler != nil {
			r.errorHandler(err, r.index, *item, r.result)
		}
		return primitives.Unit{}
	}

	r.result = result
	r.index++
	return primitives.Unit{}
}

// Result returns the result as of now.
func (r *ReducePushee[IN, OUT]) Result() OUT {
	return r.result
}

// Done tells whether the end of the stream was pushed.
func (r *ReducePushee[IN, OUT]) Done() bool {
	return r.done
}
