// Package sinks holds ready made pushees: the passive consumers at the end of
// a pipeline. They take null-terminated streams and treat nil as the end.
package sinks

import (
	"fmt"
	"slices"

	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pushee[*int](&Collector[int]{})

// Collector appends every pushed item to a slice and records the end of the
// stream. Pushing after the end panics with ErrIllegalState.
//
// -- 1 -- 2 -- 3 -- nil -->
//
// -- Collector --
//
// -> [1, 2, 3], done
type Collector[T any] struct {
	items []T
	done  bool
}

// NewCollector returns an empty Collector.
func NewCollector[T any]() *Collector[T] {
	return &Collector[T]{}
}

// Call implements primitives.Pushee.
func (c *Collector[T]) Call(item *T) primitives.Unit {
	if c.done {
		panic(fmt.Errorf("%w: push after the end of the stream", primitives.ErrIllegalState))
	}
	if item == nil {
		c.done = true
		return primitives.Unit{}
	}
	c.items = append(c.items, *item)
	return primitives.Unit{}
}

// Items returns a copy of the items collected so far.
func (c *Collector[T]) Items() []T {
	return slices.Clone(c.items)
}

// Done tells whether the end of the stream was pushed.
func (c *Collector[T]) Done() bool {
	return c.done
}
