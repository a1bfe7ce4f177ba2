// Package events decorates null-terminated streams with out-of-band signals.
//
// A stream of *Event[I] carries items, warnings and errors. None of them ends
// the stream: as everywhere else in pue, only a nil value does. An Error is
// data, it flows downstream like any item and has to be handled by a
// consumer; if the stream has to end after it, the producer sends nil next.
package events

import (
	"fmt"

	"github.com/arielf-camacho/pue/primitives"
)

// Kind tells which variant an Event is. The zero Kind is not a valid variant.
type Kind uint8

const (
	KindItem Kind = iota + 1
	KindWarning
	KindError
)

// String implements the Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// Event is a closed tagged union over an item stream. Item is set for
// KindItem; Err for KindWarning and KindError.
type Event[I any] struct {
	Kind Kind
	Item I
	Err  error
}

// Item wraps the next value of the stream.
func Item[I any](item I) *Event[I] {
	return &Event[I]{Kind: KindItem, Item: item}
}

// Warning wraps a non-fatal problem. It does not end the stream.
func Warning[I any](err error) *Event[I] {
	return &Event[I]{Kind: KindWarning, Err: err}
}

// Error wraps a failure. It does not end the stream either.
func Error[I any](err error) *Event[I] {
	return &Event[I]{Kind: KindError, Err: err}
}

// String implements the Stringer interface.
func (e *Event[I]) String() string {
	if e == nil {
		return "<end>"
	}
	if e.Kind == KindItem {
		return fmt.Sprintf("item(%v)", e.Item)
	}
	return fmt.Sprintf("%s(%v)", e.Kind, e.Err)
}

// Unsupported returns the value closed-world operators panic with when they
// meet an event they do not handle.
func Unsupported[I any](e *Event[I]) error {
	return fmt.Errorf("%w: %s", primitives.ErrUnsupportedEvent, e)
}

// EPullee is a pullee of events.
type EPullee[R any] = primitives.Pullee[*Event[R]]

// EPushee is a pushee of events.
type EPushee[T any] = primitives.Pushee[*Event[T]]

// EPuller is a puller of events controlled with commands.
type EPuller[R any] = primitives.Puller[*Event[R], primitives.Command]

// EPusher is a pusher of events controlled with commands.
type EPusher[T any] = primitives.Pusher[*Event[T], primitives.Command]
