// Package encodings holds small symmetric codecs. Encode and Decode of a
// codec are inverse bijections: for any valid d, Decode(Encode(d)) == d.
package encodings

import (
	"errors"

	"github.com/arielf-camacho/pue/events"
	"github.com/arielf-camacho/pue/primitives"
)

// ErrInvalidInput is returned for values a codec cannot encode or decode.
var ErrInvalidInput = errors.New("invalid input")

// EncDec encodes values of type D into values of type E and back.
type EncDec[D, E any] interface {
	Encode(D) (E, error)
	Decode(E) (D, error)
}

// RevEncDec swaps the directions of a codec.
type RevEncDec[D, E any] struct {
	src EncDec[E, D]
}

var _ = EncDec[string, uint8](&RevEncDec[string, uint8]{})

// Rev returns ed used the other way around.
func Rev[D, E any](ed EncDec[E, D]) *RevEncDec[D, E] {
	return &RevEncDec[D, E]{src: ed}
}

// Encode implements EncDec.
func (r *RevEncDec[D, E]) Encode(d D) (E, error) {
	return r.src.Decode(d)
}

// Decode implements EncDec.
func (r *RevEncDec[D, E]) Decode(e E) (D, error) {
	return r.src.Encode(e)
}

// Encoder returns the encode direction of ed as a Puee of events: a failure
// becomes an Error event instead of an item.
func Encoder[D, E any](ed EncDec[D, E]) primitives.Puee[D, *events.Event[E]] {
	return eventFunc(ed.Encode)
}

// Decoder returns the decode direction of ed as a Puee of events.
func Decoder[D, E any](ed EncDec[D, E]) primitives.Puee[E, *events.Event[D]] {
	return eventFunc(ed.Decode)
}

func eventFunc[A, V any](f func(A) (V, error)) primitives.Puee[A, *events.Event[V]] {
	return primitives.PueeFunc[A, *events.Event[V]](func(a A) *events.Event[V] {
		v, err := f(a)
		if err != nil {
			return events.Error[V](err)
		}
		return events.Item(v)
	})
}
