package events

import (
	"iter"

	"github.com/arielf-camacho/pue/primitives"
)

// FromSlice returns an EPullee yielding every element of items as an Item
// event, then nil.
func FromSlice[R any](items []R) EPullee[R] {
	i := 0
	return primitives.PulleeFunc[*Event[R]](func() *Event[R] {
		if i >= len(items) {
			return nil
		}
		i++
		return Item(items[i-1])
	})
}

// Of returns an EPullee over the given items.
func Of[R any](items ...R) EPullee[R] {
	return FromSlice(items)
}

// SeqPullee is an EPullee over the values of an iter.Seq.
type SeqPullee[R any] struct {
	next func() (R, bool)
	stop func()
	done bool
}

var _ = EPullee[int](&SeqPullee[int]{})

// FromSeq returns an EPullee over the values of seq. The sequence is driven
// with iter.Pull and released once exhausted; a consumer leaving earlier must
// call Stop.
func FromSeq[R any](seq iter.Seq[R]) *SeqPullee[R] {
	next, stop := iter.Pull(seq)
	return &SeqPullee[R]{next: next, stop: stop}
}

// Call implements primitives.Pullee.
func (s *SeqPullee[R]) Call(primitives.Unit) *Event[R] {
	if s.done {
		return nil
	}
	v, ok := s.next()
	if !ok {
		s.Stop()
		return nil
	}
	return Item(v)
}

// Stop releases the sequence. Later pulls return nil.
func (s *SeqPullee[R]) Stop() {
	if !s.done {
		s.done = true
		s.stop()
	}
}
