package puers

import (
	"slices"

	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pusher[int, primitives.Command](&Relay[int]{})

// Relay is a pusher that many pushees can attach to. Every item given to
// Push is delivered to all of them, in attachment order.
//
// Delivery iterates over a snapshot of the attachments taken when the push
// starts: a pushee that attaches or detaches others while receiving an item
// changes what the next push sees, never the current one. The controller of
// an attachment accepts Cancel only.
//
// -- Push(1) -- Push(2) -->
//
// -- Relay with pushees a, b --
//
// -- a(1), b(1) -- a(2), b(2) -->
//
// A Relay is not safe for concurrent use.
type Relay[A any] struct {
	pushees  attachments[primitives.Pushee[A]]
	snapshot []*attachment[primitives.Pushee[A]]
	pushing  bool
}

// NewRelay creates a Relay with room for capacity attachments.
func NewRelay[A any](capacity int) *Relay[A] {
	r := &Relay[A]{snapshot: make([]*attachment[primitives.Pushee[A]], 0, capacity)}
	r.pushees.items = make([]*attachment[primitives.Pushee[A]], 0, capacity)
	return r
}

// Call attaches p.
func (r *Relay[A]) Call(p primitives.Pushee[A]) primitives.Pushee[primitives.Command] {
	return r.pushees.add(p)
}

// Len returns how many pushees are attached.
func (r *Relay[A]) Len() int {
	return r.pushees.len()
}

// Push delivers a to every attached pushee.
func (r *Relay[A]) Push(a A) {
	var snapshot []*attachment[primitives.Pushee[A]]
	if r.pushing {
		// The shared buffer is in use by an outer push.
		snapshot = slices.Clone(r.pushees.items)
	} else {
		r.snapshot = append(r.snapshot[:0], r.pushees.items...)
		snapshot = r.snapshot
		r.pushing = true
		defer func() {
			clear(r.snapshot)
			r.pushing = false
		}()
	}

	for _, entry := range snapshot {
		entry.puee.Call(a)
	}
}

// AsPushee returns Push as a Pushee.
func (r *Relay[A]) AsPushee() primitives.Pushee[A] {
	return primitives.PusheeFunc[A](r.Push)
}
