package operators

import (
	"github.com/arielf-camacho/pue/primitives"
)

var (
	_ = primitives.Pushee[int](&DropPushee[int]{})
	_ = primitives.Pullee[int](&DropPullee[int]{})
)

// DropPushee discards the first Count items and forwards the rest.
//
// The owner may raise Count to drop some more items.
type DropPushee[A any] struct {
	Count int64

	down primitives.Pushee[A]
}

// ADrop starts forwarding to p after n discarded items.
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -->
//
// -- ADrop(2) --
//
// ------------ 3 -- 4 -- 5 -->
func ADrop[A any](p primitives.Pushee[A], n int64) *DropPushee[A] {
	return &DropPushee[A]{Count: n, down: p}
}

// Call implements Pushee.
func (d *DropPushee[A]) Call(a A) primitives.Unit {
	if d.Count > 0 {
		d.Count--
		return primitives.Unit{}
	}
	d.down.Call(a)
	return primitives.Unit{}
}

// DropPullee pulls and discards Count items on its first call, then returns
// items as they come.
type DropPullee[V any] struct {
	Count int64

	up primitives.Pullee[V]
}

// VDrop skips the first n items of p. All of them are pulled eagerly on the
// first call.
func VDrop[V any](p primitives.Pullee[V], n int64) *DropPullee[V] {
	return &DropPullee[V]{Count: n, up: p}
}

// Call implements Pullee.
func (d *DropPullee[V]) Call(primitives.Unit) V {
	for ; d.Count > 0; d.Count-- {
		primitives.Pull(d.up)
	}
	return primitives.Pull(d.up)
}

// ADropWhile discards items while pred holds; from the first item failing
// pred on, everything is forwarded and pred is not evaluated anymore.
func ADropWhile[A any](
	p primitives.Pushee[A],
	pred func(A) bool,
) primitives.Pushee[A] {
	found := false
	return primitives.PusheeFunc[A](func(a A) {
		if !found {
			if pred(a) {
				return
			}
			found = true
		}
		p.Call(a)
	})
}

// VDropWhile pulls and discards items while pred holds, all in the first
// call, then returns items one by one without evaluating pred.
//
// Like VFilter it loops; with null-terminated streams make pred reject nil.
func VDropWhile[V any](
	p primitives.Pullee[V],
	pred func(V) bool,
) primitives.Pullee[V] {
	found := false
	return primitives.PulleeFunc[V](func() V {
		v := primitives.Pull(p)
		if found {
			return v
		}
		for pred(v) {
			v = primitives.Pull(p)
		}
		found = true
		return v
	})
}
