package operators

import (
	"github.com/arielf-camacho/pue/primitives"
)

var (
	_ = primitives.Pushee[int](&TakePushee[int]{})
	_ = primitives.Pushee[*int](&NTakePushee[int]{})
	_ = primitives.Pullee[*int](&NTakePullee[int]{})
)

// TakePushee forwards only the first Count items.
//
// The owner may raise Count at any time to let more items through.
type TakePushee[A any] struct {
	Count int64

	down primitives.Pushee[A]
}

// ATake forwards only the first n pushed items to p.
func ATake[A any](p primitives.Pushee[A], n int64) *TakePushee[A] {
	return &TakePushee[A]{Count: n, down: p}
}

// Call implements Pushee.
func (t *TakePushee[A]) Call(a A) primitives.Unit {
	if t.Count > 0 {
		t.Count--
		t.down.Call(a)
	}
	return primitives.Unit{}
}

// NTakePushee forwards the first Count items, then exactly one nil, then
// nothing at all.
type NTakePushee[A any] struct {
	Count int64

	down primitives.Pushee[*A]
}

// ANTake forwards the first n items pushed to p, ends the stream with a single
// nil and turns every later call into a no-op.
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -->
//
// -- ANTake(2) --
//
// -- 1 -- 2 -- nil -->
func ANTake[A any](p primitives.Pushee[*A], n int64) *NTakePushee[A] {
	return &NTakePushee[A]{Count: n, down: p}
}

// Call implements Pushee. A nil argument before the allowance is spent is
// forwarded as is: the protocol guarantees it is the last one.
func (t *NTakePushee[A]) Call(a *A) primitives.Unit {
	switch {
	case t.Count > 0:
		t.down.Call(a)
	case t.Count == 0:
		t.down.Call(nil)
	}
	if t.Count >= 0 {
		t.Count--
	}
	return primitives.Unit{}
}

// NTakePullee returns the first Count pulled items and then nil.
type NTakePullee[V any] struct {
	Count int64

	up primitives.Pullee[*V]
}

// VNTake pulls at most n items from p; afterwards it returns nil without
// pulling, like a sequence take.
func VNTake[V any](p primitives.Pullee[*V], n int64) *NTakePullee[V] {
	return &NTakePullee[V]{Count: n, up: p}
}

// Call implements Pullee.
func (t *NTakePullee[V]) Call(primitives.Unit) *V {
	if t.Count <= 0 {
		return nil
	}
	t.Count--
	return primitives.Pull(t.up)
}

// ATakeWhile forwards items while pred holds. The first item failing pred is
// dropped and the operator stays closed for good.
func ATakeWhile[A any](
	p primitives.Pushee[A],
	pred func(A) bool,
) primitives.Pushee[A] {
	end := false
	return primitives.PusheeFunc[A](func(a A) {
		if end {
			return
		}
		if pred(a) {
			p.Call(a)
			return
		}
		end = true
	})
}

// ANTakeWhile forwards items while pred holds, then forwards one nil and
// nothing more. A nil argument closes the stream too.
func ANTakeWhile[A any](
	p primitives.Pushee[*A],
	pred func(A) bool,
) primitives.Pushee[*A] {
	end := false
	return primitives.PusheeFunc[*A](func(a *A) {
		if end {
			return
		}
		if a != nil && pred(*a) {
			p.Call(a)
			return
		}
		end = true
		p.Call(nil)
	})
}

// VNTakeWhile returns pulled items while pred holds; from the first failing
// item on it returns nil forever without pulling again.
func VNTakeWhile[V any](
	p primitives.Pullee[*V],
	pred func(V) bool,
) primitives.Pullee[*V] {
	end := false
	return primitives.PulleeFunc[*V](func() *V {
		if end {
			return nil
		}
		v := primitives.Pull(p)
		if v != nil && pred(*v) {
			return v
		}
		end = true
		return nil
	})
}
