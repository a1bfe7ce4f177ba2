package flows

import (
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
)

// Every operator below creates fresh state per attachment: two puees attached
// to the same lifted pusher get independent counters and latches.

// LAFilter pushes only the items satisfying pred.
func LAFilter[A, C any](
	p primitives.Pusher[A, C],
	pred func(A) bool,
) primitives.Pusher[A, C] {
	return liftPush(p, func(down primitives.Pushee[A]) primitives.Pushee[A] {
		return operators.AFilter(down, pred)
	})
}

// LATake pushes only the first n items.
func LATake[A, C any](p primitives.Pusher[A, C], n int64) primitives.Pusher[A, C] {
	return liftPush(p, func(down primitives.Pushee[A]) primitives.Pushee[A] {
		return operators.ATake(down, n)
	})
}

// LANTake pushes the first n items, then one nil, then nothing.
func LANTake[A, C any](p primitives.Pusher[*A, C], n int64) primitives.Pusher[*A, C] {
	return liftPush(p, func(down primitives.Pushee[*A]) primitives.Pushee[*A] {
		return operators.ANTake(down, n)
	})
}

// LVNTake makes the puller see nil after n items.
func LVNTake[V, C any](p primitives.Puller[*V, C], n int64) primitives.Puller[*V, C] {
	return liftPull(p, func(up primitives.Pullee[*V]) primitives.Pullee[*V] {
		return operators.VNTake(up, n)
	})
}

// LADrop drops the first n pushed items.
func LADrop[A, C any](p primitives.Pusher[A, C], n int64) primitives.Pusher[A, C] {
	return liftPush(p, func(down primitives.Pushee[A]) primitives.Pushee[A] {
		return operators.ADrop(down, n)
	})
}

// LVDrop makes the puller skip the first n items.
func LVDrop[V, C any](p primitives.Puller[V, C], n int64) primitives.Puller[V, C] {
	return liftPull(p, func(up primitives.Pullee[V]) primitives.Pullee[V] {
		return operators.VDrop(up, n)
	})
}

// LATakeWhile pushes items while pred holds.
func LATakeWhile[A, C any](
	p primitives.Pusher[A, C],
	pred func(A) bool,
) primitives.Pusher[A, C] {
	return liftPush(p, func(down primitives.Pushee[A]) primitives.Pushee[A] {
		return operators.ATakeWhile(down, pred)
	})
}

// LANTakeWhile pushes items while pred holds, then one nil.
func LANTakeWhile[A, C any](
	p primitives.Pusher[*A, C],
	pred func(A) bool,
) primitives.Pusher[*A, C] {
	return liftPush(p, func(down primitives.Pushee[*A]) primitives.Pushee[*A] {
		return operators.ANTakeWhile(down, pred)
	})
}

// LVNTakeWhile makes the puller see items while pred holds, then nil.
func LVNTakeWhile[V, C any](
	p primitives.Puller[*V, C],
	pred func(V) bool,
) primitives.Puller[*V, C] {
	return liftPull(p, func(up primitives.Pullee[*V]) primitives.Pullee[*V] {
		return operators.VNTakeWhile(up, pred)
	})
}

// LADropWhile drops pushed items while pred holds.
func LADropWhile[A, C any](
	p primitives.Pusher[A, C],
	pred func(A) bool,
) primitives.Pusher[A, C] {
	return liftPush(p, func(down primitives.Pushee[A]) primitives.Pushee[A] {
		return operators.ADropWhile(down, pred)
	})
}

// LVDropWhile makes the puller skip items while pred holds.
func LVDropWhile[V, C any](
	p primitives.Puller[V, C],
	pred func(V) bool,
) primitives.Puller[V, C] {
	return liftPull(p, func(up primitives.Pullee[V]) primitives.Pullee[V] {
		return operators.VDropWhile(up, pred)
	})
}
