package flows

import (
	"github.com/samber/lo"

	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
)

// ScanPushee folds every pushed item into Acc and forwards the new value.
type ScanPushee[A, T any] struct {
	Acc    A
	reduce func(A, T) A
	down   primitives.Pushee[A]
}

var _ = primitives.Pushee[int](&ScanPushee[int, int]{})

// Call implements primitives.Pushee.
func (s *ScanPushee[A, T]) Call(t T) primitives.Unit {
	s.Acc = s.reduce(s.Acc, t)
	return s.down.Call(s.Acc)
}

// Scan pushes the running reduction of the items pushed by p, starting from
// seed. Every attachment gets its own accumulator.
//
// -- 1 -- 2 -- 3 -->
//
// -- Scan seed = 0, f(acc, x) = acc + x --
//
// -- 1 -- 3 -- 6 -->
func Scan[A, T, C any](
	p primitives.Pusher[T, C],
	seed A,
	reduce func(acc A, item T) A,
) primitives.Pusher[A, C] {
	return liftPush(p, func(down primitives.Pushee[A]) primitives.Pushee[T] {
		return &ScanPushee[A, T]{Acc: seed, reduce: reduce, down: down}
	})
}

// WithLast pairs every pushed item with the one before it. The first item is
// paired with seed.
//
// -- 1 -- 2 -- 3 -->
//
// -- WithLast seed = 0 --
//
// -- (0,1) -- (1,2) -- (2,3) -->
func WithLast[T, C any](
	p primitives.Pusher[T, C],
	seed T,
) primitives.Pusher[lo.Tuple2[T, T], C] {
	return Scan(p, lo.T2(seed, seed), func(last lo.Tuple2[T, T], curr T) lo.Tuple2[T, T] {
		return lo.T2(last.B, curr)
	})
}

// DropRepeatsFunc drops items equal, according to equals, to the one pushed
// right before them. The first item is compared with seed.
func DropRepeatsFunc[T, C any](
	p primitives.Pusher[T, C],
	seed T,
	equals func(a, b T) bool,
) primitives.Pusher[T, C] {
	pairs := LAFilter(WithLast(p, seed), func(pair lo.Tuple2[T, T]) bool {
		return !equals(pair.A, pair.B)
	})
	return LAMap(pairs, operators.Func(func(pair lo.Tuple2[T, T]) T { return pair.B }))
}

// DropRepeats is DropRepeatsFunc using ==.
//
// -- 1 -- 1 -- 2 -- 2 -- 1 -->
//
// -- DropRepeats seed = 0 --
//
// -- 1 ------- 2 ------- 1 -->
func DropRepeats[T comparable, C any](
	p primitives.Pusher[T, C],
	seed T,
) primitives.Pusher[T, C] {
	return DropRepeatsFunc(p, seed, func(a, b T) bool { return a == b })
}

// ChangesPushee forwards the items differing from the one before them.
type ChangesPushee[T comparable] struct {
	last T
	seen bool
	down primitives.Pushee[T]
}

var _ = primitives.Pushee[int](&ChangesPushee[int]{})

// Call implements primitives.Pushee.
func (c *ChangesPushee[T]) Call(t T) primitives.Unit {
	if c.seen && c.last == t {
		return primitives.Unit{}
	}
	c.last, c.seen = t, true
	return c.down.Call(t)
}

// Changes is DropRepeats without a seed: the first item always passes, even
// when it is the zero value.
//
// -- 0 -- 0 -- 2 -- 2 -- 0 -->
//
// -- Changes --
//
// -- 0 ------- 2 ------- 0 -->
func Changes[T comparable, C any](p primitives.Pusher[T, C]) primitives.Pusher[T, C] {
	return liftPush(p, func(down primitives.Pushee[T]) primitives.Pushee[T] {
		return &ChangesPushee[T]{down: down}
	})
}
