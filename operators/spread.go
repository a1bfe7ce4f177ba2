package operators

import (
	"slices"

	"github.com/arielf-camacho/pue/primitives"
)

// PusheeOf returns a pushee that forwards every item to all the given pushees,
// in order.
//
// -- 1 -- 2 -- 3 -->
//
// -- PusheeOf(a, b, c) --
//
// a: -- 1 -- 2 -- 3 -->
//
// b: -- 1 -- 2 -- 3 -->
//
// c: -- 1 -- 2 -- 3 -->
func PusheeOf[T any](pushees ...primitives.Pushee[T]) primitives.Pushee[T] {
	pushees = slices.Clone(pushees)
	return primitives.PusheeFunc[T](func(t T) {
		for _, p := range pushees {
			p.Call(t)
		}
	})
}
