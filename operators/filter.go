package operators

import (
	"github.com/arielf-camacho/pue/primitives"
)

// AFilter forwards to p only the items for which pred returns true.
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -->
//
// -- AFilter f(x) = x > 2 --
//
// ------------ 3 -- 4 -- 5 -->
func AFilter[A any](
	p primitives.Pushee[A],
	pred func(A) bool,
) primitives.Pushee[A] {
	return primitives.PusheeFunc[A](func(a A) {
		if pred(a) {
			p.Call(a)
		}
	})
}

// VFilter pulls from p until an item satisfies pred and returns it.
//
// It blocks (loops) until a matching item is found. With null-terminated
// streams the predicate has to accept nil, otherwise pulling past the end of
// the stream never returns. See VNFilter.
func VFilter[V any](
	p primitives.Pullee[V],
	pred func(V) bool,
) primitives.Pullee[V] {
	return primitives.PulleeFunc[V](func() V {
		v := primitives.Pull(p)
		for !pred(v) {
			v = primitives.Pull(p)
		}
		return v
	})
}

// VNFilter is VFilter for null-terminated streams: the nil terminator always
// passes, so the loop ends with the stream.
func VNFilter[V any](
	p primitives.Pullee[*V],
	pred func(V) bool,
) primitives.Pullee[*V] {
	return VFilter(p, func(v *V) bool { return v == nil || pred(*v) })
}
