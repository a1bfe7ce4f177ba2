package operators

import (
	"github.com/samber/lo"

	"github.com/arielf-camacho/pue/primitives"
)

// The zip operators evaluate the local side first and the external pullee
// second. Both sides are evaluated on every call, the terminal one included.

// AZip pairs every pushed item with one item pulled from pullee and pushes the
// pair to p. The pushed stream drives, the pulled stream follows.
func AZip[A, B any](
	p primitives.Pushee[lo.Tuple2[A, B]],
	pullee primitives.Pullee[B],
) primitives.Pushee[A] {
	return primitives.PusheeFunc[A](func(a A) {
		p.Call(lo.T2(a, primitives.Pull(pullee)))
	})
}

// VZip pulls one item from p and one from pullee and returns them as a pair.
func VZip[V, W any](
	p primitives.Pullee[V],
	pullee primitives.Pullee[W],
) primitives.Pullee[lo.Tuple2[V, W]] {
	return primitives.PulleeFunc[lo.Tuple2[V, W]](func() lo.Tuple2[V, W] {
		v := primitives.Pull(p)
		return lo.T2(v, primitives.Pull(pullee))
	})
}

// ANZip is AZip for null-terminated streams. The pullee is pulled on every
// push, the nil one included; if either side is nil the pair is nil.
func ANZip[A, B any](
	p primitives.Pushee[*lo.Tuple2[A, B]],
	pullee primitives.Pullee[*B],
) primitives.Pushee[*A] {
	return primitives.PusheeFunc[*A](func(a *A) {
		b := primitives.Pull(pullee)
		if a == nil || b == nil {
			p.Call(nil)
			return
		}
		p.Call(lo.ToPtr(lo.T2(*a, *b)))
	})
}

// VNZip is VZip for null-terminated streams: it returns nil as soon as either
// side returns nil. Both sides are still pulled on that terminal call.
func VNZip[V, W any](
	p primitives.Pullee[*V],
	pullee primitives.Pullee[*W],
) primitives.Pullee[*lo.Tuple2[V, W]] {
	return primitives.PulleeFunc[*lo.Tuple2[V, W]](func() *lo.Tuple2[V, W] {
		v := primitives.Pull(p)
		w := primitives.Pull(pullee)
		if v == nil || w == nil {
			return nil
		}
		return lo.ToPtr(lo.T2(*v, *w))
	})
}
