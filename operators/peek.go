package operators

import (
	"github.com/arielf-camacho/pue/primitives"
)

// APeek calls spy with every argument before handing it to p.
func APeek[A, V any](
	p primitives.Puee[A, V],
	spy primitives.Pushee[A],
) primitives.Puee[A, V] {
	return primitives.PueeFunc[A, V](func(a A) V {
		spy.Call(a)
		return p.Call(a)
	})
}

// VPeek calls spy with every value returned by p, similar to a doOnNext for
// pull based code.
func VPeek[A, V any](
	p primitives.Puee[A, V],
	spy primitives.Pushee[V],
) primitives.Puee[A, V] {
	return primitives.AlsoPeek(p, spy)
}

// ANPeek is APeek that skips the spy for the nil terminator.
func ANPeek[A, V any](
	p primitives.Puee[*A, V],
	spy primitives.Pushee[A],
) primitives.Puee[*A, V] {
	return primitives.PueeFunc[*A, V](func(a *A) V {
		if a != nil {
			spy.Call(*a)
		}
		return p.Call(a)
	})
}

// VNPeek is VPeek that skips the spy for the nil terminator.
func VNPeek[A, V any](
	p primitives.Puee[A, *V],
	spy primitives.Pushee[V],
) primitives.Puee[A, *V] {
	return primitives.PueeFunc[A, *V](func(a A) *V {
		v := p.Call(a)
		if v != nil {
			spy.Call(*v)
		}
		return v
	})
}
