package operators

import (
	"github.com/arielf-camacho/pue/primitives"
)

// N lifts f into the null-terminated world: nil is forwarded as nil without
// calling f, any other value is mapped by f.
//
// -- 1 -- 2 -- 3 -- nil -->
//
// -- N(f) f(x) = x*2 --
//
// -- 2 -- 4 -- 6 -- nil -->
func N[A, V any](f primitives.Puee[A, V]) primitives.Puee[*A, *V] {
	return primitives.PueeFunc[*A, *V](func(a *A) *V {
		if a == nil {
			return nil
		}
		v := f.Call(*a)
		return &v
	})
}

// AMap maps the argument before it reaches p. It is plain function
// composition: p(f(b)).
func AMap[A, V, B any](
	p primitives.Puee[A, V],
	f primitives.Puee[B, A],
) primitives.Puee[B, V] {
	return primitives.Compose(f, p)
}

// VMap maps the value returned by p, similar to a sequence map: f(p(a)).
func VMap[A, V, W any](
	p primitives.Puee[A, V],
	f primitives.Puee[V, W],
) primitives.Puee[A, W] {
	return primitives.Compose(p, f)
}

// ANMap is AMap for null-terminated arguments. A nil argument reaches p
// untouched and f is not called.
func ANMap[A, V, B any](
	p primitives.Puee[*A, V],
	f primitives.Puee[B, A],
) primitives.Puee[*B, V] {
	return primitives.Compose(N(f), p)
}

// VNMap is VMap for null-terminated results. A nil result is returned as nil
// and f is not called.
func VNMap[A, V, W any](
	p primitives.Puee[A, *V],
	f primitives.Puee[V, W],
) primitives.Puee[A, *W] {
	return primitives.Compose(p, N(f))
}

// Func is a shorthand to use a plain function where a Puee is expected.
func Func[A, V any](f func(A) V) primitives.Puee[A, V] {
	return primitives.PueeFunc[A, V](f)
}

// Consume is a shorthand to use a plain function where a Pushee is expected.
func Consume[A any](f func(A)) primitives.Pushee[A] {
	return primitives.PusheeFunc[A](f)
}
