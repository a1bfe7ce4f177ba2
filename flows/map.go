package flows

import (
	"github.com/arielf-camacho/pue/events"
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
)

// LAMap maps the items a Puer hands to its puee, similar to an observable
// map. Values returned by the puee are left as they are.
//
// -- 1 -- 2 -- 3 -->
//
// -- LAMap f(x) = x*2 --
//
// -- 2 -- 4 -- 6 -->
func LAMap[A, B, V, C any](
	p primitives.Puer[A, V, C],
	f primitives.Puee[A, B],
) primitives.Puer[B, V, C] {
	return LiftFunc(p, func(down primitives.Puee[B, V]) primitives.Puee[A, V] {
		return operators.AMap(down, f)
	})
}

// LVMap maps the values the puee returns to its Puer. Arguments are not
// changed.
func LVMap[A, V, W, C any](
	p primitives.Puer[A, W, C],
	f primitives.Puee[V, W],
) primitives.Puer[A, V, C] {
	return LiftFunc(p, func(down primitives.Puee[A, V]) primitives.Puee[A, W] {
		return operators.VMap(down, f)
	})
}

// LANMap is LAMap for null-terminated items.
func LANMap[A, B, V, C any](
	p primitives.Puer[*A, V, C],
	f primitives.Puee[A, B],
) primitives.Puer[*B, V, C] {
	return LAMap(p, operators.N(f))
}

// LVNMap is LVMap for null-terminated values.
func LVNMap[A, V, W, C any](
	p primitives.Puer[A, *W, C],
	f primitives.Puee[V, W],
) primitives.Puer[A, *V, C] {
	return LVMap(p, operators.N(f))
}

// LAEMap maps the items of an event stream pushed by p.
func LAEMap[A, B, V, C any](
	p primitives.Puer[*events.Event[A], V, C],
	f primitives.Puee[A, B],
) primitives.Puer[*events.Event[B], V, C] {
	return LAMap(p, events.E(f))
}

// LVEMap maps the items of an event stream returned to p.
func LVEMap[A, V, W, C any](
	p primitives.Puer[A, *events.Event[W], C],
	f primitives.Puee[V, W],
) primitives.Puer[A, *events.Event[V], C] {
	return LVMap(p, events.E(f))
}

// LAPeek calls spy with every item p hands to its puee.
func LAPeek[A, V, C any](
	p primitives.Puer[A, V, C],
	spy primitives.Pushee[A],
) primitives.Puer[A, V, C] {
	return LiftFunc(p, func(down primitives.Puee[A, V]) primitives.Puee[A, V] {
		return operators.APeek(down, spy)
	})
}

// LVPeek calls spy with every value the puee returns to p.
func LVPeek[A, V, C any](
	p primitives.Puer[A, V, C],
	spy primitives.Pushee[V],
) primitives.Puer[A, V, C] {
	return LiftFunc(p, func(down primitives.Puee[A, V]) primitives.Puee[A, V] {
		return operators.VPeek(down, spy)
	})
}

// LANPeek is LAPeek skipping the nil terminator.
func LANPeek[A, V, C any](
	p primitives.Puer[*A, V, C],
	spy primitives.Pushee[A],
) primitives.Puer[*A, V, C] {
	return LiftFunc(p, func(down primitives.Puee[*A, V]) primitives.Puee[*A, V] {
		return operators.ANPeek(down, spy)
	})
}

// LVNPeek is LVPeek skipping the nil terminator.
func LVNPeek[A, V, C any](
	p primitives.Puer[A, *V, C],
	spy primitives.Pushee[V],
) primitives.Puer[A, *V, C] {
	return LiftFunc(p, func(down primitives.Puee[A, *V]) primitives.Puee[A, *V] {
		return operators.VNPeek(down, spy)
	})
}
