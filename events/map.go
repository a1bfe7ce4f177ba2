package events

import (
	"fmt"

	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
)

// E maps the payload of items with f. Warnings, errors and the nil terminator
// pass through unchanged. Any other kind panics with ErrUnsupportedEvent.
func E[A, V any](f primitives.Puee[A, V]) primitives.Puee[*Event[A], *Event[V]] {
	return primitives.PueeFunc[*Event[A], *Event[V]](func(e *Event[A]) *Event[V] {
		if e == nil {
			return nil
		}
		switch e.Kind {
		case KindItem:
			return Item(f.Call(e.Item))
		case KindWarning:
			return Warning[V](e.Err)
		case KindError:
			return Error[V](e.Err)
		}
		panic(Unsupported(e))
	})
}

// Catch works like E but a panic raised by f becomes an Error event in place
// of the item, instead of unwinding the caller.
func Catch[A, V any](f primitives.Puee[A, V]) primitives.Puee[*Event[A], *Event[V]] {
	safe := primitives.PueeFunc[A, *Event[V]](func(a A) (ev *Event[V]) {
		defer func() {
			if r := recover(); r != nil {
				ev = Error[V](asError(r))
			}
		}()
		return Item(f.Call(a))
	})

	return primitives.PueeFunc[*Event[A], *Event[V]](func(e *Event[A]) *Event[V] {
		if e == nil {
			return nil
		}
		switch e.Kind {
		case KindItem:
			return safe.Call(e.Item)
		case KindWarning:
			return Warning[V](e.Err)
		case KindError:
			return Error[V](e.Err)
		}
		panic(Unsupported(e))
	})
}

// Bind maps the payload of items with f, which answers with an event of its
// own: an item may turn into a warning or an error. Other kinds pass through
// as in E.
func Bind[A, V any](f primitives.Puee[A, *Event[V]]) primitives.Puee[*Event[A], *Event[V]] {
	return primitives.PueeFunc[*Event[A], *Event[V]](func(e *Event[A]) *Event[V] {
		if e == nil {
			return nil
		}
		switch e.Kind {
		case KindItem:
			return f.Call(e.Item)
		case KindWarning:
			return Warning[V](e.Err)
		case KindError:
			return Error[V](e.Err)
		}
		panic(Unsupported(e))
	})
}

// AEMap maps items before they reach the event pushee p.
func AEMap[A, B any](p EPushee[A], f primitives.Puee[B, A]) EPushee[B] {
	return operators.AMap(p, E(f))
}

// VEMap maps items pulled from the event pullee p.
func VEMap[V, W any](p EPullee[V], f primitives.Puee[V, W]) EPullee[W] {
	return operators.VMap(p, E(f))
}

// VItems strips the envelope from a pulled event stream. It forwards the nil
// terminator and panics on anything that is not an item.
func VItems[I any](p EPullee[I]) primitives.Pullee[*I] {
	return operators.VNMap(p, unwrap[I]())
}

// AItems is the push side dual of VItems: it adapts a null-terminated pushee
// so it accepts events, panicking on anything that is not an item.
func AItems[I any](p primitives.Pushee[*I]) EPushee[I] {
	return operators.ANMap(p, unwrap[I]())
}

func unwrap[I any]() primitives.Puee[Event[I], I] {
	return primitives.PueeFunc[Event[I], I](func(e Event[I]) I {
		if e.Kind != KindItem {
			panic(Unsupported(&e))
		}
		return e.Item
	})
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
