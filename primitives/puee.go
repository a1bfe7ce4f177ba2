package primitives

// Unit is the empty argument of a Pullee and the empty result of a Pushee.
type Unit = struct{}

// Puee represents any passive function object: it is called with an argument
// of type T and reacts by returning a value of type R. A Puee may own mutable
// state, so calling it twice with the same argument can return different
// results.
type Puee[T any, R any] interface {
	Call(T) R
}

// PueeFunc adapts an ordinary function to the Puee interface.
type PueeFunc[T any, R any] func(T) R

// Call implements Puee.
func (f PueeFunc[T, R]) Call(t T) R {
	return f(t)
}

// Pullee is a passive producer. Every call yields the next item. For pointer
// payloads a nil item means the stream has ended.
type Pullee[R any] = Puee[Unit, R]

// Pushee is a passive consumer. Every call delivers one item. For pointer
// payloads a nil item means the stream has ended and the Pushee must not be
// called again.
type Pushee[T any] = Puee[T, Unit]

// PulleeFunc adapts a zero argument function to the Pullee interface.
type PulleeFunc[R any] func() R

// Call implements Pullee.
func (f PulleeFunc[R]) Call(Unit) R {
	return f()
}

// PusheeFunc adapts a function without results to the Pushee interface.
type PusheeFunc[T any] func(T)

// Call implements Pushee.
func (f PusheeFunc[T]) Call(t T) Unit {
	f(t)
	return Unit{}
}

// Pull calls the given pullee once.
func Pull[R any](p Pullee[R]) R {
	return p.Call(Unit{})
}

// Identity returns a Puee that returns its argument unchanged.
func Identity[T any]() Puee[T, T] {
	return PueeFunc[T, T](func(t T) T { return t })
}

// Compose returns g after f: the result of f is given to g.
//
// -- a -- Compose(f, g) -- g(f(a)) -->
func Compose[A, B, C any](f Puee[A, B], g Puee[B, C]) Puee[A, C] {
	return PueeFunc[A, C](func(a A) C {
		return g.Call(f.Call(a))
	})
}

// AlsoPeek returns a Puee that calls f, hands the result to spy and then
// returns that same result.
func AlsoPeek[A, V any](f Puee[A, V], spy Pushee[V]) Puee[A, V] {
	return PueeFunc[A, V](func(a A) V {
		v := f.Call(a)
		spy.Call(v)
		return v
	})
}
