// Package flows turns passive operators into active ones.
//
// Lift rewrites the puee handed to an active object, so any operator written
// for Pushees or Pullees applies to the corresponding Pusher or Puller with
// its state created once per attachment. Commands always go straight to the
// inner Puer: lifting never changes what a controller does.
package flows

import (
	"github.com/arielf-camacho/pue/primitives"
)

// Lift returns a Puer that, on attach, rewrites the given puee with oper and
// attaches the result to p. The controller returned is p's controller.
//
// Lift neither buffers nor coalesces calls: the lifted Puer calls the puee
// exactly as many times as oper does.
func Lift[T, R, X, Y, C any](
	p primitives.Puer[T, R, C],
	oper primitives.Puee[primitives.Puee[X, Y], primitives.Puee[T, R]],
) primitives.Puer[X, Y, C] {
	return primitives.PuerFunc[X, Y, C](func(f primitives.Puee[X, Y]) primitives.Pushee[C] {
		return p.Call(oper.Call(f))
	})
}

// LiftFunc is Lift taking the operator as a plain function.
func LiftFunc[T, R, X, Y, C any](
	p primitives.Puer[T, R, C],
	oper func(primitives.Puee[X, Y]) primitives.Puee[T, R],
) primitives.Puer[X, Y, C] {
	return Lift(p, primitives.PueeFunc[primitives.Puee[X, Y], primitives.Puee[T, R]](oper))
}

// liftPush lifts a pushee operator to pushers.
func liftPush[A, B, C any](
	p primitives.Pusher[A, C],
	oper func(primitives.Pushee[B]) primitives.Pushee[A],
) primitives.Pusher[B, C] {
	return LiftFunc(p, oper)
}

// liftPull lifts a pullee operator to pullers.
func liftPull[V, W, C any](
	p primitives.Puller[V, C],
	oper func(primitives.Pullee[W]) primitives.Pullee[V],
) primitives.Puller[W, C] {
	return LiftFunc(p, oper)
}
