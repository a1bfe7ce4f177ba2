package primitives

// Puer represents any active object. It is given a Puee and from then on
// decides itself when, and how many times, to call it. In return it hands out
// a controller: a Pushee of commands that steers that one attachment.
//
// A Puer is itself just a Puee taking a Puee:
//
//	Puer[T, R, Cmd] = Puee[Puee[T, R], Pushee[Cmd]]
type Puer[T any, R any, Cmd any] = Puee[Puee[T, R], Pushee[Cmd]]

// Puller is an active consumer: it pulls from the attached Pullee.
type Puller[R any, Cmd any] = Puer[Unit, R, Cmd]

// Pusher is an active producer: it pushes into the attached Pushee.
type Pusher[T any, Cmd any] = Puer[T, Unit, Cmd]

// PuerFunc adapts an attach function to the Puer interface.
type PuerFunc[T any, R any, Cmd any] func(Puee[T, R]) Pushee[Cmd]

// Call implements Puer.
func (f PuerFunc[T, R, Cmd]) Call(p Puee[T, R]) Pushee[Cmd] {
	return f(p)
}

// PusherFunc adapts an attach function to the Pusher interface.
type PusherFunc[T any, Cmd any] func(Pushee[T]) Pushee[Cmd]

// Call implements Pusher.
func (f PusherFunc[T, Cmd]) Call(p Puee[T, Unit]) Pushee[Cmd] {
	return f(p)
}

// PullerFunc adapts an attach function to the Puller interface.
type PullerFunc[R any, Cmd any] func(Pullee[R]) Pushee[Cmd]

// Call implements Puller.
func (f PullerFunc[R, Cmd]) Call(p Puee[Unit, R]) Pushee[Cmd] {
	return f(p)
}
