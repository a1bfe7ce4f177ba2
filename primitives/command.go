package primitives

import "fmt"

// Command is sent through a controller to steer an active object. The set of
// commands is open: a Puer documents the ones it supports and panics with
// ErrUnsupportedCommand on everything else. Every Puer supports Cancel.
type Command interface {
	Name() string
}

// Signal is a command without payload.
type Signal string

// Name implements Command.
func (s Signal) Name() string {
	return string(s)
}

const (
	// Cancel detaches the puee for good. Sending it twice is a no-op.
	Cancel Signal = "cancel"
	// Start makes the active object run.
	Start Signal = "start"
	// Stop suspends the active object; a later Start resumes it.
	Stop Signal = "stop"
	// Pause behaves like Stop.
	Pause Signal = "pause"
	Step  Signal = "step"
	Tick  Signal = "tick"
	Tock  Signal = "tock"
)

// Request asks an active object for Count more items. It is reserved for a
// future backpressure protocol; none of the bundled puers implement it.
type Request struct {
	Count int64
}

// Name implements Command.
func (Request) Name() string {
	return "request"
}

// Inject asks an active object to push Item immediately, as if it had produced
// it itself.
type Inject[T any] struct {
	Item T
}

// Name implements Command.
func (Inject[T]) Name() string {
	return "inject"
}

// Unsupported returns the value a Puer panics with when it receives a command
// it does not handle.
func Unsupported(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: <nil>", ErrUnsupportedCommand)
	}
	return fmt.Errorf("%w: %s (%T)", ErrUnsupportedCommand, cmd.Name(), cmd)
}

// Canceller returns a controller that runs detach on the first Cancel and
// ignores further ones. Any other command panics.
func Canceller(detach func()) Pushee[Command] {
	done := false
	return PusheeFunc[Command](func(cmd Command) {
		if cmd != Cancel {
			panic(Unsupported(cmd))
		}
		if done {
			return
		}
		done = true
		detach()
	})
}
