package primitives

import "errors"

var (
	// ErrUnsupportedCommand is raised by a Puer controller receiving a command
	// it does not handle.
	ErrUnsupportedCommand = errors.New("unsupported command")
	// ErrUnsupportedEvent is raised by closed-world event operators receiving
	// an event kind they do not handle.
	ErrUnsupportedEvent = errors.New("unsupported event")
	// ErrIllegalState is raised when the stream protocol is violated, for
	// example when reading past the end of a stream.
	ErrIllegalState = errors.New("illegal state")
	// ErrUnsupportedDelay is raised by schedulers that cannot delay actions.
	ErrUnsupportedDelay = errors.New("unsupported delay")
)
