package schedulers

import (
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Scheduler(&FutureScheduler{})

// FutureScheduler wraps a scheduler adding a fixed offset to every delay and
// to the current time: it lives offset milliseconds in the future.
type FutureScheduler struct {
	scheduler primitives.Scheduler
	offset    primitives.Millis
}

// FutureBuilder is a fluent builder for FutureScheduler.
type FutureBuilder struct {
	scheduler primitives.Scheduler
	offset    primitives.Millis
}

// Future creates a new FutureBuilder over s.
func Future(s primitives.Scheduler) *FutureBuilder {
	if s == nil {
		panic("scheduler cannot be nil")
	}
	return &FutureBuilder{scheduler: s}
}

// Offset sets how far in the future the scheduler lives.
func (b *FutureBuilder) Offset(offset primitives.Millis) *FutureBuilder {
	b.offset = offset
	return b
}

// Build creates the FutureScheduler.
func (b *FutureBuilder) Build() *FutureScheduler {
	return &FutureScheduler{scheduler: b.scheduler, offset: b.offset}
}

// Schedule implements primitives.Scheduler.
func (f *FutureScheduler) Schedule(
	delay primitives.Millis,
	action func(),
) primitives.Pushee[primitives.Command] {
	return f.scheduler.Schedule(delay+f.offset, action)
}

// Now implements primitives.Scheduler.
func (f *FutureScheduler) Now() primitives.Millis {
	return f.scheduler.Now() + f.offset
}
