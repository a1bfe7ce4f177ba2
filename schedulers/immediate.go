package schedulers

import (
	"fmt"
	"time"

	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Scheduler(&ImmediateScheduler{})

// ImmediateScheduler runs actions synchronously, inside Schedule. It cannot
// delay anything: a positive delay panics with ErrUnsupportedDelay.
type ImmediateScheduler struct {
	clock func() time.Time
}

// ImmediateBuilder is a fluent builder for ImmediateScheduler.
type ImmediateBuilder struct {
	clock func() time.Time
}

// Immediate creates a new ImmediateBuilder.
func Immediate() *ImmediateBuilder {
	return &ImmediateBuilder{clock: time.Now}
}

// Clock sets the source of Now.
func (b *ImmediateBuilder) Clock(clock func() time.Time) *ImmediateBuilder {
	b.clock = clock
	return b
}

// Build creates the ImmediateScheduler.
func (b *ImmediateBuilder) Build() *ImmediateScheduler {
	return &ImmediateScheduler{clock: b.clock}
}

// Schedule runs action now. The returned handle does nothing.
func (s *ImmediateScheduler) Schedule(
	delay primitives.Millis,
	action func(),
) primitives.Pushee[primitives.Command] {
	if delay > 0 {
		panic(fmt.Errorf("%w: %dms", primitives.ErrUnsupportedDelay, delay))
	}
	action()
	return cancelHandle(func() {})
}

// Now implements primitives.Scheduler.
func (s *ImmediateScheduler) Now() primitives.Millis {
	return s.clock().UnixMilli()
}
