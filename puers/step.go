// Package puers holds concrete active objects: pushers and pullers that
// decide themselves when to call the puee attached to them.
//
// None of them lock internally. Wrap them with flows.LSync, or drive them from
// a serializing scheduler, when they are reached from several goroutines.
package puers

import (
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pusher[int64, primitives.Command](&StepPusher{})

// StepPusher pushes counter values when it receives Step, Tick or Tock, but
// only while started. Each of these commands emits 0, 1, ..., n-1 where n is
// the amount configured for that command.
//
// Supported commands: Start, Stop, Pause, Cancel, Step, Tick, Tock and
// Inject[int64]. Anything else panics with ErrUnsupportedCommand.
//
// -- Start -- Step -- Stop -- Step -- Start -- Tick -->
//
// -- StepPusher step = 2, tick = 1 --
//
// ---------- 0, 1 ------------------------ 0 ------->
type StepPusher struct {
	step int64
	tick int64
	tock int64
}

// StepPusherBuilder is a fluent builder for StepPusher.
type StepPusherBuilder struct {
	step int64
	tick int64
	tock int64
}

// Steps creates a new StepPusherBuilder. Every command emits one value by
// default.
func Steps() *StepPusherBuilder {
	return &StepPusherBuilder{step: 1, tick: 1, tock: 1}
}

// Step sets how many values a Step command emits.
func (b *StepPusherBuilder) Step(n int64) *StepPusherBuilder {
	b.step = n
	return b
}

// Tick sets how many values a Tick command emits.
func (b *StepPusherBuilder) Tick(n int64) *StepPusherBuilder {
	b.tick = n
	return b
}

// Tock sets how many values a Tock command emits.
func (b *StepPusherBuilder) Tock(n int64) *StepPusherBuilder {
	b.tock = n
	return b
}

// Build creates the StepPusher.
func (b *StepPusherBuilder) Build() *StepPusher {
	return &StepPusher{step: b.step, tick: b.tick, tock: b.tock}
}

// Call attaches p and returns its controller. The new attachment starts
// stopped.
func (s *StepPusher) Call(p primitives.Pushee[int64]) primitives.Pushee[primitives.Command] {
	return &StepController{pushee: p, step: s.step, tick: s.tick, tock: s.tock}
}

// StepController is the state of one StepPusher attachment.
type StepController struct {
	pushee  primitives.Pushee[int64]
	started bool
	step    int64
	tick    int64
	tock    int64
}

// Started tells whether the attachment is currently emitting.
func (c *StepController) Started() bool {
	return c.started
}

// Call implements primitives.Pushee.
func (c *StepController) Call(cmd primitives.Command) primitives.Unit {
	switch cmd := cmd.(type) {
	case primitives.Signal:
		switch cmd {
		case primitives.Cancel:
			c.started = false
			c.pushee = nil
		case primitives.Stop, primitives.Pause:
			c.started = false
		case primitives.Start:
			c.started = true
		case primitives.Step:
			c.emit(c.step)
		case primitives.Tick:
			c.emit(c.tick)
		case primitives.Tock:
			c.emit(c.tock)
		default:
			panic(primitives.Unsupported(cmd))
		}
	case primitives.Inject[int64]:
		if c.started && c.pushee != nil {
			c.pushee.Call(cmd.Item)
		}
	default:
		panic(primitives.Unsupported(cmd))
	}
	return primitives.Unit{}
}

// emit stops early if the pushee stops or cancels the attachment.
func (c *StepController) emit(n int64) {
	for i := int64(0); i < n; i++ {
		if !c.started || c.pushee == nil {
			return
		}
		c.pushee.Call(i)
	}
}
