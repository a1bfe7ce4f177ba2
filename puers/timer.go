package puers

import (
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pusher[*int64, primitives.Command](&Timer{})

// Timer pushes a counter, starting at 0, once per interval pulled from an
// interval source. A nil interval ends the stream: the Timer pushes one nil
// and cancels itself. Intervals <= 0 mean "right now".
//
// Supported commands:
//   - Start runs the timer. It is a no-op while already running.
//   - Stop and Pause drop the pending tick; a later Start resumes counting.
//   - Cancel detaches the pushee for good.
//   - Step, Tick and Tock push the next counter value at once, running or not.
//   - Inject[int64] and Inject[*int64] push the given value at once.
//
// -- Start ---------------------------------------->
//
// -- Timer intervals = 100, 100, nil --
//
// -------- 100ms: 0 -- 200ms: 1 -- nil ----------->
//
// Every attachment has its own counter, but all of them share the same
// scheduler and interval source: an interval pulled by one attachment is gone
// for the others.
type Timer struct {
	scheduler primitives.Scheduler
	intervals primitives.Pullee[*primitives.Millis]
}

// NewTimer creates a Timer scheduling its ticks on s.
func NewTimer(
	s primitives.Scheduler,
	intervals primitives.Pullee[*primitives.Millis],
) *Timer {
	if s == nil {
		panic("scheduler cannot be nil")
	}
	if intervals == nil {
		panic("intervals cannot be nil")
	}

	return &Timer{scheduler: s, intervals: intervals}
}

// Call attaches p. The attachment starts idle.
func (t *Timer) Call(p primitives.Pushee[*int64]) primitives.Pushee[primitives.Command] {
	return &TimerController{timer: t, pushee: p}
}

type timerState uint8

const (
	timerIdle timerState = iota
	timerRunning
	timerCancelled
)

// TimerController is the state of one Timer attachment.
type TimerController struct {
	timer   *Timer
	pushee  primitives.Pushee[*int64]
	counter int64
	state   timerState
	pending primitives.Pushee[primitives.Command]
	// run changes on every start, so a loop or tick outliving a restart
	// made from within the pushee can tell it is stale.
	run uint64
}

// Running tells whether a tick is pending or being delivered.
func (c *TimerController) Running() bool {
	return c.state == timerRunning
}

// Cancelled tells whether the attachment is gone for good.
func (c *TimerController) Cancelled() bool {
	return c.state == timerCancelled
}

// Call implements primitives.Pushee.
func (c *TimerController) Call(cmd primitives.Command) primitives.Unit {
	switch cmd := cmd.(type) {
	case primitives.Signal:
		switch cmd {
		case primitives.Step, primitives.Tick, primitives.Tock:
			c.next()
		case primitives.Stop, primitives.Pause:
			c.unschedule()
			if c.state == timerRunning {
				c.state = timerIdle
			}
		case primitives.Cancel:
			c.cancel()
		case primitives.Start:
			c.start()
		default:
			panic(primitives.Unsupported(cmd))
		}
	case primitives.Inject[int64]:
		c.push(&cmd.Item)
	case primitives.Inject[*int64]:
		c.push(cmd.Item)
	default:
		panic(primitives.Unsupported(cmd))
	}
	return primitives.Unit{}
}

// start pulls intervals until one has to be waited for. Zero intervals are
// consumed in this loop, so a long run of them does not grow the stack.
func (c *TimerController) start() {
	if c.state != timerIdle {
		return
	}
	c.state = timerRunning
	c.run++
	run := c.run

	for c.current(run) {
		interval := primitives.Pull(c.timer.intervals)
		if interval == nil {
			c.push(nil)
			c.cancel()
			return
		}
		if *interval <= 0 {
			c.next()
			continue
		}
		c.pending = c.timer.scheduler.Schedule(*interval, c.fire)
		return
	}
}

func (c *TimerController) fire() {
	c.pending = nil
	if c.state != timerRunning {
		return
	}
	run := c.run
	c.next()
	if c.current(run) {
		c.state = timerIdle
		c.start()
	}
}

// current tells whether the run started as run is still going on.
func (c *TimerController) current(run uint64) bool {
	return c.state == timerRunning && c.run == run
}

func (c *TimerController) next() {
	if c.pushee == nil {
		return
	}
	v := c.counter
	c.counter++
	c.pushee.Call(&v)
}

func (c *TimerController) push(v *int64) {
	if c.pushee != nil {
		c.pushee.Call(v)
	}
}

func (c *TimerController) unschedule() {
	if c.pending != nil {
		pending := c.pending
		c.pending = nil
		pending.Call(primitives.Cancel)
	}
}

func (c *TimerController) cancel() {
	c.unschedule()
	c.pushee = nil
	c.state = timerCancelled
}
