package schedulers

import (
	"github.com/arielf-camacho/pue/logger"
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Scheduler(&ManualScheduler{})

// ManualScheduler is a virtual clock. Time only moves when Advance is called,
// and due actions run synchronously on the goroutine calling Advance or
// RunPending, in deadline order.
//
// It is not safe for concurrent use; it is meant for tests.
type ManualScheduler struct {
	now    primitives.Millis
	seq    uint64
	queue  taskQueue
	logger *logger.Logger
}

// ManualBuilder is a fluent builder for ManualScheduler.
type ManualBuilder struct {
	start  primitives.Millis
	logger *logger.Logger
}

// Manual creates a new ManualBuilder. The clock starts at 0.
func Manual() *ManualBuilder {
	return &ManualBuilder{logger: logger.Nop()}
}

// Start sets the initial time of the clock.
func (b *ManualBuilder) Start(now primitives.Millis) *ManualBuilder {
	b.start = now
	return b
}

// Logger sets the logger used for debug output.
func (b *ManualBuilder) Logger(l *logger.Logger) *ManualBuilder {
	b.logger = l
	return b
}

// Build creates the ManualScheduler.
func (b *ManualBuilder) Build() *ManualScheduler {
	return &ManualScheduler{now: b.start, logger: b.logger}
}

// Schedule queues action to run once the clock reaches now + delay.
func (m *ManualScheduler) Schedule(
	delay primitives.Millis,
	action func(),
) primitives.Pushee[primitives.Command] {
	t := newTask(m.now+max(delay, 0), m.seq, action)
	m.seq++
	m.queue.push(t)

	m.logger.Trace().
		Stringer(logger.FieldTask, t.id).
		Int64(logger.FieldDeadline, t.deadline).
		Msg("task scheduled")

	return primitives.Canceller(func() { t.cancelled.Store(true) })
}

// Now implements primitives.Scheduler.
func (m *ManualScheduler) Now() primitives.Millis {
	return m.now
}

// Advance moves the clock forward by d, running every action that becomes due
// on the way. Actions scheduled by those actions run too if they fall within
// the same window.
func (m *ManualScheduler) Advance(d primitives.Millis) {
	target := m.now + max(d, 0)
	for {
		t := m.queue.popDue(target)
		if t == nil {
			break
		}
		m.now = max(m.now, t.deadline)
		m.run(t)
	}
	m.now = target
}

// RunPending runs the actions due at the current time.
func (m *ManualScheduler) RunPending() {
	m.Advance(0)
}

// Pending returns how many actions wait to run.
func (m *ManualScheduler) Pending() int {
	return m.queue.pending()
}

func (m *ManualScheduler) run(t *task) {
	if t.cancelled.Load() {
		return
	}
	m.logger.Trace().Stringer(logger.FieldTask, t.id).Msg("task running")
	t.action()
}
