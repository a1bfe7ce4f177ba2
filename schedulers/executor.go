package schedulers

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arielf-camacho/pue/logger"
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Scheduler(&ExecutorScheduler{})

// ExecutorScheduler runs every action on a goroutine of its own once its
// delay has elapsed. Actions are not ordered with respect to each other.
//
// A panic raised by an action is recovered, logged and handed to the error
// handler, if any.
type ExecutorScheduler struct {
	clock        func() time.Time
	errorHandler func(error)
	logger       *logger.Logger
}

// ExecutorBuilder is a fluent builder for ExecutorScheduler.
type ExecutorBuilder struct {
	clock        func() time.Time
	errorHandler func(error)
	logger       *logger.Logger
}

// Executor creates a new ExecutorBuilder.
func Executor() *ExecutorBuilder {
	return &ExecutorBuilder{clock: time.Now, logger: logger.Nop()}
}

// Clock sets the source of Now.
func (b *ExecutorBuilder) Clock(clock func() time.Time) *ExecutorBuilder {
	b.clock = clock
	return b
}

// ErrorHandler sets the function receiving the panics of actions.
func (b *ExecutorBuilder) ErrorHandler(handler func(error)) *ExecutorBuilder {
	b.errorHandler = handler
	return b
}

// Logger sets the logger.
func (b *ExecutorBuilder) Logger(l *logger.Logger) *ExecutorBuilder {
	b.logger = l
	return b
}

// Build creates the ExecutorScheduler.
func (b *ExecutorBuilder) Build() *ExecutorScheduler {
	return &ExecutorScheduler{
		clock:        b.clock,
		errorHandler: b.errorHandler,
		logger:       b.logger,
	}
}

// Schedule implements primitives.Scheduler.
func (e *ExecutorScheduler) Schedule(
	delay primitives.Millis,
	action func(),
) primitives.Pushee[primitives.Command] {
	id := uuid.New()
	e.logger.Trace().
		Stringer(logger.FieldTask, id).
		Int64(logger.FieldDelay, delay).
		Msg("task scheduled")

	timer := time.AfterFunc(time.Duration(max(delay, 0))*time.Millisecond, func() {
		e.run(id, action)
	})

	return cancelHandle(func() {
		if timer.Stop() {
			e.logger.Trace().Stringer(logger.FieldTask, id).Msg("task cancelled")
		}
	})
}

// Now implements primitives.Scheduler.
func (e *ExecutorScheduler) Now() primitives.Millis {
	return e.clock().UnixMilli()
}

func (e *ExecutorScheduler) run(id uuid.UUID, action func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := asError(r)
		e.logger.Error().Err(err).Stringer(logger.FieldTask, id).Msg("task panicked")
		if e.errorHandler != nil {
			e.errorHandler(err)
		}
	}()

	action()
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
