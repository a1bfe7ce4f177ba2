package schedulers

import (
	"context"
	"sync"
	"time"

	"github.com/arielf-camacho/pue/logger"
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Scheduler(&LoopScheduler{})

// LoopScheduler runs every action on one goroutine, in deadline order, and
// actions with the same deadline in the order they were scheduled. Each action
// happens before the next one starts, so puees driven only through a
// LoopScheduler need no locking.
//
// Schedule can be called from any goroutine. The loop stops when its context
// is done or Close is called; actions still queued then never run.
type LoopScheduler struct {
	ctx          context.Context
	clock        func() time.Time
	errorHandler func(error)
	logger       *logger.Logger

	mu    sync.Mutex
	seq   uint64
	queue taskQueue

	wake   chan struct{}
	closed chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// LoopBuilder is a fluent builder for LoopScheduler.
type LoopBuilder struct {
	ctx          context.Context
	clock        func() time.Time
	errorHandler func(error)
	logger       *logger.Logger
}

// Loop creates a new LoopBuilder.
func Loop() *LoopBuilder {
	return &LoopBuilder{
		ctx:    context.Background(),
		clock:  time.Now,
		logger: logger.Nop(),
	}
}

// Context sets the context bounding the life of the loop.
func (b *LoopBuilder) Context(ctx context.Context) *LoopBuilder {
	b.ctx = ctx
	return b
}

// Clock sets the source of Now.
func (b *LoopBuilder) Clock(clock func() time.Time) *LoopBuilder {
	b.clock = clock
	return b
}

// ErrorHandler sets the function receiving the panics of actions. Without
// one, panics are only logged.
func (b *LoopBuilder) ErrorHandler(handler func(error)) *LoopBuilder {
	b.errorHandler = handler
	return b
}

// Logger sets the logger.
func (b *LoopBuilder) Logger(l *logger.Logger) *LoopBuilder {
	b.logger = l
	return b
}

// Build creates the LoopScheduler and starts its goroutine.
func (b *LoopBuilder) Build() *LoopScheduler {
	l := &LoopScheduler{
		ctx:          b.ctx,
		clock:        b.clock,
		errorHandler: b.errorHandler,
		logger:       b.logger,
		wake:         make(chan struct{}, 1),
		closed:       make(chan struct{}),
	}

	l.wg.Add(1)
	go l.start()

	return l
}

// Schedule implements primitives.Scheduler.
func (l *LoopScheduler) Schedule(
	delay primitives.Millis,
	action func(),
) primitives.Pushee[primitives.Command] {
	l.mu.Lock()
	t := newTask(l.Now()+max(delay, 0), l.seq, action)
	l.seq++
	l.queue.push(t)
	l.mu.Unlock()

	l.logger.Trace().
		Stringer(logger.FieldTask, t.id).
		Int64(logger.FieldDeadline, t.deadline).
		Msg("task scheduled")

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return cancelHandle(func() { t.cancelled.Store(true) })
}

// Now implements primitives.Scheduler.
func (l *LoopScheduler) Now() primitives.Millis {
	return l.clock().UnixMilli()
}

// Pending returns how many actions wait to run.
func (l *LoopScheduler) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queue.pending()
}

// Close stops the loop and waits for the running action, if any, to return.
// Calling it from an action deadlocks.
func (l *LoopScheduler) Close() {
	l.once.Do(func() { close(l.closed) })
	l.wg.Wait()
}

// Wait blocks until the loop has stopped.
func (l *LoopScheduler) Wait() {
	l.wg.Wait()
}

func (l *LoopScheduler) start() {
	defer l.wg.Done()
	defer l.logger.Debug().Msg("loop stopped")

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		due, wait := l.next()
		if due != nil {
			l.run(due)
			continue
		}

		var timeout <-chan time.Time
		if wait > 0 {
			timer.Reset(time.Duration(wait) * time.Millisecond)
			timeout = timer.C
		}

		select {
		case <-l.ctx.Done():
			return
		case <-l.closed:
			return
		case <-l.wake:
		case <-timeout:
		}
		timer.Stop()
	}
}

// next pops the first due task. When none is due it returns how long to wait
// for the earliest one, or 0 when the queue is empty.
func (l *LoopScheduler) next() (*task, primitives.Millis) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.Now()
	if t := l.queue.popDue(now); t != nil {
		return t, 0
	}
	if l.queue.Len() == 0 {
		return nil, 0
	}
	return nil, l.queue[0].deadline - now
}

func (l *LoopScheduler) run(t *task) {
	if t.cancelled.Load() {
		return
	}
	select {
	case <-l.closed:
		return
	default:
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := asError(r)
		l.logger.Error().Err(err).Stringer(logger.FieldTask, t.id).Msg("task panicked")
		if l.errorHandler != nil {
			l.errorHandler(err)
		}
	}()

	t.action()
}
