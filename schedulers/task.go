// Package schedulers provides the primitives.Scheduler implementations used
// to bring time and concurrency into a pipeline.
//
// Pick one by its ordering guarantee:
//   - ManualScheduler runs actions on the goroutine advancing its virtual
//     clock. Use it in tests.
//   - LoopScheduler runs every action on one goroutine, in deadline order.
//     Successive actions are in a happens-before relationship.
//   - ExecutorScheduler runs every action on its own goroutine. Nothing is
//     ordered; wrap shared puees with flows.Sync.
//   - ImmediateScheduler runs actions synchronously and refuses delays.
//   - FutureScheduler shifts another scheduler by a fixed offset.
package schedulers

import (
	"container/heap"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/arielf-camacho/pue/primitives"
)

// task is an action waiting for its deadline.
type task struct {
	id        uuid.UUID
	deadline  primitives.Millis
	seq       uint64
	action    func()
	cancelled atomic.Bool
}

func newTask(deadline primitives.Millis, seq uint64, action func()) *task {
	return &task{id: uuid.New(), deadline: deadline, seq: seq, action: action}
}

// taskQueue orders tasks by deadline, then by scheduling order.
type taskQueue []*task

var _ heap.Interface = (*taskQueue)(nil)

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].deadline != q[j].deadline {
		return q[i].deadline < q[j].deadline
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

func (q *taskQueue) push(t *task) {
	heap.Push(q, t)
}

// popDue removes and returns the first task due at now, or nil.
func (q *taskQueue) popDue(now primitives.Millis) *task {
	if q.Len() == 0 || (*q)[0].deadline > now {
		return nil
	}
	return heap.Pop(q).(*task)
}

// pending counts the tasks not cancelled yet.
func (q taskQueue) pending() int {
	n := 0
	for _, t := range q {
		if !t.cancelled.Load() {
			n++
		}
	}
	return n
}

// cancelHandle returns a controller that runs stop on the first Cancel. It can
// be used from any goroutine.
func cancelHandle(stop func()) primitives.Pushee[primitives.Command] {
	var once sync.Once
	return primitives.PusheeFunc[primitives.Command](func(cmd primitives.Command) {
		if cmd != primitives.Cancel {
			panic(primitives.Unsupported(cmd))
		}
		once.Do(stop)
	})
}
