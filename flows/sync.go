package flows

import (
	"sync"

	"github.com/arielf-camacho/pue/primitives"
)

// SyncPuee serializes the calls to the wrapped puee with a mutex.
type SyncPuee[A, V any] struct {
	mu sync.Mutex
	p  primitives.Puee[A, V]
}

var _ = primitives.Puee[int, int](&SyncPuee[int, int]{})

// Sync returns a puee that can be called from several goroutines: at most one
// call to p runs at any time.
func Sync[A, V any](p primitives.Puee[A, V]) *SyncPuee[A, V] {
	return &SyncPuee[A, V]{p: p}
}

// Call implements primitives.Puee.
func (s *SyncPuee[A, V]) Call(a A) V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Call(a)
}

// LSync makes every attached pushee safe for concurrent pushes.
func LSync[A, C any](p primitives.Pusher[A, C]) primitives.Pusher[A, C] {
	return liftPush(p, func(down primitives.Pushee[A]) primitives.Pushee[A] {
		return Sync(down)
	})
}

// Reschedule returns a pushee that hands every item to p through s: each item
// becomes an action scheduled without delay. Whether p runs on the pushing
// goroutine depends on s; with the immediate scheduler it does, at once.
//
// There is no backpressure. A fast pusher over a slow scheduler piles up
// scheduled actions without bound.
func Reschedule[A any](p primitives.Pushee[A], s primitives.Scheduler) primitives.Pushee[A] {
	return primitives.PusheeFunc[A](func(a A) {
		s.Schedule(0, func() { p.Call(a) })
	})
}

// LReschedule moves the pushes of p onto the scheduler s. With a serializing
// scheduler this is the way to merge pushers living on different threads.
//
// Cancel reaches p at once but does not retract the deliveries already
// scheduled: they still run afterwards. There is no backpressure either, see
// Reschedule.
func LReschedule[A, C any](p primitives.Pusher[A, C], s primitives.Scheduler) primitives.Pusher[A, C] {
	return liftPush(p, func(down primitives.Pushee[A]) primitives.Pushee[A] {
		return Reschedule(down, s)
	})
}
