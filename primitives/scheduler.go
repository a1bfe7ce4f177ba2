package primitives

// Millis is a point in time or a duration in milliseconds.
type Millis = int64

// Scheduler defers actions. It is the only way concurrency enters a pipeline.
//
// Schedule runs action after delay milliseconds. A delay <= 0 means "no
// explicit delay"; it does not promise a synchronous call. The returned handle
// accepts Cancel and prevents the action from running if it has not run yet.
//
// Implementations that serialize their actions (a happens-before relationship
// between successive actions) must say so in their documentation.
type Scheduler interface {
	Schedule(delay Millis, action func()) Pushee[Command]
	Now() Millis
}

// Clock exposes the current time of a scheduler as a Pullee.
func Clock(s Scheduler) Pullee[Millis] {
	return PulleeFunc[Millis](s.Now)
}
