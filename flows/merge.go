package flows

import (
	"github.com/samber/lo"

	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
)

// Merge attaches the same pushee to every given pusher. The controller it
// returns forwards each command to all of the inner controllers, in order.
//
// -- 1 --------- 3 ------>
//
// ------- 2 --------- 4 -->
//
// -- Merge --
//
// -- 1 -- 2 -- 3 -- 4 -->
//
// Merge does not synchronize anything: pushers living on different
// schedulers need LSync or LReschedule first.
func Merge[T, C any](pushers ...primitives.Pusher[T, C]) primitives.Pusher[T, C] {
	return primitives.PusherFunc[T, C](func(down primitives.Pushee[T]) primitives.Pushee[C] {
		controllers := lo.Map(pushers, func(p primitives.Pusher[T, C], _ int) primitives.Pushee[C] {
			return p.Call(down)
		})
		return operators.PusheeOf(controllers...)
	})
}
