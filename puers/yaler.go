package puers

import (
	"slices"

	"github.com/samber/lo"

	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Puller[int, primitives.Command](&Yaler[int]{})

// Yaler is the pull side dual of Relay: many pullees attach to it, and Pull
// returns a null-terminated pullee yielding one item from each of them, in
// attachment order.
//
// Nothing is pulled from the attached pullees until the returned pullee is
// called. The set of pullees is fixed when Pull is called.
//
// A Yaler is not safe for concurrent use.
type Yaler[R any] struct {
	pullees attachments[primitives.Pullee[R]]
}

// NewYaler creates an empty Yaler.
func NewYaler[R any]() *Yaler[R] {
	return &Yaler[R]{}
}

// Call attaches p. The controller accepts Cancel only.
func (y *Yaler[R]) Call(p primitives.Pullee[R]) primitives.Pushee[primitives.Command] {
	return y.pullees.add(p)
}

// Len returns how many pullees are attached.
func (y *Yaler[R]) Len() int {
	return y.pullees.len()
}

// Pull returns a pullee over the attached pullees. Each call of it pulls the
// next attached pullee once; after the last one it returns nil.
func (y *Yaler[R]) Pull() primitives.Pullee[*R] {
	snapshot := slices.Clone(y.pullees.items)
	i := 0
	return primitives.PulleeFunc[*R](func() *R {
		if i >= len(snapshot) {
			return nil
		}
		i++
		return lo.ToPtr(primitives.Pull(snapshot[i-1].puee))
	})
}

// AsPullee returns Pull as a Pullee.
func (y *Yaler[R]) AsPullee() primitives.Pullee[primitives.Pullee[*R]] {
	return primitives.PulleeFunc[primitives.Pullee[*R]](y.Pull)
}
