package operators

import (
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pullee[int](&CutPullee[int]{})

// CutPullee stops pulling its upstream once the end marker was seen.
//
// After the end the upstream reference is dropped, so the upstream can be
// reclaimed even while the cut pullee is still referenced.
type CutPullee[R any] struct {
	up    primitives.Pullee[R]
	isEnd func(R) bool
	end   R
}

// Cut returns a pullee that forwards items of p until p returns end, and from
// then on returns end without calling p again.
func Cut[R comparable](p primitives.Pullee[R], end R) *CutPullee[R] {
	return &CutPullee[R]{
		up:    p,
		end:   end,
		isEnd: func(r R) bool { return r == end },
	}
}

// CutNil is Cut for null-terminated streams.
func CutNil[R any](p primitives.Pullee[*R]) *CutPullee[*R] {
	return &CutPullee[*R]{
		up:    p,
		isEnd: func(r *R) bool { return r == nil },
	}
}

// Call implements Pullee.
func (c *CutPullee[R]) Call(primitives.Unit) R {
	if c.up == nil {
		return c.end
	}
	r := primitives.Pull(c.up)
	if c.isEnd(r) {
		c.up = nil
		return c.end
	}
	return r
}
