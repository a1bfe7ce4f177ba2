package operators

import (
	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pullee[*int](&FlatPullee[int]{})

// FlatPullee concatenates the streams produced by a stream of streams.
type FlatPullee[V any] struct {
	up      primitives.Pullee[primitives.Pullee[*V]]
	current primitives.Pullee[*V]
	end     bool
}

// VNFlat flattens a pullee of pullees. A nil inner pullee, or the end of the
// outer stream, ends the flattened stream; an exhausted inner pullee makes it
// move on to the next one.
//
// -- [1 2] -- [] -- [3] -- nil -->
//
// -- VNFlat --
//
// -- 1 -- 2 -- 3 -- nil -->
func VNFlat[V any](p primitives.Pullee[primitives.Pullee[*V]]) *FlatPullee[V] {
	return &FlatPullee[V]{up: p}
}

// Call implements Pullee.
func (f *FlatPullee[V]) Call(primitives.Unit) *V {
	for !f.end {
		if f.current == nil {
			f.current = primitives.Pull(f.up)
		}
		if f.current == nil {
			f.end = true
			f.up = nil
			break
		}
		if v := primitives.Pull(f.current); v != nil {
			return v
		}
		f.current = nil
	}
	return nil
}
