package helpers

import (
	"slices"

	"github.com/arielf-camacho/pue/primitives"
)

// Collect pulls every item of source into a slice.
func Collect[T any](source primitives.Pullee[*T]) []T {
	return slices.Collect(All(source))
}

// CollectN pulls at most n items of source into a slice. It stops early at
// the end of the stream.
func CollectN[T any](source primitives.Pullee[*T], n int) []T {
	result := make([]T, 0, max(n, 0))
	for len(result) < n {
		v := primitives.Pull(source)
		if v == nil {
			break
		}
		result = append(result, *v)
	}
	return result
}

// Drain pulls source until its end and returns how many items it discarded.
func Drain[T any](source primitives.Pullee[*T]) int {
	n := 0
	for range All(source) {
		n++
	}
	return n
}

// PushAll pushes every item of source into sink and then the end of the
// stream.
func PushAll[T any](source primitives.Pullee[*T], sink primitives.Pushee[*T]) {
	for {
		v := primitives.Pull(source)
		sink.Call(v)
		if v == nil {
			return
		}
	}
}
