package operators_test

import (
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/sinks"
	"github.com/arielf-camacho/pue/sources"
)

func double(x int) int { return x * 2 }

func inc(x int) int { return x + 1 }

func even(x int) bool { return x%2 == 0 }

func ints(items ...int) primitives.Pullee[*int] {
	return sources.Of(items...)
}

func collector() (*sinks.Collector[int], primitives.Pushee[*int]) {
	c := sinks.NewCollector[int]()
	return c, c
}

// pushAll pushes the items, then the end of the stream.
func pushAll[T any](p primitives.Pushee[*T], items ...T) {
	for _, item := range items {
		p.Call(&item)
	}
	p.Call(nil)
}

// counting wraps p counting how many times it is pulled.
func counting[R any](p primitives.Pullee[R], calls *int) primitives.Pullee[R] {
	return primitives.PulleeFunc[R](func() R {
		*calls++
		return primitives.Pull(p)
	})
}

type recorder[T any] struct {
	items []T
}

func (r *recorder[T]) pushee() primitives.Pushee[T] {
	return operators.Consume(func(t T) { r.items = append(r.items, t) })
}
