package puers_test

import (
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
)

type recorder[T any] struct {
	items []T
}

func (r *recorder[T]) pushee() primitives.Pushee[T] {
	return operators.Consume(func(t T) { r.items = append(r.items, t) })
}

func recovered(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}

func millis(items ...primitives.Millis) []primitives.Millis {
	return items
}
