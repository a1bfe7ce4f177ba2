package operators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/pue/helpers"
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
)

func TestADrop(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		n        int64
		expected []int
	}{
		"none":     {n: 0, expected: []int{1, 2, 3, 4, 5}},
		"two":      {n: 2, expected: []int{3, 4, 5}},
		"all":      {n: 5},
		"too-many": {n: 9},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			r := &recorder[int]{}
			p := operators.ADrop(r.pushee(), c.n)

			// When
			for i := 1; i <= 5; i++ {
				p.Call(i)
			}

			// Then
			assert.Equal(t, c.expected, r.items)
		})
	}
}

func TestVDrop(t *testing.T) {
	t.Parallel()

	// Given
	calls := 0
	p := operators.VDrop(counting(ints(1, 2, 3, 4, 5), &calls), 2)

	// When
	first := primitives.Pull[*int](p)

	// Then
	assert.Equal(t, 3, *first)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{4, 5}, helpers.Collect[int](p))
}

func TestDropWhile(t *testing.T) {
	t.Parallel()

	lessThanThree := func(x int) bool { return x < 3 }

	t.Run("adropwhile", func(t *testing.T) {
		t.Parallel()

		// Given
		r := &recorder[int]{}
		p := operators.ADropWhile(r.pushee(), lessThanThree)

		// When
		for _, item := range []int{1, 2, 3, 1, 4} {
			p.Call(item)
		}

		// Then
		assert.Equal(t, []int{3, 1, 4}, r.items)
	})

	t.Run("vdropwhile", func(t *testing.T) {
		t.Parallel()

		// Given
		p := operators.VDropWhile(
			ints(1, 2, 3, 1, 4),
			func(x *int) bool { return x != nil && *x < 3 },
		)

		// When
		got := helpers.Collect(p)

		// Then
		assert.Equal(t, []int{3, 1, 4}, got)
	})
}
