package operators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/pue/helpers"
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
)

func TestATake(t *testing.T) {
	t.Parallel()

	// Given
	r := &recorder[int]{}
	p := operators.ATake(r.pushee(), 2)

	// When
	for i := 1; i <= 5; i++ {
		p.Call(i)
	}
	p.Count = 1
	p.Call(6)
	p.Call(7)

	// Then
	assert.Equal(t, []int{1, 2, 6}, r.items)
}

func TestANTake(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		n        int64
		items    []int
		expected []int
	}{
		"zero": {
			n:     0,
			items: []int{1, 2},
		},
		"fewer-than-pushed": {
			n:        2,
			items:    []int{1, 2, 3, 4, 5},
			expected: []int{1, 2},
		},
		"exactly-pushed": {
			n:        3,
			items:    []int{1, 2, 3},
			expected: []int{1, 2, 3},
		},
		"more-than-pushed": {
			n:        10,
			items:    []int{1, 2, 3},
			expected: []int{1, 2, 3},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			sink, down := collector()
			p := operators.ANTake[int](down, c.n)

			// When
			// The collector panics when anything follows the end, so this also
			// checks that a single nil reaches it.
			assert.NotPanics(t, func() { pushAll[int](p, c.items...) })

			// Then
			assert.Equal(t, c.expected, sink.Items())
			assert.True(t, sink.Done())
		})
	}
}

func TestVNTake(t *testing.T) {
	t.Parallel()

	// Given
	calls := 0
	p := operators.VNTake(counting(ints(1, 2, 3, 4, 5), &calls), 3)

	// When
	got := helpers.Collect[int](p)
	after := primitives.Pull[*int](p)

	// Then
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Nil(t, after)
	assert.Equal(t, 3, calls)
}

func TestTakeWhile(t *testing.T) {
	t.Parallel()

	lessThanThree := func(x int) bool { return x < 3 }

	t.Run("atakewhile-closes-for-good", func(t *testing.T) {
		t.Parallel()

		// Given
		r := &recorder[int]{}
		p := operators.ATakeWhile(r.pushee(), lessThanThree)

		// When
		for _, item := range []int{1, 2, 3, 1, 2} {
			p.Call(item)
		}

		// Then
		assert.Equal(t, []int{1, 2}, r.items)
	})

	t.Run("antakewhile-ends-once", func(t *testing.T) {
		t.Parallel()

		// Given
		sink, down := collector()
		p := operators.ANTakeWhile(down, lessThanThree)

		// When
		assert.NotPanics(t, func() { pushAll(p, 1, 2, 3, 1) })

		// Then
		assert.Equal(t, []int{1, 2}, sink.Items())
		assert.True(t, sink.Done())
	})

	t.Run("vntakewhile-stops-pulling", func(t *testing.T) {
		t.Parallel()

		// Given
		calls := 0
		p := operators.VNTakeWhile(counting(ints(1, 2, 3, 1), &calls), lessThanThree)

		// When
		got := helpers.Collect(p)
		primitives.Pull(p)

		// Then
		assert.Equal(t, []int{1, 2}, got)
		assert.Equal(t, 3, calls)
	})
}
