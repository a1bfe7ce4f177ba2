package operators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/pue/helpers"
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/sources"
)

func TestAFilter(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		items    []int
		pred     func(int) bool
		expected []int
	}{
		"greater-than-two": {
			items:    []int{1, 2, 3, 4, 5},
			pred:     func(x int) bool { return x > 2 },
			expected: []int{3, 4, 5},
		},
		"even": {
			items:    []int{1, 2, 3, 4, 5},
			pred:     even,
			expected: []int{2, 4},
		},
		"none": {
			items: []int{1, 3},
			pred:  even,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			r := &recorder[int]{}
			p := operators.AFilter(r.pushee(), c.pred)

			// When
			for _, item := range c.items {
				p.Call(item)
			}

			// Then
			assert.Equal(t, c.expected, r.items)
		})
	}
}

func TestVFilter(t *testing.T) {
	t.Parallel()

	// Given
	p := operators.VFilter(
		sources.SliceUntil([]int{1, 2, 3, 4}, -1),
		func(x int) bool { return x < 0 || even(x) },
	)

	// When
	got := []int{primitives.Pull(p), primitives.Pull(p), primitives.Pull(p)}

	// Then
	assert.Equal(t, []int{2, 4, -1}, got)
}

func TestVNFilter(t *testing.T) {
	t.Parallel()

	// Given
	p := operators.VNFilter(ints(1, 2, 3, 4, 5), even)

	// When
	got := helpers.Collect(p)

	// Then
	assert.Equal(t, []int{2, 4}, got)
	assert.Nil(t, primitives.Pull(p))
}
