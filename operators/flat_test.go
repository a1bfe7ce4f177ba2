package operators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/pue/helpers"
	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/sources"
)

func TestVNFlat(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		inners   []primitives.Pullee[*int]
		expected []int
	}{
		"empty-outer": {},
		"skips-empty-inners": {
			inners:   []primitives.Pullee[*int]{ints(1, 2), ints(), ints(3)},
			expected: []int{1, 2, 3},
		},
		"only-empty-inners": {
			inners: []primitives.Pullee[*int]{ints(), ints()},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			p := operators.VNFlat(sources.SliceUntil(c.inners, nil))

			// When
			got := helpers.Collect[int](p)

			// Then
			assert.Equal(t, c.expected, got)
			assert.Nil(t, primitives.Pull[*int](p))
		})
	}
}

func TestVNFlat_StopsPullingOuterAtTheEnd(t *testing.T) {
	t.Parallel()

	// Given
	pulls := 0
	outer := counting(sources.SliceUntil([]primitives.Pullee[*int]{ints(1)}, nil), &pulls)
	p := operators.VNFlat(outer)

	// When
	helpers.Collect[int](p)
	primitives.Pull[*int](p)

	// Then
	assert.Equal(t, 2, pulls)
}
