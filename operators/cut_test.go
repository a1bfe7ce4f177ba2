package operators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/sources"
)

func TestCut(t *testing.T) {
	t.Parallel()

	// Given
	pulls := 0
	p := operators.Cut(counting(sources.SliceUntil([]int{1, 2, 0, 3}, -1), &pulls), 0)

	// When
	got := make([]int, 0, 5)
	for range 5 {
		got = append(got, primitives.Pull[int](p))
	}

	// Then
	assert.Equal(t, []int{1, 2, 0, 0, 0}, got)
	assert.Equal(t, 3, pulls)
}

func TestCutNil(t *testing.T) {
	t.Parallel()

	// Given
	pulls := 0
	p := operators.CutNil(counting(ints(1), &pulls))

	// When
	first := primitives.Pull[*int](p)
	second := primitives.Pull[*int](p)
	third := primitives.Pull[*int](p)

	// Then
	assert.Equal(t, 1, *first)
	assert.Nil(t, second)
	assert.Nil(t, third)
	assert.Equal(t, 2, pulls)
}
