package puers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/pue/helpers"
	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/puers"
	"github.com/arielf-camacho/pue/sources"
)

func TestYaler(t *testing.T) {
	t.Parallel()

	// Given
	y := puers.NewYaler[int]()
	pulls := 0
	first := y.Call(primitives.PulleeFunc[int](func() int {
		pulls++
		return 1
	}))
	y.Call(sources.Repeat(2))

	// When
	round := y.Pull()
	lazy := pulls
	got := helpers.Collect(round)
	first.Call(primitives.Cancel)
	afterCancel := helpers.Collect(y.Pull())

	// Then
	assert.Equal(t, 0, lazy)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{2}, afterCancel)
	assert.Equal(t, 1, y.Len())
}

func TestYaler_SnapshotAtPull(t *testing.T) {
	t.Parallel()

	// Given
	y := puers.NewYaler[int]()
	y.Call(sources.Repeat(1))
	round := y.AsPullee().Call(primitives.Unit{})

	// When
	y.Call(sources.Repeat(2))

	// Then
	assert.Equal(t, []int{1}, helpers.Collect(round))
}

func TestYaler_Empty(t *testing.T) {
	t.Parallel()

	// Given
	y := puers.NewYaler[string]()

	// When & Then
	assert.Nil(t, primitives.Pull(y.Pull()))
}
