package schedulers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/schedulers"
)

func TestManualScheduler_Order(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Manual().Start(1000).Build()
	var order []string
	s.Schedule(20, func() { order = append(order, "b") })
	s.Schedule(10, func() { order = append(order, "a") })
	s.Schedule(20, func() { order = append(order, "c") })
	s.Schedule(0, func() { order = append(order, "now") })

	// When
	s.RunPending()
	pending := s.Pending()
	s.Advance(20)

	// Then
	assert.Equal(t, []string{"now", "a", "b", "c"}, order)
	assert.Equal(t, 3, pending)
	assert.Equal(t, primitives.Millis(1020), s.Now())
}

func TestManualScheduler_NestedScheduling(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Manual().Build()
	var seen []primitives.Millis
	var tick func()
	tick = func() {
		seen = append(seen, s.Now())
		s.Schedule(10, tick)
	}
	s.Schedule(10, tick)

	// When
	s.Advance(35)

	// Then
	assert.Equal(t, []primitives.Millis{10, 20, 30}, seen)
	assert.Equal(t, primitives.Millis(35), s.Now())
	assert.Equal(t, 1, s.Pending())
}

func TestManualScheduler_Cancel(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Manual().Build()
	ran := false
	handle := s.Schedule(5, func() { ran = true })

	// When
	handle.Call(primitives.Cancel)
	handle.Call(primitives.Cancel)
	s.Advance(10)

	// Then
	assert.False(t, ran)
	assert.Equal(t, 0, s.Pending())
	assert.Panics(t, func() { handle.Call(primitives.Start) })
}

func TestManualScheduler_Clock(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Manual().Start(5).Build()
	clock := primitives.Clock(s)

	// When
	s.Advance(-3)
	first := primitives.Pull(clock)
	s.Advance(3)

	// Then
	assert.Equal(t, primitives.Millis(5), first)
	assert.Equal(t, primitives.Millis(8), primitives.Pull(clock))
}
