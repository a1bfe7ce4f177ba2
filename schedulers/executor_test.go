package schedulers_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/schedulers"
)

func TestExecutorScheduler_RunsActions(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Executor().Build()
	var runs atomic.Int32

	// When
	for range 10 {
		s.Schedule(1, func() { runs.Add(1) })
	}

	// Then
	assert.Eventually(t, func() bool { return runs.Load() == 10 }, eventually, 5*time.Millisecond)
}

func TestExecutorScheduler_Cancel(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Executor().Build()
	var ran atomic.Bool
	handle := s.Schedule(50, func() { ran.Store(true) })

	// When
	handle.Call(primitives.Cancel)
	handle.Call(primitives.Cancel)

	// Then
	assert.Never(t, ran.Load, 120*time.Millisecond, 10*time.Millisecond)
}

func TestExecutorScheduler_ErrorHandler(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		panicWith any
		expected  string
	}{
		"error": {
			panicWith: errors.New("boom"),
			expected:  "boom",
		},
		"value": {
			panicWith: 42,
			expected:  "panic: 42",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			errs := make(chan error, 1)
			s := schedulers.Executor().ErrorHandler(func(err error) { errs <- err }).Build()

			// When
			s.Schedule(0, func() { panic(c.panicWith) })

			// Then
			select {
			case err := <-errs:
				assert.EqualError(t, err, c.expected)
			case <-time.After(eventually):
				t.Fatal("error handler not called")
			}
		})
	}
}

func TestExecutorScheduler_Now(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Executor().Clock(fixedClock()).Build()

	// When & Then
	assert.Equal(t, primitives.Millis(1_000_000), s.Now())
}
