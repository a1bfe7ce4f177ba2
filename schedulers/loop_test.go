package schedulers_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/schedulers"
)

const eventually = 2 * time.Second

func fixedClock() func() time.Time {
	at := time.UnixMilli(1_000_000)
	return func() time.Time { return at }
}

func TestLoopScheduler_SameDeadlineRunsInScheduleOrder(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Loop().Clock(fixedClock()).Build()
	defer s.Close()

	var got []int
	done := make(chan struct{})

	// When
	for i := range 100 {
		s.Schedule(0, func() { got = append(got, i) })
	}
	s.Schedule(0, func() { close(done) })

	// Then
	select {
	case <-done:
	case <-time.After(eventually):
		t.Fatal("loop did not run the actions")
	}
	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestLoopScheduler_DeadlineOrder(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Loop().Build()
	defer s.Close()

	var (
		mu  sync.Mutex
		got []string
	)
	record := func(tag string) func() {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, tag)
		}
	}

	// When
	s.Schedule(60, record("late"))
	s.Schedule(20, record("early"))
	s.Schedule(0, record("now"))

	// Then
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 3
	}, eventually, 5*time.Millisecond)
	assert.Equal(t, []string{"now", "early", "late"}, got)
}

func TestLoopScheduler_Cancel(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Loop().Build()
	defer s.Close()

	var (
		mu        sync.Mutex
		cancelled bool
	)
	done := make(chan struct{})
	handle := s.Schedule(20, func() {
		mu.Lock()
		defer mu.Unlock()
		cancelled = true
	})

	// When
	handle.Call(primitives.Cancel)
	s.Schedule(40, func() { close(done) })

	// Then
	select {
	case <-done:
	case <-time.After(eventually):
		t.Fatal("loop did not run the action")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, cancelled)
}

func TestLoopScheduler_PanicsGoToTheErrorHandler(t *testing.T) {
	t.Parallel()

	// Given
	errBoom := errors.New("boom")
	errs := make(chan error, 1)
	s := schedulers.Loop().
		Clock(fixedClock()).
		ErrorHandler(func(err error) { errs <- err }).
		Build()
	defer s.Close()
	done := make(chan struct{})

	// When
	s.Schedule(0, func() { panic(errBoom) })
	s.Schedule(0, func() { close(done) })

	// Then
	select {
	case <-done:
	case <-time.After(eventually):
		t.Fatal("loop stopped after a panic")
	}
	assert.ErrorIs(t, <-errs, errBoom)
}

func TestLoopScheduler_StopsWithItsContext(t *testing.T) {
	t.Parallel()

	// Given
	ctx, cancel := context.WithCancel(context.Background())
	s := schedulers.Loop().Context(ctx).Build()
	s.Schedule(time.Hour.Milliseconds(), func() {})

	// When
	cancel()
	stopped := make(chan struct{})
	go func() {
		s.Wait()
		close(stopped)
	}()

	// Then
	select {
	case <-stopped:
	case <-time.After(eventually):
		t.Fatal("loop did not stop")
	}
	assert.Equal(t, 1, s.Pending())
}

func TestLoopScheduler_CloseDropsQueuedActions(t *testing.T) {
	t.Parallel()

	// Given
	s := schedulers.Loop().Build()
	ran := make(chan struct{}, 1)
	s.Schedule(50, func() { ran <- struct{}{} })

	// When
	s.Close()
	s.Close()

	// Then
	select {
	case <-ran:
		t.Fatal("action ran after Close")
	case <-time.After(100 * time.Millisecond):
	}
}
