package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/pue/operators"
	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/resilience"
)

var (
	errFlaky = errors.New("flaky")
	errFatal = errors.New("fatal")
)

func noWait() resilience.RetryOption {
	return resilience.WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} })
}

// failing panics with the given errors, in order, then doubles its argument.
func failing(calls *int, failures ...error) primitives.Puee[int, int] {
	return operators.Func(func(v int) int {
		*calls++
		if *calls <= len(failures) {
			panic(failures[*calls-1])
		}
		return v * 2
	})
}

func recovered(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}

func TestRetry(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		failures      []error
		opts          []resilience.RetryOption
		expected      int
		expectedCalls int
		expectedErr   error
	}{
		"first-try": {
			expected:      42,
			expectedCalls: 1,
		},
		"transient-failures": {
			failures:      []error{errFlaky, errFlaky},
			expected:      42,
			expectedCalls: 3,
		},
		"exhausted": {
			failures:      []error{errFlaky, errFlaky, errFlaky},
			expectedCalls: 3,
			expectedErr:   resilience.ErrRetriesExhausted,
		},
		"more-tries": {
			failures:      []error{errFlaky, errFlaky, errFlaky},
			opts:          []resilience.RetryOption{resilience.WithMaxTries(5)},
			expected:      42,
			expectedCalls: 4,
		},
		"permanent": {
			failures: []error{errFlaky, errFatal, errFlaky},
			opts: []resilience.RetryOption{
				resilience.WithRetryIf(func(err error) bool { return !errors.Is(err, errFatal) }),
			},
			expectedCalls: 2,
			expectedErr:   errFatal,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			calls := 0
			p := resilience.Retry(failing(&calls, c.failures...), append(c.opts, noWait())...)

			// When
			var got int
			r := recovered(func() { got = p.Call(21) })

			// Then
			assert.Equal(t, c.expectedCalls, calls)
			if c.expectedErr == nil {
				assert.Nil(t, r)
				assert.Equal(t, c.expected, got)
				return
			}
			err, ok := r.(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, c.expectedErr)
		})
	}
}

func TestRetry_ExhaustedKeepsTheLastFailure(t *testing.T) {
	t.Parallel()

	// Given
	calls := 0
	p := resilience.Retry(failing(&calls, errFlaky, errFlaky), resilience.WithMaxTries(2), noWait())

	// When
	r := recovered(func() { p.Call(1) })

	// Then
	err, ok := r.(error)
	require.True(t, ok)
	assert.ErrorIs(t, err, resilience.ErrRetriesExhausted)
	assert.ErrorIs(t, err, errFlaky)
}

func TestRetry_PermanentIsRaisedUnwrapped(t *testing.T) {
	t.Parallel()

	// Given
	calls := 0
	p := resilience.Retry(
		failing(&calls, errFatal),
		resilience.WithRetryIf(func(error) bool { return false }),
		noWait(),
	)

	// When
	r := recovered(func() { p.Call(1) })

	// Then
	assert.Equal(t, errFatal, r)
}

func TestRetry_OnRetry(t *testing.T) {
	t.Parallel()

	// Given
	calls := 0
	var notified []error
	p := resilience.Retry(
		failing(&calls, errFlaky),
		resilience.WithOnRetry(func(err error, _ time.Duration) { notified = append(notified, err) }),
		noWait(),
	)

	// When
	got := p.Call(2)

	// Then
	assert.Equal(t, 4, got)
	require.Len(t, notified, 1)
	assert.ErrorIs(t, notified[0], errFlaky)
}

func TestRetry_NonErrorPanics(t *testing.T) {
	t.Parallel()

	// Given
	calls := 0
	p := resilience.Retry(operators.Func(func(v int) int {
		calls++
		if calls == 1 {
			panic("not an error")
		}
		return v
	}), noWait())

	// When
	got := p.Call(5)

	// Then
	assert.Equal(t, 5, got)
	assert.Equal(t, 2, calls)
}

func TestRetry_CancelledContext(t *testing.T) {
	t.Parallel()

	// Given
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	p := resilience.Retry(
		failing(&calls, errFlaky, errFlaky, errFlaky),
		resilience.WithContext(ctx),
		resilience.WithBackOff(func() backoff.BackOff { return backoff.NewConstantBackOff(time.Hour) }),
	)

	// When
	r := recovered(func() { p.Call(1) })

	// Then
	_, ok := r.(error)
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
}
