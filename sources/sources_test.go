package sources_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/pue/helpers"
	"github.com/arielf-camacho/pue/primitives"
	"github.com/arielf-camacho/pue/sources"
)

func TestSlice(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		items []int
	}{
		"empty": {},
		"one":   {items: []int{1}},
		"many":  {items: []int{1, 2, 3}},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			p := sources.Slice(c.items)

			// When
			remaining := p.Remaining()
			got := helpers.Collect[int](p)

			// Then
			assert.Equal(t, len(c.items), remaining)
			assert.Equal(t, c.items, got)
			assert.Nil(t, p.Call(primitives.Unit{}))
			assert.Equal(t, 0, p.Remaining())
		})
	}
}

func TestSlice_DoesNotExposeTheBackingArray(t *testing.T) {
	t.Parallel()

	// Given
	items := []int{1, 2}
	p := sources.Slice(items)

	// When
	*p.Call(primitives.Unit{}) = 100

	// Then
	assert.Equal(t, []int{1, 2}, items)
}

func TestSliceUntil(t *testing.T) {
	t.Parallel()

	// Given
	p := sources.SliceUntil([]string{"a"}, "")

	// When
	got := []string{primitives.Pull(p), primitives.Pull(p), primitives.Pull(p)}

	// Then
	assert.Equal(t, []string{"a", "", ""}, got)
}

func TestSeq(t *testing.T) {
	t.Parallel()

	// Given
	p := sources.Seq(slices.Values([]int{1, 2, 3}))

	// When
	got := helpers.Collect[int](p)

	// Then
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Nil(t, primitives.Pull(p))
}

func TestSeq_Stop(t *testing.T) {
	t.Parallel()

	// Given
	released := false
	p := sources.Seq(func(yield func(int) bool) {
		defer func() { released = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})

	// When
	first := primitives.Pull[*int](p)
	p.Stop()
	p.Stop()

	// Then
	assert.Equal(t, 0, *first)
	assert.True(t, released)
	assert.Nil(t, primitives.Pull[*int](p))
}

func TestFunc(t *testing.T) {
	t.Parallel()

	// Given
	calls := 0
	p := sources.Func(func() (int, bool) {
		calls++
		return calls, calls <= 2
	})

	// When
	got := helpers.Collect(p)
	primitives.Pull(p)

	// Then
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 3, calls)
}

func TestRepeat(t *testing.T) {
	t.Parallel()

	// Given
	p := sources.Repeat("x")

	// When & Then
	for range 3 {
		assert.Equal(t, "x", primitives.Pull(p))
	}
}

func TestSingle(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	cases := map[string]struct {
		get         func() (int, error)
		expected    []int
		expectedErr error
	}{
		"value": {
			get:      func() (int, error) { return 7, nil },
			expected: []int{7},
		},
		"error": {
			get:         func() (int, error) { return 0, errBoom },
			expectedErr: errBoom,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			var handled error
			p := sources.Single(c.get).ErrorHandler(func(err error) { handled = err }).Build()

			// When
			got := helpers.Collect[int](p)

			// Then
			assert.Equal(t, c.expected, got)
			assert.Equal(t, c.expectedErr, handled)
			assert.Nil(t, p.Call(primitives.Unit{}))
		})
	}
}

func TestSingle_NilGetPanics(t *testing.T) {
	t.Parallel()

	// When & Then
	assert.PanicsWithValue(t, "get cannot be nil", func() { sources.Single[int](nil) })
}

func TestChannel(t *testing.T) {
	t.Parallel()

	// Given
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	close(ch)
	p := sources.Channel(ch).Build()

	// When
	got := helpers.Collect[int](p)

	// Then
	assert.Equal(t, []int{1, 2}, got)
	assert.Nil(t, p.Call(primitives.Unit{}))
}

func TestChannel_ContextDone(t *testing.T) {
	t.Parallel()

	// Given
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	p := sources.Channel(make(chan int)).Context(ctx).Build()

	// When
	got := p.Call(primitives.Unit{})

	// Then
	assert.Nil(t, got)
	assert.Nil(t, p.Call(primitives.Unit{}))
}
