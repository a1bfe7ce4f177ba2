// Package resilience wraps puees with retry policies.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/arielf-camacho/pue/primitives"
)

// ErrRetriesExhausted wraps the last failure of a Retry puee that ran out of
// attempts.
var ErrRetriesExhausted = errors.New("retries exhausted")

// RetryOption configures a Retry puee.
type RetryOption func(*retryConfig)

type retryConfig struct {
	ctx      context.Context
	maxTries uint
	backOff  func() backoff.BackOff
	retryIf  func(error) bool
	onRetry  func(err error, next time.Duration)
}

// WithContext bounds the waits between attempts.
func WithContext(ctx context.Context) RetryOption {
	return func(c *retryConfig) {
		c.ctx = ctx
	}
}

// WithMaxTries sets how many times the puee is called at most, the first call
// included. The default is 3.
func WithMaxTries(n uint) RetryOption {
	return func(c *retryConfig) {
		c.maxTries = n
	}
}

// WithBackOff sets the policy spacing the attempts. newBackOff is called once
// per call of the Retry puee, so stateful policies are not shared between
// calls. The default is an exponential back-off.
func WithBackOff(newBackOff func() backoff.BackOff) RetryOption {
	return func(c *retryConfig) {
		c.backOff = newBackOff
	}
}

// WithRetryIf sets which failures are worth another attempt. The others are
// raised again right away, unwrapped.
func WithRetryIf(retryIf func(error) bool) RetryOption {
	return func(c *retryConfig) {
		c.retryIf = retryIf
	}
}

// WithOnRetry sets a function called after every failed attempt that is going
// to be retried.
func WithOnRetry(onRetry func(err error, next time.Duration)) RetryOption {
	return func(c *retryConfig) {
		c.onRetry = onRetry
	}
}

// Retry returns a puee calling p and, when p panics, calling it again with the
// same argument following the back-off policy. Once the attempts run out the
// last failure is raised as a panic wrapping ErrRetriesExhausted.
//
// -- a -- Retry(p) -- p(a) fails, p(a) fails, p(a) = v --> v
//
// Retry blocks the caller between attempts. Use it on puees whose failures
// are transient, such as a pullee reading from a flaky device.
func Retry[A, V any](p primitives.Puee[A, V], opts ...RetryOption) primitives.Puee[A, V] {
	cfg := retryConfig{
		ctx:      context.Background(),
		maxTries: 3,
		backOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
		retryIf: func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return primitives.PueeFunc[A, V](func(a A) V {
		var permanent error
		operation := func() (V, error) {
			v, err := call(p, a)
			if err != nil && !cfg.retryIf(err) {
				permanent = err
				return v, backoff.Permanent(err)
			}
			return v, err
		}

		retryOpts := []backoff.RetryOption{
			backoff.WithBackOff(cfg.backOff()),
			backoff.WithMaxTries(cfg.maxTries),
		}
		if cfg.onRetry != nil {
			retryOpts = append(retryOpts, backoff.WithNotify(cfg.onRetry))
		}

		v, err := backoff.Retry(cfg.ctx, operation, retryOpts...)
		if err == nil {
			return v
		}
		if permanent != nil {
			panic(permanent)
		}
		panic(fmt.Errorf("%w: %w", ErrRetriesExhausted, err))
	})
}

// call turns a panic of p into an error.
func call[A, V any](p primitives.Puee[A, V], a A) (v V, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return p.Call(a), nil
}
