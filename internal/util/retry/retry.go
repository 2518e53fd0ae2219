package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Backoff growth is fixed: each delay doubles, capped at maxDelay. The
// cloud API callers only ever tune attempt count and initial delay.
const (
	defaultMaxRetries   = 5
	defaultInitialDelay = 1 * time.Second
	maxDelay            = 30 * time.Second
)

type config struct {
	maxRetries   int
	initialDelay time.Duration
}

// Option adjusts the retry behavior of [WithExponentialBackoff].
type Option func(*config)

// WithMaxRetries sets how many times a failed operation is retried
// after the first attempt.
func WithMaxRetries(n int) Option {
	return func(c *config) { c.maxRetries = n }
}

// WithInitialDelay sets the delay before the first retry.
func WithInitialDelay(d time.Duration) Option {
	return func(c *config) { c.initialDelay = d }
}

// WithExponentialBackoff runs operation, retrying transient failures
// with doubling delays between attempts. Context cancellation aborts
// the wait between attempts; errors wrapped with [Fatal] abort the
// loop immediately.
func WithExponentialBackoff(ctx context.Context, operation func() error, opts ...Option) error {
	cfg := config{
		maxRetries:   defaultMaxRetries,
		initialDelay: defaultInitialDelay,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	delay := cfg.initialDelay
	var lastErr error

	for attempt := 0; attempt <= cfg.maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		if IsFatal(err) {
			return fmt.Errorf("fatal error (not retrying): %w", err)
		}

		if attempt < cfg.maxRetries {
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled after %d attempts: %w", attempt+1, ctx.Err())
			case <-time.After(delay):
				delay *= 2
				if delay > maxDelay {
					delay = maxDelay
				}
			}
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", cfg.maxRetries+1, lastErr)
}

// FatalError marks an error as non-retryable.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }

func (e *FatalError) Unwrap() error { return e.Err }

// Fatal wraps err so that [WithExponentialBackoff] stops retrying.
// A nil err stays nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err carries a [FatalError] anywhere in its
// chain.
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
