package commands

import (
	"context"
	"errors"
	"time"

	"wholesale/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy decides how often a command is replayed after a Conflict.
// Each attempt runs in a fresh unit of work; non-conflict errors stop at once.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// NoRetry surfaces the first Conflict to the caller.
func NoRetry() RetryPolicy {
	return RetryPolicy{}
}

// NewRetryPolicy returns a policy with exponential back-off starting at initial.
func NewRetryPolicy(maxRetries uint64, initial time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxRetries:      maxRetries,
		InitialInterval: initial,
		MaxInterval:     initial * 16,
	}
}

// Run calls op until it succeeds, returns a non-conflict error, the retries
// are exhausted or ctx is done.
func (p RetryPolicy) Run(ctx context.Context, op func() error) error {
	if p.MaxRetries == 0 {
		return op()
	}

	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	b.MaxElapsedTime = 0

	return backoff.Retry(func() error {
		err := op()
		if err == nil || errors.Is(err, errs.ErrConflict) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx))
}
