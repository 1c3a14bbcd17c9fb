// Package retry wraps operations in exponential backoff, retrying only errors a
// caller-supplied predicate accepts.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy configures Do.
type Policy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// Retryable decides whether err is worth another attempt. Nil retries everything.
	Retryable func(err error) bool
	// Wait optionally returns a server-requested delay for err (e.g. Telegram's
	// retry_after). It is slept before the backoff interval.
	Wait func(err error) time.Duration
}

// Do runs op until it succeeds, returns a non-retryable error, the retries are
// exhausted or ctx is done. The last error of op is returned.
func Do(ctx context.Context, p Policy, op func() error) error {
	exp := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		exp.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		exp.MaxInterval = p.MaxInterval
	}
	exp.MaxElapsedTime = 0

	b := backoff.WithContext(backoff.WithMaxRetries(exp, p.MaxRetries), ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return backoff.Permanent(err)
		}
		if p.Wait != nil {
			if d := p.Wait(err); d > 0 {
				if werr := sleep(ctx, d); werr != nil {
					return backoff.Permanent(err)
				}
			}
		}
		return err
	}, b)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
