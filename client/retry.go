package client

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// retryBaseInterval is the first wait between attempts; tests shorten it.
var retryBaseInterval = 200 * time.Millisecond

// Retry runs op up to maxAttempts times with exponential backoff. It stops
// early on success, on an error IsRetryable rejects, or when ctx ends.
// maxAttempts below 1 is treated as 1.
//
// Fetch itself never retries; Retry is for call-sites that opt in.
func Retry(ctx context.Context, maxAttempts int, op func(context.Context) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = retryBaseInterval
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = 0

	attempt := 0
	b := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(maxAttempts-1)), ctx)
	return backoff.RetryNotify(func() error {
		attempt++
		err := op(ctx)
		if err != nil && !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, b, func(err error, wait time.Duration) {
		log.Debug().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("retrying request")
	})
}
