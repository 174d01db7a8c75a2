package store

import (
	"context"
	"time"

	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/sethvargo/go-retry"
)

const (
	maxRetries   = 1
	retryBackoff = 50 * time.Millisecond
)

// withRetry runs op and repeats it once when the classifier reports the
// failure as transient.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(retryBackoff))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("transient database error")
		return retry.RetryableError(err)
	})
}
