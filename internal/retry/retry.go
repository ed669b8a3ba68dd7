package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
)

// Config holds the backoff settings for transient retries
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	// MaxRetries bounds the number of retries after the first attempt
	MaxRetries uint64
}

// DefaultConfig is sized for request paths: a handful of quick retries
func DefaultConfig() Config {
	return Config{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxElapsedTime:  5 * time.Second,
		MaxRetries:      3,
	}
}

// Do runs op until it succeeds, returns a non-transient error, or the backoff is exhausted.
// Only errors classified by domain.IsTransient are retried.
func Do(ctx context.Context, cfg Config, name string, op func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialInterval
	b.MaxInterval = cfg.MaxInterval
	b.MaxElapsedTime = cfg.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var policy backoff.BackOff = b
	if cfg.MaxRetries > 0 {
		policy = backoff.WithMaxRetries(policy, cfg.MaxRetries)
	}

	operation := func() error {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if !domain.IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, d time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Transient failure, retrying",
			zap.String("operation", name),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", d),
		)
	}

	return backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notifyOnError)
}
