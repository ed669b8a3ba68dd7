package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/notify"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/retry"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
)

const (
	// DefaultTransferExpiryDays is the age after which a pending transfer expires
	DefaultTransferExpiryDays = 7
	// TransferExpirySweepName identifies the reaper's sweep marker and loop
	TransferExpirySweepName = "transfer-expiry-sweeper"
)

// SweepResult reports the transfers moved to expired by one sweep
type SweepResult struct {
	ExpiredCount int      `json:"expired_count"`
	ExpiredIDs   []string `json:"expired_ids"`
}

// TransferReaper moves pending transfers older than a threshold to expired
//
//go:generate mockgen -source=transfer_expiry.go -destination=../mocks/transfer_reaper.go -package=mocks -mock_names=TransferReaper=MockTransferReaper
type TransferReaper interface {
	// SweepExpired expires pending transfers created more than thresholdDays before now.
	// A non-positive thresholdDays uses the configured default. Safe to run concurrently.
	SweepExpired(ctx context.Context, now time.Time, thresholdDays int) (*SweepResult, error)
}

type transferReaper struct {
	defaultDays int
	store       store.Store
	dispatcher  notify.Dispatcher
}

// NewTransferReaper creates a transfer reaper. dispatcher may be nil to skip the sweep audit entry.
func NewTransferReaper(defaultDays int, st store.Store, dispatcher notify.Dispatcher) TransferReaper {
	if defaultDays <= 0 {
		defaultDays = DefaultTransferExpiryDays
	}
	return &transferReaper{
		defaultDays: defaultDays,
		store:       st,
		dispatcher:  dispatcher,
	}
}

// SweepExpired expires pending transfers created more than thresholdDays before now
func (r *transferReaper) SweepExpired(ctx context.Context, now time.Time, thresholdDays int) (*SweepResult, error) {
	if thresholdDays <= 0 {
		thresholdDays = r.defaultDays
	}
	cutoff := now.AddDate(0, 0, -thresholdDays)

	ids, err := r.store.ExpirePendingTransfers(ctx, cutoff, now)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}

	if err := r.store.SetSweepMarker(ctx, TransferExpirySweepName, now); err != nil {
		logger.WarnCtx(ctx, "Failed to record sweep marker", zap.Error(err), zap.String("sweep", TransferExpirySweepName))
	}

	if len(ids) > 0 {
		logger.InfoCtx(ctx, "Expired stale transfers",
			zap.Int("count", len(ids)),
			zap.Int("threshold_days", thresholdDays),
			zap.Time("cutoff", cutoff))

		if r.dispatcher != nil {
			r.dispatcher.Audit(ctx, notify.AuditEntry{
				Action:     domain.AuditTransfersExpired,
				ActorID:    domain.SystemActor,
				TargetID:   TransferExpirySweepName,
				TargetType: domain.TargetTransfer,
				Details: map[string]interface{}{
					"expired_ids":    ids,
					"threshold_days": thresholdDays,
					"cutoff":         cutoff.Format(time.RFC3339),
				},
			})
		}
	}

	return &SweepResult{ExpiredCount: len(ids), ExpiredIDs: ids}, nil
}

// TransferExpirySweeperConfig holds configuration for the transfer expiry sweeper
type TransferExpirySweeperConfig struct {
	Interval      time.Duration // Time to sleep between sweeps
	ThresholdDays int           // Age in days after which pending transfers expire
	Retry         retry.Config  // Backoff for transient datastore failures
}

type transferExpirySweeper struct {
	*intervalLoop
	config *TransferExpirySweeperConfig
	reaper TransferReaper
	clock  adapter.Clock
}

// NewTransferExpirySweeper creates a sweeper that runs the reaper on an interval
func NewTransferExpirySweeper(config *TransferExpirySweeperConfig, reaper TransferReaper, clock adapter.Clock) Sweeper {
	s := &transferExpirySweeper{
		intervalLoop: newIntervalLoop(TransferExpirySweepName, config.Interval, clock),
		config:       config,
		reaper:       reaper,
		clock:        clock,
	}
	s.runCycle = s.sweep
	return s
}

func (s *transferExpirySweeper) sweep(ctx context.Context) error {
	var result *SweepResult
	err := retry.Do(ctx, s.config.Retry, "sweep expired transfers", func(ctx context.Context) error {
		var err error
		result, err = s.reaper.SweepExpired(ctx, s.clock.Now(), s.config.ThresholdDays)
		return err
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Transfer expiry sweep completed", zap.Int("expired", result.ExpiredCount))
	return nil
}
