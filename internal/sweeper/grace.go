package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/attributes"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
)

// GraceSweepName identifies the grace sweeper
const GraceSweepName = "grace-period-sweeper"

// GraceSweeperConfig holds configuration for the grace period sweeper
type GraceSweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweeps
	BatchSize      int           // Changes fetched per sweep
	WorkerPoolSize int           // Concurrent applications
	// AutoApply applies changes whose grace period elapsed; when false they are only reported
	AutoApply bool
}

type graceSweeper struct {
	*intervalLoop
	config   *GraceSweeperConfig
	workflow attributes.Workflow
	clock    adapter.Clock
	pool     pond.Pool
}

// NewGraceSweeper creates a sweeper that resolves attribute changes whose grace period elapsed
func NewGraceSweeper(config *GraceSweeperConfig, workflow attributes.Workflow, clock adapter.Clock) Sweeper {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.BatchSize <= 0 {
		config.BatchSize = attributes.DefaultGraceElapsedLimit
	}
	s := &graceSweeper{
		intervalLoop: newIntervalLoop(GraceSweepName, config.Interval, clock),
		config:       config,
		workflow:     workflow,
		clock:        clock,
	}
	s.runCycle = s.sweep
	s.cleanup = func() {
		if s.pool != nil {
			s.pool.StopAndWait()
		}
	}
	return s
}

func (s *graceSweeper) sweep(ctx context.Context) error {
	if s.pool == nil {
		s.pool = pond.NewPool(
			s.config.WorkerPoolSize,
			pond.WithQueueSize(s.config.BatchSize),
			pond.WithContext(ctx),
		)
	}

	changes, err := s.workflow.ListGraceElapsed(ctx, s.clock.Now(), s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list grace-elapsed changes: %w", err)
	}
	if len(changes) == 0 {
		return nil
	}

	if !s.config.AutoApply {
		for _, change := range changes {
			logger.InfoCtx(ctx, "Grace period elapsed, awaiting resolution",
				zap.String("changeID", change.ID),
				zap.String("instrumentID", change.InstrumentID),
				zap.String("field", change.FieldName),
				zap.Timep("grace_period_ends_at", change.GracePeriodEndsAt))
		}
		return nil
	}

	var appliedCount, failedCount atomic.Int32
	group := s.pool.NewGroup()
	for _, change := range changes {
		changeID := change.ID
		group.Submit(func() {
			if _, err := s.workflow.AutoApply(ctx, changeID); err != nil {
				failedCount.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("changeID", changeID))
				return
			}
			appliedCount.Add(1)
		})
	}
	if err := group.Wait(); err != nil {
		return fmt.Errorf("grace sweep interrupted: %w", err)
	}

	logger.InfoCtx(ctx, "Grace sweep completed",
		zap.Int("found", len(changes)),
		zap.Int32("applied", appliedCount.Load()),
		zap.Int32("failed", failedCount.Load()))

	return nil
}
