package workflows

import (
	"context"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/attributes"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/sweeper"
)

// GraceApplyResult reports the outcome of one grace application run
type GraceApplyResult struct {
	Found      int      `json:"found"`
	AppliedIDs []string `json:"applied_ids"`
	FailedIDs  []string `json:"failed_ids"`
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// ExpireStaleTransfers expires pending transfers older than thresholdDays
	ExpireStaleTransfers(ctx context.Context, thresholdDays int) (*sweeper.SweepResult, error)

	// ApplyElapsedChanges applies up to limit changes whose grace period elapsed
	ApplyElapsedChanges(ctx context.Context, limit int) (*GraceApplyResult, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	reaper     sweeper.TransferReaper
	attributes attributes.Workflow
	clock      adapter.Clock
	poolSize   int
}

// NewExecutor creates a new executor instance
func NewExecutor(reaper sweeper.TransferReaper, attrs attributes.Workflow, clock adapter.Clock, poolSize int) Executor {
	if poolSize <= 0 {
		poolSize = 1
	}
	return &executor{
		reaper:     reaper,
		attributes: attrs,
		clock:      clock,
		poolSize:   poolSize,
	}
}

// ExpireStaleTransfers expires pending transfers older than thresholdDays
func (e *executor) ExpireStaleTransfers(ctx context.Context, thresholdDays int) (*sweeper.SweepResult, error) {
	return e.reaper.SweepExpired(ctx, e.clock.Now(), thresholdDays)
}

// ApplyElapsedChanges applies up to limit changes whose grace period elapsed.
// A change that fails terminally is parked by AutoApply; transient failures are picked up by the next run.
func (e *executor) ApplyElapsedChanges(ctx context.Context, limit int) (*GraceApplyResult, error) {
	changes, err := e.attributes.ListGraceElapsed(ctx, e.clock.Now(), limit)
	if err != nil {
		return nil, err
	}

	result := &GraceApplyResult{
		Found:      len(changes),
		AppliedIDs: []string{},
		FailedIDs:  []string{},
	}
	if len(changes) == 0 {
		return result, nil
	}

	outcomes := make([]atomic.Bool, len(changes))
	pool := pond.NewPool(e.poolSize, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for i := range changes {
		idx := i
		changeID := changes[i].ID
		group.Submit(func() {
			if _, err := e.attributes.AutoApply(ctx, changeID); err != nil {
				logger.WarnCtx(ctx, "Failed to apply grace-elapsed change", zap.String("changeID", changeID), zap.Error(err))
				return
			}
			outcomes[idx].Store(true)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for i, change := range changes {
		if outcomes[i].Load() {
			result.AppliedIDs = append(result.AppliedIDs, change.ID)
		} else {
			result.FailedIDs = append(result.FailedIDs, change.ID)
		}
	}

	return result, nil
}
