package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/sweeper"
)

// partialApplyErrorType is the Temporal error type of *domain.PartialApplyError
const partialApplyErrorType = "PartialApplyError"

// maintenanceActivityOptions retries transient datastore failures a few times.
// Domain errors are terminal.
func maintenanceActivityOptions(timeout time.Duration) workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: timeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
			NonRetryableErrorTypes: []string{partialApplyErrorType},
		},
	}
}

// SweepExpiredTransfers expires stale pending transfers
func (w *worker) SweepExpiredTransfers(ctx workflow.Context, thresholdDays int) (*sweeper.SweepResult, error) {
	logger.InfoWf(ctx, "Starting transfer expiry sweep", zap.Int("thresholdDays", thresholdDays))

	ctx = workflow.WithActivityOptions(ctx, maintenanceActivityOptions(2*time.Minute))

	var result sweeper.SweepResult
	err := workflow.ExecuteActivity(ctx, w.executor.ExpireStaleTransfers, thresholdDays).Get(ctx, &result)
	if err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to sweep expired transfers"), zap.Error(err))
		return nil, err
	}

	logger.InfoWf(ctx, "Transfer expiry sweep completed", zap.Int("expired", result.ExpiredCount))
	return &result, nil
}

// ApplyGraceElapsedChanges applies attribute changes whose grace period elapsed
func (w *worker) ApplyGraceElapsedChanges(ctx workflow.Context, limit int) (*GraceApplyResult, error) {
	logger.InfoWf(ctx, "Starting grace period sweep", zap.Int("limit", limit))

	ctx = workflow.WithActivityOptions(ctx, maintenanceActivityOptions(10*time.Minute))

	var result GraceApplyResult
	err := workflow.ExecuteActivity(ctx, w.executor.ApplyElapsedChanges, limit).Get(ctx, &result)
	if err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to apply grace-elapsed changes"), zap.Error(err))
		return nil, err
	}

	if len(result.FailedIDs) > 0 {
		logger.WarnWf(ctx, "Some grace-elapsed changes were not applied",
			zap.Strings("failedIDs", result.FailedIDs))
	}
	logger.InfoWf(ctx, "Grace period sweep completed",
		zap.Int("found", result.Found),
		zap.Int("applied", len(result.AppliedIDs)))
	return &result, nil
}
