package workflows

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	temporal "github.com/RonenBerka/TWNG-APP-sub000/internal/providers/temporal"
)

const (
	// TransferExpiryScheduleID is the schedule that starts SweepExpiredTransfers
	TransferExpiryScheduleID = "twng-transfer-expiry"
	// GraceSweepScheduleID is the schedule that starts ApplyGraceElapsedChanges
	GraceSweepScheduleID = "twng-grace-sweep"
)

// ScheduleConfig configures the maintenance schedules
type ScheduleConfig struct {
	TaskQueue string

	TransferExpiryInterval time.Duration
	TransferExpiryDays     int

	// GraceSweepInterval of zero leaves the grace schedule unregistered
	GraceSweepInterval time.Duration
	GraceSweepLimit    int
}

// RegisterSchedules creates or updates the maintenance schedules
func RegisterSchedules(ctx context.Context, orchestrator temporal.TemporalOrchestrator, w Worker, cfg ScheduleConfig) error {
	err := temporal.EnsureIntervalSchedule(ctx, orchestrator, temporal.IntervalSchedule{
		ScheduleID: TransferExpiryScheduleID,
		WorkflowID: TransferExpiryScheduleID,
		Workflow:   w.SweepExpiredTransfers,
		Args:       []interface{}{cfg.TransferExpiryDays},
		TaskQueue:  cfg.TaskQueue,
		Every:      cfg.TransferExpiryInterval,
		RunTimeout: 10 * time.Minute,
	})
	if err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Registered schedule",
		zap.String("scheduleID", TransferExpiryScheduleID),
		zap.Duration("every", cfg.TransferExpiryInterval))

	if cfg.GraceSweepInterval <= 0 {
		return nil
	}

	err = temporal.EnsureIntervalSchedule(ctx, orchestrator, temporal.IntervalSchedule{
		ScheduleID: GraceSweepScheduleID,
		WorkflowID: GraceSweepScheduleID,
		Workflow:   w.ApplyGraceElapsedChanges,
		Args:       []interface{}{cfg.GraceSweepLimit},
		TaskQueue:  cfg.TaskQueue,
		Every:      cfg.GraceSweepInterval,
		RunTimeout: 30 * time.Minute,
	})
	if err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Registered schedule",
		zap.String("scheduleID", GraceSweepScheduleID),
		zap.Duration("every", cfg.GraceSweepInterval))

	return nil
}
