package temporal

import (
	"context"
	"errors"
	"fmt"
	"time"

	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
)

// TemporalOrchestrator is the part of client.Client used to manage schedules
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator
type TemporalOrchestrator interface {
	ScheduleClient() client.ScheduleClient
}

// IntervalSchedule describes a workflow started on a fixed interval
type IntervalSchedule struct {
	// ScheduleID is the stable schedule identifier
	ScheduleID string
	// WorkflowID is the ID prefix of started workflows (Temporal appends the nominal time)
	WorkflowID string
	Workflow   interface{}
	Args       []interface{}
	TaskQueue  string
	Every      time.Duration
	// RunTimeout bounds each started workflow run
	RunTimeout time.Duration
}

// EnsureIntervalSchedule creates the schedule, or updates its interval and action when it already exists.
// Overlapping runs are skipped.
func EnsureIntervalSchedule(ctx context.Context, orchestrator TemporalOrchestrator, s IntervalSchedule) error {
	if s.Every <= 0 {
		return fmt.Errorf("schedule %s: interval must be positive", s.ScheduleID)
	}

	spec := client.ScheduleSpec{
		Intervals: []client.ScheduleIntervalSpec{{Every: s.Every}},
	}
	action := &client.ScheduleWorkflowAction{
		ID:                 s.WorkflowID,
		Workflow:           s.Workflow,
		Args:               s.Args,
		TaskQueue:          s.TaskQueue,
		WorkflowRunTimeout: s.RunTimeout,
	}

	scheduleClient := orchestrator.ScheduleClient()
	_, err := scheduleClient.Create(ctx, client.ScheduleOptions{
		ID:      s.ScheduleID,
		Spec:    spec,
		Action:  action,
		Overlap: enumspb.SCHEDULE_OVERLAP_POLICY_SKIP,
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, temporal.ErrScheduleAlreadyRunning) {
		return fmt.Errorf("failed to create schedule %s: %w", s.ScheduleID, err)
	}

	handle := scheduleClient.GetHandle(ctx, s.ScheduleID)
	err = handle.Update(ctx, client.ScheduleUpdateOptions{
		DoUpdate: func(input client.ScheduleUpdateInput) (*client.ScheduleUpdate, error) {
			schedule := input.Description.Schedule
			schedule.Spec = &spec
			schedule.Action = action
			return &client.ScheduleUpdate{Schedule: &schedule}, nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update schedule %s: %w", s.ScheduleID, err)
	}

	return nil
}
