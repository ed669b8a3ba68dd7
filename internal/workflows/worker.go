package workflows

import (
	"go.temporal.io/sdk/workflow"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/sweeper"
)

// Worker defines the scheduled maintenance workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker.go -package=mocks -mock_names=Worker=MockWorker
type Worker interface {
	// SweepExpiredTransfers expires stale pending transfers
	SweepExpiredTransfers(ctx workflow.Context, thresholdDays int) (*sweeper.SweepResult, error)

	// ApplyGraceElapsedChanges applies attribute changes whose grace period elapsed
	ApplyGraceElapsedChanges(ctx workflow.Context, limit int) (*GraceApplyResult, error)
}

// worker is the concrete implementation of Worker
type worker struct {
	executor Executor
}

// NewWorker creates a new worker instance
func NewWorker(executor Executor) Worker {
	return &worker{
		executor: executor,
	}
}
