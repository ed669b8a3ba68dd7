package workflows_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/mocks"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/sweeper"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/workflows"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl       *gomock.Controller
	reaper     *mocks.MockTransferReaper
	attributes *mocks.MockAttributesWorkflow
	clock      *mocks.MockClock
	executor   workflows.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:       ctrl,
		reaper:     mocks.NewMockTransferReaper(ctrl),
		attributes: mocks.NewMockAttributesWorkflow(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	tm.executor = workflows.NewExecutor(tm.reaper, tm.attributes, tm.clock, 2)
	return tm
}

func TestExecutor_ExpireStaleTransfers(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.reaper.EXPECT().
		SweepExpired(ctx, now, 7).
		Return(&sweeper.SweepResult{ExpiredCount: 1, ExpiredIDs: []string{"t-1"}}, nil)

	result, err := tm.executor.ExpireStaleTransfers(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"t-1"}, result.ExpiredIDs)
}

func TestExecutor_ApplyElapsedChanges(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.attributes.EXPECT().
		ListGraceElapsed(ctx, now, 10).
		Return([]schema.AttributeChange{{ID: "chg-1"}, {ID: "chg-2"}, {ID: "chg-3"}}, nil)
	tm.attributes.EXPECT().
		AutoApply(ctx, "chg-1").
		Return(&schema.AttributeChange{ID: "chg-1"}, nil)
	tm.attributes.EXPECT().
		AutoApply(ctx, "chg-2").
		Return(nil, domain.ErrInvalidState)
	tm.attributes.EXPECT().
		AutoApply(ctx, "chg-3").
		Return(&schema.AttributeChange{ID: "chg-3"}, nil)

	result, err := tm.executor.ApplyElapsedChanges(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Found)
	assert.Equal(t, []string{"chg-1", "chg-3"}, result.AppliedIDs)
	assert.Equal(t, []string{"chg-2"}, result.FailedIDs)
}

func TestExecutor_ApplyElapsedChanges_Empty(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.attributes.EXPECT().ListGraceElapsed(ctx, now, 10).Return(nil, nil)

	result, err := tm.executor.ApplyElapsedChanges(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Found)
	assert.Empty(t, result.AppliedIDs)
}

func TestExecutor_ApplyElapsedChanges_ListError(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now)
	tm.attributes.EXPECT().ListGraceElapsed(ctx, now, 10).Return(nil, errors.New("boom"))

	result, err := tm.executor.ApplyElapsedChanges(ctx, 10)

	require.Error(t, err)
	assert.Nil(t, result)
}
