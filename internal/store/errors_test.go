package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
)

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError("op", nil))

	err := wrapError("approve claim", domain.ErrInvalidState)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.False(t, domain.IsTransient(err))

	err = wrapError("approve claim", &pgconn.PgError{Code: pgDeadlockDetected})
	assert.True(t, domain.IsTransient(err))

	err = wrapError("approve claim", errVersionConflict)
	assert.True(t, domain.IsTransient(err))

	err = wrapError("approve claim", fmt.Errorf("wrapped: %w", context.DeadlineExceeded))
	assert.True(t, domain.IsTransient(err))

	err = wrapError("approve claim", &pgconn.PgError{Code: "23502"})
	assert.False(t, domain.IsTransient(err))
	assert.False(t, domain.IsPartialApply(err))
}

func TestTxError(t *testing.T) {
	t.Run("rolled back callback error is not partial", func(t *testing.T) {
		partial := &domain.PartialApplyError{Operation: "ApproveClaim", InstrumentID: "inst-1", RecordID: "claim-1"}

		err := txError("approve claim", fmt.Errorf("%w: claim was updated concurrently", domain.ErrInvalidState), false, partial)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		assert.False(t, domain.IsPartialApply(err))

		err = txError("approve claim", errVersionConflict, false, partial)
		assert.True(t, domain.IsTransient(err))
		assert.False(t, domain.IsPartialApply(err))
		assert.NoError(t, partial.Err)
	})

	t.Run("failed commit is partial", func(t *testing.T) {
		partial := &domain.PartialApplyError{Operation: "ApplyChange", InstrumentID: "inst-1", RecordID: "change-1"}
		commitErr := errors.New("connection reset during commit")

		err := txError("apply attribute change", commitErr, true, partial)
		require.True(t, domain.IsPartialApply(err))

		var got *domain.PartialApplyError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, "inst-1", got.InstrumentID)
		assert.Equal(t, "change-1", got.RecordID)
		assert.ErrorIs(t, err, commitErr)
	})
}
