package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgAdminShutdown        = "57P01"
	pgCannotConnectNow     = "57P03"
	pgQueryCanceled        = "57014"

	// uniqueLiveClaimIndex is the partial unique index guarding one live claim per (instrument, claimer)
	uniqueLiveClaimIndex = "uq_ownership_claims_live"
)

// errVersionConflict is returned when a guarded instrument write loses a compare-and-set race
var errVersionConflict = errors.New("instrument version changed concurrently")

// isUniqueViolation reports whether err is a unique violation on the named constraint
// (any constraint when name is empty)
func isUniqueViolation(err error, name string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return name == "" || pgErr.ConstraintName == name
}

// isTransientDBError reports whether err is an infrastructure failure after which
// the operation can be retried safely
func isTransientDBError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, errVersionConflict) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable,
			pgAdminShutdown, pgCannotConnectNow, pgQueryCanceled:
			return true
		}
		// Class 08: connection exception
		return strings.HasPrefix(pgErr.Code, "08")
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// wrapError classifies a datastore error for the given operation.
// Domain errors pass through untouched, infrastructure failures become domain.TransientError.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsTerminal(err) || domain.IsTransient(err) || domain.IsPartialApply(err) {
		return err
	}
	if isTransientDBError(err) {
		return domain.NewTransientError(op, err)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
