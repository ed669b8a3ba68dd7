package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced claim, change, transfer or instrument is absent
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the actor lacks rights over the target row
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidState is returned when a transition is attempted from a terminal or wrong state
	ErrInvalidState = errors.New("invalid state transition")

	// ErrDuplicateClaim is returned when the claimer already holds a live claim on the instrument
	ErrDuplicateClaim = errors.New("claimer already has a live claim on this instrument")

	// ErrAlreadyClaimed is returned when the instrument is no longer open to claims
	ErrAlreadyClaimed = errors.New("instrument is not claimable")

	// ErrMissingReason is returned when a rejection is attempted without a reason
	ErrMissingReason = errors.New("rejection reason is required")

	// ErrInvalidInput is returned when a request carries malformed or unsupported values
	ErrInvalidInput = errors.New("invalid input")
)

// PartialApplyError reports that the instrument write and the write of its governing
// record (claim or attribute change) did not both complete.
// The instrument's current values are authoritative when reconciling.
type PartialApplyError struct {
	Operation    string
	InstrumentID string
	RecordID     string
	Err          error
}

func (e *PartialApplyError) Error() string {
	return fmt.Sprintf("partial apply in %s (instrument=%s record=%s): %v", e.Operation, e.InstrumentID, e.RecordID, e.Err)
}

func (e *PartialApplyError) Unwrap() error {
	return e.Err
}

// TransientError wraps infrastructure failures (timeouts, dropped connections,
// serialization conflicts) after which the operation may be retried safely
type TransientError struct {
	Operation string
	Err       error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient failure in %s: %v", e.Operation, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps err as a TransientError for the given operation
func NewTransientError(operation string, err error) error {
	return &TransientError{Operation: operation, Err: err}
}

// IsTransient reports whether err (or anything it wraps) is a TransientError
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsPartialApply reports whether err (or anything it wraps) is a PartialApplyError
func IsPartialApply(err error) bool {
	var pe *PartialApplyError
	return errors.As(err, &pe)
}

// IsTerminal reports whether err belongs to the terminal taxonomy that callers must
// never retry automatically
func IsTerminal(err error) bool {
	for _, target := range []error{
		ErrNotFound,
		ErrForbidden,
		ErrInvalidState,
		ErrDuplicateClaim,
		ErrAlreadyClaimed,
		ErrMissingReason,
		ErrInvalidInput,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
