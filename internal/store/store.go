package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// =============================================================================
	// Instruments
	// =============================================================================

	// CreateInstrument registers a new instrument
	CreateInstrument(ctx context.Context, input CreateInstrumentInput) (*schema.Instrument, error)
	// GetInstrument retrieves an instrument by ID, returns nil if absent
	GetInstrument(ctx context.Context, instrumentID string) (*schema.Instrument, error)
	// SetInstrumentClaimable toggles whether an instrument accepts claims
	SetInstrumentClaimable(ctx context.Context, instrumentID string, claimable bool, at time.Time) (*schema.Instrument, error)

	// =============================================================================
	// Ownership claims
	// =============================================================================

	// CreateClaim inserts a pending claim. Returns domain.ErrDuplicateClaim when the
	// claimer already has a live claim on the instrument.
	CreateClaim(ctx context.Context, input CreateClaimInput) (*schema.OwnershipClaim, error)
	// GetClaim retrieves a claim by ID, returns nil if absent
	GetClaim(ctx context.Context, claimID string) (*schema.OwnershipClaim, error)
	// GetClaimDetail retrieves a claim joined with its instrument, returns nil if absent
	GetClaimDetail(ctx context.Context, claimID string) (*ClaimWithInstrument, error)
	// HasLiveClaim reports whether the user has a pending or under-review claim on the instrument
	HasLiveClaim(ctx context.Context, claimerID, instrumentID string) (bool, error)
	// ApproveClaim flips instrument ownership to the claimer and marks the claim approved in one transaction
	ApproveClaim(ctx context.Context, claimID, adminID string, at time.Time) (*ApproveClaimResult, error)
	// UpdateClaimStatus performs a guarded status update, returns false when no row matched the guard
	UpdateClaimStatus(ctx context.Context, input UpdateClaimStatusInput) (bool, error)
	// ListClaims retrieves claims joined with instrument details, newest first
	ListClaims(ctx context.Context, filter ClaimQueryFilter) ([]ClaimWithInstrument, uint64, error)
	// CountClaimsByStatus counts claims grouped by status
	CountClaimsByStatus(ctx context.Context) (map[domain.ClaimStatus]uint64, error)

	// =============================================================================
	// Attribute changes
	// =============================================================================

	// CreateAttributeChange inserts an unlocked change proposal
	CreateAttributeChange(ctx context.Context, input CreateAttributeChangeInput) (*schema.AttributeChange, error)
	// GetAttributeChange retrieves a change by ID, returns nil if absent
	GetAttributeChange(ctx context.Context, changeID string) (*schema.AttributeChange, error)
	// SetGracePeriod sets the grace deadline on an unlocked change and clears a failed automatic application.
	// Returns false when the change is locked or absent.
	SetGracePeriod(ctx context.Context, changeID string, endsAt time.Time) (bool, error)
	// MarkAutoApplyFailed parks an unlocked change after its automatic application failed, returns false when no row matched
	MarkAutoApplyFailed(ctx context.Context, changeID, reason string, at time.Time) (bool, error)
	// ApplyAttributeChange writes the change into the instrument and locks the change in one transaction
	ApplyAttributeChange(ctx context.Context, changeID string, at time.Time) (*ApplyChangeResult, error)
	// RejectAttributeChange locks an unlocked change with a rejected outcome, returns false when no row matched
	RejectAttributeChange(ctx context.Context, changeID string, at time.Time) (bool, error)
	// ListOpenAttributeChanges retrieves unlocked changes, oldest first, optionally scoped to one instrument
	ListOpenAttributeChanges(ctx context.Context, instrumentID *string) ([]schema.AttributeChange, error)
	// ListAttributeChanges retrieves every change of an instrument, open and locked, newest first
	ListAttributeChanges(ctx context.Context, instrumentID string) ([]schema.AttributeChange, error)
	// ListGraceElapsedChanges retrieves unlocked, unparked changes whose grace deadline is at or before now
	ListGraceElapsedChanges(ctx context.Context, now time.Time, limit int) ([]schema.AttributeChange, error)

	// =============================================================================
	// Ownership transfers
	// =============================================================================

	// CreateTransfer inserts a pending transfer
	CreateTransfer(ctx context.Context, input CreateTransferInput) (*schema.OwnershipTransfer, error)
	// GetTransfer retrieves a transfer by ID, returns nil if absent
	GetTransfer(ctx context.Context, transferID string) (*schema.OwnershipTransfer, error)
	// UpdateTransferStatus performs a guarded status update, returns false when no row matched the guard
	UpdateTransferStatus(ctx context.Context, input UpdateTransferStatusInput) (bool, error)
	// CompleteTransfer moves an accepted transfer to completed and flips instrument ownership in one transaction
	CompleteTransfer(ctx context.Context, transferID string, at time.Time) (*CompleteTransferResult, error)
	// ListTransferHistory retrieves resolved transfers of an instrument, newest first
	ListTransferHistory(ctx context.Context, instrumentID string) ([]schema.OwnershipTransfer, error)
	// ListUserTransfers retrieves transfers the user sends or receives, newest first
	ListUserTransfers(ctx context.Context, userID string) ([]schema.OwnershipTransfer, error)
	// HasOpenTransfer reports whether the instrument has a pending or accepted transfer
	HasOpenTransfer(ctx context.Context, instrumentID string) (bool, error)
	// ExpirePendingTransfers moves pending transfers created before cutoff to expired and returns their IDs
	ExpirePendingTransfers(ctx context.Context, cutoff, now time.Time) ([]string, error)

	// =============================================================================
	// Side-effect sinks
	// =============================================================================

	// CreateNotification records a user notification
	CreateNotification(ctx context.Context, notification *schema.Notification) error
	// CreateAuditLog records an audit entry
	CreateAuditLog(ctx context.Context, entry *schema.AuditLog) error

	// =============================================================================
	// Sweep markers
	// =============================================================================

	// GetSweepMarker retrieves the last completed run time of a named sweep, returns nil if it never ran
	GetSweepMarker(ctx context.Context, name string) (*time.Time, error)
	// SetSweepMarker stores the last completed run time of a named sweep
	SetSweepMarker(ctx context.Context, name string, at time.Time) error
}

// CreateInstrumentInput represents the input for registering an instrument
type CreateInstrumentInput struct {
	ID             string
	Make           string
	Model          string
	Year           *string
	SerialNumber   *string
	Finish         *string
	Condition      *string
	Specs          map[string]string
	CurrentOwnerID *string
	IsClaimable    bool
}

// CreateClaimInput represents the input for inserting a claim
type CreateClaimInput struct {
	ID               string
	InstrumentID     string
	ClaimerID        string
	VerificationType domain.VerificationType
	VerificationData datatypes.JSON
	ClaimReason      string
	CreatedAt        time.Time
}

// UpdateClaimStatusInput represents a guarded claim status update
type UpdateClaimStatusInput struct {
	ClaimID string
	// FromStatuses is the set of statuses the claim must currently be in
	FromStatuses []domain.ClaimStatus
	// ClaimerID, when set, restricts the update to claims owned by this user
	ClaimerID       *string
	ToStatus        domain.ClaimStatus
	ReviewedBy      *string
	RejectionReason *string
	At              time.Time
}

// ClaimQueryFilter represents filters for listing claims
type ClaimQueryFilter struct {
	Status    *domain.ClaimStatus
	Search    string
	ClaimerID *string
	Limit     int
	Offset    uint64
}

// ClaimWithInstrument is a claim joined with the instrument it targets
type ClaimWithInstrument struct {
	schema.OwnershipClaim
	InstrumentMake         string  `gorm:"column:instrument_make"`
	InstrumentModel        string  `gorm:"column:instrument_model"`
	InstrumentYear         *string `gorm:"column:instrument_year"`
	InstrumentSerialNumber *string `gorm:"column:instrument_serial_number"`
}

// ApproveClaimResult is the outcome of an approval
type ApproveClaimResult struct {
	Claim      *schema.OwnershipClaim
	Instrument *schema.Instrument
	// AlreadyApproved is true when the claim was approved before this call and nothing was written
	AlreadyApproved bool
}

// CreateAttributeChangeInput represents the input for inserting a change proposal
type CreateAttributeChangeInput struct {
	ID              string
	InstrumentID    string
	FieldName       string
	OldValue        *string
	NewValue        *string
	ChangeReason    string
	ChangedByUserID string
	ChangeType      domain.ChangeType
	CreatedAt       time.Time
}

// ApplyChangeResult is the outcome of applying a change
type ApplyChangeResult struct {
	Change     *schema.AttributeChange
	Instrument *schema.Instrument
	// AlreadyApplied is true when the change was applied before this call and nothing was written
	AlreadyApplied bool
}

// CreateTransferInput represents the input for inserting a transfer
type CreateTransferInput struct {
	ID            string
	InstrumentID  string
	FromOwnerID   *string
	ToOwnerID     *string
	TransferNotes string
	CreatedAt     time.Time
}

// UpdateTransferStatusInput represents a guarded transfer status update
type UpdateTransferStatusInput struct {
	TransferID   string
	FromStatuses []domain.TransferStatus
	ToStatus     domain.TransferStatus
	// RejectionReason is recorded when declining
	RejectionReason *string
	At              time.Time
}

// CompleteTransferResult is the outcome of completing a transfer
type CompleteTransferResult struct {
	Transfer   *schema.OwnershipTransfer
	Instrument *schema.Instrument
	// AlreadyCompleted is true when the transfer was completed before this call and nothing was written
	AlreadyCompleted bool
}
