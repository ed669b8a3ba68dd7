package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// ClaimStatus represents the lifecycle state of an ownership claim
type ClaimStatus string

const (
	ClaimStatusPending     ClaimStatus = "pending"
	ClaimStatusUnderReview ClaimStatus = "under_review"
	ClaimStatusApproved    ClaimStatus = "approved"
	ClaimStatusRejected    ClaimStatus = "rejected"
	ClaimStatusWithdrawn   ClaimStatus = "withdrawn"
)

// LiveClaimStatuses are the statuses from which a claim may still transition
func LiveClaimStatuses() []ClaimStatus {
	return []ClaimStatus{ClaimStatusPending, ClaimStatusUnderReview}
}

// IsLive reports whether the claim can still be adjudicated or withdrawn
func (s ClaimStatus) IsLive() bool {
	return s == ClaimStatusPending || s == ClaimStatusUnderReview
}

// IsTerminal reports whether no further transition is allowed
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusApproved || s == ClaimStatusRejected || s == ClaimStatusWithdrawn
}

// IsValidClaimStatus checks if a claim status is known
func IsValidClaimStatus(s ClaimStatus) bool {
	return s.IsLive() || s.IsTerminal()
}

// VerificationType is the kind of evidence offered with a claim
type VerificationType string

const (
	VerificationInstagramMatch VerificationType = "instagram_match"
	VerificationSerialPhoto    VerificationType = "serial_photo"
	VerificationReceipt        VerificationType = "receipt"
	VerificationLuthierVouch   VerificationType = "luthier_vouch"
	VerificationOther          VerificationType = "other"
)

var evidenceKeys = map[VerificationType]string{
	VerificationInstagramMatch: "instagram_handle",
	VerificationSerialPhoto:    "serial_photo_url",
	VerificationReceipt:        "receipt_url",
	VerificationLuthierVouch:   "luthier_name",
	VerificationOther:          "description",
}

// EvidenceKey returns the verification data key required for the given type
func EvidenceKey(t VerificationType) (string, bool) {
	key, ok := evidenceKeys[t]
	return key, ok
}

// IsValidVerificationType checks if a verification type is known
func IsValidVerificationType(t VerificationType) bool {
	_, ok := evidenceKeys[t]
	return ok
}

// ValidateEvidence checks that data carries the evidence required by the verification type.
// Keys ending in "_url" must hold an absolute http(s) URL.
func ValidateEvidence(t VerificationType, data map[string]string) error {
	key, ok := EvidenceKey(t)
	if !ok {
		return fmt.Errorf("%w: unknown verification type %q", ErrInvalidInput, t)
	}

	value := strings.TrimSpace(data[key])
	if value == "" {
		return fmt.Errorf("%w: %s is required for %s verification", ErrInvalidInput, key, t)
	}

	if strings.HasSuffix(key, "_url") {
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %s must be an absolute http(s) URL", ErrInvalidInput, key)
		}
	}

	return nil
}

// ChangeType is the kind of attribute edit
type ChangeType string

const (
	ChangeTypeCreate ChangeType = "create"
	ChangeTypeUpdate ChangeType = "update"
	ChangeTypeDelete ChangeType = "delete"
)

// ChangeOutcome records why an attribute change was locked
type ChangeOutcome string

const (
	// ChangeOutcomeNone is the outcome of a change that is still open
	ChangeOutcomeNone     ChangeOutcome = ""
	ChangeOutcomeApplied  ChangeOutcome = "applied"
	ChangeOutcomeRejected ChangeOutcome = "rejected"
)

var specKeys = map[string]struct{}{
	"body_material": {},
	"neck_material": {},
	"fretboard":     {},
	"scale_length":  {},
	"pickups":       {},
	"bridge":        {},
	"tuners":        {},
	"weight":        {},
}

// field name -> instruments column
var topLevelFields = map[string]string{
	"make":          "make",
	"model":         "model",
	"year":          "year",
	"serial_number": "serial_number",
	"finish":        "finish",
	"condition":     "condition",
}

// top-level fields backed by NOT NULL columns
var requiredTopLevelFields = map[string]struct{}{
	"make":  {},
	"model": {},
}

// IsSpecKey reports whether a field name lives inside the instrument's specs map
func IsSpecKey(field string) bool {
	_, ok := specKeys[field]
	return ok
}

// SpecKeys returns a copy of the spec key set
func SpecKeys() []string {
	keys := make([]string, 0, len(specKeys))
	for k := range specKeys {
		keys = append(keys, k)
	}
	return keys
}

// TopLevelColumn returns the instruments column backing a mutable top-level field
func TopLevelColumn(field string) (string, bool) {
	col, ok := topLevelFields[field]
	return col, ok
}

// IsMutableField reports whether an attribute change may target the field
func IsMutableField(field string) bool {
	if IsSpecKey(field) {
		return true
	}
	_, ok := topLevelFields[field]
	return ok
}

// RequiresValue reports whether a change to the field must carry a non-empty new value
func RequiresValue(field string) bool {
	_, ok := requiredTopLevelFields[field]
	return ok
}

// TransferStatus represents the lifecycle state of an ownership transfer
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusAccepted  TransferStatus = "accepted"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusCancelled TransferStatus = "cancelled"
	TransferStatusExpired   TransferStatus = "expired"
	TransferStatusDeclined  TransferStatus = "declined"
)

// HistoryTransferStatuses are the resolved statuses shown in an instrument's transfer history
func HistoryTransferStatuses() []TransferStatus {
	return []TransferStatus{
		TransferStatusCompleted,
		TransferStatusDeclined,
		TransferStatusCancelled,
		TransferStatusExpired,
	}
}

// Role is the identity provider's role claim
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// IsAdmin reports whether the role may adjudicate claims and changes
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Notification types delivered to users
const (
	NotificationClaimApproved   = "claim_approved"
	NotificationClaimDenied     = "claim_denied"
	NotificationChangeApplied   = "attribute_change_applied"
	NotificationChangeRejected  = "attribute_change_rejected"
	NotificationTransferUpdated = "transfer_updated"
)

// Audit actions
const (
	AuditClaimSubmitted      = "claim.submitted"
	AuditClaimUnderReview    = "claim.under_review"
	AuditClaimApproved       = "claim.approved"
	AuditClaimRejected       = "claim.rejected"
	AuditClaimWithdrawn      = "claim.withdrawn"
	AuditInstrumentClaimable = "instrument.claimable_changed"
	AuditChangeGraceSet      = "attribute_change.grace_period_set"
	AuditChangeApplied       = "attribute_change.applied"
	AuditChangeRejected      = "attribute_change.rejected"
	AuditTransferInitiated   = "transfer.initiated"
	AuditTransferAccepted    = "transfer.accepted"
	AuditTransferDeclined    = "transfer.declined"
	AuditTransferCancelled   = "transfer.cancelled"
	AuditTransferCompleted   = "transfer.completed"
	AuditTransfersExpired    = "transfer.expired_sweep"
)

// Audit target types
const (
	TargetClaim      = "ownership_claim"
	TargetChange     = "attribute_change"
	TargetTransfer   = "ownership_transfer"
	TargetInstrument = "instrument"
)

// SystemActor is the actor id recorded for automated actions
const SystemActor = "system"
