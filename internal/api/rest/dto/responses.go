package dto

import (
	"encoding/json"
	"time"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/claims"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/sweeper"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/transfers"
)

// ClaimResponse represents an ownership claim
type ClaimResponse struct {
	ID               string                  `json:"id"`
	InstrumentID     string                  `json:"instrument_id"`
	ClaimerID        string                  `json:"claimer_id"`
	Status           domain.ClaimStatus      `json:"status"`
	VerificationType domain.VerificationType `json:"verification_type"`
	VerificationData json.RawMessage         `json:"verification_data"`
	ClaimReason      string                  `json:"claim_reason"`
	ReviewedBy       *string                 `json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time              `json:"reviewed_at,omitempty"`
	RejectionReason  *string                 `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`

	// Instrument is set on listings and detail lookups
	Instrument *InstrumentSummary `json:"instrument,omitempty"`
}

// InstrumentSummary is the instrument identity shown next to a claim
type InstrumentSummary struct {
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         *string `json:"year,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
}

// ClaimPageResponse represents a page of claims
type ClaimPageResponse struct {
	Items      []ClaimResponse `json:"items"`
	Total      uint64          `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

// PendingClaimResponse reports whether the caller has a live claim on an instrument
type PendingClaimResponse struct {
	InstrumentID    string `json:"instrument_id"`
	HasPendingClaim bool   `json:"has_pending_claim"`
}

// InstrumentResponse represents an instrument
type InstrumentResponse struct {
	ID             string          `json:"id"`
	Make           string          `json:"make"`
	Model          string          `json:"model"`
	Year           *string         `json:"year,omitempty"`
	SerialNumber   *string         `json:"serial_number,omitempty"`
	Finish         *string         `json:"finish,omitempty"`
	Condition      *string         `json:"condition,omitempty"`
	Specs          json.RawMessage `json:"specs"`
	CurrentOwnerID *string         `json:"current_owner_id"`
	IsClaimable    bool            `json:"is_claimable"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AttributeChangeResponse represents a proposed attribute change
type AttributeChangeResponse struct {
	ID                string               `json:"id"`
	InstrumentID      string               `json:"instrument_id"`
	FieldName         string               `json:"field_name"`
	OldValue          *string              `json:"old_value"`
	NewValue          *string              `json:"new_value"`
	ChangeReason      string               `json:"change_reason"`
	ChangedByUserID   string               `json:"changed_by_user_id"`
	ChangeType        domain.ChangeType    `json:"change_type"`
	IsLocked          bool                 `json:"is_locked"`
	Outcome           domain.ChangeOutcome `json:"outcome,omitempty"`
	GracePeriodEndsAt *time.Time           `json:"grace_period_ends_at,omitempty"`
	LockedAt          *time.Time           `json:"locked_at,omitempty"`
	AutoApplyFailedAt *time.Time           `json:"auto_apply_failed_at,omitempty"`
	AutoApplyError    *string              `json:"auto_apply_error,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
}

// TransferResponse represents an ownership transfer
type TransferResponse struct {
	ID              string                `json:"id"`
	InstrumentID    string                `json:"instrument_id"`
	FromOwnerID     *string               `json:"from_owner_id"`
	ToOwnerID       *string               `json:"to_owner_id"`
	Status          domain.TransferStatus `json:"status"`
	TransferNotes   string                `json:"transfer_notes"`
	RejectionReason *string               `json:"rejection_reason,omitempty"`
	AcceptedAt      *time.Time            `json:"accepted_at,omitempty"`
	CompletedAt     *time.Time            `json:"completed_at,omitempty"`
	CancelledAt     *time.Time            `json:"cancelled_at,omitempty"`
	DeclinedAt      *time.Time            `json:"declined_at,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// UserTransfersResponse splits the caller's transfers by direction
type UserTransfersResponse struct {
	Outgoing []TransferResponse `json:"outgoing"`
	Incoming []TransferResponse `json:"incoming"`
}

// SweepResponse reports the outcome of a transfer expiry sweep
type SweepResponse struct {
	ExpiredCount int      `json:"expired_count"`
	ExpiredIDs   []string `json:"expired_ids"`
}

// ListResponse wraps a list of items
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

func MapClaimToDTO(claim *schema.OwnershipClaim) *ClaimResponse {
	return &ClaimResponse{
		ID:               claim.ID,
		InstrumentID:     claim.InstrumentID,
		ClaimerID:        claim.ClaimerID,
		Status:           claim.Status,
		VerificationType: claim.VerificationType,
		VerificationData: rawJSON(claim.VerificationData),
		ClaimReason:      claim.ClaimReason,
		ReviewedBy:       claim.ReviewedBy,
		ReviewedAt:       claim.ReviewedAt,
		RejectionReason:  claim.RejectionReason,
		CreatedAt:        claim.CreatedAt,
		UpdatedAt:        claim.UpdatedAt,
	}
}

func MapClaimWithInstrumentToDTO(claim *store.ClaimWithInstrument) *ClaimResponse {
	dto := MapClaimToDTO(&claim.OwnershipClaim)
	dto.Instrument = &InstrumentSummary{
		Make:         claim.InstrumentMake,
		Model:        claim.InstrumentModel,
		Year:         claim.InstrumentYear,
		SerialNumber: claim.InstrumentSerialNumber,
	}
	return dto
}

func MapClaimPageToDTO(page *claims.ClaimPage) *ClaimPageResponse {
	items := make([]ClaimResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *MapClaimWithInstrumentToDTO(&page.Items[i]))
	}
	return &ClaimPageResponse{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages,
	}
}

func MapInstrumentToDTO(instrument *schema.Instrument) *InstrumentResponse {
	return &InstrumentResponse{
		ID:             instrument.ID,
		Make:           instrument.Make,
		Model:          instrument.Model,
		Year:           instrument.Year,
		SerialNumber:   instrument.SerialNumber,
		Finish:         instrument.Finish,
		Condition:      instrument.Condition,
		Specs:          rawJSON(instrument.Specs),
		CurrentOwnerID: instrument.CurrentOwnerID,
		IsClaimable:    instrument.IsClaimable,
		UpdatedAt:      instrument.UpdatedAt,
	}
}

func MapAttributeChangeToDTO(change *schema.AttributeChange) *AttributeChangeResponse {
	return &AttributeChangeResponse{
		ID:                change.ID,
		InstrumentID:      change.InstrumentID,
		FieldName:         change.FieldName,
		OldValue:          change.OldValue,
		NewValue:          change.NewValue,
		ChangeReason:      change.ChangeReason,
		ChangedByUserID:   change.ChangedByUserID,
		ChangeType:        change.ChangeType,
		IsLocked:          change.IsLocked,
		Outcome:           change.Outcome,
		GracePeriodEndsAt: change.GracePeriodEndsAt,
		LockedAt:          change.LockedAt,
		AutoApplyFailedAt: change.AutoApplyFailedAt,
		AutoApplyError:    change.AutoApplyError,
		CreatedAt:         change.CreatedAt,
	}
}

func MapAttributeChangesToDTO(changes []schema.AttributeChange) *ListResponse[AttributeChangeResponse] {
	items := make([]AttributeChangeResponse, 0, len(changes))
	for i := range changes {
		items = append(items, *MapAttributeChangeToDTO(&changes[i]))
	}
	return &ListResponse[AttributeChangeResponse]{Items: items}
}

func MapTransferToDTO(transfer *schema.OwnershipTransfer) *TransferResponse {
	return &TransferResponse{
		ID:              transfer.ID,
		InstrumentID:    transfer.InstrumentID,
		FromOwnerID:     transfer.FromOwnerID,
		ToOwnerID:       transfer.ToOwnerID,
		Status:          transfer.Status,
		TransferNotes:   transfer.TransferNotes,
		RejectionReason: transfer.RejectionReason,
		AcceptedAt:      transfer.AcceptedAt,
		CompletedAt:     transfer.CompletedAt,
		CancelledAt:     transfer.CancelledAt,
		DeclinedAt:      transfer.DeclinedAt,
		CreatedAt:       transfer.CreatedAt,
		UpdatedAt:       transfer.UpdatedAt,
	}
}

func MapTransfersToDTO(transfers []schema.OwnershipTransfer) *ListResponse[TransferResponse] {
	items := make([]TransferResponse, 0, len(transfers))
	for i := range transfers {
		items = append(items, *MapTransferToDTO(&transfers[i]))
	}
	return &ListResponse[TransferResponse]{Items: items}
}

func MapUserTransfersToDTO(mine *transfers.UserTransfers) *UserTransfersResponse {
	return &UserTransfersResponse{
		Outgoing: MapTransfersToDTO(mine.Outgoing).Items,
		Incoming: MapTransfersToDTO(mine.Incoming).Items,
	}
}

func MapSweepResultToDTO(result *sweeper.SweepResult) *SweepResponse {
	return &SweepResponse{
		ExpiredCount: result.ExpiredCount,
		ExpiredIDs:   result.ExpiredIDs,
	}
}

// rawJSON returns the stored JSON, or an empty object when the column is empty
func rawJSON(data []byte) json.RawMessage {
	if len(data) == 0 {
		return json.RawMessage("{}")
	}
	return json.RawMessage(data)
}
