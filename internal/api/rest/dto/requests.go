package dto

import (
	"fmt"
	"strings"

	apierrors "github.com/RonenBerka/TWNG-APP-sub000/internal/api/shared/errors"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
)

// MaxReasonLength bounds free-form reasons and notes
const MaxReasonLength = 2000

// SubmitClaimRequest represents the request body for submitting an ownership claim
type SubmitClaimRequest struct {
	InstrumentID     string            `json:"instrument_id"`
	VerificationType string            `json:"verification_type"`
	VerificationData map[string]string `json:"verification_data"`
	ClaimReason      string            `json:"claim_reason"`
}

// Validate validates the request body
func (r *SubmitClaimRequest) Validate() error {
	if strings.TrimSpace(r.InstrumentID) == "" {
		return apierrors.NewValidationError("instrument_id is required")
	}
	if !domain.IsValidVerificationType(domain.VerificationType(r.VerificationType)) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid verification_type: %s", r.VerificationType))
	}
	if len(r.ClaimReason) > MaxReasonLength {
		return apierrors.NewValidationError(fmt.Sprintf("claim_reason must be at most %d characters", MaxReasonLength))
	}
	return nil
}

// RejectClaimRequest represents the request body for rejecting a claim
type RejectClaimRequest struct {
	Reason string `json:"reason"`
}

// Validate validates the request body. An empty reason is left to the workflow, which reports it as missing.
func (r *RejectClaimRequest) Validate() error {
	if len(r.Reason) > MaxReasonLength {
		return apierrors.NewValidationError(fmt.Sprintf("reason must be at most %d characters", MaxReasonLength))
	}
	return nil
}

// SetClaimableRequest represents the request body for opening or closing an instrument to claims
type SetClaimableRequest struct {
	Claimable *bool `json:"claimable"`
}

// Validate validates the request body
func (r *SetClaimableRequest) Validate() error {
	if r.Claimable == nil {
		return apierrors.NewValidationError("claimable is required")
	}
	return nil
}

// ProposeChangeRequest represents the request body for proposing an attribute change
type ProposeChangeRequest struct {
	FieldName string  `json:"field_name"`
	OldValue  *string `json:"old_value"`
	NewValue  *string `json:"new_value"`
	Reason    string  `json:"reason"`
}

// Validate validates the request body
func (r *ProposeChangeRequest) Validate() error {
	if strings.TrimSpace(r.FieldName) == "" {
		return apierrors.NewValidationError("field_name is required")
	}
	if len(r.Reason) > MaxReasonLength {
		return apierrors.NewValidationError(fmt.Sprintf("reason must be at most %d characters", MaxReasonLength))
	}
	return nil
}

// SetGracePeriodRequest represents the request body for setting a change's grace period.
// Days of zero or less uses the configured default.
type SetGracePeriodRequest struct {
	Days int `json:"days"`
}

// InitiateTransferRequest represents the request body for initiating an ownership transfer
type InitiateTransferRequest struct {
	InstrumentID string  `json:"instrument_id"`
	RecipientID  *string `json:"recipient_id"`
	Notes        string  `json:"notes"`
}

// Validate validates the request body
func (r *InitiateTransferRequest) Validate() error {
	if strings.TrimSpace(r.InstrumentID) == "" {
		return apierrors.NewValidationError("instrument_id is required")
	}
	if r.RecipientID != nil && strings.TrimSpace(*r.RecipientID) == "" {
		return apierrors.NewValidationError("recipient_id must not be empty when provided")
	}
	if len(r.Notes) > MaxReasonLength {
		return apierrors.NewValidationError(fmt.Sprintf("notes must be at most %d characters", MaxReasonLength))
	}
	return nil
}

// DeclineTransferRequest represents the request body for declining a transfer
type DeclineTransferRequest struct {
	Reason string `json:"reason"`
}

// SweepTransfersRequest represents the request body for an on-demand transfer expiry sweep.
// ThresholdDays of zero or less uses the configured default.
type SweepTransfersRequest struct {
	ThresholdDays int `json:"threshold_days"`
}
