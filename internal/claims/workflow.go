package claims

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/notify"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
)

// SubmitClaimInput represents a user's ownership claim on an instrument
type SubmitClaimInput struct {
	InstrumentID     string
	ClaimerID        string
	VerificationType domain.VerificationType
	VerificationData map[string]string
	ClaimReason      string
}

// Workflow drives the ownership claim lifecycle
//
//go:generate mockgen -source=workflow.go -destination=../mocks/claims_workflow.go -package=mocks -mock_names=Workflow=MockClaimsWorkflow
type Workflow interface {
	// SubmitClaim records a pending claim after validating the instrument and the evidence
	SubmitClaim(ctx context.Context, input SubmitClaimInput) (*schema.OwnershipClaim, error)
	// MarkUnderReview moves a pending claim to under_review
	MarkUnderReview(ctx context.Context, claimID, adminID string) (*schema.OwnershipClaim, error)
	// ApproveClaim makes the claimer the instrument's owner and closes the instrument to further claims
	ApproveClaim(ctx context.Context, claimID, adminID string) (*schema.OwnershipClaim, error)
	// RejectClaim closes a live claim with a reason
	RejectClaim(ctx context.Context, claimID, adminID, reason string) (*schema.OwnershipClaim, error)
	// WithdrawClaim lets the claimer close their own live claim
	WithdrawClaim(ctx context.Context, claimID, claimerID string) (*schema.OwnershipClaim, error)
	// SetClaimable opens or closes an instrument to claims
	SetClaimable(ctx context.Context, instrumentID string, claimable bool, adminID string) (*schema.Instrument, error)
}

type workflow struct {
	store      store.Store
	dispatcher notify.Dispatcher
	clock      adapter.Clock
	json       adapter.JSON
}

// NewWorkflow creates a new claim workflow
func NewWorkflow(st store.Store, dispatcher notify.Dispatcher, clock adapter.Clock, jsonAdapter adapter.JSON) Workflow {
	return &workflow{
		store:      st,
		dispatcher: dispatcher,
		clock:      clock,
		json:       jsonAdapter,
	}
}

// SubmitClaim records a pending claim after validating the instrument and the evidence
func (w *workflow) SubmitClaim(ctx context.Context, input SubmitClaimInput) (*schema.OwnershipClaim, error) {
	if strings.TrimSpace(input.InstrumentID) == "" || strings.TrimSpace(input.ClaimerID) == "" {
		return nil, fmt.Errorf("%w: instrument id and claimer id are required", domain.ErrInvalidInput)
	}
	if err := domain.ValidateEvidence(input.VerificationType, input.VerificationData); err != nil {
		return nil, err
	}

	instrument, err := w.store.GetInstrument(ctx, input.InstrumentID)
	if err != nil {
		return nil, err
	}
	if instrument == nil {
		return nil, fmt.Errorf("%w: instrument %s", domain.ErrNotFound, input.InstrumentID)
	}
	// Best-effort: approval re-checks under lock
	if !instrument.Claimable() {
		return nil, domain.ErrAlreadyClaimed
	}

	live, err := w.store.HasLiveClaim(ctx, input.ClaimerID, input.InstrumentID)
	if err != nil {
		return nil, err
	}
	if live {
		return nil, domain.ErrDuplicateClaim
	}

	evidence, err := w.json.MarshalObject(input.VerificationData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal verification data: %w", err)
	}

	// The live-claim index rejects a concurrent duplicate with domain.ErrDuplicateClaim
	claim, err := w.store.CreateClaim(ctx, store.CreateClaimInput{
		ID:               uuid.NewString(),
		InstrumentID:     input.InstrumentID,
		ClaimerID:        input.ClaimerID,
		VerificationType: input.VerificationType,
		VerificationData: datatypes.JSON(evidence),
		ClaimReason:      strings.TrimSpace(input.ClaimReason),
		CreatedAt:        w.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Ownership claim submitted",
		zap.String("claimID", claim.ID),
		zap.String("instrumentID", claim.InstrumentID),
		zap.String("claimerID", claim.ClaimerID))

	w.dispatcher.Audit(ctx, notify.AuditEntry{
		Action:     domain.AuditClaimSubmitted,
		ActorID:    claim.ClaimerID,
		TargetID:   claim.ID,
		TargetType: domain.TargetClaim,
		Details: map[string]interface{}{
			"instrument_id":     claim.InstrumentID,
			"verification_type": string(claim.VerificationType),
		},
	})

	return claim, nil
}

// MarkUnderReview moves a pending claim to under_review
func (w *workflow) MarkUnderReview(ctx context.Context, claimID, adminID string) (*schema.OwnershipClaim, error) {
	claim, err := w.getClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status == domain.ClaimStatusUnderReview {
		return claim, nil
	}
	if claim.Status != domain.ClaimStatusPending {
		return nil, fmt.Errorf("%w: claim is %s", domain.ErrInvalidState, claim.Status)
	}

	now := w.clock.Now()
	ok, err := w.store.UpdateClaimStatus(ctx, store.UpdateClaimStatusInput{
		ClaimID:      claimID,
		FromStatuses: []domain.ClaimStatus{domain.ClaimStatusPending},
		ToStatus:     domain.ClaimStatusUnderReview,
		At:           now,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return w.resolveLostUpdate(ctx, claimID, domain.ClaimStatusUnderReview)
	}

	claim.Status = domain.ClaimStatusUnderReview
	claim.UpdatedAt = now

	w.dispatcher.Audit(ctx, notify.AuditEntry{
		Action:     domain.AuditClaimUnderReview,
		ActorID:    adminID,
		TargetID:   claim.ID,
		TargetType: domain.TargetClaim,
		Details:    map[string]interface{}{"instrument_id": claim.InstrumentID},
	})

	return claim, nil
}

// ApproveClaim makes the claimer the instrument's owner and closes the instrument to further claims.
// Approving an approved claim is a no-op.
func (w *workflow) ApproveClaim(ctx context.Context, claimID, adminID string) (*schema.OwnershipClaim, error) {
	result, err := w.store.ApproveClaim(ctx, claimID, adminID, w.clock.Now())
	if err != nil {
		if domain.IsPartialApply(err) {
			logger.Reconcile(ctx, err, zap.String("adminID", adminID))
		}
		return nil, err
	}
	if result.AlreadyApproved {
		logger.DebugCtx(ctx, "Claim already approved", zap.String("claimID", claimID))
		return result.Claim, nil
	}

	claim := result.Claim
	instrument := result.Instrument

	logger.InfoCtx(ctx, "Ownership claim approved",
		zap.String("claimID", claim.ID),
		zap.String("instrumentID", instrument.ID),
		zap.String("ownerID", claim.ClaimerID),
		zap.Int64("version", instrument.Version))

	w.dispatcher.Notify(ctx, notify.Notification{
		UserID:    claim.ClaimerID,
		Type:      domain.NotificationClaimApproved,
		Title:     "Your ownership claim was approved!",
		Message:   fmt.Sprintf("Your claim on the %s %s has been approved. You are now the registered owner.", instrument.Make, instrument.Model),
		RelatedID: claim.ID,
		Data: map[string]interface{}{
			"claim_id":      claim.ID,
			"instrument_id": instrument.ID,
		},
	})
	w.dispatcher.Audit(ctx, notify.AuditEntry{
		Action:     domain.AuditClaimApproved,
		ActorID:    adminID,
		TargetID:   claim.ID,
		TargetType: domain.TargetClaim,
		Details: map[string]interface{}{
			"instrument_id":      instrument.ID,
			"claimer_id":         claim.ClaimerID,
			"instrument_version": instrument.Version,
		},
	})

	return claim, nil
}

// RejectClaim closes a live claim with a reason. Rejecting a rejected claim is a no-op.
func (w *workflow) RejectClaim(ctx context.Context, claimID, adminID, reason string) (*schema.OwnershipClaim, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.ErrMissingReason
	}

	claim, err := w.getClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status == domain.ClaimStatusRejected {
		return claim, nil
	}
	if claim.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: claim is %s", domain.ErrInvalidState, claim.Status)
	}

	now := w.clock.Now()
	ok, err := w.store.UpdateClaimStatus(ctx, store.UpdateClaimStatusInput{
		ClaimID:         claimID,
		FromStatuses:    domain.LiveClaimStatuses(),
		ToStatus:        domain.ClaimStatusRejected,
		ReviewedBy:      &adminID,
		RejectionReason: &reason,
		At:              now,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return w.resolveLostUpdate(ctx, claimID, domain.ClaimStatusRejected)
	}

	claim.Status = domain.ClaimStatusRejected
	claim.ReviewedBy = &adminID
	claim.ReviewedAt = &now
	claim.RejectionReason = &reason
	claim.UpdatedAt = now

	logger.InfoCtx(ctx, "Ownership claim rejected",
		zap.String("claimID", claim.ID),
		zap.String("instrumentID", claim.InstrumentID))

	w.dispatcher.Notify(ctx, notify.Notification{
		UserID:    claim.ClaimerID,
		Type:      domain.NotificationClaimDenied,
		Title:     "Your ownership claim was not approved",
		Message:   "Reason: " + reason,
		RelatedID: claim.ID,
		Data: map[string]interface{}{
			"claim_id":      claim.ID,
			"instrument_id": claim.InstrumentID,
			"reason":        reason,
		},
	})
	w.dispatcher.Audit(ctx, notify.AuditEntry{
		Action:     domain.AuditClaimRejected,
		ActorID:    adminID,
		TargetID:   claim.ID,
		TargetType: domain.TargetClaim,
		Details: map[string]interface{}{
			"instrument_id": claim.InstrumentID,
			"reason":        reason,
		},
	})

	return claim, nil
}

// WithdrawClaim lets the claimer close their own live claim. Withdrawing a withdrawn claim is a no-op.
func (w *workflow) WithdrawClaim(ctx context.Context, claimID, claimerID string) (*schema.OwnershipClaim, error) {
	claim, err := w.getClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim.ClaimerID != claimerID {
		return nil, domain.ErrForbidden
	}
	if claim.Status == domain.ClaimStatusWithdrawn {
		return claim, nil
	}
	if claim.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: claim is %s", domain.ErrInvalidState, claim.Status)
	}

	now := w.clock.Now()
	ok, err := w.store.UpdateClaimStatus(ctx, store.UpdateClaimStatusInput{
		ClaimID:      claimID,
		FromStatuses: domain.LiveClaimStatuses(),
		ClaimerID:    &claimerID,
		ToStatus:     domain.ClaimStatusWithdrawn,
		At:           now,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return w.resolveLostUpdate(ctx, claimID, domain.ClaimStatusWithdrawn)
	}

	claim.Status = domain.ClaimStatusWithdrawn
	claim.UpdatedAt = now

	w.dispatcher.Audit(ctx, notify.AuditEntry{
		Action:     domain.AuditClaimWithdrawn,
		ActorID:    claimerID,
		TargetID:   claim.ID,
		TargetType: domain.TargetClaim,
		Details:    map[string]interface{}{"instrument_id": claim.InstrumentID},
	})

	return claim, nil
}

// SetClaimable opens or closes an instrument to claims
func (w *workflow) SetClaimable(ctx context.Context, instrumentID string, claimable bool, adminID string) (*schema.Instrument, error) {
	instrument, err := w.store.SetInstrumentClaimable(ctx, instrumentID, claimable, w.clock.Now())
	if err != nil {
		return nil, err
	}

	w.dispatcher.Audit(ctx, notify.AuditEntry{
		Action:     domain.AuditInstrumentClaimable,
		ActorID:    adminID,
		TargetID:   instrument.ID,
		TargetType: domain.TargetInstrument,
		Details: map[string]interface{}{
			"is_claimable": claimable,
			"version":      instrument.Version,
		},
	})

	return instrument, nil
}

func (w *workflow) getClaim(ctx context.Context, claimID string) (*schema.OwnershipClaim, error) {
	claim, err := w.store.GetClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, fmt.Errorf("%w: claim %s", domain.ErrNotFound, claimID)
	}
	return claim, nil
}

// resolveLostUpdate re-reads a claim whose guarded update matched no row.
// A claim that already reached target is returned as a no-op, anything else is an invalid transition.
func (w *workflow) resolveLostUpdate(ctx context.Context, claimID string, target domain.ClaimStatus) (*schema.OwnershipClaim, error) {
	claim, err := w.getClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status == target {
		return claim, nil
	}
	return nil, fmt.Errorf("%w: claim is %s", domain.ErrInvalidState, claim.Status)
}
