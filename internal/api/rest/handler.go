package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/middleware"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/rest/dto"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/attributes"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/claims"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/retry"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/sweeper"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/transfers"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SubmitClaim files an ownership claim for the caller
	// POST /api/v1/claims
	SubmitClaim(c *gin.Context)

	// ListMyClaims lists the caller's own claims
	// GET /api/v1/claims?status=<status>&page=<page>&per_page=<per_page>
	ListMyClaims(c *gin.Context)

	// GetPendingClaim reports whether the caller has a live claim on an instrument
	// GET /api/v1/claims/pending?instrument_id=<id>
	GetPendingClaim(c *gin.Context)

	// WithdrawClaim withdraws one of the caller's pending claims
	// POST /api/v1/claims/:id/withdraw
	WithdrawClaim(c *gin.Context)

	// ListClaims lists all claims (admin)
	// GET /api/v1/admin/claims?status=<status>&search=<text>&page=<page>&per_page=<per_page>
	ListClaims(c *gin.Context)

	// GetClaimStats counts claims per status (admin)
	// GET /api/v1/admin/claims/stats
	GetClaimStats(c *gin.Context)

	// GetClaim retrieves one claim with its instrument (admin)
	// GET /api/v1/admin/claims/:id
	GetClaim(c *gin.Context)

	// MarkClaimUnderReview moves a pending claim to under_review (admin)
	// POST /api/v1/admin/claims/:id/review
	MarkClaimUnderReview(c *gin.Context)

	// ApproveClaim approves a claim and transfers ownership (admin)
	// POST /api/v1/admin/claims/:id/approve
	ApproveClaim(c *gin.Context)

	// RejectClaim rejects a claim with a reason (admin)
	// POST /api/v1/admin/claims/:id/reject
	RejectClaim(c *gin.Context)

	// SetInstrumentClaimable opens or closes an instrument to claims (admin)
	// POST /api/v1/admin/instruments/:id/claimable
	SetInstrumentClaimable(c *gin.Context)

	// ProposeChange proposes an attribute change on an instrument
	// POST /api/v1/instruments/:id/changes
	ProposeChange(c *gin.Context)

	// ListPendingChanges lists unlocked changes, optionally for one instrument
	// GET /api/v1/changes/pending?instrument_id=<id>
	ListPendingChanges(c *gin.Context)

	// GetChangeHistory lists every change of an instrument, newest first
	// GET /api/v1/instruments/:id/changes
	GetChangeHistory(c *gin.Context)

	// SetGracePeriod starts the grace window of a change (admin)
	// POST /api/v1/admin/changes/:id/grace
	SetGracePeriod(c *gin.Context)

	// ApplyChange writes a change into its instrument (admin)
	// POST /api/v1/admin/changes/:id/apply
	ApplyChange(c *gin.Context)

	// RejectChange locks a change without applying it (admin)
	// POST /api/v1/admin/changes/:id/reject
	RejectChange(c *gin.Context)

	// InitiateTransfer starts an ownership transfer from the caller
	// POST /api/v1/transfers
	InitiateTransfer(c *gin.Context)

	// ListMyTransfers lists the transfers the caller sends and receives
	// GET /api/v1/transfers
	ListMyTransfers(c *gin.Context)

	// GetTransfer retrieves one transfer the caller is a party to
	// GET /api/v1/transfers/:id
	GetTransfer(c *gin.Context)

	// AcceptTransfer accepts a pending transfer addressed to the caller
	// POST /api/v1/transfers/:id/accept
	AcceptTransfer(c *gin.Context)

	// DeclineTransfer declines a pending transfer addressed to the caller
	// POST /api/v1/transfers/:id/decline
	DeclineTransfer(c *gin.Context)

	// CancelTransfer cancels a transfer the caller initiated
	// POST /api/v1/transfers/:id/cancel
	CancelTransfer(c *gin.Context)

	// GetTransferHistory lists resolved transfers of an instrument
	// GET /api/v1/instruments/:id/transfers
	GetTransferHistory(c *gin.Context)

	// CompleteTransfer completes an accepted transfer (admin)
	// POST /api/v1/admin/transfers/:id/complete
	CompleteTransfer(c *gin.Context)

	// SweepExpiredTransfers expires stale pending transfers on demand (admin)
	// POST /api/v1/admin/transfers/sweep
	SweepExpiredTransfers(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// Services groups the workflows the handler delegates to
type Services struct {
	Claims     claims.Workflow
	ClaimQuery claims.QueryService
	Attributes attributes.Workflow
	Transfers  transfers.Workflow
	Reaper     sweeper.TransferReaper
	Clock      adapter.Clock
	Retry      retry.Config
	// ExpiryDays is the threshold of on-demand sweeps that do not name one
	ExpiryDays int
}

// handler implements the Handler interface
type handler struct {
	claims     claims.Workflow
	claimQuery claims.QueryService
	attributes attributes.Workflow
	transfers  transfers.Workflow
	reaper     sweeper.TransferReaper
	clock      adapter.Clock
	retry      retry.Config
	expiryDays int
}

// NewHandler creates a new REST API handler
func NewHandler(svc Services) Handler {
	return &handler{
		claims:     svc.Claims,
		claimQuery: svc.ClaimQuery,
		attributes: svc.Attributes,
		transfers:  svc.Transfers,
		reaper:     svc.Reaper,
		clock:      svc.Clock,
		retry:      svc.Retry,
		expiryDays: svc.ExpiryDays,
	}
}

// withRetry runs op, retrying transient failures
func (h *handler) withRetry(c *gin.Context, name string, op func(ctx context.Context) error) error {
	return retry.Do(c.Request.Context(), h.retry, name, op)
}

// bindJSON binds and validates a request body, responding on failure
func bindJSON(c *gin.Context, req interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	if err := req.Validate(); err != nil {
		respondRequestError(c, err)
		return false
	}
	return true
}

// bindOptionalJSON binds a body that may be omitted entirely
func bindOptionalJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	return true
}

// pathID reads a required path id, responding on failure
func pathID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondBadRequest(c, "ID is required")
		return "", false
	}
	return id, true
}

// =============================================================================
// Claims
// =============================================================================

// SubmitClaim files an ownership claim for the caller
func (h *handler) SubmitClaim(c *gin.Context) {
	var req dto.SubmitClaimRequest
	if !bindJSON(c, &req) {
		return
	}

	var claim *schema.OwnershipClaim
	err := h.withRetry(c, "submit_claim", func(ctx context.Context) error {
		var err error
		claim, err = h.claims.SubmitClaim(ctx, claims.SubmitClaimInput{
			InstrumentID:     req.InstrumentID,
			ClaimerID:        middleware.Subject(c),
			VerificationType: domain.VerificationType(req.VerificationType),
			VerificationData: req.VerificationData,
			ClaimReason:      req.ClaimReason,
		})
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to submit claim")
		return
	}

	c.JSON(http.StatusCreated, dto.MapClaimToDTO(claim))
}

// ListMyClaims lists the caller's own claims
func (h *handler) ListMyClaims(c *gin.Context) {
	subject := middleware.Subject(c)
	h.listClaims(c, &subject)
}

// ListClaims lists all claims
func (h *handler) ListClaims(c *gin.Context) {
	h.listClaims(c, nil)
}

func (h *handler) listClaims(c *gin.Context, claimerID *string) {
	params, err := ParseListClaimsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := params.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var page *claims.ClaimPage
	err = h.withRetry(c, "list_claims", func(ctx context.Context) error {
		var err error
		page, err = h.claimQuery.ListClaims(ctx, claims.ClaimFilter{
			Status:    params.Status,
			Search:    params.Search,
			ClaimerID: claimerID,
		}, params.Page, params.PerPage)
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to list claims")
		return
	}

	c.JSON(http.StatusOK, dto.MapClaimPageToDTO(page))
}

// GetPendingClaim reports whether the caller has a live claim on an instrument
func (h *handler) GetPendingClaim(c *gin.Context) {
	instrumentID := strings.TrimSpace(c.Query("instrument_id"))
	if instrumentID == "" {
		respondBadRequest(c, "instrument_id is required")
		return
	}

	var pending bool
	err := h.withRetry(c, "has_pending_claim", func(ctx context.Context) error {
		var err error
		pending, err = h.claimQuery.HasPendingClaim(ctx, middleware.Subject(c), instrumentID)
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to check pending claim")
		return
	}

	c.JSON(http.StatusOK, dto.PendingClaimResponse{
		InstrumentID:    instrumentID,
		HasPendingClaim: pending,
	})
}

// WithdrawClaim withdraws one of the caller's pending claims
func (h *handler) WithdrawClaim(c *gin.Context) {
	h.claimTransition(c, "withdraw_claim", "Failed to withdraw claim", func(ctx context.Context, id string) (*schema.OwnershipClaim, error) {
		return h.claims.WithdrawClaim(ctx, id, middleware.Subject(c))
	})
}

// GetClaimStats counts claims per status
func (h *handler) GetClaimStats(c *gin.Context) {
	var stats *claims.ClaimStats
	err := h.withRetry(c, "claim_stats", func(ctx context.Context) error {
		var err error
		stats, err = h.claimQuery.GetClaimStats(ctx)
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to get claim stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetClaim retrieves one claim with its instrument
func (h *handler) GetClaim(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var claim *store.ClaimWithInstrument
	err := h.withRetry(c, "get_claim", func(ctx context.Context) error {
		var err error
		claim, err = h.claimQuery.GetClaim(ctx, id)
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to get claim")
		return
	}

	c.JSON(http.StatusOK, dto.MapClaimWithInstrumentToDTO(claim))
}

// MarkClaimUnderReview moves a pending claim to under_review
func (h *handler) MarkClaimUnderReview(c *gin.Context) {
	h.claimTransition(c, "review_claim", "Failed to mark claim under review", func(ctx context.Context, id string) (*schema.OwnershipClaim, error) {
		return h.claims.MarkUnderReview(ctx, id, middleware.Subject(c))
	})
}

// ApproveClaim approves a claim and transfers ownership
func (h *handler) ApproveClaim(c *gin.Context) {
	h.claimTransition(c, "approve_claim", "Failed to approve claim", func(ctx context.Context, id string) (*schema.OwnershipClaim, error) {
		return h.claims.ApproveClaim(ctx, id, middleware.Subject(c))
	})
}

// RejectClaim rejects a claim with a reason
func (h *handler) RejectClaim(c *gin.Context) {
	var req dto.RejectClaimRequest
	if !bindJSON(c, &req) {
		return
	}

	h.claimTransition(c, "reject_claim", "Failed to reject claim", func(ctx context.Context, id string) (*schema.OwnershipClaim, error) {
		return h.claims.RejectClaim(ctx, id, middleware.Subject(c), req.Reason)
	})
}

// claimTransition runs a claim state transition on the :id path parameter
func (h *handler) claimTransition(c *gin.Context, name, message string, op func(ctx context.Context, id string) (*schema.OwnershipClaim, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var claim *schema.OwnershipClaim
	err := h.withRetry(c, name, func(ctx context.Context) error {
		var err error
		claim, err = op(ctx, id)
		return err
	})
	if err != nil {
		respondError(c, err, message)
		return
	}

	c.JSON(http.StatusOK, dto.MapClaimToDTO(claim))
}

// SetInstrumentClaimable opens or closes an instrument to claims
func (h *handler) SetInstrumentClaimable(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.SetClaimableRequest
	if !bindJSON(c, &req) {
		return
	}

	var instrument *schema.Instrument
	err := h.withRetry(c, "set_claimable", func(ctx context.Context) error {
		var err error
		instrument, err = h.claims.SetClaimable(ctx, id, *req.Claimable, middleware.Subject(c))
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to update instrument")
		return
	}

	c.JSON(http.StatusOK, dto.MapInstrumentToDTO(instrument))
}

// =============================================================================
// Attribute changes
// =============================================================================

// ProposeChange proposes an attribute change on an instrument
func (h *handler) ProposeChange(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ProposeChangeRequest
	if !bindJSON(c, &req) {
		return
	}

	var change *schema.AttributeChange
	err := h.withRetry(c, "propose_change", func(ctx context.Context) error {
		var err error
		change, err = h.attributes.ProposeChange(ctx, attributes.ProposeChangeInput{
			InstrumentID: id,
			FieldName:    req.FieldName,
			OldValue:     req.OldValue,
			NewValue:     req.NewValue,
			Reason:       req.Reason,
			UserID:       middleware.Subject(c),
		})
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to propose change")
		return
	}

	c.JSON(http.StatusCreated, dto.MapAttributeChangeToDTO(change))
}

// ListPendingChanges lists unlocked changes, optionally for one instrument
func (h *handler) ListPendingChanges(c *gin.Context) {
	instrumentID := optionalQuery(c, "instrument_id")

	var changes []schema.AttributeChange
	err := h.withRetry(c, "list_pending_changes", func(ctx context.Context) error {
		var err error
		changes, err = h.attributes.ListPending(ctx, instrumentID)
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to list pending changes")
		return
	}

	c.JSON(http.StatusOK, dto.MapAttributeChangesToDTO(changes))
}

// GetChangeHistory lists every change of an instrument, newest first
func (h *handler) GetChangeHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var changes []schema.AttributeChange
	err := h.withRetry(c, "change_history", func(ctx context.Context) error {
		var err error
		changes, err = h.attributes.History(ctx, id)
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to get change history")
		return
	}

	c.JSON(http.StatusOK, dto.MapAttributeChangesToDTO(changes))
}

// SetGracePeriod starts the grace window of a change
func (h *handler) SetGracePeriod(c *gin.Context) {
	var req dto.SetGracePeriodRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	h.changeTransition(c, "set_grace_period", "Failed to set grace period", func(ctx context.Context, id string) (*schema.AttributeChange, error) {
		return h.attributes.SetGracePeriod(ctx, id, req.Days, middleware.Subject(c))
	})
}

// ApplyChange writes a change into its instrument
func (h *handler) ApplyChange(c *gin.Context) {
	h.changeTransition(c, "apply_change", "Failed to apply change", func(ctx context.Context, id string) (*schema.AttributeChange, error) {
		return h.attributes.ApplyChange(ctx, id, middleware.Subject(c))
	})
}

// RejectChange locks a change without applying it
func (h *handler) RejectChange(c *gin.Context) {
	h.changeTransition(c, "reject_change", "Failed to reject change", func(ctx context.Context, id string) (*schema.AttributeChange, error) {
		return h.attributes.RejectChange(ctx, id, middleware.Subject(c))
	})
}

// changeTransition runs an attribute change transition on the :id path parameter
func (h *handler) changeTransition(c *gin.Context, name, message string, op func(ctx context.Context, id string) (*schema.AttributeChange, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var change *schema.AttributeChange
	err := h.withRetry(c, name, func(ctx context.Context) error {
		var err error
		change, err = op(ctx, id)
		return err
	})
	if err != nil {
		respondError(c, err, message)
		return
	}

	c.JSON(http.StatusOK, dto.MapAttributeChangeToDTO(change))
}

// =============================================================================
// Transfers
// =============================================================================

// InitiateTransfer starts an ownership transfer from the caller
func (h *handler) InitiateTransfer(c *gin.Context) {
	var req dto.InitiateTransferRequest
	if !bindJSON(c, &req) {
		return
	}

	var transfer *schema.OwnershipTransfer
	err := h.withRetry(c, "initiate_transfer", func(ctx context.Context) error {
		var err error
		transfer, err = h.transfers.Initiate(ctx, transfers.InitiateInput{
			InstrumentID: req.InstrumentID,
			OwnerID:      middleware.Subject(c),
			RecipientID:  req.RecipientID,
			Notes:        req.Notes,
		})
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to initiate transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.MapTransferToDTO(transfer))
}

// ListMyTransfers lists the transfers the caller sends and receives
func (h *handler) ListMyTransfers(c *gin.Context) {
	var mine *transfers.UserTransfers
	err := h.withRetry(c, "list_my_transfers", func(ctx context.Context) error {
		var err error
		mine, err = h.transfers.ListMine(ctx, middleware.Subject(c))
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to list transfers")
		return
	}

	c.JSON(http.StatusOK, dto.MapUserTransfersToDTO(mine))
}

// GetTransfer retrieves one transfer the caller is a party to
func (h *handler) GetTransfer(c *gin.Context) {
	h.transferTransition(c, "get_transfer", "Failed to get transfer", func(ctx context.Context, id string) (*schema.OwnershipTransfer, error) {
		return h.transfers.Get(ctx, id, middleware.Subject(c))
	})
}

// AcceptTransfer accepts a pending transfer addressed to the caller
func (h *handler) AcceptTransfer(c *gin.Context) {
	h.transferTransition(c, "accept_transfer", "Failed to accept transfer", func(ctx context.Context, id string) (*schema.OwnershipTransfer, error) {
		return h.transfers.Accept(ctx, id, middleware.Subject(c))
	})
}

// DeclineTransfer declines a pending transfer addressed to the caller
func (h *handler) DeclineTransfer(c *gin.Context) {
	var req dto.DeclineTransferRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	h.transferTransition(c, "decline_transfer", "Failed to decline transfer", func(ctx context.Context, id string) (*schema.OwnershipTransfer, error) {
		return h.transfers.Decline(ctx, id, middleware.Subject(c), req.Reason)
	})
}

// CancelTransfer cancels a transfer the caller initiated
func (h *handler) CancelTransfer(c *gin.Context) {
	h.transferTransition(c, "cancel_transfer", "Failed to cancel transfer", func(ctx context.Context, id string) (*schema.OwnershipTransfer, error) {
		return h.transfers.Cancel(ctx, id, middleware.Subject(c))
	})
}

// CompleteTransfer completes an accepted transfer
func (h *handler) CompleteTransfer(c *gin.Context) {
	h.transferTransition(c, "complete_transfer", "Failed to complete transfer", func(ctx context.Context, id string) (*schema.OwnershipTransfer, error) {
		return h.transfers.Complete(ctx, id, middleware.Subject(c))
	})
}

// transferTransition runs a transfer transition on the :id path parameter
func (h *handler) transferTransition(c *gin.Context, name, message string, op func(ctx context.Context, id string) (*schema.OwnershipTransfer, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var transfer *schema.OwnershipTransfer
	err := h.withRetry(c, name, func(ctx context.Context) error {
		var err error
		transfer, err = op(ctx, id)
		return err
	})
	if err != nil {
		respondError(c, err, message)
		return
	}

	c.JSON(http.StatusOK, dto.MapTransferToDTO(transfer))
}

// GetTransferHistory lists resolved transfers of an instrument
func (h *handler) GetTransferHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var history []schema.OwnershipTransfer
	err := h.withRetry(c, "transfer_history", func(ctx context.Context) error {
		var err error
		history, err = h.transfers.History(ctx, id)
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to get transfer history")
		return
	}

	c.JSON(http.StatusOK, dto.MapTransfersToDTO(history))
}

// SweepExpiredTransfers expires stale pending transfers on demand
func (h *handler) SweepExpiredTransfers(c *gin.Context) {
	var req dto.SweepTransfersRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	days := req.ThresholdDays
	if days <= 0 {
		days = h.expiryDays
	}

	var result *sweeper.SweepResult
	err := h.withRetry(c, "sweep_expired_transfers", func(ctx context.Context) error {
		var err error
		result, err = h.reaper.SweepExpired(ctx, h.clock.Now(), days)
		return err
	})
	if err != nil {
		respondError(c, err, "Failed to sweep expired transfers")
		return
	}

	c.JSON(http.StatusOK, dto.MapSweepResultToDTO(result))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "twng-api",
	})
}
