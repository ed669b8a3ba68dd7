package transfers

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/notify"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
)

// InitiateInput represents an owner's request to hand an instrument to someone else
type InitiateInput struct {
	InstrumentID string
	// OwnerID is the acting user, who must currently own the instrument
	OwnerID string
	// RecipientID is empty for transfers to someone outside the platform
	RecipientID *string
	Notes       string
}

// UserTransfers splits a user's transfers by direction, each newest first
type UserTransfers struct {
	Outgoing []schema.OwnershipTransfer
	Incoming []schema.OwnershipTransfer
}

// Workflow drives the ownership transfer lifecycle
//
//go:generate mockgen -source=workflow.go -destination=../mocks/transfers_workflow.go -package=mocks -mock_names=Workflow=MockTransfersWorkflow
type Workflow interface {
	// Initiate creates a pending transfer from the current owner
	Initiate(ctx context.Context, input InitiateInput) (*schema.OwnershipTransfer, error)
	// Accept is called by the recipient on a pending transfer
	Accept(ctx context.Context, transferID, actorID string) (*schema.OwnershipTransfer, error)
	// Decline is called by the recipient on a pending transfer
	Decline(ctx context.Context, transferID, actorID, reason string) (*schema.OwnershipTransfer, error)
	// Cancel is called by the sender on a pending or accepted transfer
	Cancel(ctx context.Context, transferID, actorID string) (*schema.OwnershipTransfer, error)
	// Complete finalizes an accepted transfer and moves ownership to the recipient
	Complete(ctx context.Context, transferID, adminID string) (*schema.OwnershipTransfer, error)
	// History lists resolved transfers of an instrument, newest first
	History(ctx context.Context, instrumentID string) ([]schema.OwnershipTransfer, error)
	// ListMine lists the transfers the user sends and receives
	ListMine(ctx context.Context, userID string) (*UserTransfers, error)
	// Get retrieves one transfer; only its sender and recipient may read it
	Get(ctx context.Context, transferID, viewerID string) (*schema.OwnershipTransfer, error)
}

type workflow struct {
	store      store.Store
	dispatcher notify.Dispatcher
	clock      adapter.Clock
}

// NewWorkflow creates a new transfer workflow
func NewWorkflow(st store.Store, dispatcher notify.Dispatcher, clock adapter.Clock) Workflow {
	return &workflow{
		store:      st,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

// Initiate creates a pending transfer from the current owner
func (w *workflow) Initiate(ctx context.Context, input InitiateInput) (*schema.OwnershipTransfer, error) {
	if input.RecipientID != nil {
		recipient := strings.TrimSpace(*input.RecipientID)
		if recipient == "" {
			input.RecipientID = nil
		} else if recipient == input.OwnerID {
			return nil, fmt.Errorf("%w: cannot transfer an instrument to its owner", domain.ErrInvalidInput)
		} else {
			input.RecipientID = &recipient
		}
	}

	instrument, err := w.store.GetInstrument(ctx, input.InstrumentID)
	if err != nil {
		return nil, err
	}
	if instrument == nil {
		return nil, fmt.Errorf("%w: instrument %s", domain.ErrNotFound, input.InstrumentID)
	}
	if instrument.CurrentOwnerID == nil || *instrument.CurrentOwnerID != input.OwnerID {
		return nil, domain.ErrForbidden
	}

	open, err := w.store.HasOpenTransfer(ctx, instrument.ID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, fmt.Errorf("%w: instrument already has an open transfer", domain.ErrInvalidState)
	}

	transfer, err := w.store.CreateTransfer(ctx, store.CreateTransferInput{
		ID:            uuid.NewString(),
		InstrumentID:  instrument.ID,
		FromOwnerID:   instrument.CurrentOwnerID,
		ToOwnerID:     input.RecipientID,
		TransferNotes: strings.TrimSpace(input.Notes),
		CreatedAt:     w.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Ownership transfer initiated",
		zap.String("transferID", transfer.ID),
		zap.String("instrumentID", transfer.InstrumentID))

	if transfer.ToOwnerID != nil {
		w.notifyParty(ctx, *transfer.ToOwnerID, transfer,
			"You have a pending ownership transfer",
			fmt.Sprintf("The owner of the %s %s wants to transfer it to you.", instrument.Make, instrument.Model))
	}
	w.audit(ctx, domain.AuditTransferInitiated, input.OwnerID, transfer, nil)

	return transfer, nil
}

// Accept is called by the recipient on a pending transfer
func (w *workflow) Accept(ctx context.Context, transferID, actorID string) (*schema.OwnershipTransfer, error) {
	transfer, err := w.getTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if !isParty(transfer.ToOwnerID, actorID) {
		return nil, domain.ErrForbidden
	}

	transfer, changed, err := w.transition(ctx, transfer,
		[]domain.TransferStatus{domain.TransferStatusPending}, domain.TransferStatusAccepted, nil)
	if err != nil || !changed {
		return transfer, err
	}

	if transfer.FromOwnerID != nil {
		w.notifyParty(ctx, *transfer.FromOwnerID, transfer,
			"Your transfer was accepted",
			"The recipient accepted your ownership transfer. It completes once verified.")
	}
	w.audit(ctx, domain.AuditTransferAccepted, actorID, transfer, nil)

	return transfer, nil
}

// Decline is called by the recipient on a pending transfer
func (w *workflow) Decline(ctx context.Context, transferID, actorID, reason string) (*schema.OwnershipTransfer, error) {
	transfer, err := w.getTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if !isParty(transfer.ToOwnerID, actorID) {
		return nil, domain.ErrForbidden
	}

	var reasonPtr *string
	if reason = strings.TrimSpace(reason); reason != "" {
		reasonPtr = &reason
	}

	transfer, changed, err := w.transition(ctx, transfer,
		[]domain.TransferStatus{domain.TransferStatusPending}, domain.TransferStatusDeclined, reasonPtr)
	if err != nil || !changed {
		return transfer, err
	}

	if transfer.FromOwnerID != nil {
		message := "The recipient declined your ownership transfer."
		if reasonPtr != nil {
			message += " Reason: " + reason
		}
		w.notifyParty(ctx, *transfer.FromOwnerID, transfer, "Your transfer was declined", message)
	}
	w.audit(ctx, domain.AuditTransferDeclined, actorID, transfer, map[string]interface{}{"reason": reason})

	return transfer, nil
}

// Cancel is called by the sender on a pending or accepted transfer
func (w *workflow) Cancel(ctx context.Context, transferID, actorID string) (*schema.OwnershipTransfer, error) {
	transfer, err := w.getTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if !isParty(transfer.FromOwnerID, actorID) {
		return nil, domain.ErrForbidden
	}

	transfer, changed, err := w.transition(ctx, transfer,
		[]domain.TransferStatus{domain.TransferStatusPending, domain.TransferStatusAccepted}, domain.TransferStatusCancelled, nil)
	if err != nil || !changed {
		return transfer, err
	}

	if transfer.ToOwnerID != nil {
		w.notifyParty(ctx, *transfer.ToOwnerID, transfer,
			"A transfer to you was cancelled",
			"The owner cancelled the ownership transfer.")
	}
	w.audit(ctx, domain.AuditTransferCancelled, actorID, transfer, nil)

	return transfer, nil
}

// Complete finalizes an accepted transfer and moves ownership to the recipient.
// Completing a completed transfer is a no-op.
func (w *workflow) Complete(ctx context.Context, transferID, adminID string) (*schema.OwnershipTransfer, error) {
	result, err := w.store.CompleteTransfer(ctx, transferID, w.clock.Now())
	if err != nil {
		if domain.IsPartialApply(err) {
			logger.Reconcile(ctx, err, zap.String("adminID", adminID))
		}
		return nil, err
	}
	if result.AlreadyCompleted {
		return result.Transfer, nil
	}

	transfer := result.Transfer
	fields := []zap.Field{
		zap.String("transferID", transfer.ID),
		zap.String("instrumentID", transfer.InstrumentID),
	}
	details := map[string]interface{}{}
	if result.Instrument != nil {
		fields = append(fields, zap.Int64("version", result.Instrument.Version))
		details["instrument_version"] = result.Instrument.Version
	}
	logger.InfoCtx(ctx, "Ownership transfer completed", fields...)

	for _, party := range []*string{transfer.FromOwnerID, transfer.ToOwnerID} {
		if party == nil {
			continue
		}
		w.notifyParty(ctx, *party, transfer,
			"Ownership transfer completed",
			"The ownership transfer has been completed.")
	}
	w.audit(ctx, domain.AuditTransferCompleted, adminID, transfer, details)

	return transfer, nil
}

// History lists resolved transfers of an instrument, newest first
func (w *workflow) History(ctx context.Context, instrumentID string) ([]schema.OwnershipTransfer, error) {
	history, err := w.store.ListTransferHistory(ctx, instrumentID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []schema.OwnershipTransfer{}
	}
	return history, nil
}

// ListMine lists the transfers the user sends and receives
func (w *workflow) ListMine(ctx context.Context, userID string) (*UserTransfers, error) {
	transfers, err := w.store.ListUserTransfers(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &UserTransfers{
		Outgoing: []schema.OwnershipTransfer{},
		Incoming: []schema.OwnershipTransfer{},
	}
	for _, transfer := range transfers {
		if isParty(transfer.FromOwnerID, userID) {
			result.Outgoing = append(result.Outgoing, transfer)
		}
		if isParty(transfer.ToOwnerID, userID) {
			result.Incoming = append(result.Incoming, transfer)
		}
	}
	return result, nil
}

// Get retrieves one transfer; only its sender and recipient may read it
func (w *workflow) Get(ctx context.Context, transferID, viewerID string) (*schema.OwnershipTransfer, error) {
	transfer, err := w.getTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if !isParty(transfer.FromOwnerID, viewerID) && !isParty(transfer.ToOwnerID, viewerID) {
		return nil, domain.ErrForbidden
	}
	return transfer, nil
}

// transition applies a guarded status update. It reports changed=false when the transfer
// is already in the target status, and domain.ErrInvalidState when it is in any other status
// outside from.
func (w *workflow) transition(
	ctx context.Context,
	transfer *schema.OwnershipTransfer,
	from []domain.TransferStatus,
	to domain.TransferStatus,
	reason *string,
) (*schema.OwnershipTransfer, bool, error) {
	if transfer.Status == to {
		return transfer, false, nil
	}
	if !containsStatus(from, transfer.Status) {
		return nil, false, fmt.Errorf("%w: transfer is %s", domain.ErrInvalidState, transfer.Status)
	}

	now := w.clock.Now()
	ok, err := w.store.UpdateTransferStatus(ctx, store.UpdateTransferStatusInput{
		TransferID:      transfer.ID,
		FromStatuses:    from,
		ToStatus:        to,
		RejectionReason: reason,
		At:              now,
	})
	if err != nil {
		return nil, false, err
	}
	if !ok {
		current, err := w.getTransfer(ctx, transfer.ID)
		if err != nil {
			return nil, false, err
		}
		if current.Status == to {
			return current, false, nil
		}
		return nil, false, fmt.Errorf("%w: transfer is %s", domain.ErrInvalidState, current.Status)
	}

	transfer.Status = to
	transfer.UpdatedAt = now
	switch to {
	case domain.TransferStatusAccepted:
		transfer.AcceptedAt = &now
	case domain.TransferStatusDeclined:
		transfer.DeclinedAt = &now
		transfer.RejectionReason = reason
	case domain.TransferStatusCancelled:
		transfer.CancelledAt = &now
	}

	return transfer, true, nil
}

func (w *workflow) getTransfer(ctx context.Context, transferID string) (*schema.OwnershipTransfer, error) {
	transfer, err := w.store.GetTransfer(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, fmt.Errorf("%w: transfer %s", domain.ErrNotFound, transferID)
	}
	return transfer, nil
}

func (w *workflow) notifyParty(ctx context.Context, userID string, transfer *schema.OwnershipTransfer, title, message string) {
	w.dispatcher.Notify(ctx, notify.Notification{
		UserID:    userID,
		Type:      domain.NotificationTransferUpdated,
		Title:     title,
		Message:   message,
		RelatedID: transfer.ID,
		Data: map[string]interface{}{
			"transfer_id":   transfer.ID,
			"instrument_id": transfer.InstrumentID,
			"status":        string(transfer.Status),
		},
	})
}

func (w *workflow) audit(ctx context.Context, action, actorID string, transfer *schema.OwnershipTransfer, details map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}
	details["instrument_id"] = transfer.InstrumentID

	w.dispatcher.Audit(ctx, notify.AuditEntry{
		Action:     action,
		ActorID:    actorID,
		TargetID:   transfer.ID,
		TargetType: domain.TargetTransfer,
		Details:    details,
	})
}

func isParty(party *string, actorID string) bool {
	return party != nil && *party == actorID
}

func containsStatus(statuses []domain.TransferStatus, s domain.TransferStatus) bool {
	for _, status := range statuses {
		if status == s {
			return true
		}
	}
	return false
}
