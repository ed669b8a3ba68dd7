package attributes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/notify"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
)

const (
	// DefaultGracePeriodDays is used when no positive grace period is requested
	DefaultGracePeriodDays = 30
	// DefaultGraceElapsedLimit bounds one page of grace-elapsed changes
	DefaultGraceElapsedLimit = 100
)

// Config holds the configuration for the attribute change workflow
type Config struct {
	GracePeriodDays int
}

// ProposeChangeInput represents a proposed edit of one instrument field
type ProposeChangeInput struct {
	InstrumentID string
	FieldName    string
	OldValue     *string
	NewValue     *string
	Reason       string
	UserID       string
}

// Workflow manages proposed instrument edits through an optional grace period to apply or reject
//
//go:generate mockgen -source=workflow.go -destination=../mocks/attributes_workflow.go -package=mocks -mock_names=Workflow=MockAttributesWorkflow
type Workflow interface {
	// ProposeChange records an unlocked edit proposal
	ProposeChange(ctx context.Context, input ProposeChangeInput) (*schema.AttributeChange, error)
	// SetGracePeriod sets the grace deadline of an open change to now + days
	SetGracePeriod(ctx context.Context, changeID string, days int, actorID string) (*schema.AttributeChange, error)
	// ApplyChange writes the change into the instrument and locks it
	ApplyChange(ctx context.Context, changeID, actorID string) (*schema.AttributeChange, error)
	// RejectChange locks the change without touching the instrument
	RejectChange(ctx context.Context, changeID, actorID string) (*schema.AttributeChange, error)
	// ListPending retrieves open changes, oldest first, optionally scoped to one instrument
	ListPending(ctx context.Context, instrumentID *string) ([]schema.AttributeChange, error)
	// AutoApply applies a grace-elapsed change on behalf of the system. A change that cannot
	// be applied is parked for an admin and left out of later grace-elapsed listings.
	AutoApply(ctx context.Context, changeID string) (*schema.AttributeChange, error)
	// History retrieves every change of an instrument, open and locked, newest first
	History(ctx context.Context, instrumentID string) ([]schema.AttributeChange, error)
	// ListGraceElapsed retrieves open changes whose grace deadline is at or before now
	ListGraceElapsed(ctx context.Context, now time.Time, limit int) ([]schema.AttributeChange, error)
}

type workflow struct {
	config     Config
	store      store.Store
	dispatcher notify.Dispatcher
	clock      adapter.Clock
}

// NewWorkflow creates a new attribute change workflow
func NewWorkflow(cfg Config, st store.Store, dispatcher notify.Dispatcher, clock adapter.Clock) Workflow {
	if cfg.GracePeriodDays <= 0 {
		cfg.GracePeriodDays = DefaultGracePeriodDays
	}
	return &workflow{
		config:     cfg,
		store:      st,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

// ProposeChange records an unlocked edit proposal
func (w *workflow) ProposeChange(ctx context.Context, input ProposeChangeInput) (*schema.AttributeChange, error) {
	field := strings.TrimSpace(input.FieldName)
	if !domain.IsMutableField(field) {
		return nil, fmt.Errorf("%w: field %q is not editable", domain.ErrInvalidInput, input.FieldName)
	}
	if domain.RequiresValue(field) && (input.NewValue == nil || strings.TrimSpace(*input.NewValue) == "") {
		return nil, fmt.Errorf("%w: field %q requires a value", domain.ErrInvalidInput, field)
	}
	if strings.TrimSpace(input.UserID) == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	instrument, err := w.store.GetInstrument(ctx, input.InstrumentID)
	if err != nil {
		return nil, err
	}
	if instrument == nil {
		return nil, fmt.Errorf("%w: instrument %s", domain.ErrNotFound, input.InstrumentID)
	}
	if instrument.CurrentOwnerID == nil || *instrument.CurrentOwnerID != input.UserID {
		return nil, domain.ErrForbidden
	}

	change, err := w.store.CreateAttributeChange(ctx, store.CreateAttributeChangeInput{
		ID:              uuid.NewString(),
		InstrumentID:    instrument.ID,
		FieldName:       field,
		OldValue:        input.OldValue,
		NewValue:        input.NewValue,
		ChangeReason:    strings.TrimSpace(input.Reason),
		ChangedByUserID: input.UserID,
		ChangeType:      domain.ChangeTypeUpdate,
		CreatedAt:       w.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Attribute change proposed",
		zap.String("changeID", change.ID),
		zap.String("instrumentID", change.InstrumentID),
		zap.String("field", change.FieldName))

	return change, nil
}

// SetGracePeriod sets the grace deadline of an open change to now + days.
// A non-positive days uses the configured default. An existing deadline is overwritten.
func (w *workflow) SetGracePeriod(ctx context.Context, changeID string, days int, actorID string) (*schema.AttributeChange, error) {
	if days <= 0 {
		days = w.config.GracePeriodDays
	}

	change, err := w.getChange(ctx, changeID)
	if err != nil {
		return nil, err
	}
	if change.IsLocked {
		return nil, fmt.Errorf("%w: change is locked", domain.ErrInvalidState)
	}

	endsAt := w.clock.Now().AddDate(0, 0, days)
	ok, err := w.store.SetGracePeriod(ctx, changeID, endsAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: change was locked concurrently", domain.ErrInvalidState)
	}

	change.GracePeriodEndsAt = &endsAt

	w.dispatcher.Audit(ctx, notify.AuditEntry{
		Action:     domain.AuditChangeGraceSet,
		ActorID:    actorID,
		TargetID:   change.ID,
		TargetType: domain.TargetChange,
		Details: map[string]interface{}{
			"instrument_id":        change.InstrumentID,
			"grace_period_days":    days,
			"grace_period_ends_at": endsAt.Format(time.RFC3339),
		},
	})

	return change, nil
}

// ApplyChange writes the change into the instrument and locks it.
// Applying an applied change returns it unchanged.
func (w *workflow) ApplyChange(ctx context.Context, changeID, actorID string) (*schema.AttributeChange, error) {
	result, err := w.store.ApplyAttributeChange(ctx, changeID, w.clock.Now())
	if err != nil {
		if domain.IsPartialApply(err) {
			logger.Reconcile(ctx, err, zap.String("actorID", actorID))
		}
		return nil, err
	}
	if result.AlreadyApplied {
		logger.DebugCtx(ctx, "Attribute change already applied", zap.String("changeID", changeID))
		return result.Change, nil
	}

	change := result.Change
	instrument := result.Instrument

	logger.InfoCtx(ctx, "Attribute change applied",
		zap.String("changeID", change.ID),
		zap.String("instrumentID", instrument.ID),
		zap.String("field", change.FieldName),
		zap.Int64("version", instrument.Version))

	w.dispatcher.Notify(ctx, notify.Notification{
		UserID:    change.ChangedByUserID,
		Type:      domain.NotificationChangeApplied,
		Title:     "Your edit was applied",
		Message:   fmt.Sprintf("The %s of the %s %s was updated.", humanizeField(change.FieldName), instrument.Make, instrument.Model),
		RelatedID: change.ID,
		Data: map[string]interface{}{
			"change_id":     change.ID,
			"instrument_id": instrument.ID,
			"field_name":    change.FieldName,
		},
	})
	w.dispatcher.Audit(ctx, notify.AuditEntry{
		Action:     domain.AuditChangeApplied,
		ActorID:    actorID,
		TargetID:   change.ID,
		TargetType: domain.TargetChange,
		Details: map[string]interface{}{
			"instrument_id":      instrument.ID,
			"field_name":         change.FieldName,
			"instrument_version": instrument.Version,
		},
	})

	return change, nil
}

// RejectChange locks the change without touching the instrument.
// Rejecting a rejected change returns it unchanged.
func (w *workflow) RejectChange(ctx context.Context, changeID, actorID string) (*schema.AttributeChange, error) {
	change, err := w.getChange(ctx, changeID)
	if err != nil {
		return nil, err
	}
	if change.IsLocked {
		return lockedOutcome(change, domain.ChangeOutcomeRejected)
	}

	now := w.clock.Now()
	ok, err := w.store.RejectAttributeChange(ctx, changeID, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		change, err = w.getChange(ctx, changeID)
		if err != nil {
			return nil, err
		}
		return lockedOutcome(change, domain.ChangeOutcomeRejected)
	}

	change.IsLocked = true
	change.Outcome = domain.ChangeOutcomeRejected
	change.LockedAt = &now

	logger.InfoCtx(ctx, "Attribute change rejected",
		zap.String("changeID", change.ID),
		zap.String("instrumentID", change.InstrumentID))

	w.dispatcher.Notify(ctx, notify.Notification{
		UserID:    change.ChangedByUserID,
		Type:      domain.NotificationChangeRejected,
		Title:     "Your edit was not applied",
		Message:   fmt.Sprintf("Your proposed change to %s was reviewed and not applied.", humanizeField(change.FieldName)),
		RelatedID: change.ID,
		Data: map[string]interface{}{
			"change_id":     change.ID,
			"instrument_id": change.InstrumentID,
			"field_name":    change.FieldName,
		},
	})
	w.dispatcher.Audit(ctx, notify.AuditEntry{
		Action:     domain.AuditChangeRejected,
		ActorID:    actorID,
		TargetID:   change.ID,
		TargetType: domain.TargetChange,
		Details: map[string]interface{}{
			"instrument_id": change.InstrumentID,
			"field_name":    change.FieldName,
		},
	})

	return change, nil
}

// ListPending retrieves open changes, oldest first, optionally scoped to one instrument
func (w *workflow) ListPending(ctx context.Context, instrumentID *string) ([]schema.AttributeChange, error) {
	changes, err := w.store.ListOpenAttributeChanges(ctx, instrumentID)
	if err != nil {
		return nil, err
	}
	if changes == nil {
		changes = []schema.AttributeChange{}
	}
	return changes, nil
}

// AutoApply applies a grace-elapsed change on behalf of the system.
// Transient and partial failures are returned as is so the next sweep retries them.
func (w *workflow) AutoApply(ctx context.Context, changeID string) (*schema.AttributeChange, error) {
	change, err := w.ApplyChange(ctx, changeID, domain.SystemActor)
	if err == nil {
		return change, nil
	}
	if domain.IsTransient(err) || domain.IsPartialApply(err) {
		return nil, err
	}

	parked, markErr := w.store.MarkAutoApplyFailed(ctx, changeID, err.Error(), w.clock.Now())
	if markErr != nil {
		logger.WarnCtx(ctx, "Failed to park attribute change", zap.String("changeID", changeID), zap.Error(markErr))
		return nil, err
	}
	if parked {
		logger.WarnCtx(ctx, "Attribute change parked for manual resolution",
			zap.String("changeID", changeID),
			zap.Error(err))
	}

	return nil, err
}

// History retrieves every change of an instrument, open and locked, newest first
func (w *workflow) History(ctx context.Context, instrumentID string) ([]schema.AttributeChange, error) {
	instrument, err := w.store.GetInstrument(ctx, instrumentID)
	if err != nil {
		return nil, err
	}
	if instrument == nil {
		return nil, fmt.Errorf("%w: instrument %s", domain.ErrNotFound, instrumentID)
	}

	changes, err := w.store.ListAttributeChanges(ctx, instrumentID)
	if err != nil {
		return nil, err
	}
	if changes == nil {
		changes = []schema.AttributeChange{}
	}
	return changes, nil
}

// ListGraceElapsed retrieves open changes whose grace deadline is at or before now
func (w *workflow) ListGraceElapsed(ctx context.Context, now time.Time, limit int) ([]schema.AttributeChange, error) {
	if limit <= 0 {
		limit = DefaultGraceElapsedLimit
	}
	return w.store.ListGraceElapsedChanges(ctx, now, limit)
}

func (w *workflow) getChange(ctx context.Context, changeID string) (*schema.AttributeChange, error) {
	change, err := w.store.GetAttributeChange(ctx, changeID)
	if err != nil {
		return nil, err
	}
	if change == nil {
		return nil, fmt.Errorf("%w: attribute change %s", domain.ErrNotFound, changeID)
	}
	return change, nil
}

// lockedOutcome returns a locked change as a no-op when it already has the wanted outcome
func lockedOutcome(change *schema.AttributeChange, want domain.ChangeOutcome) (*schema.AttributeChange, error) {
	if change.IsLocked && change.Outcome == want {
		return change, nil
	}
	if !change.IsLocked {
		return nil, fmt.Errorf("%w: change is still open", domain.ErrInvalidState)
	}
	return nil, fmt.Errorf("%w: change is locked with outcome %q", domain.ErrInvalidState, change.Outcome)
}

// humanizeField turns "scale_length" into "scale length"
func humanizeField(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
