package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
)

// DefaultOperationTimeout bounds every datastore call when no timeout is configured
const DefaultOperationTimeout = 5 * time.Second

type pgStore struct {
	db        *gorm.DB
	opTimeout time.Duration
	json      adapter.JSON
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance.
// opTimeout bounds each operation; zero or negative uses DefaultOperationTimeout.
func NewPGStore(db *gorm.DB, opTimeout time.Duration, jsonAdapter adapter.JSON) Store {
	if opTimeout <= 0 {
		opTimeout = DefaultOperationTimeout
	}
	return &pgStore{db: db, opTimeout: opTimeout, json: jsonAdapter}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// RegisterReadReplica routes read queries to the replica DSN through dbresolver.
// Writes and transactions stay on the primary.
func RegisterReadReplica(db *gorm.DB, replica gorm.Dialector) error {
	return db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{replica},
		Policy:   dbresolver.RandomPolicy{},
	}))
}

// primary returns a handle that reads from the primary when a read replica is registered
func (s *pgStore) primary() *gorm.DB {
	if hasDBResolver(s.db) {
		return s.db.Clauses(dbresolver.Write)
	}
	return s.db
}

// txError classifies the error of a transaction that writes the instrument.
// An error returned from the callback rolls every write back, so only a failed
// commit after the callback completed leaves the instrument state unknown.
func txError(op string, err error, awaitingCommit bool, partial *domain.PartialApplyError) error {
	if !awaitingCommit {
		return wrapError(op, err)
	}
	partial.Err = err
	return partial
}

// opContext derives the per-operation context
func (s *pgStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// =============================================================================
// Instruments
// =============================================================================

// CreateInstrument registers a new instrument
func (s *pgStore) CreateInstrument(ctx context.Context, input CreateInstrumentInput) (*schema.Instrument, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	specsJSON, err := s.json.MarshalObject(input.Specs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal specs: %w", err)
	}

	instrument := schema.Instrument{
		ID:             input.ID,
		Make:           input.Make,
		Model:          input.Model,
		Year:           input.Year,
		SerialNumber:   input.SerialNumber,
		Finish:         input.Finish,
		Condition:      input.Condition,
		Specs:          specsJSON,
		CurrentOwnerID: input.CurrentOwnerID,
		IsClaimable:    input.IsClaimable,
		Version:        1,
	}

	// Select everything so a false IsClaimable is not replaced by the column default
	if err := s.db.WithContext(ctx).Select("*").Create(&instrument).Error; err != nil {
		return nil, wrapError("create instrument", err)
	}

	return &instrument, nil
}

// GetInstrument retrieves an instrument by ID
func (s *pgStore) GetInstrument(ctx context.Context, instrumentID string) (*schema.Instrument, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var instrument schema.Instrument
	err := s.db.WithContext(ctx).Where("id = ?", instrumentID).First(&instrument).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapError("get instrument", err)
	}

	return &instrument, nil
}

// SetInstrumentClaimable toggles whether an instrument accepts claims
func (s *pgStore) SetInstrumentClaimable(ctx context.Context, instrumentID string, claimable bool, at time.Time) (*schema.Instrument, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var instrument schema.Instrument
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Instrument{}).
			Where("id = ?", instrumentID).
			Updates(map[string]interface{}{
				"is_claimable": claimable,
				"version":      gorm.Expr("version + 1"),
				"updated_at":   at,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		return tx.Where("id = ?", instrumentID).First(&instrument).Error
	})
	if err != nil {
		return nil, wrapError("set instrument claimable", err)
	}

	return &instrument, nil
}

// =============================================================================
// Ownership claims
// =============================================================================

// CreateClaim inserts a pending claim
func (s *pgStore) CreateClaim(ctx context.Context, input CreateClaimInput) (*schema.OwnershipClaim, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	claim := schema.OwnershipClaim{
		ID:               input.ID,
		InstrumentID:     input.InstrumentID,
		ClaimerID:        input.ClaimerID,
		Status:           domain.ClaimStatusPending,
		VerificationType: input.VerificationType,
		VerificationData: input.VerificationData,
		ClaimReason:      input.ClaimReason,
		CreatedAt:        input.CreatedAt,
		UpdatedAt:        input.CreatedAt,
	}

	// The insert runs in its own (sub)transaction so a unique violation does not
	// abort an enclosing transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&claim).Error
	})
	if err != nil {
		if isUniqueViolation(err, uniqueLiveClaimIndex) {
			return nil, domain.ErrDuplicateClaim
		}
		return nil, wrapError("create claim", err)
	}

	return &claim, nil
}

// GetClaim retrieves a claim by ID
func (s *pgStore) GetClaim(ctx context.Context, claimID string) (*schema.OwnershipClaim, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var claim schema.OwnershipClaim
	query := func(db *gorm.DB) error {
		return db.WithContext(ctx).Where("id = ?", claimID).First(&claim).Error
	}

	err := query(s.db)
	if err == nil {
		return &claim, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, wrapError("get claim", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = query(s.primary())
	if err == nil {
		return &claim, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, wrapError("get claim", err)
}

// claimsWithInstrument builds the claims ⨝ instruments base query
func claimsWithInstrument(db *gorm.DB) *gorm.DB {
	return db.Table("ownership_claims").
		Select("ownership_claims.*, " +
			"instruments.make AS instrument_make, " +
			"instruments.model AS instrument_model, " +
			"instruments.year AS instrument_year, " +
			"instruments.serial_number AS instrument_serial_number").
		Joins("JOIN instruments ON instruments.id = ownership_claims.instrument_id")
}

// GetClaimDetail retrieves a claim joined with its instrument
func (s *pgStore) GetClaimDetail(ctx context.Context, claimID string) (*ClaimWithInstrument, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var result ClaimWithInstrument
	err := claimsWithInstrument(s.db.WithContext(ctx)).
		Where("ownership_claims.id = ?", claimID).
		Take(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapError("get claim detail", err)
	}

	return &result, nil
}

// HasLiveClaim reports whether the user has a pending or under-review claim on the instrument
func (s *pgStore) HasLiveClaim(ctx context.Context, claimerID, instrumentID string) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var count int64
	// Always read the primary so a just-submitted claim is visible
	err := s.primary().WithContext(ctx).
		Model(&schema.OwnershipClaim{}).
		Where("claimer_id = ? AND instrument_id = ? AND status IN ?", claimerID, instrumentID, domain.LiveClaimStatuses()).
		Count(&count).Error
	if err != nil {
		return false, wrapError("check live claim", err)
	}

	return count > 0, nil
}

// ApproveClaim flips instrument ownership to the claimer and marks the claim approved
// in one transaction. A failed commit is reported as a domain.PartialApplyError.
func (s *pgStore) ApproveClaim(ctx context.Context, claimID, adminID string, at time.Time) (*ApproveClaimResult, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result := &ApproveClaimResult{}
	var instrumentID string
	awaitingCommit := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the claim
		var claim schema.OwnershipClaim
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", claimID).
			First(&claim).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		instrumentID = claim.InstrumentID

		switch {
		case claim.Status == domain.ClaimStatusApproved:
			result.Claim = &claim
			result.AlreadyApproved = true
			return nil
		case claim.Status.IsTerminal():
			return fmt.Errorf("%w: claim is %s", domain.ErrInvalidState, claim.Status)
		}

		// 2. Lock the instrument and check it is still claimable
		var instrument schema.Instrument
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", claim.InstrumentID).
			First(&instrument).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if !instrument.Claimable() {
			return domain.ErrAlreadyClaimed
		}

		// 3. Guarded ownership flip
		res := tx.Model(&schema.Instrument{}).
			Where("id = ? AND version = ? AND (is_claimable = TRUE OR current_owner_id IS NULL)", instrument.ID, instrument.Version).
			Updates(map[string]interface{}{
				"current_owner_id": claim.ClaimerID,
				"is_claimable":     false,
				"version":          gorm.Expr("version + 1"),
				"updated_at":       at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyClaimed
		}

		// 4. Guarded claim update
		res = tx.Model(&schema.OwnershipClaim{}).
			Where("id = ? AND status IN ?", claim.ID, domain.LiveClaimStatuses()).
			Updates(map[string]interface{}{
				"status":      domain.ClaimStatusApproved,
				"reviewed_by": adminID,
				"reviewed_at": at,
				"updated_at":  at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: claim left live state during approval", domain.ErrInvalidState)
		}

		claimerID := claim.ClaimerID
		instrument.CurrentOwnerID = &claimerID
		instrument.IsClaimable = false
		instrument.Version++
		instrument.UpdatedAt = at

		reviewer := adminID
		reviewedAt := at
		claim.Status = domain.ClaimStatusApproved
		claim.ReviewedBy = &reviewer
		claim.ReviewedAt = &reviewedAt
		claim.UpdatedAt = at

		result.Claim = &claim
		result.Instrument = &instrument
		awaitingCommit = true
		return nil
	})

	if err != nil {
		return nil, txError("approve claim", err, awaitingCommit, &domain.PartialApplyError{
			Operation:    "ApproveClaim",
			InstrumentID: instrumentID,
			RecordID:     claimID,
		})
	}

	return result, nil
}

// UpdateClaimStatus performs a guarded status update
func (s *pgStore) UpdateClaimStatus(ctx context.Context, input UpdateClaimStatusInput) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	updates := map[string]interface{}{
		"status":     input.ToStatus,
		"updated_at": input.At,
	}
	if input.ReviewedBy != nil {
		updates["reviewed_by"] = *input.ReviewedBy
		updates["reviewed_at"] = input.At
	}
	if input.RejectionReason != nil {
		updates["rejection_reason"] = *input.RejectionReason
	}

	query := s.db.WithContext(ctx).Model(&schema.OwnershipClaim{}).
		Where("id = ? AND status IN ?", input.ClaimID, input.FromStatuses)
	if input.ClaimerID != nil {
		query = query.Where("claimer_id = ?", *input.ClaimerID)
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return false, wrapError("update claim status", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// escapeLike escapes LIKE wildcards in user input
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListClaims retrieves claims joined with instrument details, newest first
func (s *pgStore) ListClaims(ctx context.Context, filter ClaimQueryFilter) ([]ClaimWithInstrument, uint64, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	applyFilter := func(db *gorm.DB) *gorm.DB {
		if filter.Status != nil {
			db = db.Where("ownership_claims.status = ?", *filter.Status)
		}
		if filter.ClaimerID != nil {
			db = db.Where("ownership_claims.claimer_id = ?", *filter.ClaimerID)
		}
		if search := strings.TrimSpace(filter.Search); search != "" {
			pattern := "%" + escapeLike(search) + "%"
			db = db.Where(
				"instruments.make ILIKE ? OR instruments.model ILIKE ? OR instruments.serial_number ILIKE ? OR ownership_claims.claim_reason ILIKE ?",
				pattern, pattern, pattern, pattern,
			)
		}
		return db
	}

	var total int64
	countQuery := applyFilter(s.db.WithContext(ctx).
		Table("ownership_claims").
		Joins("JOIN instruments ON instruments.id = ownership_claims.instrument_id"))
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, wrapError("count claims", err)
	}

	var claims []ClaimWithInstrument
	err := applyFilter(claimsWithInstrument(s.db.WithContext(ctx))).
		Order("ownership_claims.created_at DESC").
		Order("ownership_claims.id DESC").
		Limit(filter.Limit).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Scan(&claims).Error
	if err != nil {
		return nil, 0, wrapError("list claims", err)
	}

	return claims, uint64(total), nil //nolint:gosec,G115
}

// CountClaimsByStatus counts claims grouped by status
func (s *pgStore) CountClaimsByStatus(ctx context.Context) (map[domain.ClaimStatus]uint64, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var rows []struct {
		Status domain.ClaimStatus `gorm:"column:status"`
		Count  uint64             `gorm:"column:count"`
	}
	err := s.db.WithContext(ctx).
		Model(&schema.OwnershipClaim{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapError("count claims by status", err)
	}

	counts := make(map[domain.ClaimStatus]uint64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

// =============================================================================
// Attribute changes
// =============================================================================

// CreateAttributeChange inserts an unlocked change proposal
func (s *pgStore) CreateAttributeChange(ctx context.Context, input CreateAttributeChangeInput) (*schema.AttributeChange, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	change := schema.AttributeChange{
		ID:              input.ID,
		InstrumentID:    input.InstrumentID,
		FieldName:       input.FieldName,
		OldValue:        input.OldValue,
		NewValue:        input.NewValue,
		ChangeReason:    input.ChangeReason,
		ChangedByUserID: input.ChangedByUserID,
		ChangeType:      input.ChangeType,
		IsLocked:        false,
		Outcome:         domain.ChangeOutcomeNone,
		CreatedAt:       input.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Create(&change).Error; err != nil {
		return nil, wrapError("create attribute change", err)
	}

	return &change, nil
}

// GetAttributeChange retrieves a change by ID
func (s *pgStore) GetAttributeChange(ctx context.Context, changeID string) (*schema.AttributeChange, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var change schema.AttributeChange
	err := s.db.WithContext(ctx).Where("id = ?", changeID).First(&change).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapError("get attribute change", err)
	}

	return &change, nil
}

// SetGracePeriod sets the grace deadline on an unlocked change and clears any failed automatic application
func (s *pgStore) SetGracePeriod(ctx context.Context, changeID string, endsAt time.Time) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result := s.db.WithContext(ctx).Model(&schema.AttributeChange{}).
		Where("id = ? AND is_locked = FALSE", changeID).
		Updates(map[string]interface{}{
			"grace_period_ends_at": endsAt,
			"auto_apply_failed_at": nil,
			"auto_apply_error":     nil,
		})
	if result.Error != nil {
		return false, wrapError("set grace period", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// MarkAutoApplyFailed records a failed automatic application on an unlocked change
func (s *pgStore) MarkAutoApplyFailed(ctx context.Context, changeID, reason string, at time.Time) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result := s.db.WithContext(ctx).Model(&schema.AttributeChange{}).
		Where("id = ? AND is_locked = FALSE", changeID).
		Updates(map[string]interface{}{
			"auto_apply_failed_at": at,
			"auto_apply_error":     reason,
		})
	if result.Error != nil {
		return false, wrapError("mark auto-apply failed", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// instrumentFieldUpdate returns the column assignment that writes a change into an instrument
func instrumentFieldUpdate(change *schema.AttributeChange) (string, interface{}, error) {
	if domain.IsSpecKey(change.FieldName) {
		if change.NewValue == nil {
			return "specs", gorm.Expr("COALESCE(specs, '{}'::jsonb) - ?::text", change.FieldName), nil
		}
		return "specs", gorm.Expr("COALESCE(specs, '{}'::jsonb) || jsonb_build_object(?::text, ?::text)", change.FieldName, *change.NewValue), nil
	}

	column, ok := domain.TopLevelColumn(change.FieldName)
	if !ok {
		return "", nil, fmt.Errorf("%w: field %q is not mutable", domain.ErrInvalidInput, change.FieldName)
	}
	if change.NewValue == nil {
		return column, nil, nil
	}
	return column, *change.NewValue, nil
}

// ApplyAttributeChange writes the change into the instrument and locks the change
// in one transaction. A failed commit is reported as a domain.PartialApplyError.
func (s *pgStore) ApplyAttributeChange(ctx context.Context, changeID string, at time.Time) (*ApplyChangeResult, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result := &ApplyChangeResult{}
	var instrumentID string
	awaitingCommit := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the change
		var change schema.AttributeChange
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", changeID).
			First(&change).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		instrumentID = change.InstrumentID

		if change.IsLocked {
			if change.Outcome == domain.ChangeOutcomeApplied {
				result.Change = &change
				result.AlreadyApplied = true
				return nil
			}
			return fmt.Errorf("%w: change is locked with outcome %q", domain.ErrInvalidState, change.Outcome)
		}

		column, value, err := instrumentFieldUpdate(&change)
		if err != nil {
			return err
		}

		// 2. Lock the instrument
		var instrument schema.Instrument
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", change.InstrumentID).
			First(&instrument).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		// 3. Guarded instrument write
		res := tx.Model(&schema.Instrument{}).
			Where("id = ? AND version = ?", instrument.ID, instrument.Version).
			Updates(map[string]interface{}{
				column:       value,
				"version":    gorm.Expr("version + 1"),
				"updated_at": at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errVersionConflict
		}

		// 4. Guarded lock of the change
		res = tx.Model(&schema.AttributeChange{}).
			Where("id = ? AND is_locked = FALSE", change.ID).
			Updates(map[string]interface{}{
				"is_locked": true,
				"outcome":   domain.ChangeOutcomeApplied,
				"locked_at": at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: change was locked concurrently", domain.ErrInvalidState)
		}

		if err := tx.Where("id = ?", instrument.ID).First(&instrument).Error; err != nil {
			return err
		}

		lockedAt := at
		change.IsLocked = true
		change.Outcome = domain.ChangeOutcomeApplied
		change.LockedAt = &lockedAt

		result.Change = &change
		result.Instrument = &instrument
		awaitingCommit = true
		return nil
	})

	if err != nil {
		return nil, txError("apply attribute change", err, awaitingCommit, &domain.PartialApplyError{
			Operation:    "ApplyChange",
			InstrumentID: instrumentID,
			RecordID:     changeID,
		})
	}

	return result, nil
}

// RejectAttributeChange locks an unlocked change with a rejected outcome
func (s *pgStore) RejectAttributeChange(ctx context.Context, changeID string, at time.Time) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result := s.db.WithContext(ctx).Model(&schema.AttributeChange{}).
		Where("id = ? AND is_locked = FALSE", changeID).
		Updates(map[string]interface{}{
			"is_locked": true,
			"outcome":   domain.ChangeOutcomeRejected,
			"locked_at": at,
		})
	if result.Error != nil {
		return false, wrapError("reject attribute change", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// ListOpenAttributeChanges retrieves unlocked changes, oldest first
func (s *pgStore) ListOpenAttributeChanges(ctx context.Context, instrumentID *string) ([]schema.AttributeChange, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	query := s.db.WithContext(ctx).Where("is_locked = FALSE")
	if instrumentID != nil {
		query = query.Where("instrument_id = ?", *instrumentID)
	}

	var changes []schema.AttributeChange
	if err := query.Order("created_at ASC").Order("id ASC").Find(&changes).Error; err != nil {
		return nil, wrapError("list open attribute changes", err)
	}

	return changes, nil
}

// ListAttributeChanges retrieves every change of an instrument, newest first
func (s *pgStore) ListAttributeChanges(ctx context.Context, instrumentID string) ([]schema.AttributeChange, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var changes []schema.AttributeChange
	err := s.db.WithContext(ctx).
		Where("instrument_id = ?", instrumentID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&changes).Error
	if err != nil {
		return nil, wrapError("list attribute changes", err)
	}

	return changes, nil
}

// ListGraceElapsedChanges retrieves unlocked changes whose grace deadline has passed,
// skipping changes whose automatic application already failed
func (s *pgStore) ListGraceElapsedChanges(ctx context.Context, now time.Time, limit int) ([]schema.AttributeChange, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var changes []schema.AttributeChange
	err := s.db.WithContext(ctx).
		Where("is_locked = FALSE AND grace_period_ends_at IS NOT NULL AND grace_period_ends_at <= ?", now).
		Where("auto_apply_failed_at IS NULL").
		Order("grace_period_ends_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&changes).Error
	if err != nil {
		return nil, wrapError("list grace elapsed changes", err)
	}

	return changes, nil
}

// =============================================================================
// Ownership transfers
// =============================================================================

// CreateTransfer inserts a pending transfer
func (s *pgStore) CreateTransfer(ctx context.Context, input CreateTransferInput) (*schema.OwnershipTransfer, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	transfer := schema.OwnershipTransfer{
		ID:            input.ID,
		InstrumentID:  input.InstrumentID,
		FromOwnerID:   input.FromOwnerID,
		ToOwnerID:     input.ToOwnerID,
		Status:        domain.TransferStatusPending,
		TransferNotes: input.TransferNotes,
		CreatedAt:     input.CreatedAt,
		UpdatedAt:     input.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Create(&transfer).Error; err != nil {
		return nil, wrapError("create transfer", err)
	}

	return &transfer, nil
}

// GetTransfer retrieves a transfer by ID
func (s *pgStore) GetTransfer(ctx context.Context, transferID string) (*schema.OwnershipTransfer, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var transfer schema.OwnershipTransfer
	err := s.db.WithContext(ctx).Where("id = ?", transferID).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapError("get transfer", err)
	}

	return &transfer, nil
}

// UpdateTransferStatus performs a guarded status update
func (s *pgStore) UpdateTransferStatus(ctx context.Context, input UpdateTransferStatusInput) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	updates := map[string]interface{}{
		"status":     input.ToStatus,
		"updated_at": input.At,
	}

	// Set the timestamp column matching the new status
	switch input.ToStatus {
	case domain.TransferStatusAccepted:
		updates["accepted_at"] = input.At
	case domain.TransferStatusCancelled:
		updates["cancelled_at"] = input.At
	case domain.TransferStatusDeclined:
		updates["declined_at"] = input.At
		if input.RejectionReason != nil {
			updates["rejection_reason"] = *input.RejectionReason
		}
	case domain.TransferStatusCompleted:
		updates["completed_at"] = input.At
	}

	result := s.db.WithContext(ctx).Model(&schema.OwnershipTransfer{}).
		Where("id = ? AND status IN ?", input.TransferID, input.FromStatuses).
		Updates(updates)
	if result.Error != nil {
		return false, wrapError("update transfer status", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// CompleteTransfer moves an accepted transfer to completed and flips instrument ownership
// to the recipient when one is recorded
func (s *pgStore) CompleteTransfer(ctx context.Context, transferID string, at time.Time) (*CompleteTransferResult, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result := &CompleteTransferResult{}
	var instrumentID string
	awaitingCommit := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the transfer
		var transfer schema.OwnershipTransfer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", transferID).
			First(&transfer).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		instrumentID = transfer.InstrumentID

		switch transfer.Status {
		case domain.TransferStatusCompleted:
			result.Transfer = &transfer
			result.AlreadyCompleted = true
			return nil
		case domain.TransferStatusAccepted:
		default:
			return fmt.Errorf("%w: transfer is %s", domain.ErrInvalidState, transfer.Status)
		}

		// 2. Guarded ownership flip; external transfers leave ownership untouched
		if transfer.ToOwnerID != nil {
			var instrument schema.Instrument
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", transfer.InstrumentID).
				First(&instrument).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrNotFound
				}
				return err
			}

			res := tx.Model(&schema.Instrument{}).
				Where("id = ? AND version = ? AND current_owner_id IS NOT DISTINCT FROM ?", instrument.ID, instrument.Version, transfer.FromOwnerID).
				Updates(map[string]interface{}{
					"current_owner_id": *transfer.ToOwnerID,
					"is_claimable":     false,
					"version":          gorm.Expr("version + 1"),
					"updated_at":       at,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: instrument owner changed since the transfer was initiated", domain.ErrInvalidState)
			}

			if err := tx.Where("id = ?", instrument.ID).First(&instrument).Error; err != nil {
				return err
			}
			result.Instrument = &instrument
		}

		// 3. Guarded transfer update
		res := tx.Model(&schema.OwnershipTransfer{}).
			Where("id = ? AND status = ?", transfer.ID, domain.TransferStatusAccepted).
			Updates(map[string]interface{}{
				"status":       domain.TransferStatusCompleted,
				"completed_at": at,
				"updated_at":   at,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: transfer left accepted state during completion", domain.ErrInvalidState)
		}

		completedAt := at
		transfer.Status = domain.TransferStatusCompleted
		transfer.CompletedAt = &completedAt
		transfer.UpdatedAt = at
		result.Transfer = &transfer
		awaitingCommit = result.Instrument != nil
		return nil
	})

	if err != nil {
		return nil, txError("complete transfer", err, awaitingCommit, &domain.PartialApplyError{
			Operation:    "CompleteTransfer",
			InstrumentID: instrumentID,
			RecordID:     transferID,
		})
	}

	return result, nil
}

// ListTransferHistory retrieves resolved transfers of an instrument, newest first
func (s *pgStore) ListTransferHistory(ctx context.Context, instrumentID string) ([]schema.OwnershipTransfer, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var transfers []schema.OwnershipTransfer
	err := s.db.WithContext(ctx).
		Where("instrument_id = ? AND status IN ?", instrumentID, domain.HistoryTransferStatuses()).
		Order("created_at DESC").
		Find(&transfers).Error
	if err != nil {
		return nil, wrapError("list transfer history", err)
	}

	return transfers, nil
}

// ListUserTransfers retrieves transfers sent or received by the user, newest first
func (s *pgStore) ListUserTransfers(ctx context.Context, userID string) ([]schema.OwnershipTransfer, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var transfers []schema.OwnershipTransfer
	err := s.db.WithContext(ctx).
		Where("from_owner_id = ? OR to_owner_id = ?", userID, userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&transfers).Error
	if err != nil {
		return nil, wrapError("list user transfers", err)
	}

	return transfers, nil
}

// HasOpenTransfer reports whether the instrument has a pending or accepted transfer
func (s *pgStore) HasOpenTransfer(ctx context.Context, instrumentID string) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var count int64
	err := s.primary().WithContext(ctx).
		Model(&schema.OwnershipTransfer{}).
		Where("instrument_id = ? AND status IN ?", instrumentID,
			[]domain.TransferStatus{domain.TransferStatusPending, domain.TransferStatusAccepted}).
		Count(&count).Error
	if err != nil {
		return false, wrapError("check open transfer", err)
	}

	return count > 0, nil
}

// ExpirePendingTransfers moves pending transfers created before cutoff to expired in a
// single statement. Rows in any other status are never touched, so re-running is a no-op.
func (s *pgStore) ExpirePendingTransfers(ctx context.Context, cutoff, now time.Time) ([]string, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var ids []string
	err := s.db.WithContext(ctx).Raw(
		`UPDATE ownership_transfers
		    SET status = ?, updated_at = ?
		  WHERE status = ? AND created_at < ?
		RETURNING id`,
		domain.TransferStatusExpired, now, domain.TransferStatusPending, cutoff,
	).Scan(&ids).Error
	if err != nil {
		return nil, wrapError("expire pending transfers", err)
	}

	if len(ids) > 0 {
		logger.DebugCtx(ctx, "Expired pending transfers", zap.Int("count", len(ids)), zap.Time("cutoff", cutoff))
	}

	return ids, nil
}

// =============================================================================
// Side-effect sinks
// =============================================================================

// CreateNotification records a user notification
func (s *pgStore) CreateNotification(ctx context.Context, notification *schema.Notification) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(notification).Error
	if err != nil {
		return wrapError("create notification", err)
	}

	return nil
}

// CreateAuditLog records an audit entry
func (s *pgStore) CreateAuditLog(ctx context.Context, entry *schema.AuditLog) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(entry).Error
	if err != nil {
		return wrapError("create audit log", err)
	}

	return nil
}
