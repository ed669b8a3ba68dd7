package schema

import (
	"time"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
)

// AttributeChange represents the attribute_changes table
// A proposed edit to one instrument field. Once locked the row is immutable history.
type AttributeChange struct {
	// ID is the change identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`

	// InstrumentID is the foreign key to instruments table
	InstrumentID string `gorm:"column:instrument_id;not null;type:varchar(36)"`

	// FieldName is a spec key or a mutable top-level instrument field
	FieldName string `gorm:"column:field_name;not null;type:text"`

	// OldValue is the value the proposer saw
	OldValue *string `gorm:"column:old_value;type:text"`

	// NewValue is the proposed value
	NewValue *string `gorm:"column:new_value;type:text"`

	// ChangeReason is the proposer's explanation
	ChangeReason string `gorm:"column:change_reason;type:text"`

	// ChangedByUserID is the proposer
	ChangedByUserID string `gorm:"column:changed_by_user_id;not null;type:varchar(255)"`

	// ChangeType is create, update or delete
	ChangeType domain.ChangeType `gorm:"column:change_type;not null;type:text;default:update"`

	// IsLocked is true once the change has been applied or rejected
	IsLocked bool `gorm:"column:is_locked;not null;default:false"`

	// Outcome records why the change was locked: applied or rejected (empty while open)
	Outcome domain.ChangeOutcome `gorm:"column:outcome;not null;type:text;default:''"`

	// GracePeriodEndsAt is the deadline after which the change may be resolved
	GracePeriodEndsAt *time.Time `gorm:"column:grace_period_ends_at;type:timestamptz"`

	// AutoApplyFailedAt is set when the grace sweep could not apply the change.
	// Such changes wait for an admin and are skipped by later sweeps.
	AutoApplyFailedAt *time.Time `gorm:"column:auto_apply_failed_at;type:timestamptz"`

	// AutoApplyError is the error of the failed automatic application
	AutoApplyError *string `gorm:"column:auto_apply_error;type:text"`

	// LockedAt is when the change was applied or rejected
	LockedAt *time.Time `gorm:"column:locked_at;type:timestamptz"`

	// CreatedAt is the timestamp when the change was proposed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AttributeChange model
func (AttributeChange) TableName() string {
	return "attribute_changes"
}
