package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents the audit_log table - append-only record of administrative and workflow actions
type AuditLog struct {
	// ID is the event identifier (ULID for time-sortable uniqueness)
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// Action is the dotted action name (e.g., "claim.approved")
	Action string `gorm:"column:action;not null;type:varchar(64)"`
	// ActorID is the user who performed the action ("system" for automated actions)
	ActorID string `gorm:"column:actor_id;not null;type:varchar(255)"`
	// TargetID is the id of the affected row
	TargetID string `gorm:"column:target_id;not null;type:varchar(36)"`
	// TargetType is the kind of the affected row (e.g., "ownership_claim")
	TargetType string `gorm:"column:target_type;not null;type:varchar(64)"`
	// Details is the canonical (RFC 8785) JSON of the action details
	Details datatypes.JSON `gorm:"column:details;type:jsonb"`
	// CreatedAt is the time the action happened
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AuditLog model
func (AuditLog) TableName() string {
	return "audit_log"
}
