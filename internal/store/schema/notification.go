package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Notification represents the notifications table
type Notification struct {
	// ID is the event identifier (ULID for time-sortable uniqueness)
	ID string `gorm:"column:id;primaryKey;type:varchar(26)"`
	// UserID is the recipient
	UserID string `gorm:"column:user_id;not null;type:varchar(255)"`
	// Type is the notification type (e.g., "claim_approved")
	Type string `gorm:"column:type;not null;type:varchar(64)"`
	// Title is the short headline shown to the user
	Title string `gorm:"column:title;not null;type:text"`
	// Message is the body text
	Message string `gorm:"column:message;type:text"`
	// RelatedID is the id of the claim, change or transfer the notification is about
	RelatedID *string `gorm:"column:related_id;type:varchar(36)"`
	// Data carries extra structured payload
	Data datatypes.JSON `gorm:"column:data;type:jsonb"`
	// IsRead is flipped by the client when the user opens the notification
	IsRead bool `gorm:"column:is_read;not null;default:false"`
	// CreatedAt is the timestamp when the notification was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
