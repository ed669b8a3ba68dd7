package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Instrument represents the instruments table
// Each row is a registered physical instrument that may be owned, claimed and edited
type Instrument struct {
	// ID is the instrument identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`

	// Make is the manufacturer (e.g., "Fender")
	Make string `gorm:"column:make;not null;type:text"`

	// Model is the model name (e.g., "Stratocaster")
	Model string `gorm:"column:model;not null;type:text"`

	// Year is the production year as entered by the registrant
	Year *string `gorm:"column:year;type:text"`

	// SerialNumber is the manufacturer serial number
	SerialNumber *string `gorm:"column:serial_number;type:text"`

	// Finish is the body finish / color
	Finish *string `gorm:"column:finish;type:text"`

	// Condition is the free-form condition grade
	Condition *string `gorm:"column:condition;type:text"`

	// Specs holds the structured specification map (body_material, pickups, ...)
	Specs datatypes.JSON `gorm:"column:specs;not null;type:jsonb;default:'{}'"`

	// CurrentOwnerID is the user currently recorded as owner (NULL when unowned)
	CurrentOwnerID *string `gorm:"column:current_owner_id;type:varchar(255)"`

	// IsClaimable indicates whether the instrument accepts ownership claims
	IsClaimable bool `gorm:"column:is_claimable;not null;default:true"`

	// Version is the optimistic-concurrency counter bumped by every guarded write
	Version int64 `gorm:"column:version;not null;default:1"`

	// Timestamps
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Instrument model
func (Instrument) TableName() string {
	return "instruments"
}

// Claimable reports whether the instrument still accepts ownership claims
func (i *Instrument) Claimable() bool {
	return i.IsClaimable || i.CurrentOwnerID == nil
}
