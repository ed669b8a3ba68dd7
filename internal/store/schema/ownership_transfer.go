package schema

import (
	"time"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
)

// OwnershipTransfer represents the ownership_transfers table
type OwnershipTransfer struct {
	// ID is the transfer identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`

	// InstrumentID is the foreign key to instruments table
	InstrumentID string `gorm:"column:instrument_id;not null;type:varchar(36)"`

	// FromOwnerID is the owner initiating the transfer
	FromOwnerID *string `gorm:"column:from_owner_id;type:varchar(255)"`

	// ToOwnerID is the recipient (NULL for transfers to someone outside the registry)
	ToOwnerID *string `gorm:"column:to_owner_id;type:varchar(255)"`

	// Status is pending, accepted, completed, cancelled, expired or declined
	Status domain.TransferStatus `gorm:"column:status;not null;type:text;default:pending"`

	// TransferNotes are free-form notes from the initiator
	TransferNotes string `gorm:"column:transfer_notes;type:text"`

	// RejectionReason is the recipient's reason when declining
	RejectionReason *string `gorm:"column:rejection_reason;type:text"`

	AcceptedAt  *time.Time `gorm:"column:accepted_at;type:timestamptz"`
	CompletedAt *time.Time `gorm:"column:completed_at;type:timestamptz"`
	CancelledAt *time.Time `gorm:"column:cancelled_at;type:timestamptz"`
	DeclinedAt  *time.Time `gorm:"column:declined_at;type:timestamptz"`

	// Timestamps
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OwnershipTransfer model
func (OwnershipTransfer) TableName() string {
	return "ownership_transfers"
}
