package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
)

// OwnershipClaim represents the ownership_claims table
// A user's assertion, backed by evidence, that they own an instrument
type OwnershipClaim struct {
	// ID is the claim identifier (UUID)
	ID string `gorm:"column:id;primaryKey;type:varchar(36)"`

	// InstrumentID is the foreign key to instruments table
	InstrumentID string `gorm:"column:instrument_id;not null;type:varchar(36)"`

	// ClaimerID is the user asserting ownership
	ClaimerID string `gorm:"column:claimer_id;not null;type:varchar(255)"`

	// Status is the lifecycle state: pending, under_review, approved, rejected, withdrawn
	Status domain.ClaimStatus `gorm:"column:status;not null;type:text;default:pending"`

	// VerificationType is the kind of evidence offered
	VerificationType domain.VerificationType `gorm:"column:verification_type;not null;type:text"`

	// VerificationData holds the evidence keyed by verification type (e.g., {"receipt_url": "..."})
	VerificationData datatypes.JSON `gorm:"column:verification_data;not null;type:jsonb;default:'{}'"`

	// ClaimReason is the claimer's free-form statement
	ClaimReason string `gorm:"column:claim_reason;type:text"`

	// ReviewedBy is the admin who approved or rejected the claim
	ReviewedBy *string `gorm:"column:reviewed_by;type:varchar(255)"`

	// ReviewedAt is when the claim was approved or rejected
	ReviewedAt *time.Time `gorm:"column:reviewed_at;type:timestamptz"`

	// RejectionReason is required when Status is rejected
	RejectionReason *string `gorm:"column:rejection_reason;type:text"`

	// Timestamps
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OwnershipClaim model
func (OwnershipClaim) TableName() string {
	return "ownership_claims"
}
