package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimStatus(t *testing.T) {
	tests := []struct {
		status   ClaimStatus
		live     bool
		terminal bool
	}{
		{ClaimStatusPending, true, false},
		{ClaimStatusUnderReview, true, false},
		{ClaimStatusApproved, false, true},
		{ClaimStatusRejected, false, true},
		{ClaimStatusWithdrawn, false, true},
		{ClaimStatus("bogus"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.live, tt.status.IsLive())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.live || tt.terminal, IsValidClaimStatus(tt.status))
		})
	}
}

func TestValidateEvidence(t *testing.T) {
	tests := []struct {
		name    string
		vt      VerificationType
		data    map[string]string
		wantErr bool
	}{
		{
			name: "instagram handle present",
			vt:   VerificationInstagramMatch,
			data: map[string]string{"instagram_handle": "@guitarguy"},
		},
		{
			name:    "instagram handle blank",
			vt:      VerificationInstagramMatch,
			data:    map[string]string{"instagram_handle": "   "},
			wantErr: true,
		},
		{
			name: "serial photo url",
			vt:   VerificationSerialPhoto,
			data: map[string]string{"serial_photo_url": "https://cdn.example.com/serial.jpg"},
		},
		{
			name:    "serial photo relative url",
			vt:      VerificationSerialPhoto,
			data:    map[string]string{"serial_photo_url": "/uploads/serial.jpg"},
			wantErr: true,
		},
		{
			name:    "receipt wrong key",
			vt:      VerificationReceipt,
			data:    map[string]string{"description": "I have it somewhere"},
			wantErr: true,
		},
		{
			name: "luthier vouch",
			vt:   VerificationLuthierVouch,
			data: map[string]string{"luthier_name": "J. Smith"},
		},
		{
			name: "other description",
			vt:   VerificationOther,
			data: map[string]string{"description": "bought at a yard sale"},
		},
		{
			name:    "unknown type",
			vt:      VerificationType("telepathy"),
			data:    map[string]string{"description": "trust me"},
			wantErr: true,
		},
		{
			name:    "nil data",
			vt:      VerificationOther,
			data:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEvidence(tt.vt, tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFieldLookups(t *testing.T) {
	assert.True(t, IsSpecKey("pickups"))
	assert.True(t, IsSpecKey("weight"))
	assert.False(t, IsSpecKey("model"))
	assert.Len(t, SpecKeys(), 8)

	col, ok := TopLevelColumn("serial_number")
	assert.True(t, ok)
	assert.Equal(t, "serial_number", col)

	_, ok = TopLevelColumn("pickups")
	assert.False(t, ok)

	assert.True(t, IsMutableField("finish"))
	assert.True(t, IsMutableField("tuners"))
	assert.False(t, IsMutableField("current_owner_id"))
	assert.False(t, IsMutableField("is_claimable"))

	assert.True(t, RequiresValue("make"))
	assert.True(t, RequiresValue("model"))
	assert.False(t, RequiresValue("year"))
	assert.False(t, RequiresValue("pickups"))

	// mutating the returned slice must not affect the lookup
	keys := SpecKeys()
	keys[0] = "current_owner_id"
	assert.False(t, IsSpecKey("current_owner_id"))
}

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleSuperAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
	assert.False(t, Role("").IsAdmin())
}

func TestErrorClassification(t *testing.T) {
	wrapped := fmt.Errorf("approve claim: %w", ErrAlreadyClaimed)
	assert.True(t, IsTerminal(wrapped))
	assert.False(t, IsTransient(wrapped))

	transient := NewTransientError("ApproveClaim", errors.New("connection reset"))
	assert.True(t, IsTransient(fmt.Errorf("outer: %w", transient)))
	assert.False(t, IsTerminal(transient))

	partial := &PartialApplyError{Operation: "ApplyChange", InstrumentID: "i1", RecordID: "c1", Err: errors.New("boom")}
	assert.True(t, IsPartialApply(partial))
	assert.Contains(t, partial.Error(), "instrument=i1")
	assert.False(t, IsTerminal(partial))
}
