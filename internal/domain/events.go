package domain

import (
	"encoding/json"
	"time"
)

// NotificationEvent is a user-facing notification ready for delivery
type NotificationEvent struct {
	ID        string                 `json:"id"` // ULID
	UserID    string                 `json:"user_id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	RelatedID string                 `json:"related_id,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// AuditEvent is an audit trail entry ready for delivery
type AuditEvent struct {
	ID         string `json:"id"` // ULID
	Action     string `json:"action"`
	ActorID    string `json:"actor_id"`
	TargetID   string `json:"target_id"`
	TargetType string `json:"target_type"`
	// Details is canonical (RFC 8785) JSON
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
