package notify

import (
	"context"
)

// Notification is a user-facing message emitted by a workflow step
type Notification struct {
	UserID    string
	Type      string
	Title     string
	Message   string
	RelatedID string
	Data      map[string]interface{}
}

// AuditEntry is an audit trail record emitted by a workflow step
type AuditEntry struct {
	Action     string
	ActorID    string
	TargetID   string
	TargetType string
	Details    map[string]interface{}
}

// Dispatcher delivers notifications and audit entries after the primary write has committed.
// Notify and Audit never block on delivery and never fail the caller: delivery errors are logged.
//
//go:generate mockgen -source=notify.go -destination=../mocks/notify.go -package=mocks -mock_names=Dispatcher=MockDispatcher
type Dispatcher interface {
	// Notify queues a notification for delivery
	Notify(ctx context.Context, n Notification)
	// Audit queues an audit entry for delivery
	Audit(ctx context.Context, entry AuditEntry)
	// Close stops accepting work and waits for queued deliveries until ctx is done
	Close(ctx context.Context) error
}
