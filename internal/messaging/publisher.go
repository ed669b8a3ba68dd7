package messaging

import (
	"context"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
)

// Publisher defines the interface for mirroring side-effect events to the message bus
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishNotification publishes a user notification event
	PublishNotification(ctx context.Context, event *domain.NotificationEvent) error
	// PublishAudit publishes an audit event
	PublishAudit(ctx context.Context, event *domain.AuditEvent) error
	// Close drains and closes the connection
	Close()
}
