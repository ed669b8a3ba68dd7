package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/messaging"
)

const (
	// SubjectPrefix is the root of every subject the publisher writes to
	SubjectPrefix = "twng"
	// DefaultStreamName is used when the config leaves the stream name empty
	DefaultStreamName = "TWNG_EVENTS"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// MaxAge bounds how long mirrored events are retained by the stream
	MaxAge time.Duration
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher connects to NATS, ensures the event stream exists and returns a publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	streamName := cfg.StreamName
	if streamName == "" {
		streamName = DefaultStreamName
	}

	err = js.CreateOrUpdateStream(ctx, natsjs.StreamConfig{
		Name:     streamName,
		Subjects: []string{SubjectPrefix + ".>"},
		MaxAge:   cfg.MaxAge,
		Storage:  natsjs.FileStorage,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", streamName, err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: streamName,
		json:       jsonAdapter,
	}, nil
}

// PublishNotification publishes a user notification to twng.notifications.{type}
func (p *publisher) PublishNotification(ctx context.Context, event *domain.NotificationEvent) error {
	logger.DebugCtx(ctx, "Publishing notification", zap.String("id", event.ID), zap.String("type", event.Type))
	return p.publish(ctx, NotificationSubject(event.Type), event.ID, event)
}

// PublishAudit publishes an audit entry to twng.audit.{action}
func (p *publisher) PublishAudit(ctx context.Context, event *domain.AuditEvent) error {
	logger.DebugCtx(ctx, "Publishing audit event", zap.String("id", event.ID), zap.String("action", event.Action))
	return p.publish(ctx, AuditSubject(event.Action), event.ID, event)
}

func (p *publisher) publish(ctx context.Context, subject, msgID string, event interface{}) error {
	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// The message id lets the stream drop redeliveries of the same event
	_, err = p.js.Publish(ctx, subject, data, natsjs.WithMsgID(msgID))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// NotificationSubject builds the subject for a notification type
// e.g., twng.notifications.claim_approved
func NotificationSubject(notificationType string) string {
	return fmt.Sprintf("%s.notifications.%s", SubjectPrefix, notificationType)
}

// AuditSubject builds the subject for an audit action
// e.g., twng.audit.claim.approved
func AuditSubject(action string) string {
	return fmt.Sprintf("%s.audit.%s", SubjectPrefix, action)
}

// Close drains and closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	if err := p.nc.Drain(); err != nil {
		logger.Warn("Failed to drain NATS connection", zap.Error(err))
		p.nc.Close()
	}
}
