package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/messaging"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store/schema"
)

const (
	defaultWorkerPoolSize  = 4
	defaultQueueSize       = 1024
	defaultDeliveryTimeout = 5 * time.Second
)

// Config holds the configuration for the dispatcher
type Config struct {
	// WorkerPoolSize is the number of concurrent deliveries
	WorkerPoolSize int
	// QueueSize bounds pending deliveries; further events are dropped with a warning
	QueueSize int
	// DeliveryTimeout bounds each sink write
	DeliveryTimeout time.Duration
}

type dispatcher struct {
	pool      pond.Pool
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	json      adapter.JSON
	jcs       adapter.JCS
	timeout   time.Duration
}

// NewDispatcher creates a dispatcher that records events in the store and,
// when publisher is not nil, mirrors them to the message bus
func NewDispatcher(
	cfg Config,
	st store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
	jsonAdapter adapter.JSON,
	jcsAdapter adapter.JCS,
) Dispatcher {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = defaultDeliveryTimeout
	}

	return &dispatcher{
		pool: pond.NewPool(
			cfg.WorkerPoolSize,
			pond.WithQueueSize(cfg.QueueSize),
			pond.WithNonBlocking(true),
		),
		store:     st,
		publisher: publisher,
		clock:     clock,
		json:      jsonAdapter,
		jcs:       jcsAdapter,
		timeout:   cfg.DeliveryTimeout,
	}
}

// Notify queues a notification for delivery
func (d *dispatcher) Notify(ctx context.Context, n Notification) {
	event := &domain.NotificationEvent{
		ID:        d.newID(),
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		Data:      n.Data,
		CreatedAt: d.clock.Now(),
	}

	d.submit(ctx, "notification", func(ctx context.Context) {
		if err := d.deliverNotification(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to deliver notification",
				zap.Error(err),
				zap.String("id", event.ID),
				zap.String("type", event.Type),
				zap.String("userID", event.UserID))
		}
	})
}

// Audit queues an audit entry for delivery
func (d *dispatcher) Audit(ctx context.Context, entry AuditEntry) {
	details, err := d.canonicalize(entry.Details)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to canonicalize audit details, recording without them",
			zap.Error(err),
			zap.String("action", entry.Action))
		details = nil
	}

	event := &domain.AuditEvent{
		ID:         d.newID(),
		Action:     entry.Action,
		ActorID:    entry.ActorID,
		TargetID:   entry.TargetID,
		TargetType: entry.TargetType,
		Details:    details,
		CreatedAt:  d.clock.Now(),
	}

	d.submit(ctx, "audit", func(ctx context.Context) {
		if err := d.deliverAudit(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to deliver audit entry",
				zap.Error(err),
				zap.String("id", event.ID),
				zap.String("action", event.Action),
				zap.String("targetID", event.TargetID))
		}
	})
}

// Close stops accepting work and waits for queued deliveries until ctx is done
func (d *dispatcher) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.pool.StopAndWait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for pending deliveries: %w", ctx.Err())
	}

	if d.publisher != nil {
		d.publisher.Close()
	}
	return nil
}

// submit runs fn on the pool with a context detached from the caller's cancellation
func (d *dispatcher) submit(ctx context.Context, kind string, fn func(ctx context.Context)) {
	deliveryCtx := context.WithoutCancel(ctx)
	err := d.pool.Go(func() {
		ctx, cancel := context.WithTimeout(deliveryCtx, d.timeout)
		defer cancel()
		fn(ctx)
	})
	if err != nil {
		logger.WarnCtx(ctx, "Dropped side effect", zap.String("kind", kind), zap.Error(err))
	}
}

func (d *dispatcher) deliverNotification(ctx context.Context, event *domain.NotificationEvent) error {
	row := &schema.Notification{
		ID:        event.ID,
		UserID:    event.UserID,
		Type:      event.Type,
		Title:     event.Title,
		Message:   event.Message,
		CreatedAt: event.CreatedAt,
	}
	if event.RelatedID != "" {
		relatedID := event.RelatedID
		row.RelatedID = &relatedID
	}
	if len(event.Data) > 0 {
		data, err := d.json.Marshal(event.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal notification data: %w", err)
		}
		row.Data = datatypes.JSON(data)
	}

	var errs []error
	if err := d.store.CreateNotification(ctx, row); err != nil {
		errs = append(errs, err)
	}
	if d.publisher != nil {
		if err := d.publisher.PublishNotification(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *dispatcher) deliverAudit(ctx context.Context, event *domain.AuditEvent) error {
	row := &schema.AuditLog{
		ID:         event.ID,
		Action:     event.Action,
		ActorID:    event.ActorID,
		TargetID:   event.TargetID,
		TargetType: event.TargetType,
		CreatedAt:  event.CreatedAt,
	}
	if len(event.Details) > 0 {
		row.Details = datatypes.JSON(event.Details)
	}

	var errs []error
	if err := d.store.CreateAuditLog(ctx, row); err != nil {
		errs = append(errs, err)
	}
	if d.publisher != nil {
		if err := d.publisher.PublishAudit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// canonicalize renders details as RFC 8785 JSON
func (d *dispatcher) canonicalize(details map[string]interface{}) ([]byte, error) {
	if len(details) == 0 {
		return nil, nil
	}

	raw, err := d.json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal details: %w", err)
	}

	canonical, err := d.jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize details: %w", err)
	}
	return canonical, nil
}

func (d *dispatcher) newID() string {
	return ulid.MustNew(ulid.Timestamp(d.clock.Now()), ulid.DefaultEntropy()).String()
}
