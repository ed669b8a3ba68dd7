package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
)

// intervalLoop runs a cycle function, sleeps for the interval, and repeats until
// the context is canceled or Stop is called
type intervalLoop struct {
	name      string
	interval  time.Duration
	clock     adapter.Clock
	runCycle  func(ctx context.Context) error
	cleanup   func()
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

func newIntervalLoop(name string, interval time.Duration, clock adapter.Clock) *intervalLoop {
	return &intervalLoop{
		name:      name,
		interval:  interval,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (l *intervalLoop) Name() string {
	return l.name
}

// Start runs the loop. It blocks until the context is canceled or Stop is called.
func (l *intervalLoop) Start(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper %s already running", l.name)
	}
	defer func() {
		l.running.Store(false)
		if l.cleanup != nil {
			l.cleanup()
		}
		close(l.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting sweeper", zap.String("sweeper", l.name), zap.Duration("interval", l.interval))

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Sweeper stopping due to context cancellation",
				zap.String("sweeper", l.name),
				zap.Error(ctx.Err()))
			return nil
		case <-l.stopChan:
			logger.InfoCtx(ctx, "Sweeper stop requested", zap.String("sweeper", l.name))
			return nil
		default:
			startTime := l.clock.Now()
			if err := l.runCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err, zap.String("sweeper", l.name))
			}
			logger.DebugCtx(ctx, "Sweep cycle finished",
				zap.String("sweeper", l.name),
				zap.Duration("duration", l.clock.Since(startTime)))

			l.sleep(ctx, l.interval)
		}
	}
}

// Stop signals the loop to exit and waits for the in-flight cycle to finish
func (l *intervalLoop) Stop(ctx context.Context) error {
	if !l.running.Load() {
		return nil
	}

	select {
	case <-l.stopChan:
		// already signaled
	default:
		logger.InfoCtx(ctx, "Stopping sweeper", zap.String("sweeper", l.name))
		close(l.stopChan)
	}

	select {
	case <-l.stoppedCh:
		logger.InfoCtx(ctx, "Sweeper stopped gracefully", zap.String("sweeper", l.name))
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Sweeper stop interrupted by context timeout", zap.String("sweeper", l.name))
		return ctx.Err()
	}
}

// sleep waits for the duration, returning false when interrupted
func (l *intervalLoop) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-l.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-l.stopChan:
		return false
	}
}
