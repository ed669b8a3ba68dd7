package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/adapter"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/attributes"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/config"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/messaging"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/notify"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/providers/jetstream"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/retry"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "twng-sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	if cfg.Database.ReadHost != "" {
		if err := store.RegisterReadReplica(db, postgres.Open(cfg.Database.ReadDSN())); err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
	}

	// Initialize store and adapters
	jsonAdapter := adapter.NewJSON()
	dataStore := store.NewPGStore(db, cfg.Workflow.DBTimeout, jsonAdapter)
	clock := adapter.NewClock()

	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			MaxAge:         cfg.NATS.MaxAge,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create JetStream publisher", zap.Error(err))
		}
		defer publisher.Close()
	}

	dispatcher := notify.NewDispatcher(notify.Config{
		WorkerPoolSize:  cfg.Notify.Worker.WorkerPoolSize,
		QueueSize:       cfg.Notify.Worker.WorkerQueueSize,
		DeliveryTimeout: cfg.Notify.DeliveryTimeout,
	}, dataStore, publisher, clock, jsonAdapter, adapter.NewJCS())

	var sweepers []sweeper.Sweeper

	if cfg.TransferExpirySweeper.Enabled {
		reaper := sweeper.NewTransferReaper(cfg.Workflow.TransferExpiryDays, dataStore, dispatcher)
		sweepers = append(sweepers, sweeper.NewTransferExpirySweeper(&sweeper.TransferExpirySweeperConfig{
			Interval:      cfg.TransferExpirySweeper.Interval,
			ThresholdDays: cfg.Workflow.TransferExpiryDays,
			Retry:         retry.DefaultConfig(),
		}, reaper, clock))
		logger.InfoCtx(ctx, "Initialized transfer expiry sweeper",
			zap.Duration("interval", cfg.TransferExpirySweeper.Interval),
			zap.Int("threshold_days", cfg.Workflow.TransferExpiryDays),
		)
	}

	if cfg.GraceSweeper.Enabled {
		attributeWorkflow := attributes.NewWorkflow(attributes.Config{
			GracePeriodDays: cfg.Workflow.GraceDefaultDays,
		}, dataStore, dispatcher, clock)
		sweepers = append(sweepers, sweeper.NewGraceSweeper(&sweeper.GraceSweeperConfig{
			Interval:       cfg.GraceSweeper.Interval,
			BatchSize:      cfg.GraceSweeper.BatchSize,
			WorkerPoolSize: cfg.GraceSweeper.Worker.WorkerPoolSize,
			AutoApply:      cfg.GraceSweeper.AutoApply,
		}, attributeWorkflow, clock))
		logger.InfoCtx(ctx, "Initialized grace period sweeper",
			zap.Duration("interval", cfg.GraceSweeper.Interval),
			zap.Int("batch_size", cfg.GraceSweeper.BatchSize),
			zap.Bool("auto_apply", cfg.GraceSweeper.AutoApply),
		)
	}

	if len(sweepers) == 0 {
		logger.WarnCtx(ctx, "No sweepers enabled, exiting")
		return
	}

	// Start the sweepers in goroutines
	errChan := make(chan error, len(sweepers))
	for _, s := range sweepers {
		go func(s sweeper.Sweeper) {
			if err := s.Start(ctx); err != nil {
				errChan <- fmt.Errorf("%s: %w", s.Name(), err)
			}
		}(s)
	}

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweepers
	cancel()

	// Give the sweepers time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	for _, s := range sweepers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("sweeper", s.Name()))
		}
	}

	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "dispatcher"))
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
