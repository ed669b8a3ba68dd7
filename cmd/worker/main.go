package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
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
	temporal "github.com/RonenBerka/TWNG-APP-sub000/internal/providers/temporal"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/sweeper"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadMaintenanceWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "twng-maintenance-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting maintenance worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Initialize store and adapters
	jsonAdapter := adapter.NewJSON()
	dataStore := store.NewPGStore(db, cfg.Workflow.DBTimeout, jsonAdapter)
	clockAdapter := adapter.NewClock()

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
			logger.Fatal("Failed to create JetStream publisher", zap.Error(err))
		}
		defer publisher.Close()
	}

	dispatcher := notify.NewDispatcher(notify.Config{
		WorkerPoolSize:  cfg.Notify.Worker.WorkerPoolSize,
		QueueSize:       cfg.Notify.Worker.WorkerQueueSize,
		DeliveryTimeout: cfg.Notify.DeliveryTimeout,
	}, dataStore, publisher, clockAdapter, jsonAdapter, adapter.NewJCS())

	// Initialize executor for activities
	reaper := sweeper.NewTransferReaper(cfg.Workflow.TransferExpiryDays, dataStore, dispatcher)
	attributeWorkflow := attributes.NewWorkflow(attributes.Config{
		GracePeriodDays: cfg.Workflow.GraceDefaultDays,
	}, dataStore, dispatcher, clockAdapter)
	executor := workflows.NewExecutor(reaper, attributeWorkflow, clockAdapter, cfg.GraceWorkerPoolSize)

	// Connect to Temporal with logger integration
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.Fatal("Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.Info("Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.TaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors:                       []interceptor.WorkerInterceptor{temporal.NewSentryActivityInterceptor()},
		})
	logger.Info("Created Temporal worker", zap.String("taskQueue", cfg.Temporal.TaskQueue))

	maintenance := workflows.NewWorker(executor)

	// Register workflows
	temporalWorker.RegisterWorkflow(maintenance.SweepExpiredTransfers)
	temporalWorker.RegisterWorkflow(maintenance.ApplyGraceElapsedChanges)
	logger.Info("Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.ExpireStaleTransfers)
	temporalWorker.RegisterActivity(executor.ApplyElapsedChanges)
	logger.Info("Registered activities")

	// Create or update the schedules that start the maintenance workflows
	err = workflows.RegisterSchedules(ctx, temporalClient, maintenance, workflows.ScheduleConfig{
		TaskQueue:              cfg.Temporal.TaskQueue,
		TransferExpiryInterval: cfg.Schedules.TransferExpiryInterval,
		TransferExpiryDays:     cfg.Workflow.TransferExpiryDays,
		GraceSweepInterval:     cfg.Schedules.GraceSweepInterval,
		GraceSweepLimit:        cfg.Schedules.GraceSweepLimit,
	})
	if err != nil {
		logger.Fatal("Failed to register schedules", zap.Error(err))
	}

	// Start worker
	err = temporalWorker.Start()
	if err != nil {
		logger.Fatal("Failed to start worker", zap.Error(err))
	}
	logger.Info("Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down worker...")
	cancel()
	temporalWorker.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "dispatcher"))
	}

	logger.Info("Worker stopped")
}
