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
	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/graphql"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/middleware"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/rest"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/api/server"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/attributes"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/claims"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/config"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/logger"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/messaging"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/notify"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/providers/jetstream"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/retry"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/store"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/sweeper"
	"github.com/RonenBerka/TWNG-APP-sub000/internal/transfers"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "twng-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting TWNG ownership API")

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

	// Route listings and lookups to the read replica when one is configured
	if cfg.Database.ReadHost != "" {
		if err := store.RegisterReadReplica(db, postgres.Open(cfg.Database.ReadDSN())); err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Registered read replica", zap.String("read_host", cfg.Database.ReadHost))
	}

	// Initialize store and adapters
	jsonAdapter := adapter.NewJSON()
	dataStore := store.NewPGStore(db, cfg.Workflow.DBTimeout, jsonAdapter)
	clock := adapter.NewClock()

	// Mirror notification and audit events to JetStream when configured
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
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, events are only recorded in the database")
	}

	dispatcher := notify.NewDispatcher(notify.Config{
		WorkerPoolSize:  cfg.Notify.Worker.WorkerPoolSize,
		QueueSize:       cfg.Notify.Worker.WorkerQueueSize,
		DeliveryTimeout: cfg.Notify.DeliveryTimeout,
	}, dataStore, publisher, clock, jsonAdapter, adapter.NewJCS())

	// Initialize workflows
	claimWorkflow := claims.NewWorkflow(dataStore, dispatcher, clock, jsonAdapter)
	claimQuery := claims.NewQueryService(dataStore)
	attributeWorkflow := attributes.NewWorkflow(attributes.Config{
		GracePeriodDays: cfg.Workflow.GraceDefaultDays,
	}, dataStore, dispatcher, clock)
	transferWorkflow := transfers.NewWorkflow(dataStore, dispatcher, clock)
	reaper := sweeper.NewTransferReaper(cfg.Workflow.TransferExpiryDays, dataStore, dispatcher)

	// Create authenticator
	authenticator, err := middleware.NewAuthenticator(middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		RoleClaim:    cfg.Auth.RoleClaim,
		AdminRole:    cfg.Auth.AdminRole,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create authenticator", zap.Error(err))
	}

	handler := rest.NewHandler(rest.Services{
		Claims:     claimWorkflow,
		ClaimQuery: claimQuery,
		Attributes: attributeWorkflow,
		Transfers:  transferWorkflow,
		Reaper:     reaper,
		Clock:      clock,
		Retry:      retry.DefaultConfig(),
		ExpiryDays: cfg.Workflow.TransferExpiryDays,
	})

	gqlHandler := graphql.NewHandler(graphql.NewResolver(claimQuery, retry.DefaultConfig()))

	// Create and start server
	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, handler, gqlHandler, authenticator)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	// Drain queued notification and audit deliveries
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "dispatcher"))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
