package main

import (
	"context"
	"errors"
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

	"github.com/genelink-network/ledger-indexer/internal/adapter"
	"github.com/genelink-network/ledger-indexer/internal/config"
	"github.com/genelink-network/ledger-indexer/internal/consumer"
	"github.com/genelink-network/ledger-indexer/internal/logger"
	"github.com/genelink-network/ledger-indexer/internal/notify"
	"github.com/genelink-network/ledger-indexer/internal/projector"
	"github.com/genelink-network/ledger-indexer/internal/reconciler"
	"github.com/genelink-network/ledger-indexer/internal/search"
	"github.com/genelink-network/ledger-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadReconcilerConfig(*configFile, *envPath)
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
			"service": "event-reconciler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Event Reconciler")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Initialize search index
	searchIndex, err := search.NewElasticIndex(search.Config{
		Addresses: cfg.Elasticsearch.Addresses,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create search index client", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to search index")

	// Initialize mailer (optional; skipped when no SMTP host is configured)
	var mailer notify.Mailer
	if cfg.Mail.Host != "" {
		mailer, err = notify.NewMailer(notify.MailConfig{
			Host:        cfg.Mail.Host,
			Port:        cfg.Mail.Port,
			Username:    cfg.Mail.Username,
			Password:    cfg.Mail.Password,
			From:        cfg.Mail.From,
			Environment: cfg.Environment,
		})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create mailer", zap.Error(err))
		}
	}

	// Wire the reconciliation engine
	rec := reconciler.NewReconciler(
		dataStore,
		projector.NewProjector(searchIndex),
		notify.NewEmitter(dataStore, clockAdapter),
		mailer,
		cfg.Mail.OpsRecipients,
		clockAdapter,
	)

	// Create consumer
	eventConsumer, err := consumer.NewConsumer(
		consumer.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConsumerName:   cfg.NATS.ConsumerName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			AckWaitTimeout: cfg.NATS.AckWait,
			MaxDeliver:     cfg.NATS.MaxDeliver,
			Workers:        cfg.Worker.PoolSize,
		},
		natsJS,
		dataStore,
		rec,
		jsonAdapter,
	)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create consumer", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer eventConsumer.Close()
	logger.InfoCtx(ctx, "Consumer created", zap.String("stream", cfg.NATS.StreamName), zap.String("consumer", cfg.NATS.ConsumerName))

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for consumer errors
	errCh := make(chan error, 1)

	// Start the consumer
	go func() {
		if err := eventConsumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "consumer"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Event Reconciler stopped")
}
