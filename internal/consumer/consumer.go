package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/genelink-network/ledger-indexer/internal/adapter"
	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/logger"
	"github.com/genelink-network/ledger-indexer/internal/reconciler"
	"github.com/genelink-network/ledger-indexer/internal/store"
	"github.com/genelink-network/ledger-indexer/internal/store/schema"
)

// Config holds the configuration for the event consumer
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
	Workers        int
}

// Consumer defines the interface for the event consumer
type Consumer interface {
	// Run starts consuming events until the context ends
	Run(ctx context.Context) error
	// Close closes the consumer and cleans up resources
	Close()
}

// consumer pulls chain events from JetStream and hands each to the
// reconciler on a bounded worker pool. Every parsed message is acked no
// matter what the reconciliation reported: redelivery cannot improve on a
// recorded stage failure, and the idempotency gate absorbs duplicates.
type consumer struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	store      store.Store
	reconciler *reconciler.Reconciler
	json       adapter.JSON
	pool       pond.Pool
	config     Config
}

// NewConsumer creates a new event consumer
func NewConsumer(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	rec *reconciler.Reconciler,
	jsonAdapter adapter.JSON,
) (Consumer, error) {
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

	workers := cfg.Workers
	if workers <= 0 {
		workers = 10
	}

	return &consumer{
		nc:         nc,
		js:         js,
		store:      st,
		reconciler: rec,
		json:       jsonAdapter,
		pool:       pond.NewPool(workers),
		config:     cfg,
	}, nil
}

// Run starts the event consumer
func (c *consumer) Run(ctx context.Context) error {
	logger.Info("Starting event consumer",
		zap.String("stream", c.config.StreamName),
		zap.String("consumer", c.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWaitTimeout,
		MaxDeliver:    c.config.MaxDeliver,
		FilterSubject: "events.>",
	}

	jsConsumer, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := jsConsumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	sub, err := jsConsumer.Consume(func(msg adapter.Message) {
		c.pool.Submit(func() {
			c.handleMessage(ctx, msg)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	<-ctx.Done()
	logger.Info("Shutting down event consumer")
	c.pool.StopAndWait()
	return ctx.Err()
}

// handleMessage reconciles a single message. Unparseable payloads are
// terminated: the bytes will not change on redelivery.
func (c *consumer) handleMessage(ctx context.Context, msg adapter.Message) {
	metadata, _ := msg.Metadata()

	var event domain.ChainEvent
	if err := c.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	if metadata != nil {
		logger.Info("Received event",
			zap.String("event_type", string(event.EventType)),
			zap.Uint64("block_number", event.BlockNumber),
			zap.Uint64("delivery_count", metadata.NumDelivered),
		)
	}

	result := c.reconciler.Handle(ctx, &event)

	c.journal(ctx, &event, &result)

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// journal records the received event in the audit table. Best effort: a
// journal failure never blocks the ack.
func (c *consumer) journal(ctx context.Context, event *domain.ChainEvent, result *reconciler.Result) {
	record := &schema.ChainEvent{
		EventType:   event.EventType,
		RefNumber:   result.EntityID,
		BlockNumber: event.BlockNumber,
		Raw:         []byte(event.Payload),
	}

	if err := c.store.RecordChainEvent(ctx, record); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to journal chain event"),
			zap.String("event_type", string(event.EventType)))
	}
}

// Close closes the consumer and cleans up resources
func (c *consumer) Close() {
	if c.nc == nil {
		return
	}

	c.nc.Close()
}
