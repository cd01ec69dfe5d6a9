package emitter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/genelink-network/ledger-indexer/internal/adapter"
	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/logger"
	"github.com/genelink-network/ledger-indexer/internal/messaging"
	"github.com/genelink-network/ledger-indexer/internal/store"
)

// Config holds the configuration for the event emitter
type Config struct {
	ChainName       string
	StartBlock      uint64
	CursorSaveFreq  uint64        // Save cursor every N blocks
	CursorSaveDelay time.Duration // Or save cursor every N seconds
	MaxReconnectGap time.Duration // Upper bound for the reconnect backoff
}

// Emitter defines the interface for the event emitter
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Run starts the event emitter
	Run(ctx context.Context) error
	// Close closes the emitter and cleans up resources
	Close()
}

// emitter subscribes to chain events and republishes them to the broker,
// persisting a block cursor so a restart resumes where it left off.
type emitter struct {
	subscriber messaging.Subscriber
	publisher  messaging.Publisher
	store      store.Store
	config     Config
	clock      adapter.Clock
}

// NewEmitter creates a new event emitter
func NewEmitter(
	sub messaging.Subscriber,
	pub messaging.Publisher,
	st store.Store,
	cfg Config,
	clock adapter.Clock,
) Emitter {
	return &emitter{
		subscriber: sub,
		publisher:  pub,
		store:      st,
		config:     cfg,
		clock:      clock,
	}
}

// Run starts the event emitter. The subscription is re-established with
// exponential backoff when the node connection drops; every retry resumes
// from the persisted cursor, so events between drop and reconnect are
// replayed rather than lost.
func (e *emitter) Run(ctx context.Context) error {
	policy := backoff.NewExponentialBackOff()
	if e.config.MaxReconnectGap > 0 {
		policy.MaxInterval = e.config.MaxReconnectGap
	}
	policy.MaxElapsedTime = 0

	operation := func() error {
		err := e.subscribeOnce(ctx)
		if errors.Is(err, context.Canceled) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		logger.Error(err,
			zap.String("message", "Event subscription dropped, reconnecting"),
			zap.String("chain", e.config.ChainName),
			zap.Duration("wait", wait))
	}

	return backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify)
}

// subscribeOnce runs a single subscription attempt from the resolved start
// block until the connection fails or the context ends. Start-block
// resolution errors are permanent: they signal a broken store or node, not a
// dropped connection.
func (e *emitter) subscribeOnce(ctx context.Context) error {
	startBlock, err := e.resolveStartBlock(ctx)
	if err != nil {
		return backoff.Permanent(err)
	}

	logger.Info("Starting event subscription",
		zap.String("chain", e.config.ChainName),
		zap.Uint64("block", startBlock))

	lastSavedBlock := uint64(0)
	lastSaveTime := e.clock.Now()

	handler := func(event *domain.ChainEvent) error {
		if err := e.publisher.PublishEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to publish %s event at block %d: %w", event.EventType, event.BlockNumber, err)
		}

		// Save cursor periodically (every N blocks or N seconds)
		shouldSave := event.BlockNumber-lastSavedBlock >= e.config.CursorSaveFreq ||
			e.clock.Since(lastSaveTime) >= e.config.CursorSaveDelay

		if shouldSave {
			if err := e.store.SetBlockCursor(ctx, e.config.ChainName, event.BlockNumber); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Failed to save block cursor"))
			} else {
				lastSavedBlock = event.BlockNumber
				lastSaveTime = e.clock.Now()
			}
		}

		return nil
	}

	return e.subscriber.SubscribeEvents(ctx, startBlock, handler)
}

// resolveStartBlock picks the subscription start: explicit config wins, then
// the persisted cursor, then the chain head.
func (e *emitter) resolveStartBlock(ctx context.Context) (uint64, error) {
	if e.config.StartBlock > 0 {
		logger.Info("Starting from configured block",
			zap.String("chain", e.config.ChainName),
			zap.Uint64("block", e.config.StartBlock))
		return e.config.StartBlock, nil
	}

	lastBlock, err := e.store.GetBlockCursor(ctx, e.config.ChainName)
	if err != nil {
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}
	if lastBlock > 0 {
		logger.Info("Resuming from last processed block",
			zap.String("chain", e.config.ChainName),
			zap.Uint64("block", lastBlock+1))
		return lastBlock + 1, nil
	}

	latestBlock, err := e.subscriber.GetLatestBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	logger.Info("Starting from latest block",
		zap.String("chain", e.config.ChainName),
		zap.Uint64("block", latestBlock))
	return latestBlock, nil
}

// Close closes the emitter and cleans up resources
func (e *emitter) Close() {
	e.subscriber.Close()
}
