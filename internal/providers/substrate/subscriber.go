package substrate

import (
	"context"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"go.uber.org/zap"

	"github.com/genelink-network/ledger-indexer/internal/adapter"
	"github.com/genelink-network/ledger-indexer/internal/logger"
	"github.com/genelink-network/ledger-indexer/internal/messaging"
)

type substrateSubscriber struct {
	client  Client
	decoder Decoder
	clock   adapter.Clock
}

// NewSubscriber creates a new substrate event subscriber
func NewSubscriber(client Client, decoder Decoder, clock adapter.Clock) messaging.Subscriber {
	return &substrateSubscriber{
		client:  client,
		decoder: decoder,
		clock:   clock,
	}
}

// SubscribeEvents replays event storage from fromBlock up to the chain head,
// then follows the live System.Events subscription. Blocks may be observed
// twice around the catch-up boundary; downstream deduplication makes the
// overlap harmless.
func (s *substrateSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	meta, err := s.client.GetMetadataLatest()
	if err != nil {
		return fmt.Errorf("failed to fetch chain metadata: %w", err)
	}

	if fromBlock > 0 {
		if err := s.catchUp(ctx, meta, fromBlock, handler); err != nil {
			return err
		}
	}

	sub, err := s.client.SubscribeSystemEvents()
	if err != nil {
		return fmt.Errorf("failed to subscribe to system events: %w", err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from substrate events")
		sub.Unsubscribe()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case set := <-sub.Chan():
			if err := s.handleChangeSet(ctx, meta, &set, handler); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling change set"))
			}
		}
	}
}

// catchUp replays System.Events block by block from fromBlock to the current
// head. Decode failures on historical blocks are logged and skipped; a stuck
// replay would otherwise pin the cursor forever.
func (s *substrateSubscriber) catchUp(ctx context.Context, meta *types.Metadata, fromBlock uint64, handler messaging.EventHandler) error {
	head, err := s.GetLatestBlock(ctx)
	if err != nil {
		return err
	}
	if fromBlock > head {
		return nil
	}

	logger.InfoCtx(ctx, "Replaying chain events",
		zap.Uint64("from_block", fromBlock),
		zap.Uint64("head", head))

	for number := fromBlock; number <= head; number++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		blockHash, err := s.client.GetBlockHash(number)
		if err != nil {
			return fmt.Errorf("failed to get hash of block %d: %w", number, err)
		}

		data, err := s.client.GetSystemEventsAt(blockHash)
		if err != nil {
			return fmt.Errorf("failed to read events of block %d: %w", number, err)
		}
		if len(data) == 0 {
			continue
		}

		if err := s.emit(ctx, meta, data, number, handler); err != nil {
			logger.ErrorCtx(ctx, err, zap.Uint64("block_number", number))
		}
	}

	return nil
}

// handleChangeSet resolves the block number of a live change set and emits
// its decoded events.
func (s *substrateSubscriber) handleChangeSet(ctx context.Context, meta *types.Metadata, set *types.StorageChangeSet, handler messaging.EventHandler) error {
	header, err := s.client.GetHeader(set.Block)
	if err != nil {
		return fmt.Errorf("failed to get header of block %s: %w", set.Block.Hex(), err)
	}
	blockNumber := uint64(header.Number)

	for _, change := range set.Changes {
		if !change.HasStorageData {
			continue
		}
		if err := s.emit(ctx, meta, change.StorageData, blockNumber, handler); err != nil {
			return err
		}
	}

	return nil
}

func (s *substrateSubscriber) emit(ctx context.Context, meta *types.Metadata, data []byte, blockNumber uint64, handler messaging.EventHandler) error {
	events, err := s.decoder.Decode(meta, data, blockNumber, s.clock.Now())
	if err != nil {
		return err
	}

	for _, event := range events {
		if err := handler(event); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Error handling event"),
				zap.String("event_type", string(event.EventType)))
		}
	}

	return nil
}

// GetLatestBlock returns the latest block number
func (s *substrateSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.client.GetHeaderLatest()
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return uint64(header.Number), nil
}

// Close closes the connection
func (s *substrateSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Substrate connection closed")
}
