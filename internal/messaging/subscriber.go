package messaging

import (
	"context"

	"github.com/genelink-network/ledger-indexer/internal/domain"
)

// EventHandler is called for each decoded chain event
type EventHandler func(event *domain.ChainEvent) error

// Subscriber defines the interface for subscribing to decoded chain events
// at the source of truth (the chain node)
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// SubscribeEvents subscribes to chain events starting at fromBlock
	// (0 means latest) and invokes handler for each decoded event
	SubscribeEvents(ctx context.Context, fromBlock uint64, handler EventHandler) error

	// GetLatestBlock returns the number of the latest finalized block
	GetLatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection and cleans up resources
	Close()
}
