package store

import (
	"context"

	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetLogByRefAndStatus retrieves the transaction-log record for an
	// (entity id, status) pair, or nil if the effect has not been applied yet.
	// This is the idempotency gate lookup.
	GetLogByRefAndStatus(ctx context.Context, ref string, status domain.TransactionStatus) (*schema.TransactionRequest, error)
	// GetLatestLogByRef retrieves the most recently created log record for an
	// entity irrespective of status, or nil if none exists. Used to compute
	// the parent link of a new record.
	GetLatestLogByRef(ctx context.Context, ref string) (*schema.TransactionRequest, error)
	// CreateLog appends a new transaction-log record
	CreateLog(ctx context.Context, record *schema.TransactionRequest) error
	// CreateNotification inserts a new notification record
	CreateNotification(ctx context.Context, notification *schema.Notification) error
	// RecordChainEvent journals a received chain event with its raw payload
	RecordChainEvent(ctx context.Context, event *schema.ChainEvent) error
	// GetBlockCursor retrieves the last processed block number for a chain
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error
}
