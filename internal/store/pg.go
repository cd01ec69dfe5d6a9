package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables the pipeline owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.TransactionRequest{},
		&schema.Notification{},
		&schema.ChainEvent{},
		&schema.KeyValueStore{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetLogByRefAndStatus retrieves the log record for an (entity id, status) pair
func (s *pgStore) GetLogByRefAndStatus(ctx context.Context, ref string, status domain.TransactionStatus) (*schema.TransactionRequest, error) {
	var record schema.TransactionRequest
	err := s.db.WithContext(ctx).
		Where("ref_number = ? AND transaction_status = ?", ref, status).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get log by ref and status: %w", err)
	}

	return &record, nil
}

// GetLatestLogByRef retrieves the most recently created log record for an entity
func (s *pgStore) GetLatestLogByRef(ctx context.Context, ref string) (*schema.TransactionRequest, error) {
	var record schema.TransactionRequest
	err := s.db.WithContext(ctx).
		Where("ref_number = ?", ref).
		Order("id DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest log: %w", err)
	}

	return &record, nil
}

// CreateLog appends a new transaction-log record. The composite unique index
// on (ref_number, transaction_status) is the storage-layer second line of
// defense behind the oracle's read-before-write gate: a concurrent duplicate
// insert becomes a no-op instead of a second row.
func (s *pgStore) CreateLog(ctx context.Context, record *schema.TransactionRequest) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ref_number"}, {Name: "transaction_status"}},
			DoNothing: true,
		}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to create transaction log: %w", err)
	}

	return nil
}

// CreateNotification inserts a new notification record
func (s *pgStore) CreateNotification(ctx context.Context, notification *schema.Notification) error {
	err := s.db.WithContext(ctx).Create(notification).Error
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// RecordChainEvent journals a received chain event with its raw payload
func (s *pgStore) RecordChainEvent(ctx context.Context, event *schema.ChainEvent) error {
	err := s.db.WithContext(ctx).Create(event).Error
	if err != nil {
		return fmt.Errorf("failed to record chain event: %w", err)
	}

	return nil
}

// GetBlockCursor retrieves the last processed block number for a chain
func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	key := fmt.Sprintf("block_cursor:%s", chain)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number for a chain
func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	key := fmt.Sprintf("block_cursor:%s", chain)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: strconv.FormatUint(blockNumber, 10),
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}

	return nil
}
