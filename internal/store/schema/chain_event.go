package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/genelink-network/ledger-indexer/internal/domain"
)

// ChainEvent represents the chain_events table - a best-effort audit journal
// of every event the consumer received, raw payload included, for replay
// analysis and debugging.
type ChainEvent struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventType is the normalized event type
	EventType domain.EventType `gorm:"column:event_type;not null;type:text;index:idx_chain_events_type_block,priority:1"`
	// RefNumber is the entity id the event refers to
	RefNumber string `gorm:"column:ref_number;not null;type:text;index"`
	// BlockNumber is the chain position the event was observed at
	BlockNumber uint64 `gorm:"column:block_number;not null;type:bigint;index:idx_chain_events_type_block,priority:2"`
	// Raw contains the complete event payload as JSON
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is the ingestion timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ChainEvent model
func (ChainEvent) TableName() string {
	return "chain_events"
}
