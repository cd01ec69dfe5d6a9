package schema

import (
	"time"

	"github.com/genelink-network/ledger-indexer/internal/domain"
)

// TransactionRequest represents the transaction_requests table - the
// append-only causal log of entity status transitions used for financial and
// audit reconciliation. Rows are never updated or deleted.
type TransactionRequest struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ParentID references the most recent prior record for the same entity,
	// or 0 for the first record of the chain
	ParentID uint64 `gorm:"column:parent_id;not null;default:0"`
	// RefNumber is the chain-assigned entity id this record belongs to
	RefNumber string `gorm:"column:ref_number;not null;type:text;uniqueIndex:idx_transaction_requests_ref_status,priority:1;index:idx_transaction_requests_ref"`
	// TransactionType is the coarse category (order=1, genetic-analysis=3, lab-stake=6)
	TransactionType domain.TransactionType `gorm:"column:transaction_type;not null"`
	// TransactionStatus is the fine-grained lifecycle code of the transition
	TransactionStatus domain.TransactionStatus `gorm:"column:transaction_status;not null;uniqueIndex:idx_transaction_requests_ref_status,priority:2"`
	// Amount is the canonical price converted by the fixed coin divisor
	Amount float64 `gorm:"column:amount;not null"`
	// Currency is the upper-cased chain currency code
	Currency string `gorm:"column:currency;not null;type:text"`
	// Address identifies the party the transition is accounted against
	Address string `gorm:"column:address;not null;type:text"`
	// BlockNumber is the chain position at which the transition was observed
	BlockNumber uint64 `gorm:"column:block_number;not null;type:bigint"`
	// CreatedAt is the chain-supplied timestamp of the transition
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the TransactionRequest model
func (TransactionRequest) TableName() string {
	return "transaction_requests"
}
