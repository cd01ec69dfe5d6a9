package domain

import (
	"encoding/json"
	"time"
)

// EventType identifies a decoded chain event. One reconciliation handler
// exists per event type.
type EventType string

const (
	EventTypeOrderCreated   EventType = "order_created"
	EventTypeOrderPaid      EventType = "order_paid"
	EventTypeOrderFulfilled EventType = "order_fulfilled"
	EventTypeOrderRefunded  EventType = "order_refunded"
	EventTypeOrderCancelled EventType = "order_cancelled"

	EventTypeGeneticAnalysisOrderCreated   EventType = "genetic_analysis_order_created"
	EventTypeGeneticAnalysisOrderPaid      EventType = "genetic_analysis_order_paid"
	EventTypeGeneticAnalysisOrderFulfilled EventType = "genetic_analysis_order_fulfilled"
	EventTypeGeneticAnalysisOrderRefunded  EventType = "genetic_analysis_order_refunded"
	EventTypeGeneticAnalysisOrderCancelled EventType = "genetic_analysis_order_cancelled"

	EventTypeGeneticAnalystServiceCreated EventType = "genetic_analyst_service_created"
	EventTypeDNASampleRejected            EventType = "dna_sample_rejected"

	EventTypeLabStaked   EventType = "lab_staked"
	EventTypeLabUnstaked EventType = "lab_unstaked"
)

// IsValidEventType checks if an event type is one the pipeline knows how to handle.
func IsValidEventType(t EventType) bool {
	switch t {
	case EventTypeOrderCreated, EventTypeOrderPaid, EventTypeOrderFulfilled,
		EventTypeOrderRefunded, EventTypeOrderCancelled,
		EventTypeGeneticAnalysisOrderCreated, EventTypeGeneticAnalysisOrderPaid,
		EventTypeGeneticAnalysisOrderFulfilled, EventTypeGeneticAnalysisOrderRefunded,
		EventTypeGeneticAnalysisOrderCancelled,
		EventTypeGeneticAnalystServiceCreated, EventTypeDNASampleRejected,
		EventTypeLabStaked, EventTypeLabUnstaked:
		return true
	}
	return false
}

// TransactionType is the coarse category stored with every transaction-log record.
type TransactionType int

const (
	TransactionTypeOrder           TransactionType = 1
	TransactionTypeGeneticAnalysis TransactionType = 3
	TransactionTypeLabStake        TransactionType = 6
)

// TransactionStatus is the fine-grained lifecycle code of an entity. The chain
// owns the transition graph; the pipeline treats the code as an opaque fact.
type TransactionStatus int

const (
	OrderStatusCreated   TransactionStatus = 1
	OrderStatusPaid      TransactionStatus = 2
	OrderStatusFulfilled TransactionStatus = 3
	OrderStatusRefunded  TransactionStatus = 4
	OrderStatusCancelled TransactionStatus = 5

	GeneticAnalysisOrderStatusCreated   TransactionStatus = 13
	GeneticAnalysisOrderStatusPaid      TransactionStatus = 14
	GeneticAnalysisOrderStatusFulfilled TransactionStatus = 15
	GeneticAnalysisOrderStatusRefunded  TransactionStatus = 16
	GeneticAnalysisOrderStatusCancelled TransactionStatus = 17

	LabStakeStatusStaked   TransactionStatus = 1
	LabStakeStatusUnstaked TransactionStatus = 2
)

// ParentIDSentinel marks the first transaction-log record of an entity's chain.
const ParentIDSentinel uint64 = 0

// BlockMetadata is the chain position attached to every event, stored with
// all derived records for auditability and replay detection.
type BlockMetadata struct {
	BlockNumber uint64 `json:"block_number"`
}

// ChainEvent is a normalized chain event as published to NATS by the emitter.
// Payload holds the typed entity encoded as JSON; the metadata extractor
// unmarshals it based on EventType.
type ChainEvent struct {
	EventType   EventType       `json:"event_type"`
	Payload     json.RawMessage `json:"payload"`
	BlockNumber uint64          `json:"block_number"`
	Timestamp   time.Time       `json:"timestamp"`
}

// BlockMetadata returns the block metadata carried by the event.
func (e *ChainEvent) BlockMetadata() BlockMetadata {
	return BlockMetadata{BlockNumber: e.BlockNumber}
}

// Valid checks the minimal shape every event must have before dispatch.
func (e *ChainEvent) Valid() bool {
	return IsValidEventType(e.EventType) && len(e.Payload) > 0
}
