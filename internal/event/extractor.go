package event

import (
	"encoding/json"

	"github.com/genelink-network/ledger-indexer/internal/domain"
)

// Identity is the stable identity derived from a raw decoded event: the
// correlation key against every downstream sink.
type Identity struct {
	EntityID    string
	Status      domain.TransactionStatus
	BlockNumber uint64
}

// orderStatusByEvent maps order event types to their transaction-log status code.
var orderStatusByEvent = map[domain.EventType]domain.TransactionStatus{
	domain.EventTypeOrderCreated:   domain.OrderStatusCreated,
	domain.EventTypeOrderPaid:      domain.OrderStatusPaid,
	domain.EventTypeOrderFulfilled: domain.OrderStatusFulfilled,
	domain.EventTypeOrderRefunded:  domain.OrderStatusRefunded,
	domain.EventTypeOrderCancelled: domain.OrderStatusCancelled,
}

// geneticAnalysisStatusByEvent maps genetic-analysis-order event types to their status code.
var geneticAnalysisStatusByEvent = map[domain.EventType]domain.TransactionStatus{
	domain.EventTypeGeneticAnalysisOrderCreated:   domain.GeneticAnalysisOrderStatusCreated,
	domain.EventTypeGeneticAnalysisOrderPaid:      domain.GeneticAnalysisOrderStatusPaid,
	domain.EventTypeGeneticAnalysisOrderFulfilled: domain.GeneticAnalysisOrderStatusFulfilled,
	domain.EventTypeGeneticAnalysisOrderRefunded:  domain.GeneticAnalysisOrderStatusRefunded,
	domain.EventTypeGeneticAnalysisOrderCancelled: domain.GeneticAnalysisOrderStatusCancelled,
}

// labStakeStatusByEvent maps lab staking event types to their status code.
var labStakeStatusByEvent = map[domain.EventType]domain.TransactionStatus{
	domain.EventTypeLabStaked:   domain.LabStakeStatusStaked,
	domain.EventTypeLabUnstaked: domain.LabStakeStatusUnstaked,
}

// ExtractOrder normalizes an order event payload and derives its identity.
func ExtractOrder(e *domain.ChainEvent) (*domain.Order, Identity, error) {
	status, ok := orderStatusByEvent[e.EventType]
	if !ok {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "not an order event", nil)
	}

	var order domain.Order
	if err := json.Unmarshal(e.Payload, &order); err != nil {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "unparseable payload", err)
	}

	if order.ID == "" {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing order id", nil)
	}
	if order.CustomerID == "" {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing customer id", nil)
	}
	if _, ok := domain.CanonicalAmount(order.Prices); !ok {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing or invalid price tuple", nil)
	}

	return &order, Identity{
		EntityID:    order.ID,
		Status:      status,
		BlockNumber: e.BlockNumber,
	}, nil
}

// ExtractGeneticAnalysisOrder normalizes a genetic-analysis-order event payload.
func ExtractGeneticAnalysisOrder(e *domain.ChainEvent) (*domain.GeneticAnalysisOrder, Identity, error) {
	status, ok := geneticAnalysisStatusByEvent[e.EventType]
	if !ok {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "not a genetic-analysis-order event", nil)
	}

	var order domain.GeneticAnalysisOrder
	if err := json.Unmarshal(e.Payload, &order); err != nil {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "unparseable payload", err)
	}

	if order.ID == "" {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing order id", nil)
	}
	if order.CustomerID == "" {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing customer id", nil)
	}
	if _, ok := domain.CanonicalAmount(order.Prices); !ok {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing or invalid price tuple", nil)
	}

	return &order, Identity{
		EntityID:    order.ID,
		Status:      status,
		BlockNumber: e.BlockNumber,
	}, nil
}

// ExtractGeneticAnalystService normalizes a genetic-analyst-service event
// payload. Service events carry no lifecycle status: they only notify.
func ExtractGeneticAnalystService(e *domain.ChainEvent) (*domain.GeneticAnalystService, Identity, error) {
	var service domain.GeneticAnalystService
	if err := json.Unmarshal(e.Payload, &service); err != nil {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "unparseable payload", err)
	}

	if service.OwnerID == "" {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing owner id", nil)
	}
	if service.Info.Name == "" {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing service name", nil)
	}

	return &service, Identity{
		EntityID:    service.ID,
		BlockNumber: e.BlockNumber,
	}, nil
}

// ExtractDNASample normalizes a DNA-sample event payload. The tracking id is
// the correlation key for sample notifications.
func ExtractDNASample(e *domain.ChainEvent) (*domain.DNASample, Identity, error) {
	var sample domain.DNASample
	if err := json.Unmarshal(e.Payload, &sample); err != nil {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "unparseable payload", err)
	}

	if sample.TrackingID == "" {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing tracking id", nil)
	}
	if sample.OwnerID == "" {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing owner id", nil)
	}

	return &sample, Identity{
		EntityID:    sample.TrackingID,
		BlockNumber: e.BlockNumber,
	}, nil
}

// ExtractLab normalizes a lab staking event payload.
func ExtractLab(e *domain.ChainEvent) (*domain.Lab, Identity, error) {
	status, ok := labStakeStatusByEvent[e.EventType]
	if !ok {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "not a lab staking event", nil)
	}

	var lab domain.Lab
	if err := json.Unmarshal(e.Payload, &lab); err != nil {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "unparseable payload", err)
	}

	if lab.AccountID == "" {
		return nil, Identity{}, domain.NewMalformedEventError(e.EventType, "missing account id", nil)
	}

	return &lab, Identity{
		EntityID:    lab.AccountID,
		Status:      status,
		BlockNumber: e.BlockNumber,
	}, nil
}
