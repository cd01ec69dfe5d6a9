package substrate

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"

	"github.com/genelink-network/ledger-indexer/internal/domain"
)

// Decoder turns a raw System.Events storage value into decoded chain events.
// Only the pallets this pipeline indexes are decoded; everything else in the
// record set is dropped.
//
//go:generate mockgen -source=decoder.go -destination=../../mocks/decoder.go -package=mocks -mock_names=Decoder=MockEventDecoder
type Decoder interface {
	Decode(meta *types.Metadata, data []byte, blockNumber uint64, at time.Time) ([]*domain.ChainEvent, error)
}

// currencyNames maps the chain's currency enum to its code. Index 0 is the
// native token.
var currencyNames = [...]string{"GLNK", "DAI", "ETH", "USDT"}

// orderStatusNames maps the order lifecycle enum on chain.
var orderStatusNames = [...]string{"Unpaid", "Paid", "Fulfilled", "Refunded", "Cancelled", "Failed"}

// sampleStatusNames maps the DNA sample quality-control enum on chain.
var sampleStatusNames = [...]string{"Registered", "Arrived", "Rejected", "QualityControlled", "WetWork", "ResultReady"}

// stakeStatusNames maps the provider staking enum on chain.
var stakeStatusNames = [...]string{"Unstaked", "Staked", "WaitingForUnstaked"}

func enumName(table []string, index types.U8) string {
	if int(index) < len(table) {
		return table[index]
	}
	return fmt.Sprintf("Unknown(%d)", index)
}

// SCALE mirrors of the chain-side structs. Event argument layout follows the
// pallet definitions; every event struct starts with Phase and ends with
// Topics as DecodeEventRecords requires.

type scalePrice struct {
	Component types.Bytes
	Value     types.U128
}

type scaleOrder struct {
	ID                   types.Hash
	ServiceID            types.Hash
	CustomerID           types.AccountID
	CustomerBoxPublicKey types.H256
	SellerID             types.AccountID
	DNASampleTrackingID  types.Bytes
	Currency             types.U8
	Prices               []scalePrice
	AdditionalPrices     []scalePrice
	Status               types.U8
	CreatedAt            types.U64
	UpdatedAt            types.U64
}

type scaleGeneticAnalysisOrder struct {
	ID                        types.Hash
	ServiceID                 types.Hash
	CustomerID                types.AccountID
	CustomerBoxPublicKey      types.H256
	SellerID                  types.AccountID
	GeneticDataID             types.Hash
	GeneticAnalysisTrackingID types.Bytes
	Currency                  types.U8
	Prices                    []scalePrice
	AdditionalPrices          []scalePrice
	Status                    types.U8
	CreatedAt                 types.U64
	UpdatedAt                 types.U64
}

type scaleGeneticAnalystServiceInfo struct {
	Name             types.Bytes
	PricesByCurrency []scalePrice
	ExpectedDuration types.Bytes
	Description      types.Bytes
	TestResultSample types.Bytes
}

type scaleGeneticAnalystService struct {
	ID      types.Hash
	OwnerID types.AccountID
	Info    scaleGeneticAnalystServiceInfo
}

type scaleDNASample struct {
	TrackingID types.Bytes
	LabID      types.AccountID
	OwnerID    types.AccountID
	Status     types.U8
	CreatedAt  types.U64
	UpdatedAt  types.U64
}

type scaleLabInfo struct {
	Name    types.Bytes
	Email   types.Bytes
	Country types.Bytes
	Region  types.Bytes
	City    types.Bytes
	Address types.Bytes
}

type scaleLab struct {
	AccountID   types.AccountID
	Info        scaleLabInfo
	StakeAmount types.U128
	StakeStatus types.U8
	UnstakeAt   types.U64
}

type orderEvent struct {
	Phase  types.Phase
	Order  scaleOrder
	Topics []types.Hash
}

type geneticAnalysisOrderEvent struct {
	Phase  types.Phase
	Order  scaleGeneticAnalysisOrder
	Topics []types.Hash
}

type geneticAnalystServiceEvent struct {
	Phase   types.Phase
	Service scaleGeneticAnalystService
	Owner   types.AccountID
	Topics  []types.Hash
}

type dnaSampleEvent struct {
	Phase  types.Phase
	Sample scaleDNASample
	Topics []types.Hash
}

type labEvent struct {
	Phase  types.Phase
	Lab    scaleLab
	Topics []types.Hash
}

// chainEvents embeds the standard frame event records and adds the pallets
// this pipeline indexes.
type chainEvents struct {
	types.EventRecords
	Orders_OrderCreated                                 []orderEvent                 //nolint:stylecheck
	Orders_OrderPaid                                    []orderEvent                 //nolint:stylecheck
	Orders_OrderFulfilled                               []orderEvent                 //nolint:stylecheck
	Orders_OrderRefunded                                []orderEvent                 //nolint:stylecheck
	Orders_OrderCancelled                               []orderEvent                 //nolint:stylecheck
	GeneticAnalysisOrders_GeneticAnalysisOrderCreated   []geneticAnalysisOrderEvent  //nolint:stylecheck
	GeneticAnalysisOrders_GeneticAnalysisOrderPaid      []geneticAnalysisOrderEvent  //nolint:stylecheck
	GeneticAnalysisOrders_GeneticAnalysisOrderFulfilled []geneticAnalysisOrderEvent  //nolint:stylecheck
	GeneticAnalysisOrders_GeneticAnalysisOrderRefunded  []geneticAnalysisOrderEvent  //nolint:stylecheck
	GeneticAnalysisOrders_GeneticAnalysisOrderCancelled []geneticAnalysisOrderEvent  //nolint:stylecheck
	GeneticAnalystServices_GeneticAnalystServiceCreated []geneticAnalystServiceEvent //nolint:stylecheck
	GeneticTesting_DnaSampleRejected                    []dnaSampleEvent             //nolint:stylecheck
	Labs_LabStakeSuccessful                             []labEvent                   //nolint:stylecheck
	Labs_LabUnstakeSuccessful                           []labEvent                   //nolint:stylecheck
}

type eventDecoder struct{}

// NewDecoder creates the default event decoder
func NewDecoder() Decoder {
	return &eventDecoder{}
}

// Decode decodes one System.Events storage value into chain events.
func (d *eventDecoder) Decode(meta *types.Metadata, data []byte, blockNumber uint64, at time.Time) ([]*domain.ChainEvent, error) {
	var records chainEvents
	if err := types.EventRecordsRaw(data).DecodeEventRecords(meta, &records); err != nil {
		return nil, fmt.Errorf("failed to decode event records at block %d: %w", blockNumber, err)
	}

	var events []*domain.ChainEvent

	appendOrders := func(eventType domain.EventType, recs []orderEvent) {
		for i := range recs {
			events = append(events, makeEvent(eventType, decodeOrder(&recs[i].Order), blockNumber, at))
		}
	}
	appendOrders(domain.EventTypeOrderCreated, records.Orders_OrderCreated)
	appendOrders(domain.EventTypeOrderPaid, records.Orders_OrderPaid)
	appendOrders(domain.EventTypeOrderFulfilled, records.Orders_OrderFulfilled)
	appendOrders(domain.EventTypeOrderRefunded, records.Orders_OrderRefunded)
	appendOrders(domain.EventTypeOrderCancelled, records.Orders_OrderCancelled)

	appendGeneticAnalysisOrders := func(eventType domain.EventType, recs []geneticAnalysisOrderEvent) {
		for i := range recs {
			events = append(events, makeEvent(eventType, decodeGeneticAnalysisOrder(&recs[i].Order), blockNumber, at))
		}
	}
	appendGeneticAnalysisOrders(domain.EventTypeGeneticAnalysisOrderCreated, records.GeneticAnalysisOrders_GeneticAnalysisOrderCreated)
	appendGeneticAnalysisOrders(domain.EventTypeGeneticAnalysisOrderPaid, records.GeneticAnalysisOrders_GeneticAnalysisOrderPaid)
	appendGeneticAnalysisOrders(domain.EventTypeGeneticAnalysisOrderFulfilled, records.GeneticAnalysisOrders_GeneticAnalysisOrderFulfilled)
	appendGeneticAnalysisOrders(domain.EventTypeGeneticAnalysisOrderRefunded, records.GeneticAnalysisOrders_GeneticAnalysisOrderRefunded)
	appendGeneticAnalysisOrders(domain.EventTypeGeneticAnalysisOrderCancelled, records.GeneticAnalysisOrders_GeneticAnalysisOrderCancelled)

	for i := range records.GeneticAnalystServices_GeneticAnalystServiceCreated {
		rec := &records.GeneticAnalystServices_GeneticAnalystServiceCreated[i]
		events = append(events, makeEvent(domain.EventTypeGeneticAnalystServiceCreated, decodeGeneticAnalystService(&rec.Service), blockNumber, at))
	}
	for i := range records.GeneticTesting_DnaSampleRejected {
		rec := &records.GeneticTesting_DnaSampleRejected[i]
		events = append(events, makeEvent(domain.EventTypeDNASampleRejected, decodeDNASample(&rec.Sample), blockNumber, at))
	}
	for i := range records.Labs_LabStakeSuccessful {
		rec := &records.Labs_LabStakeSuccessful[i]
		events = append(events, makeEvent(domain.EventTypeLabStaked, decodeLab(&rec.Lab), blockNumber, at))
	}
	for i := range records.Labs_LabUnstakeSuccessful {
		rec := &records.Labs_LabUnstakeSuccessful[i]
		events = append(events, makeEvent(domain.EventTypeLabUnstaked, decodeLab(&rec.Lab), blockNumber, at))
	}

	return events, nil
}

func makeEvent(eventType domain.EventType, entity any, blockNumber uint64, at time.Time) *domain.ChainEvent {
	payload, err := json.Marshal(entity)
	if err != nil {
		// Entities are plain structs; marshalling cannot fail in practice.
		payload = json.RawMessage(`{}`)
	}

	return &domain.ChainEvent{
		EventType:   eventType,
		Payload:     payload,
		BlockNumber: blockNumber,
		Timestamp:   at,
	}
}

func hashHex(h types.Hash) string {
	return codec.HexEncodeToString(h[:])
}

func accountHex(id types.AccountID) string {
	return codec.HexEncodeToString(id[:])
}

func moment(ms types.U64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

func decodePrices(prices []scalePrice) []domain.Price {
	out := make([]domain.Price, 0, len(prices))
	for _, p := range prices {
		out = append(out, domain.Price{
			Component: string(p.Component),
			Value:     p.Value.String(),
		})
	}
	return out
}

func decodeOrder(o *scaleOrder) *domain.Order {
	return &domain.Order{
		ID:                   hashHex(o.ID),
		ServiceID:            hashHex(o.ServiceID),
		CustomerID:           accountHex(o.CustomerID),
		CustomerBoxPublicKey: codec.HexEncodeToString(o.CustomerBoxPublicKey[:]),
		SellerID:             accountHex(o.SellerID),
		DNASampleTrackingID:  string(o.DNASampleTrackingID),
		Currency:             enumName(currencyNames[:], o.Currency),
		Prices:               decodePrices(o.Prices),
		AdditionalPrices:     decodePrices(o.AdditionalPrices),
		Status:               enumName(orderStatusNames[:], o.Status),
		CreatedAt:            moment(o.CreatedAt),
		UpdatedAt:            moment(o.UpdatedAt),
	}
}

func decodeGeneticAnalysisOrder(o *scaleGeneticAnalysisOrder) *domain.GeneticAnalysisOrder {
	return &domain.GeneticAnalysisOrder{
		ID:                        hashHex(o.ID),
		ServiceID:                 hashHex(o.ServiceID),
		CustomerID:                accountHex(o.CustomerID),
		CustomerBoxPublicKey:      codec.HexEncodeToString(o.CustomerBoxPublicKey[:]),
		SellerID:                  accountHex(o.SellerID),
		GeneticDataID:             hashHex(o.GeneticDataID),
		GeneticAnalysisTrackingID: string(o.GeneticAnalysisTrackingID),
		Currency:                  enumName(currencyNames[:], o.Currency),
		Prices:                    decodePrices(o.Prices),
		AdditionalPrices:          decodePrices(o.AdditionalPrices),
		Status:                    enumName(orderStatusNames[:], o.Status),
		CreatedAt:                 moment(o.CreatedAt),
		UpdatedAt:                 moment(o.UpdatedAt),
	}
}

func decodeGeneticAnalystService(s *scaleGeneticAnalystService) *domain.GeneticAnalystService {
	return &domain.GeneticAnalystService{
		ID:      hashHex(s.ID),
		OwnerID: accountHex(s.OwnerID),
		Info: domain.GeneticAnalystServiceInfo{
			Name:             string(s.Info.Name),
			PricesByCurrency: decodePrices(s.Info.PricesByCurrency),
			ExpectedDuration: string(s.Info.ExpectedDuration),
			Description:      string(s.Info.Description),
			TestResultSample: string(s.Info.TestResultSample),
		},
	}
}

func decodeDNASample(s *scaleDNASample) *domain.DNASample {
	return &domain.DNASample{
		TrackingID: string(s.TrackingID),
		LabID:      accountHex(s.LabID),
		OwnerID:    accountHex(s.OwnerID),
		Status:     enumName(sampleStatusNames[:], s.Status),
		CreatedAt:  moment(s.CreatedAt),
		UpdatedAt:  moment(s.UpdatedAt),
	}
}

func decodeLab(l *scaleLab) *domain.Lab {
	return &domain.Lab{
		AccountID: accountHex(l.AccountID),
		Info: domain.LabInfo{
			Name:    string(l.Info.Name),
			Email:   string(l.Info.Email),
			Country: string(l.Info.Country),
			Region:  string(l.Info.Region),
			City:    string(l.Info.City),
			Address: string(l.Info.Address),
		},
		StakeAmount: l.StakeAmount.String(),
		StakeStatus: enumName(stakeStatusNames[:], l.StakeStatus),
		UnstakeAt:   moment(l.UnstakeAt),
	}
}
