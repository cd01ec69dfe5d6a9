package projector

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/logger"
	"github.com/genelink-network/ledger-indexer/internal/search"
)

// emptyObject is the degraded value embedded when a reference lookup misses.
var emptyObject = json.RawMessage(`{}`)

// OrderDocument is the denormalized read model of an order.
type OrderDocument struct {
	ID                   string               `json:"id"`
	ServiceID            string               `json:"service_id"`
	CustomerID           string               `json:"customer_id"`
	CustomerBoxPublicKey string               `json:"customer_box_public_key"`
	SellerID             string               `json:"seller_id"`
	DNASampleTrackingID  string               `json:"dna_sample_tracking_id"`
	Currency             string               `json:"currency"`
	Prices               []domain.Price       `json:"prices"`
	AdditionalPrices     []domain.Price       `json:"additional_prices"`
	Status               string               `json:"status"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
	BlockMetadata        domain.BlockMetadata `json:"block_metadata"`
}

// GeneticAnalysisOrderDocument is the denormalized read model of a
// genetic-analysis order, with reference snapshots joined at projection time.
type GeneticAnalysisOrderDocument struct {
	ID                        string               `json:"id"`
	ServiceID                 string               `json:"service_id"`
	CustomerID                string               `json:"customer_id"`
	CustomerBoxPublicKey      string               `json:"customer_box_public_key"`
	SellerID                  string               `json:"seller_id"`
	GeneticDataID             string               `json:"genetic_data_id"`
	GeneticAnalysisTrackingID string               `json:"genetic_analysis_tracking_id"`
	Currency                  string               `json:"currency"`
	Prices                    []domain.Price       `json:"prices"`
	AdditionalPrices          []domain.Price       `json:"additional_prices"`
	Status                    string               `json:"status"`
	CreatedAt                 time.Time            `json:"created_at"`
	UpdatedAt                 time.Time            `json:"updated_at"`
	ServiceInfo               json.RawMessage      `json:"service_info"`
	GeneticAnalystInfo        json.RawMessage      `json:"genetic_analyst_info"`
	BlockMetadata             domain.BlockMetadata `json:"block_metadata"`
}

// Projector computes read-model documents and upserts them into the search
// index. Projection is a pure function of the entity snapshot and the
// referenced documents at projection time, so repeated application is a no-op
// overwrite; it needs no idempotency gate of its own.
type Projector struct {
	index search.Index
}

// NewProjector creates a new read-model projector
func NewProjector(index search.Index) *Projector {
	return &Projector{index: index}
}

// BuildOrderDocument flattens an order into its read-model document.
func BuildOrderDocument(order *domain.Order, meta domain.BlockMetadata) OrderDocument {
	return OrderDocument{
		ID:                   order.ID,
		ServiceID:            order.ServiceID,
		CustomerID:           order.CustomerID,
		CustomerBoxPublicKey: order.CustomerBoxPublicKey,
		SellerID:             order.SellerID,
		DNASampleTrackingID:  order.DNASampleTrackingID,
		Currency:             order.Currency,
		Prices:               order.Prices,
		AdditionalPrices:     order.AdditionalPrices,
		Status:               order.Status,
		CreatedAt:            order.CreatedAt,
		UpdatedAt:            order.UpdatedAt,
		BlockMetadata:        meta,
	}
}

// BuildGeneticAnalysisOrderDocument flattens a genetic-analysis order with
// its joined reference snapshots into its read-model document.
func BuildGeneticAnalysisOrderDocument(
	order *domain.GeneticAnalysisOrder,
	meta domain.BlockMetadata,
	serviceInfo json.RawMessage,
	analystInfo json.RawMessage,
) GeneticAnalysisOrderDocument {
	if len(serviceInfo) == 0 {
		serviceInfo = emptyObject
	}
	if len(analystInfo) == 0 {
		analystInfo = emptyObject
	}

	return GeneticAnalysisOrderDocument{
		ID:                        order.ID,
		ServiceID:                 order.ServiceID,
		CustomerID:                order.CustomerID,
		CustomerBoxPublicKey:      order.CustomerBoxPublicKey,
		SellerID:                  order.SellerID,
		GeneticDataID:             order.GeneticDataID,
		GeneticAnalysisTrackingID: order.GeneticAnalysisTrackingID,
		Currency:                  order.Currency,
		Prices:                    order.Prices,
		AdditionalPrices:          order.AdditionalPrices,
		Status:                    order.Status,
		CreatedAt:                 order.CreatedAt,
		UpdatedAt:                 order.UpdatedAt,
		ServiceInfo:               serviceInfo,
		GeneticAnalystInfo:        analystInfo,
		BlockMetadata:             meta,
	}
}

// ProjectOrderCreated writes the initial order document (creation semantics).
func (p *Projector) ProjectOrderCreated(ctx context.Context, order *domain.Order, meta domain.BlockMetadata) error {
	doc := BuildOrderDocument(order, meta)
	return p.index.Index(ctx, search.IndexOrders, order.ID, doc)
}

// ProjectOrderUpdated upserts the order document for a later transition.
func (p *Projector) ProjectOrderUpdated(ctx context.Context, order *domain.Order, meta domain.BlockMetadata) error {
	doc := BuildOrderDocument(order, meta)
	return p.index.Update(ctx, search.IndexOrders, order.ID, doc)
}

// ProjectGeneticAnalysisOrderCreated writes the initial genetic-analysis-order
// document, embedding the public info of the referenced service and analyst.
// A missing reference degrades to an empty object.
func (p *Projector) ProjectGeneticAnalysisOrderCreated(ctx context.Context, order *domain.GeneticAnalysisOrder, meta domain.BlockMetadata) error {
	serviceInfo := p.lookupInfo(ctx, search.IndexGeneticAnalystServices, order.ServiceID)
	analystInfo := p.lookupInfo(ctx, search.IndexGeneticAnalysts, order.SellerID)

	doc := BuildGeneticAnalysisOrderDocument(order, meta, serviceInfo, analystInfo)
	return p.index.Index(ctx, search.IndexGeneticAnalysisOrders, order.ID, doc)
}

// ProjectGeneticAnalysisOrderUpdated upserts the genetic-analysis-order
// document for a later transition. Reference snapshots taken at creation are
// left untouched by the partial update.
func (p *Projector) ProjectGeneticAnalysisOrderUpdated(ctx context.Context, order *domain.GeneticAnalysisOrder, meta domain.BlockMetadata) error {
	doc := struct {
		ID            string               `json:"id"`
		Status        string               `json:"status"`
		Currency      string               `json:"currency"`
		Prices        []domain.Price       `json:"prices"`
		UpdatedAt     time.Time            `json:"updated_at"`
		BlockMetadata domain.BlockMetadata `json:"block_metadata"`
	}{
		ID:            order.ID,
		Status:        order.Status,
		Currency:      order.Currency,
		Prices:        order.Prices,
		UpdatedAt:     order.UpdatedAt,
		BlockMetadata: meta,
	}

	return p.index.Update(ctx, search.IndexGeneticAnalysisOrders, order.ID, doc)
}

// lookupInfo fetches the public info subsection of a reference document.
// Any miss or failure degrades to an empty object; a reference gap must not
// fail the whole projection.
func (p *Projector) lookupInfo(ctx context.Context, index, id string) json.RawMessage {
	source, err := p.index.GetByID(ctx, index, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.WarnCtx(ctx, "Reference lookup failed, embedding empty object",
				zap.String("index", index), zap.String("id", id), zap.Error(err))
		}
		return emptyObject
	}

	var doc struct {
		Info json.RawMessage `json:"info"`
	}
	if err := json.Unmarshal(source, &doc); err != nil || len(doc.Info) == 0 {
		return emptyObject
	}

	return doc.Info
}
