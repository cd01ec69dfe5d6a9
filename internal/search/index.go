package search

import (
	"context"
	"encoding/json"
)

// Index names owned by the pipeline.
const (
	IndexOrders                 = "orders"
	IndexGeneticAnalysisOrders  = "genetic-analysis-orders"
	IndexGeneticAnalystServices = "genetic-analysts-services"
	IndexGeneticAnalysts        = "genetic-analysts"
)

// Index defines the interface for the search-index sink. Writes wait for the
// index refresh so documents are visible to subsequent reads within the
// pipeline (read-your-writes at the cost of latency).
//
//go:generate mockgen -source=index.go -destination=../mocks/search.go -package=mocks -mock_names=Index=MockIndex
type Index interface {
	// Index creates or replaces the document under id (creation semantics)
	Index(ctx context.Context, index, id string, doc any) error
	// Update applies the document as a partial update with upsert semantics
	Update(ctx context.Context, index, id string, doc any) error
	// GetByID retrieves a document source by id. Returns domain.ErrNotFound
	// if no document exists.
	GetByID(ctx context.Context, index, id string) (json.RawMessage, error)
}
