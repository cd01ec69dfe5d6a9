package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"

	"github.com/genelink-network/ledger-indexer/internal/domain"
)

// Config holds Elasticsearch connection configuration
type Config struct {
	Addresses []string
	Username  string
	Password  string
}

type elasticIndex struct {
	client *elasticsearch.Client
}

// NewElasticIndex creates a search index backed by Elasticsearch
func NewElasticIndex(cfg Config) (Index, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	return &elasticIndex{client: client}, nil
}

// Index creates or replaces the document under id
func (e *elasticIndex) Index(ctx context.Context, index, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	res, err := e.client.Index(index, bytes.NewReader(body),
		e.client.Index.WithContext(ctx),
		e.client.Index.WithDocumentID(id),
		e.client.Index.WithRefresh("wait_for"),
	)
	if err != nil {
		return fmt.Errorf("failed to index document %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to index document %s/%s: %s", index, id, res.String())
	}

	return nil
}

// Update applies the document as a partial update with upsert semantics
func (e *elasticIndex) Update(ctx context.Context, index, id string, doc any) error {
	body, err := json.Marshal(map[string]any{
		"doc":           doc,
		"doc_as_upsert": true,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal update body: %w", err)
	}

	res, err := e.client.Update(index, id, bytes.NewReader(body),
		e.client.Update.WithContext(ctx),
		e.client.Update.WithRefresh("wait_for"),
	)
	if err != nil {
		return fmt.Errorf("failed to update document %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("failed to update document %s/%s: %s", index, id, res.String())
	}

	return nil
}

// GetByID retrieves a document source by id
func (e *elasticIndex) GetByID(ctx context.Context, index, id string) (json.RawMessage, error) {
	res, err := e.client.Get(index, id, e.client.Get.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return nil, domain.ErrNotFound
	}
	if res.IsError() {
		return nil, fmt.Errorf("failed to get document %s/%s: %s", index, id, res.String())
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read get response: %w", err)
	}

	var envelope struct {
		Found  bool            `json:"found"`
		Source json.RawMessage `json:"_source"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode get response: %w", err)
	}
	if !envelope.Found {
		return nil, domain.ErrNotFound
	}

	return envelope.Source, nil
}
