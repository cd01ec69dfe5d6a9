package projector_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/logger"
	"github.com/genelink-network/ledger-indexer/internal/mocks"
	"github.com/genelink-network/ledger-indexer/internal/projector"
	"github.com/genelink-network/ledger-indexer/internal/search"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:         "0xorder1",
		ServiceID:  "0xservice1",
		CustomerID: "5Customer",
		SellerID:   "5Lab",
		Currency:   "DAI",
		Prices:     []domain.Price{{Component: "testing_price", Value: "2000000000000000000"}},
		Status:     "Paid",
		CreatedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func testGeneticAnalysisOrder() *domain.GeneticAnalysisOrder {
	return &domain.GeneticAnalysisOrder{
		ID:         "0xga1",
		ServiceID:  "0xgaservice1",
		CustomerID: "5Customer",
		SellerID:   "5Analyst",
		Currency:   "USDT",
		Prices:     []domain.Price{{Value: "5000000000000000000"}},
		Status:     "Pending",
		CreatedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testMeta() domain.BlockMetadata {
	return domain.BlockMetadata{BlockNumber: 100}
}

func TestBuildOrderDocument(t *testing.T) {
	order := testOrder()
	doc := projector.BuildOrderDocument(order, testMeta())

	assert.Equal(t, order.ID, doc.ID)
	assert.Equal(t, order.ServiceID, doc.ServiceID)
	assert.Equal(t, order.CustomerID, doc.CustomerID)
	assert.Equal(t, order.SellerID, doc.SellerID)
	assert.Equal(t, order.Status, doc.Status)
	assert.Equal(t, order.Prices, doc.Prices)
	assert.Equal(t, uint64(100), doc.BlockMetadata.BlockNumber)
}

func TestBuildGeneticAnalysisOrderDocument_DegradesMissingReferences(t *testing.T) {
	order := testGeneticAnalysisOrder()

	doc := projector.BuildGeneticAnalysisOrderDocument(order, testMeta(), nil, nil)
	assert.JSONEq(t, `{}`, string(doc.ServiceInfo))
	assert.JSONEq(t, `{}`, string(doc.GeneticAnalystInfo))

	doc = projector.BuildGeneticAnalysisOrderDocument(order, testMeta(),
		json.RawMessage(`{"name":"Full Genome"}`), nil)
	assert.JSONEq(t, `{"name":"Full Genome"}`, string(doc.ServiceInfo))
	assert.JSONEq(t, `{}`, string(doc.GeneticAnalystInfo))
}

func TestProjector_ProjectOrderCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockIndex(ctrl)
	p := projector.NewProjector(index)

	order := testOrder()
	index.EXPECT().
		Index(gomock.Any(), search.IndexOrders, order.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, idx, id string, doc any) error {
			orderDoc, ok := doc.(projector.OrderDocument)
			require.True(t, ok)
			assert.Equal(t, order.ID, orderDoc.ID)
			return nil
		})

	require.NoError(t, p.ProjectOrderCreated(context.Background(), order, testMeta()))
}

func TestProjector_ProjectOrderUpdated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockIndex(ctrl)
	p := projector.NewProjector(index)

	order := testOrder()
	index.EXPECT().
		Update(gomock.Any(), search.IndexOrders, order.ID, gomock.Any()).
		Return(nil)

	require.NoError(t, p.ProjectOrderUpdated(context.Background(), order, testMeta()))

	index.EXPECT().
		Update(gomock.Any(), search.IndexOrders, order.ID, gomock.Any()).
		Return(assert.AnError)

	assert.Error(t, p.ProjectOrderUpdated(context.Background(), order, testMeta()))
}

func TestProjector_ProjectGeneticAnalysisOrderCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockIndex(ctrl)
	p := projector.NewProjector(index)

	order := testGeneticAnalysisOrder()

	index.EXPECT().
		GetByID(gomock.Any(), search.IndexGeneticAnalystServices, order.ServiceID).
		Return(json.RawMessage(`{"id":"0xgaservice1","info":{"name":"Full Genome"}}`), nil)
	index.EXPECT().
		GetByID(gomock.Any(), search.IndexGeneticAnalysts, order.SellerID).
		Return(json.RawMessage(`{"id":"5Analyst","info":{"first_name":"Gene"}}`), nil)

	index.EXPECT().
		Index(gomock.Any(), search.IndexGeneticAnalysisOrders, order.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, idx, id string, doc any) error {
			gaDoc, ok := doc.(projector.GeneticAnalysisOrderDocument)
			require.True(t, ok)
			assert.JSONEq(t, `{"name":"Full Genome"}`, string(gaDoc.ServiceInfo))
			assert.JSONEq(t, `{"first_name":"Gene"}`, string(gaDoc.GeneticAnalystInfo))
			return nil
		})

	require.NoError(t, p.ProjectGeneticAnalysisOrderCreated(context.Background(), order, testMeta()))
}

func TestProjector_ProjectGeneticAnalysisOrderCreated_MissingReferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockIndex(ctrl)
	p := projector.NewProjector(index)

	order := testGeneticAnalysisOrder()

	// A deleted service and a transient analyst lookup failure both degrade
	// to empty objects rather than failing the projection
	index.EXPECT().
		GetByID(gomock.Any(), search.IndexGeneticAnalystServices, order.ServiceID).
		Return(nil, domain.ErrNotFound)
	index.EXPECT().
		GetByID(gomock.Any(), search.IndexGeneticAnalysts, order.SellerID).
		Return(nil, assert.AnError)

	index.EXPECT().
		Index(gomock.Any(), search.IndexGeneticAnalysisOrders, order.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, idx, id string, doc any) error {
			gaDoc := doc.(projector.GeneticAnalysisOrderDocument)
			assert.JSONEq(t, `{}`, string(gaDoc.ServiceInfo))
			assert.JSONEq(t, `{}`, string(gaDoc.GeneticAnalystInfo))
			return nil
		})

	require.NoError(t, p.ProjectGeneticAnalysisOrderCreated(context.Background(), order, testMeta()))
}

func TestProjector_ProjectGeneticAnalysisOrderUpdated_PartialDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := mocks.NewMockIndex(ctrl)
	p := projector.NewProjector(index)

	order := testGeneticAnalysisOrder()
	order.Status = "Fulfilled"

	index.EXPECT().
		Update(gomock.Any(), search.IndexGeneticAnalysisOrders, order.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, idx, id string, doc any) error {
			// The partial update must not touch the reference snapshots
			raw, err := json.Marshal(doc)
			require.NoError(t, err)
			assert.NotContains(t, string(raw), "service_info")
			assert.NotContains(t, string(raw), "genetic_analyst_info")
			assert.Contains(t, string(raw), `"status":"Fulfilled"`)
			return nil
		})

	require.NoError(t, p.ProjectGeneticAnalysisOrderUpdated(context.Background(), order, testMeta()))
}
