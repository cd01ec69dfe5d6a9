package reconciler

import (
	"context"

	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/event"
	"github.com/genelink-network/ledger-indexer/internal/notify"
)

// Genetic-analysis order lifecycle handlers. Same shape as the testing-order
// family; the created projection additionally joins the referenced service
// and analyst documents.

func (r *Reconciler) handleGeneticAnalysisOrderCreated(ctx context.Context, e *domain.ChainEvent, res *Result) {
	order, id, err := event.ExtractGeneticAnalysisOrder(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	fresh := r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeGeneticAnalysis,
		amount:          0,
		currency:        domain.NormalizeCurrency(order.Currency),
		address:         order.CustomerID,
		createdAt:       order.CreatedAt,
	})

	r.runProjection(ctx, res, id.EntityID, func() error {
		return r.projector.ProjectGeneticAnalysisOrderCreated(ctx, order, e.BlockMetadata())
	})

	if fresh {
		r.runNotification(ctx, res, notify.Input{
			Kind:        notify.KindGeneticAnalysisOrderCreated,
			ReferenceID: order.ID,
			To:          order.CustomerID,
			BlockNumber: e.BlockNumber,
		})
	} else {
		res.add(StageNotify, StageSkipped, nil)
	}
}

func (r *Reconciler) handleGeneticAnalysisOrderPaid(ctx context.Context, e *domain.ChainEvent, res *Result) {
	order, id, err := event.ExtractGeneticAnalysisOrder(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	amount, _ := domain.CanonicalAmount(order.Prices)
	r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeGeneticAnalysis,
		amount:          amount,
		currency:        domain.NormalizeCurrency(order.Currency),
		address:         order.CustomerID,
		createdAt:       order.UpdatedAt,
	})

	r.runProjection(ctx, res, id.EntityID, func() error {
		return r.projector.ProjectGeneticAnalysisOrderUpdated(ctx, order, e.BlockMetadata())
	})

	r.runNotification(ctx, res, notify.Input{
		Kind:        notify.KindGeneticAnalysisOrderPaid,
		ReferenceID: order.ID,
		To:          order.SellerID,
		BlockNumber: e.BlockNumber,
	})
}

func (r *Reconciler) handleGeneticAnalysisOrderFulfilled(ctx context.Context, e *domain.ChainEvent, res *Result) {
	order, id, err := event.ExtractGeneticAnalysisOrder(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	amount, _ := domain.CanonicalAmount(order.Prices)
	fresh := r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeGeneticAnalysis,
		amount:          amount,
		currency:        domain.NormalizeCurrency(order.Currency),
		address:         order.SellerID,
		createdAt:       order.UpdatedAt,
	})

	r.runProjection(ctx, res, id.EntityID, func() error {
		return r.projector.ProjectGeneticAnalysisOrderUpdated(ctx, order, e.BlockMetadata())
	})

	if fresh {
		r.runNotification(ctx, res, notify.Input{
			Kind:        notify.KindGeneticAnalysisOrderFulfilled,
			ReferenceID: order.ID,
			To:          order.CustomerID,
			BlockNumber: e.BlockNumber,
		})
	} else {
		res.add(StageNotify, StageSkipped, nil)
	}
}

func (r *Reconciler) handleGeneticAnalysisOrderRefunded(ctx context.Context, e *domain.ChainEvent, res *Result) {
	order, id, err := event.ExtractGeneticAnalysisOrder(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	amount, _ := domain.CanonicalAmount(order.Prices)
	r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeGeneticAnalysis,
		amount:          amount,
		currency:        domain.NormalizeCurrency(order.Currency),
		address:         order.CustomerID,
		createdAt:       order.UpdatedAt,
	})

	r.runProjection(ctx, res, id.EntityID, func() error {
		return r.projector.ProjectGeneticAnalysisOrderUpdated(ctx, order, e.BlockMetadata())
	})

	r.runNotification(ctx, res, notify.Input{
		Kind:        notify.KindGeneticAnalysisOrderRefunded,
		ReferenceID: order.ID,
		To:          order.CustomerID,
		BlockNumber: e.BlockNumber,
	})
}

func (r *Reconciler) handleGeneticAnalysisOrderCancelled(ctx context.Context, e *domain.ChainEvent, res *Result) {
	order, id, err := event.ExtractGeneticAnalysisOrder(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	amount, _ := domain.CanonicalAmount(order.Prices)
	r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeGeneticAnalysis,
		amount:          amount,
		currency:        domain.NormalizeCurrency(order.Currency),
		address:         order.CustomerID,
		createdAt:       order.UpdatedAt,
	})

	r.runProjection(ctx, res, id.EntityID, func() error {
		return r.projector.ProjectGeneticAnalysisOrderUpdated(ctx, order, e.BlockMetadata())
	})

	r.runNotification(ctx, res, notify.Input{
		Kind:        notify.KindGeneticAnalysisOrderCancelled,
		ReferenceID: order.ID,
		To:          order.CustomerID,
		BlockNumber: e.BlockNumber,
	})
}
