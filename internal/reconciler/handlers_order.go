package reconciler

import (
	"context"

	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/event"
	"github.com/genelink-network/ledger-indexer/internal/notify"
)

// Order lifecycle handlers. Per transition the gating shape differs on
// purpose: some notifications are coupled to a fresh log record, others fire
// on every delivery because the recipient should see them even if the log
// side already caught up.

func (r *Reconciler) handleOrderCreated(ctx context.Context, e *domain.ChainEvent, res *Result) {
	order, id, err := event.ExtractOrder(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	// A created order has not been paid yet; the log records a zero amount.
	fresh := r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeOrder,
		amount:          0,
		currency:        domain.NormalizeCurrency(order.Currency),
		address:         order.CustomerID,
		createdAt:       order.CreatedAt,
	})

	r.runProjection(ctx, res, id.EntityID, func() error {
		return r.projector.ProjectOrderCreated(ctx, order, e.BlockMetadata())
	})

	if fresh {
		r.runNotification(ctx, res, notify.Input{
			Kind:        notify.KindOrderCreated,
			ReferenceID: order.ID,
			To:          order.CustomerID,
			BlockNumber: e.BlockNumber,
		})
	} else {
		res.add(StageNotify, StageSkipped, nil)
	}
}

func (r *Reconciler) handleOrderPaid(ctx context.Context, e *domain.ChainEvent, res *Result) {
	order, id, err := event.ExtractOrder(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	amount, _ := domain.CanonicalAmount(order.Prices)
	r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeOrder,
		amount:          amount,
		currency:        domain.NormalizeCurrency(order.Currency),
		address:         order.CustomerID,
		createdAt:       order.UpdatedAt,
	})

	r.runProjection(ctx, res, id.EntityID, func() error {
		return r.projector.ProjectOrderUpdated(ctx, order, e.BlockMetadata())
	})

	// The provider is told about every paid delivery regardless of the gate.
	r.runNotification(ctx, res, notify.Input{
		Kind:        notify.KindOrderPaid,
		ReferenceID: order.ID,
		To:          order.SellerID,
		BlockNumber: e.BlockNumber,
	})
}

func (r *Reconciler) handleOrderFulfilled(ctx context.Context, e *domain.ChainEvent, res *Result) {
	order, id, err := event.ExtractOrder(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	amount, _ := domain.CanonicalAmount(order.Prices)
	fresh := r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeOrder,
		amount:          amount,
		currency:        domain.NormalizeCurrency(order.Currency),
		address:         order.SellerID,
		createdAt:       order.UpdatedAt,
	})

	r.runProjection(ctx, res, id.EntityID, func() error {
		return r.projector.ProjectOrderUpdated(ctx, order, e.BlockMetadata())
	})

	if fresh {
		r.runNotification(ctx, res, notify.Input{
			Kind:        notify.KindOrderFulfilled,
			ReferenceID: order.ID,
			To:          order.CustomerID,
			BlockNumber: e.BlockNumber,
		})
	} else {
		res.add(StageNotify, StageSkipped, nil)
	}
}

func (r *Reconciler) handleOrderRefunded(ctx context.Context, e *domain.ChainEvent, res *Result) {
	order, id, err := event.ExtractOrder(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	amount, _ := domain.CanonicalAmount(order.Prices)
	fresh := r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeOrder,
		amount:          amount,
		currency:        domain.NormalizeCurrency(order.Currency),
		address:         order.CustomerID,
		createdAt:       order.UpdatedAt,
	})

	r.runProjection(ctx, res, id.EntityID, func() error {
		return r.projector.ProjectOrderUpdated(ctx, order, e.BlockMetadata())
	})

	if fresh {
		// The customer tracks a refund by the sample, not the order id.
		r.runNotification(ctx, res, notify.Input{
			Kind:        notify.KindOrderRefunded,
			ReferenceID: order.DNASampleTrackingID,
			To:          order.CustomerID,
			BlockNumber: e.BlockNumber,
		})
	} else {
		res.add(StageNotify, StageSkipped, nil)
	}
}

func (r *Reconciler) handleOrderCancelled(ctx context.Context, e *domain.ChainEvent, res *Result) {
	order, id, err := event.ExtractOrder(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	amount, _ := domain.CanonicalAmount(order.Prices)
	r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeOrder,
		amount:          amount,
		currency:        domain.NormalizeCurrency(order.Currency),
		address:         order.CustomerID,
		createdAt:       order.UpdatedAt,
	})

	r.runProjection(ctx, res, id.EntityID, func() error {
		return r.projector.ProjectOrderUpdated(ctx, order, e.BlockMetadata())
	})

	r.runNotification(ctx, res, notify.Input{
		Kind:        notify.KindOrderCancelled,
		ReferenceID: order.ID,
		To:          order.CustomerID,
		BlockNumber: e.BlockNumber,
	})
}
