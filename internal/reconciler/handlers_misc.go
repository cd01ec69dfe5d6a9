package reconciler

import (
	"context"

	"go.uber.org/zap"

	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/event"
	"github.com/genelink-network/ledger-indexer/internal/logger"
	"github.com/genelink-network/ledger-indexer/internal/notify"
)

// handleGeneticAnalystServiceCreated is notification-only: service creation
// is not a financial transition, so no log record is written and no gate
// applies.
func (r *Reconciler) handleGeneticAnalystServiceCreated(ctx context.Context, e *domain.ChainEvent, res *Result) {
	service, id, err := event.ExtractGeneticAnalystService(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)
	res.Outcome = OutcomeApplied

	r.runNotification(ctx, res, notify.Input{
		Kind:        notify.KindGeneticAnalystServiceAdded,
		ReferenceID: service.ID,
		Label:       service.Info.Name,
		To:          service.OwnerID,
		BlockNumber: e.BlockNumber,
	})

	// Operations reviews every staked service request. Best effort, the
	// mailer logs its own failures.
	if r.mailer != nil && len(r.opsEmails) > 0 {
		r.mailer.SendCustomerStakingRequestServiceEmail(ctx, r.opsEmails, notify.CustomerStakingRequestService{
			CustomerID:  service.OwnerID,
			ServiceName: service.Info.Name,
		})
	}
}

// handleDNASampleRejected is notification-only: quality-control rejection
// informs the customer but records no financial transition.
func (r *Reconciler) handleDNASampleRejected(ctx context.Context, e *domain.ChainEvent, res *Result) {
	sample, id, err := event.ExtractDNASample(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)
	res.Outcome = OutcomeApplied

	r.runNotification(ctx, res, notify.Input{
		Kind:        notify.KindDNASampleRejected,
		ReferenceID: sample.TrackingID,
		To:          sample.OwnerID,
		BlockNumber: e.BlockNumber,
	})
}

// handleLabStake covers both staking transitions. The staked amount is a raw
// on-chain balance string in the native token.
func (r *Reconciler) handleLabStake(ctx context.Context, e *domain.ChainEvent, res *Result) {
	lab, id, err := event.ExtractLab(e)
	if err != nil {
		r.discard(ctx, res, err)
		return
	}
	res.EntityID = id.EntityID
	res.add(StageExtract, StageApplied, nil)

	amount, ok := domain.Price{Value: lab.StakeAmount}.Amount()
	if !ok {
		logger.WarnCtx(ctx, "Unparseable stake amount, logging zero",
			zap.String("account_id", lab.AccountID),
			zap.String("stake_amount", lab.StakeAmount))
	}

	fresh := r.runGatedLog(ctx, res, id, logSpec{
		transactionType: domain.TransactionTypeLabStake,
		amount:          amount,
		currency:        domain.NativeCurrency,
		address:         lab.AccountID,
		createdAt:       r.clock.Now(),
	})

	if !fresh {
		res.add(StageNotify, StageSkipped, nil)
		return
	}

	kind := notify.KindLabStaked
	if e.EventType == domain.EventTypeLabUnstaked {
		kind = notify.KindLabUnstaked
	}

	r.runNotification(ctx, res, notify.Input{
		Kind:        kind,
		ReferenceID: lab.AccountID,
		To:          lab.AccountID,
		BlockNumber: e.BlockNumber,
	})

	// A fresh stake means the lab just went live; tell operations. Best
	// effort, the mailer logs its own failures.
	if kind == notify.KindLabStaked && r.mailer != nil && len(r.opsEmails) > 0 {
		r.mailer.SendLabRegistrationEmail(ctx, r.opsEmails, notify.LabRegistration{
			Email:   lab.Info.Email,
			LabName: lab.Info.Name,
			Country: lab.Info.Country,
			State:   lab.Info.Region,
			City:    lab.Info.City,
			Address: lab.Info.Address,
		})
	}
}
