package reconciler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/genelink-network/ledger-indexer/internal/adapter"
	"github.com/genelink-network/ledger-indexer/internal/domain"
	"github.com/genelink-network/ledger-indexer/internal/event"
	"github.com/genelink-network/ledger-indexer/internal/logger"
	"github.com/genelink-network/ledger-indexer/internal/notify"
	"github.com/genelink-network/ledger-indexer/internal/projector"
	"github.com/genelink-network/ledger-indexer/internal/store"
	"github.com/genelink-network/ledger-indexer/internal/store/schema"
)

// StageName identifies one step of a reconciliation.
type StageName string

const (
	StageExtract StageName = "extract"
	StageGate    StageName = "gate"
	StageLog     StageName = "log"
	StageProject StageName = "project"
	StageNotify  StageName = "notify"
)

// StageStatus is the outcome of a single stage.
type StageStatus string

const (
	StageApplied StageStatus = "applied"
	StageSkipped StageStatus = "skipped"
	StageFailed  StageStatus = "failed"
)

// StageResult records the outcome of one stage for observability. Stage
// failures never abort sibling stages and never propagate to the caller.
type StageResult struct {
	Name   StageName
	Status StageStatus
	Err    error
}

// Outcome is the terminal state of a reconciliation.
type Outcome string

const (
	// OutcomeApplied means the idempotency gate admitted the event and the
	// effect stages ran.
	OutcomeApplied Outcome = "applied"
	// OutcomeSkipped means the (entity, status) effect was already recorded;
	// the log write was suppressed. Some handlers still project or notify.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeDiscarded means the payload could not be normalized; the event
	// is terminal because redelivery carries the same payload.
	OutcomeDiscarded Outcome = "discarded"
)

// Result is the structured account of one reconciliation returned to the
// caller. The caller acknowledges the event whatever the result says.
type Result struct {
	RunID     string
	EventType domain.EventType
	EntityID  string
	Outcome   Outcome
	Stages    []StageResult
}

func (r *Result) add(name StageName, status StageStatus, err error) {
	r.Stages = append(r.Stages, StageResult{Name: name, Status: status, Err: err})
}

// Stage returns the recorded result for a stage name, if present.
func (r *Result) Stage(name StageName) (StageResult, bool) {
	for _, s := range r.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return StageResult{}, false
}

// Reconciler is the event-to-effects reconciliation engine. For each decoded
// chain event it decides idempotently which downstream effects are missing
// and applies them: transaction-log append (causally chained), read-model
// projection, notification insert. There is no cross-sink transaction; each
// stage's failure is recorded and the rest continue.
type Reconciler struct {
	store     store.Store
	projector *projector.Projector
	notifier  *notify.Emitter
	mailer    notify.Mailer
	opsEmails []string
	clock     adapter.Clock
}

// NewReconciler creates a new reconciliation engine. mailer may be nil;
// operational emails are then skipped.
func NewReconciler(st store.Store, proj *projector.Projector, notifier *notify.Emitter, mailer notify.Mailer, opsEmails []string, clock adapter.Clock) *Reconciler {
	return &Reconciler{
		store:     st,
		projector: proj,
		notifier:  notifier,
		mailer:    mailer,
		opsEmails: opsEmails,
		clock:     clock,
	}
}

// Handle reconciles a single chain event. It never returns an error: partial
// failure is reported through stage results and the event counts as handled.
func (r *Reconciler) Handle(ctx context.Context, e *domain.ChainEvent) Result {
	res := Result{
		RunID:     uuid.NewString(),
		EventType: e.EventType,
	}

	switch e.EventType {
	case domain.EventTypeOrderCreated:
		r.handleOrderCreated(ctx, e, &res)
	case domain.EventTypeOrderPaid:
		r.handleOrderPaid(ctx, e, &res)
	case domain.EventTypeOrderFulfilled:
		r.handleOrderFulfilled(ctx, e, &res)
	case domain.EventTypeOrderRefunded:
		r.handleOrderRefunded(ctx, e, &res)
	case domain.EventTypeOrderCancelled:
		r.handleOrderCancelled(ctx, e, &res)
	case domain.EventTypeGeneticAnalysisOrderCreated:
		r.handleGeneticAnalysisOrderCreated(ctx, e, &res)
	case domain.EventTypeGeneticAnalysisOrderPaid:
		r.handleGeneticAnalysisOrderPaid(ctx, e, &res)
	case domain.EventTypeGeneticAnalysisOrderFulfilled:
		r.handleGeneticAnalysisOrderFulfilled(ctx, e, &res)
	case domain.EventTypeGeneticAnalysisOrderRefunded:
		r.handleGeneticAnalysisOrderRefunded(ctx, e, &res)
	case domain.EventTypeGeneticAnalysisOrderCancelled:
		r.handleGeneticAnalysisOrderCancelled(ctx, e, &res)
	case domain.EventTypeGeneticAnalystServiceCreated:
		r.handleGeneticAnalystServiceCreated(ctx, e, &res)
	case domain.EventTypeDNASampleRejected:
		r.handleDNASampleRejected(ctx, e, &res)
	case domain.EventTypeLabStaked, domain.EventTypeLabUnstaked:
		r.handleLabStake(ctx, e, &res)
	default:
		res.Outcome = OutcomeDiscarded
		res.add(StageExtract, StageFailed, domain.NewMalformedEventError(e.EventType, "unknown event type", nil))
		logger.WarnCtx(ctx, "Discarding event of unknown type", zap.String("event_type", string(e.EventType)))
	}

	logger.InfoCtx(ctx, "Reconciled chain event",
		zap.String("run_id", res.RunID),
		zap.String("event_type", string(res.EventType)),
		zap.String("entity_id", res.EntityID),
		zap.String("outcome", string(res.Outcome)),
		zap.Uint64("block_number", e.BlockNumber),
	)

	return res
}

// discard marks the result terminal for an unparseable payload. Malformed
// events are not retried: retrying would not change the payload.
func (r *Reconciler) discard(ctx context.Context, res *Result, err error) {
	res.Outcome = OutcomeDiscarded
	res.add(StageExtract, StageFailed, err)
	logger.ErrorCtx(ctx, err, zap.String("event_type", string(res.EventType)))
}

// logSpec carries the fields of a prospective transaction-log record that
// come from the entity rather than the identity.
type logSpec struct {
	transactionType domain.TransactionType
	amount          float64
	currency        string
	address         string
	createdAt       time.Time
}

// gate consults the idempotency oracle: fresh is true when no effect has been
// recorded yet for the (entity, status) pair. Read-before-write; the unique
// index on the log table backs up the remaining race window.
func (r *Reconciler) gate(ctx context.Context, id event.Identity) (bool, error) {
	existing, err := r.store.GetLogByRefAndStatus(ctx, id.EntityID, id.Status)
	if err != nil {
		return false, err
	}
	return existing == nil, nil
}

// appendLog writes the transaction-log record, linking it to the most recent
// prior record for the entity at call time.
func (r *Reconciler) appendLog(ctx context.Context, id event.Identity, spec logSpec) error {
	parentID := domain.ParentIDSentinel
	latest, err := r.store.GetLatestLogByRef(ctx, id.EntityID)
	if err != nil {
		return err
	}
	if latest != nil {
		parentID = latest.ID
	}

	record := &schema.TransactionRequest{
		ParentID:          parentID,
		RefNumber:         id.EntityID,
		TransactionType:   spec.transactionType,
		TransactionStatus: id.Status,
		Amount:            spec.amount,
		Currency:          spec.currency,
		Address:           spec.address,
		BlockNumber:       id.BlockNumber,
		CreatedAt:         spec.createdAt,
	}

	return r.store.CreateLog(ctx, record)
}

// runGatedLog runs the gate and, when fresh, the log append. It records both
// stages on the result and returns whether the effect was fresh: coupled
// notifications fire only for fresh effects.
func (r *Reconciler) runGatedLog(ctx context.Context, res *Result, id event.Identity, spec logSpec) bool {
	fresh, err := r.gate(ctx, id)
	if err != nil {
		res.add(StageGate, StageFailed, err)
		res.add(StageLog, StageSkipped, nil)
		res.Outcome = OutcomeSkipped
		logger.ErrorCtx(ctx, err,
			zap.String("stage", string(StageGate)),
			zap.String("entity_id", id.EntityID),
			zap.Int("status", int(id.Status)))
		return false
	}

	if !fresh {
		res.add(StageGate, StageApplied, nil)
		res.add(StageLog, StageSkipped, nil)
		res.Outcome = OutcomeSkipped
		return false
	}

	res.add(StageGate, StageApplied, nil)
	res.Outcome = OutcomeApplied

	if err := r.appendLog(ctx, id, spec); err != nil {
		res.add(StageLog, StageFailed, err)
		logger.ErrorCtx(ctx, err,
			zap.String("stage", string(StageLog)),
			zap.String("entity_id", id.EntityID),
			zap.Int("status", int(id.Status)))
	} else {
		res.add(StageLog, StageApplied, nil)
	}

	return true
}

// runProjection records a projection stage outcome.
func (r *Reconciler) runProjection(ctx context.Context, res *Result, entityID string, project func() error) {
	if err := project(); err != nil {
		res.add(StageProject, StageFailed, err)
		logger.ErrorCtx(ctx, err,
			zap.String("stage", string(StageProject)),
			zap.String("entity_id", entityID))
		return
	}
	res.add(StageProject, StageApplied, nil)
}

// runNotification records a notification stage outcome.
func (r *Reconciler) runNotification(ctx context.Context, res *Result, in notify.Input) {
	if err := r.notifier.Emit(ctx, in); err != nil {
		res.add(StageNotify, StageFailed, err)
		logger.ErrorCtx(ctx, err,
			zap.String("stage", string(StageNotify)),
			zap.String("reference_id", in.ReferenceID))
		return
	}
	res.add(StageNotify, StageApplied, nil)
}
