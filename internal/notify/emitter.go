package notify

import (
	"context"
	"fmt"
	"strconv"

	"github.com/genelink-network/ledger-indexer/internal/adapter"
	"github.com/genelink-network/ledger-indexer/internal/store"
	"github.com/genelink-network/ledger-indexer/internal/store/schema"
)

// DefaultSender is the fixed system sender label on every notification.
const DefaultSender = "Genelink Network"

// Input describes one notification to emit. Label, when set, replaces the
// reference id inside the rendered description; the stored reference id is
// always ReferenceID.
type Input struct {
	Kind        Kind
	ReferenceID string
	Label       string
	To          string
	BlockNumber uint64
}

// Emitter constructs role-addressed notification records and inserts them.
// It performs no idempotency check of its own: deduplication, where intended,
// is the orchestrator's gate.
type Emitter struct {
	store  store.Store
	clock  adapter.Clock
	sender string
}

// NewEmitter creates a new notification emitter
func NewEmitter(st store.Store, clock adapter.Clock) *Emitter {
	return &Emitter{
		store:  st,
		clock:  clock,
		sender: DefaultSender,
	}
}

// Emit inserts a single notification record for the given transition.
func (e *Emitter) Emit(ctx context.Context, in Input) error {
	if !in.Kind.Valid() {
		return fmt.Errorf("unknown notification kind %d", in.Kind)
	}

	label := in.Label
	if label == "" {
		label = in.ReferenceID
	}

	now := e.clock.Now()
	notification := &schema.Notification{
		Role:        in.Kind.Role(),
		EntityType:  in.Kind.EntityType(),
		Entity:      in.Kind.Entity(),
		ReferenceID: in.ReferenceID,
		Description: in.Kind.Describe(label),
		Read:        false,
		From:        e.sender,
		To:          in.To,
		BlockNumber: strconv.FormatUint(in.BlockNumber, 10),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := e.store.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("failed to emit %q notification for %s: %w", in.Kind.Entity(), in.ReferenceID, err)
	}

	return nil
}
