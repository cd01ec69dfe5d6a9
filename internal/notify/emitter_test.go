package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genelink-network/ledger-indexer/internal/mocks"
	"github.com/genelink-network/ledger-indexer/internal/notify"
	"github.com/genelink-network/ledger-indexer/internal/store/schema"
)

func TestEmitter_Emit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	emitter := notify.NewEmitter(store, clock)

	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	var created *schema.Notification
	store.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n *schema.Notification) error {
			created = n
			return nil
		})

	err := emitter.Emit(context.Background(), notify.Input{
		Kind:        notify.KindOrderRefunded,
		ReferenceID: "0xorder1",
		To:          "5Customer",
		BlockNumber: 4242,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, schema.NotificationRoleCustomer, created.Role)
	assert.Equal(t, "Genetic Testing Order", created.EntityType)
	assert.Equal(t, "Order Refunded", created.Entity)
	assert.Equal(t, "0xorder1", created.ReferenceID)
	assert.Contains(t, created.Description, "0xorder1")
	assert.False(t, created.Read)
	assert.Equal(t, notify.DefaultSender, created.From)
	assert.Equal(t, "5Customer", created.To)
	assert.Equal(t, "4242", created.BlockNumber)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)
}

func TestEmitter_Emit_LabelOverridesDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	emitter := notify.NewEmitter(store, clock)

	clock.EXPECT().Now().Return(time.Now())

	var created *schema.Notification
	store.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n *schema.Notification) error {
			created = n
			return nil
		})

	err := emitter.Emit(context.Background(), notify.Input{
		Kind:        notify.KindGeneticAnalystServiceAdded,
		ReferenceID: "0xsvc1",
		Label:       "Ancestry Report",
		To:          "5Analyst",
		BlockNumber: 7,
	})
	require.NoError(t, err)

	// The label renders in the description; the stored reference is the id
	require.NotNil(t, created)
	assert.Equal(t, "0xsvc1", created.ReferenceID)
	assert.Contains(t, created.Description, "Ancestry Report")
	assert.NotContains(t, created.Description, "0xsvc1")
}

func TestEmitter_Emit_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	emitter := notify.NewEmitter(store, clock)

	err := emitter.Emit(context.Background(), notify.Input{
		Kind:        notify.Kind(999),
		ReferenceID: "0xorder1",
		To:          "5Customer",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown notification kind")
}

func TestEmitter_Emit_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	emitter := notify.NewEmitter(store, clock)

	clock.EXPECT().Now().Return(time.Now())
	store.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	err := emitter.Emit(context.Background(), notify.Input{
		Kind:        notify.KindOrderPaid,
		ReferenceID: "0xorder1",
		To:          "5Lab",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to emit")
}
