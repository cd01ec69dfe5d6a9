package notify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genelink-network/ledger-indexer/internal/notify"
	"github.com/genelink-network/ledger-indexer/internal/store/schema"
)

func TestKind_Descriptors(t *testing.T) {
	tests := []struct {
		kind       notify.Kind
		role       schema.NotificationRole
		entityType string
		entity     string
	}{
		{notify.KindOrderCreated, schema.NotificationRoleCustomer, "Genetic Testing Order", "Order Created"},
		{notify.KindOrderPaid, schema.NotificationRoleLab, "Genetic Testing Order", "New Order"},
		{notify.KindOrderFulfilled, schema.NotificationRoleCustomer, "Genetic Testing Order", "Order Fulfilled"},
		{notify.KindOrderRefunded, schema.NotificationRoleCustomer, "Genetic Testing Order", "Order Refunded"},
		{notify.KindOrderCancelled, schema.NotificationRoleCustomer, "Genetic Testing Order", "Order Cancelled"},
		{notify.KindGeneticAnalysisOrderCreated, schema.NotificationRoleCustomer, "Genetic Analysis Orders", "Order Created"},
		{notify.KindGeneticAnalysisOrderPaid, schema.NotificationRoleGA, "Genetic Analysis Orders", "New Order"},
		{notify.KindGeneticAnalysisOrderFulfilled, schema.NotificationRoleCustomer, "Genetic Analysis Orders", "Order Fulfilled"},
		{notify.KindGeneticAnalysisOrderRefunded, schema.NotificationRoleCustomer, "Genetic Analysis Orders", "Order Refunded"},
		{notify.KindGeneticAnalysisOrderCancelled, schema.NotificationRoleCustomer, "Genetic Analysis Orders", "Order Cancelled"},
		{notify.KindGeneticAnalystServiceAdded, schema.NotificationRoleGA, "Genetic Analyst", "Add service"},
		{notify.KindDNASampleRejected, schema.NotificationRoleCustomer, "Genetic Testing Tracking", "QC Failed"},
		{notify.KindLabStaked, schema.NotificationRoleLab, "Lab", "Stake Successful"},
		{notify.KindLabUnstaked, schema.NotificationRoleLab, "Lab", "Unstake Successful"},
	}

	for _, tt := range tests {
		t.Run(tt.entityType+"/"+tt.entity, func(t *testing.T) {
			assert.True(t, tt.kind.Valid())
			assert.Equal(t, tt.role, tt.kind.Role())
			assert.Equal(t, tt.entityType, tt.kind.EntityType())
			assert.Equal(t, tt.entity, tt.kind.Entity())
		})
	}
}

func TestKind_Describe(t *testing.T) {
	// Templated descriptions embed the reference
	assert.Equal(t,
		"A new order 0xorder1 is awaiting process.",
		notify.KindOrderPaid.Describe("0xorder1"))
	assert.Equal(t,
		"You've successfully added your new service - Ancestry Report.",
		notify.KindGeneticAnalystServiceAdded.Describe("Ancestry Report"))

	// Staking descriptions are fixed text; the reference is ignored
	assert.Equal(t,
		"Your stake has been placed successfully.",
		notify.KindLabStaked.Describe("5LabAccount"))
	assert.Equal(t,
		"Your stake amount has been refunded, kindly check your account balance.",
		notify.KindLabUnstaked.Describe("5LabAccount"))
}

func TestKind_Valid(t *testing.T) {
	assert.True(t, notify.KindOrderCreated.Valid())
	assert.False(t, notify.Kind(999).Valid())
	assert.False(t, notify.Kind(-1).Valid())
}
