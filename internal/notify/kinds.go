package notify

import (
	"fmt"
	"strings"

	"github.com/genelink-network/ledger-indexer/internal/store/schema"
)

// Kind is a closed tagged variant per (entity type, transition). Every
// notification the pipeline can emit is enumerated here so that role and
// label drift is impossible and dispatch can be checked for exhaustiveness.
type Kind int

const (
	KindOrderCreated Kind = iota
	KindOrderPaid
	KindOrderFulfilled
	KindOrderRefunded
	KindOrderCancelled
	KindGeneticAnalysisOrderCreated
	KindGeneticAnalysisOrderPaid
	KindGeneticAnalysisOrderFulfilled
	KindGeneticAnalysisOrderRefunded
	KindGeneticAnalysisOrderCancelled
	KindGeneticAnalystServiceAdded
	KindDNASampleRejected
	KindLabStaked
	KindLabUnstaked
)

type descriptor struct {
	role        schema.NotificationRole
	entityType  string
	entity      string
	description string // %s, when present, is replaced by the reference id
}

var descriptors = map[Kind]descriptor{
	KindOrderCreated: {
		role:        schema.NotificationRoleCustomer,
		entityType:  "Genetic Testing Order",
		entity:      "Order Created",
		description: "You've successfully submitted your requested test for %s.",
	},
	KindOrderPaid: {
		role:        schema.NotificationRoleLab,
		entityType:  "Genetic Testing Order",
		entity:      "New Order",
		description: "A new order %s is awaiting process.",
	},
	KindOrderFulfilled: {
		role:        schema.NotificationRoleCustomer,
		entityType:  "Genetic Testing Order",
		entity:      "Order Fulfilled",
		description: "Your test results for %s are out. Click here to see your order details.",
	},
	KindOrderRefunded: {
		role:        schema.NotificationRoleCustomer,
		entityType:  "Genetic Testing Order",
		entity:      "Order Refunded",
		description: "Your service fee from %s has been refunded, kindly check your account balance.",
	},
	KindOrderCancelled: {
		role:        schema.NotificationRoleCustomer,
		entityType:  "Genetic Testing Order",
		entity:      "Order Cancelled",
		description: "Your order %s has been cancelled.",
	},
	KindGeneticAnalysisOrderCreated: {
		role:        schema.NotificationRoleCustomer,
		entityType:  "Genetic Analysis Orders",
		entity:      "Order Created",
		description: "You've successfully submitted your requested analysis for %s.",
	},
	KindGeneticAnalysisOrderPaid: {
		role:        schema.NotificationRoleGA,
		entityType:  "Genetic Analysis Orders",
		entity:      "New Order",
		description: "A new analysis order %s is awaiting process.",
	},
	KindGeneticAnalysisOrderFulfilled: {
		role:        schema.NotificationRoleCustomer,
		entityType:  "Genetic Analysis Orders",
		entity:      "Order Fulfilled",
		description: "Your analysis results for %s are out. Click here to see your order details.",
	},
	KindGeneticAnalysisOrderRefunded: {
		role:        schema.NotificationRoleCustomer,
		entityType:  "Genetic Analysis Orders",
		entity:      "Order Refunded",
		description: "Your service analysis fee from %s has been refunded, kindly check your account balance.",
	},
	KindGeneticAnalysisOrderCancelled: {
		role:        schema.NotificationRoleCustomer,
		entityType:  "Genetic Analysis Orders",
		entity:      "Order Cancelled",
		description: "Your analysis order %s has been cancelled.",
	},
	KindGeneticAnalystServiceAdded: {
		role:        schema.NotificationRoleGA,
		entityType:  "Genetic Analyst",
		entity:      "Add service",
		description: "You've successfully added your new service - %s.",
	},
	KindDNASampleRejected: {
		role:        schema.NotificationRoleCustomer,
		entityType:  "Genetic Testing Tracking",
		entity:      "QC Failed",
		description: "Your sample from %s has been rejected. Click here to see your order details.",
	},
	KindLabStaked: {
		role:        schema.NotificationRoleLab,
		entityType:  "Lab",
		entity:      "Stake Successful",
		description: "Your stake has been placed successfully.",
	},
	KindLabUnstaked: {
		role:        schema.NotificationRoleLab,
		entityType:  "Lab",
		entity:      "Unstake Successful",
		description: "Your stake amount has been refunded, kindly check your account balance.",
	},
}

// Role returns the recipient role for the kind.
func (k Kind) Role() schema.NotificationRole {
	return descriptors[k].role
}

// EntityType returns the human label for the domain object.
func (k Kind) EntityType() string {
	return descriptors[k].entityType
}

// Entity returns the human label for the transition.
func (k Kind) Entity() string {
	return descriptors[k].entity
}

// Describe renders the notification description, embedding the reference id
// where the template calls for it.
func (k Kind) Describe(referenceID string) string {
	d := descriptors[k]
	if strings.Contains(d.description, "%s") {
		return fmt.Sprintf(d.description, referenceID)
	}
	return d.description
}

// Valid reports whether k is a known notification kind.
func (k Kind) Valid() bool {
	_, ok := descriptors[k]
	return ok
}
