package schema

import (
	"time"

	"gorm.io/gorm"
)

// NotificationRole identifies the recipient's relationship to the entity.
type NotificationRole string

const (
	NotificationRoleCustomer NotificationRole = "Customer"
	NotificationRoleGA       NotificationRole = "GA"
	NotificationRoleLab      NotificationRole = "Lab"
)

// Notification represents the notifications table - user-facing records of
// entity transitions. Rows are created once per gated transition; read and
// delete marking happen in external flows.
type Notification struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Role is the recipient's relationship to the entity (Customer, GA, Lab)
	Role NotificationRole `gorm:"column:role;not null;type:text"`
	// EntityType is the human label for the domain object
	EntityType string `gorm:"column:entity_type;not null;type:text"`
	// Entity is the human label for the specific transition (e.g. "Order Refunded")
	Entity string `gorm:"column:entity;not null;type:text"`
	// ReferenceID is the entity id or a sub-identifier such as a tracking id
	ReferenceID string `gorm:"column:reference_id;not null;type:text;index"`
	// Description is the templated human-readable message
	Description string `gorm:"column:description;not null;type:text"`
	// Read marks whether the recipient has seen the notification
	Read bool `gorm:"column:read;not null;default:false"`
	// From is the fixed system sender label
	From string `gorm:"column:from;not null;type:text"`
	// To is the recipient address
	To string `gorm:"column:to;not null;type:text;index"`
	// BlockNumber is the chain position of the triggering event
	BlockNumber string `gorm:"column:block_number;not null;type:text"`
	// CreatedAt is the ingestion timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`
	// UpdatedAt is the last mutation timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamptz"`
	// DeletedAt is the soft-delete marker, null at creation
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
