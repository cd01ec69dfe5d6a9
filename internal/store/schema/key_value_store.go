package schema

import "time"

// KeyValueStore represents the key_value_store table - small operational
// state such as per-chain block cursors.
type KeyValueStore struct {
	// Key is the unique lookup key (e.g. "block_cursor:<chain>")
	Key string `gorm:"column:key;primaryKey;type:text"`
	// Value is the stored value as text
	Value string `gorm:"column:value;not null;type:text"`
	// UpdatedAt is the last write timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the KeyValueStore model
func (KeyValueStore) TableName() string {
	return "key_value_store"
}
