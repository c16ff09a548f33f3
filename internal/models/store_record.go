package models

import "time"

// StoreRecord is one key-value entry of the site content store. Each key
// holds a whole JSON document (site config or a full collection). The
// column is named record_key because "key" is reserved in MySQL.
type StoreRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:record_key;uniqueIndex;size:100;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StoreRecord) TableName() string { return "store_records" }
