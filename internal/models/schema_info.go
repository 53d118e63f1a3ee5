package models

import (
	"time"
)

// SchemaInfo is a single seeded row used by the /test connectivity endpoints.
type SchemaInfo struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	Version      int       `json:"version" gorm:"not null"`
	LoadDateTime time.Time `json:"load_date_time"`
}

// CollectionCounts is the /test/counts payload: collection name to row count.
type CollectionCounts struct {
	User       int64 `json:"user"`
	Photo      int64 `json:"photo"`
	SchemaInfo int64 `json:"schemaInfo"`
}
