package models

import (
	"time"

	"gorm.io/datatypes"
)

// CartSnapshot is the durable key-value slot holding a JSON-serialized cart.
// The whole item list is written after every cart mutation and read once at
// startup; a missing or corrupt value means an empty cart.
type CartSnapshot struct {
	Key       string         `json:"key" gorm:"primaryKey"`
	Value     datatypes.JSON `json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}
