package models

import (
	"time"
)

// BaseModel uses auto-increment IDs so that created_at ties have a
// deterministic secondary order.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
