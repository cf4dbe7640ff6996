// internal/models/alert.go
package models

import "github.com/google/uuid"

// PriceAlert is a persisted price-tracking rule. Triggered is computed on read
// from the live catalog price, never stored.
type PriceAlert struct {
	BaseModel
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID   int       `json:"productId" gorm:"not null;index"`
	Type        AlertType `json:"type" gorm:"type:varchar(20);default:'price_drop'"`
	TargetPrice float64   `json:"targetPrice" gorm:"not null"`
	Active      bool      `json:"active" gorm:"default:true"`
}
