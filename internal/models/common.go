// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// BeforeCreate assigns the primary key so the same models work on postgres
// and the sqlite test databases.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type Availability string

const (
	AvailabilityInStock    Availability = "in-stock"
	AvailabilityLimited    Availability = "limited"
	AvailabilityOutOfStock Availability = "out-of-stock"
)

type SortKey string

const (
	SortRelevance      SortKey = "relevance"
	SortPriceLow       SortKey = "price-low"
	SortPriceHigh      SortKey = "price-high"
	SortRating         SortKey = "rating"
	SortReviews        SortKey = "reviews"
	SortSustainability SortKey = "sustainability"
)

type AlertType string

const (
	AlertTypePriceDrop AlertType = "price_drop"
	AlertTypeRestock   AlertType = "restock"
)
