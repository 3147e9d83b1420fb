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
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
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
type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusRetired  ProductStatus = "retired"
	ProductStatusArchived ProductStatus = "archived"
)

type ProductCategory string

const (
	CategoryPhone     ProductCategory = "phone"
	CategoryTablet    ProductCategory = "tablet"
	CategoryLaptop    ProductCategory = "laptop"
	CategoryAccessory ProductCategory = "accessory"
)

// GroupKind distinguishes the fixed dimensions (capacity, color, network,
// region) from free-form attribute groups attached ad hoc to a product.
type GroupKind string

const (
	GroupKindIntrinsic GroupKind = "intrinsic"
	GroupKindFreeform  GroupKind = "freeform"
)

type StockAlertStatus string

const (
	StockAlertStatusPending  StockAlertStatus = "pending"
	StockAlertStatusNotified StockAlertStatus = "notified"
)
