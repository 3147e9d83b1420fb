// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is the snapshot that crosses into the order-intent store: resolved
// unit price, quantity and the chosen option labels (not codes — the store
// never re-resolves pricing). Immutable once stored except for removal.
type LineItem struct {
	ID        uuid.UUID         `json:"id"`
	ProductID uuid.UUID         `json:"product_id"`
	SKU       string            `json:"sku"`
	Name      string            `json:"name"`
	UnitPrice decimal.Decimal   `json:"unit_price"`
	Quantity  int               `json:"quantity"`
	Options   map[string]string `json:"options"`
	Image     string            `json:"image,omitempty"`
	PreOrder  bool              `json:"pre_order,omitempty"`
	AddedAt   time.Time         `json:"added_at"`
}

// Subtotal is the line's contribution to the derived cart total.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Customer holds the externally-validated checkout fields forwarded to the
// order submission collaborator.
type Customer struct {
	Name     string `json:"name" validate:"required,min=2,max=128"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7,max=32"`
	Region   string `json:"region" validate:"required"`
	District string `json:"district,omitempty"`
	Address  string `json:"address" validate:"required,min=5"`
	Notes    string `json:"notes,omitempty" validate:"max=500"`
}

// OrderPayload is the finished document handed to the order submission
// collaborator. The service's responsibility ends at producing it.
type OrderPayload struct {
	Customer  Customer        `json:"customer"`
	LineItems []LineItem      `json:"line_items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
