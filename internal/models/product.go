// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is one fetch-immutable product definition. Ingestion replaces a
// definition wholesale (groups, values and cross prices included); rows are
// never mutated in place.
type Product struct {
	BaseModel
	SKU         string          `json:"sku" gorm:"size:64;uniqueIndex;not null"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Category    ProductCategory `json:"category" gorm:"size:32;index"`
	BasePrice   decimal.Decimal `json:"base_price" gorm:"type:decimal(12,2);not null"`
	Images      pq.StringArray  `json:"images" gorm:"type:text[]"`
	Tags        pq.StringArray  `json:"tags" gorm:"type:text[]"`
	Status      ProductStatus   `json:"status" gorm:"type:varchar(20);default:'draft';index"`

	// Cross-price pair declaration. Empty when the product defines no
	// cross-dimension table; entries are only evaluated for this pair.
	CrossGroupA string `json:"cross_group_a,omitempty" gorm:"size:64"`
	CrossGroupB string `json:"cross_group_b,omitempty" gorm:"size:64"`

	// Relationships
	OptionGroups []OptionGroup     `json:"option_groups" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CrossPrices  []CrossPriceEntry `json:"cross_prices,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	PreOrder     *PreOrderPolicy   `json:"pre_order,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// OptionGroup is one selectable dimension (capacity, color, network, region,
// or a free-form attribute group). Ordered by Position; the first value in a
// group is the default selection at load time.
type OptionGroup struct {
	BaseModel
	ProductID uuid.UUID     `json:"product_id" gorm:"type:uuid;not null;index"`
	Code      string        `json:"code" gorm:"size:64;not null"`
	Label     string        `json:"label" gorm:"size:128;not null"`
	Kind      GroupKind     `json:"kind" gorm:"type:varchar(16);default:'intrinsic'"`
	Position  int           `json:"position" gorm:"default:0"`
	Values    []OptionValue `json:"values" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// OptionValue is one concrete choice within a group. Code doubles as the
// lookup key into the product's cross-price entries.
type OptionValue struct {
	BaseModel
	GroupID    uuid.UUID       `json:"group_id" gorm:"type:uuid;not null;index"`
	Code       string          `json:"code" gorm:"size:64;not null"`
	Label      string          `json:"label" gorm:"size:128;not null"`
	PriceDelta decimal.Decimal `json:"price_delta" gorm:"type:decimal(12,2);default:0"`
	InStock    bool            `json:"in_stock" gorm:"default:true"`
	Position   int             `json:"position" gorm:"default:0"`
}

// CrossPriceEntry is one cell of the cross-dimension price table: the extra
// delta applied when ValueA of the product's CrossGroupA and ValueB of its
// CrossGroupB are selected together. Lookup is exact match only; a missing
// entry means zero, not an error.
type CrossPriceEntry struct {
	BaseModel
	ProductID uuid.UUID       `json:"product_id" gorm:"type:uuid;not null;index:idx_cross_prices_lookup"`
	ValueA    string          `json:"value_a" gorm:"size:64;not null;index:idx_cross_prices_lookup"`
	ValueB    string          `json:"value_b" gorm:"size:64;not null;index:idx_cross_prices_lookup"`
	Delta     decimal.Decimal `json:"delta" gorm:"type:decimal(12,2);not null"`
}

// PreOrderPolicy caps quantity and relabels the purchase action while the
// product is in its pre-order window. MaxQuantity 0 means unlimited.
type PreOrderPolicy struct {
	BaseModel
	ProductID       uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex"`
	Active          bool      `json:"active" gorm:"default:false"`
	MaxQuantity     int       `json:"max_quantity" gorm:"default:0"`
	DiscountPercent float64   `json:"discount_percent" gorm:"type:decimal(5,2);default:0"`
	ShipWindow      string    `json:"ship_window" gorm:"size:128"`
}

// Group returns the option group with the given code, or nil.
func (p *Product) Group(code string) *OptionGroup {
	for i := range p.OptionGroups {
		if p.OptionGroups[i].Code == code {
			return &p.OptionGroups[i]
		}
	}
	return nil
}

// Value returns the option value with the given code, or nil.
func (g *OptionGroup) Value(code string) *OptionValue {
	for i := range g.Values {
		if g.Values[i].Code == code {
			return &g.Values[i]
		}
	}
	return nil
}

// CrossDelta looks up the cross-price delta for the (valueA, valueB) pair.
func (p *Product) CrossDelta(valueA, valueB string) (decimal.Decimal, bool) {
	for i := range p.CrossPrices {
		if p.CrossPrices[i].ValueA == valueA && p.CrossPrices[i].ValueB == valueB {
			return p.CrossPrices[i].Delta, true
		}
	}
	return decimal.Zero, false
}

// StockAlert captures a back-in-stock notification request for a
// configuration that resolved as unorderable.
type StockAlert struct {
	BaseModel
	ProductID uuid.UUID        `json:"product_id" gorm:"type:uuid;not null;index"`
	Email     string           `json:"email" gorm:"size:255;not null"`
	Options   JSONB            `json:"options" gorm:"type:jsonb"`
	Status    StockAlertStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
}
