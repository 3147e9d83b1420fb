// internal/catalog/ingest_test.go
package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtrove/storefront-backend/internal/models"
)

const fullDefinition = `{
  "sku": "aurora-x5",
  "name": "Aurora X5",
  "description": "Flagship phone",
  "category": "phone",
  "base_price": 1000,
  "images": ["a.jpg", "b.jpg"],
  "tags": ["5g", "flagship"],
  "option_groups": [
    {
      "code": "capacity",
      "label": "Capacity",
      "values": [
        {"code": "128gb", "label": "128 GB", "price_delta": 0},
        {"code": "256gb", "label": "256 GB", "price_delta": {"$numberInt": "200"}}
      ]
    },
    {
      "code": "color",
      "label": "Color",
      "values": [
        {"code": "black", "label": "Black", "price_delta": "0"},
        {"code": "silver", "label": "Silver", "price_delta": "20", "in_stock": false}
      ]
    }
  ],
  "cross_prices": {
    "group_a": "capacity",
    "group_b": "color",
    "entries": [
      {"a": "256gb", "b": "black", "delta": {"$numberDecimal": "50"}}
    ]
  },
  "pre_order": {
    "active": true,
    "max_quantity": 2,
    "discount_percent": 5,
    "ship_window": "ships within 3 weeks"
  }
}`

func TestParseDefinitionFullDocument(t *testing.T) {
	product, report, err := ParseDefinition([]byte(fullDefinition))
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Empty(t, report.Warnings)

	assert.Equal(t, "aurora-x5", product.SKU)
	assert.Equal(t, "Aurora X5", product.Name)
	assert.Equal(t, models.CategoryPhone, product.Category)
	assert.Equal(t, models.ProductStatusActive, product.Status)
	assert.True(t, product.BasePrice.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, []string(product.Images))
	assert.Equal(t, []string{"5g", "flagship"}, []string(product.Tags))

	require.Len(t, product.OptionGroups, 2)
	capacity := product.OptionGroups[0]
	assert.Equal(t, "capacity", capacity.Code)
	assert.Equal(t, 0, capacity.Position)
	require.Len(t, capacity.Values, 2)

	// Heterogeneous money forms all land as the same decimal
	assert.True(t, capacity.Values[1].PriceDelta.Equal(decimal.NewFromInt(200)))
	color := product.OptionGroups[1]
	assert.True(t, color.Values[1].PriceDelta.Equal(decimal.NewFromInt(20)))
	assert.True(t, color.Values[0].InStock)
	assert.False(t, color.Values[1].InStock)

	assert.Equal(t, "capacity", product.CrossGroupA)
	assert.Equal(t, "color", product.CrossGroupB)
	require.Len(t, product.CrossPrices, 1)
	assert.True(t, product.CrossPrices[0].Delta.Equal(decimal.NewFromInt(50)))

	require.NotNil(t, product.PreOrder)
	assert.True(t, product.PreOrder.Active)
	assert.Equal(t, 2, product.PreOrder.MaxQuantity)
	assert.Equal(t, "ships within 3 weeks", product.PreOrder.ShipWindow)
}

func TestParseDefinitionMinimalDocument(t *testing.T) {
	product, report, err := ParseDefinition([]byte(`{"sku": "bare", "name": "Bare", "base_price": 42}`))
	require.NoError(t, err)
	assert.Empty(t, report.Warnings)

	assert.Empty(t, product.OptionGroups)
	assert.Empty(t, product.CrossPrices)
	assert.Nil(t, product.PreOrder)
	assert.Empty(t, product.Images)
	assert.True(t, product.BasePrice.Equal(decimal.NewFromInt(42)))
}

func TestParseDefinitionMissingBasePriceIsZero(t *testing.T) {
	product, report, err := ParseDefinition([]byte(`{"sku": "free", "name": "Free"}`))
	require.NoError(t, err)
	// Absent fields stay silent; only corrupt-but-present ones warn.
	assert.Empty(t, report.Warnings)
	assert.True(t, product.BasePrice.Equal(decimal.Zero))
}

func TestParseDefinitionCorruptMoneyWarnsAndClamps(t *testing.T) {
	doc := `{
  "sku": "glitchy",
  "name": "Glitchy",
  "base_price": "abc",
  "option_groups": [
    {"code": "size", "label": "Size", "values": [
      {"code": "s", "label": "S", "price_delta": -5}
    ]}
  ]
}`
	product, report, err := ParseDefinition([]byte(doc))
	require.NoError(t, err)

	assert.True(t, product.BasePrice.Equal(decimal.Zero))
	assert.True(t, product.OptionGroups[0].Values[0].PriceDelta.Equal(decimal.Zero))
	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0], "base_price")
	assert.Contains(t, report.Warnings[1], "option_groups.size.values.s.price_delta")
}

func TestParseDefinitionRejectsInvalidJSON(t *testing.T) {
	_, _, err := ParseDefinition([]byte("{not json"))
	assert.Error(t, err)
}

func TestParseDefinitionRequiresSKU(t *testing.T) {
	_, _, err := ParseDefinition([]byte(`{"name": "No SKU"}`))
	assert.Error(t, err)
}

func TestParseDefinitionFreeformGroupKind(t *testing.T) {
	doc := `{
  "sku": "engraved",
  "name": "Engraved",
  "base_price": 10,
  "option_groups": [
    {"code": "engraving", "label": "Engraving", "kind": "freeform", "values": [
      {"code": "none", "label": "None", "price_delta": 0}
    ]},
    {"code": "size", "label": "Size", "kind": "whatever", "values": [
      {"code": "s", "label": "S", "price_delta": 0}
    ]}
  ]
}`
	product, _, err := ParseDefinition([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, models.GroupKindFreeform, product.OptionGroups[0].Kind)
	assert.Equal(t, models.GroupKindIntrinsic, product.OptionGroups[1].Kind)
}
