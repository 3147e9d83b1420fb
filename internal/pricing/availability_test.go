// internal/pricing/availability_test.go
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/techtrove/storefront-backend/internal/models"
)

func TestResolveAvailabilityAllInStock(t *testing.T) {
	p := phoneFixture()

	av := ResolveAvailability(p, Selection{
		Choices: map[string]string{"capacity": "256gb", "color": "black"},
	})
	assert.True(t, av.Orderable)
	assert.True(t, av.PerGroup["capacity"])
	assert.True(t, av.PerGroup["color"])
}

func TestResolveAvailabilityConjunctive(t *testing.T) {
	p := phoneFixture()

	// Silver is out of stock; one bad value sinks the whole selection.
	av := ResolveAvailability(p, Selection{
		Choices: map[string]string{"capacity": "256gb", "color": "silver"},
	})
	assert.False(t, av.Orderable)
	assert.True(t, av.PerGroup["capacity"])
	assert.False(t, av.PerGroup["color"])
}

func TestResolveAvailabilityFreeformGroupCounts(t *testing.T) {
	p := phoneFixture()
	p.OptionGroups = append(p.OptionGroups, models.OptionGroup{
		Code: "engraving", Label: "Engraving", Kind: models.GroupKindFreeform,
		Values: []models.OptionValue{
			{Code: "none", Label: "None", PriceDelta: decimal.Zero, InStock: true},
			{Code: "custom", Label: "Custom", PriceDelta: decimal.NewFromInt(30), InStock: false},
		},
	})

	av := ResolveAvailability(p, Selection{
		Choices: map[string]string{"capacity": "128gb", "color": "black", "engraving": "custom"},
	})
	assert.False(t, av.Orderable)
	assert.False(t, av.PerGroup["engraving"])
}

func TestResolveAvailabilityZeroGroupsOrderable(t *testing.T) {
	p := &models.Product{SKU: "gift-card", BasePrice: decimal.NewFromInt(50)}

	av := ResolveAvailability(p, Selection{Choices: map[string]string{}})
	assert.True(t, av.Orderable)
	assert.Empty(t, av.PerGroup)
}

func TestResolveAvailabilityUnselectedGroupIgnored(t *testing.T) {
	p := phoneFixture()

	av := ResolveAvailability(p, Selection{
		Choices: map[string]string{"capacity": "256gb"},
	})
	assert.True(t, av.Orderable)
	_, hasColor := av.PerGroup["color"]
	assert.False(t, hasColor)
}
