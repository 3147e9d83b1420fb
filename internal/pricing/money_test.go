// internal/pricing/money_test.go
package pricing

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseMoneyNativeNumbers(t *testing.T) {
	assert.True(t, ParseMoney(150).Equal(decimal.NewFromInt(150)))
	assert.True(t, ParseMoney(int64(99)).Equal(decimal.NewFromInt(99)))
	assert.True(t, ParseMoney(12.5).Equal(decimal.NewFromFloat(12.5)))
	assert.True(t, ParseMoney(0).Equal(decimal.Zero))
}

func TestParseMoneyStrings(t *testing.T) {
	assert.True(t, ParseMoney("150").Equal(decimal.NewFromInt(150)))
	assert.True(t, ParseMoney("1,299.50").Equal(decimal.NewFromFloat(1299.5)))
	assert.True(t, ParseMoney("NT$ 1299").Equal(decimal.NewFromInt(1299)))
	assert.True(t, ParseMoney("  42  ").Equal(decimal.NewFromInt(42)))
}

func TestParseMoneyWrappedDocuments(t *testing.T) {
	assert.True(t, ParseMoney(map[string]interface{}{"$numberInt": "150"}).Equal(decimal.NewFromInt(150)))
	assert.True(t, ParseMoney(map[string]interface{}{"$numberDecimal": "19.99"}).Equal(decimal.NewFromFloat(19.99)))
	assert.True(t, ParseMoney(map[string]interface{}{"$numberLong": float64(5000)}).Equal(decimal.NewFromInt(5000)))

	// Wrapper keys are tried in priority order
	doc := map[string]interface{}{
		"$numberDecimal": "10",
		"$numberInt":     "20",
	}
	assert.True(t, ParseMoney(doc).Equal(decimal.NewFromInt(10)))
}

func TestParseMoneyClampsToZero(t *testing.T) {
	assert.True(t, ParseMoney("abc").Equal(decimal.Zero))
	assert.True(t, ParseMoney(-5).Equal(decimal.Zero))
	assert.True(t, ParseMoney("-120").Equal(decimal.Zero))
	assert.True(t, ParseMoney(nil).Equal(decimal.Zero))
	assert.True(t, ParseMoney([]string{"150"}).Equal(decimal.Zero))
	assert.True(t, ParseMoney(map[string]interface{}{"unknown": "150"}).Equal(decimal.Zero))
	assert.True(t, ParseMoney("1.2.3").Equal(decimal.Zero))
}

func TestParseMoneyJSONNumber(t *testing.T) {
	var doc map[string]interface{}
	dec := json.NewDecoder(strings.NewReader(`{"price": 1299.5}`))
	dec.UseNumber()
	assert.NoError(t, dec.Decode(&doc))
	assert.True(t, ParseMoney(doc["price"]).Equal(decimal.NewFromFloat(1299.5)))
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(-3))
	assert.Equal(t, 1, ClampQuantity(1))
	assert.Equal(t, 7, ClampQuantity(7))
}
