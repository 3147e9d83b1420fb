// internal/pricing/money.go
package pricing

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyWrapperKeys are the numeric-wrapper keys tried, in order, when a money
// field arrives as a wrapped document (Mongo extended-JSON style exports).
var MoneyWrapperKeys = []string{
	"$numberDecimal",
	"$numberInt",
	"$numberLong",
	"$numberDouble",
}

// ParseMoney resolves a heterogeneous upstream value into a non-negative
// decimal. It accepts native numbers, numeric strings (any character outside
// [0-9.-] is stripped before parsing) and wrapped-numeric documents, recursing
// through string candidates. Unparsable or negative input clamps to zero and
// is never an error, so callers cannot distinguish "no delta" from "bad data"
// here; ingestion is responsible for flagging corrupt-but-present fields.
func ParseMoney(raw interface{}) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return clampNonNegative(v)
	case float64:
		return clampNonNegative(decimal.NewFromFloat(v))
	case float32:
		return clampNonNegative(decimal.NewFromFloat32(v))
	case int:
		return clampNonNegative(decimal.NewFromInt(int64(v)))
	case int32:
		return clampNonNegative(decimal.NewFromInt(int64(v)))
	case int64:
		return clampNonNegative(decimal.NewFromInt(v))
	case json.Number:
		return parseMoneyString(v.String())
	case string:
		return parseMoneyString(v)
	case map[string]interface{}:
		for _, key := range MoneyWrapperKeys {
			if inner, ok := v[key]; ok {
				return ParseMoney(inner)
			}
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

func parseMoneyString(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)

	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return clampNonNegative(d)
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ClampQuantity rejects non-positive quantities by clamping to 1. Quantities
// are never propagated as zero or negative.
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
