// internal/pricing/resolver.go
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/techtrove/storefront-backend/internal/models"
)

// Selection is the transient state owned by a presenting surface: chosen
// value code per group code, plus a quantity. It is rebuilt to defaults
// whenever the product definition changes and is never persisted.
type Selection struct {
	Choices  map[string]string `json:"choices"`
	Quantity int               `json:"quantity"`
}

// DefaultSelection picks the first value of every group, which is the default
// at load time, with quantity 1.
func DefaultSelection(p *models.Product) Selection {
	choices := make(map[string]string, len(p.OptionGroups))
	for i := range p.OptionGroups {
		g := &p.OptionGroups[i]
		if len(g.Values) > 0 {
			choices[g.Code] = g.Values[0].Code
		}
	}
	return Selection{Choices: choices, Quantity: 1}
}

// Quote is the result of resolving a selection against a product definition.
type Quote struct {
	UnitPrice decimal.Decimal            `json:"unit_price"`
	LineTotal decimal.Decimal            `json:"line_total"`
	Quantity  int                        `json:"quantity"`
	Breakdown map[string]decimal.Decimal `json:"breakdown"`
}

// ResolvePrice computes the unit price and line total for a selection. Pure
// and deterministic: identical inputs always yield an identical quote, so
// surfaces can recompute on every change without flicker.
//
// The unit price is the base price plus the intrinsic delta of every selected
// value plus, when the product declares a cross-price pair and both of its
// groups are selected, the exact-match cross delta for the chosen value pair.
// Deltas are additive, not mutually exclusive. A group absent from the
// selection contributes no delta; so does a chosen value code the definition
// doesn't know.
func ResolvePrice(p *models.Product, sel Selection) Quote {
	unit := ParseMoney(p.BasePrice)
	breakdown := make(map[string]decimal.Decimal)

	for i := range p.OptionGroups {
		g := &p.OptionGroups[i]
		code, ok := sel.Choices[g.Code]
		if !ok {
			continue
		}
		v := g.Value(code)
		if v == nil {
			continue
		}
		delta := ParseMoney(v.PriceDelta)
		unit = unit.Add(delta)
		breakdown[g.Code] = delta
	}

	if p.CrossGroupA != "" && p.CrossGroupB != "" {
		a, okA := sel.Choices[p.CrossGroupA]
		b, okB := sel.Choices[p.CrossGroupB]
		if okA && okB {
			if delta, found := p.CrossDelta(a, b); found {
				unit = unit.Add(delta)
				breakdown["cross"] = delta
			}
		}
	}

	qty := ClampQuantity(sel.Quantity)
	return Quote{
		UnitPrice: unit,
		LineTotal: unit.Mul(decimal.NewFromInt(int64(qty))),
		Quantity:  qty,
		Breakdown: breakdown,
	}
}
