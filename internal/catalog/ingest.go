// internal/catalog/ingest.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/techtrove/storefront-backend/internal/models"
	"github.com/techtrove/storefront-backend/internal/pricing"
)

// IngestReport collects the validation warnings raised while parsing one
// upstream document. Corrupt-but-present money fields are flagged loudly here
// at ingestion time; the runtime resolver keeps its silent-clamp behavior so
// a malformed field can never crash a purchase flow.
type IngestReport struct {
	SKU      string   `json:"sku"`
	Warnings []string `json:"warnings,omitempty"`
}

func (r *IngestReport) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ParseDefinition turns a ProductDefinition-shaped document into a catalog
// product. Upstream documents are schema-loose: money fields may be plain
// numbers, numeric strings or wrapped-numeric documents, and any missing
// optional array is treated as empty, not an error.
func ParseDefinition(doc []byte) (*models.Product, *IngestReport, error) {
	if !gjson.ValidBytes(doc) {
		return nil, nil, fmt.Errorf("invalid product definition document")
	}

	root := gjson.ParseBytes(doc)
	sku := root.Get("sku").String()
	if sku == "" {
		return nil, nil, fmt.Errorf("product definition has no sku")
	}

	report := &IngestReport{SKU: sku}

	product := &models.Product{
		SKU:         sku,
		Name:        root.Get("name").String(),
		Description: root.Get("description").String(),
		Category:    models.ProductCategory(root.Get("category").String()),
		Status:      models.ProductStatusActive,
	}

	product.BasePrice = moneyField(root.Get("base_price"), "base_price", report)

	for _, img := range root.Get("images").Array() {
		product.Images = append(product.Images, img.String())
	}
	for _, tag := range root.Get("tags").Array() {
		product.Tags = append(product.Tags, tag.String())
	}

	groupPos := 0
	root.Get("option_groups").ForEach(func(_, g gjson.Result) bool {
		group := models.OptionGroup{
			Code:     g.Get("code").String(),
			Label:    g.Get("label").String(),
			Kind:     groupKind(g.Get("kind").String()),
			Position: groupPos,
		}
		groupPos++

		valuePos := 0
		g.Get("values").ForEach(func(_, v gjson.Result) bool {
			field := fmt.Sprintf("option_groups.%s.values.%s.price_delta", group.Code, v.Get("code").String())
			group.Values = append(group.Values, models.OptionValue{
				Code:       v.Get("code").String(),
				Label:      v.Get("label").String(),
				PriceDelta: moneyField(v.Get("price_delta"), field, report),
				InStock:    !v.Get("in_stock").Exists() || v.Get("in_stock").Bool(),
				Position:   valuePos,
			})
			valuePos++
			return true
		})

		if group.Code != "" {
			product.OptionGroups = append(product.OptionGroups, group)
		}
		return true
	})

	if cross := root.Get("cross_prices"); cross.Exists() {
		product.CrossGroupA = cross.Get("group_a").String()
		product.CrossGroupB = cross.Get("group_b").String()
		cross.Get("entries").ForEach(func(_, e gjson.Result) bool {
			field := fmt.Sprintf("cross_prices.%s.%s", e.Get("a").String(), e.Get("b").String())
			product.CrossPrices = append(product.CrossPrices, models.CrossPriceEntry{
				ValueA: e.Get("a").String(),
				ValueB: e.Get("b").String(),
				Delta:  moneyField(e.Get("delta"), field, report),
			})
			return true
		})
	}

	if po := root.Get("pre_order"); po.Exists() {
		product.PreOrder = &models.PreOrderPolicy{
			Active:          po.Get("active").Bool(),
			MaxQuantity:     int(po.Get("max_quantity").Int()),
			DiscountPercent: po.Get("discount_percent").Float(),
			ShipWindow:      po.Get("ship_window").String(),
		}
	}

	return product, report, nil
}

// moneyField parses a money field through the shared clamp-to-zero parser and
// flags fields that are present but do not strictly parse to a non-negative
// number. "Field absent" stays silent; "field corrupt" does not.
func moneyField(res gjson.Result, field string, report *IngestReport) decimal.Decimal {
	if !res.Exists() {
		return decimal.Zero
	}

	value := pricing.ParseMoney(res.Value())
	if _, ok := strictMoney(res); !ok {
		report.warnf("corrupt money value in %s: %s (clamped to %s)", field, res.Raw, value.String())
	}
	return value
}

// strictMoney parses without clamping, reporting whether the raw value is a
// well-formed non-negative number.
func strictMoney(res gjson.Result) (decimal.Decimal, bool) {
	switch res.Type {
	case gjson.Number:
		d := decimal.NewFromFloat(res.Num)
		return d, !d.IsNegative()
	case gjson.String:
		d, err := decimal.NewFromString(strings.TrimSpace(res.Str))
		if err != nil {
			return decimal.Zero, false
		}
		return d, !d.IsNegative()
	case gjson.JSON:
		if res.IsObject() {
			for _, key := range pricing.MoneyWrapperKeys {
				if inner := res.Get(key); inner.Exists() {
					return strictMoney(inner)
				}
			}
		}
		return decimal.Zero, false
	default:
		return decimal.Zero, false
	}
}

func groupKind(raw string) models.GroupKind {
	if raw == string(models.GroupKindFreeform) {
		return models.GroupKindFreeform
	}
	return models.GroupKindIntrinsic
}
