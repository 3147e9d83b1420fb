// internal/pricing/availability.go
package pricing

import (
	"github.com/techtrove/storefront-backend/internal/models"
)

// Availability is the stock verdict for a selection: one entry per selected
// group plus the aggregate orderable flag.
type Availability struct {
	PerGroup  map[string]bool `json:"per_group"`
	Orderable bool            `json:"orderable"`
}

// ResolveAvailability applies the conjunctive all-or-nothing policy: the
// selection is orderable only if every selected value, across every group
// including free-form attribute groups, is individually in stock. A product
// with zero option groups is always orderable. Partial availability never
// yields a partial purchase; the surface either proceeds or offers a
// back-in-stock notification capture instead.
func ResolveAvailability(p *models.Product, sel Selection) Availability {
	perGroup := make(map[string]bool)
	orderable := true

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
		perGroup[g.Code] = v.InStock
		if !v.InStock {
			orderable = false
		}
	}

	return Availability{PerGroup: perGroup, Orderable: orderable}
}
