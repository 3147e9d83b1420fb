// internal/pricing/quantity.go
package pricing

import (
	"github.com/techtrove/storefront-backend/internal/models"
)

type PurchaseMode string

const (
	ModeStandard PurchaseMode = "standard"
	ModePreOrder PurchaseMode = "pre_order"
)

// QuantityGate bounds quantity changes. Standard mode is unbounded above;
// pre-order mode rejects increments past the policy max (0 meaning
// unlimited). Decrementing below 1 is always rejected. Both modes route
// through the same pricing and availability resolvers; only the purchase
// label and the upper bound differ.
type QuantityGate struct {
	mode PurchaseMode
	max  int
}

func NewQuantityGate(policy *models.PreOrderPolicy) QuantityGate {
	if policy != nil && policy.Active {
		return QuantityGate{mode: ModePreOrder, max: policy.MaxQuantity}
	}
	return QuantityGate{mode: ModeStandard}
}

func (g QuantityGate) Mode() PurchaseMode {
	return g.mode
}

// Clamp forces a requested quantity into the gate's bounds.
func (g QuantityGate) Clamp(q int) int {
	q = ClampQuantity(q)
	if g.mode == ModePreOrder && g.max > 0 && q > g.max {
		return g.max
	}
	return q
}

// Increment returns q+1, or q unchanged at the pre-order cap.
func (g QuantityGate) Increment(q int) int {
	q = ClampQuantity(q)
	if g.mode == ModePreOrder && g.max > 0 && q >= g.max {
		return q
	}
	return q + 1
}

// Decrement returns q-1, never below 1.
func (g QuantityGate) Decrement(q int) int {
	q = ClampQuantity(q)
	if q <= 1 {
		return 1
	}
	return q - 1
}

// Label is the purchase action label for the gate's mode.
func (g QuantityGate) Label() string {
	if g.mode == ModePreOrder {
		return "pre_order"
	}
	return "add_to_cart"
}
